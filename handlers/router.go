// router.go - Wires middleware and handlers to routes

package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"mini-crm/config"
	"mini-crm/middleware"
)

// NewRouter builds the full API router. It takes the database handle and
// config explicitly so tests can wire a router against their own database.
func NewRouter(db *gorm.DB, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Mini CRM API running...")
	})

	authHandler := NewAuthHandler(db, cfg.JWTSecret, log)
	customerHandler := NewCustomerHandler(db, log)
	leadHandler := NewLeadHandler(db, log)

	api := r.Group("/api")

	// Public routes
	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	// Protected routes
	customers := api.Group("/customers")
	customers.Use(middleware.Auth(cfg.JWTSecret))
	{
		customers.POST("", customerHandler.Create)
		customers.GET("", customerHandler.List)
		customers.GET("/:id", customerHandler.Get)
		customers.PUT("/:id", customerHandler.Update)
		customers.DELETE("/:id", customerHandler.Delete)
	}

	leads := api.Group("/leads")
	leads.Use(middleware.Auth(cfg.JWTSecret))
	{
		leads.POST("/:customerId/leads", leadHandler.Create)
		leads.GET("/:customerId/leads", leadHandler.List)
		leads.PUT("/:customerId/leads/:id", leadHandler.Update)
		leads.DELETE("/:customerId/leads/:id", leadHandler.Delete)
	}

	return r
}
