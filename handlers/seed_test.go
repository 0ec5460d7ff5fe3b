// seed_test.go - Tests for the seeded admin and unowned customers

package handlers

import (
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mini-crm/config"
	"mini-crm/database"
	"mini-crm/models"
)

func TestSeededAdminAndUnownedCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:          "5000",
		DatabaseURL:   filepath.Join(t.TempDir(), "test.db"),
		JWTSecret:     "test-secret",
		CreateAdmin:   true,
		AdminName:     "Admin",
		AdminEmail:    "admin@crm.com",
		AdminPassword: "Admin@123",
	}
	db, err := database.Connect(cfg)
	require.NoError(t, err)
	router := NewRouter(db, cfg, zerolog.Nop())

	// The seeded admin can log in and carries the admin role.
	w := doRequest(t, router, "POST", "/api/auth/login", "", gin.H{
		"email":    "admin@crm.com",
		"password": "Admin@123",
	})
	require.Equal(t, 200, w.Code)

	var loginResp struct {
		Token string            `json:"token"`
		User  models.PublicUser `json:"user"`
	}
	decodeBody(t, w, &loginResp)
	assert.Equal(t, "admin", loginResp.User.Role)

	// Reconnecting does not seed a second admin.
	_, err = database.Connect(cfg)
	require.NoError(t, err)
	var adminCount int64
	db.Model(&models.User{}).Where("email = ?", "admin@crm.com").Count(&adminCount)
	assert.Equal(t, int64(1), adminCount)

	// Customers created outside the API keep a nil owner and are shared:
	// any authenticated user can read them.
	unowned := models.Customer{Name: "House Account"}
	require.NoError(t, db.Create(&unowned).Error)

	token, _ := registerAndLogin(t, router, "user@example.com")
	w = doRequest(t, router, "GET", "/api/customers/"+unowned.ID, token, nil)
	assert.Equal(t, 200, w.Code)

	// The list stays owner-scoped, so the unowned customer is not in it.
	w = doRequest(t, router, "GET", "/api/customers", token, nil)
	require.Equal(t, 200, w.Code)
	var resp listResponse
	decodeBody(t, w, &resp)
	assert.Empty(t, resp.Data)
}
