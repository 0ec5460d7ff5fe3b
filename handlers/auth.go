// auth.go - Handles user registration and login

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mini-crm/auth"
	"mini-crm/httperr"
	"mini-crm/models"
)

// bcryptCost matches the cost used when seeding the admin user.
const bcryptCost = 10

type AuthHandler struct {
	db     *gorm.DB
	secret string
	log    zerolog.Logger
}

func NewAuthHandler(db *gorm.DB, secret string, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{db: db, secret: secret, log: log}
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user with role "user". Duplicate emails are
// rejected before hashing so the error is deterministic.
func (h *AuthHandler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httperr.Validation(c, err)
		return
	}

	var existing models.User
	err := h.db.Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		httperr.Message(c, http.StatusBadRequest, "User already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Internal(c, h.log, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		httperr.Internal(c, h.log, err)
		return
	}

	user := models.User{Name: input.Name, Email: input.Email, Password: string(hash), Role: "user"}
	if err := h.db.Create(&user).Error; err != nil {
		// A concurrent registration can slip past the lookup above; the
		// unique index catches it and must read as a duplicate, not a 500.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Message(c, http.StatusBadRequest, "User already exists")
			return
		}
		httperr.Internal(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
}

// Login checks the credentials and issues a 24h token. Unknown email and
// wrong password return the identical response so accounts cannot be
// enumerated.
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httperr.Validation(c, err)
		return
	}

	var user models.User
	if err := h.db.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Message(c, http.StatusBadRequest, "Invalid credentials")
			return
		}
		httperr.Internal(c, h.log, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		httperr.Message(c, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := auth.CreateToken(h.secret, user.ID, user.Role)
	if err != nil {
		httperr.Internal(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user.Public()})
}
