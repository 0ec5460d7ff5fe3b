// customer.go - Customer CRUD handlers
//
// Every operation first loads the target customer and checks access: 404
// when the record is missing, 403 when it belongs to someone else. The
// check applies uniformly to reads and mutations.

package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"mini-crm/httperr"
	"mini-crm/middleware"
	"mini-crm/models"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type CustomerHandler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewCustomerHandler(db *gorm.DB, log zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{db: db, log: log}
}

type CreateCustomerInput struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone" binding:"omitempty,max=50"`
	Company string `json:"company" binding:"omitempty,max=100"`
}

type UpdateCustomerInput struct {
	Name    *string `json:"name" binding:"omitempty,min=2,max=100"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Company *string `json:"company" binding:"omitempty,max=100"`
}

// Create stamps the authenticated user as owner and persists the customer.
func (h *CustomerHandler) Create(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httperr.Validation(c, err)
		return
	}

	actor := c.GetString(middleware.ContextUserID)
	customer := models.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Company: input.Company,
		OwnerID: &actor,
	}
	if err := h.db.Create(&customer).Error; err != nil {
		httperr.Internal(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// List returns the caller's customers, newest first, filtered by a
// case-insensitive substring match on name or email and paginated with a
// 1-based page index.
func (h *CustomerHandler) List(c *gin.Context) {
	actor := c.GetString(middleware.ContextUserID)

	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if err != nil || page < 1 {
		page = defaultPage
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}

	pattern := "%" + strings.ToLower(c.Query("q")) + "%"
	query := h.db.Model(&models.Customer{}).
		Where("owner_id = ?", actor).
		Where("lower(name) LIKE ? OR lower(email) LIKE ?", pattern, pattern)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		httperr.Internal(c, h.log, err)
		return
	}

	customers := make([]models.Customer, 0, limit)
	if err := query.Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&customers).Error; err != nil {
		httperr.Internal(c, h.log, err)
		return
	}

	pages := int(math.Ceil(float64(total) / float64(limit)))
	c.JSON(http.StatusOK, gin.H{
		"data": customers,
		"meta": gin.H{"total": total, "page": page, "limit": limit, "pages": pages},
	})
}

// Get returns a single customer together with its leads, newest first.
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, ok := loadCustomer(c, h.db, h.log, c.Param("id"))
	if !ok {
		return
	}

	leads := make([]models.Lead, 0)
	if err := h.db.Where("customer_id = ?", customer.ID).
		Order("created_at DESC").
		Find(&leads).Error; err != nil {
		httperr.Internal(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"customer": customer, "leads": leads})
}

// Update replaces the provided fields and returns the updated record.
func (h *CustomerHandler) Update(c *gin.Context) {
	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httperr.Validation(c, err)
		return
	}

	customer, ok := loadCustomer(c, h.db, h.log, c.Param("id"))
	if !ok {
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Company != nil {
		updates["company"] = *input.Company
	}
	if len(updates) > 0 {
		if err := h.db.Model(customer).Updates(updates).Error; err != nil {
			httperr.Internal(c, h.log, err)
			return
		}
		// Re-read so the response reflects exactly what was stored.
		if err := h.db.First(customer, "id = ?", customer.ID).Error; err != nil {
			httperr.Internal(c, h.log, err)
			return
		}
	}

	c.JSON(http.StatusOK, customer)
}

// Delete removes the customer and all of its leads in one transaction so
// a failure cannot leave the cascade half applied.
func (h *CustomerHandler) Delete(c *gin.Context) {
	customer, ok := loadCustomer(c, h.db, h.log, c.Param("id"))
	if !ok {
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", customer.ID).Delete(&models.Lead{}).Error; err != nil {
			return err
		}
		return tx.Delete(customer).Error
	})
	if err != nil {
		httperr.Internal(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer and leads deleted"})
}

// loadCustomer fetches a customer and enforces the access policy, writing
// the error response itself when the caller should not proceed. Shared
// with the lead handlers, which gate every route on the owning customer.
func loadCustomer(c *gin.Context, db *gorm.DB, log zerolog.Logger, id string) (*models.Customer, bool) {
	var customer models.Customer
	if err := db.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Message(c, http.StatusNotFound, "Customer not found")
		} else {
			httperr.Internal(c, log, err)
		}
		return nil, false
	}

	if !customer.AccessibleBy(c.GetString(middleware.ContextUserID)) {
		httperr.Message(c, http.StatusForbidden, "Forbidden")
		return nil, false
	}
	return &customer, true
}
