// lead.go - Lead CRUD handlers
//
// Leads are always addressed through their customer, so every route runs
// the same customer access check before touching lead rows.

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"mini-crm/httperr"
	"mini-crm/models"
)

type LeadHandler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewLeadHandler(db *gorm.DB, log zerolog.Logger) *LeadHandler {
	return &LeadHandler{db: db, log: log}
}

type CreateLeadInput struct {
	Title       string  `json:"title" binding:"required,min=2,max=100"`
	Description string  `json:"description" binding:"omitempty,max=1000"`
	Status      string  `json:"status" binding:"omitempty,oneof=New Contacted Converted Lost"`
	Value       float64 `json:"value" binding:"omitempty,gte=0"`
}

type UpdateLeadInput struct {
	Title       *string  `json:"title" binding:"omitempty,min=2,max=100"`
	Description *string  `json:"description" binding:"omitempty,max=1000"`
	Status      *string  `json:"status" binding:"omitempty,oneof=New Contacted Converted Lost"`
	Value       *float64 `json:"value" binding:"omitempty,gte=0"`
}

// Create adds a lead under the customer from the path. Status defaults to
// New when absent.
func (h *LeadHandler) Create(c *gin.Context) {
	var input CreateLeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httperr.Validation(c, err)
		return
	}

	customer, ok := loadCustomer(c, h.db, h.log, c.Param("customerId"))
	if !ok {
		return
	}

	lead := models.Lead{
		CustomerID:  customer.ID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status, // BeforeCreate fills in New when empty
		Value:       input.Value,
	}
	if err := h.db.Create(&lead).Error; err != nil {
		httperr.Internal(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, lead)
}

// List returns all leads for the customer, newest first. Lead volume per
// customer is small, so the list is not paginated.
func (h *LeadHandler) List(c *gin.Context) {
	customer, ok := loadCustomer(c, h.db, h.log, c.Param("customerId"))
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

	c.JSON(http.StatusOK, leads)
}

// Update replaces the provided fields on a lead.
func (h *LeadHandler) Update(c *gin.Context) {
	var input UpdateLeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httperr.Validation(c, err)
		return
	}

	customer, ok := loadCustomer(c, h.db, h.log, c.Param("customerId"))
	if !ok {
		return
	}

	lead, ok := h.loadLead(c, c.Param("id"))
	if !ok {
		return
	}
	// The lead must belong to the customer from the path; otherwise the
	// path's access check could be satisfied with an unrelated customer.
	if lead.CustomerID != customer.ID {
		httperr.Message(c, http.StatusNotFound, "Lead not found")
		return
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.Value != nil {
		updates["value"] = *input.Value
	}
	if len(updates) > 0 {
		if err := h.db.Model(lead).Updates(updates).Error; err != nil {
			httperr.Internal(c, h.log, err)
			return
		}
		// Re-read so the response reflects exactly what was stored.
		if err := h.db.First(lead, "id = ?", lead.ID).Error; err != nil {
			httperr.Internal(c, h.log, err)
			return
		}
	}

	c.JSON(http.StatusOK, lead)
}

// Delete removes a lead by id.
func (h *LeadHandler) Delete(c *gin.Context) {
	customer, ok := loadCustomer(c, h.db, h.log, c.Param("customerId"))
	if !ok {
		return
	}

	// Scoped to the customer so a lead cannot be deleted through an
	// unrelated customer's path.
	res := h.db.Delete(&models.Lead{}, "id = ? AND customer_id = ?", c.Param("id"), customer.ID)
	if res.Error != nil {
		httperr.Internal(c, h.log, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.Message(c, http.StatusNotFound, "Lead not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lead deleted"})
}

func (h *LeadHandler) loadLead(c *gin.Context, id string) (*models.Lead, bool) {
	var lead models.Lead
	if err := h.db.First(&lead, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Message(c, http.StatusNotFound, "Lead not found")
		} else {
			httperr.Internal(c, h.log, err)
		}
		return nil, false
	}
	return &lead, true
}
