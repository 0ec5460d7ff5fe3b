// lead.go - Defines the Lead model for the database

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lead statuses. A lead starts as New and moves through the pipeline.
const (
	LeadStatusNew       = "New"
	LeadStatusContacted = "Contacted"
	LeadStatusConverted = "Converted"
	LeadStatusLost      = "Lost"
)

type Lead struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	CustomerID  string    `gorm:"index;not null" json:"customerId"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"default:''" json:"description"`
	Status      string    `gorm:"default:'New'" json:"status"`
	Value       float64   `gorm:"default:0" json:"value"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.Status == "" {
		l.Status = LeadStatusNew
	}
	return nil
}
