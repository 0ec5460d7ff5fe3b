// customer.go - Defines the Customer model for the database

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"default:''" json:"email"`
	Phone     string    `gorm:"default:''" json:"phone"`
	Company   string    `gorm:"default:''" json:"company"`
	OwnerID   *string   `gorm:"index" json:"ownerId"` // nil only for seed-created customers
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// AccessibleBy reports whether the given user may operate on this customer.
// Customers without an owner are shared; owned customers are private to
// their owner.
func (c *Customer) AccessibleBy(userID string) bool {
	return c.OwnerID == nil || *c.OwnerID == userID
}
