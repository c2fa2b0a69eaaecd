// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is an item listed by a vendor.
type Product struct {
	ProfileID   uuid.UUID `json:"-"`
	ProductID   string    `json:"product_id"`
	Price       uint64    `json:"price"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
