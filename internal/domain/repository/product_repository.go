package repository

import (
	"context"

	"registry/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when the vendor has no product with the id.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateProduct is returned when the vendor already lists the product id.
	ErrDuplicateProduct = errors.New("product already exists")
)

// ProductRepository defines the persistence operations for vendor products.
type ProductRepository interface {
	// ListByProfile returns the products of a vendor in insertion order.
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Delete removes a product from a vendor.
	Delete(ctx context.Context, profileID uuid.UUID, productID string) error
}
