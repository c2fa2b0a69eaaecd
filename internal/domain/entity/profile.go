// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Field limits of registry profiles.
const (
	MinNameLength               = 3
	MaxNameLength               = 32
	MaxUserBioLength            = 280
	MaxVendorDescriptionLength  = 256
	MaxProductIDLength          = 32
	MaxProductDescriptionLength = 128
	MaxProductsPerVendor        = 50
)

// Profile is a registered user or vendor.
type Profile struct {
	ID        uuid.UUID    `json:"id"`
	Kind      RegistryKind `json:"kind"`
	Address   string       `json:"address"` // Derived program address of the profile account.
	Owner     string       `json:"owner"`   // Current controller of the profile.
	Name      string       `json:"name"`    // Username or vendor name, unique within the registry.
	Bio       string       `json:"bio"`     // User bio or vendor description.
	Products  []*Product   `json:"products,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// IsOwner reports whether address currently controls the profile.
func (p *Profile) IsOwner(address string) bool {
	return p.Owner == address
}

// FindProduct returns the product with the given id, or nil.
func (p *Profile) FindProduct(productID string) *Product {
	for _, product := range p.Products {
		if product.ProductID == productID {
			return product
		}
	}

	return nil
}

// MaxBioLength returns the bio limit for the registry kind.
func MaxBioLength(kind RegistryKind) int {
	if kind == RegistryKindVendor {
		return MaxVendorDescriptionLength
	}

	return MaxUserBioLength
}
