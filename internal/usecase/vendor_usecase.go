package usecase

import (
	"context"

	"registry/internal/domain/entity"
)

// VendorUsecase defines the operations of the vendor registry.
type VendorUsecase interface {
	RegisterVendor(ctx context.Context, caller string, input *RegisterVendorInput) (*entity.Profile, error)
	CheckVendorName(ctx context.Context, name string) (bool, error)
	GetVendor(ctx context.Context, name string) (*entity.Profile, error)
	ListVendors(ctx context.Context, offset, limit int) (*ProfilePage, error)
	UpdateDescription(ctx context.Context, caller, name, description string) (*entity.Profile, error)
	AddProduct(ctx context.Context, caller, name string, input *AddProductInput) (*entity.Profile, error)
	RemoveProduct(ctx context.Context, caller, name, productID string) (*entity.Profile, error)
	TransferOwnership(ctx context.Context, caller, name, newOwner string) (*entity.Profile, error)
	VendorQRCode(ctx context.Context, name string) ([]byte, error)
}

// RegisterVendorInput defines the data required to register a vendor.
type RegisterVendorInput struct {
	VendorName  string `json:"vendor_name"`
	Description string `json:"description"`
}

// AddProductInput defines a product listed by a vendor.
type AddProductInput struct {
	ProductID   string `json:"product_id"`
	Price       uint64 `json:"price"`
	Description string `json:"description"`
}
