package impl

import (
	"context"
	"slices"
	"strconv"
	"time"

	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/repository"
	"registry/internal/domain/service"
	"registry/internal/usecase"

	"github.com/pkg/errors"
)

// vendorService implements the VendorUsecase interface.
type vendorService struct {
	*profileRegistry

	qrCode service.QRCodeService
}

// NewVendorService is the constructor for vendorService.
func NewVendorService(params RegistryServiceParams) usecase.VendorUsecase {
	return &vendorService{
		profileRegistry: newProfileRegistry(entity.RegistryKindVendor, params),
		qrCode:          params.QRCode,
	}
}

// RegisterVendor pays the registration fee and claims a vendor name while registration is open.
func (srv *vendorService) RegisterVendor(ctx context.Context, caller string, input *usecase.RegisterVendorInput) (*entity.Profile, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("registration is required")
	}

	return srv.register(ctx, &registrationConfig{
		Caller:    caller,
		Name:      input.VendorName,
		Bio:       input.Description,
		EventType: entity.EventVendorRegistered,
		CheckGate: func(state *entity.FactoryState) error {
			if state.Paused {
				return domainerrors.ErrRegistrationPaused
			}

			return nil
		},
	})
}

// CheckVendorName reports true when the vendor name is free.
func (srv *vendorService) CheckVendorName(ctx context.Context, name string) (bool, error) {
	return srv.available(ctx, name)
}

// GetVendor returns the vendor and its products.
func (srv *vendorService) GetVendor(ctx context.Context, name string) (*entity.Profile, error) {
	return srv.get(ctx, name)
}

// ListVendors returns registered vendors in registration order.
func (srv *vendorService) ListVendors(ctx context.Context, offset, limit int) (*usecase.ProfilePage, error) {
	return srv.list(ctx, offset, limit)
}

// UpdateDescription replaces the description of a vendor.
func (srv *vendorService) UpdateDescription(ctx context.Context, caller, name, description string) (*entity.Profile, error) {
	return srv.updateBio(ctx, caller, name, description, entity.EventVendorDescriptionUpdated)
}

// AddProduct lists a new product on the vendor profile.
func (srv *vendorService) AddProduct(ctx context.Context, caller, name string, input *usecase.AddProductInput) (*entity.Profile, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product is required")
	}
	if err := validateProduct(input.ProductID, input.Description); err != nil {
		return nil, err
	}
	if err := checkAmount(input.Price); err != nil {
		return nil, err
	}

	return srv.mutateAsOwner(ctx, caller, name, false, func(repoFactory repository.RepositoryFactory, profile *entity.Profile) (*entity.Event, error) {
		if profile.FindProduct(input.ProductID) != nil {
			return nil, domainerrors.ErrProductAlreadyExists.WithDetails(input.ProductID)
		}
		if len(profile.Products) >= entity.MaxProductsPerVendor {
			return nil, domainerrors.ErrProductLimitReached.WithDetails(strconv.Itoa(entity.MaxProductsPerVendor))
		}

		product := &entity.Product{
			ProfileID:   profile.ID,
			ProductID:   input.ProductID,
			Price:       input.Price,
			Description: input.Description,
			CreatedAt:   time.Now().UTC(),
		}
		if err := repoFactory.ProductRepo().Create(ctx, product); err != nil {
			if errors.Is(err, repository.ErrDuplicateProduct) {
				return nil, domainerrors.ErrProductAlreadyExists.WithDetails(input.ProductID)
			}

			return nil, errors.Wrap(err, "failed to create product")
		}
		profile.Products = append(profile.Products, product)

		event := newProfileEvent(ctx, entity.EventVendorProductAdded, profile, caller)
		event.Amount = input.Price
		event.NewValue = input.ProductID

		return event, nil
	})
}

// RemoveProduct delists a product from the vendor profile.
func (srv *vendorService) RemoveProduct(ctx context.Context, caller, name, productID string) (*entity.Profile, error) {
	return srv.mutateAsOwner(ctx, caller, name, false, func(repoFactory repository.RepositoryFactory, profile *entity.Profile) (*entity.Event, error) {
		product := profile.FindProduct(productID)
		if product == nil {
			return nil, domainerrors.ErrProductNotFound.WithDetails(productID)
		}
		if err := repoFactory.ProductRepo().Delete(ctx, profile.ID, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, domainerrors.ErrProductNotFound.WithDetails(productID)
			}

			return nil, errors.Wrap(err, "failed to delete product")
		}
		profile.Products = slices.DeleteFunc(profile.Products, func(p *entity.Product) bool {
			return p.ProductID == productID
		})

		event := newProfileEvent(ctx, entity.EventVendorProductRemoved, profile, caller)
		event.Amount = product.Price
		event.OldValue = productID

		return event, nil
	})
}

// TransferOwnership hands control of a vendor profile to another address.
func (srv *vendorService) TransferOwnership(ctx context.Context, caller, name, newOwner string) (*entity.Profile, error) {
	return srv.transferOwnership(ctx, caller, name, newOwner)
}

// VendorQRCode renders a PNG QR code pointing at the vendor profile.
func (srv *vendorService) VendorQRCode(ctx context.Context, name string) ([]byte, error) {
	if srv.qrCode == nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "qr code service is not configured")
	}

	profile, err := srv.get(ctx, name)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateVendorQR(profile.Name, profile.Address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate vendor qr code")
	}

	return png, nil
}
