package handler

import (
	"net/http"

	"registry/internal/delivery/api/middleware"
	"registry/internal/delivery/api/response"
	"registry/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VendorHandler serves the vendor registry.
type VendorHandler struct {
	uc usecase.VendorUsecase
}

// NewVendorHandler is the constructor for VendorHandler, injected by Fx.
func NewVendorHandler(uc usecase.VendorUsecase) *VendorHandler {
	return &VendorHandler{uc: uc}
}

type registerVendorRequest struct {
	VendorName  string `json:"vendor_name" validate:"required"`
	Description string `json:"description"`
}

type descriptionRequest struct {
	Description string `json:"description"`
}

type addProductRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	Price       uint64 `json:"price"`
	Description string `json:"description"`
}

// ListVendors returns a page of vendors in registration order.
func (h *VendorHandler) ListVendors(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return err
	}

	vendors, err := h.uc.ListVendors(c.Request().Context(), page.Offset, page.Limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, vendors)
}

// GetVendor returns one vendor and its products.
func (h *VendorHandler) GetVendor(c echo.Context) error {
	vendor, err := h.uc.GetVendor(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, vendor)
}

// CheckVendorName reports whether a vendor name can still be registered.
func (h *VendorHandler) CheckVendorName(c echo.Context) error {
	name := c.Param("name")
	available, err := h.uc.CheckVendorName(c.Request().Context(), name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, availability{Name: name, Available: available})
}

// QRCode renders the vendor's QR code as a PNG.
func (h *VendorHandler) QRCode(c echo.Context) error {
	png, err := h.uc.VendorQRCode(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// RegisterVendor registers the caller as a vendor and charges the fee.
func (h *VendorHandler) RegisterVendor(c echo.Context) error {
	var req registerVendorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	vendor, err := h.uc.RegisterVendor(c.Request().Context(), middleware.Caller(c), &usecase.RegisterVendorInput{
		VendorName:  req.VendorName,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, vendor)
}

// UpdateDescription replaces the description of a vendor owned by the caller.
func (h *VendorHandler) UpdateDescription(c echo.Context) error {
	var req descriptionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	vendor, err := h.uc.UpdateDescription(c.Request().Context(), middleware.Caller(c), c.Param("name"), req.Description)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, vendor)
}

// AddProduct lists a product on a vendor owned by the caller.
func (h *VendorHandler) AddProduct(c echo.Context) error {
	var req addProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	vendor, err := h.uc.AddProduct(c.Request().Context(), middleware.Caller(c), c.Param("name"), &usecase.AddProductInput{
		ProductID:   req.ProductID,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, vendor)
}

// RemoveProduct delists a product from a vendor owned by the caller.
func (h *VendorHandler) RemoveProduct(c echo.Context) error {
	vendor, err := h.uc.RemoveProduct(c.Request().Context(), middleware.Caller(c), c.Param("name"), c.Param("productId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, vendor)
}

// TransferOwnership hands a vendor profile to another address.
func (h *VendorHandler) TransferOwnership(c echo.Context) error {
	var req ownerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	vendor, err := h.uc.TransferOwnership(c.Request().Context(), middleware.Caller(c), c.Param("name"), req.NewOwner)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, vendor)
}
