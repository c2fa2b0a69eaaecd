package handler

import (
	"registry/internal/delivery/api/middleware"
	"registry/internal/delivery/api/response"
	"registry/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FactoryHandler serves the factory state and admin controls of both registries.
type FactoryHandler struct {
	uc usecase.FactoryUsecase
}

// NewFactoryHandler is the constructor for FactoryHandler, injected by Fx.
func NewFactoryHandler(uc usecase.FactoryUsecase) *FactoryHandler {
	return &FactoryHandler{uc: uc}
}

type feeRequest struct {
	RegistrationFee uint64 `json:"registration_fee"`
}

type withdrawRequest struct {
	Amount      uint64 `json:"amount"`
	Destination string `json:"destination" validate:"required"`
}

type pauseRequest struct {
	Paused *bool `json:"paused" validate:"required"`
}

// GetFactory returns the factory state of the registry in the path.
func (h *FactoryHandler) GetFactory(c echo.Context) error {
	kind, err := kindParam(c)
	if err != nil {
		return err
	}

	state, err := h.uc.GetFactoryState(c.Request().Context(), kind)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, state)
}

// Initialize creates the factory with the caller as admin.
func (h *FactoryHandler) Initialize(c echo.Context) error {
	kind, err := kindParam(c)
	if err != nil {
		return err
	}
	var req feeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	state, err := h.uc.Initialize(c.Request().Context(), kind, middleware.Caller(c), req.RegistrationFee)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, state)
}

// SetFee changes the registration fee.
func (h *FactoryHandler) SetFee(c echo.Context) error {
	kind, err := kindParam(c)
	if err != nil {
		return err
	}
	var req feeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	state, err := h.uc.SetRegistrationFee(c.Request().Context(), kind, middleware.Caller(c), req.RegistrationFee)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, state)
}

// Withdraw moves collected fees to a destination account.
func (h *FactoryHandler) Withdraw(c echo.Context) error {
	kind, err := kindParam(c)
	if err != nil {
		return err
	}
	var req withdrawRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	state, err := h.uc.WithdrawFees(c.Request().Context(), kind, middleware.Caller(c), &usecase.WithdrawFeesInput{
		Amount:      req.Amount,
		Destination: req.Destination,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, state)
}

// Pause opens or closes the registration gate.
func (h *FactoryHandler) Pause(c echo.Context) error {
	kind, err := kindParam(c)
	if err != nil {
		return err
	}
	var req pauseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	state, err := h.uc.PauseRegistration(c.Request().Context(), kind, middleware.Caller(c), *req.Paused)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, state)
}
