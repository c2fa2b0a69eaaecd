package handler

import (
	"registry/internal/delivery/api/response"
	"registry/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler serves wallet sign-in.
type SessionHandler struct {
	uc usecase.SessionUsecase
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

type challengeRequest struct {
	Address string `json:"address" validate:"required"`
}

type loginRequest struct {
	Address   string `json:"address" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

// Challenge issues the message a wallet must sign to log in.
func (h *SessionHandler) Challenge(c echo.Context) error {
	var req challengeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Challenge(c.Request().Context(), req.Address)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output)
}

// Login exchanges a signed challenge for an access token.
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), req.Address, req.Signature)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output)
}
