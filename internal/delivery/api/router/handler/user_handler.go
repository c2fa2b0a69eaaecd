package handler

import (
	"registry/internal/delivery/api/middleware"
	"registry/internal/delivery/api/response"
	"registry/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler serves the user registry.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type registerUserRequest struct {
	Username string `json:"username" validate:"required"`
	Bio      string `json:"bio"`
}

type bioRequest struct {
	Bio string `json:"bio"`
}

type usernameRequest struct {
	Username string `json:"username" validate:"required"`
}

// ListUsers returns a page of users in registration order.
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return err
	}

	users, err := h.uc.ListUsers(c.Request().Context(), page.Offset, page.Limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, users)
}

// GetUser returns one user by username.
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.uc.GetUser(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user)
}

// CheckUsername reports whether a username can still be registered.
func (h *UserHandler) CheckUsername(c echo.Context) error {
	name := c.Param("name")
	available, err := h.uc.CheckUsername(c.Request().Context(), name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, availability{Name: name, Available: available})
}

// RegisterUser registers the caller under a username and charges the fee.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req registerUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.uc.RegisterUser(c.Request().Context(), middleware.Caller(c), &usecase.RegisterUserInput{
		Username: req.Username,
		Bio:      req.Bio,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, user)
}

// UpdateBio replaces the bio of a user owned by the caller.
func (h *UserHandler) UpdateBio(c echo.Context) error {
	var req bioRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.uc.UpdateBio(c.Request().Context(), middleware.Caller(c), c.Param("name"), req.Bio)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user)
}

// ChangeUsername renames a user owned by the caller.
func (h *UserHandler) ChangeUsername(c echo.Context) error {
	var req usernameRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.uc.ChangeUsername(c.Request().Context(), middleware.Caller(c), c.Param("name"), req.Username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user)
}

// TransferOwnership hands a user profile to another address.
func (h *UserHandler) TransferOwnership(c echo.Context) error {
	var req ownerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.uc.TransferOwnership(c.Request().Context(), middleware.Caller(c), c.Param("name"), req.NewOwner)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user)
}
