package handler

import (
	"registry/internal/delivery/api/response"
	"registry/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler serves balances and the development faucet.
type AccountHandler struct {
	uc usecase.AccountUsecase
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

type airdropRequest struct {
	Amount uint64 `json:"amount"`
}

// GetAccount returns the balance of an address.
func (h *AccountHandler) GetAccount(c echo.Context) error {
	account, err := h.uc.GetAccount(c.Request().Context(), c.Param("address"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, account)
}

// Airdrop credits an address from the faucet.
func (h *AccountHandler) Airdrop(c echo.Context) error {
	var req airdropRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	account, err := h.uc.Airdrop(c.Request().Context(), c.Param("address"), req.Amount)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, account)
}
