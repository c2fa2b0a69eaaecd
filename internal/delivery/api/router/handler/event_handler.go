package handler

import (
	"registry/internal/delivery/api/response"
	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EventHandler serves the activity feed.
type EventHandler struct {
	uc usecase.ActivityUsecase
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(uc usecase.ActivityUsecase) *EventHandler {
	return &EventHandler{uc: uc}
}

// ListEvents returns recorded events newest first, optionally for one registry.
func (h *EventHandler) ListEvents(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return err
	}
	kind := entity.RegistryKind(c.QueryParam("kind"))
	if kind != "" && !kind.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("kind must be user or vendor")
	}

	events, err := h.uc.ListEvents(c.Request().Context(), kind, page.Offset, page.Limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, events)
}
