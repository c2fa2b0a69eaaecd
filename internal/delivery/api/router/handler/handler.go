// Package handler contains the HTTP handlers of the registry API.
package handler

import (
	"net/http"

	"registry/internal/delivery/api/response"
	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if msg, ok := httpErr.Message.(string); ok {
				return domainerrors.ErrValidationFailed.WithDetails(msg)
			}
		}

		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return errors.WithStack(c.Validate(req))
}

// pageQuery holds the offset/limit query parameters of listing endpoints.
type pageQuery struct {
	Offset int
	Limit  int
}

func bindPage(c echo.Context) (pageQuery, error) {
	var page pageQuery
	err := echo.QueryParamsBinder(c).
		Int("offset", &page.Offset).
		Int("limit", &page.Limit).
		BindError()
	if err != nil {
		return page, domainerrors.ErrValidationFailed.WithDetails("offset and limit must be integers")
	}

	return page, nil
}

func kindParam(c echo.Context) (entity.RegistryKind, error) {
	kind := entity.RegistryKind(c.Param("kind"))
	if !kind.IsValid() {
		return "", domainerrors.ErrNotFound.WithDetails("unknown registry " + c.Param("kind"))
	}

	return kind, nil
}

// availability is returned by the name availability endpoints.
type availability struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// ownerRequest transfers a profile to a new controller.
type ownerRequest struct {
	NewOwner string `json:"new_owner" validate:"required"`
}
