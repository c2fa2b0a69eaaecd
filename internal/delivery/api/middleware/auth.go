// Package middleware contains the API specific echo middleware.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "registry/internal/delivery/context"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the caller address from a bearer access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate rejects requests without a valid access token and records the
// token subject as the caller of every usecase invoked by the handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrInvalidToken.WithDetails("authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return domainerrors.ErrInvalidToken.WithDetails("authorization must be a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return domainerrors.ErrInvalidToken
		}

		deliverycontext.SetCaller(c, claims.Subject)

		return next(c)
	}
}

// Caller returns the address set by Authenticate.
func Caller(c echo.Context) string {
	caller, _ := deliverycontext.GetCaller(c)

	return caller
}
