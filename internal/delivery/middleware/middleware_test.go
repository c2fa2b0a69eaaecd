package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"registry/config"
	deliverycontext "registry/internal/delivery/context"
	"registry/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false)

	var seen, seenInContext string
	e.GET("/ping", func(c echo.Context) error {
		seen = deliverycontext.GetRequestID(c)
		seenInContext = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusNoContent)
	})

	t.Run("propagates client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, "client-id", seen)
		assert.Equal(t, "client-id", seenInContext)
		assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("replaces oversized id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", maxRequestIDLength+1))
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Len(t, seen, 36)
		assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("ids must fit the event column", func(t *testing.T) {
		fits := strings.Repeat("a", entity.MaxRequestIDLength)
		tooLong := strings.Repeat("b", 100)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, fits)
		e.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, fits, seenInContext)

		req = httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, tooLong)
		e.ServeHTTP(httptest.NewRecorder(), req)
		assert.NotEqual(t, tooLong, seenInContext)
		assert.LessOrEqual(t, len(seenInContext), entity.MaxRequestIDLength)
	})
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("quiet on success outside debug", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)
		e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.NotContains(t, buf.String(), "HTTP Request")
	})

	t.Run("logs failures with final status and caller", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)
		e.GET("/fail", func(c echo.Context) error {
			deliverycontext.SetCaller(c, "wallet")

			return echo.NewHTTPError(http.StatusConflict, "taken")
		})
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, buf.String(), `"status":409`)
		assert.Contains(t, buf.String(), `"caller":"wallet"`)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
	})

	t.Run("logs success in debug", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, true)
		e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok?x=1", nil))

		assert.Contains(t, buf.String(), `"query":"x=1"`)
	})
}
