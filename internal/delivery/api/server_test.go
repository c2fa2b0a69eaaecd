package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"registry/config"
	apimiddleware "registry/internal/delivery/api/middleware"
	"registry/internal/delivery/api/router"
	"registry/internal/delivery/api/router/handler"
	deliverycontext "registry/internal/delivery/context"
	"registry/internal/infra/auth"
	"registry/internal/infra/cache"
	"registry/internal/infra/chain"
	"registry/internal/infra/persistence/memory"
	"registry/internal/infra/qrcode"
	"registry/internal/usecase/impl"

	"github.com/gagliardetto/solana-go"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFee = 1_000_000_000

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type testAPI struct {
	t    *testing.T
	echo *echo.Echo
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := &config.Config{
		Auth:     &config.AuthConfig{},
		Registry: &config.RegistryConfig{MaxPageLimit: 10},
		Faucet:   &config.FaucetConfig{Enabled: true, MaxAmount: 100 * testFee},
	}
	cfg.Env.ServiceName = "registry"
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey.Access = "test-secret"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	identity, err := chain.NewIdentityService(cfg)
	require.NoError(t, err)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	store := memory.NewStore()

	registryParams := impl.RegistryServiceParams{
		TxManager: store,
		Identity:  identity,
		QRCode:    qrcode.NewQRCodeService(128, "M"),
		Config:    cfg,
		Logger:    logger,
	}
	routerParams := router.RouterParams{
		SessionHandler: handler.NewSessionHandler(impl.NewSessionService(impl.SessionServiceParams{
			Identity:     identity,
			Challenges:   cache.NewChallengeStore(cfg),
			TokenService: tokens,
			Config:       cfg,
			Logger:       logger,
		})),
		FactoryHandler: handler.NewFactoryHandler(impl.NewFactoryService(impl.FactoryServiceParams{
			TxManager: store,
			Identity:  identity,
			Logger:    logger,
		})),
		UserHandler:   handler.NewUserHandler(impl.NewUserService(registryParams)),
		VendorHandler: handler.NewVendorHandler(impl.NewVendorService(registryParams)),
		AccountHandler: handler.NewAccountHandler(impl.NewAccountService(impl.AccountServiceParams{
			TxManager: store,
			Identity:  identity,
			Config:    cfg,
			Logger:    logger,
		})),
		EventHandler: handler.NewEventHandler(impl.NewActivityService(impl.ActivityServiceParams{
			TxManager: store,
			Config:    cfg,
			Logger:    logger,
		})),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokens, logger),
	}

	return &testAPI{t: t, echo: NewEcho(cfg, logger, routerParams)}
}

func (a *testAPI) do(method, path, token string, body any) (int, envelope) {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()

	a.echo.ServeHTTP(rec, req)

	var env envelope
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	assert.Equal(a.t, rec.Header().Get(deliverycontext.HeaderXRequestID), env.Meta.RequestID)

	return rec.Code, env
}

// login signs in a fresh wallet through the challenge flow and funds it.
func (a *testAPI) login() (string, string) {
	a.t.Helper()

	wallet := solana.NewWallet()
	address := wallet.PublicKey().String()

	code, env := a.do(http.MethodPost, "/auth/challenge", "", map[string]string{"address": address})
	require.Equal(a.t, http.StatusOK, code)
	var challenge struct {
		Message string `json:"message"`
	}
	require.NoError(a.t, json.Unmarshal(env.Data, &challenge))

	signature, err := wallet.PrivateKey.Sign([]byte(challenge.Message))
	require.NoError(a.t, err)

	code, env = a.do(http.MethodPost, "/auth/login", "", map[string]string{
		"address":   address,
		"signature": signature.String(),
	})
	require.Equal(a.t, http.StatusOK, code)
	var login struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(a.t, json.Unmarshal(env.Data, &login))
	require.Equal(a.t, "Bearer", login.TokenType)

	code, _ = a.do(http.MethodPost, "/api/v1/accounts/"+address+"/airdrop", login.AccessToken, map[string]uint64{"amount": 10 * testFee})
	require.Equal(a.t, http.StatusOK, code)

	return address, login.AccessToken
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}

type factoryView struct {
	Admin              string `json:"admin"`
	RegistrationFee    uint64 `json:"registration_fee"`
	TotalFeesCollected uint64 `json:"total_fees_collected"`
	EntityCount        uint64 `json:"entity_count"`
	Paused             bool   `json:"paused"`
}

func TestAPI_Health(t *testing.T) {
	api := newTestAPI(t)

	code, env := api.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestAPI_UserRegistryLifecycle(t *testing.T) {
	api := newTestAPI(t)
	admin, adminToken := api.login()
	alice, aliceToken := api.login()
	_, bobToken := api.login()

	code, env := api.do(http.MethodPost, "/api/v1/factories/user", adminToken, map[string]uint64{"registration_fee": testFee})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, admin, decode[factoryView](t, env).Admin)

	code, env = api.do(http.MethodPost, "/api/v1/users", aliceToken, map[string]string{"username": "alice123", "bio": "hi"})
	require.Equal(t, http.StatusCreated, code)

	code, env = api.do(http.MethodPost, "/api/v1/users", bobToken, map[string]string{"username": "alice123"})
	require.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "NAME_ALREADY_TAKEN", env.Error.Code)

	code, env = api.do(http.MethodGet, "/api/v1/users/alice123/available", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.False(t, decode[map[string]any](t, env)["available"].(bool))

	code, env = api.do(http.MethodPut, "/api/v1/users/alice123/username", aliceToken, map[string]string{"username": "alice_new"})
	require.Equal(t, http.StatusOK, code)
	code, _ = api.do(http.MethodGet, "/api/v1/users/alice123", "", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, env = api.do(http.MethodPut, "/api/v1/users/alice_new/bio", bobToken, map[string]string{"bio": "stolen"})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	assert.Nil(t, env.Error.Details)

	code, env = api.do(http.MethodGet, "/api/v1/users/alice_new", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, alice, decode[map[string]any](t, env)["owner"])

	code, env = api.do(http.MethodPost, "/api/v1/factories/user/withdrawals", adminToken, map[string]any{"amount": testFee / 2, "destination": admin})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, uint64(testFee/2), decode[factoryView](t, env).TotalFeesCollected)

	code, env = api.do(http.MethodGet, "/api/v1/users?limit=100", "", nil)
	require.Equal(t, http.StatusOK, code)
	page := decode[map[string]any](t, env)
	assert.EqualValues(t, 1, page["total"])
	assert.EqualValues(t, 10, page["limit"])

	code, env = api.do(http.MethodGet, "/api/v1/events?kind=user", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 4, decode[map[string]any](t, env)["total"])
}

func TestAPI_VendorEndpoints(t *testing.T) {
	api := newTestAPI(t)
	_, adminToken := api.login()
	_, vendorToken := api.login()

	code, _ := api.do(http.MethodPost, "/api/v1/factories/vendor", adminToken, map[string]uint64{"registration_fee": testFee})
	require.Equal(t, http.StatusCreated, code)

	code, env := api.do(http.MethodPut, "/api/v1/factories/vendor/pause", adminToken, map[string]bool{"paused": true})
	require.Equal(t, http.StatusOK, code)
	assert.True(t, decode[factoryView](t, env).Paused)

	code, env = api.do(http.MethodPost, "/api/v1/vendors", vendorToken, map[string]string{"vendor_name": "tacos"})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "REGISTRATION_PAUSED", env.Error.Code)

	code, _ = api.do(http.MethodPut, "/api/v1/factories/vendor/pause", adminToken, map[string]bool{"paused": false})
	require.Equal(t, http.StatusOK, code)

	code, _ = api.do(http.MethodPost, "/api/v1/vendors", vendorToken, map[string]string{"vendor_name": "tacos", "description": "al pastor"})
	require.Equal(t, http.StatusCreated, code)

	code, env = api.do(http.MethodPost, "/api/v1/vendors/tacos/products", vendorToken, map[string]any{"product_id": "p1", "price": 500})
	require.Equal(t, http.StatusCreated, code)
	assert.Len(t, decode[map[string]any](t, env)["products"], 1)

	code, _ = api.do(http.MethodDelete, "/api/v1/vendors/tacos/products/p1", vendorToken, nil)
	require.Equal(t, http.StatusOK, code)
	code, env = api.do(http.MethodDelete, "/api/v1/vendors/tacos/products/p1", vendorToken, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", env.Error.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vendors/tacos/qr", nil)
	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes()[:4])
}

func TestAPI_RequestErrors(t *testing.T) {
	api := newTestAPI(t)
	_, token := api.login()

	tests := []struct {
		name     string
		method   string
		path     string
		token    string
		body     any
		wantCode int
		wantErr  string
	}{
		{"missing token", http.MethodPost, "/api/v1/users", "", map[string]string{"username": "carol"}, http.StatusUnauthorized, "INVALID_TOKEN"},
		{"garbage token", http.MethodPost, "/api/v1/users", "not-a-jwt", map[string]string{"username": "carol"}, http.StatusUnauthorized, "INVALID_TOKEN"},
		{"missing field", http.MethodPost, "/api/v1/users", token, map[string]string{"bio": "x"}, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"unknown registry", http.MethodGet, "/api/v1/factories/admin", "", nil, http.StatusNotFound, "NOT_FOUND"},
		{"uninitialized factory", http.MethodGet, "/api/v1/factories/user", "", nil, http.StatusNotFound, "FACTORY_NOT_INITIALIZED"},
		{"bad paging", http.MethodGet, "/api/v1/users?offset=abc", "", nil, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"negative offset", http.MethodGet, "/api/v1/vendors?offset=-1", "", nil, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"bad event kind", http.MethodGet, "/api/v1/events?kind=admin", "", nil, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"unknown challenge", http.MethodPost, "/auth/login", "", map[string]string{"address": solana.NewWallet().PublicKey().String(), "signature": "x"}, http.StatusUnauthorized, "CHALLENGE_NOT_FOUND"},
		{"faucet limit", http.MethodPost, "/api/v1/accounts/" + solana.NewWallet().PublicKey().String() + "/airdrop", token, map[string]uint64{"amount": 101 * testFee}, http.StatusBadRequest, "AMOUNT_OUT_OF_RANGE"},
		{"unknown route", http.MethodGet, "/nope", "", nil, http.StatusNotFound, "HTTP_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := api.do(tt.method, tt.path, tt.token, tt.body)

			assert.Equal(t, tt.wantCode, code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantErr, env.Error.Code)
		})
	}
}

func TestAPI_ReplayedLoginFails(t *testing.T) {
	api := newTestAPI(t)
	wallet := solana.NewWallet()
	address := wallet.PublicKey().String()

	_, env := api.do(http.MethodPost, "/auth/challenge", "", map[string]string{"address": address})
	message := decode[map[string]any](t, env)["message"].(string)
	signature, err := wallet.PrivateKey.Sign([]byte(message))
	require.NoError(t, err)
	body := map[string]string{"address": address, "signature": signature.String()}

	code, _ := api.do(http.MethodPost, "/auth/login", "", body)
	require.Equal(t, http.StatusOK, code)

	code, env = api.do(http.MethodPost, "/auth/login", "", body)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "CHALLENGE_NOT_FOUND", env.Error.Code)
}
