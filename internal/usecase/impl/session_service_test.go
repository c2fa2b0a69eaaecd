package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"registry/config"
	domainerrors "registry/internal/domain/errors"
	mockSvc "registry/internal/mocks/service"
	"registry/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testWallet = "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service      usecase.SessionUsecase
	identity     *mockSvc.MockIdentityService
	challenges   *mockSvc.MockChallengeStore
	tokenService *mockSvc.MockTokenService
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	identity := mockSvc.NewMockIdentityService(t)
	challenges := mockSvc.NewMockChallengeStore(t)
	tokenService := mockSvc.NewMockTokenService(t)

	cfg := &config.Config{Auth: &config.AuthConfig{ChallengeTTL: 2 * time.Minute}}
	cfg.Env.ServiceName = "registry-test"

	service := NewSessionService(SessionServiceParams{
		Identity:     identity,
		Challenges:   challenges,
		TokenService: tokenService,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return sessionServiceFixtures{
		service:      service,
		identity:     identity,
		challenges:   challenges,
		tokenService: tokenService,
	}
}

func TestSessionService_Challenge_Success(t *testing.T) {
	fx := createTestSessionService(t)

	var saved string
	fx.identity.EXPECT().ValidateAddress(testWallet).Return(nil)
	fx.challenges.EXPECT().Save(testWallet, mock.AnythingOfType("string"), 2*time.Minute).
		Run(func(_ string, message string, _ time.Duration) { saved = message }).
		Return()

	before := time.Now().UTC()
	output, err := fx.service.Challenge(context.Background(), testWallet)

	require.NoError(t, err)
	assert.Equal(t, saved, output.Message)
	assert.True(t, strings.HasPrefix(output.Message, "registry-test wants you to sign in with your wallet:\n"+testWallet+"\n\nNonce: "))
	assert.Contains(t, output.Message, "\nIssued At: ")
	assert.WithinDuration(t, before.Add(2*time.Minute), output.ExpiresAt, 5*time.Second)
}

func TestSessionService_Challenge_FreshNonceEachTime(t *testing.T) {
	fx := createTestSessionService(t)

	fx.identity.EXPECT().ValidateAddress(testWallet).Return(nil)
	fx.challenges.EXPECT().Save(testWallet, mock.AnythingOfType("string"), 2*time.Minute).Return()

	first, err := fx.service.Challenge(context.Background(), testWallet)
	require.NoError(t, err)
	second, err := fx.service.Challenge(context.Background(), testWallet)
	require.NoError(t, err)

	assert.NotEqual(t, first.Message, second.Message)
}

func TestSessionService_Challenge_InvalidAddress(t *testing.T) {
	fx := createTestSessionService(t)

	fx.identity.EXPECT().ValidateAddress("nope").Return(domainerrors.ErrValidationFailed.WithDetails("invalid address"))

	output, err := fx.service.Challenge(context.Background(), "nope")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSessionService_Login_Success(t *testing.T) {
	fx := createTestSessionService(t)
	expiresAt := time.Now().Add(15 * time.Minute)

	fx.identity.EXPECT().ValidateAddress(testWallet).Return(nil)
	fx.challenges.EXPECT().Consume(testWallet).Return("message", true)
	fx.identity.EXPECT().VerifySignature(testWallet, []byte("message"), "sig").Return(nil)
	fx.tokenService.EXPECT().GenerateAccessToken(testWallet).Return("token", expiresAt, nil)

	output, err := fx.service.Login(context.Background(), testWallet, "sig")

	require.NoError(t, err)
	assert.Equal(t, "token", output.AccessToken)
	assert.Equal(t, "Bearer", output.TokenType)
	assert.Equal(t, expiresAt, output.ExpiresAt)
}

func TestSessionService_Login_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(fx sessionServiceFixtures)
		wantErr error
		wantMsg string
	}{
		{
			name: "no pending challenge",
			setup: func(fx sessionServiceFixtures) {
				fx.identity.EXPECT().ValidateAddress(testWallet).Return(nil)
				fx.challenges.EXPECT().Consume(testWallet).Return("", false)
			},
			wantErr: domainerrors.ErrChallengeNotFound,
		},
		{
			name: "bad signature burns the challenge",
			setup: func(fx sessionServiceFixtures) {
				fx.identity.EXPECT().ValidateAddress(testWallet).Return(nil)
				fx.challenges.EXPECT().Consume(testWallet).Return("message", true).Once()
				fx.identity.EXPECT().VerifySignature(testWallet, []byte("message"), "sig").
					Return(domainerrors.ErrInvalidSignature)
			},
			wantErr: domainerrors.ErrInvalidSignature,
		},
		{
			name: "token generation failure",
			setup: func(fx sessionServiceFixtures) {
				fx.identity.EXPECT().ValidateAddress(testWallet).Return(nil)
				fx.challenges.EXPECT().Consume(testWallet).Return("message", true)
				fx.identity.EXPECT().VerifySignature(testWallet, []byte("message"), "sig").Return(nil)
				fx.tokenService.EXPECT().GenerateAccessToken(testWallet).Return("", time.Time{}, errors.New("signing failed"))
			},
			wantMsg: "failed to generate access token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSessionService(t)
			tt.setup(fx)

			output, err := fx.service.Login(context.Background(), testWallet, "sig")

			require.Error(t, err)
			assert.Nil(t, output)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
