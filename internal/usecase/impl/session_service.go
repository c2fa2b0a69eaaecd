package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"registry/config"
	deliverycontext "registry/internal/delivery/context"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/service"
	"registry/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultChallengeTTL = 5 * time.Minute
	challengeNonceBytes = 16
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	identity     service.IdentityService
	challenges   service.ChallengeStore
	tokenService service.TokenService
	challengeTTL time.Duration
	serviceName  string
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Identity     service.IdentityService
	Challenges   service.ChallengeStore
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	challengeTTL := defaultChallengeTTL
	serviceName := "registry"
	if params.Config != nil {
		if params.Config.Auth != nil && params.Config.Auth.ChallengeTTL > 0 {
			challengeTTL = params.Config.Auth.ChallengeTTL
		}
		if params.Config.Env.ServiceName != "" {
			serviceName = params.Config.Env.ServiceName
		}
	}

	return &sessionService{
		identity:     params.Identity,
		challenges:   params.Challenges,
		tokenService: params.TokenService,
		challengeTTL: challengeTTL,
		serviceName:  serviceName,
		logger:       params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Challenge issues a fresh sign-in message for address, replacing any pending one.
func (srv *sessionService) Challenge(ctx context.Context, address string) (*usecase.ChallengeOutput, error) {
	if err := srv.identity.ValidateAddress(address); err != nil {
		return nil, errors.Wrap(err, "invalid wallet address")
	}

	nonce := make([]byte, challengeNonceBytes)
	if _, err := rand.Read(nonce); err != nil {
		return nil, errors.Wrap(err, "failed to generate nonce")
	}

	issuedAt := time.Now().UTC()
	message := fmt.Sprintf("%s wants you to sign in with your wallet:\n%s\n\nNonce: %s\nIssued At: %s",
		srv.serviceName, address, hex.EncodeToString(nonce), issuedAt.Format(time.RFC3339))
	srv.challenges.Save(address, message, srv.challengeTTL)

	srv.log(ctx).Debug("Issued sign-in challenge", slog.String("address", address))

	return &usecase.ChallengeOutput{
		Message:   message,
		ExpiresAt: issuedAt.Add(srv.challengeTTL),
	}, nil
}

// Login verifies the signed challenge and issues an access token for address.
// The challenge is consumed even when the signature is wrong.
func (srv *sessionService) Login(ctx context.Context, address, signature string) (*usecase.LoginOutput, error) {
	if err := srv.identity.ValidateAddress(address); err != nil {
		return nil, errors.Wrap(err, "invalid wallet address")
	}

	message, ok := srv.challenges.Consume(address)
	if !ok {
		return nil, domainerrors.ErrChallengeNotFound.WithDetails(address)
	}

	if err := srv.identity.VerifySignature(address, []byte(message), signature); err != nil {
		srv.log(ctx).Warn("Rejected sign-in signature", slog.String("address", address))

		return nil, errors.Wrap(err, "failed to verify challenge signature")
	}

	token, expiresAt, err := srv.tokenService.GenerateAccessToken(address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("Wallet signed in", slog.String("address", address))

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}
