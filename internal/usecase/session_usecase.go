package usecase

import (
	"context"
	"time"
)

// SessionUsecase defines wallet sign-in.
type SessionUsecase interface {
	// Challenge issues a one-time message the wallet must sign.
	Challenge(ctx context.Context, address string) (*ChallengeOutput, error)
	// Login exchanges a signed challenge for an access token.
	Login(ctx context.Context, address, signature string) (*LoginOutput, error)
}

// --- Output DTOs ---

// ChallengeOutput is the message to sign and its expiry.
type ChallengeOutput struct {
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginOutput carries the issued access token.
type LoginOutput struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}
