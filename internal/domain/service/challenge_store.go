package service

import "time"

// ChallengeStore keeps pending sign-in challenges until they expire.
type ChallengeStore interface {
	// Save stores the challenge message for an address, replacing any previous one.
	Save(address, message string, ttl time.Duration)

	// Consume returns the pending message for an address and removes it.
	Consume(address string) (string, bool)
}
