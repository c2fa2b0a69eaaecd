package service

import "registry/internal/domain/entity"

// IdentityService wraps the key and address primitives of the chain.
type IdentityService interface {
	// ValidateAddress checks that address is a base58 encoded ed25519 public key.
	ValidateAddress(address string) error

	// ProfileAddress derives the program address of a profile.
	// Users are seeded by their registrant, vendors by their name.
	ProfileAddress(kind entity.RegistryKind, registrant, name string) (string, error)

	// VerifySignature checks a base58 signature of message made by address.
	VerifySignature(address string, message []byte, signature string) error
}
