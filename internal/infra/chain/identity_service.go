// Package chain implements the identity primitives of the registry on top of solana-go.
package chain

import (
	"registry/config"
	"registry/internal/domain/constants"
	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/service"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

type identityService struct {
	userProgramID   solana.PublicKey
	vendorProgramID solana.PublicKey
}

// NewIdentityService builds the identity service from the configured program IDs.
func NewIdentityService(cfg *config.Config) (service.IdentityService, error) {
	userProgram := constants.DefaultUserProgramID
	vendorProgram := constants.DefaultVendorProgramID
	if cfg != nil && cfg.Registry != nil {
		if cfg.Registry.UserProgramID != "" {
			userProgram = cfg.Registry.UserProgramID
		}
		if cfg.Registry.VendorProgramID != "" {
			vendorProgram = cfg.Registry.VendorProgramID
		}
	}

	userProgramID, err := solana.PublicKeyFromBase58(userProgram)
	if err != nil {
		return nil, errors.Wrap(err, "invalid user program id")
	}
	vendorProgramID, err := solana.PublicKeyFromBase58(vendorProgram)
	if err != nil {
		return nil, errors.Wrap(err, "invalid vendor program id")
	}

	return &identityService{
		userProgramID:   userProgramID,
		vendorProgramID: vendorProgramID,
	}, nil
}

// ValidateAddress checks that address decodes to a 32 byte public key.
func (s *identityService) ValidateAddress(address string) error {
	if _, err := solana.PublicKeyFromBase58(address); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid address: " + address)
	}

	return nil
}

// ProfileAddress derives the program address that holds a profile.
func (s *identityService) ProfileAddress(kind entity.RegistryKind, registrant, name string) (string, error) {
	var (
		seeds     [][]byte
		programID solana.PublicKey
	)

	switch kind {
	case entity.RegistryKindUser:
		owner, err := solana.PublicKeyFromBase58(registrant)
		if err != nil {
			return "", domainerrors.ErrValidationFailed.WrapMessage("invalid registrant address")
		}
		seeds = [][]byte{[]byte(kind.ProfileSeed()), owner.Bytes()}
		programID = s.userProgramID
	case entity.RegistryKindVendor:
		seeds = [][]byte{[]byte(kind.ProfileSeed()), []byte(name)}
		programID = s.vendorProgramID
	default:
		return "", domainerrors.ErrValidationFailed.WrapMessage("unknown registry kind")
	}

	pda, _, err := solana.FindProgramAddress(seeds, programID)
	if err != nil {
		return "", errors.Wrap(err, "failed to derive profile address")
	}

	return pda.String(), nil
}

// VerifySignature checks an ed25519 signature against the address used as public key.
func (s *identityService) VerifySignature(address string, message []byte, signature string) error {
	publicKey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid address: " + address)
	}

	sig, err := solana.SignatureFromBase58(signature)
	if err != nil {
		return domainerrors.ErrInvalidSignature.WrapMessage("malformed signature")
	}

	if !sig.Verify(publicKey, message) {
		return domainerrors.ErrInvalidSignature
	}

	return nil
}
