// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"math"

	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/repository"
	"registry/internal/util"

	"github.com/pkg/errors"
)

// validateName enforces the byte length of usernames and vendor names.
func validateName(name string) error {
	if len(name) < entity.MinNameLength || len(name) > entity.MaxNameLength {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("name must be %d to %d bytes", entity.MinNameLength, entity.MaxNameLength),
		)
	}

	return nil
}

func validateBio(kind entity.RegistryKind, bio string) error {
	if limit := entity.MaxBioLength(kind); len(bio) > limit {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("%s bio must be at most %d bytes", kind, limit))
	}

	return nil
}

func validateProduct(productID, description string) error {
	if len(productID) == 0 || len(productID) > entity.MaxProductIDLength {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("product id must be 1 to %d bytes", entity.MaxProductIDLength),
		)
	}
	if len(description) > entity.MaxProductDescriptionLength {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("product description must be at most %d bytes", entity.MaxProductDescriptionLength),
		)
	}

	return nil
}

func validateKind(kind entity.RegistryKind) error {
	if !kind.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown registry kind %q", kind))
	}

	return nil
}

// checkAmount rejects amounts that cannot be stored in a signed 64-bit column.
func checkAmount(amount uint64) error {
	if amount > math.MaxInt64 {
		return domainerrors.ErrAmountOutOfRange.WithDetails(fmt.Sprintf("amount %d exceeds %d", amount, int64(math.MaxInt64)))
	}

	return nil
}

// addAmount adds two ledger amounts, failing when the sum leaves the storable range.
func addAmount(a, b uint64) (uint64, error) {
	sum, ok := util.CheckedAdd(a, b)
	if !ok || sum > math.MaxInt64 {
		return 0, domainerrors.ErrArithmeticOverflow.WithDetails(fmt.Sprintf("%d + %d", a, b))
	}

	return sum, nil
}

// subAmount subtracts b from a, failing with underflow when b exceeds a.
func subAmount(a, b uint64, underflow domainerrors.AppError) (uint64, error) {
	diff, ok := util.CheckedSub(a, b)
	if !ok {
		return 0, underflow
	}

	return diff, nil
}

// clampPage normalizes listing parameters. A missing or oversized limit becomes maxLimit.
func clampPage(offset, limit, maxLimit int) (int, int, error) {
	if offset < 0 {
		return 0, 0, domainerrors.ErrValidationFailed.WithDetails("offset must not be negative")
	}
	if limit <= 0 || limit > maxLimit {
		limit = maxLimit
	}

	return offset, limit, nil
}

// loadFactory reads the factory state, locking it when forUpdate is set.
func loadFactory(
	ctx context.Context,
	factoryRepo repository.FactoryRepository,
	kind entity.RegistryKind,
	forUpdate bool,
) (*entity.FactoryState, error) {
	var (
		state *entity.FactoryState
		err   error
	)
	if forUpdate {
		state, err = factoryRepo.FindByKindForUpdate(ctx, kind)
	} else {
		state, err = factoryRepo.FindByKind(ctx, kind)
	}
	if err != nil {
		if errors.Is(err, repository.ErrFactoryNotFound) {
			return nil, domainerrors.ErrFactoryNotInitialized.WithDetails(kind.String())
		}

		return nil, errors.Wrap(err, "failed to find factory state")
	}

	return state, nil
}
