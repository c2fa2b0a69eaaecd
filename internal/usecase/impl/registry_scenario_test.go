package impl

import (
	"context"
	"sync"
	"testing"

	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFee uint64 = 1_000_000_000

func TestRegistry_FeeLifecycle(t *testing.T) {
	h := newRegistryHarness(t)
	ctx := context.Background()

	admin, alice, bob, treasury := newAddress(), newAddress(), newAddress(), newAddress()
	h.fund(t, alice, 3*testFee)
	h.fund(t, bob, 3*testFee)

	_, err := h.factory.Initialize(ctx, entity.RegistryKindUser, admin, testFee)
	require.NoError(t, err)

	_, err = h.users.RegisterUser(ctx, alice, &usecase.RegisterUserInput{Username: "alice123", Bio: "hi"})
	require.NoError(t, err)
	state := h.state(t, entity.RegistryKindUser)
	assert.Equal(t, uint64(1), state.EntityCount)
	assert.Equal(t, testFee, state.TotalFeesCollected)

	_, err = h.users.RegisterUser(ctx, bob, &usecase.RegisterUserInput{Username: "bob456"})
	require.NoError(t, err)
	state = h.state(t, entity.RegistryKindUser)
	assert.Equal(t, uint64(2), state.EntityCount)
	assert.Equal(t, 2*testFee, state.TotalFeesCollected)

	_, err = h.users.RegisterUser(ctx, bob, &usecase.RegisterUserInput{Username: "bob456"})
	assert.True(t, errors.Is(err, domainerrors.ErrNameAlreadyTaken))

	state, err = h.factory.WithdrawFees(ctx, entity.RegistryKindUser, admin, &usecase.WithdrawFeesInput{
		Amount:      testFee / 2,
		Destination: treasury,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1_500_000_000), state.TotalFeesCollected)
	assert.Equal(t, testFee/2, h.balance(t, treasury))

	_, err = h.factory.SetRegistrationFee(ctx, entity.RegistryKindUser, alice, 1)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	assert.Equal(t, 2*testFee, h.balance(t, alice))
	assert.Equal(t, 2*testFee, h.balance(t, bob))
	assert.Equal(t, []entity.EventType{
		entity.EventFactoryInitialized,
		entity.EventUserRegistered,
		entity.EventUserRegistered,
		entity.EventFactoryFeesWithdrawn,
	}, h.publisher.types())
}

func TestRegistry_InsufficientFundsLeavesLedgerUnchanged(t *testing.T) {
	h := newRegistryHarness(t)
	ctx := context.Background()

	admin, poor := newAddress(), newAddress()
	_, err := h.factory.Initialize(ctx, entity.RegistryKindUser, admin, testFee)
	require.NoError(t, err)
	h.fund(t, poor, testFee-1)

	_, err = h.users.RegisterUser(ctx, poor, &usecase.RegisterUserInput{Username: "poorname"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientFunds))

	state := h.state(t, entity.RegistryKindUser)
	assert.Zero(t, state.EntityCount)
	assert.Zero(t, state.TotalFeesCollected)
	assert.Equal(t, testFee-1, h.balance(t, poor))

	available, err := h.users.CheckUsername(ctx, "poorname")
	require.NoError(t, err)
	assert.True(t, available)

	events, err := h.activity.ListEvents(ctx, entity.RegistryKindUser, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), events.Total)
}

func TestRegistry_OneProfilePerRegistrant(t *testing.T) {
	h := newRegistryHarness(t)
	ctx := context.Background()

	admin, alice := newAddress(), newAddress()
	_, err := h.factory.Initialize(ctx, entity.RegistryKindUser, admin, 0)
	require.NoError(t, err)

	_, err = h.users.RegisterUser(ctx, alice, &usecase.RegisterUserInput{Username: "alice123"})
	require.NoError(t, err)

	_, err = h.users.RegisterUser(ctx, alice, &usecase.RegisterUserInput{Username: "alice456"})
	assert.True(t, errors.Is(err, domainerrors.ErrProfileAlreadyExists))
	assert.Equal(t, uint64(1), h.state(t, entity.RegistryKindUser).EntityCount)
}

func TestRegistry_ConcurrentRegistrationOfOneName(t *testing.T) {
	h := newRegistryHarness(t)
	ctx := context.Background()

	admin := newAddress()
	_, err := h.factory.Initialize(ctx, entity.RegistryKindVendor, admin, testFee)
	require.NoError(t, err)

	const contenders = 8
	registrants := newAddresses(contenders)
	for _, registrant := range registrants {
		h.fund(t, registrant, testFee)
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		taken     int
	)
	for _, registrant := range registrants {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.vendors.RegisterVendor(ctx, registrant, &usecase.RegisterVendorInput{VendorName: "tacostand"})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domainerrors.ErrNameAlreadyTaken):
				taken++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, contenders-1, taken)

	state := h.state(t, entity.RegistryKindVendor)
	assert.Equal(t, uint64(1), state.EntityCount)
	assert.Equal(t, testFee, state.TotalFeesCollected)
}

func TestRegistry_PauseGate(t *testing.T) {
	h := newRegistryHarness(t)
	ctx := context.Background()

	admin, vendor := newAddress(), newAddress()
	_, err := h.factory.Initialize(ctx, entity.RegistryKindVendor, admin, 0)
	require.NoError(t, err)

	_, err = h.factory.PauseRegistration(ctx, entity.RegistryKindVendor, vendor, true)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	state, err := h.factory.PauseRegistration(ctx, entity.RegistryKindVendor, admin, true)
	require.NoError(t, err)
	assert.True(t, state.Paused)

	// The gate is checked before the name is validated.
	_, err = h.vendors.RegisterVendor(ctx, vendor, &usecase.RegisterVendorInput{VendorName: "x"})
	assert.True(t, errors.Is(err, domainerrors.ErrRegistrationPaused))

	_, err = h.factory.PauseRegistration(ctx, entity.RegistryKindVendor, admin, false)
	require.NoError(t, err)

	profile, err := h.vendors.RegisterVendor(ctx, vendor, &usecase.RegisterVendorInput{VendorName: "tacostand"})
	require.NoError(t, err)
	assert.Equal(t, "tacostand", profile.Name)

	_, err = h.factory.PauseRegistration(ctx, entity.RegistryKindUser, admin, true)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRegistry_Rename(t *testing.T) {
	h := newRegistryHarness(t)
	ctx := context.Background()

	admin, alice, bob := newAddress(), newAddress(), newAddress()
	_, err := h.factory.Initialize(ctx, entity.RegistryKindUser, admin, 0)
	require.NoError(t, err)
	_, err = h.users.RegisterUser(ctx, alice, &usecase.RegisterUserInput{Username: "alice123"})
	require.NoError(t, err)
	_, err = h.users.RegisterUser(ctx, bob, &usecase.RegisterUserInput{Username: "bob456"})
	require.NoError(t, err)

	_, err = h.users.ChangeUsername(ctx, bob, "alice123", "mallory")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	_, err = h.users.ChangeUsername(ctx, alice, "alice123", "bob456")
	assert.True(t, errors.Is(err, domainerrors.ErrNameAlreadyTaken))

	before := len(h.publisher.types())
	same, err := h.users.ChangeUsername(ctx, alice, "alice123", "alice123")
	require.NoError(t, err)
	assert.Equal(t, "alice123", same.Name)
	assert.Len(t, h.publisher.types(), before)

	renamed, err := h.users.ChangeUsername(ctx, alice, "alice123", "alice999")
	require.NoError(t, err)
	assert.Equal(t, "alice999", renamed.Name)

	oldFree, err := h.users.CheckUsername(ctx, "alice123")
	require.NoError(t, err)
	assert.True(t, oldFree)

	newFree, err := h.users.CheckUsername(ctx, "alice999")
	require.NoError(t, err)
	assert.False(t, newFree)

	found, err := h.users.GetUser(ctx, "alice999")
	require.NoError(t, err)
	assert.Equal(t, renamed.ID, found.ID)
	assert.Equal(t, renamed.Address, found.Address)

	_, err = h.users.GetUser(ctx, "alice123")
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestRegistry_OwnerOperations(t *testing.T) {
	h := newRegistryHarness(t)
	ctx := context.Background()

	admin, owner, buyer := newAddress(), newAddress(), newAddress()
	_, err := h.factory.Initialize(ctx, entity.RegistryKindUser, admin, 0)
	require.NoError(t, err)
	_, err = h.users.RegisterUser(ctx, owner, &usecase.RegisterUserInput{Username: "owner01"})
	require.NoError(t, err)

	updated, err := h.users.UpdateBio(ctx, owner, "owner01", "new bio")
	require.NoError(t, err)
	assert.Equal(t, "new bio", updated.Bio)

	_, err = h.users.UpdateBio(ctx, buyer, "owner01", "hijack")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	transferred, err := h.users.TransferOwnership(ctx, owner, "owner01", buyer)
	require.NoError(t, err)
	assert.Equal(t, buyer, transferred.Owner)

	_, err = h.users.UpdateBio(ctx, owner, "owner01", "too late")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	_, err = h.users.UpdateBio(ctx, buyer, "owner01", string(make([]byte, entity.MaxUserBioLength+1)))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRegistry_VendorProducts(t *testing.T) {
	h := newRegistryHarness(t)
	ctx := context.Background()

	admin, vendor, stranger := newAddress(), newAddress(), newAddress()
	_, err := h.factory.Initialize(ctx, entity.RegistryKindVendor, admin, 0)
	require.NoError(t, err)
	_, err = h.vendors.RegisterVendor(ctx, vendor, &usecase.RegisterVendorInput{VendorName: "tacostand", Description: "tacos"})
	require.NoError(t, err)

	profile, err := h.vendors.AddProduct(ctx, vendor, "tacostand", &usecase.AddProductInput{ProductID: "al-pastor", Price: 3_000_000})
	require.NoError(t, err)
	require.Len(t, profile.Products, 1)

	_, err = h.vendors.AddProduct(ctx, vendor, "tacostand", &usecase.AddProductInput{ProductID: "al-pastor", Price: 1})
	assert.True(t, errors.Is(err, domainerrors.ErrProductAlreadyExists))

	_, err = h.vendors.AddProduct(ctx, stranger, "tacostand", &usecase.AddProductInput{ProductID: "fake", Price: 1})
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	_, err = h.vendors.RemoveProduct(ctx, vendor, "tacostand", "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))

	profile, err = h.vendors.RemoveProduct(ctx, vendor, "tacostand", "al-pastor")
	require.NoError(t, err)
	assert.Empty(t, profile.Products)

	found, err := h.vendors.GetVendor(ctx, "tacostand")
	require.NoError(t, err)
	assert.Empty(t, found.Products)

	png, err := h.vendors.VendorQRCode(ctx, "tacostand")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestRegistry_ProductLimit(t *testing.T) {
	h := newRegistryHarness(t)
	ctx := context.Background()

	admin, vendor := newAddress(), newAddress()
	_, err := h.factory.Initialize(ctx, entity.RegistryKindVendor, admin, 0)
	require.NoError(t, err)
	_, err = h.vendors.RegisterVendor(ctx, vendor, &usecase.RegisterVendorInput{VendorName: "bigstore"})
	require.NoError(t, err)

	for i := range entity.MaxProductsPerVendor {
		_, err := h.vendors.AddProduct(ctx, vendor, "bigstore", &usecase.AddProductInput{
			ProductID: "item-" + string(rune('A'+i/26)) + string(rune('a'+i%26)),
			Price:     uint64(i + 1),
		})
		require.NoError(t, err)
	}

	_, err = h.vendors.AddProduct(ctx, vendor, "bigstore", &usecase.AddProductInput{ProductID: "one-more", Price: 1})
	assert.True(t, errors.Is(err, domainerrors.ErrProductLimitReached))
}

func TestRegistry_WithdrawRules(t *testing.T) {
	h := newRegistryHarness(t)
	ctx := context.Background()

	admin, user, treasury := newAddress(), newAddress(), newAddress()
	_, err := h.factory.Initialize(ctx, entity.RegistryKindUser, admin, testFee)
	require.NoError(t, err)

	_, err = h.factory.WithdrawFees(ctx, entity.RegistryKindUser, admin, &usecase.WithdrawFeesInput{Amount: 1, Destination: treasury})
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientBalance), "got %v", err)
	assert.False(t, errors.Is(err, domainerrors.ErrNoFeesToWithdraw))

	h.fund(t, user, testFee)
	_, err = h.users.RegisterUser(ctx, user, &usecase.RegisterUserInput{Username: "payer"})
	require.NoError(t, err)

	_, err = h.factory.WithdrawFees(ctx, entity.RegistryKindUser, admin, &usecase.WithdrawFeesInput{Amount: 0, Destination: treasury})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "got %v", err)
	assert.Equal(t, testFee, h.state(t, entity.RegistryKindUser).TotalFeesCollected)

	_, err = h.factory.WithdrawFees(ctx, entity.RegistryKindUser, admin, &usecase.WithdrawFeesInput{Amount: testFee + 1, Destination: treasury})
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientBalance))

	_, err = h.factory.WithdrawFees(ctx, entity.RegistryKindUser, user, &usecase.WithdrawFeesInput{Amount: 1, Destination: user})
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	state, err := h.factory.WithdrawFees(ctx, entity.RegistryKindUser, admin, &usecase.WithdrawFeesInput{Amount: testFee, Destination: treasury})
	require.NoError(t, err)
	assert.Zero(t, state.TotalFeesCollected)
	assert.Equal(t, testFee, h.balance(t, treasury))
}

func TestRegistry_VendorWithdrawRules(t *testing.T) {
	h := newRegistryHarness(t)
	ctx := context.Background()

	admin, vendor, treasury := newAddress(), newAddress(), newAddress()
	_, err := h.factory.Initialize(ctx, entity.RegistryKindVendor, admin, testFee)
	require.NoError(t, err)

	_, err = h.factory.WithdrawFees(ctx, entity.RegistryKindVendor, admin, &usecase.WithdrawFeesInput{Amount: 1, Destination: treasury})
	assert.True(t, errors.Is(err, domainerrors.ErrNoFeesToWithdraw), "got %v", err)

	h.fund(t, vendor, testFee)
	_, err = h.vendors.RegisterVendor(ctx, vendor, &usecase.RegisterVendorInput{VendorName: "stall"})
	require.NoError(t, err)

	_, err = h.factory.WithdrawFees(ctx, entity.RegistryKindVendor, admin, &usecase.WithdrawFeesInput{Amount: testFee + 1, Destination: treasury})
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientBalance), "got %v", err)

	state, err := h.factory.WithdrawFees(ctx, entity.RegistryKindVendor, admin, &usecase.WithdrawFeesInput{Amount: testFee, Destination: treasury})
	require.NoError(t, err)
	assert.Zero(t, state.TotalFeesCollected)
	assert.Equal(t, testFee, h.balance(t, treasury))
}

func TestRegistry_FactoryInitialization(t *testing.T) {
	h := newRegistryHarness(t)
	ctx := context.Background()
	admin := newAddress()

	_, err := h.factory.GetFactoryState(ctx, entity.RegistryKindUser)
	assert.True(t, errors.Is(err, domainerrors.ErrFactoryNotInitialized))

	_, err = h.users.RegisterUser(ctx, admin, &usecase.RegisterUserInput{Username: "early"})
	assert.True(t, errors.Is(err, domainerrors.ErrFactoryNotInitialized))

	_, err = h.factory.Initialize(ctx, entity.RegistryKindUser, admin, testFee)
	require.NoError(t, err)

	_, err = h.factory.Initialize(ctx, entity.RegistryKindUser, admin, testFee)
	assert.True(t, errors.Is(err, domainerrors.ErrFactoryAlreadyInitialized))

	_, err = h.factory.Initialize(ctx, entity.RegistryKind("merchant"), admin, testFee)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = h.factory.Initialize(ctx, entity.RegistryKindVendor, "not-a-key", testFee)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = h.factory.Initialize(ctx, entity.RegistryKindVendor, admin, uint64(1)<<63)
	assert.True(t, errors.Is(err, domainerrors.ErrAmountOutOfRange))

	// The registries are independent.
	_, err = h.factory.GetFactoryState(ctx, entity.RegistryKindVendor)
	assert.True(t, errors.Is(err, domainerrors.ErrFactoryNotInitialized))
}

func TestRegistry_ListingAndFeed(t *testing.T) {
	h := newRegistryHarness(t)
	ctx := context.Background()

	admin := newAddress()
	_, err := h.factory.Initialize(ctx, entity.RegistryKindUser, admin, 0)
	require.NoError(t, err)
	for i, registrant := range newAddresses(3) {
		_, err := h.users.RegisterUser(ctx, registrant, &usecase.RegisterUserInput{Username: "user-" + string(rune('a'+i))})
		require.NoError(t, err)
	}

	page, err := h.users.ListUsers(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "user-b", page.Items[0].Name)

	_, err = h.users.ListUsers(ctx, -1, 10)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	vendors, err := h.vendors.ListVendors(ctx, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, vendors.Total)
	assert.Equal(t, 20, vendors.Limit)

	feed, err := h.activity.ListEvents(ctx, "", 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), feed.Total)
	require.Len(t, feed.Items, 2)
	assert.Equal(t, "user-c", feed.Items[0].ProfileName)
}
