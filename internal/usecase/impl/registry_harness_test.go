package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"registry/config"
	"registry/internal/domain/entity"
	"registry/internal/domain/service"
	"registry/internal/infra/chain"
	"registry/internal/infra/persistence/memory"
	"registry/internal/infra/qrcode"
	"registry/internal/usecase"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Registry: &config.RegistryConfig{MaxPageLimit: 20},
		Faucet:   &config.FaucetConfig{Enabled: true},
		Auth:     &config.AuthConfig{},
	}
}

// recordingPublisher keeps every published event in memory.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*entity.Event
	err    error
}

func (p *recordingPublisher) PublishRegistryEvent(_ context.Context, event *entity.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return p.err
}

func (p *recordingPublisher) Close() error {
	return nil
}

func (p *recordingPublisher) types() []entity.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()

	types := make([]entity.EventType, 0, len(p.events))
	for _, event := range p.events {
		types = append(types, event.Type)
	}

	return types
}

// registryHarness wires every registry service to one in-memory ledger.
type registryHarness struct {
	store     *memory.Store
	identity  service.IdentityService
	publisher *recordingPublisher
	factory   usecase.FactoryUsecase
	users     usecase.UserUsecase
	vendors   usecase.VendorUsecase
	accounts  usecase.AccountUsecase
	activity  usecase.ActivityUsecase
}

func newRegistryHarness(t require.TestingT) *registryHarness {
	cfg := newTestConfig()
	logger := newDiscardLogger()

	identity, err := chain.NewIdentityService(cfg)
	require.NoError(t, err)

	store := memory.NewStore()
	publisher := &recordingPublisher{}
	registryParams := RegistryServiceParams{
		TxManager: store,
		Identity:  identity,
		Publisher: publisher,
		QRCode:    qrcode.NewQRCodeService(128, "M"),
		Config:    cfg,
		Logger:    logger,
	}

	return &registryHarness{
		store:     store,
		identity:  identity,
		publisher: publisher,
		factory: NewFactoryService(FactoryServiceParams{
			TxManager: store,
			Identity:  identity,
			Publisher: publisher,
			Logger:    logger,
		}),
		users:   NewUserService(registryParams),
		vendors: NewVendorService(registryParams),
		accounts: NewAccountService(AccountServiceParams{
			TxManager: store,
			Identity:  identity,
			Config:    cfg,
			Logger:    logger,
		}),
		activity: NewActivityService(ActivityServiceParams{
			TxManager: store,
			Config:    cfg,
			Logger:    logger,
		}),
	}
}

func newAddress() string {
	return solana.NewWallet().PublicKey().String()
}

func newAddresses(n int) []string {
	addresses := make([]string, n)
	for i := range addresses {
		addresses[i] = newAddress()
	}

	return addresses
}

func (h *registryHarness) fund(t require.TestingT, address string, amount uint64) {
	_, err := h.accounts.Airdrop(context.Background(), address, amount)
	require.NoError(t, err)
}

func (h *registryHarness) balance(t require.TestingT, address string) uint64 {
	account, err := h.accounts.GetAccount(context.Background(), address)
	require.NoError(t, err)

	return account.Balance
}

func (h *registryHarness) state(t require.TestingT, kind entity.RegistryKind) *entity.FactoryState {
	state, err := h.factory.GetFactoryState(context.Background(), kind)
	require.NoError(t, err)

	return state
}
