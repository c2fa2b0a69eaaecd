// Package memory implements the persistence layer in process memory.
// Each transaction works on a private copy of the ledger that replaces the
// shared one only on commit, so a failed transaction leaves no trace.
package memory

import (
	"context"
	"sync"

	"registry/internal/domain/entity"
	"registry/internal/domain/repository"

	"github.com/google/uuid"
)

type nameKey struct {
	kind entity.RegistryKind
	name string
}

type ledger struct {
	factories    map[entity.RegistryKind]*entity.FactoryState
	profiles     map[uuid.UUID]*entity.Profile
	profileOrder []uuid.UUID
	names        map[nameKey]*entity.NameRecord
	products     map[uuid.UUID][]*entity.Product
	accounts     map[string]*entity.Account
	events       []*entity.Event
	eventIDs     map[uuid.UUID]struct{}
}

func newLedger() *ledger {
	return &ledger{
		factories: map[entity.RegistryKind]*entity.FactoryState{},
		profiles:  map[uuid.UUID]*entity.Profile{},
		names:     map[nameKey]*entity.NameRecord{},
		products:  map[uuid.UUID][]*entity.Product{},
		accounts:  map[string]*entity.Account{},
		eventIDs:  map[uuid.UUID]struct{}{},
	}
}

// clone copies the maps and slices of the ledger. Stored records are never
// mutated in place, so sharing the pointed-to values is safe.
func (l *ledger) clone() *ledger {
	c := &ledger{
		factories:    make(map[entity.RegistryKind]*entity.FactoryState, len(l.factories)),
		profiles:     make(map[uuid.UUID]*entity.Profile, len(l.profiles)),
		profileOrder: append([]uuid.UUID(nil), l.profileOrder...),
		names:        make(map[nameKey]*entity.NameRecord, len(l.names)),
		products:     make(map[uuid.UUID][]*entity.Product, len(l.products)),
		accounts:     make(map[string]*entity.Account, len(l.accounts)),
		events:       append([]*entity.Event(nil), l.events...),
		eventIDs:     make(map[uuid.UUID]struct{}, len(l.eventIDs)),
	}
	for k, v := range l.factories {
		c.factories[k] = v
	}
	for k, v := range l.profiles {
		c.profiles[k] = v
	}
	for k, v := range l.names {
		c.names[k] = v
	}
	for k, v := range l.products {
		c.products[k] = append([]*entity.Product(nil), v...)
	}
	for k, v := range l.accounts {
		c.accounts[k] = v
	}
	for k := range l.eventIDs {
		c.eventIDs[k] = struct{}{}
	}

	return c
}

// Store is the in-memory TransactionManager. Transactions are serialized.
type Store struct {
	mu     sync.Mutex
	ledger *ledger
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{ledger: newLedger()}
}

// NewTransactionManager returns an empty in-memory store as a TransactionManager.
func NewTransactionManager() repository.TransactionManager {
	return NewStore()
}

// Execute runs fn against a private copy of the ledger and publishes the copy when fn succeeds.
func (s *Store) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.ledger.clone()
	if err := fn(&repositoryFactory{ledger: working}); err != nil {
		return err
	}

	s.ledger = working

	return nil
}

type repositoryFactory struct {
	ledger *ledger
}

func (f *repositoryFactory) FactoryRepo() repository.FactoryRepository {
	return &factoryRepository{ledger: f.ledger}
}

func (f *repositoryFactory) ProfileRepo() repository.ProfileRepository {
	return &profileRepository{ledger: f.ledger}
}

func (f *repositoryFactory) NameRegistryRepo() repository.NameRegistryRepository {
	return &nameRegistryRepository{ledger: f.ledger}
}

func (f *repositoryFactory) ProductRepo() repository.ProductRepository {
	return &productRepository{ledger: f.ledger}
}

func (f *repositoryFactory) AccountRepo() repository.AccountRepository {
	return &accountRepository{ledger: f.ledger}
}

func (f *repositoryFactory) EventRepo() repository.EventRepository {
	return &eventRepository{ledger: f.ledger}
}
