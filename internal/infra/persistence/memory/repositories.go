package memory

import (
	"context"
	"slices"

	"registry/internal/domain/entity"
	"registry/internal/domain/repository"

	"github.com/google/uuid"
)

type factoryRepository struct {
	ledger *ledger
}

func (r *factoryRepository) FindByKind(_ context.Context, kind entity.RegistryKind) (*entity.FactoryState, error) {
	state, ok := r.ledger.factories[kind]
	if !ok {
		return nil, repository.ErrFactoryNotFound
	}
	copied := *state

	return &copied, nil
}

// FindByKindForUpdate needs no lock: the whole transaction already holds the store.
func (r *factoryRepository) FindByKindForUpdate(ctx context.Context, kind entity.RegistryKind) (*entity.FactoryState, error) {
	return r.FindByKind(ctx, kind)
}

func (r *factoryRepository) Create(_ context.Context, state *entity.FactoryState) error {
	if _, ok := r.ledger.factories[state.Kind]; ok {
		return repository.ErrDuplicateFactory
	}
	copied := *state
	r.ledger.factories[state.Kind] = &copied

	return nil
}

func (r *factoryRepository) Update(_ context.Context, state *entity.FactoryState) error {
	if _, ok := r.ledger.factories[state.Kind]; !ok {
		return repository.ErrFactoryNotFound
	}
	copied := *state
	r.ledger.factories[state.Kind] = &copied

	return nil
}

type profileRepository struct {
	ledger *ledger
}

func (r *profileRepository) load(id uuid.UUID) (*entity.Profile, error) {
	profile, ok := r.ledger.profiles[id]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	copied := *profile
	copied.Products = copyProducts(r.ledger.products[id])

	return &copied, nil
}

func (r *profileRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Profile, error) {
	return r.load(id)
}

func (r *profileRepository) FindByName(_ context.Context, kind entity.RegistryKind, name string) (*entity.Profile, error) {
	record, ok := r.ledger.names[nameKey{kind: kind, name: name}]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return r.load(record.ProfileID)
}

func (r *profileRepository) FindByNameForUpdate(ctx context.Context, kind entity.RegistryKind, name string) (*entity.Profile, error) {
	return r.FindByName(ctx, kind, name)
}

func (r *profileRepository) FindByAddress(_ context.Context, address string) (*entity.Profile, error) {
	for _, id := range r.ledger.profileOrder {
		if r.ledger.profiles[id].Address == address {
			return r.load(id)
		}
	}

	return nil, repository.ErrProfileNotFound
}

func (r *profileRepository) List(_ context.Context, kind entity.RegistryKind, offset, limit int) ([]*entity.Profile, int64, error) {
	matched := make([]uuid.UUID, 0, len(r.ledger.profileOrder))
	for _, id := range r.ledger.profileOrder {
		if r.ledger.profiles[id].Kind == kind {
			matched = append(matched, id)
		}
	}

	total := int64(len(matched))
	profiles := make([]*entity.Profile, 0)
	for _, id := range paginate(matched, offset, limit) {
		profile, err := r.load(id)
		if err != nil {
			return nil, 0, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, total, nil
}

func (r *profileRepository) Create(_ context.Context, profile *entity.Profile) error {
	if _, ok := r.ledger.profiles[profile.ID]; ok {
		return repository.ErrDuplicateProfile
	}
	for _, existing := range r.ledger.profiles {
		if existing.Address == profile.Address {
			return repository.ErrDuplicateProfile
		}
	}

	copied := *profile
	copied.Products = nil
	r.ledger.profiles[profile.ID] = &copied
	r.ledger.profileOrder = append(r.ledger.profileOrder, profile.ID)

	return nil
}

func (r *profileRepository) Update(_ context.Context, profile *entity.Profile) error {
	existing, ok := r.ledger.profiles[profile.ID]
	if !ok {
		return repository.ErrProfileNotFound
	}

	copied := *existing
	copied.Name = profile.Name
	copied.Owner = profile.Owner
	copied.Bio = profile.Bio
	copied.UpdatedAt = profile.UpdatedAt
	r.ledger.profiles[profile.ID] = &copied

	return nil
}

type nameRegistryRepository struct {
	ledger *ledger
}

func (r *nameRegistryRepository) Find(_ context.Context, kind entity.RegistryKind, name string) (*entity.NameRecord, error) {
	record, ok := r.ledger.names[nameKey{kind: kind, name: name}]
	if !ok {
		return nil, repository.ErrNameRecordNotFound
	}
	copied := *record

	return &copied, nil
}

func (r *nameRegistryRepository) Exists(_ context.Context, kind entity.RegistryKind, name string) (bool, error) {
	_, ok := r.ledger.names[nameKey{kind: kind, name: name}]

	return ok, nil
}

func (r *nameRegistryRepository) Create(_ context.Context, record *entity.NameRecord) error {
	key := nameKey{kind: record.Kind, name: record.Name}
	if _, ok := r.ledger.names[key]; ok {
		return repository.ErrDuplicateName
	}
	copied := *record
	r.ledger.names[key] = &copied

	return nil
}

func (r *nameRegistryRepository) Delete(_ context.Context, kind entity.RegistryKind, name string) error {
	key := nameKey{kind: kind, name: name}
	if _, ok := r.ledger.names[key]; !ok {
		return repository.ErrNameRecordNotFound
	}
	delete(r.ledger.names, key)

	return nil
}

type productRepository struct {
	ledger *ledger
}

func (r *productRepository) ListByProfile(_ context.Context, profileID uuid.UUID) ([]*entity.Product, error) {
	return copyProducts(r.ledger.products[profileID]), nil
}

func (r *productRepository) Create(_ context.Context, product *entity.Product) error {
	products := r.ledger.products[product.ProfileID]
	for _, existing := range products {
		if existing.ProductID == product.ProductID {
			return repository.ErrDuplicateProduct
		}
	}
	copied := *product
	r.ledger.products[product.ProfileID] = append(products, &copied)

	return nil
}

func (r *productRepository) Delete(_ context.Context, profileID uuid.UUID, productID string) error {
	products := r.ledger.products[profileID]
	idx := slices.IndexFunc(products, func(p *entity.Product) bool { return p.ProductID == productID })
	if idx < 0 {
		return repository.ErrProductNotFound
	}
	r.ledger.products[profileID] = slices.Delete(products, idx, idx+1)

	return nil
}

type accountRepository struct {
	ledger *ledger
}

func (r *accountRepository) Find(_ context.Context, address string) (*entity.Account, error) {
	account, ok := r.ledger.accounts[address]
	if !ok {
		return &entity.Account{Address: address}, nil
	}
	copied := *account

	return &copied, nil
}

func (r *accountRepository) FindForUpdate(ctx context.Context, address string) (*entity.Account, error) {
	return r.Find(ctx, address)
}

func (r *accountRepository) Save(_ context.Context, account *entity.Account) error {
	copied := *account
	r.ledger.accounts[account.Address] = &copied

	return nil
}

type eventRepository struct {
	ledger *ledger
}

func (r *eventRepository) Create(_ context.Context, event *entity.Event) error {
	if _, ok := r.ledger.eventIDs[event.ID]; ok {
		return repository.ErrDuplicateEvent
	}
	copied := *event
	r.ledger.events = append(r.ledger.events, &copied)
	r.ledger.eventIDs[event.ID] = struct{}{}

	return nil
}

func (r *eventRepository) List(_ context.Context, kind entity.RegistryKind, offset, limit int) ([]*entity.Event, int64, error) {
	matched := make([]*entity.Event, 0, len(r.ledger.events))
	for i := len(r.ledger.events) - 1; i >= 0; i-- {
		event := r.ledger.events[i]
		if kind == "" || event.Kind == kind {
			matched = append(matched, event)
		}
	}
	// Newest first; events recorded out of order are sorted by occurrence time.
	slices.SortStableFunc(matched, func(a, b *entity.Event) int {
		return b.OccurredAt.Compare(a.OccurredAt)
	})

	total := int64(len(matched))
	page := paginate(matched, offset, limit)
	events := make([]*entity.Event, 0, len(page))
	for _, event := range page {
		copied := *event
		events = append(events, &copied)
	}

	return events, total, nil
}

func copyProducts(products []*entity.Product) []*entity.Product {
	if len(products) == 0 {
		return nil
	}
	copied := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		p := *product
		copied = append(copied, &p)
	}

	return copied
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return nil
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return items[offset:end]
}
