package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/repository"
	mockRepo "registry/internal/mocks/repository"
	"registry/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestActivityService(t *testing.T) (usecase.ActivityUsecase, *mockRepo.MockTransactionManager) {
	txManager := mockRepo.NewMockTransactionManager(t)

	return NewActivityService(ActivityServiceParams{
		TxManager: txManager,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}), txManager
}

func newTestEvent() *entity.Event {
	return &entity.Event{
		ID:         uuid.Must(uuid.NewV7()),
		Type:       entity.EventUserRegistered,
		Kind:       entity.RegistryKindUser,
		Actor:      testWallet,
		OccurredAt: time.Now().UTC(),
	}
}

func TestActivityService_Record(t *testing.T) {
	tests := []struct {
		name      string
		createErr error
		wantNew   bool
		wantErr   bool
	}{
		{name: "new event", wantNew: true},
		{name: "redelivered event", createErr: repository.ErrDuplicateEvent},
		{name: "database error", createErr: errors.New("db error"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, txManager := createTestActivityService(t)
			ctx := context.Background()
			event := newTestEvent()

			expectExecute(t, txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
				eventRepo := mockRepo.NewMockEventRepository(t)
				factory.EXPECT().EventRepo().Return(eventRepo)
				eventRepo.EXPECT().Create(ctx, event).Return(tt.createErr)
			})

			recorded, err := service.Record(ctx, event)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to record event")
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantNew, recorded)
		})
	}
}

func TestActivityService_Record_RejectsMalformedEvents(t *testing.T) {
	service, _ := createTestActivityService(t)

	missingID := newTestEvent()
	missingID.ID = uuid.Nil
	badKind := newTestEvent()
	badKind.Kind = "admin"
	missingType := newTestEvent()
	missingType.Type = ""
	longRequestID := newTestEvent()
	longRequestID.RequestID = strings.Repeat("r", entity.MaxRequestIDLength+1)

	for _, event := range []*entity.Event{nil, missingID, badKind, missingType, longRequestID} {
		recorded, err := service.Record(context.Background(), event)

		assert.False(t, recorded)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}
}

func TestActivityService_ListEvents_ClampsLimit(t *testing.T) {
	service, txManager := createTestActivityService(t)
	ctx := context.Background()
	events := []*entity.Event{newTestEvent()}

	expectExecute(t, txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		eventRepo := mockRepo.NewMockEventRepository(t)
		factory.EXPECT().EventRepo().Return(eventRepo)
		eventRepo.EXPECT().List(ctx, entity.RegistryKindVendor, 3, 20).Return(events, int64(4), nil)
	})

	page, err := service.ListEvents(ctx, entity.RegistryKindVendor, 3, 500)

	require.NoError(t, err)
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, int64(4), page.Total)
	assert.Equal(t, events, page.Items)
}

func TestActivityService_ListEvents_NegativeOffset(t *testing.T) {
	service, _ := createTestActivityService(t)

	_, err := service.ListEvents(context.Background(), "", -1, 10)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
