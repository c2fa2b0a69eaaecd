package impl

import (
	"context"
	"testing"

	"registry/internal/domain/repository"
	mockRepo "registry/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

// expectExecute runs the transaction callback against a fresh mock factory
// prepared by setup and returns whatever the callback returns.
func expectExecute(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	ctx context.Context,
	setup func(factory *mockRepo.MockRepositoryFactory),
) {
	t.Helper()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}
