package usecase

import (
	"context"

	"registry/internal/domain/entity"
)

// UserUsecase defines the operations of the user registry.
type UserUsecase interface {
	RegisterUser(ctx context.Context, caller string, input *RegisterUserInput) (*entity.Profile, error)
	CheckUsername(ctx context.Context, name string) (bool, error)
	GetUser(ctx context.Context, name string) (*entity.Profile, error)
	ListUsers(ctx context.Context, offset, limit int) (*ProfilePage, error)
	UpdateBio(ctx context.Context, caller, name, bio string) (*entity.Profile, error)
	ChangeUsername(ctx context.Context, caller, name, newName string) (*entity.Profile, error)
	TransferOwnership(ctx context.Context, caller, name, newOwner string) (*entity.Profile, error)
}

// RegisterUserInput defines the data required to register a user.
type RegisterUserInput struct {
	Username string `json:"username"`
	Bio      string `json:"bio"`
}
