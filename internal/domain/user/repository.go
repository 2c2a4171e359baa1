package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

type UpdateProfileFields struct {
	Bio                 *string
	Skills              []string
	LinkedIn            *string
	Phone               *string
	PublicWalletAddress *string
}

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, fields UpdateProfileFields) (User, error)
}
