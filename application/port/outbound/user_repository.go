package outbound

import (
	"context"
	"errors"

	"github.com/sparkwave/sparkwave-login/domain/entity"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already in use")
	ErrEmailTaken    = errors.New("email already in use")
)

// UserRepository persists User records. Create and Update rely on the
// store's unique indexes for username/email and report violations as
// ErrUsernameTaken / ErrEmailTaken, so concurrent registrations cannot
// both succeed.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
