package inbound

import (
	"context"

	"github.com/sparkwave/sparkwave-login/domain/entity"
)

type CreateUserRequest struct {
	Username string
	Email    string
	Password string
	FullName string
	Roles    []string
	Active   bool
}

// UpdateUserRequest updates only the fields that are non-nil. Roles
// replace the stored set when non-empty.
type UpdateUserRequest struct {
	Username *string
	Email    *string
	Password *string
	FullName *string
	Roles    []string
	Active   *bool
}

type UserManagementUseCase interface {
	Create(ctx context.Context, req CreateUserRequest, client ClientContext) (*entity.User, error)
	Update(ctx context.Context, id string, req UpdateUserRequest, client ClientContext) (*entity.User, error)
	SetStatus(ctx context.Context, id string, active bool, client ClientContext) error
	ResetPassword(ctx context.Context, id, password string, client ClientContext) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
}
