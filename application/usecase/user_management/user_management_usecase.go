package user_management

import (
	"context"

	"github.com/sparkwave/sparkwave-login/application/port/outbound"
	"github.com/sparkwave/sparkwave-login/application/usecase"
	"github.com/sparkwave/sparkwave-login/domain/entity"
	"github.com/sparkwave/sparkwave-login/infrastructure/service/logger"
)

// UserManagementUseCase backs the admin console's user CRUD. All
// mutations that change a user record commit together with their audit
// entry; notification mail is dispatched after the commit.
type UserManagementUseCase struct {
	userRepo        outbound.UserRepository
	accessLog       *usecase.AccessLogUseCase
	passwordService outbound.PasswordService
	mailer          outbound.Mailer
	tx              outbound.TxRunner
	logger          logger.Logger
}

func NewUserManagementUseCase(
	userRepo outbound.UserRepository,
	accessLog *usecase.AccessLogUseCase,
	passwordService outbound.PasswordService,
	mailer outbound.Mailer,
	tx outbound.TxRunner,
	log logger.Logger,
) *UserManagementUseCase {
	return &UserManagementUseCase{
		userRepo:        userRepo,
		accessLog:       accessLog,
		passwordService: passwordService,
		mailer:          mailer,
		tx:              tx,
		logger:          log,
	}
}

func (uc *UserManagementUseCase) Get(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.FindByID(ctx, id)
}

func (uc *UserManagementUseCase) List(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.FindAll(ctx)
}

func (uc *UserManagementUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.userRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return uc.userRepo.Delete(ctx, id)
}
