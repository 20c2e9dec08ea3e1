package user_management

import (
	"context"

	"github.com/google/uuid"

	"github.com/sparkwave/sparkwave-login/application/port/inbound"
	"github.com/sparkwave/sparkwave-login/application/port/outbound"
	"github.com/sparkwave/sparkwave-login/domain/entity"
)

// Create registers an account on behalf of an admin. The plaintext
// password is held only long enough to mail the user their credentials;
// only the bcrypt hash is persisted.
func (uc *UserManagementUseCase) Create(ctx context.Context, req inbound.CreateUserRequest, client inbound.ClientContext) (*entity.User, error) {
	if taken, err := uc.userRepo.ExistsByUsername(ctx, req.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, outbound.ErrUsernameTaken
	}
	if taken, err := uc.userRepo.ExistsByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, outbound.ErrEmailTaken
	}

	hashed, err := uc.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := entity.NewUser(uuid.New().String(), req.Username, req.Email, hashed, req.FullName, req.Roles)
	user.Active = req.Active

	err = uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return err
		}
		_, err := uc.accessLog.Record(ctx, user.ID, entity.ActionRegister, entity.StatusSuccess, client)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.mailer.SendWelcome(user, req.Password)

	return user, nil
}
