package user_management

import (
	"context"
	"time"

	"github.com/sparkwave/sparkwave-login/application/port/inbound"
	"github.com/sparkwave/sparkwave-login/domain/entity"
)

// Update patches the provided fields of an existing user. The record
// write and its audit entry commit in one transaction. When the active
// flag flips, a status notification is mailed after the commit.
func (uc *UserManagementUseCase) Update(ctx context.Context, id string, req inbound.UpdateUserRequest, client inbound.ClientContext) (*entity.User, error) {
	user, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := uc.passwordService.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if len(req.Roles) > 0 {
		user.Roles = req.Roles
	}

	statusChanged := false
	if req.Active != nil && user.Active != *req.Active {
		user.Active = *req.Active
		statusChanged = true
	}
	user.UpdatedAt = time.Now()

	err = uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return err
		}
		_, err := uc.accessLog.Record(ctx, user.ID, entity.ActionUpdate, entity.StatusSuccess, client)
		return err
	})
	if err != nil {
		return nil, err
	}

	if statusChanged {
		uc.mailer.SendAccountStatus(user, user.Active)
	}

	return user, nil
}

// SetStatus toggles the active flag. A no-op when the flag already has
// the requested value; the notification is only sent on an actual change.
func (uc *UserManagementUseCase) SetStatus(ctx context.Context, id string, active bool, client inbound.ClientContext) error {
	user, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if user.Active == active {
		return nil
	}

	user.Active = active
	user.UpdatedAt = time.Now()

	err = uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return err
		}
		_, err := uc.accessLog.Record(ctx, user.ID, entity.ActionStatusChange, entity.StatusSuccess, client)
		return err
	})
	if err != nil {
		return err
	}

	uc.mailer.SendAccountStatus(user, active)
	return nil
}

// ResetPassword replaces the stored hash and mails the new password to
// the user.
func (uc *UserManagementUseCase) ResetPassword(ctx context.Context, id, password string, client inbound.ClientContext) error {
	user, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	hashed, err := uc.passwordService.HashPassword(password)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.UpdatedAt = time.Now()

	err = uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return err
		}
		_, err := uc.accessLog.Record(ctx, user.ID, entity.ActionPasswordReset, entity.StatusSuccess, client)
		return err
	})
	if err != nil {
		return err
	}

	uc.mailer.SendPasswordReset(user, password)
	return nil
}
