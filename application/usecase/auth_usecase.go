package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sparkwave/sparkwave-login/application/port/inbound"
	"github.com/sparkwave/sparkwave-login/application/port/outbound"
	"github.com/sparkwave/sparkwave-login/domain/entity"
	"github.com/sparkwave/sparkwave-login/infrastructure/service/logger"
)

// ErrInvalidCredentials is deliberately uniform: it never reveals
// whether the username exists.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthUseCase struct {
	userRepo        outbound.UserRepository
	accessLog       *AccessLogUseCase
	tokenService    outbound.TokenService
	passwordService outbound.PasswordService
	mailer          outbound.Mailer
	tx              outbound.TxRunner
	logger          logger.Logger
}

func NewAuthUseCase(
	userRepo outbound.UserRepository,
	accessLog *AccessLogUseCase,
	tokenService outbound.TokenService,
	passwordService outbound.PasswordService,
	mailer outbound.Mailer,
	tx outbound.TxRunner,
	log logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:        userRepo,
		accessLog:       accessLog,
		tokenService:    tokenService,
		passwordService: passwordService,
		mailer:          mailer,
		tx:              tx,
		logger:          log,
	}
}

// SignIn verifies credentials and mints a bearer token carrying the
// user's current role set. Exactly one access-log entry is written per
// attempt when the username resolves to a real user, none when it does
// not. The log write is best-effort: its failure never changes the
// authentication outcome.
func (uc *AuthUseCase) SignIn(ctx context.Context, req inbound.SignInRequest, client inbound.ClientContext) (*inbound.SignInResult, error) {
	user, err := uc.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, outbound.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.Active {
		uc.recordAttempt(ctx, user.ID, entity.StatusFailed, client)
		return nil, ErrInvalidCredentials
	}

	if err := uc.passwordService.ComparePassword(user.Password, req.Password); err != nil {
		uc.recordAttempt(ctx, user.ID, entity.StatusFailed, client)
		return nil, ErrInvalidCredentials
	}

	token, err := uc.tokenService.Issue(user.Username, user.Roles)
	if err != nil {
		return nil, err
	}

	uc.recordAttempt(ctx, user.ID, entity.StatusSuccess, client)

	return &inbound.SignInResult{Token: token, User: user}, nil
}

// SignUp registers a new account. The user insert and its REGISTER audit
// entry commit in one transaction; the welcome mail is handed off after
// the commit and never blocks the response.
func (uc *AuthUseCase) SignUp(ctx context.Context, req inbound.SignUpRequest, client inbound.ClientContext) (*entity.User, error) {
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

	err = uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return err
		}
		_, err := uc.accessLog.Record(ctx, user.ID, entity.ActionRegister, entity.StatusSuccess, client)
		return err
	})
	if err != nil {
		// The pre-checks race against concurrent signups; the unique
		// indexes are the authority.
		return nil, err
	}

	uc.mailer.SendWelcome(user, "")

	return user, nil
}

// SignOut records the logout for an authenticated user. Best-effort:
// the caller's session ends regardless.
func (uc *AuthUseCase) SignOut(ctx context.Context, username string, client inbound.ClientContext) {
	user, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, outbound.ErrUserNotFound) {
			uc.logger.Warn(ctx, "logout lookup failed", map[string]interface{}{
				"username": username,
				"error":    err.Error(),
			})
		}
		return
	}
	if _, err := uc.accessLog.Record(ctx, user.ID, entity.ActionLogout, entity.StatusSuccess, client); err != nil {
		uc.logger.Warn(ctx, "failed to record logout", map[string]interface{}{
			"user_id": user.ID,
			"error":   err.Error(),
		})
	}
}

func (uc *AuthUseCase) recordAttempt(ctx context.Context, userID, status string, client inbound.ClientContext) {
	if _, err := uc.accessLog.Record(ctx, userID, entity.ActionLogin, status, client); err != nil {
		uc.logger.Warn(ctx, "failed to record login attempt", map[string]interface{}{
			"user_id": userID,
			"status":  status,
			"error":   err.Error(),
		})
	}
}
