package inbound

import (
	"context"

	"github.com/sparkwave/sparkwave-login/domain/entity"
)

// ClientContext carries the request metadata recorded with every
// authentication-relevant event.
type ClientContext struct {
	IPAddress string
	UserAgent string
}

type SignInRequest struct {
	Username string
	Password string
}

type SignInResult struct {
	Token string
	User  *entity.User
}

type SignUpRequest struct {
	Username string
	Email    string
	Password string
	FullName string
	Roles    []string
}

type AuthUseCase interface {
	SignIn(ctx context.Context, req SignInRequest, client ClientContext) (*SignInResult, error)
	SignUp(ctx context.Context, req SignUpRequest, client ClientContext) (*entity.User, error)
	SignOut(ctx context.Context, username string, client ClientContext)
}
