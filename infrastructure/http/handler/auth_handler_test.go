package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sparkwave/sparkwave-login/application/port/inbound"
	"github.com/sparkwave/sparkwave-login/application/port/outbound"
	"github.com/sparkwave/sparkwave-login/application/usecase"
	"github.com/sparkwave/sparkwave-login/domain/entity"
	"github.com/sparkwave/sparkwave-login/infrastructure/http/middleware"
)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) SignIn(ctx context.Context, req inbound.SignInRequest, client inbound.ClientContext) (*inbound.SignInResult, error) {
	args := m.Called(ctx, req, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.SignInResult), args.Error(1)
}

func (m *MockAuthUseCase) SignUp(ctx context.Context, req inbound.SignUpRequest, client inbound.ClientContext) (*entity.User, error) {
	args := m.Called(ctx, req, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) SignOut(ctx context.Context, username string, client inbound.ClientContext) {
	m.Called(ctx, username, client)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(subject string, roles []string) (string, error) {
	args := m.Called(subject, roles)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(token string) (*outbound.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*outbound.TokenClaims), args.Error(1)
}

func noLimit(next http.Handler) http.Handler { return next }

func newAuthRouter(authUC *MockAuthUseCase, tokenService *MockTokenService) *mux.Router {
	r := mux.NewRouter()
	h := NewAuthHandler(authUC, "https://www.sparkwave.com.br")
	h.RegisterRoutes(r, middleware.NewAuthMiddleware(tokenService), noLimit)
	return r
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body["message"]
}

func TestSignInHandler_Success(t *testing.T) {
	authUC := new(MockAuthUseCase)
	router := newAuthRouter(authUC, new(MockTokenService))

	user := &entity.User{
		ID:       "user-1",
		Username: "alice",
		Email:    "alice@example.com",
		Roles:    []string{"ADMIN"},
		Active:   true,
	}
	authUC.On("SignIn", mock.Anything, inbound.SignInRequest{Username: "alice", Password: "secret"}, mock.Anything).
		Return(&inbound.SignInResult{Token: "signed-token", User: user}, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(`{"username":"alice","password":"secret"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body jwtResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "signed-token", body.Token)
	assert.Equal(t, "Bearer", body.Type)
	assert.Equal(t, "alice", body.Username)
	assert.Equal(t, []string{"ADMIN"}, body.Roles)
	assert.Equal(t, "https://www.sparkwave.com.br", body.RedirectURL)
}

func TestSignInHandler_InvalidCredentials(t *testing.T) {
	authUC := new(MockAuthUseCase)
	router := newAuthRouter(authUC, new(MockTokenService))

	authUC.On("SignIn", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, usecase.ErrInvalidCredentials)

	req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(`{"username":"alice","password":"wrong"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Erro: Credenciais inválidas!", messageOf(t, rec))
}

func TestSignInHandler_ForwardsClientContext(t *testing.T) {
	authUC := new(MockAuthUseCase)
	router := newAuthRouter(authUC, new(MockTokenService))

	authUC.On("SignIn", mock.Anything, mock.Anything, inbound.ClientContext{
		IPAddress: "203.0.113.7",
		UserAgent: "console/1.0",
	}).Return(nil, usecase.ErrInvalidCredentials)

	req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(`{"username":"a","password":"b"}`))
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	req.Header.Set("User-Agent", "console/1.0")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	authUC.AssertExpectations(t)
}

func TestSignUpHandler_Success(t *testing.T) {
	authUC := new(MockAuthUseCase)
	router := newAuthRouter(authUC, new(MockTokenService))

	authUC.On("SignUp", mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.User{ID: "user-2", Username: "bob"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/signup",
		strings.NewReader(`{"username":"bob","email":"bob@example.com","password":"secret","fullName":"Bob Souza"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Usuário registrado com sucesso!", messageOf(t, rec))
}

func TestSignUpHandler_EmailTaken(t *testing.T) {
	authUC := new(MockAuthUseCase)
	router := newAuthRouter(authUC, new(MockTokenService))

	authUC.On("SignUp", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, outbound.ErrEmailTaken)

	req := httptest.NewRequest(http.MethodPost, "/auth/signup",
		strings.NewReader(`{"username":"bob","email":"taken@example.com","password":"secret"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Erro: Email já está em uso!", messageOf(t, rec))
}

func TestSignUpHandler_InvalidEmail(t *testing.T) {
	authUC := new(MockAuthUseCase)
	router := newAuthRouter(authUC, new(MockTokenService))

	req := httptest.NewRequest(http.MethodPost, "/auth/signup",
		strings.NewReader(`{"username":"bob","email":"not-an-email","password":"secret"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Erro: Email inválido!", messageOf(t, rec))
	authUC.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything, mock.Anything)
}

func TestSignUpHandler_MissingCredentials(t *testing.T) {
	authUC := new(MockAuthUseCase)
	router := newAuthRouter(authUC, new(MockTokenService))

	req := httptest.NewRequest(http.MethodPost, "/auth/signup",
		strings.NewReader(`{"email":"bob@example.com"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Erro: Nome de usuário e senha são obrigatórios!", messageOf(t, rec))
}

func TestSignOutHandler_WithToken(t *testing.T) {
	authUC := new(MockAuthUseCase)
	tokenService := new(MockTokenService)
	router := newAuthRouter(authUC, tokenService)

	tokenService.On("Verify", "valid-token").
		Return(&outbound.TokenClaims{Username: "alice", Roles: []string{"USER"}}, nil)
	authUC.On("SignOut", mock.Anything, "alice", mock.Anything).Return()

	req := httptest.NewRequest(http.MethodPost, "/auth/signout", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logout realizado com sucesso!", messageOf(t, rec))
	authUC.AssertCalled(t, "SignOut", mock.Anything, "alice", mock.Anything)
}

func TestSignOutHandler_WithoutToken(t *testing.T) {
	authUC := new(MockAuthUseCase)
	router := newAuthRouter(authUC, new(MockTokenService))

	req := httptest.NewRequest(http.MethodPost, "/auth/signout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	authUC.AssertNotCalled(t, "SignOut", mock.Anything, mock.Anything, mock.Anything)
}
