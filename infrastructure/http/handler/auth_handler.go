package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sparkwave/sparkwave-login/application/port/inbound"
	"github.com/sparkwave/sparkwave-login/application/port/outbound"
	"github.com/sparkwave/sparkwave-login/application/usecase"
	"github.com/sparkwave/sparkwave-login/infrastructure/http/middleware"
	"github.com/sparkwave/sparkwave-login/infrastructure/http/response"
	"github.com/sparkwave/sparkwave-login/infrastructure/http/validator"
)

type AuthHandler struct {
	authUseCase inbound.AuthUseCase
	redirectURL string
}

func NewAuthHandler(authUseCase inbound.AuthUseCase, redirectURL string) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		redirectURL: redirectURL,
	}
}

func (h *AuthHandler) RegisterRoutes(r *mux.Router, authMw *middleware.AuthMiddleware, limit func(http.Handler) http.Handler) {
	auth := r.PathPrefix("/auth").Subrouter()
	auth.Handle("/signin", limit(http.HandlerFunc(h.SignIn))).Methods(http.MethodPost)
	auth.HandleFunc("/signup", h.SignUp).Methods(http.MethodPost)
	auth.Handle("/signout", authMw.OptionalAuth(http.HandlerFunc(h.SignOut))).Methods(http.MethodPost)
}

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	FullName string   `json:"fullName"`
	Roles    []string `json:"roles"`
}

// jwtResponse mirrors the login payload the admin console consumes.
type jwtResponse struct {
	Token       string   `json:"token"`
	Type        string   `json:"type"`
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Roles       []string `json:"roles"`
	RedirectURL string   `json:"redirectUrl"`
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Erro: Requisição inválida!")
		return
	}

	result, err := h.authUseCase.SignIn(r.Context(), inbound.SignInRequest{
		Username: req.Username,
		Password: req.Password,
	}, clientContext(r))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			response.BadRequest(w, "Erro: Credenciais inválidas!")
			return
		}
		response.InternalServerError(w, "Erro: Falha ao processar a requisição!")
		return
	}

	response.JSON(w, http.StatusOK, jwtResponse{
		Token:       result.Token,
		Type:        "Bearer",
		ID:          result.User.ID,
		Username:    result.User.Username,
		Email:       result.User.Email,
		Roles:       result.User.Roles,
		RedirectURL: h.redirectURL,
	})
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Erro: Requisição inválida!")
		return
	}

	if !validator.ValidateRequired(req.Username) || !validator.ValidateRequired(req.Password) {
		response.BadRequest(w, "Erro: Nome de usuário e senha são obrigatórios!")
		return
	}
	if !validator.ValidateEmail(req.Email) {
		response.BadRequest(w, "Erro: Email inválido!")
		return
	}

	_, err := h.authUseCase.SignUp(r.Context(), inbound.SignUpRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Roles:    req.Roles,
	}, clientContext(r))
	if err != nil {
		writeConflict(w, err)
		return
	}

	response.Message(w, http.StatusOK, "Usuário registrado com sucesso!")
}

func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if claims := middleware.ClaimsFrom(r.Context()); claims != nil {
		h.authUseCase.SignOut(r.Context(), claims.Username, clientContext(r))
	}
	response.Message(w, http.StatusOK, "Logout realizado com sucesso!")
}

// writeConflict maps registration conflicts to their console messages;
// anything else is an internal failure.
func writeConflict(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, outbound.ErrUsernameTaken):
		response.BadRequest(w, "Erro: Nome de usuário já está em uso!")
	case errors.Is(err, outbound.ErrEmailTaken):
		response.BadRequest(w, "Erro: Email já está em uso!")
	default:
		response.InternalServerError(w, "Erro: Falha ao processar a requisição!")
	}
}
