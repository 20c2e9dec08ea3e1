package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sparkwave/sparkwave-login/application/port/inbound"
	"github.com/sparkwave/sparkwave-login/application/port/outbound"
	"github.com/sparkwave/sparkwave-login/domain/entity"
	"github.com/sparkwave/sparkwave-login/infrastructure/http/response"
	"github.com/sparkwave/sparkwave-login/infrastructure/http/validator"
)

// UserHandler exposes the admin console's user CRUD. Route guarding is
// applied by the router: everything here runs behind RequireRole(ADMIN).
type UserHandler struct {
	users inbound.UserManagementUseCase
}

func NewUserHandler(users inbound.UserManagementUseCase) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) RegisterRoutes(admin *mux.Router) {
	users := admin.PathPrefix("/users").Subrouter()
	users.HandleFunc("", h.List).Methods(http.MethodGet)
	users.HandleFunc("", h.Create).Methods(http.MethodPost)
	users.HandleFunc("/{id}", h.Get).Methods(http.MethodGet)
	users.HandleFunc("/{id}", h.Update).Methods(http.MethodPut)
	users.HandleFunc("/{id}/status", h.SetStatus).Methods(http.MethodPatch)
	users.HandleFunc("/{id}/reset-password", h.ResetPassword).Methods(http.MethodPatch)
	users.HandleFunc("/{id}", h.Delete).Methods(http.MethodDelete)
}

// userDTO is the admin-facing projection of a user record.
type userDTO struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	FullName string   `json:"fullName"`
	Active   bool     `json:"active"`
	Roles    []string `json:"roles"`
}

type createUserRequest struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	FullName string   `json:"fullName"`
	Roles    []string `json:"roles"`
	Active   bool     `json:"active"`
}

type updateUserRequest struct {
	Username *string  `json:"username"`
	Email    *string  `json:"email"`
	Password *string  `json:"password"`
	FullName *string  `json:"fullName"`
	Roles    []string `json:"roles"`
	Active   *bool    `json:"active"`
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Erro: Falha ao processar a requisição!")
		return
	}
	dtos := make([]userDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toDTO(u))
	}
	response.JSON(w, http.StatusOK, dtos)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeUserError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, toDTO(user))
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
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

	user, err := h.users.Create(r.Context(), inbound.CreateUserRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Roles:    req.Roles,
		Active:   req.Active,
	}, clientContext(r))
	if err != nil {
		writeConflict(w, err)
		return
	}

	response.JSON(w, http.StatusOK, toDTO(user))
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Erro: Requisição inválida!")
		return
	}

	user, err := h.users.Update(r.Context(), mux.Vars(r)["id"], inbound.UpdateUserRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Roles:    req.Roles,
		Active:   req.Active,
	}, clientContext(r))
	if err != nil {
		writeUserError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, toDTO(user))
}

func (h *UserHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	active, err := strconv.ParseBool(r.URL.Query().Get("active"))
	if err != nil {
		response.BadRequest(w, "Erro: Parâmetro 'active' inválido!")
		return
	}

	if err := h.users.SetStatus(r.Context(), mux.Vars(r)["id"], active, clientContext(r)); err != nil {
		writeUserError(w, err)
		return
	}

	status := "desativado"
	if active {
		status = "ativado"
	}
	response.Message(w, http.StatusOK, "Usuário "+status+" com sucesso!")
}

func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	password := r.URL.Query().Get("password")
	if !validator.ValidateRequired(password) {
		response.BadRequest(w, "Erro: Senha é obrigatória!")
		return
	}

	if err := h.users.ResetPassword(r.Context(), mux.Vars(r)["id"], password, clientContext(r)); err != nil {
		writeUserError(w, err)
		return
	}

	response.Message(w, http.StatusOK, "Senha redefinida com sucesso!")
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeUserError(w, err)
		return
	}
	response.Message(w, http.StatusOK, "Usuário excluído com sucesso!")
}

func toDTO(u *entity.User) userDTO {
	return userDTO{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
		Active:   u.Active,
		Roles:    u.Roles,
	}
}

func writeUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, outbound.ErrUserNotFound):
		response.NotFound(w)
	case errors.Is(err, outbound.ErrUsernameTaken), errors.Is(err, outbound.ErrEmailTaken):
		writeConflict(w, err)
	default:
		response.InternalServerError(w, "Erro: Falha ao processar a requisição!")
	}
}
