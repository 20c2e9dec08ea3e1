package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sparkwave/sparkwave-login/application/port/outbound"
	"github.com/sparkwave/sparkwave-login/application/usecase"
	"github.com/sparkwave/sparkwave-login/infrastructure/http/response"
)

type DashboardHandler struct {
	dashboard *usecase.DashboardUseCase
}

func NewDashboardHandler(dashboard *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) RegisterRoutes(admin *mux.Router) {
	dash := admin.PathPrefix("/dashboard").Subrouter()
	dash.HandleFunc("/stats", h.Stats).Methods(http.MethodGet)
	dash.HandleFunc("/stats/user/{id}", h.UserStats).Methods(http.MethodGet)
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.Stats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Erro: Falha ao processar a requisição!")
		return
	}
	response.JSON(w, http.StatusOK, stats)
}

func (h *DashboardHandler) UserStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.UserStats(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, outbound.ErrUserNotFound) {
			response.NotFound(w)
			return
		}
		response.InternalServerError(w, "Erro: Falha ao processar a requisição!")
		return
	}
	response.JSON(w, http.StatusOK, stats)
}
