package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/sparkwave/sparkwave-login/application/usecase"
	"github.com/sparkwave/sparkwave-login/domain/entity"
	"github.com/sparkwave/sparkwave-login/infrastructure/http/response"
)

// AccessLogHandler serves the admin console's audit-trail queries.
type AccessLogHandler struct {
	logs *usecase.AccessLogUseCase
}

func NewAccessLogHandler(logs *usecase.AccessLogUseCase) *AccessLogHandler {
	return &AccessLogHandler{logs: logs}
}

func (h *AccessLogHandler) RegisterRoutes(admin *mux.Router) {
	logs := admin.PathPrefix("/access-logs").Subrouter()
	logs.HandleFunc("", h.List).Methods(http.MethodGet)
	logs.HandleFunc("/period", h.ListByPeriod).Methods(http.MethodGet)
	logs.HandleFunc("/status/{status}", h.ListByStatus).Methods(http.MethodGet)
	logs.HandleFunc("/user/{userId}", h.ListByUser).Methods(http.MethodGet)
	logs.HandleFunc("/user/{userId}/period", h.ListByUserAndPeriod).Methods(http.MethodGet)
}

func (h *AccessLogHandler) List(w http.ResponseWriter, r *http.Request) {
	logs, err := h.logs.FindAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Erro: Falha ao processar a requisição!")
		return
	}
	writeLogs(w, logs)
}

func (h *AccessLogHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	logs, err := h.logs.FindByUser(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		response.InternalServerError(w, "Erro: Falha ao processar a requisição!")
		return
	}
	writeLogs(w, logs)
}

func (h *AccessLogHandler) ListByPeriod(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parsePeriod(w, r)
	if !ok {
		return
	}
	logs, err := h.logs.FindByPeriod(r.Context(), start, end)
	if err != nil {
		response.InternalServerError(w, "Erro: Falha ao processar a requisição!")
		return
	}
	writeLogs(w, logs)
}

func (h *AccessLogHandler) ListByUserAndPeriod(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parsePeriod(w, r)
	if !ok {
		return
	}
	logs, err := h.logs.FindByUserAndPeriod(r.Context(), mux.Vars(r)["userId"], start, end)
	if err != nil {
		response.InternalServerError(w, "Erro: Falha ao processar a requisição!")
		return
	}
	writeLogs(w, logs)
}

func (h *AccessLogHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	logs, err := h.logs.FindByStatus(r.Context(), mux.Vars(r)["status"])
	if err != nil {
		response.InternalServerError(w, "Erro: Falha ao processar a requisição!")
		return
	}
	writeLogs(w, logs)
}

func writeLogs(w http.ResponseWriter, logs []*entity.AccessLog) {
	if logs == nil {
		logs = []*entity.AccessLog{}
	}
	response.JSON(w, http.StatusOK, logs)
}

// parsePeriod reads the RFC 3339 start/end query parameters. Both are
// required on the period routes.
func parsePeriod(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		response.BadRequest(w, "Erro: Parâmetro 'start' inválido!")
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(time.RFC3339, r.URL.Query().Get("end"))
	if err != nil {
		response.BadRequest(w, "Erro: Parâmetro 'end' inválido!")
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
