package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/sparkwave/sparkwave-login/application/usecase"
	"github.com/sparkwave/sparkwave-login/infrastructure/http/response"
)

type ExportHandler struct {
	export *usecase.ExportUseCase
}

func NewExportHandler(export *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{export: export}
}

func (h *ExportHandler) RegisterRoutes(admin *mux.Router) {
	export := admin.PathPrefix("/export").Subrouter()
	export.HandleFunc("/users/csv", h.UsersCSV).Methods(http.MethodGet)
	export.HandleFunc("/access-logs/csv", h.AccessLogsCSV).Methods(http.MethodGet)
}

func (h *ExportHandler) UsersCSV(w http.ResponseWriter, r *http.Request) {
	csv, err := h.export.UsersCSV(r.Context())
	if err != nil {
		response.InternalServerError(w, "Erro: Falha ao processar a requisição!")
		return
	}
	writeCSV(w, "usuarios_sparkwave.csv", csv)
}

// AccessLogsCSV exports the audit trail; with both start and end set
// (RFC 3339) only that period is included.
func (h *ExportHandler) AccessLogsCSV(w http.ResponseWriter, r *http.Request) {
	var start, end *time.Time
	if s := r.URL.Query().Get("start"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			response.BadRequest(w, "Erro: Parâmetro 'start' inválido!")
			return
		}
		start = &t
	}
	if e := r.URL.Query().Get("end"); e != "" {
		t, err := time.Parse(time.RFC3339, e)
		if err != nil {
			response.BadRequest(w, "Erro: Parâmetro 'end' inválido!")
			return
		}
		end = &t
	}

	csv, err := h.export.AccessLogsCSV(r.Context(), start, end)
	if err != nil {
		response.InternalServerError(w, "Erro: Falha ao processar a requisição!")
		return
	}
	writeCSV(w, "historico_acessos_sparkwave.csv", csv)
}

func writeCSV(w http.ResponseWriter, filename, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}
