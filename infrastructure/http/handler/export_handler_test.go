package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkwave/sparkwave-login/application/port/outbound"
	"github.com/sparkwave/sparkwave-login/application/usecase"
	"github.com/sparkwave/sparkwave-login/domain/entity"
)

type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, outbound.ErrUserNotFound
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id string) error         { return nil }
func (f *fakeUserRepo) Count(ctx context.Context) (int64, error)            { return 0, nil }

func newExportRouter(users *fakeUserRepo, logs *fakeLogRepo) *mux.Router {
	r := mux.NewRouter()
	admin := r.PathPrefix("/admin").Subrouter()
	NewExportHandler(usecase.NewExportUseCase(users, logs)).RegisterRoutes(admin)
	return r
}

func TestExportUsersCSV(t *testing.T) {
	users := &fakeUserRepo{users: []*entity.User{
		{ID: "id-1", Username: "alice", Email: "alice@example.com", FullName: "Alice Silva", Roles: []string{"ADMIN"}, Active: true},
	}}
	router := newExportRouter(users, &fakeLogRepo{})

	req := httptest.NewRequest(http.MethodGet, "/admin/export/users/csv", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="usuarios_sparkwave.csv"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "ID,Username,Email,Nome Completo,Ativo,Perfis\n"))
	assert.Contains(t, rec.Body.String(), "id-1,alice,alice@example.com,Alice Silva,true,ADMIN")
}

func TestExportAccessLogsCSV(t *testing.T) {
	router := newExportRouter(&fakeUserRepo{}, &fakeLogRepo{})

	req := httptest.NewRequest(http.MethodGet, "/admin/export/access-logs/csv", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="historico_acessos_sparkwave.csv"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "ID,Usuário,Data/Hora,Endereço IP,User Agent,Ação,Status\n"))
}

func TestExportAccessLogsCSV_PeriodFilter(t *testing.T) {
	logs := &fakeLogRepo{}
	router := newExportRouter(&fakeUserRepo{}, logs)

	req := httptest.NewRequest(http.MethodGet,
		"/admin/export/access-logs/csv?start=2026-03-01T00:00:00Z&end=2026-03-31T23:59:59Z", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, logs.periodCalls)
}

func TestExportAccessLogsCSV_BadPeriod(t *testing.T) {
	router := newExportRouter(&fakeUserRepo{}, &fakeLogRepo{})

	req := httptest.NewRequest(http.MethodGet, "/admin/export/access-logs/csv?start=ontem", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
