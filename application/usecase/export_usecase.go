package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/sparkwave/sparkwave-login/application/port/outbound"
	"github.com/sparkwave/sparkwave-login/domain/entity"
)

const exportTimeLayout = "2006-01-02 15:04:05"

// ExportUseCase renders admin CSV exports. Fields containing a comma,
// quote or newline are quote-wrapped with internal quotes doubled;
// plain fields are emitted as-is.
type ExportUseCase struct {
	userRepo outbound.UserRepository
	logRepo  outbound.AccessLogRepository
}

func NewExportUseCase(userRepo outbound.UserRepository, logRepo outbound.AccessLogRepository) *ExportUseCase {
	return &ExportUseCase{userRepo: userRepo, logRepo: logRepo}
}

func (uc *ExportUseCase) UsersCSV(ctx context.Context) (string, error) {
	users, err := uc.userRepo.FindAll(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("ID,Username,Email,Nome Completo,Ativo,Perfis\n")
	for _, u := range users {
		fields := []string{
			u.ID,
			u.Username,
			u.Email,
			escapeCSVField(u.FullName),
			strconv.FormatBool(u.Active),
			escapeCSVField(strings.Join(u.Roles, ", ")),
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// AccessLogsCSV exports the audit trail, optionally restricted to a
// period when both bounds are given.
func (uc *ExportUseCase) AccessLogsCSV(ctx context.Context, start, end *time.Time) (string, error) {
	logs, err := uc.findLogs(ctx, start, end)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("ID,Usuário,Data/Hora,Endereço IP,User Agent,Ação,Status\n")
	for _, l := range logs {
		fields := []string{
			strconv.FormatInt(l.ID, 10),
			l.Username,
			l.AccessTime.Format(exportTimeLayout),
			escapeCSVField(l.IPAddress),
			escapeCSVField(l.UserAgent),
			escapeCSVField(l.Action),
			escapeCSVField(l.Status),
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func (uc *ExportUseCase) findLogs(ctx context.Context, start, end *time.Time) ([]*entity.AccessLog, error) {
	if start != nil && end != nil {
		return uc.logRepo.FindByPeriod(ctx, *start, *end)
	}
	return uc.logRepo.FindAll(ctx)
}

func escapeCSVField(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
