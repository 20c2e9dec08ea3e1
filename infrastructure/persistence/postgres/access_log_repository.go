package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sparkwave/sparkwave-login/application/port/outbound"
	"github.com/sparkwave/sparkwave-login/domain/entity"
)

// The user join is LEFT: audit entries outlive the user record they
// concern.
const accessLogSelect = `
	SELECT l.id, l.user_id, COALESCE(u.username, ''), l.access_time, l.ip_address, l.user_agent, l.action, l.status
	FROM access_logs l
	LEFT JOIN users u ON u.id = l.user_id
`

type accessLogRepository struct {
	db *sql.DB
}

func NewAccessLogRepository(db *sql.DB) outbound.AccessLogRepository {
	return &accessLogRepository{db: db}
}

// Create appends one entry. There is deliberately no update or delete on
// this table.
func (r *accessLogRepository) Create(ctx context.Context, log *entity.AccessLog) error {
	query := `
		INSERT INTO access_logs (user_id, access_time, ip_address, user_agent, action, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := queryerFrom(ctx, r.db).QueryRowContext(ctx, query,
		log.UserID,
		log.AccessTime,
		log.IPAddress,
		log.UserAgent,
		log.Action,
		log.Status,
	).Scan(&log.ID)
	if err != nil {
		return fmt.Errorf("failed to create access log: %w", err)
	}
	return nil
}

func (r *accessLogRepository) FindAll(ctx context.Context) ([]*entity.AccessLog, error) {
	return r.query(ctx, accessLogSelect+" ORDER BY l.access_time DESC")
}

func (r *accessLogRepository) FindByUser(ctx context.Context, userID string) ([]*entity.AccessLog, error) {
	return r.query(ctx, accessLogSelect+" WHERE l.user_id = $1 ORDER BY l.access_time DESC", userID)
}

func (r *accessLogRepository) FindByPeriod(ctx context.Context, start, end time.Time) ([]*entity.AccessLog, error) {
	return r.query(ctx, accessLogSelect+" WHERE l.access_time BETWEEN $1 AND $2 ORDER BY l.access_time DESC", start, end)
}

func (r *accessLogRepository) FindByUserAndPeriod(ctx context.Context, userID string, start, end time.Time) ([]*entity.AccessLog, error) {
	return r.query(ctx, accessLogSelect+" WHERE l.user_id = $1 AND l.access_time BETWEEN $2 AND $3 ORDER BY l.access_time DESC", userID, start, end)
}

func (r *accessLogRepository) FindByStatus(ctx context.Context, status string) ([]*entity.AccessLog, error) {
	return r.query(ctx, accessLogSelect+" WHERE l.status = $1 ORDER BY l.access_time DESC", status)
}

func (r *accessLogRepository) query(ctx context.Context, query string, args ...interface{}) ([]*entity.AccessLog, error) {
	rows, err := queryerFrom(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query access logs: %w", err)
	}
	defer rows.Close()

	var logs []*entity.AccessLog
	for rows.Next() {
		var log entity.AccessLog
		err := rows.Scan(
			&log.ID,
			&log.UserID,
			&log.Username,
			&log.AccessTime,
			&log.IPAddress,
			&log.UserAgent,
			&log.Action,
			&log.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan access log: %w", err)
		}
		logs = append(logs, &log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate access logs: %w", err)
	}
	return logs, nil
}
