package outbound

import (
	"context"
	"time"

	"github.com/sparkwave/sparkwave-login/domain/entity"
)

// AccessLogRepository persists the append-only audit trail. There is no
// update or delete: entries are written exactly once per event.
type AccessLogRepository interface {
	Create(ctx context.Context, log *entity.AccessLog) error
	FindAll(ctx context.Context) ([]*entity.AccessLog, error)
	FindByUser(ctx context.Context, userID string) ([]*entity.AccessLog, error)
	FindByPeriod(ctx context.Context, start, end time.Time) ([]*entity.AccessLog, error)
	FindByUserAndPeriod(ctx context.Context, userID string, start, end time.Time) ([]*entity.AccessLog, error)
	FindByStatus(ctx context.Context, status string) ([]*entity.AccessLog, error)
}
