package usecase

import (
	"context"
	"time"

	"github.com/sparkwave/sparkwave-login/application/port/inbound"
	"github.com/sparkwave/sparkwave-login/application/port/outbound"
	"github.com/sparkwave/sparkwave-login/domain/entity"
)

// AccessLogUseCase appends and queries the audit trail.
type AccessLogUseCase struct {
	logRepo outbound.AccessLogRepository
	now     func() time.Time
}

func NewAccessLogUseCase(logRepo outbound.AccessLogRepository) *AccessLogUseCase {
	return &AccessLogUseCase{
		logRepo: logRepo,
		now:     time.Now,
	}
}

// Record appends one entry for an authentication-relevant event. The
// timestamp is taken from the server clock at call time. Whether the
// write shares a transaction with a primary mutation is decided by the
// caller through ctx (see outbound.TxRunner).
func (uc *AccessLogUseCase) Record(ctx context.Context, userID, action, status string, client inbound.ClientContext) (*entity.AccessLog, error) {
	log := &entity.AccessLog{
		UserID:     userID,
		AccessTime: uc.now(),
		IPAddress:  client.IPAddress,
		UserAgent:  client.UserAgent,
		Action:     action,
		Status:     status,
	}
	if err := uc.logRepo.Create(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (uc *AccessLogUseCase) FindAll(ctx context.Context) ([]*entity.AccessLog, error) {
	return uc.logRepo.FindAll(ctx)
}

func (uc *AccessLogUseCase) FindByUser(ctx context.Context, userID string) ([]*entity.AccessLog, error) {
	return uc.logRepo.FindByUser(ctx, userID)
}

func (uc *AccessLogUseCase) FindByPeriod(ctx context.Context, start, end time.Time) ([]*entity.AccessLog, error) {
	return uc.logRepo.FindByPeriod(ctx, start, end)
}

func (uc *AccessLogUseCase) FindByUserAndPeriod(ctx context.Context, userID string, start, end time.Time) ([]*entity.AccessLog, error) {
	return uc.logRepo.FindByUserAndPeriod(ctx, userID, start, end)
}

func (uc *AccessLogUseCase) FindByStatus(ctx context.Context, status string) ([]*entity.AccessLog, error) {
	return uc.logRepo.FindByStatus(ctx, status)
}
