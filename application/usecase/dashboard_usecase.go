package usecase

import (
	"context"
	"time"

	"github.com/sparkwave/sparkwave-login/application/port/outbound"
	"github.com/sparkwave/sparkwave-login/domain/entity"
)

// DashboardStats aggregates the admin dashboard's overview numbers.
// Login counters cover the last seven days.
type DashboardStats struct {
	TotalUsers       int64            `json:"totalUsers"`
	ActiveUsers      int64            `json:"activeUsers"`
	UsersByRole      map[string]int64 `json:"usersByRole"`
	TotalLogins      int64            `json:"totalLogins"`
	SuccessfulLogins int64            `json:"successfulLogins"`
	FailedLogins     int64            `json:"failedLogins"`
	LoginsByDay      map[string]int64 `json:"loginsByDay"`
}

// UserStats aggregates one user's profile and their last thirty days of
// login activity.
type UserStats struct {
	Username         string     `json:"username"`
	Email            string     `json:"email"`
	FullName         string     `json:"fullName"`
	Active           bool       `json:"active"`
	Roles            []string   `json:"roles"`
	TotalLogins      int64      `json:"totalLogins"`
	SuccessfulLogins int64      `json:"successfulLogins"`
	FailedLogins     int64      `json:"failedLogins"`
	LastLogin        *time.Time `json:"lastLogin,omitempty"`
	LastIP           string     `json:"lastIp,omitempty"`
	LastUserAgent    string     `json:"lastUserAgent,omitempty"`
}

type DashboardUseCase struct {
	userRepo outbound.UserRepository
	logRepo  outbound.AccessLogRepository
	now      func() time.Time
}

func NewDashboardUseCase(userRepo outbound.UserRepository, logRepo outbound.AccessLogRepository) *DashboardUseCase {
	return &DashboardUseCase{
		userRepo: userRepo,
		logRepo:  logRepo,
		now:      time.Now,
	}
}

func (uc *DashboardUseCase) Stats(ctx context.Context) (*DashboardStats, error) {
	users, err := uc.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalUsers:  int64(len(users)),
		UsersByRole: map[string]int64{},
		LoginsByDay: map[string]int64{},
	}
	for _, u := range users {
		if u.Active {
			stats.ActiveUsers++
		}
		for _, role := range u.Roles {
			stats.UsersByRole[role]++
		}
	}

	now := uc.now()
	logs, err := uc.logRepo.FindByPeriod(ctx, now.AddDate(0, 0, -7), now)
	if err != nil {
		return nil, err
	}
	for _, l := range logs {
		if l.Action != entity.ActionLogin {
			continue
		}
		stats.TotalLogins++
		switch l.Status {
		case entity.StatusSuccess:
			stats.SuccessfulLogins++
			stats.LoginsByDay[l.AccessTime.Format("2006-01-02")]++
		case entity.StatusFailed:
			stats.FailedLogins++
		}
	}

	return stats, nil
}

func (uc *DashboardUseCase) UserStats(ctx context.Context, userID string) (*UserStats, error) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	logs, err := uc.logRepo.FindByUserAndPeriod(ctx, user.ID, now.AddDate(0, -1, 0), now)
	if err != nil {
		return nil, err
	}

	stats := &UserStats{
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		Active:   user.Active,
		Roles:    user.Roles,
	}
	for _, l := range logs {
		if l.Action != entity.ActionLogin {
			continue
		}
		stats.TotalLogins++
		switch l.Status {
		case entity.StatusSuccess:
			stats.SuccessfulLogins++
			if stats.LastLogin == nil || l.AccessTime.After(*stats.LastLogin) {
				t := l.AccessTime
				stats.LastLogin = &t
				stats.LastIP = l.IPAddress
				stats.LastUserAgent = l.UserAgent
			}
		case entity.StatusFailed:
			stats.FailedLogins++
		}
	}

	return stats, nil
}
