package stats

import (
	"context"
	"time"

	"github.com/campcrew/shiftboard-backend-go/internal/domain/stats"
	"github.com/campcrew/shiftboard-backend-go/internal/repository/session"
)

type statsServiceImpl struct {
	store *session.Store
}

func NewStatsService(store *session.Store) stats.StatsService {
	return &statsServiceImpl{store: store}
}

// Monthly implements stats.StatsService.
func (s *statsServiceImpl) Monthly(ctx context.Context, month string) (stats.MonthlyStats, error) {
	referenceMonth, err := time.Parse("2006-01", month)
	if err != nil {
		return stats.MonthlyStats{}, stats.ErrInvalidMonth
	}

	return ComputeMonthlyStats(s.store.Shifts(), s.store.Employees(), referenceMonth), nil
}
