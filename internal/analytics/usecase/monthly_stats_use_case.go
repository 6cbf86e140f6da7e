package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"signcraft/internal/analytics/service"
	"signcraft/internal/domain"
	"signcraft/internal/dto"
	apperrors "signcraft/internal/errors"
)

type OrderSource interface {
	FindAll(ctx context.Context) ([]domain.Order, error)
}

type Aggregator interface {
	Aggregate(orders []domain.Order, now time.Time) *service.Snapshot
}

type MonthlyStatsUseCase struct {
	source     OrderSource
	aggregator Aggregator
	logger     *zap.Logger
	now        func() time.Time
}

func NewMonthlyStatsUseCase(source OrderSource, aggregator Aggregator, logger *zap.Logger) *MonthlyStatsUseCase {
	return &MonthlyStatsUseCase{
		source:     source,
		aggregator: aggregator,
		logger:     logger,
		now:        time.Now,
	}
}

func (uc *MonthlyStatsUseCase) GetMonthlyStats(ctx context.Context) (*dto.AnalyticsSnapshot, error) {
	orders, err := uc.source.FindAll(ctx)
	if err != nil {
		uc.logger.Error("fetching order snapshot", zap.Error(err))
		return nil, apperrors.NewSourceUnavailableError("order source unavailable", err)
	}

	snap := uc.aggregator.Aggregate(orders, uc.now())

	return mapSnapshot(snap), nil
}

var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var dayLabels = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func mapSnapshot(snap *service.Snapshot) *dto.AnalyticsSnapshot {
	out := &dto.AnalyticsSnapshot{
		TotalOrders:          snap.TotalOrders,
		Revenue:              snap.Revenue,
		Customers:            snap.Customers,
		PendingCount:         snap.PendingCount,
		CompletedCount:       snap.CompletedCount,
		ThisMonthOrders:      snap.ThisMonthOrders,
		ThisMonthRevenue:     snap.ThisMonthRevenue,
		OrdersPerMonth:       make([]dto.MonthCount, 12),
		RevenuePerMonth:      make([]dto.MonthRevenue, 12),
		OrdersPerDay:         make([]dto.DayCount, 7),
		RevenuePerDay:        make([]dto.DayRevenue, 7),
		RevenuePerDayOfMonth: snap.RevenuePerDayOfMonth,
	}

	for i, label := range monthLabels {
		out.OrdersPerMonth[i] = dto.MonthCount{Month: label, Count: snap.OrdersPerMonth[i]}
		out.RevenuePerMonth[i] = dto.MonthRevenue{Month: label, Revenue: snap.RevenuePerMonth[i]}
	}
	for i, label := range dayLabels {
		out.OrdersPerDay[i] = dto.DayCount{Day: label, Count: snap.OrdersPerDay[i]}
		out.RevenuePerDay[i] = dto.DayRevenue{Day: label, Revenue: snap.RevenuePerDay[i]}
	}

	return out
}
