package service

import (
	"time"

	"go.uber.org/zap"

	"signcraft/internal/domain"
	apperrors "signcraft/internal/errors"
)

// Snapshot is one deterministic pass over the full order collection.
// Month buckets are year-agnostic (0=January), week buckets cover only
// the current business-local Monday..Sunday window, and day-of-month
// buckets cover only the current business-local calendar month.
//
// Revenue is the all-time discounted sum; ThisMonthRevenue is the
// current-month bucket. Callers pick whichever they mean.
type Snapshot struct {
	TotalOrders          int
	Revenue              float64
	Customers            int
	PendingCount         int
	CompletedCount       int
	ThisMonthOrders      int
	ThisMonthRevenue     float64
	OrdersPerMonth       [12]int
	RevenuePerMonth      [12]float64
	OrdersPerDay         [7]int
	RevenuePerDay        [7]float64
	RevenuePerDayOfMonth []float64
}

type Aggregator struct {
	loc    *time.Location
	logger *zap.Logger
}

func NewAggregator(loc *time.Location, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		loc:    loc,
		logger: logger,
	}
}

// Aggregate computes every bucket in a single O(n) pass. Records with an
// unknown CreatedAt are reported to the logger and excluded from all
// time buckets, but still count toward the all-time totals.
func (a *Aggregator) Aggregate(orders []domain.Order, now time.Time) *Snapshot {
	nowLocal := now.In(a.loc)
	weekStart := a.startOfWeek(nowLocal)
	weekEnd := weekStart.AddDate(0, 0, 7)

	year, month := nowLocal.Year(), nowLocal.Month()
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, a.loc).Day()

	snap := &Snapshot{
		RevenuePerDayOfMonth: make([]float64, daysInMonth),
	}
	customers := make(map[string]struct{})

	for i := range orders {
		o := &orders[i]
		revenue := o.EffectiveRevenue()

		snap.TotalOrders++
		snap.Revenue += revenue
		customers[o.CustomerName] = struct{}{}

		switch o.Status {
		case domain.OrderStatusPending:
			snap.PendingCount++
		case domain.OrderStatusCompleted:
			snap.CompletedCount++
		}

		if !o.HasValidCreatedAt() {
			a.logger.Warn("order excluded from time buckets",
				zap.String("invoiceId", o.InvoiceID),
				zap.Error(apperrors.NewMalformedRecordError(o.InvoiceID, "createdAt")),
			)
			continue
		}

		local := o.CreatedAt.In(a.loc)

		monthIdx := int(local.Month()) - 1
		snap.OrdersPerMonth[monthIdx]++
		snap.RevenuePerMonth[monthIdx] += revenue

		if !local.Before(weekStart) && local.Before(weekEnd) {
			dayIdx := mondayFirstIndex(local.Weekday())
			snap.OrdersPerDay[dayIdx]++
			snap.RevenuePerDay[dayIdx] += revenue
		}

		if local.Year() == year && local.Month() == month {
			snap.RevenuePerDayOfMonth[local.Day()-1] += revenue
		}
	}

	snap.Customers = len(customers)

	currentMonthIdx := int(month) - 1
	snap.ThisMonthOrders = snap.OrdersPerMonth[currentMonthIdx]
	snap.ThisMonthRevenue = snap.RevenuePerMonth[currentMonthIdx]

	return snap
}

// startOfWeek returns Monday 00:00:00 of the week containing t, in the
// business timezone.
func (a *Aggregator) startOfWeek(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day-mondayFirstIndex(t.Weekday()), 0, 0, 0, 0, a.loc)
}

// mondayFirstIndex converts Go's Sunday-first weekday to 0=Monday..6=Sunday.
func mondayFirstIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
