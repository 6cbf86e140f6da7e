package service

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"signcraft/internal/domain"
)

// Tests pin the business timezone to a fixed UTC+5:30 zone so they do not
// depend on the host tzdata. Production loads Asia/Kolkata by name.
var testLoc = time.FixedZone("IST", 5*3600+30*60)

// Wednesday 2025-08-27 12:00 IST. The surrounding week runs Monday
// 2025-08-25 through Sunday 2025-08-31.
var testNow = time.Date(2025, time.August, 27, 12, 0, 0, 0, testLoc)

func floatPtr(f float64) *float64 {
	return &f
}

func newTestAggregator() *Aggregator {
	return NewAggregator(testLoc, zap.NewNop())
}

// localTime builds a UTC CreatedAt whose business-local reading is the
// given IST wall-clock time.
func localTime(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, testLoc).UTC()
}

func testOrder(invoiceID, customer string, total float64, discount *float64, createdAt time.Time) domain.Order {
	return domain.Order{
		InvoiceID:    invoiceID,
		CustomerName: customer,
		Total:        total,
		Discount:     discount,
		Status:       domain.OrderStatusPending,
		CreatedAt:    createdAt,
	}
}

func TestAggregate_EmptyOrderSet(t *testing.T) {
	snap := newTestAggregator().Aggregate(nil, testNow)

	assert.Equal(t, 0, snap.TotalOrders)
	assert.Equal(t, 0.0, snap.Revenue)
	assert.Equal(t, 0, snap.Customers)
	assert.Equal(t, 0, snap.PendingCount)
	assert.Equal(t, 0, snap.CompletedCount)
	assert.Equal(t, [12]int{}, snap.OrdersPerMonth)
	assert.Equal(t, [12]float64{}, snap.RevenuePerMonth)
	assert.Equal(t, [7]int{}, snap.OrdersPerDay)
	assert.Equal(t, [7]float64{}, snap.RevenuePerDay)
	assert.Len(t, snap.RevenuePerDayOfMonth, 31)
	for _, v := range snap.RevenuePerDayOfMonth {
		assert.Equal(t, 0.0, v)
	}
}

func TestAggregate_CurrentWeekScenario(t *testing.T) {
	// Monday of the current week, 10% discount; Wednesday, no discount.
	orders := []domain.Order{
		testOrder("INV_1", "Ravi", 1000, floatPtr(10), localTime(2025, time.August, 25, 10, 0)),
		testOrder("INV_2", "Meena", 500, floatPtr(0), localTime(2025, time.August, 27, 9, 30)),
	}

	snap := newTestAggregator().Aggregate(orders, testNow)

	assert.Equal(t, 900.0, snap.RevenuePerDay[0])
	assert.Equal(t, 500.0, snap.RevenuePerDay[2])
	for _, idx := range []int{1, 3, 4, 5, 6} {
		assert.Equal(t, 0.0, snap.RevenuePerDay[idx], "day index %d", idx)
	}
	assert.Equal(t, 1, snap.OrdersPerDay[0])
	assert.Equal(t, 1, snap.OrdersPerDay[2])
	assert.Equal(t, 1400.0, snap.Revenue)
}

func TestAggregate_OrdersOutsideCurrentWeekExcludedFromDayBuckets(t *testing.T) {
	orders := []domain.Order{
		// Previous Sunday, one minute before the window opens.
		testOrder("INV_1", "A", 100, nil, localTime(2025, time.August, 24, 23, 59)),
		// Next Monday, just after the window closes.
		testOrder("INV_2", "B", 200, nil, localTime(2025, time.September, 1, 0, 0)),
	}

	snap := newTestAggregator().Aggregate(orders, testNow)

	assert.Equal(t, [7]int{}, snap.OrdersPerDay)
	assert.Equal(t, [7]float64{}, snap.RevenuePerDay)
	// Still counted in all-time totals and month buckets.
	assert.Equal(t, 2, snap.TotalOrders)
	assert.Equal(t, 300.0, snap.Revenue)
}

func TestAggregate_WeekdayIndexUsesBusinessLocalDay(t *testing.T) {
	// 20:30 UTC on Monday is already 02:00 Tuesday in IST.
	utcMondayEvening := time.Date(2025, time.August, 25, 20, 30, 0, 0, time.UTC)
	orders := []domain.Order{
		testOrder("INV_1", "A", 100, nil, utcMondayEvening),
	}

	snap := newTestAggregator().Aggregate(orders, testNow)

	assert.Equal(t, 0, snap.OrdersPerDay[0])
	assert.Equal(t, 1, snap.OrdersPerDay[1])
}

func TestAggregate_MonthBucketSumEqualsTotalOrders(t *testing.T) {
	orders := []domain.Order{
		testOrder("INV_1", "A", 100, nil, localTime(2025, time.January, 5, 10, 0)),
		testOrder("INV_2", "B", 200, nil, localTime(2025, time.March, 14, 10, 0)),
		testOrder("INV_3", "C", 300, nil, localTime(2024, time.March, 2, 10, 0)),
		testOrder("INV_4", "D", 400, nil, localTime(2025, time.August, 26, 10, 0)),
		testOrder("INV_5", "E", 500, nil, localTime(2025, time.December, 31, 23, 30)),
	}

	snap := newTestAggregator().Aggregate(orders, testNow)

	sum := 0
	for _, c := range snap.OrdersPerMonth {
		sum += c
	}
	assert.Equal(t, snap.TotalOrders, sum)
	// March carries both years' orders: month buckets are year-agnostic.
	assert.Equal(t, 2, snap.OrdersPerMonth[2])
}

func TestAggregate_RevenuePerDayOfMonthCurrentMonthOnly(t *testing.T) {
	orders := []domain.Order{
		testOrder("INV_1", "A", 1000, floatPtr(50), localTime(2025, time.August, 1, 9, 0)),
		testOrder("INV_2", "B", 300, nil, localTime(2025, time.August, 15, 9, 0)),
		testOrder("INV_3", "C", 300, nil, localTime(2025, time.August, 15, 18, 0)),
		// Same calendar day, previous year: excluded.
		testOrder("INV_4", "D", 999, nil, localTime(2024, time.August, 15, 9, 0)),
		testOrder("INV_5", "E", 999, nil, localTime(2025, time.July, 31, 9, 0)),
	}

	snap := newTestAggregator().Aggregate(orders, testNow)

	require.Len(t, snap.RevenuePerDayOfMonth, 31)
	assert.Equal(t, 500.0, snap.RevenuePerDayOfMonth[0])
	assert.Equal(t, 600.0, snap.RevenuePerDayOfMonth[14])
	assert.Equal(t, 0.0, snap.RevenuePerDayOfMonth[30])
}

func TestAggregate_AllTimeAndThisMonthRevenueDistinct(t *testing.T) {
	orders := []domain.Order{
		testOrder("INV_1", "A", 1000, nil, localTime(2025, time.August, 10, 9, 0)),
		testOrder("INV_2", "B", 2000, nil, localTime(2025, time.February, 2, 9, 0)),
	}

	snap := newTestAggregator().Aggregate(orders, testNow)

	assert.Equal(t, 3000.0, snap.Revenue)
	assert.Equal(t, 1000.0, snap.ThisMonthRevenue)
	assert.Equal(t, 1, snap.ThisMonthOrders)
	assert.Equal(t, 2, snap.TotalOrders)
}

func TestAggregate_StatusCountsAreAllTime(t *testing.T) {
	pending := testOrder("INV_1", "A", 100, nil, localTime(2024, time.January, 1, 9, 0))
	completed := testOrder("INV_2", "B", 100, nil, localTime(2024, time.June, 1, 9, 0))
	completed.Status = domain.OrderStatusCompleted
	delivered := testOrder("INV_3", "C", 100, nil, localTime(2025, time.August, 26, 9, 0))
	delivered.Status = domain.OrderStatusDelivered

	snap := newTestAggregator().Aggregate([]domain.Order{pending, completed, delivered}, testNow)

	assert.Equal(t, 1, snap.PendingCount)
	assert.Equal(t, 1, snap.CompletedCount)
}

func TestAggregate_DistinctCustomers(t *testing.T) {
	orders := []domain.Order{
		testOrder("INV_1", "Ravi", 100, nil, localTime(2025, time.August, 25, 9, 0)),
		testOrder("INV_2", "Ravi", 100, nil, localTime(2025, time.August, 26, 9, 0)),
		testOrder("INV_3", "Meena", 100, nil, localTime(2025, time.August, 26, 9, 0)),
	}

	snap := newTestAggregator().Aggregate(orders, testNow)

	assert.Equal(t, 2, snap.Customers)
}

func TestAggregate_MalformedCreatedAtExcludedFromBucketsOnly(t *testing.T) {
	good := testOrder("INV_1", "A", 100, nil, localTime(2025, time.August, 26, 9, 0))
	bad := testOrder("INV_2", "B", 200, nil, time.Time{})

	snap := newTestAggregator().Aggregate([]domain.Order{good, bad}, testNow)

	assert.Equal(t, 2, snap.TotalOrders)
	assert.Equal(t, 300.0, snap.Revenue)
	assert.Equal(t, 2, snap.PendingCount)
	assert.Equal(t, 2, snap.Customers)

	sum := 0
	for _, c := range snap.OrdersPerMonth {
		sum += c
	}
	assert.Equal(t, 1, sum)
}

func TestAggregate_Idempotent(t *testing.T) {
	orders := []domain.Order{
		testOrder("INV_1", "A", 1000, floatPtr(10), localTime(2025, time.August, 25, 9, 0)),
		testOrder("INV_2", "B", 500, nil, localTime(2025, time.March, 2, 9, 0)),
	}
	agg := newTestAggregator()

	first := agg.Aggregate(orders, testNow)
	second := agg.Aggregate(orders, testNow)

	assert.Equal(t, first, second)
}

func TestAggregate_InvariantUnderInputReordering(t *testing.T) {
	orders := []domain.Order{
		testOrder("INV_1", "A", 1000, floatPtr(10), localTime(2025, time.August, 25, 9, 0)),
		testOrder("INV_2", "B", 500, nil, localTime(2025, time.August, 27, 9, 0)),
		testOrder("INV_3", "C", 250, floatPtr(100), localTime(2025, time.August, 29, 9, 0)),
		testOrder("INV_4", "D", 750, nil, localTime(2025, time.February, 1, 9, 0)),
	}
	agg := newTestAggregator()
	want := agg.Aggregate(orders, testNow)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]domain.Order, len(orders))
		copy(shuffled, orders)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		assert.Equal(t, want, agg.Aggregate(shuffled, testNow))
	}
}

func TestAggregate_DaysInMonthFollowsCurrentMonth(t *testing.T) {
	agg := newTestAggregator()

	februaryNow := time.Date(2025, time.February, 10, 12, 0, 0, 0, testLoc)
	snap := agg.Aggregate(nil, februaryNow)
	assert.Len(t, snap.RevenuePerDayOfMonth, 28)

	leapFebruaryNow := time.Date(2024, time.February, 10, 12, 0, 0, 0, testLoc)
	snap = agg.Aggregate(nil, leapFebruaryNow)
	assert.Len(t, snap.RevenuePerDayOfMonth, 29)
}

func TestMondayFirstIndex(t *testing.T) {
	assert.Equal(t, 0, mondayFirstIndex(time.Monday))
	assert.Equal(t, 2, mondayFirstIndex(time.Wednesday))
	assert.Equal(t, 6, mondayFirstIndex(time.Sunday))
}
