package dto

// Bucket shapes mirror the dashboard payload: months and weekdays are
// labeled so charts can consume them without positional knowledge.

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type MonthRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type DayRevenue struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
}

// AnalyticsSnapshot is the read-only projection served to dashboards.
// Revenue is the all-time discounted sum; ThisMonthRevenue is the
// current-month bucket. The two are deliberately distinct fields.
type AnalyticsSnapshot struct {
	TotalOrders          int            `json:"totalOrders"`
	Revenue              float64        `json:"revenue"`
	Customers            int            `json:"customers"`
	PendingCount         int            `json:"pendingCount"`
	CompletedCount       int            `json:"completedCount"`
	ThisMonthOrders      int            `json:"thisMonthOrders"`
	ThisMonthRevenue     float64        `json:"thisMonthRevenue"`
	OrdersPerMonth       []MonthCount   `json:"ordersPerMonth"`
	RevenuePerMonth      []MonthRevenue `json:"revenuePerMonth"`
	OrdersPerDay         []DayCount     `json:"ordersPerDay"`
	RevenuePerDay        []DayRevenue   `json:"revenuePerDay"`
	RevenuePerDayOfMonth []float64      `json:"revenuePerDayOfMonth"`
}
