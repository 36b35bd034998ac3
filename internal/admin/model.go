package admin

import "time"

// NamedValue is one point of a dashboard chart.
type NamedValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// CategoryShare adds the category's share of the whole.
type CategoryShare struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// OverviewReport backs the dashboard landing page.
type OverviewReport struct {
	TotalSales           float64         `json:"totalSales"`
	NewUsers             int             `json:"newUsers"`
	TotalProducts        int             `json:"totalProducts"`
	SalesOverview        []NamedValue    `json:"salesOverview"`
	CategoryDistribution []CategoryShare `json:"categoryDistribution"`
	ConversionRate       string          `json:"conversionRate"`
}

// PeriodSales is one bucket of the sales-overview chart; the label depends
// on the requested time range ("Jan", "Week 12", "Q3", "2025").
type PeriodSales struct {
	Period string  `json:"period"`
	Sales  float64 `json:"sales"`
}

// DayTrend is one weekday of the daily-sales chart. DayOfWeek is 1-based
// starting at Sunday; all seven days are always present.
type DayTrend struct {
	DayOfWeek int     `json:"dayOfWeek"`
	Name      string  `json:"name"`
	Sales     float64 `json:"Sales"`
}

type SalesReport struct {
	TotalSales        float64       `json:"totalSales"`
	AverageOrderValue float64       `json:"averageOrderValue"`
	ConversionRate    float64       `json:"conversionRate"`
	SalesGrowth       float64       `json:"salesGrowth"`
	SalesOverview     []PeriodSales `json:"salesOverview"`
	SalesByCategory   []NamedValue  `json:"salesByCategory"`
	DailySalesTrend   []DayTrend    `json:"dailySalesTrend"`
}

// DailyOrders carries the MM/DD label in value and the count in name,
// matching what the dashboard charts expect.
type DailyOrders struct {
	Value string `json:"value"`
	Name  int    `json:"name"`
}

type OrderRow struct {
	ID       string    `json:"id"`
	Customer string    `json:"customer"`
	Total    float64   `json:"total"`
	Status   string    `json:"status"`
	Date     time.Time `json:"date"`
}

type OrdersReport struct {
	TotalOrders          int           `json:"totalOrders"`
	TotalPendingOrders   int           `json:"totalPendingOrders"`
	TotalCompletedOrders int           `json:"totalCompletedOrders"`
	TotalRevenue         float64       `json:"totalRevenue"`
	DailyOrders          []DailyOrders `json:"dailyOrders"`
	CategoryDistribution []NamedValue  `json:"categoryDistribution"`
	OrdersList           []OrderRow    `json:"ordersList"`
}

type ProductsReport struct {
	TotalProducts int     `json:"totalProducts"`
	TopSelling    int     `json:"topSelling"`
	LowStock      int     `json:"lowStock"`
	TotalRevenue  float64 `json:"totalRevenue"`
}
