package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Repository computes the dashboard reports. Everything is read-only.
type Repository interface {
	Overview(ctx context.Context) (*OverviewReport, error)
	Sales(ctx context.Context, timeRange string) (*SalesReport, error)
	Orders(ctx context.Context) (*OrdersReport, error)
	Products(ctx context.Context) (*ProductsReport, error)
}

type PGRepo struct {
	db  *pgxpool.Pool
	now func() time.Time
}

func NewPGRepo(db *pgxpool.Pool) *PGRepo {
	return &PGRepo{db: db, now: time.Now}
}

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// startOfWeek floors t to midnight of the preceding Sunday.
func startOfWeek(t time.Time) time.Time {
	t = t.AddDate(0, 0, -int(t.Weekday()))
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func pct(part, whole int64) decimal.Decimal {
	if whole == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(part).
		Div(decimal.NewFromInt(whole)).
		Mul(decimal.NewFromInt(100))
}

func (r *PGRepo) Overview(ctx context.Context) (*OverviewReport, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rep := &OverviewReport{
		SalesOverview:        []NamedValue{},
		CategoryDistribution: []CategoryShare{},
	}

	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(order_total),0)::float8
		FROM orders WHERE payment_method IN ('UPI','CARD')
	`).Scan(&rep.TotalSales)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM clients WHERE created_at >= NOW() - INTERVAL '30 days'
	`).Scan(&rep.NewUsers)
	if err != nil {
		return nil, err
	}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&rep.TotalProducts); err != nil {
		return nil, err
	}

	var totalClients, buyingClients int64
	err = r.db.QueryRow(ctx, `
		SELECT (SELECT COUNT(*) FROM clients),
		       (SELECT COUNT(DISTINCT client_id) FROM orders)
	`).Scan(&totalClients, &buyingClients)
	if err != nil {
		return nil, err
	}
	rep.ConversionRate = pct(buyingClients, totalClients).StringFixed(2)

	rows, err := r.db.Query(ctx, `
		SELECT EXTRACT(YEAR FROM order_date)::int,
		       EXTRACT(MONTH FROM order_date)::int,
		       COALESCE(SUM(amount),0)::float8
		FROM orders
		WHERE order_date >= '2023-07-01'
		GROUP BY 1, 2
		ORDER BY 1, 2
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var year, month int
		var total float64
		if err := rows.Scan(&year, &month, &total); err != nil {
			return nil, err
		}
		rep.SalesOverview = append(rep.SalesOverview, NamedValue{Name: monthNames[month-1], Value: total})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	catRows, err := r.db.Query(ctx, `
		SELECT category, COUNT(*) FROM products GROUP BY category ORDER BY category
	`)
	if err != nil {
		return nil, err
	}
	defer catRows.Close()
	type catCount struct {
		name  string
		count int64
	}
	var cats []catCount
	var catTotal int64
	for catRows.Next() {
		var c catCount
		if err := catRows.Scan(&c.name, &c.count); err != nil {
			return nil, err
		}
		cats = append(cats, c)
		catTotal += c.count
	}
	if err := catRows.Err(); err != nil {
		return nil, err
	}
	for _, c := range cats {
		rep.CategoryDistribution = append(rep.CategoryDistribution, CategoryShare{
			Name:       c.name,
			Value:      float64(c.count),
			Percentage: pct(c.count, catTotal).InexactFloat64(),
		})
	}

	return rep, nil
}

func (r *PGRepo) Sales(ctx context.Context, timeRange string) (*SalesReport, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rep := &SalesReport{
		SalesOverview:   []PeriodSales{},
		SalesByCategory: []NamedValue{},
	}

	var totalSales decimal.Decimal
	var totalOrders, totalCustomers int64
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount),0)::text,
		       COUNT(*),
		       COUNT(DISTINCT client_id)
		FROM orders
	`).Scan(&totalSales, &totalOrders, &totalCustomers)
	if err != nil {
		return nil, err
	}
	rep.TotalSales = totalSales.InexactFloat64()
	if totalOrders > 0 {
		rep.AverageOrderValue = totalSales.
			Div(decimal.NewFromInt(totalOrders)).
			Round(2).InexactFloat64()
	}
	// Orders per buying customer, as a percentage. Not a true conversion
	// rate but it is what the dashboard charts.
	rep.ConversionRate = pct(totalOrders, totalCustomers).Round(2).InexactFloat64()

	now := r.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevStart := monthStart.AddDate(0, -1, 0)

	var current, previous decimal.Decimal
	err = r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount) FILTER (WHERE order_date >= $1),0)::text,
		       COALESCE(SUM(amount) FILTER (WHERE order_date >= $2 AND order_date < $1),0)::text
		FROM orders WHERE order_date >= $2
	`, monthStart, prevStart).Scan(&current, &previous)
	if err != nil {
		return nil, err
	}
	if !previous.IsZero() {
		rep.SalesGrowth = current.Sub(previous).
			Div(previous).
			Mul(decimal.NewFromInt(100)).
			Round(2).InexactFloat64()
	}

	bucket, label, err := salesBucket(timeRange)
	if err != nil {
		return nil, err
	}
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT %s::int, COALESCE(SUM(order_total),0)::float8
		FROM orders
		WHERE order_status = 'Completed' AND order_date >= $1
		GROUP BY 1
		ORDER BY 1
	`, bucket), yearStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var period int
		var sales float64
		if err := rows.Scan(&period, &sales); err != nil {
			return nil, err
		}
		rep.SalesOverview = append(rep.SalesOverview, PeriodSales{Period: label(period), Sales: sales})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	catRows, err := r.db.Query(ctx, `
		SELECT p.category, COALESCE(SUM(s.sales),0)::float8
		FROM products p
		JOIN stock_and_sales s ON s.product_id = p.id
		GROUP BY p.category
		ORDER BY p.category
	`)
	if err != nil {
		return nil, err
	}
	defer catRows.Close()
	for catRows.Next() {
		var nv NamedValue
		if err := catRows.Scan(&nv.Name, &nv.Value); err != nil {
			return nil, err
		}
		rep.SalesByCategory = append(rep.SalesByCategory, nv)
	}
	if err := catRows.Err(); err != nil {
		return nil, err
	}

	trend, err := r.dailySalesTrend(ctx, now)
	if err != nil {
		return nil, err
	}
	rep.DailySalesTrend = trend

	return rep, nil
}

// salesBucket maps a time range to the grouping expression and its label
// formatter.
func salesBucket(timeRange string) (string, func(int) string, error) {
	switch timeRange {
	case "week":
		return `EXTRACT(WEEK FROM order_date)`, func(p int) string { return fmt.Sprintf("Week %d", p) }, nil
	case "month":
		return `EXTRACT(MONTH FROM order_date)`, func(p int) string { return monthNames[p-1] }, nil
	case "quarter":
		return `EXTRACT(QUARTER FROM order_date)`, func(p int) string { return fmt.Sprintf("Q%d", p) }, nil
	case "year":
		return `EXTRACT(YEAR FROM order_date)`, func(p int) string { return fmt.Sprintf("%d", p) }, nil
	default:
		return "", nil, fmt.Errorf("unknown time range %q", timeRange)
	}
}

// dailySalesTrend returns the current week's sales per weekday, all seven
// days present with zeros where nothing sold.
func (r *PGRepo) dailySalesTrend(ctx context.Context, now time.Time) ([]DayTrend, error) {
	week := startOfWeek(now)

	trend := make([]DayTrend, 7)
	for i := range trend {
		trend[i] = DayTrend{DayOfWeek: i + 1, Name: dayNames[i]}
	}

	rows, err := r.db.Query(ctx, `
		SELECT EXTRACT(DOW FROM last_update_date)::int, COALESCE(SUM(sales),0)::float8
		FROM stock_and_sales
		WHERE last_update_date >= $1 AND last_update_date <= $2
		GROUP BY 1
	`, week, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var dow int
		var sales float64
		if err := rows.Scan(&dow, &sales); err != nil {
			return nil, err
		}
		trend[dow].Sales = sales
	}
	return trend, rows.Err()
}

func (r *PGRepo) Orders(ctx context.Context) (*OrdersReport, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rep := &OrdersReport{
		CategoryDistribution: []NamedValue{},
		OrdersList:           []OrderRow{},
	}

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE order_status IN ('Pending','Processing')),
		       COUNT(*) FILTER (WHERE order_status = 'Delivered'),
		       COALESCE(SUM(amount) FILTER (WHERE order_status = 'Delivered'),0)::float8
		FROM orders
	`).Scan(&rep.TotalOrders, &rep.TotalPendingOrders, &rep.TotalCompletedOrders, &rep.TotalRevenue)
	if err != nil {
		return nil, err
	}

	now := r.now()
	week := startOfWeek(now)
	weekEnd := week.AddDate(0, 0, 7)

	counts := map[string]int{}
	rows, err := r.db.Query(ctx, `
		SELECT to_char(order_date, 'MM/DD'), COUNT(*)
		FROM orders
		WHERE order_date >= $1 AND order_date < $2
		GROUP BY 1
	`, week, weekEnd)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var day string
		var n int
		if err := rows.Scan(&day, &n); err != nil {
			rows.Close()
			return nil, err
		}
		counts[day] = n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := 0; i < 7; i++ {
		day := week.AddDate(0, 0, i).Format("01/02")
		rep.DailyOrders = append(rep.DailyOrders, DailyOrders{Value: day, Name: counts[day]})
	}

	statusRows, err := r.db.Query(ctx, `
		SELECT order_status, COUNT(*) FROM orders GROUP BY order_status ORDER BY order_status
	`)
	if err != nil {
		return nil, err
	}
	defer statusRows.Close()
	for statusRows.Next() {
		var name string
		var n int64
		if err := statusRows.Scan(&name, &n); err != nil {
			return nil, err
		}
		rep.CategoryDistribution = append(rep.CategoryDistribution, NamedValue{Name: name, Value: float64(n)})
	}
	if err := statusRows.Err(); err != nil {
		return nil, err
	}

	listRows, err := r.db.Query(ctx, `
		SELECT id, ship_name, amount::float8, order_status, order_date
		FROM orders ORDER BY order_date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer listRows.Close()
	for listRows.Next() {
		var row OrderRow
		if err := listRows.Scan(&row.ID, &row.Customer, &row.Total, &row.Status, &row.Date); err != nil {
			return nil, err
		}
		rep.OrdersList = append(rep.OrdersList, row)
	}
	if err := listRows.Err(); err != nil {
		return nil, err
	}

	return rep, nil
}

func (r *PGRepo) Products(ctx context.Context) (*ProductsReport, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rep := &ProductsReport{}
	err := r.db.QueryRow(ctx, `
		SELECT (SELECT COUNT(*) FROM products),
		       (SELECT COUNT(*) FROM stock_and_sales WHERE sales > 4),
		       (SELECT COUNT(*) FROM stock_and_sales WHERE stock < 30),
		       (SELECT COALESCE(SUM(amount),0)::float8 FROM orders)
	`).Scan(&rep.TotalProducts, &rep.TopSelling, &rep.LowStock, &rep.TotalRevenue)
	if err != nil {
		return nil, err
	}
	return rep, nil
}
