package response

import "math"

type MonthlyRevenue struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

type MonthlyBookingTrend struct {
	Month     string `json:"month"`
	Confirmed int    `json:"confirmed"`
	Pending   int    `json:"pending"`
	Cancelled int    `json:"cancelled"`
	Total     int    `json:"total"`
}

type MonthlyUserGrowth struct {
	Month      string `json:"month"`
	NewUsers   int    `json:"new_users"`
	TotalUsers int64  `json:"total_users"`
}

type PopularPackage struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Location      string  `json:"location"`
	Price         float64 `json:"price"`
	Bookings      int64   `json:"bookings"`
	Revenue       float64 `json:"revenue"`
	AverageRating float64 `json:"average_rating"`
	Views         int     `json:"views"`
}

type DashboardStats struct {
	TotalBookings     int64   `json:"total_bookings"`
	PendingBookings   int64   `json:"pending_bookings"`
	ConfirmedBookings int64   `json:"confirmed_bookings"`
	CancelledBookings int64   `json:"cancelled_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalUsers        int64   `json:"total_users"`
	TotalPackages     int64   `json:"total_packages"`
	PendingReviews    int64   `json:"pending_reviews"`
	UnreadEnquiries   int64   `json:"unread_enquiries"`
	OpenIssues        int64   `json:"open_issues"`
}

type AnalyticsRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

type RevenueReport struct {
	Range         AnalyticsRange   `json:"range"`
	Months        []MonthlyRevenue `json:"months"`
	TotalRevenue  float64          `json:"total_revenue"`
	TotalBookings int              `json:"total_bookings"`
}

// AnalyticsSeries satu seri bulanan / ranking untuk range tertentu
type AnalyticsSeries[T any] struct {
	Range AnalyticsRange `json:"range"`
	Data  []T            `json:"data"`
}

func NewAnalyticsSeries[T any](r AnalyticsRange, data []T) *AnalyticsSeries[T] {
	if data == nil {
		data = []T{}
	}
	return &AnalyticsSeries[T]{Range: r, Data: data}
}

func RoundMoney(v float64) float64 {
	return roundTo(v, 2)
}

func RoundRating(v float64) float64 {
	return roundTo(v, 1)
}
