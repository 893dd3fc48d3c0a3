package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/dto/response"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

const popularPackagesLimit = 10

type AnalyticsService interface {
	GetDashboard(ctx context.Context) (*response.DashboardStats, error)
	GetRevenue(ctx context.Context, req *request.DateRangeRequest) (*response.RevenueReport, error)
	GetBookingTrends(ctx context.Context, req *request.DateRangeRequest) (*response.AnalyticsSeries[response.MonthlyBookingTrend], error)
	GetUserGrowth(ctx context.Context, req *request.DateRangeRequest) (*response.AnalyticsSeries[response.MonthlyUserGrowth], error)
	GetPopularPackages(ctx context.Context, req *request.DateRangeRequest) (*response.AnalyticsSeries[response.PopularPackage], error)

	// ExportCSV - revenue + booking trend per bulan, return isi file dan nama file
	ExportCSV(ctx context.Context, req *request.DateRangeRequest) ([]byte, string, error)
}

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	log           *zap.Logger
	now           func() time.Time
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository, log *zap.Logger) AnalyticsService {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		log:           log.With(zap.String("service", "analytics")),
		now:           time.Now,
	}
}

type dateRange struct {
	from time.Time
	to   time.Time
}

func (r dateRange) response() response.AnalyticsRange {
	return response.AnalyticsRange{
		From: r.from.Format(utils.DateLayout),
		To:   r.to.Format(utils.DateLayout),
	}
}

func (s *analyticsService) GetDashboard(ctx context.Context) (*response.DashboardStats, error) {
	counts, err := s.analyticsRepo.DashboardCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}

	revenue, err := s.analyticsRepo.ConfirmedRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("confirmed revenue: %w", err)
	}

	return &response.DashboardStats{
		TotalBookings:     counts.TotalBookings,
		PendingBookings:   counts.PendingBookings,
		ConfirmedBookings: counts.ConfirmedBookings,
		CancelledBookings: counts.CancelledBookings,
		TotalRevenue:      response.RoundMoney(revenue),
		TotalUsers:        counts.TotalUsers,
		TotalPackages:     counts.TotalPackages,
		PendingReviews:    counts.PendingReviews,
		UnreadEnquiries:   counts.UnreadEnquiries,
		OpenIssues:        counts.OpenIssues,
	}, nil
}

func (s *analyticsService) GetRevenue(ctx context.Context, req *request.DateRangeRequest) (*response.RevenueReport, error) {
	rng, err := s.resolveRange(req)
	if err != nil {
		return nil, err
	}

	months, err := s.revenueSeries(ctx, rng)
	if err != nil {
		return nil, err
	}

	report := &response.RevenueReport{Range: rng.response(), Months: months}
	var total float64
	for _, m := range months {
		total += m.Revenue
		report.TotalBookings += m.Bookings
	}
	report.TotalRevenue = response.RoundMoney(total)

	return report, nil
}

func (s *analyticsService) GetBookingTrends(ctx context.Context, req *request.DateRangeRequest) (*response.AnalyticsSeries[response.MonthlyBookingTrend], error) {
	rng, err := s.resolveRange(req)
	if err != nil {
		return nil, err
	}

	trends, err := s.trendSeries(ctx, rng)
	if err != nil {
		return nil, err
	}

	return response.NewAnalyticsSeries(rng.response(), trends), nil
}

func (s *analyticsService) GetUserGrowth(ctx context.Context, req *request.DateRangeRequest) (*response.AnalyticsSeries[response.MonthlyUserGrowth], error) {
	rng, err := s.resolveRange(req)
	if err != nil {
		return nil, err
	}

	registrations, err := s.analyticsRepo.UserRegistrations(ctx, rng.from, rng.to)
	if err != nil {
		return nil, fmt.Errorf("user registrations: %w", err)
	}

	base, err := s.analyticsRepo.CountUsersBefore(ctx, rng.from)
	if err != nil {
		return nil, fmt.Errorf("count users before range: %w", err)
	}

	growth := groupUserGrowth(registrations, base, s.location())
	return response.NewAnalyticsSeries(rng.response(), growth), nil
}

func (s *analyticsService) GetPopularPackages(ctx context.Context, req *request.DateRangeRequest) (*response.AnalyticsSeries[response.PopularPackage], error) {
	rng, err := s.resolveRange(req)
	if err != nil {
		return nil, err
	}

	items, err := s.analyticsRepo.PopularPackages(ctx, rng.from, rng.to, popularPackagesLimit)
	if err != nil {
		return nil, fmt.Errorf("popular packages: %w", err)
	}

	return response.NewAnalyticsSeries(rng.response(), toPopularPackages(items)), nil
}

func (s *analyticsService) ExportCSV(ctx context.Context, req *request.DateRangeRequest) ([]byte, string, error) {
	rng, err := s.resolveRange(req)
	if err != nil {
		return nil, "", err
	}

	revenue, err := s.revenueSeries(ctx, rng)
	if err != nil {
		return nil, "", err
	}
	trends, err := s.trendSeries(ctx, rng)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, row := range exportRows(revenue, trends) {
		if err := w.Write(row); err != nil {
			return nil, "", fmt.Errorf("write csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("flush csv: %w", err)
	}

	r := rng.response()
	filename := fmt.Sprintf("analytics_%s_%s.csv", r.From, r.To)

	s.log.Info("Analytics exported", zap.String("from", r.From), zap.String("to", r.To))
	return buf.Bytes(), filename, nil
}

// ==================== HELPER METHODS ====================

func (s *analyticsService) location() *time.Location {
	return s.now().Location()
}

// resolveRange - default 12 bulan terakhir sampai sekarang, to inklusif sampai akhir hari
func (s *analyticsService) resolveRange(req *request.DateRangeRequest) (dateRange, error) {
	if req == nil {
		req = &request.DateRangeRequest{}
	}
	if err := validate(req); err != nil {
		return dateRange{}, err
	}

	now := s.now()
	loc := now.Location()
	rng := dateRange{to: now}

	if req.To != "" {
		to, err := utils.ParseDate(req.To, loc)
		if err != nil {
			return dateRange{}, utils.NewFieldError("to", "Must be a date in YYYY-MM-DD format")
		}
		rng.to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	if req.From != "" {
		from, err := utils.ParseDate(req.From, loc)
		if err != nil {
			return dateRange{}, utils.NewFieldError("from", "Must be a date in YYYY-MM-DD format")
		}
		rng.from = from
	} else {
		rng.from = rng.to.AddDate(0, -12, 0)
	}

	if rng.from.After(rng.to) {
		return dateRange{}, utils.NewFieldError("from", "From date must not be after to date")
	}

	return rng, nil
}

func (s *analyticsService) revenueSeries(ctx context.Context, rng dateRange) ([]response.MonthlyRevenue, error) {
	confirmed := entity.BookingStatusConfirmed
	facts, err := s.analyticsRepo.BookingFacts(ctx, rng.from, rng.to, &confirmed)
	if err != nil {
		return nil, fmt.Errorf("booking facts: %w", err)
	}
	return groupRevenueByMonth(facts, s.location()), nil
}

func (s *analyticsService) trendSeries(ctx context.Context, rng dateRange) ([]response.MonthlyBookingTrend, error) {
	facts, err := s.analyticsRepo.BookingFacts(ctx, rng.from, rng.to, nil)
	if err != nil {
		return nil, fmt.Errorf("booking facts: %w", err)
	}
	return groupBookingTrends(facts, s.location()), nil
}

func exportRows(revenue []response.MonthlyRevenue, trends []response.MonthlyBookingTrend) [][]string {
	rows := [][]string{{"section", "month", "revenue", "bookings", "confirmed", "pending", "cancelled", "total"}}

	for _, m := range revenue {
		rows = append(rows, []string{
			"revenue", m.Month,
			strconv.FormatFloat(m.Revenue, 'f', 2, 64),
			strconv.Itoa(m.Bookings),
			"", "", "", "",
		})
	}
	for _, t := range trends {
		rows = append(rows, []string{
			"bookings", t.Month, "", "",
			strconv.Itoa(t.Confirmed),
			strconv.Itoa(t.Pending),
			strconv.Itoa(t.Cancelled),
			strconv.Itoa(t.Total),
		})
	}

	return rows
}
