package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/dto/request"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func amount(v float64) *float64 { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

// 5 booking di 3 bulan, satu confirmed tanpa total_amount
func analyticsFixture() *fakeAnalyticsRepo {
	return &fakeAnalyticsRepo{
		facts: []entity.BookingFact{
			{CreatedAt: date(2026, time.January, 5), Status: entity.BookingStatusConfirmed, TotalAmount: amount(300), NumberOfPeople: 2, PackagePrice: 150},
			{CreatedAt: date(2026, time.January, 20), Status: entity.BookingStatusConfirmed, NumberOfPeople: 3, PackagePrice: 100},
			{CreatedAt: date(2026, time.February, 2), Status: entity.BookingStatusPending, TotalAmount: amount(200), NumberOfPeople: 1, PackagePrice: 200},
			{CreatedAt: date(2026, time.February, 14), Status: entity.BookingStatusConfirmed, TotalAmount: amount(450.5), NumberOfPeople: 1, PackagePrice: 450.5},
			{CreatedAt: date(2026, time.March, 1), Status: entity.BookingStatusCancelled, TotalAmount: amount(100), NumberOfPeople: 1, PackagePrice: 100},
		},
		registrations: []time.Time{
			date(2026, time.January, 3),
			date(2026, time.January, 15),
			date(2026, time.March, 2),
		},
		usersBefore: 10,
	}
}

func newTestAnalyticsService(repo *fakeAnalyticsRepo) *analyticsService {
	svc := NewAnalyticsService(repo, zap.NewNop()).(*analyticsService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

var q1 = &request.DateRangeRequest{From: "2026-01-01", To: "2026-03-31"}

func TestAnalyticsService_GetRevenue_ConfirmedOnly(t *testing.T) {
	svc := newTestAnalyticsService(analyticsFixture())

	report, err := svc.GetRevenue(context.Background(), q1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Months) != 2 {
		t.Fatalf("expected 2 months with revenue, got %d: %+v", len(report.Months), report.Months)
	}
	if report.Months[0].Month != "Jan 2026" || report.Months[0].Revenue != 600 || report.Months[0].Bookings != 2 {
		t.Errorf("january: %+v", report.Months[0])
	}
	if report.Months[1].Month != "Feb 2026" || report.Months[1].Revenue != 450.5 || report.Months[1].Bookings != 1 {
		t.Errorf("february: %+v", report.Months[1])
	}
	if report.TotalRevenue != 1050.5 {
		t.Errorf("expected total revenue 1050.5, got %v", report.TotalRevenue)
	}
	if report.TotalBookings != 3 {
		t.Errorf("expected 3 confirmed bookings, got %d", report.TotalBookings)
	}
	if report.Range.From != "2026-01-01" || report.Range.To != "2026-03-31" {
		t.Errorf("unexpected range %+v", report.Range)
	}
}

func TestAnalyticsService_GetBookingTrends_AllStatuses(t *testing.T) {
	svc := newTestAnalyticsService(analyticsFixture())

	series, err := svc.GetBookingTrends(context.Background(), q1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(series.Data) != 3 {
		t.Fatalf("expected 3 months, got %d", len(series.Data))
	}

	jan, feb, mar := series.Data[0], series.Data[1], series.Data[2]
	if jan.Month != "Jan 2026" || jan.Confirmed != 2 || jan.Total != 2 {
		t.Errorf("january: %+v", jan)
	}
	if feb.Month != "Feb 2026" || feb.Confirmed != 1 || feb.Pending != 1 || feb.Total != 2 {
		t.Errorf("february: %+v", feb)
	}
	if mar.Month != "Mar 2026" || mar.Cancelled != 1 || mar.Total != 1 {
		t.Errorf("march: %+v", mar)
	}
}

func TestAnalyticsService_GetUserGrowth_Cumulative(t *testing.T) {
	svc := newTestAnalyticsService(analyticsFixture())

	series, err := svc.GetUserGrowth(context.Background(), q1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(series.Data) != 2 {
		t.Fatalf("expected 2 months, got %d", len(series.Data))
	}
	if series.Data[0].NewUsers != 2 || series.Data[0].TotalUsers != 12 {
		t.Errorf("january: %+v", series.Data[0])
	}
	if series.Data[1].Month != "Mar 2026" || series.Data[1].NewUsers != 1 || series.Data[1].TotalUsers != 13 {
		t.Errorf("march: %+v", series.Data[1])
	}
}

func TestAnalyticsService_ResolveRange(t *testing.T) {
	repo := analyticsFixture()
	svc := newTestAnalyticsService(repo)
	ctx := context.Background()

	// default: 12 bulan terakhir
	if _, err := svc.GetBookingTrends(ctx, nil); err != nil {
		t.Fatalf("default range: %v", err)
	}
	if !repo.gotTo.Equal(fixedNow) {
		t.Errorf("expected to = now, got %v", repo.gotTo)
	}
	if !repo.gotFrom.Equal(fixedNow.AddDate(0, -12, 0)) {
		t.Errorf("expected from = now - 12 months, got %v", repo.gotFrom)
	}

	// to inklusif sampai akhir hari
	if _, err := svc.GetBookingTrends(ctx, &request.DateRangeRequest{From: "2026-03-01", To: "2026-03-01"}); err != nil {
		t.Fatalf("single day range: %v", err)
	}
	wantTo := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)
	if !repo.gotTo.Equal(wantTo) {
		t.Errorf("expected inclusive end of day, got %v", repo.gotTo)
	}

	_, err := svc.GetRevenue(ctx, &request.DateRangeRequest{From: "2026-04-01", To: "2026-03-01"})
	var vErr *utils.ValidationError
	if !errors.As(err, &vErr) || vErr.Fields["from"] == "" {
		t.Fatalf("expected field error on from, got %v", err)
	}

	_, err = svc.GetRevenue(ctx, &request.DateRangeRequest{From: "01/03/2026"})
	if !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("expected validation error for bad date, got %v", err)
	}
}

func TestAnalyticsService_GetPopularPackages_Revenue(t *testing.T) {
	repo := analyticsFixture()
	repo.popular = []entity.PackagePopularity{
		{PackageID: uuid.New(), Name: "Bali Adventure", Price: 150, Bookings: 4, AverageRating: 4.666},
		{PackageID: uuid.New(), Name: "Lombok Beach", Price: 99.99, Bookings: 3},
	}
	svc := newTestAnalyticsService(repo)

	series, err := svc.GetPopularPackages(context.Background(), q1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Data) != 2 {
		t.Fatalf("expected 2 packages, got %d", len(series.Data))
	}
	if series.Data[0].Revenue != 600 || series.Data[0].AverageRating != 4.7 {
		t.Errorf("first package: %+v", series.Data[0])
	}
	if series.Data[1].Revenue != 299.97 {
		t.Errorf("second package revenue: %v", series.Data[1].Revenue)
	}
}

func TestAnalyticsService_ExportCSV(t *testing.T) {
	svc := newTestAnalyticsService(analyticsFixture())

	body, filename, err := svc.ExportCSV(context.Background(), q1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filename != "analytics_2026-01-01_2026-03-31.csv" {
		t.Errorf("unexpected filename %q", filename)
	}

	rows, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	// header + 2 revenue + 3 trend
	if len(rows) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(rows))
	}
	if rows[0][0] != "section" || rows[0][7] != "total" {
		t.Errorf("unexpected header %v", rows[0])
	}
	if rows[1][0] != "revenue" || rows[1][1] != "Jan 2026" || rows[1][2] != "600.00" {
		t.Errorf("unexpected revenue row %v", rows[1])
	}
	if rows[5][0] != "bookings" || rows[5][1] != "Mar 2026" || rows[5][6] != "1" {
		t.Errorf("unexpected trend row %v", rows[5])
	}
}

func TestAnalyticsService_GetDashboard(t *testing.T) {
	repo := analyticsFixture()
	repo.counts = entity.DashboardCounts{TotalBookings: 5, PendingBookings: 1, TotalUsers: 13}
	repo.revenue = 1050.499
	svc := newTestAnalyticsService(repo)

	stats, err := svc.GetDashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalBookings != 5 || stats.TotalUsers != 13 {
		t.Errorf("unexpected counts %+v", stats)
	}
	if stats.TotalRevenue != 1050.5 {
		t.Errorf("expected rounded revenue 1050.5, got %v", stats.TotalRevenue)
	}
}
