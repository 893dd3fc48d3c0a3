package repository

import (
	"context"
	"fmt"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/database"

	"go.uber.org/zap"
)

// AnalyticsRepository mengambil data mentah; pengelompokan per bulan di usecase
type AnalyticsRepository interface {
	BookingFacts(ctx context.Context, from, to time.Time, status *entity.BookingStatus) ([]entity.BookingFact, error)
	UserRegistrations(ctx context.Context, from, to time.Time) ([]time.Time, error)
	CountUsersBefore(ctx context.Context, before time.Time) (int64, error)
	PopularPackages(ctx context.Context, from, to time.Time, limit int) ([]entity.PackagePopularity, error)
	DashboardCounts(ctx context.Context) (*entity.DashboardCounts, error)
	ConfirmedRevenue(ctx context.Context) (float64, error)
}

type analyticsRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAnalyticsRepository(db database.PgxIface, log *zap.Logger) AnalyticsRepository {
	return &analyticsRepository{
		db:  db,
		log: log.With(zap.String("repository", "analytics")),
	}
}

// BookingFacts - status nil berarti semua status. Range inklusif di kedua ujung.
func (r *analyticsRepository) BookingFacts(ctx context.Context, from, to time.Time, status *entity.BookingStatus) ([]entity.BookingFact, error) {
	query := `
		SELECT b.created_at, b.status, b.total_amount::float8, b.number_of_people, p.price::float8
		FROM bookings b
		JOIN tour_packages p ON p.id = b.package_id
		WHERE b.created_at >= $1 AND b.created_at <= $2
		  AND ($3::smallint IS NULL OR b.status = $3)
		ORDER BY b.created_at
	`

	rows, err := r.db.Query(ctx, query, from, to, status)
	if err != nil {
		r.log.Error("Failed to fetch booking facts", zap.Error(err), zap.Time("from", from), zap.Time("to", to))
		return nil, fmt.Errorf("fetch booking facts: %w", err)
	}
	defer rows.Close()

	facts := make([]entity.BookingFact, 0)
	for rows.Next() {
		var f entity.BookingFact
		if err := rows.Scan(&f.CreatedAt, &f.Status, &f.TotalAmount, &f.NumberOfPeople, &f.PackagePrice); err != nil {
			return nil, fmt.Errorf("scan booking fact: %w", err)
		}
		facts = append(facts, f)
	}

	return facts, rows.Err()
}

func (r *analyticsRepository) UserRegistrations(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	rows, err := r.db.Query(ctx,
		`SELECT created_at FROM users WHERE created_at >= $1 AND created_at <= $2 ORDER BY created_at`,
		from, to,
	)
	if err != nil {
		r.log.Error("Failed to fetch user registrations", zap.Error(err))
		return nil, fmt.Errorf("fetch user registrations: %w", err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan user registration: %w", err)
		}
		dates = append(dates, t)
	}

	return dates, rows.Err()
}

func (r *analyticsRepository) CountUsersBefore(ctx context.Context, before time.Time) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE created_at < $1`, before).Scan(&count); err != nil {
		r.log.Error("Failed to count users before", zap.Error(err))
		return 0, fmt.Errorf("count users before %s: %w", before, err)
	}
	return count, nil
}

func (r *analyticsRepository) PopularPackages(ctx context.Context, from, to time.Time, limit int) ([]entity.PackagePopularity, error) {
	query := `
		SELECT p.id, p.name, p.type, p.location, p.price::float8, p.view_count,
		       COUNT(b.id) AS bookings,
		       COALESCE((
		           SELECT AVG(rv.rating)::float8 FROM reviews rv
		           WHERE rv.package_id = p.id AND rv.is_approved
		       ), 0) AS avg_rating
		FROM tour_packages p
		JOIN bookings b ON b.package_id = p.id
		WHERE b.created_at >= $1 AND b.created_at <= $2
		GROUP BY p.id
		ORDER BY bookings DESC, p.id
		LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, from, to, limit)
	if err != nil {
		r.log.Error("Failed to fetch popular packages", zap.Error(err))
		return nil, fmt.Errorf("fetch popular packages: %w", err)
	}
	defer rows.Close()

	result := make([]entity.PackagePopularity, 0)
	for rows.Next() {
		var p entity.PackagePopularity
		if err := rows.Scan(&p.PackageID, &p.Name, &p.Type, &p.Location, &p.Price, &p.ViewCount, &p.Bookings, &p.AverageRating); err != nil {
			return nil, fmt.Errorf("scan popular package: %w", err)
		}
		result = append(result, p)
	}

	return result, rows.Err()
}

func (r *analyticsRepository) DashboardCounts(ctx context.Context) (*entity.DashboardCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM bookings),
			(SELECT COUNT(*) FROM bookings WHERE status = 0),
			(SELECT COUNT(*) FROM bookings WHERE status = 1),
			(SELECT COUNT(*) FROM bookings WHERE status = 2),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM tour_packages),
			(SELECT COUNT(*) FROM reviews WHERE NOT is_approved),
			(SELECT COUNT(*) FROM enquiries WHERE status = 0),
			(SELECT COUNT(*) FROM issues WHERE admin_remark IS NULL OR admin_remark = '')
	`

	var c entity.DashboardCounts
	err := r.db.QueryRow(ctx, query).Scan(
		&c.TotalBookings,
		&c.PendingBookings,
		&c.ConfirmedBookings,
		&c.CancelledBookings,
		&c.TotalUsers,
		&c.TotalPackages,
		&c.PendingReviews,
		&c.UnreadEnquiries,
		&c.OpenIssues,
	)
	if err != nil {
		r.log.Error("Failed to fetch dashboard counts", zap.Error(err))
		return nil, fmt.Errorf("fetch dashboard counts: %w", err)
	}

	return &c, nil
}

// ConfirmedRevenue - total_amount, fallback price x people untuk data lama
func (r *analyticsRepository) ConfirmedRevenue(ctx context.Context) (float64, error) {
	query := `
		SELECT COALESCE(SUM(
			CASE WHEN b.total_amount IS NOT NULL AND b.total_amount > 0
			     THEN b.total_amount
			     ELSE p.price * GREATEST(b.number_of_people, 1)
			END), 0)::float8
		FROM bookings b
		JOIN tour_packages p ON p.id = b.package_id
		WHERE b.status = 1
	`

	var total float64
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		r.log.Error("Failed to sum confirmed revenue", zap.Error(err))
		return 0, fmt.Errorf("sum confirmed revenue: %w", err)
	}
	return total, nil
}
