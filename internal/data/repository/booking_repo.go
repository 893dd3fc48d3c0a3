package repository

import (
	"context"
	"errors"
	"fmt"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/database"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// CreateIfAvailable inserts the booking in one transaction after locking the package row
	// and checking the user has no overlapping active booking on it.
	CreateIfAvailable(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingDetail, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.BookingDetail, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindAll(ctx context.Context, status *entity.BookingStatus, limit, offset int) ([]*entity.BookingDetail, error)
	CountAll(ctx context.Context, status *entity.BookingStatus) (int64, error)

	// Business queries
	// TransitionStatus only updates when the current status is one of from; false = nothing changed
	TransitionStatus(ctx context.Context, id uuid.UUID, from []entity.BookingStatus, to entity.BookingStatus, cancelledBy *entity.CancelledBy) (bool, error)
	HasConfirmedBooking(ctx context.Context, userID, packageID uuid.UUID) (bool, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingDetailSelect = `
	SELECT b.id, b.user_id, b.user_email, b.package_id, b.from_date, b.to_date, b.comment,
	       b.number_of_people, b.total_amount::float8, b.status, b.cancelled_by,
	       b.created_at, b.updated_at, p.name, p.price::float8
	FROM bookings b
	JOIN tour_packages p ON p.id = b.package_id
`

func scanBookingDetail(row rowScanner) (*entity.BookingDetail, error) {
	var b entity.BookingDetail
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.UserEmail,
		&b.PackageID,
		&b.FromDate,
		&b.ToDate,
		&b.Comment,
		&b.NumberOfPeople,
		&b.TotalAmount,
		&b.Status,
		&b.CancelledBy,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.PackageName,
		&b.PackagePrice,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) CreateIfAvailable(ctx context.Context, booking *entity.Booking) error {
	return database.WithTx(ctx, r.db, func(tx database.Tx) error {
		var price float64
		err := tx.QueryRow(ctx,
			`SELECT price::float8 FROM tour_packages WHERE id = $1 FOR UPDATE`,
			booking.PackageID,
		).Scan(&price)
		if errors.Is(err, pgx.ErrNoRows) {
			return utils.Wrap(utils.ErrNotFound, "Package not found")
		}
		if err != nil {
			r.log.Error("Failed to lock package", zap.Error(err), zap.String("package_id", booking.PackageID.String()))
			return fmt.Errorf("lock package %s: %w", booking.PackageID, err)
		}

		var overlapping bool
		err = tx.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM bookings
				WHERE user_id = $1 AND package_id = $2
				  AND status IN (0, 1)
				  AND from_date < $4 AND to_date > $3
			)`,
			booking.UserID, booking.PackageID, booking.FromDate, booking.ToDate,
		).Scan(&overlapping)
		if err != nil {
			r.log.Error("Failed to check overlapping bookings", zap.Error(err))
			return fmt.Errorf("check overlapping bookings: %w", err)
		}
		if overlapping {
			return utils.Wrap(utils.ErrConflict, "You already have a booking for these dates")
		}

		if booking.TotalAmount == nil {
			total := price * float64(booking.NumberOfPeople)
			booking.TotalAmount = &total
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO bookings (id, user_id, user_email, package_id, from_date, to_date, comment,
			                      number_of_people, total_amount, status, cancelled_by, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			booking.ID,
			booking.UserID,
			booking.UserEmail,
			booking.PackageID,
			booking.FromDate,
			booking.ToDate,
			booking.Comment,
			booking.NumberOfPeople,
			booking.TotalAmount,
			booking.Status,
			booking.CancelledBy,
			booking.CreatedAt,
			booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create booking",
				zap.Error(err),
				zap.String("user_id", booking.UserID.String()),
				zap.String("package_id", booking.PackageID.String()),
			)
			return fmt.Errorf("create booking: %w", err)
		}

		return nil
	})
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingDetail, error) {
	booking, err := scanBookingDetail(r.db.QueryRow(ctx, bookingDetailSelect+` WHERE b.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID", zap.Error(err), zap.String("booking_id", id.String()))
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.BookingDetail, error) {
	query := bookingDetailSelect + `
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC, b.id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID, err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID", zap.Error(err), zap.String("user_id", userID.String()))
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID, err)
	}

	return count, nil
}

// FindAll - status nil berarti semua status
func (r *bookingRepository) FindAll(ctx context.Context, status *entity.BookingStatus, limit, offset int) ([]*entity.BookingDetail, error) {
	query := bookingDetailSelect + `
		WHERE ($1::smallint IS NULL OR b.status = $1)
		ORDER BY b.created_at DESC, b.id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) CountAll(ctx context.Context, status *entity.BookingStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings WHERE ($1::smallint IS NULL OR status = $1)`, status,
	).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) TransitionStatus(
	ctx context.Context,
	id uuid.UUID,
	from []entity.BookingStatus,
	to entity.BookingStatus,
	cancelledBy *entity.CancelledBy,
) (bool, error) {
	allowed := make([]int16, len(from))
	for i, s := range from {
		allowed[i] = int16(s)
	}

	query := `
		UPDATE bookings
		SET status = $2, cancelled_by = $3, updated_at = NOW()
		WHERE id = $1 AND status = ANY($4)
	`

	result, err := r.db.Exec(ctx, query, id, to, cancelledBy, allowed)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", to.String()),
		)
		return false, fmt.Errorf("update booking %s status to %s: %w", id, to, err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *bookingRepository) HasConfirmedBooking(ctx context.Context, userID, packageID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE user_id = $1 AND package_id = $2 AND status = 1
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, packageID).Scan(&exists); err != nil {
		r.log.Error("Failed to check confirmed booking",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("package_id", packageID.String()),
		)
		return false, fmt.Errorf("check confirmed booking: %w", err)
	}

	return exists, nil
}

func collectBookings(rows pgx.Rows) ([]*entity.BookingDetail, error) {
	bookings := make([]*entity.BookingDetail, 0)
	for rows.Next() {
		booking, err := scanBookingDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}
