package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"
)

func newBooking() *entity.Booking {
	from := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	return &entity.Booking{
		Base:           entity.NewBase(time.Now()),
		UserID:         uuid.New(),
		UserEmail:      "a@x.com",
		PackageID:      uuid.New(),
		FromDate:       from,
		ToDate:         from.AddDate(0, 0, 3),
		NumberOfPeople: 2,
		Status:         entity.BookingStatusPending,
	}
}

var (
	lockPackageSQL  = regexp.QuoteMeta(`SELECT price::float8 FROM tour_packages WHERE id = $1 FOR UPDATE`)
	overlapCheckSQL = `SELECT EXISTS \(`
	insertBooking   = `INSERT INTO bookings`
)

func TestBookingRepository_CreateIfAvailable_Commits(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	b := newBooking()
	mock.ExpectBegin()
	mock.ExpectQuery(lockPackageSQL).
		WithArgs(b.PackageID).
		WillReturnRows(pgxmock.NewRows([]string{"price"}).AddRow(150.0))
	mock.ExpectQuery(overlapCheckSQL).
		WithArgs(b.UserID, b.PackageID, b.FromDate, b.ToDate).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(insertBooking).
		WithArgs(
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	repo := NewBookingRepository(mock, zap.NewNop())
	if err := repo.CreateIfAvailable(context.Background(), b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.TotalAmount == nil || *b.TotalAmount != 300 {
		t.Fatalf("expected total 300 from price x people, got %v", b.TotalAmount)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingRepository_CreateIfAvailable_OverlapRollsBack(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	b := newBooking()
	mock.ExpectBegin()
	mock.ExpectQuery(lockPackageSQL).
		WithArgs(b.PackageID).
		WillReturnRows(pgxmock.NewRows([]string{"price"}).AddRow(150.0))
	mock.ExpectQuery(overlapCheckSQL).
		WithArgs(b.UserID, b.PackageID, b.FromDate, b.ToDate).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	repo := NewBookingRepository(mock, zap.NewNop())
	err = repo.CreateIfAvailable(context.Background(), b)
	if !errors.Is(err, utils.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingRepository_CreateIfAvailable_UnknownPackage(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	b := newBooking()
	mock.ExpectBegin()
	mock.ExpectQuery(lockPackageSQL).
		WithArgs(b.PackageID).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	repo := NewBookingRepository(mock, zap.NewNop())
	err = repo.CreateIfAvailable(context.Background(), b)
	if !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingRepository_TransitionStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	id := uuid.New()
	mock.ExpectExec(`UPDATE bookings`).
		WithArgs(id, entity.BookingStatusConfirmed, pgxmock.AnyArg(), []int16{0}).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE bookings`).
		WithArgs(id, entity.BookingStatusConfirmed, pgxmock.AnyArg(), []int16{0}).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewBookingRepository(mock, zap.NewNop())
	from := []entity.BookingStatus{entity.BookingStatusPending}

	changed, err := repo.TransitionStatus(context.Background(), id, from, entity.BookingStatusConfirmed, nil)
	if err != nil || !changed {
		t.Fatalf("first transition: changed=%v err=%v", changed, err)
	}

	// status sudah berubah di request lain
	changed, err = repo.TransitionStatus(context.Background(), id, from, entity.BookingStatusConfirmed, nil)
	if err != nil || changed {
		t.Fatalf("second transition: changed=%v err=%v", changed, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
