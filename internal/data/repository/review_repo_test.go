package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"
)

func newReview() *entity.Review {
	return &entity.Review{
		Base:      entity.NewBase(time.Now()),
		UserID:    uuid.New(),
		PackageID: uuid.New(),
		Rating:    4,
		Title:     "Nice",
		Comment:   "Would book again",
	}
}

func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestReviewRepository_Create_UniqueViolationIsConflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO reviews`).
		WithArgs(anyArgs(9)...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "reviews_user_package_key"})

	repo := NewReviewRepository(mock, zap.NewNop())
	err = repo.Create(context.Background(), newReview())
	if !errors.Is(err, utils.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReviewRepository_Create_OtherErrorIsWrapped(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	// FK violation, bukan duplicate review
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "reviews_package_id_fkey"}
	mock.ExpectExec(`INSERT INTO reviews`).
		WithArgs(anyArgs(9)...).
		WillReturnError(pgErr)

	repo := NewReviewRepository(mock, zap.NewNop())
	err = repo.Create(context.Background(), newReview())
	if errors.Is(err, utils.ErrConflict) {
		t.Fatal("non-unique error must not map to conflict")
	}
	var got *pgconn.PgError
	if !errors.As(err, &got) || got.Code != "23503" {
		t.Fatalf("expected wrapped pg error, got %v", err)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	if !isUniqueViolation(dup, "") {
		t.Error("expected match without constraint filter")
	}
	if isUniqueViolation(dup, reviewUserPackageKey) {
		t.Error("expected no match for a different constraint")
	}
	if isUniqueViolation(errors.New("boom"), "") {
		t.Error("plain errors are not unique violations")
	}
}
