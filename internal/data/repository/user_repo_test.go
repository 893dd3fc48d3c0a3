package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"
)

func TestUserRepository_FindAll_EscapesSearchWildcards(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "full_name", "mobile_number", "email", "password", "created_at", "updated_at"}).
		AddRow(uuid.New(), "Promo 50%_off", "0811111111", "promo@x.com", "hash", now, now)

	mock.ExpectQuery(`FROM users`).
		WithArgs(`50\%\_off`, 20, 40).
		WillReturnRows(rows)

	repo := NewUserRepository(mock, zap.NewNop())
	users, err := repo.FindAll(context.Background(), "50%_off", 20, 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 1 || users[0].Email != "promo@x.com" {
		t.Fatalf("unexpected users %+v", users)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepository_CountAll_EscapesSearchWildcards(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WithArgs(`a\\b\%`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))

	repo := NewUserRepository(mock, zap.NewNop())
	count, err := repo.CountAll(context.Background(), `a\b%`)
	if err != nil || count != 0 {
		t.Fatalf("count = %d err = %v", count, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepository_FindAll_EmptySearchUnchanged(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`FROM users`).
		WithArgs("", 10, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "full_name", "mobile_number", "email", "password", "created_at", "updated_at"}))

	repo := NewUserRepository(mock, zap.NewNop())
	users, err := repo.FindAll(context.Background(), "", 10, 0)
	if err != nil || len(users) != 0 {
		t.Fatalf("users = %v err = %v", users, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
