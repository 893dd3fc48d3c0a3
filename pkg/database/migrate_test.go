package database

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"
)

func TestMigrationFiles_SortedUpOnly(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/002_reviews.up.sql": {Data: []byte("SELECT 2;")},
		"migrations/001_init.up.sql":    {Data: []byte("SELECT 1;")},
		"migrations/001_init.down.sql":  {Data: []byte("DROP TABLE x;")},
		"migrations/README.md":          {Data: []byte("notes")},
	}

	files, err := migrationFiles(fsys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"migrations/001_init.up.sql", "migrations/002_reviews.up.sql"}
	if !reflect.DeepEqual(files, want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
}

func TestRunMigrations_SkipsApplied(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	fsys := fstest.MapFS{
		"migrations/001_init.up.sql":    {Data: []byte("CREATE TABLE a (id INT);")},
		"migrations/002_reviews.up.sql": {Data: []byte("CREATE TABLE b (id INT);")},
	}

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS _migrations`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery(`SELECT filename FROM _migrations`).
		WillReturnRows(pgxmock.NewRows([]string{"filename"}).AddRow("migrations/001_init.up.sql"))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE b (id INT);")).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec(`INSERT INTO _migrations`).
		WithArgs("migrations/002_reviews.up.sql").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	if err := runMigrations(context.Background(), mock, fsys, zap.NewNop()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err = WithTx(context.Background(), mock, func(tx Tx) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithTx_RollsBackOnPanic(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic to propagate")
			}
		}()
		_ = WithTx(context.Background(), mock, func(tx Tx) error { panic("boom") })
	}()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
