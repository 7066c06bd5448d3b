package receipts

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/telepay/receiptbot/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const containsQuery = `(?s)^\s*SELECT\s+1\s+FROM\s+receipts\s+WHERE\s+text_hash\s*=\s*\$1\s*$`

const recordQuery = `(?s)^\s*INSERT\s+INTO\s+receipts\s*\(user_id,\s*username,\s*text_hash\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*created_at\s*$`

func TestContains_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"?column?"}).AddRow(1)
	mock.ExpectQuery(containsQuery).WithArgs("abc").WillReturnRows(rows)

	got, err := repo.Contains(context.Background(), "abc")
	if err != nil {
		t.Fatalf("Contains error: %v", err)
	}
	if !got {
		t.Fatalf("expected true for recorded hash")
	}
}

func TestContains_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(containsQuery).WithArgs("abc").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

	got, err := repo.Contains(context.Background(), "abc")
	if err != nil {
		t.Fatalf("Contains error: %v", err)
	}
	if got {
		t.Fatalf("expected false for unknown hash")
	}
}

func TestContains_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(containsQuery).WithArgs("abc").
		WillReturnError(errors.New("db down"))

	_, err := repo.Contains(context.Background(), "abc")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestRecord_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), created)
	mock.ExpectQuery(recordQuery).
		WithArgs(int64(42), "alice", "abc").
		WillReturnRows(rows)

	got, err := repo.Record(context.Background(), 42, "alice", "abc")
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if got.ID != 7 || got.UserID != 42 || got.Username != "alice" || got.TextHash != "abc" {
		t.Fatalf("unexpected receipt: %+v", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected created_at: %v", got.CreatedAt)
	}
}

func TestRecord_UniqueViolationIsDuplicate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(recordQuery).
		WithArgs(int64(42), "alice", "abc").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "receipts_text_hash_key"})

	_, err := repo.Record(context.Background(), 42, "alice", "abc")
	if !errors.Is(err, common.ErrDuplicateReceipt) {
		t.Fatalf("expected ErrDuplicateReceipt, got %v", err)
	}
}

func TestRecord_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(recordQuery).
		WithArgs(int64(42), "alice", "abc").
		WillReturnError(errors.New("db down"))

	_, err := repo.Record(context.Background(), 42, "alice", "abc")
	if err == nil || errors.Is(err, common.ErrDuplicateReceipt) {
		t.Fatalf("expected plain db error, got %v", err)
	}
}
