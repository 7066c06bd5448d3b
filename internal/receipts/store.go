package receipts

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/telepay/receiptbot/internal/receipts/migrations"
)

// Store owns the database handle behind the receipt repository and applies
// schema migrations on startup.
type Store struct {
	db   *sql.DB
	repo Repository
}

func (s *Store) Conn() *sql.DB {
	return s.db
}

func (s *Store) Receipts() Repository {
	return s.repo
}

func (s *Store) Close() error {
	return s.db.Close()
}

// RunMigrations applies the embedded goose migrations. It is idempotent and
// safe to invoke on every process start; the schema is created only if
// absent.
func (s *Store) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, s.db, "."); err != nil {
		return err
	}

	return nil
}

// NewStore opens a PostgreSQL connection via the pgx stdlib driver and runs
// migrations.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	s := &Store{db: db, repo: NewPostgresRepository(db)}

	if err := s.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return s, nil
}
