package receipts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/telepay/receiptbot/internal/common"
	"github.com/telepay/receiptbot/internal/dbx"
	"github.com/telepay/receiptbot/internal/models"
)

// SQLSTATE for a unique constraint violation.
const uniqueViolation = "23505"

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Contains(ctx context.Context, textHash string) (bool, error) {
	query := `
		SELECT 1 FROM receipts
		WHERE text_hash = $1
	`

	var one int
	if err := r.db.QueryRowContext(ctx, query, textHash).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("db error: %w", err)
	}

	return true, nil
}

// Record inserts a receipt row. The unique index on text_hash makes the
// insert itself the synchronization point between concurrent submissions of
// identical content: whichever insert commits first wins, the loser gets
// common.ErrDuplicateReceipt.
func (r *PostgresRepository) Record(ctx context.Context, userID int64, username string, textHash string) (*models.Receipt, error) {
	query := `
		INSERT INTO receipts (user_id, username, text_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	receipt := &models.Receipt{UserID: userID, Username: username, TextHash: textHash}

	err := r.db.QueryRowContext(ctx, query, userID, username, textHash).
		Scan(&receipt.ID, &receipt.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrDuplicateReceipt
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return receipt, nil
}
