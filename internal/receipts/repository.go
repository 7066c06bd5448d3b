// Package receipts implements the duplicate store: a durable, append-only
// set of receipt fingerprints with a uniqueness guarantee at insert time.
package receipts

import (
	"context"

	"github.com/telepay/receiptbot/internal/models"
)

// Repository answers membership queries over recorded receipt fingerprints
// and records new ones.
type Repository interface {
	// Contains reports whether a receipt with the given text hash has
	// already been recorded. It is an optimization only: concurrent
	// submissions may both observe false, and Record remains the
	// authoritative duplicate check.
	Contains(ctx context.Context, textHash string) (bool, error)

	// Record inserts a new receipt row and returns it with its assigned id
	// and creation timestamp. It returns common.ErrDuplicateReceipt if the
	// text hash is already present, including when a concurrent submission
	// with identical content won the insert race.
	Record(ctx context.Context, userID int64, username string, textHash string) (*models.Receipt, error)
}
