// Package models contains the persistent data model of the bot.
package models

import "time"

// Receipt is one approved submission. The table is an append-only audit
// trail: rows are created on a successful verification and never updated
// or deleted. TextHash is unique across all rows; the database enforces
// this, not the application.
type Receipt struct {
	ID        int64
	UserID    int64
	Username  string
	TextHash  string
	CreatedAt time.Time
}
