// Package common defines shared constants and sentinel errors used across
// the bot transport and the verification core. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// ErrDuplicateReceipt is returned when a receipt fingerprint is already
	// recorded, including when a concurrent submission wins the insert race.
	ErrDuplicateReceipt = errors.New("duplicate receipt")

	// Acquisition errors.
	ErrEmptyDocument        = errors.New("empty document")
	ErrDocumentTooLarge     = errors.New("document too large")
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// Rendering errors.
	ErrNoPages = errors.New("document has no pages")
)
