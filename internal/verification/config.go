// Package verification implements the receipt-verification pipeline:
// acquire → render → recognize → fingerprint → duplicate-check →
// field-check → metadata-check, ending in a single verdict per submission.
package verification

// Config carries the trusted verification settings. It is constructed once
// at process start from the environment and passed explicitly into the
// pipeline and its validators; the core never reads ambient global state.
type Config struct {
	// Literals a genuine receipt must contain.
	StoreName     string
	SellerTaxID   string
	PaymentAmount string

	// Expected document-metadata signature of the payment provider's
	// PDF generator.
	MetadataProducer string
	MetadataTitle    string

	// OCR language hints, e.g. ["rus", "eng"]. At least two scripts are
	// needed for mixed Cyrillic/Latin receipts.
	Languages []string

	// MIMEType is the declared content type a submission must carry.
	MIMEType string

	// MaxFileSize limits acquired documents, in bytes. Zero disables the
	// limit.
	MaxFileSize int64
}
