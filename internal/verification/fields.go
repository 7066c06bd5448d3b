package verification

import "strings"

// FieldValidator checks that recognized text contains the literals a
// genuine receipt must carry: store name, seller tax id, payment amount.
// Matching is plain substring containment, no fuzzy matching and no field
// extraction. Deliberately strict: OCR noise makes a genuine receipt fail
// rather than ever letting a foreign one pass.
type FieldValidator struct {
	storeName     string
	sellerTaxID   string
	paymentAmount string
}

// NewFieldValidator builds a validator from trusted configuration. The
// store name is lowercased here because it is compared against lowercased
// recognized text.
func NewFieldValidator(cfg Config) *FieldValidator {
	return &FieldValidator{
		storeName:     strings.ToLower(cfg.StoreName),
		sellerTaxID:   cfg.SellerTaxID,
		paymentAmount: cfg.PaymentAmount,
	}
}

// Valid reports whether all three literals occur in text. The text must
// already be lowercased by the pipeline.
func (v *FieldValidator) Valid(text string) bool {
	return strings.Contains(text, v.storeName) &&
		strings.Contains(text, v.sellerTaxID) &&
		strings.Contains(text, v.paymentAmount)
}
