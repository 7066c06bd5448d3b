package verification

import (
	"context"

	"github.com/telepay/receiptbot/internal/logging"
)

// MetadataValidator checks the document-level signature left by the payment
// provider's PDF generator.
type MetadataValidator struct {
	reader   MetadataReader
	producer string
	title    string
	log      logging.Logger
}

func NewMetadataValidator(reader MetadataReader, cfg Config, log logging.Logger) *MetadataValidator {
	return &MetadataValidator{
		reader:   reader,
		producer: cfg.MetadataProducer,
		title:    cfg.MetadataTitle,
		log:      log,
	}
}

// Valid reports whether the document carries exactly the expected producer
// and title. It fails closed: a parse error or missing metadata counts as a
// mismatch, never as a system fault.
func (v *MetadataValidator) Valid(ctx context.Context, pdfPath string) bool {
	md, err := v.reader.ReadMetadata(ctx, pdfPath)
	if err != nil {
		v.log.Warn(ctx, "metadata read failed", "path", pdfPath, "error", err)
		return false
	}

	if md.Producer != v.producer || md.Title != v.title {
		v.log.Warn(ctx, "metadata signature mismatch",
			"producer", md.Producer, "title", md.Title)
		return false
	}

	return true
}
