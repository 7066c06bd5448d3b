package pdfx

import (
	"context"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/telepay/receiptbot/internal/verification"
)

// MetadataReader extracts document information (Producer, Title) via
// pdfcpu. Interpretation of the values is left to the metadata validator.
type MetadataReader struct{}

func NewMetadataReader() *MetadataReader {
	return &MetadataReader{}
}

func (m *MetadataReader) ReadMetadata(ctx context.Context, pdfPath string) (verification.DocumentMetadata, error) {
	select {
	case <-ctx.Done():
		return verification.DocumentMetadata{}, ctx.Err()
	default:
	}

	f, err := os.Open(pdfPath)
	if err != nil {
		return verification.DocumentMetadata{}, fmt.Errorf("open %s: %w", pdfPath, err)
	}
	defer f.Close()

	info, err := api.PDFInfo(f, pdfPath, nil, nil)
	if err != nil {
		return verification.DocumentMetadata{}, fmt.Errorf("pdf info: %w", err)
	}

	return verification.DocumentMetadata{
		Producer: info.Producer,
		Title:    info.Title,
	}, nil
}
