// Package ocrx wraps the Tesseract OCR engine behind the pipeline's
// Recognizer contract. Recognition accuracy is not this package's concern:
// garbled output simply fails the downstream field checks.
package ocrx

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// TesseractRecognizer performs OCR using the gosseract client. A fresh
// client is created per call so concurrent pipeline instances never share
// native state.
type TesseractRecognizer struct {
	clientFactory func() *gosseract.Client
}

func NewTesseractRecognizer() *TesseractRecognizer {
	return &TesseractRecognizer{clientFactory: gosseract.NewClient}
}

// Recognize runs Tesseract over the image with the given language hints
// (e.g. "rus", "eng" for mixed Cyrillic/Latin receipts). There are no
// retries; failures propagate to the caller.
func (r *TesseractRecognizer) Recognize(ctx context.Context, imagePath string, languages []string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	c := r.clientFactory()
	defer c.Close()

	if len(languages) > 0 {
		if err := c.SetLanguage(languages...); err != nil {
			return "", fmt.Errorf("set languages: %w", err)
		}
	}
	if err := c.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}

	return text, nil
}
