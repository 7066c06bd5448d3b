package verification

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/telepay/receiptbot/internal/common"
	"github.com/telepay/receiptbot/internal/filex"
)

// documentFileName is the name of the acquired copy inside the scoped
// request directory.
const documentFileName = "receipt.pdf"

// Acquirer downloads a submitted document into a directory scoped to one
// pipeline invocation.
type Acquirer struct {
	source   FileSource
	baseDir  string
	mimeType string
	maxSize  int64
}

func NewAcquirer(source FileSource, baseDir string, cfg Config) *Acquirer {
	return &Acquirer{
		source:   source,
		baseDir:  baseDir,
		mimeType: cfg.MIMEType,
		maxSize:  cfg.MaxFileSize,
	}
}

// Acquire validates the declared content type, fetches the document bytes
// and writes them under a fresh request-scoped directory. The directory
// name carries the submitter id plus a random suffix, so concurrent
// submissions never collide, not even from the same submitter. The caller
// owns the directory and must remove it on every exit path.
//
// The content-type check runs before any fetch; nothing is written for a
// mistyped submission.
func (a *Acquirer) Acquire(ctx context.Context, sub Submitter, doc Document) (dir string, pdfPath string, err error) {
	if doc.MIMEType != a.mimeType {
		return "", "", common.ErrUnsupportedMediaType
	}

	data, err := a.source.Fetch(ctx, doc.FileID)
	if err != nil {
		return "", "", fmt.Errorf("fetch document: %w", err)
	}
	if len(data) == 0 {
		return "", "", common.ErrEmptyDocument
	}
	if a.maxSize > 0 && int64(len(data)) > a.maxSize {
		return "", "", common.ErrDocumentTooLarge
	}

	dir = filepath.Join(a.baseDir, fmt.Sprintf("%d-%s", sub.UserID, uuid.NewString()))
	if _, err := filex.EnsureDir(dir); err != nil {
		return "", "", err
	}

	pdfPath = filepath.Join(dir, documentFileName)
	if err := os.WriteFile(pdfPath, data, 0o660); err != nil {
		_ = filex.Remove(dir)
		return "", "", fmt.Errorf("write document: %w", err)
	}

	return dir, pdfPath, nil
}
