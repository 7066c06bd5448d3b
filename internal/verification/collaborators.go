package verification

import "context"

// Submitter identifies who uploaded a document.
type Submitter struct {
	UserID   int64
	Username string
}

// Document is the remote handle of an uploaded file plus its declared
// content type.
type Document struct {
	FileID   string
	MIMEType string
}

// DocumentMetadata is the document-level metadata inspected by the
// metadata validator.
type DocumentMetadata struct {
	Producer string
	Title    string
}

// FileSource fetches the raw bytes of an uploaded document from the
// messaging platform.
type FileSource interface {
	Fetch(ctx context.Context, fileID string) ([]byte, error)
}

// Renderer rasterizes the first page of a document into a bitmap image
// written to outDir, returning the image path.
type Renderer interface {
	RenderFirstPage(ctx context.Context, pdfPath string, outDir string) (string, error)
}

// Recognizer converts a rendered image into text using the given language
// hints.
type Recognizer interface {
	Recognize(ctx context.Context, imagePath string, languages []string) (string, error)
}

// MetadataReader extracts document-level metadata from a PDF.
type MetadataReader interface {
	ReadMetadata(ctx context.Context, pdfPath string) (DocumentMetadata, error)
}

// Notifier delivers a human-readable status for the verdict to the
// submitter.
type Notifier interface {
	Notify(ctx context.Context, submitter Submitter, verdict Verdict)
}

// Escalator forwards a suspicious document to the review operator, naming
// the submitter.
type Escalator interface {
	Escalate(ctx context.Context, submitter Submitter, fileID string) error
}
