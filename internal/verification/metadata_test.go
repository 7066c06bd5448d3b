package verification

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/telepay/receiptbot/internal/logging"
)

type fakeMetadataReader struct {
	md  DocumentMetadata
	err error
}

func (f *fakeMetadataReader) ReadMetadata(_ context.Context, _ string) (DocumentMetadata, error) {
	return f.md, f.err
}

func newMetadataValidator(reader MetadataReader) *MetadataValidator {
	cfg := Config{MetadataProducer: "WeasyPrint 62.3", MetadataTitle: "Чек"}
	return NewMetadataValidator(reader, cfg, logging.NewJSON(io.Discard))
}

func TestMetadataValidator_Valid(t *testing.T) {
	tests := []struct {
		name   string
		reader fakeMetadataReader
		want   bool
	}{
		{
			name:   "exact match",
			reader: fakeMetadataReader{md: DocumentMetadata{Producer: "WeasyPrint 62.3", Title: "Чек"}},
			want:   true,
		},
		{
			name:   "wrong producer",
			reader: fakeMetadataReader{md: DocumentMetadata{Producer: "WeasyPrint 61.0", Title: "Чек"}},
			want:   false,
		},
		{
			name:   "wrong title",
			reader: fakeMetadataReader{md: DocumentMetadata{Producer: "WeasyPrint 62.3", Title: "Invoice"}},
			want:   false,
		},
		{
			name:   "missing metadata",
			reader: fakeMetadataReader{md: DocumentMetadata{}},
			want:   false,
		},
		{
			name:   "parse error fails closed",
			reader: fakeMetadataReader{err: errors.New("broken xref")},
			want:   false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := newMetadataValidator(&tc.reader)
			assert.Equal(t, tc.want, v.Valid(context.Background(), "receipt.pdf"))
		})
	}
}
