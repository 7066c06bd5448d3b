// Package pdfx implements the PDF collaborators of the verification
// pipeline: first-page rasterization and document-metadata extraction.
package pdfx

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/telepay/receiptbot/internal/common"
)

// renderDPI is enough for Tesseract to resolve receipt body text.
const renderDPI = 300

// PopplerRenderer rasterizes the first page of a PDF through the poppler
// pdftoppm CLI. pdfcpu parses and page-counts the document first, so a
// broken or empty PDF fails before the external process ever runs.
type PopplerRenderer struct {
	// Binary overrides the pdftoppm executable, for tests.
	Binary string
}

func NewPopplerRenderer() *PopplerRenderer {
	return &PopplerRenderer{Binary: "pdftoppm"}
}

// RenderFirstPage renders page 1 of pdfPath as a PNG into outDir and
// returns the image path.
func (r *PopplerRenderer) RenderFirstPage(ctx context.Context, pdfPath string, outDir string) (string, error) {
	pageCount, err := api.PageCountFile(pdfPath)
	if err != nil {
		return "", fmt.Errorf("page count: %w", err)
	}
	if pageCount == 0 {
		return "", common.ErrNoPages
	}

	prefix := filepath.Join(outDir, "page")
	cmd := exec.CommandContext(ctx, r.Binary, renderArgs(pdfPath, prefix)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("pdftoppm: %w: %s", err, out)
	}

	imgPath := prefix + ".png"
	if _, err := os.Stat(imgPath); err != nil {
		return "", fmt.Errorf("rendered image missing: %w", err)
	}

	return imgPath, nil
}

func renderArgs(pdfPath, prefix string) []string {
	return []string{
		"-png",
		"-f", "1",
		"-l", "1",
		"-r", strconv.Itoa(renderDPI),
		"-singlefile",
		pdfPath,
		prefix,
	}
}
