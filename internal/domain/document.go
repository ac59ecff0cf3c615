package domain

import (
	"fmt"
	"strings"
	"time"
)

// DocumentFormat identifies the supported upload formats.
type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatEPUB DocumentFormat = "epub"
)

// FormatFromFilename maps a file extension to a DocumentFormat.
func FormatFromFilename(filename string) (DocumentFormat, error) {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".pdf"):
		return FormatPDF, nil
	case strings.HasSuffix(name, ".epub"):
		return FormatEPUB, nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", filename)
	}
}

// PageSelector controls how much of a document the extractor reads.
type PageSelector string

const (
	// SelectFirstPage extracts only the first page. Cheap path for large
	// documents; downstream tools only need representative text.
	SelectFirstPage PageSelector = "first-page"
	// SelectAllPages extracts every page of the document.
	SelectAllPages PageSelector = "all-pages"
)

// Document represents the current uploaded file. The raw bytes are kept so
// the extractor can re-read pages on demand; a new upload replaces the
// document wholesale (no diffing, never mutated in place).
type Document struct {
	ID         string         `json:"id"`
	Filename   string         `json:"filename"`
	Format     DocumentFormat `json:"format"`
	Size       int64          `json:"size"`
	UploadedAt time.Time      `json:"uploaded_at"`

	Data []byte `json:"-"`
}

// Validate checks that the document carries everything the extractor needs.
func (d *Document) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("id: document ID is required")
	}
	if d.Format != FormatPDF && d.Format != FormatEPUB {
		return fmt.Errorf("format: unsupported format %q", d.Format)
	}
	if len(d.Data) == 0 {
		return fmt.Errorf("data: document has no content")
	}
	return nil
}

// DocumentInfo is the upload/viewer response shape. It never includes the
// raw bytes or extracted text.
type DocumentInfo struct {
	ID         string         `json:"id"`
	Filename   string         `json:"filename"`
	Format     DocumentFormat `json:"format"`
	Size       int64          `json:"size"`
	PageCount  int            `json:"page_count"`
	Page       int            `json:"page"`
	Zoom       float64        `json:"zoom"`
	UploadedAt time.Time      `json:"uploaded_at"`
}
