package service

import (
	"strings"
	"time"

	"study-desk/internal/domain"
	apperrors "study-desk/pkg/errors"

	"github.com/gen2brain/go-fitz"
)

// Extractor turns uploaded documents into page counts and plain text.
// MuPDF reads both PDF and EPUB, so one engine covers every supported
// upload format.
type Extractor struct {
	logger domain.Logger
}

// NewExtractor creates a new document extractor
func NewExtractor(logger domain.Logger) *Extractor {
	return &Extractor{logger: logger}
}

const pageTimeout = 90 * time.Second

// Load opens the document and returns its page count.
func (e *Extractor) Load(doc *domain.Document) (int, error) {
	if err := doc.Validate(); err != nil {
		return 0, apperrors.NewLoadError("invalid document", err)
	}

	fitzDoc, err := fitz.NewFromMemory(doc.Data)
	if err != nil {
		return 0, apperrors.NewLoadError("failed to open document", err)
	}
	defer fitzDoc.Close()

	return fitzDoc.NumPage(), nil
}

// ExtractText extracts plain text for the given selector. A document whose
// pages carry no text layer (e.g. scans) is an extraction error, never an
// empty-string success: downstream tools treat empty text as "no document".
func (e *Extractor) ExtractText(doc *domain.Document, selector domain.PageSelector) (string, error) {
	if err := doc.Validate(); err != nil {
		return "", apperrors.NewLoadError("invalid document", err)
	}

	fitzDoc, err := fitz.NewFromMemory(doc.Data)
	if err != nil {
		return "", apperrors.NewLoadError("failed to open document", err)
	}
	defer fitzDoc.Close()

	numPages := fitzDoc.NumPage()
	if selector == domain.SelectFirstPage && numPages > 1 {
		numPages = 1
	}

	var pages []string
	for pageNum := 0; pageNum < numPages; pageNum++ {
		e.logger.Debug("Extracting page", "page", pageNum+1, "total", numPages)

		text, err := e.extractPage(fitzDoc, pageNum)
		if err != nil {
			e.logger.Warn("Failed to extract text from page", "page", pageNum+1, "total", numPages, "error", err)
			continue
		}

		text = strings.TrimSpace(sanitizeText(text))
		if text != "" {
			pages = append(pages, text)
		}
	}

	combined := strings.TrimSpace(strings.Join(pages, "\n\n"))
	if combined == "" {
		return "", apperrors.NewExtractionError("document has no extractable text (scanned image or empty text layer)", nil)
	}
	return combined, nil
}

type pageResult struct {
	text string
	err  error
}

// extractPage reads one page, bounded by a timeout so a pathological page
// cannot stall the whole extraction.
func (e *Extractor) extractPage(fitzDoc *fitz.Document, pageNum int) (string, error) {
	resultCh := make(chan pageResult, 1)
	go func(idx int) {
		t, err := fitzDoc.Text(idx)
		resultCh <- pageResult{text: t, err: err}
	}(pageNum)

	select {
	case res := <-resultCh:
		return res.text, res.err
	case <-time.After(pageTimeout):
		e.logger.Warn("Page extraction timeout", "page", pageNum+1, "timeout_sec", int(pageTimeout.Seconds()))
		go func() { <-resultCh }() // drain so the goroutine can exit
		return "", apperrors.NewExtractionError("page extraction timed out", nil)
	}
}

// sanitizeText drops NULL bytes, control characters (except whitespace) and
// invalid surrogates so the text survives JSON encoding intact.
func sanitizeText(text string) string {
	var result strings.Builder
	result.Grow(len(text))

	for _, r := range text {
		switch {
		case r == 0x09 || r == 0x0A || r == 0x0D:
			result.WriteRune(r)
		case r < 0x20:
			// control character, skip
		case r >= 0xD800 && r <= 0xDFFF:
			// unpaired surrogate, skip
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}
