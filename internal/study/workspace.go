package study

import (
	"sync"

	"study-desk/internal/domain"
)

const (
	minZoom     = 0.5
	maxZoom     = 4.0
	defaultZoom = 1.0
)

// Workspace owns the current document: its bytes, extracted text and viewer
// state. Extracted text is written only by SetDocument and read by every
// study tool; tools detect a replaced document through the monotonic version
// counter and reset their derived state.
type Workspace struct {
	mu        sync.RWMutex
	extractor domain.DocumentExtractor
	logger    domain.Logger
	selector  domain.PageSelector

	doc       *domain.Document
	text      string
	version   uint64
	pageCount int
	page      int
	zoom      float64
}

// NewWorkspace creates an empty workspace. The selector controls how much
// of each uploaded document is extracted.
func NewWorkspace(extractor domain.DocumentExtractor, logger domain.Logger, selector domain.PageSelector) *Workspace {
	if selector != domain.SelectFirstPage {
		selector = domain.SelectAllPages
	}
	return &Workspace{
		extractor: extractor,
		logger:    logger,
		selector:  selector,
		zoom:      defaultZoom,
	}
}

// SetDocument extracts the uploaded document and, on success, atomically
// replaces the current one. On any failure the previous document and text
// are left untouched and the error is returned to the upload surface.
func (w *Workspace) SetDocument(doc *domain.Document) (*domain.DocumentInfo, error) {
	pageCount, err := w.extractor.Load(doc)
	if err != nil {
		return nil, err
	}

	text, err := w.extractor.ExtractText(doc, w.selector)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.doc = doc
	w.text = text
	w.version++
	w.pageCount = pageCount
	w.page = 1
	w.zoom = defaultZoom

	w.logger.Info("Document loaded",
		"id", doc.ID,
		"filename", doc.Filename,
		"format", doc.Format,
		"pages", pageCount,
		"text_len", len(text),
		"version", w.version)

	return w.infoLocked(), nil
}

// Snapshot returns the current extracted text together with the document
// version it belongs to. Empty text means no document is loaded.
func (w *Workspace) Snapshot() (string, uint64) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.text, w.version
}

// Version returns the current document version.
func (w *Workspace) Version() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.version
}

// Info returns the current document and viewer state.
func (w *Workspace) Info() (*domain.DocumentInfo, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.doc == nil {
		return nil, domain.ErrNoDocument
	}
	return w.infoLocked(), nil
}

// GoToPage moves the page cursor, clamping silently to [1, pageCount].
func (w *Workspace) GoToPage(page int) (*domain.DocumentInfo, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.doc == nil {
		return nil, domain.ErrNoDocument
	}
	if page < 1 {
		page = 1
	}
	if page > w.pageCount {
		page = w.pageCount
	}
	w.page = page
	return w.infoLocked(), nil
}

// SetZoom adjusts the zoom factor, clamped to [0.5, 4.0].
func (w *Workspace) SetZoom(zoom float64) (*domain.DocumentInfo, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.doc == nil {
		return nil, domain.ErrNoDocument
	}
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	w.zoom = zoom
	return w.infoLocked(), nil
}

func (w *Workspace) infoLocked() *domain.DocumentInfo {
	return &domain.DocumentInfo{
		ID:         w.doc.ID,
		Filename:   w.doc.Filename,
		Format:     w.doc.Format,
		Size:       w.doc.Size,
		PageCount:  w.pageCount,
		Page:       w.page,
		Zoom:       w.zoom,
		UploadedAt: w.doc.UploadedAt,
	}
}
