package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"study-desk/internal/domain"
	"study-desk/internal/study"

	"github.com/google/uuid"
)

// DocumentHandler serves document upload, viewer navigation and ask-question.
type DocumentHandler struct {
	desk        *study.Desk
	client      domain.GenerationClient
	logger      domain.Logger
	maxFileSize int64
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(desk *study.Desk, client domain.GenerationClient, logger domain.Logger, maxFileSize int64) *DocumentHandler {
	return &DocumentHandler{
		desk:        desk,
		client:      client,
		logger:      logger,
		maxFileSize: maxFileSize,
	}
}

// UploadDocument handles document upload: extraction runs immediately and,
// on success, the new text replaces the current one for every study tool.
// On failure the previous document stays in place and the error is returned
// inline to the upload surface.
func (h *DocumentHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	// Sanitize filename (strip any path components)
	originalName := strings.TrimSpace(filepath.Base(header.Filename))
	if originalName == "" || originalName == "." || originalName == string(filepath.Separator) {
		originalName = "document"
	}

	format, err := domain.FormatFromFilename(originalName)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unsupported file type. Allowed: PDF (.pdf), EPUB (.epub).")
		return
	}

	if header.Size > h.maxFileSize {
		writeError(w, http.StatusBadRequest, "File too large")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, h.maxFileSize+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}
	if int64(len(data)) > h.maxFileSize {
		writeError(w, http.StatusBadRequest, "File too large")
		return
	}

	doc := &domain.Document{
		ID:         uuid.New().String(),
		Filename:   originalName,
		Format:     format,
		Size:       int64(len(data)),
		UploadedAt: time.Now(),
		Data:       data,
	}

	info, err := h.desk.Workspace.SetDocument(doc)
	if err != nil {
		h.logger.Error("Document load failed", err, "filename", originalName)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, info)
}

// GetCurrentDocument returns the loaded document and viewer state.
func (h *DocumentHandler) GetCurrentDocument(w http.ResponseWriter, r *http.Request) {
	info, err := h.desk.Workspace.Info()
	if err != nil {
		writeError(w, http.StatusNotFound, "No document loaded")
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// GoToPage moves the viewer page cursor. Out-of-range pages clamp silently.
func (h *DocumentHandler) GoToPage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Page int `json:"page"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	info, err := h.desk.Workspace.GoToPage(req.Page)
	if err != nil {
		writeError(w, http.StatusNotFound, "No document loaded")
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// SetZoom adjusts the viewer zoom factor, clamped to a sane range.
func (h *DocumentHandler) SetZoom(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Zoom float64 `json:"zoom"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	info, err := h.desk.Workspace.SetZoom(req.Zoom)
	if err != nil {
		writeError(w, http.StatusNotFound, "No document loaded")
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// AskQuestion answers a free-form question against the current document text.
func (h *DocumentHandler) AskQuestion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Question = strings.TrimSpace(req.Question)
	if req.Question == "" {
		writeError(w, http.StatusBadRequest, "question cannot be empty")
		return
	}

	text, _ := h.desk.Workspace.Snapshot()
	if text == "" {
		writeDomainError(w, domain.ErrNoDocument)
		return
	}

	answer, err := h.client.AskQuestion(r.Context(), text, req.Question)
	if err != nil {
		h.logger.Error("Ask question failed", err)
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}
