package handler

import (
	"encoding/json"
	"net/http"

	"study-desk/internal/domain"
	"study-desk/internal/study"
)

// StudyHandler serves the three study tool sessions.
type StudyHandler struct {
	desk   *study.Desk
	logger domain.Logger
}

// NewStudyHandler creates a new study tool handler
func NewStudyHandler(desk *study.Desk, logger domain.Logger) *StudyHandler {
	return &StudyHandler{desk: desk, logger: logger}
}

type generateRequest struct {
	Count int `json:"count"`
}

// decodeCount reads an optional {count} body; an empty body means defaults.
func decodeCount(r *http.Request) int {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return 0
	}
	return req.Count
}

// --- Flashcards ---

func (h *StudyHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	if err := h.desk.Flashcards.Generate(r.Context(), decodeCount(r)); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.desk.Flashcards.Snapshot())
}

func (h *StudyHandler) GetFlashcards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.desk.Flashcards.Snapshot())
}

func (h *StudyHandler) NextFlashcard(w http.ResponseWriter, r *http.Request) {
	h.desk.Flashcards.Next()
	writeJSON(w, http.StatusOK, h.desk.Flashcards.Snapshot())
}

func (h *StudyHandler) PreviousFlashcard(w http.ResponseWriter, r *http.Request) {
	h.desk.Flashcards.Previous()
	writeJSON(w, http.StatusOK, h.desk.Flashcards.Snapshot())
}

func (h *StudyHandler) FlipFlashcard(w http.ResponseWriter, r *http.Request) {
	h.desk.Flashcards.Flip()
	writeJSON(w, http.StatusOK, h.desk.Flashcards.Snapshot())
}

func (h *StudyHandler) ExportFlashcards(w http.ResponseWriter, r *http.Request) {
	file, err := h.desk.Flashcards.ExportCSV()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeDownload(w, file.Filename, file.MIMEType, file.Content)
}

// --- Quiz ---

func (h *StudyHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	if err := h.desk.Quiz.Generate(r.Context(), decodeCount(r)); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.desk.Quiz.Snapshot())
}

func (h *StudyHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.desk.Quiz.Snapshot())
}

func (h *StudyHandler) AnswerQuiz(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Index int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.desk.Quiz.SelectAnswer(req.Index); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.desk.Quiz.Snapshot())
}

func (h *StudyHandler) AdvanceQuiz(w http.ResponseWriter, r *http.Request) {
	if err := h.desk.Quiz.Advance(); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.desk.Quiz.Snapshot())
}

func (h *StudyHandler) RetryQuiz(w http.ResponseWriter, r *http.Request) {
	if err := h.desk.Quiz.Retry(); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.desk.Quiz.Snapshot())
}

// --- Notes ---

func (h *StudyHandler) GenerateNotes(w http.ResponseWriter, r *http.Request) {
	if err := h.desk.Notes.Generate(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.desk.Notes.Snapshot())
}

func (h *StudyHandler) GetNotes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.desk.Notes.Snapshot())
}

func (h *StudyHandler) UpdateNotesContent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.desk.Notes.UpdateContent(req.Content)
	writeJSON(w, http.StatusOK, h.desk.Notes.Snapshot())
}

func (h *StudyHandler) ExportNotes(w http.ResponseWriter, r *http.Request) {
	var file *study.ExportFile
	switch r.URL.Query().Get("format") {
	case "", "html":
		file = h.desk.Notes.ExportHTML()
	case "txt", "text":
		file = h.desk.Notes.ExportText()
	default:
		writeError(w, http.StatusBadRequest, "Unsupported export format. Allowed: html, txt.")
		return
	}
	writeDownload(w, file.Filename, file.MIMEType, file.Content)
}

// --- Fan-out ---

type generateAllRequest struct {
	NumCards     int `json:"num_cards"`
	NumQuestions int `json:"num_questions"`
}

// GenerateAll triggers all three tools concurrently and reports per-tool
// outcomes; one failing tool leaves the others' results intact.
func (h *StudyHandler) GenerateAll(w http.ResponseWriter, r *http.Request) {
	var req generateAllRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	result := h.desk.GenerateAll(r.Context(), req.NumCards, req.NumQuestions)
	writeJSON(w, http.StatusOK, result)
}
