package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"study-desk/internal/domain"
	apperrors "study-desk/pkg/errors"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeDomainError maps session and pipeline errors to HTTP statuses.
// AppErrors carry their own status; session sentinels map here. Every
// failure is surfaced in the body, never swallowed into logs only.
func writeDomainError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		writeJSON(w, appErr.StatusCode, map[string]string{
			"error": appErr.Message,
			"type":  string(appErr.Type),
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrNoDocument),
		errors.Is(err, domain.ErrAnswerRequired),
		errors.Is(err, domain.ErrInvalidOption):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrGenerationInFlight),
		errors.Is(err, domain.ErrNoItems),
		errors.Is(err, domain.ErrQuizCompleted):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// writeDownload streams an exported file with download headers set.
func writeDownload(w http.ResponseWriter, filename, mimeType string, content []byte) {
	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}
