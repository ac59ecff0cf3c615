package handler

import (
	"net/http"

	"study-desk/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"study-desk"}`))
	}).Methods("GET")

	// Initialize handlers
	documentHandler := NewDocumentHandler(
		container.Desk,
		container.GenerationClient,
		container.Logger,
		container.Config.GetMaxFileSize(),
	)
	studyHandler := NewStudyHandler(container.Desk, container.Logger)

	api.Use(LoggingMiddleware(container.Logger))

	// Document and viewer routes
	api.HandleFunc("/documents", documentHandler.UploadDocument).Methods("POST")
	api.HandleFunc("/documents/current", documentHandler.GetCurrentDocument).Methods("GET")
	api.HandleFunc("/viewer/page", documentHandler.GoToPage).Methods("PUT")
	api.HandleFunc("/viewer/zoom", documentHandler.SetZoom).Methods("PUT")
	api.HandleFunc("/ask", documentHandler.AskQuestion).Methods("POST")

	// Flashcard routes
	api.HandleFunc("/flashcards", studyHandler.GetFlashcards).Methods("GET")
	api.HandleFunc("/flashcards/generate", studyHandler.GenerateFlashcards).Methods("POST")
	api.HandleFunc("/flashcards/next", studyHandler.NextFlashcard).Methods("POST")
	api.HandleFunc("/flashcards/previous", studyHandler.PreviousFlashcard).Methods("POST")
	api.HandleFunc("/flashcards/flip", studyHandler.FlipFlashcard).Methods("POST")
	api.HandleFunc("/flashcards/export", studyHandler.ExportFlashcards).Methods("GET")

	// Quiz routes
	api.HandleFunc("/quiz", studyHandler.GetQuiz).Methods("GET")
	api.HandleFunc("/quiz/generate", studyHandler.GenerateQuiz).Methods("POST")
	api.HandleFunc("/quiz/answer", studyHandler.AnswerQuiz).Methods("POST")
	api.HandleFunc("/quiz/advance", studyHandler.AdvanceQuiz).Methods("POST")
	api.HandleFunc("/quiz/retry", studyHandler.RetryQuiz).Methods("POST")

	// Notes routes
	api.HandleFunc("/notes", studyHandler.GetNotes).Methods("GET")
	api.HandleFunc("/notes/generate", studyHandler.GenerateNotes).Methods("POST")
	api.HandleFunc("/notes/content", studyHandler.UpdateNotesContent).Methods("PUT")
	api.HandleFunc("/notes/export", studyHandler.ExportNotes).Methods("GET")

	// Fan-out generation
	api.HandleFunc("/study/generate-all", studyHandler.GenerateAll).Methods("POST")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:3000", // Next.js dev server
			"http://localhost:5173", // Vite dev server
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-API-Key",
		},
		ExposedHeaders: []string{
			"Content-Disposition",
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
