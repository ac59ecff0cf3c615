package domain

import "context"

// GenerationClient defines the contract with the remote generation service.
// Calls are independent: no retries, no caching, safe to run concurrently
// from different study tools.
type GenerationClient interface {
	// ProcessDocument sends raw document bytes for remote text extraction.
	ProcessDocument(ctx context.Context, filename string, data []byte) (string, error)
	// GenerateNotes produces a summary of the given text.
	GenerateNotes(ctx context.Context, text string) (string, error)
	// GenerateFlashcards produces count question/answer cards.
	GenerateFlashcards(ctx context.Context, text string, count int) ([]FlashCard, error)
	// GenerateQuiz produces count multiple-choice questions.
	GenerateQuiz(ctx context.Context, text string, count int) ([]QuizQuestion, error)
	// AskQuestion answers a free-form question about the text.
	AskQuestion(ctx context.Context, text, question string) (string, error)
}

// DocumentExtractor turns an uploaded document into display metadata and
// plain text.
type DocumentExtractor interface {
	// Load opens the document and returns its page count.
	Load(doc *Document) (int, error)
	// ExtractText returns the document's text for the given selector. It
	// never returns an empty string with a nil error: a document without a
	// text layer surfaces as an extraction error.
	ExtractText(doc *Document, selector PageSelector) (string, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetGenerationAPIURL() string
	GetGenerationAPIKey() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetExtractMode() string
	GetDefaultNumCards() int
	GetDefaultNumQuestions() int
	GetRequestTimeoutSec() int
}
