package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"study-desk/internal/domain"
	"study-desk/internal/study"
)

type mockConfig struct{}

func (m *mockConfig) GetServerPort() string       { return "8080" }
func (m *mockConfig) GetGenerationAPIURL() string { return "http://localhost:3001/api" }
func (m *mockConfig) GetGenerationAPIKey() string { return "" }
func (m *mockConfig) GetMaxFileSize() int64       { return testMaxFileSize }
func (m *mockConfig) GetLogLevel() string         { return "error" }
func (m *mockConfig) GetExtractMode() string      { return "all-pages" }
func (m *mockConfig) GetDefaultNumCards() int     { return 5 }
func (m *mockConfig) GetDefaultNumQuestions() int { return 5 }
func (m *mockConfig) GetRequestTimeoutSec() int   { return 5 }

type mockLogger struct{}

func (m *mockLogger) Info(msg string, fields ...interface{})             {}
func (m *mockLogger) Error(msg string, err error, fields ...interface{}) {}
func (m *mockLogger) Debug(msg string, fields ...interface{})            {}
func (m *mockLogger) Warn(msg string, fields ...interface{})             {}

type mockExtractor struct {
	pageCount  int
	text       string
	loadErr    error
	extractErr error
}

func (m *mockExtractor) Load(doc *domain.Document) (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.pageCount, nil
}

func (m *mockExtractor) ExtractText(doc *domain.Document, selector domain.PageSelector) (string, error) {
	if m.extractErr != nil {
		return "", m.extractErr
	}
	return m.text, nil
}

type mockClient struct {
	notesFn      func(ctx context.Context, text string) (string, error)
	flashcardsFn func(ctx context.Context, text string, count int) ([]domain.FlashCard, error)
	quizFn       func(ctx context.Context, text string, count int) ([]domain.QuizQuestion, error)
	askFn        func(ctx context.Context, text, question string) (string, error)
}

func (m *mockClient) ProcessDocument(ctx context.Context, filename string, data []byte) (string, error) {
	return "", nil
}

func (m *mockClient) GenerateNotes(ctx context.Context, text string) (string, error) {
	if m.notesFn != nil {
		return m.notesFn(ctx, text)
	}
	return "summary", nil
}

func (m *mockClient) GenerateFlashcards(ctx context.Context, text string, count int) ([]domain.FlashCard, error) {
	if m.flashcardsFn != nil {
		return m.flashcardsFn(ctx, text, count)
	}
	return []domain.FlashCard{{Question: "Q1", Answer: "A1"}}, nil
}

func (m *mockClient) GenerateQuiz(ctx context.Context, text string, count int) ([]domain.QuizQuestion, error) {
	if m.quizFn != nil {
		return m.quizFn(ctx, text, count)
	}
	return []domain.QuizQuestion{
		{Question: "Q1", Options: []string{"a", "b"}, CorrectAnswerIndex: 0},
	}, nil
}

func (m *mockClient) AskQuestion(ctx context.Context, text, question string) (string, error) {
	if m.askFn != nil {
		return m.askFn(ctx, text, question)
	}
	return "answer", nil
}

const testMaxFileSize = 1 << 20

// newTestDesk returns a desk backed by mocks, plus the client so tests can
// stub individual generation calls.
func newTestDesk() (*study.Desk, *mockClient) {
	client := &mockClient{}
	extractor := &mockExtractor{pageCount: 3, text: "extracted document text"}
	desk := study.NewDesk(extractor, client, &mockLogger{}, domain.SelectAllPages, 5, 5)
	return desk, client
}

// newDeskWith builds a desk around a specific extractor, for failure paths.
func newDeskWith(extractor *mockExtractor, client *mockClient) *study.Desk {
	return study.NewDesk(extractor, client, &mockLogger{}, domain.SelectAllPages, 5, 5)
}

// uploadRequest builds a multipart upload for the given filename.
func uploadRequest(t *testing.T, filename string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to build form file: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// loadDesk uploads a document through the handler so the workspace has text.
func loadDesk(t *testing.T, desk *study.Desk) {
	t.Helper()
	h := NewDocumentHandler(desk, &mockClient{}, &mockLogger{}, testMaxFileSize)
	rec := httptest.NewRecorder()
	h.UploadDocument(rec, uploadRequest(t, "sample.pdf", []byte("%PDF-1.4")))
	if rec.Code != http.StatusCreated {
		t.Fatalf("upload failed with status %d: %s", rec.Code, rec.Body.String())
	}
}
