package study

import (
	"context"
	"testing"
	"time"

	"study-desk/internal/domain"
)

// Mock implementations shared by the study package tests.

type mockLogger struct{}

func (l *mockLogger) Info(msg string, fields ...interface{})             {}
func (l *mockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *mockLogger) Debug(msg string, fields ...interface{})            {}
func (l *mockLogger) Warn(msg string, fields ...interface{})             {}

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
	processFn    func(ctx context.Context, filename string, data []byte) (string, error)
	notesFn      func(ctx context.Context, text string) (string, error)
	flashcardsFn func(ctx context.Context, text string, count int) ([]domain.FlashCard, error)
	quizFn       func(ctx context.Context, text string, count int) ([]domain.QuizQuestion, error)
	askFn        func(ctx context.Context, text, question string) (string, error)
}

func (m *mockClient) ProcessDocument(ctx context.Context, filename string, data []byte) (string, error) {
	if m.processFn != nil {
		return m.processFn(ctx, filename, data)
	}
	return "", nil
}

func (m *mockClient) GenerateNotes(ctx context.Context, text string) (string, error) {
	if m.notesFn != nil {
		return m.notesFn(ctx, text)
	}
	return "", nil
}

func (m *mockClient) GenerateFlashcards(ctx context.Context, text string, count int) ([]domain.FlashCard, error) {
	if m.flashcardsFn != nil {
		return m.flashcardsFn(ctx, text, count)
	}
	return nil, nil
}

func (m *mockClient) GenerateQuiz(ctx context.Context, text string, count int) ([]domain.QuizQuestion, error) {
	if m.quizFn != nil {
		return m.quizFn(ctx, text, count)
	}
	return nil, nil
}

func (m *mockClient) AskQuestion(ctx context.Context, text, question string) (string, error) {
	if m.askFn != nil {
		return m.askFn(ctx, text, question)
	}
	return "", nil
}

func testDocument(id string) *domain.Document {
	return &domain.Document{
		ID:         id,
		Filename:   id + ".pdf",
		Format:     domain.FormatPDF,
		Size:       4,
		UploadedAt: time.Now(),
		Data:       []byte("%PDF"),
	}
}

// loadedWorkspace returns a workspace with a document already extracted.
func loadedWorkspace(t *testing.T, text string) *Workspace {
	t.Helper()
	extractor := &mockExtractor{pageCount: 3, text: text}
	ws := NewWorkspace(extractor, &mockLogger{}, domain.SelectAllPages)
	if _, err := ws.SetDocument(testDocument("doc-1")); err != nil {
		t.Fatalf("failed to load test document: %v", err)
	}
	return ws
}

// replaceDocument swaps in a new document with different text, bumping the
// workspace version.
func replaceDocument(t *testing.T, ws *Workspace, text string) {
	t.Helper()
	ws.extractor.(*mockExtractor).text = text
	if _, err := ws.SetDocument(testDocument("doc-2")); err != nil {
		t.Fatalf("failed to replace test document: %v", err)
	}
}
