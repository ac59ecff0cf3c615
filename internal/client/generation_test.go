package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "study-desk/pkg/errors"
)

type mockConfig struct {
	baseURL string
	apiKey  string
}

func (m *mockConfig) GetServerPort() string       { return "8080" }
func (m *mockConfig) GetGenerationAPIURL() string { return m.baseURL }
func (m *mockConfig) GetGenerationAPIKey() string { return m.apiKey }
func (m *mockConfig) GetMaxFileSize() int64       { return 15 * 1024 * 1024 }
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

func newTestClient(server *httptest.Server) *Client {
	return NewClient(&mockConfig{baseURL: server.URL, apiKey: "test-key"}, &mockLogger{})
}

func TestClient_GenerateNotes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/generate-notes" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("X-API-Key") != "test-key" {
			t.Errorf("missing API key header")
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected content type: %s", r.Header.Get("Content-Type"))
		}

		var body struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if body.Text != "document text" {
			t.Errorf("unexpected text: %q", body.Text)
		}
		json.NewEncoder(w).Encode(map[string]string{"summary": "a summary"})
	}))
	defer server.Close()

	summary, err := newTestClient(server).GenerateNotes(context.Background(), "document text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "a summary" {
		t.Fatalf("unexpected summary: %q", summary)
	}
}

func TestClient_GenerateFlashcards(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/generate-flashcards" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("num_cards"); got != "7" {
			t.Errorf("expected num_cards=7, got %q", got)
		}
		io.WriteString(w, `[{"question":"Q1","answer":"A1"},{"question":"Q2","answer":"A2"}]`)
	}))
	defer server.Close()

	cards, err := newTestClient(server).GenerateFlashcards(context.Background(), "text", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if cards[0].Question != "Q1" || cards[0].Answer != "A1" {
		t.Fatalf("unexpected card: %+v", cards[0])
	}
}

func TestClient_GenerateFlashcards_EmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	}))
	defer server.Close()

	_, err := newTestClient(server).GenerateFlashcards(context.Background(), "text", 5)
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestClient_GenerateFlashcards_InvalidCard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"question":"Q1","answer":""}]`)
	}))
	defer server.Close()

	_, err := newTestClient(server).GenerateFlashcards(context.Background(), "text", 5)
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestClient_GenerateQuiz(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("num_questions"); got != "3" {
			t.Errorf("expected num_questions=3, got %q", got)
		}
		io.WriteString(w, `[{"question":"Q1","options":["a","b","c"],"correct_answer":2}]`)
	}))
	defer server.Close()

	questions, err := newTestClient(server).GenerateQuiz(context.Background(), "text", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if questions[0].CorrectAnswerIndex != 2 {
		t.Fatalf("unexpected answer index: %d", questions[0].CorrectAnswerIndex)
	}
}

func TestClient_GenerateQuiz_AnswerOutOfBounds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"question":"Q1","options":["a","b"],"correct_answer":5}]`)
	}))
	defer server.Close()

	_, err := newTestClient(server).GenerateQuiz(context.Background(), "text", 1)
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestClient_AskQuestion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ask-question" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var body struct {
			Text     string `json:"text"`
			Question string `json:"question"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if body.Question != "what is this about?" {
			t.Errorf("unexpected question: %q", body.Question)
		}
		json.NewEncoder(w).Encode(map[string]string{"answer": "it is about Go"})
	}))
	defer server.Close()

	answer, err := newTestClient(server).AskQuestion(context.Background(), "text", "what is this about?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "it is about Go" {
		t.Fatalf("unexpected answer: %q", answer)
	}
}

func TestClient_ProcessDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/process-document" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("X-API-Key") != "test-key" {
			t.Errorf("missing API key header")
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("missing file part: %v", err)
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer file.Close()
		if header.Filename != "sample.pdf" {
			t.Errorf("unexpected filename: %s", header.Filename)
		}
		data, _ := io.ReadAll(file)
		if string(data) != "%PDF-1.4 raw bytes" {
			t.Errorf("unexpected file contents: %q", data)
		}
		json.NewEncoder(w).Encode(map[string]string{"text": "extracted text"})
	}))
	defer server.Close()

	text, err := newTestClient(server).ProcessDocument(context.Background(), "sample.pdf", []byte("%PDF-1.4 raw bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "extracted text" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestClient_ErrorMessages(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{"Message field", 500, `{"message":"model overloaded"}`, "model overloaded"},
		{"Detail field", 422, `{"detail":"text too short"}`, "text too short"},
		{"Unparseable body", 502, `<html>bad gateway</html>`, "An error occurred while processing your request"},
		{"Empty body", 500, ``, "An error occurred while processing your request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer server.Close()

			_, err := newTestClient(server).GenerateNotes(context.Background(), "text")
			if !apperrors.IsType(err, apperrors.ErrorTypeServer) {
				t.Fatalf("expected server error, got %v", err)
			}
			appErr := err.(*apperrors.AppError)
			if appErr.Message != tt.wantMessage {
				t.Fatalf("expected message %q, got %q", tt.wantMessage, appErr.Message)
			}
			if apperrors.GetStatusCode(err) != http.StatusBadGateway {
				t.Fatalf("expected 502 mapping, got %d", apperrors.GetStatusCode(err))
			}
		})
	}
}

func TestClient_MalformedSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"summary": `)
	}))
	defer server.Close()

	_, err := newTestClient(server).GenerateNotes(context.Background(), "text")
	if !apperrors.IsType(err, apperrors.ErrorTypeInvalidResponse) {
		t.Fatalf("expected invalid response error, got %v", err)
	}
}

func TestClient_ServiceUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := newTestClient(server).GenerateNotes(context.Background(), "text")
	if !apperrors.IsType(err, apperrors.ErrorTypeNetwork) {
		t.Fatalf("expected network error, got %v", err)
	}
}
