package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"study-desk/internal/domain"
	apperrors "study-desk/pkg/errors"
)

const defaultErrorMessage = "An error occurred while processing your request"

// Client talks to the remote generation service. Each call is independent:
// no retries, no caching, no shared mutable state, so concurrent calls from
// different study tools are fine.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     domain.Logger
}

// NewClient creates a generation client from configuration. The API key may
// be empty; it is forwarded as-is and any rejection comes back through the
// normal error path.
func NewClient(config domain.Config, logger domain.Logger) *Client {
	timeout := time.Duration(config.GetRequestTimeoutSec()) * time.Second
	return &Client{
		baseURL:    config.GetGenerationAPIURL(),
		apiKey:     config.GetGenerationAPIKey(),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type textRequest struct {
	Text string `json:"text"`
}

type questionRequest struct {
	Text     string `json:"text"`
	Question string `json:"question"`
}

// ProcessDocument sends raw document bytes for remote text extraction.
func (c *Client) ProcessDocument(ctx context.Context, filename string, data []byte) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", apperrors.NewNetworkError("failed to build upload request", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", apperrors.NewNetworkError("failed to build upload request", err)
	}
	if err := writer.Close(); err != nil {
		return "", apperrors.NewNetworkError("failed to build upload request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/process-document", &buf)
	if err != nil {
		return "", apperrors.NewNetworkError("failed to build upload request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-API-Key", c.apiKey)

	var result struct {
		Text string `json:"text"`
	}
	if err := c.do(req, &result); err != nil {
		return "", err
	}
	return result.Text, nil
}

// GenerateNotes produces a summary of the given text.
func (c *Client) GenerateNotes(ctx context.Context, text string) (string, error) {
	var result struct {
		Summary string `json:"summary"`
	}
	if err := c.postJSON(ctx, "/generate-notes", nil, textRequest{Text: text}, &result); err != nil {
		return "", err
	}
	return result.Summary, nil
}

// GenerateFlashcards produces count question/answer cards.
func (c *Client) GenerateFlashcards(ctx context.Context, text string, count int) ([]domain.FlashCard, error) {
	query := url.Values{"num_cards": {fmt.Sprint(count)}}

	var cards []domain.FlashCard
	if err := c.postJSON(ctx, "/generate-flashcards", query, textRequest{Text: text}, &cards); err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, apperrors.NewValidationError("generation service returned no flashcards")
	}
	for i := range cards {
		if err := cards[i].Validate(); err != nil {
			return nil, apperrors.NewValidationError("generation service returned an invalid flashcard", err.Error())
		}
	}
	return cards, nil
}

// GenerateQuiz produces count multiple-choice questions. Answer indexes are
// validated here so the quiz session never reads out of bounds.
func (c *Client) GenerateQuiz(ctx context.Context, text string, count int) ([]domain.QuizQuestion, error) {
	query := url.Values{"num_questions": {fmt.Sprint(count)}}

	var questions []domain.QuizQuestion
	if err := c.postJSON(ctx, "/generate-quiz", query, textRequest{Text: text}, &questions); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, apperrors.NewValidationError("generation service returned no quiz questions")
	}
	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			return nil, apperrors.NewValidationError("generation service returned an invalid quiz question", err.Error())
		}
	}
	return questions, nil
}

// AskQuestion answers a free-form question about the text.
func (c *Client) AskQuestion(ctx context.Context, text, question string) (string, error) {
	var result struct {
		Answer string `json:"answer"`
	}
	req := questionRequest{Text: text, Question: question}
	if err := c.postJSON(ctx, "/ask-question", nil, req, &result); err != nil {
		return "", err
	}
	return result.Answer, nil
}

// postJSON sends a JSON body to path and decodes the response into out.
func (c *Client) postJSON(ctx context.Context, path string, query url.Values, body, out interface{}) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return apperrors.NewNetworkError("failed to encode request", err)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return apperrors.NewNetworkError("failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	return c.do(req, out)
}

// do executes the request and normalizes transport, HTTP and decoding
// failures into the shared error taxonomy.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Generation service unreachable", "url", req.URL.Path, "error", err)
		return apperrors.NewNetworkError("generation service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.NewServerError(c.errorMessage(resp.Body), resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewInvalidResponseError("invalid response format from server", err)
	}
	return nil
}

// errorMessage extracts a human-readable message from a non-2xx body. The
// service reports either {message} or {detail}; anything else falls back to
// a generic message.
func (c *Client) errorMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return defaultErrorMessage
	}
	if payload.Message != "" {
		return payload.Message
	}
	if payload.Detail != "" {
		return payload.Detail
	}
	return defaultErrorMessage
}
