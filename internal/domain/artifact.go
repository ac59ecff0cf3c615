package domain

import "fmt"

// FlashCard is a single generated question/answer pair. Cards are produced
// only by generation and never edited afterwards.
type FlashCard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Validate checks that the card has both sides.
func (c *FlashCard) Validate() error {
	if c.Question == "" {
		return fmt.Errorf("question: flashcard question is required")
	}
	if c.Answer == "" {
		return fmt.Errorf("answer: flashcard answer is required")
	}
	return nil
}

// QuizQuestion is a generated multiple-choice question. The wire field for
// the answer index is `correct_answer` (see internal/client).
type QuizQuestion struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correct_answer"`
}

// Validate checks option count and answer-index bounds. Bounds are checked
// eagerly at generation time so SelectAnswer can index options safely.
func (q *QuizQuestion) Validate() error {
	if q.Question == "" {
		return fmt.Errorf("question: quiz question is required")
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("options: quiz question needs at least 2 options, got %d", len(q.Options))
	}
	if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
		return fmt.Errorf("correct_answer: index %d out of range [0, %d)", q.CorrectAnswerIndex, len(q.Options))
	}
	return nil
}

// GenerationState tracks a study tool session's request lifecycle.
type GenerationState string

const (
	StateIdle       GenerationState = "idle"
	StateGenerating GenerationState = "generating"
	StateError      GenerationState = "error"
)
