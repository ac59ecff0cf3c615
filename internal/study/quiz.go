package study

import (
	"context"

	"study-desk/internal/domain"
)

// QuizSession manages a generated question set and the user's single pass
// through it: one-shot answers, a running score and a terminal completed
// state that Retry replays without regenerating.
type QuizSession struct {
	session
	client       domain.GenerationClient
	defaultCount int

	questions      []domain.QuizQuestion
	currentIndex   int
	selectedAnswer *int
	score          int
	completed      bool
}

// QuizView is a read-only snapshot of the session for the HTTP layer.
type QuizView struct {
	State          domain.GenerationState `json:"state"`
	LastError      string                 `json:"last_error,omitempty"`
	Questions      []domain.QuizQuestion  `json:"questions"`
	CurrentIndex   int                    `json:"current_index"`
	SelectedAnswer *int                   `json:"selected_answer"`
	Score          int                    `json:"score"`
	Completed      bool                   `json:"completed"`
}

// NewQuizSession creates a quiz session bound to the workspace.
func NewQuizSession(workspace *Workspace, client domain.GenerationClient, logger domain.Logger, defaultCount int) *QuizSession {
	q := &QuizSession{
		session:      newSession(workspace, logger),
		client:       client,
		defaultCount: defaultCount,
	}
	q.reset = func() {
		q.questions = nil
		q.resetProgressLocked()
	}
	return q
}

func (q *QuizSession) resetProgressLocked() {
	q.currentIndex = 0
	q.selectedAnswer = nil
	q.score = 0
	q.completed = false
}

// Generate replaces the question set and zeroes all progress. A failed call
// leaves the existing questions and progress untouched.
func (q *QuizSession) Generate(ctx context.Context, count int) error {
	if count <= 0 {
		count = q.defaultCount
	}

	text, version, err := q.beginGenerate()
	if err != nil {
		return err
	}

	questions, genErr := q.client.GenerateQuiz(ctx, text, count)
	if genErr != nil {
		q.logger.Error("Quiz generation failed", genErr, "count", count)
	}
	q.finishGenerate(version, genErr, func() {
		q.questions = questions
		q.resetProgressLocked()
	})
	return genErr
}

// SelectAnswer records the user's choice for the current question. Answering
// is one-shot: exactly one point per question, awarded at the moment of
// first selection; further calls for the same question are ignored.
func (q *QuizSession) SelectAnswer(index int) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.syncLocked()

	if len(q.questions) == 0 {
		return domain.ErrNoItems
	}
	if q.completed {
		return domain.ErrQuizCompleted
	}
	if q.selectedAnswer != nil {
		return nil
	}
	current := q.questions[q.currentIndex]
	if index < 0 || index >= len(current.Options) {
		return domain.ErrInvalidOption
	}

	q.selectedAnswer = &index
	if index == current.CorrectAnswerIndex {
		q.score++
	}
	return nil
}

// Advance moves to the next question, or completes the quiz when the
// current question is the last one. The current question must be answered.
func (q *QuizSession) Advance() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.syncLocked()

	if len(q.questions) == 0 {
		return domain.ErrNoItems
	}
	if q.completed {
		return domain.ErrQuizCompleted
	}
	if q.selectedAnswer == nil {
		return domain.ErrAnswerRequired
	}

	if q.currentIndex == len(q.questions)-1 {
		q.completed = true
		return nil
	}
	q.currentIndex++
	q.selectedAnswer = nil
	return nil
}

// Retry replays the same question set from the start with score zeroed.
// It never regenerates.
func (q *QuizSession) Retry() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.syncLocked()

	if len(q.questions) == 0 {
		return domain.ErrNoItems
	}
	q.resetProgressLocked()
	return nil
}

// Snapshot returns the session state for rendering.
func (q *QuizSession) Snapshot() QuizView {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.syncLocked()

	questions := make([]domain.QuizQuestion, len(q.questions))
	copy(questions, q.questions)

	var selected *int
	if q.selectedAnswer != nil {
		v := *q.selectedAnswer
		selected = &v
	}
	return QuizView{
		State:          q.state,
		LastError:      q.lastError,
		Questions:      questions,
		CurrentIndex:   q.currentIndex,
		SelectedAnswer: selected,
		Score:          q.score,
		Completed:      q.completed,
	}
}
