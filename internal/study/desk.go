package study

import (
	"context"
	"sync"

	"study-desk/internal/domain"

	"golang.org/x/sync/errgroup"
)

// Desk bundles the workspace and the three study tool sessions. Sessions
// are fully independent; the desk only wires them to the same workspace and
// offers a fan-out generation convenience.
type Desk struct {
	Workspace  *Workspace
	Flashcards *FlashcardSession
	Quiz       *QuizSession
	Notes      *NotesSession
}

// NewDesk creates the workspace and one session per tool.
func NewDesk(extractor domain.DocumentExtractor, client domain.GenerationClient, logger domain.Logger, selector domain.PageSelector, numCards, numQuestions int) *Desk {
	workspace := NewWorkspace(extractor, logger, selector)
	return &Desk{
		Workspace:  workspace,
		Flashcards: NewFlashcardSession(workspace, client, logger, numCards),
		Quiz:       NewQuizSession(workspace, client, logger, numQuestions),
		Notes:      NewNotesSession(workspace, client, logger),
	}
}

// GenerateAllResult reports the per-tool outcome of a fan-out generation.
// One failing tool never touches the others' results.
type GenerateAllResult struct {
	NotesError      string `json:"notes_error,omitempty"`
	FlashcardsError string `json:"flashcards_error,omitempty"`
	QuizError       string `json:"quiz_error,omitempty"`
}

// GenerateAll runs all three generations concurrently. Errors are collected
// per tool rather than aborting the group: each session is an independent
// state machine and keeps its own error state.
func (d *Desk) GenerateAll(ctx context.Context, numCards, numQuestions int) *GenerateAllResult {
	result := &GenerateAllResult{}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := d.Notes.Generate(ctx); err != nil {
			mu.Lock()
			result.NotesError = err.Error()
			mu.Unlock()
		}
		return nil // continue with others
	})
	g.Go(func() error {
		if err := d.Flashcards.Generate(ctx, numCards); err != nil {
			mu.Lock()
			result.FlashcardsError = err.Error()
			mu.Unlock()
		}
		return nil
	})
	g.Go(func() error {
		if err := d.Quiz.Generate(ctx, numQuestions); err != nil {
			mu.Lock()
			result.QuizError = err.Error()
			mu.Unlock()
		}
		return nil
	})
	_ = g.Wait()
	return result
}
