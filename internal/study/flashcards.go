package study

import (
	"context"

	"study-desk/internal/domain"
)

// FlashcardSession manages a deck of generated cards: navigation, flipping
// and CSV export.
type FlashcardSession struct {
	session
	client       domain.GenerationClient
	defaultCount int

	cards        []domain.FlashCard
	currentIndex int
	flipped      bool
}

// FlashcardView is a read-only snapshot of the session for the HTTP layer.
type FlashcardView struct {
	State        domain.GenerationState `json:"state"`
	LastError    string                 `json:"last_error,omitempty"`
	Cards        []domain.FlashCard     `json:"cards"`
	CurrentIndex int                    `json:"current_index"`
	Flipped      bool                   `json:"flipped"`
}

// NewFlashcardSession creates a flashcard session bound to the workspace.
func NewFlashcardSession(workspace *Workspace, client domain.GenerationClient, logger domain.Logger, defaultCount int) *FlashcardSession {
	f := &FlashcardSession{
		session:      newSession(workspace, logger),
		client:       client,
		defaultCount: defaultCount,
	}
	f.reset = func() {
		f.cards = nil
		f.currentIndex = 0
		f.flipped = false
	}
	return f
}

// Generate replaces the deck with freshly generated cards. A failed call
// leaves any existing deck untouched.
func (f *FlashcardSession) Generate(ctx context.Context, count int) error {
	if count <= 0 {
		count = f.defaultCount
	}

	text, version, err := f.beginGenerate()
	if err != nil {
		return err
	}

	cards, genErr := f.client.GenerateFlashcards(ctx, text, count)
	if genErr != nil {
		f.logger.Error("Flashcard generation failed", genErr, "count", count)
	}
	f.finishGenerate(version, genErr, func() {
		f.cards = cards
		f.currentIndex = 0
		f.flipped = false
	})
	return genErr
}

// Next moves to the following card. Navigation clamps silently and always
// lands on the question side.
func (f *FlashcardSession) Next() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.syncLocked()
	f.moveLocked(f.currentIndex + 1)
}

// Previous moves to the preceding card.
func (f *FlashcardSession) Previous() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.syncLocked()
	f.moveLocked(f.currentIndex - 1)
}

func (f *FlashcardSession) moveLocked(target int) {
	if len(f.cards) == 0 {
		return
	}
	f.currentIndex = clampIndex(target, len(f.cards))
	f.flipped = false
}

// Flip toggles between question and answer side of the current card.
func (f *FlashcardSession) Flip() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.syncLocked()
	if len(f.cards) == 0 {
		return
	}
	f.flipped = !f.flipped
}

// Snapshot returns the session state for rendering.
func (f *FlashcardSession) Snapshot() FlashcardView {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.syncLocked()

	cards := make([]domain.FlashCard, len(f.cards))
	copy(cards, f.cards)
	return FlashcardView{
		State:        f.state,
		LastError:    f.lastError,
		Cards:        cards,
		CurrentIndex: f.currentIndex,
		Flipped:      f.flipped,
	}
}

// ExportCSV serializes the deck to flashcards.csv. Pure read: session state
// is not touched.
func (f *FlashcardSession) ExportCSV() (*ExportFile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.syncLocked()

	if len(f.cards) == 0 {
		return nil, domain.ErrNoItems
	}
	return &ExportFile{
		Filename: "flashcards.csv",
		MIMEType: "text/csv",
		Content:  flashcardsCSV(f.cards),
	}, nil
}
