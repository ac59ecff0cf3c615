package study

import (
	"context"

	"study-desk/internal/domain"
)

// NotesSession accumulates note content. Unlike the other tools, generation
// is additive: each AI summary is appended to the document and logged as an
// annotation, never replacing what is already there. The host (the editor
// surface) may replace the body wholesale through UpdateContent.
type NotesSession struct {
	session
	client domain.GenerationClient

	content     string
	annotations []string
}

// NotesView is a read-only snapshot of the session for the HTTP layer.
type NotesView struct {
	State       domain.GenerationState `json:"state"`
	LastError   string                 `json:"last_error,omitempty"`
	Content     string                 `json:"content"`
	Annotations []string               `json:"ai_annotations"`
}

// NewNotesSession creates a notes session bound to the workspace.
func NewNotesSession(workspace *Workspace, client domain.GenerationClient, logger domain.Logger) *NotesSession {
	n := &NotesSession{
		session: newSession(workspace, logger),
		client:  client,
	}
	n.reset = func() {
		n.content = ""
		n.annotations = nil
	}
	return n
}

// Generate asks the service for a summary of the document text and appends
// it to the accumulated notes.
func (n *NotesSession) Generate(ctx context.Context) error {
	text, version, err := n.beginGenerate()
	if err != nil {
		return err
	}

	summary, genErr := n.client.GenerateNotes(ctx, text)
	if genErr != nil {
		n.logger.Error("Note generation failed", genErr)
	}
	n.finishGenerate(version, genErr, func() {
		if n.content != "" {
			n.content += "\n"
		}
		n.content += summary
		n.annotations = append(n.annotations, summary)
	})
	return genErr
}

// UpdateContent replaces the note body with the user's edited version. The
// annotation log is untouched; it records what the AI inserted, not what
// the user kept.
func (n *NotesSession) UpdateContent(content string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.syncLocked()
	n.content = content
}

// Snapshot returns the session state for rendering.
func (n *NotesSession) Snapshot() NotesView {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.syncLocked()

	annotations := make([]string, len(n.annotations))
	copy(annotations, n.annotations)
	return NotesView{
		State:       n.state,
		LastError:   n.lastError,
		Content:     n.content,
		Annotations: annotations,
	}
}

// ExportHTML serializes the notes to notes.html. Pure read.
func (n *NotesSession) ExportHTML() *ExportFile {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.syncLocked()

	return &ExportFile{
		Filename: "notes.html",
		MIMEType: "text/html",
		Content:  []byte(n.content),
	}
}

// ExportText serializes the notes to notes.txt with markup stripped.
func (n *NotesSession) ExportText() *ExportFile {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.syncLocked()

	return &ExportFile{
		Filename: "notes.txt",
		MIMEType: "text/plain",
		Content:  []byte(stripHTML(n.content)),
	}
}
