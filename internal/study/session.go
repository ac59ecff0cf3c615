package study

import (
	"sync"

	"study-desk/internal/domain"
)

// session is the state-machine core shared by the three study tools: the
// generation lifecycle (idle -> generating -> idle|error) plus tracking of
// the document version the current items were derived from.
//
// Every transition happens under the session mutex. A generation call runs
// with the mutex released so the rest of the session (and every other
// session) stays responsive; its result is applied only if the document has
// not been replaced in the meantime.
type session struct {
	mu        sync.Mutex
	workspace *Workspace
	logger    domain.Logger

	state       domain.GenerationState
	lastError   string
	textVersion uint64

	// reset clears the owning tool's derived state (items, index, score).
	// Called with the mutex held whenever the document version changes.
	reset func()
}

func newSession(workspace *Workspace, logger domain.Logger) session {
	return session{
		workspace: workspace,
		logger:    logger,
		state:     domain.StateIdle,
	}
}

// syncLocked discards derived state if the workspace moved to a new
// document since this session last looked. Mutex must be held.
func (s *session) syncLocked() {
	version := s.workspace.Version()
	if version == s.textVersion {
		return
	}
	s.textVersion = version
	s.state = domain.StateIdle
	s.lastError = ""
	s.reset()
}

// beginGenerate checks preconditions and moves the session to generating.
// It returns the text snapshot the generation call should use and the
// document version that snapshot belongs to.
func (s *session) beginGenerate() (string, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncLocked()

	if s.state == domain.StateGenerating {
		return "", 0, domain.ErrGenerationInFlight
	}

	text, version := s.workspace.Snapshot()
	if text == "" {
		// Not a network problem: generation is simply disabled until a
		// document is uploaded.
		s.state = domain.StateError
		s.lastError = domain.ErrNoDocument.Error()
		return "", 0, domain.ErrNoDocument
	}

	s.state = domain.StateGenerating
	return text, version, nil
}

// finishGenerate applies a generation outcome. A result that raced with a
// document replacement is discarded: the new document invalidated it.
// apply runs with the mutex held and must only replace the tool's items.
func (s *session) finishGenerate(version uint64, genErr error, apply func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.workspace.Version() != version {
		s.logger.Debug("Discarding stale generation result", "version", version)
		s.textVersion = s.workspace.Version()
		s.state = domain.StateIdle
		s.lastError = ""
		s.reset()
		return
	}

	if genErr != nil {
		// Items from a prior successful run are preserved: a failed
		// regeneration must not destroy them.
		s.state = domain.StateError
		s.lastError = genErr.Error()
		return
	}

	apply()
	s.state = domain.StateIdle
	s.lastError = ""
}

// clampIndex keeps idx within [0, length-1]; -1 for an empty list.
func clampIndex(idx, length int) int {
	if length == 0 {
		return -1
	}
	if idx < 0 {
		return 0
	}
	if idx >= length {
		return length - 1
	}
	return idx
}
