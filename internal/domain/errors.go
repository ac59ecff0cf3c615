package domain

import "errors"

var (
	// ErrNoDocument is returned when a study tool is used before any
	// document has been uploaded (or the last upload failed extraction).
	ErrNoDocument = errors.New("no document loaded")

	// ErrGenerationInFlight is returned when Generate is called while a
	// previous generation for the same session is still running.
	ErrGenerationInFlight = errors.New("generation already in progress")

	// ErrNoItems is returned by navigation and export operations on a
	// session that has nothing generated yet.
	ErrNoItems = errors.New("nothing generated yet")

	// ErrAnswerRequired is returned by quiz Advance when the current
	// question has not been answered.
	ErrAnswerRequired = errors.New("answer the current question first")

	// ErrInvalidOption is returned by quiz SelectAnswer for an option
	// index outside the current question's options.
	ErrInvalidOption = errors.New("option index out of range")

	// ErrQuizCompleted is returned for answer/advance calls after the quiz
	// reached its terminal completed state.
	ErrQuizCompleted = errors.New("quiz already completed")
)
