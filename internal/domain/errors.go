package domain

import "errors"

var (
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidRequest indicates invalid request
	ErrInvalidRequest = errors.New("invalid request")
	// ErrEmptySubmission indicates a chat submission with no text and no image
	ErrEmptySubmission = errors.New("empty submission")
	// ErrTurnInFlight indicates a submission while a model turn is still streaming
	ErrTurnInFlight = errors.New("a turn is already in flight")
	// ErrSessionClosed indicates an operation on a torn-down session
	ErrSessionClosed = errors.New("session closed")
)
