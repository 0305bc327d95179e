// Package speech wraps a continuous speech-to-text capability behind a
// capability interface, so capture-dependent code paths are testable and
// environments without recognition simply report the capability as absent.
package speech

import "errors"

// ErrUnsupported indicates the running environment has no recognition capability
var ErrUnsupported = errors.New("speech recognition not supported")

// ErrorCode is the coarse category of a capture failure
type ErrorCode string

const (
	// ErrorPermissionDenied indicates microphone access was denied
	ErrorPermissionDenied ErrorCode = "permission-denied"
	// ErrorNetwork indicates a recognition transport failure
	ErrorNetwork ErrorCode = "network"
	// ErrorOther covers everything else
	ErrorOther ErrorCode = "other"
)

// Events are the callbacks a recognizer delivers results through. OnResult
// fires once per finalized transcript segment. OnEnd signals a benign end
// of stream; OnError a failure that stops recognition.
type Events struct {
	OnResult func(transcript string)
	OnEnd    func()
	OnError  func(code ErrorCode)
}

// Recognizer is the injected speech-to-text capability
type Recognizer interface {
	Supported() bool
	Start(languageTag string, ev Events) error
	Stop()
}

// Unsupported is the recognizer for environments without speech capture.
// Dependent controls are expected to hide or disable themselves.
type Unsupported struct{}

// Supported always reports false
func (Unsupported) Supported() bool { return false }

// Start always fails
func (Unsupported) Start(string, Events) error { return ErrUnsupported }

// Stop is a no-op
func (Unsupported) Stop() {}
