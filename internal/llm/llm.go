// Package llm abstracts the generative backend behind a small client
// interface so the chat engine and news service can be tested against a
// fake without network access.
package llm

import (
	"context"

	"github.com/kisanmitra/kisanmitra/internal/domain"
)

// Part is one piece of an outbound content turn: text or inline binary data
type Part struct {
	Text       string
	InlineData *Blob
}

// Blob is inline binary data with its mime type
type Blob struct {
	Data     []byte
	MIMEType string
}

// Content is one ordered turn of an outbound request
type Content struct {
	Role  string
	Parts []Part
}

// StreamRequest is a streaming generation request
type StreamRequest struct {
	Contents          []Content
	SystemInstruction string
	UseSearch         bool
}

// OnceRequest is a single-shot generation request
type OnceRequest struct {
	Prompt    string
	UseSearch bool
}

// StreamChunk is one incremental piece of a streamed response. Citations,
// when non-empty, carry the backend's latest grounding set for the whole
// turn, not a delta. A chunk with Err set is terminal; the channel is
// closed right after.
type StreamChunk struct {
	Text      string
	Citations []domain.Citation
	Err       error
}

// Client is the generative backend consumed by the chat engine and the
// news feed. Backend failures surface as opaque errors with no structured
// code.
type Client interface {
	StreamGenerate(ctx context.Context, req StreamRequest) (<-chan StreamChunk, error)
	GenerateOnce(ctx context.Context, req OnceRequest) (string, error)
}
