package chat

import (
	"strings"
	"sync"
)

// Composer is the pending input buffer for one session. Finalized voice
// transcripts are appended to whatever the farmer has already typed; the
// buffer is consumed whole on submission. It runs independently of any
// in-flight stream: transcripts arriving during a model turn simply queue
// into the next submission's text.
type Composer struct {
	mu   sync.Mutex
	text string
}

// NewComposer creates an empty composer
func NewComposer() *Composer {
	return &Composer{}
}

// Set replaces the buffered text
func (c *Composer) Set(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
}

// AppendTranscript appends a finalized transcript segment, separated from
// existing text by a single space
func (c *Composer) AppendTranscript(transcript string) {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.text == "" {
		c.text = transcript
		return
	}
	c.text += " " + transcript
}

// Text returns the buffered text
func (c *Composer) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// Take returns the buffered text and clears the buffer
func (c *Composer) Take() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	text := c.text
	c.text = ""
	return text
}

// Clear discards the buffered text
func (c *Composer) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = ""
}
