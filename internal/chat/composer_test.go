package chat

import "testing"

func TestComposerAppendTranscript(t *testing.T) {
	c := NewComposer()

	c.AppendTranscript("what is the")
	c.AppendTranscript("  wheat price  ")
	if got := c.Text(); got != "what is the wheat price" {
		t.Errorf("expected joined transcript, got %q", got)
	}
}

func TestComposerAppendsToTypedText(t *testing.T) {
	c := NewComposer()

	c.Set("My crop has")
	c.AppendTranscript("yellow leaves")
	if got := c.Text(); got != "My crop has yellow leaves" {
		t.Errorf("expected transcript appended to typed text, got %q", got)
	}
}

func TestComposerIgnoresEmptyTranscript(t *testing.T) {
	c := NewComposer()

	c.Set("hello")
	c.AppendTranscript("   ")
	if got := c.Text(); got != "hello" {
		t.Errorf("whitespace-only transcript must be a no-op, got %q", got)
	}
}

func TestComposerTakeClearsBuffer(t *testing.T) {
	c := NewComposer()

	c.Set("ready to send")
	if got := c.Take(); got != "ready to send" {
		t.Errorf("Take returned %q", got)
	}
	if got := c.Text(); got != "" {
		t.Errorf("buffer should be empty after Take, got %q", got)
	}
}
