package speech

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// restartDelay spaces out auto-restarts after a benign end of stream,
// preventing rapid loops when something is wrong
const restartDelay = 200 * time.Millisecond

// Capture manages continuous listening over a Recognizer: it tracks the
// listening state, restarts after benign end-of-stream conditions, stops
// permanently once an error has been recorded, and fans finalized
// transcripts into the given callback.
type Capture struct {
	rec          Recognizer
	onTranscript func(transcript string)
	logger       *zap.Logger

	mu        sync.Mutex
	listening bool
	language  string
	errCode   ErrorCode
}

// NewCapture creates a capture over the given recognizer
func NewCapture(rec Recognizer, onTranscript func(string), logger *zap.Logger) *Capture {
	return &Capture{
		rec:          rec,
		onTranscript: onTranscript,
		logger:       logger,
	}
}

// Supported reports whether the environment can capture speech at all
func (c *Capture) Supported() bool {
	return c.rec.Supported()
}

// Listening reports whether capture is active
func (c *Capture) Listening() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listening
}

// Err returns the recorded error category, if any
func (c *Capture) Err() (ErrorCode, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errCode, c.errCode != ""
}

// Start begins listening in the given language. A previously recorded
// error is cleared: explicit re-initiation is the only way out of the
// stopped-on-error state.
func (c *Capture) Start(languageTag string) error {
	if !c.rec.Supported() {
		return ErrUnsupported
	}

	c.mu.Lock()
	if c.listening {
		c.mu.Unlock()
		return nil
	}
	c.errCode = ""
	c.language = languageTag
	c.listening = true
	c.mu.Unlock()

	if err := c.rec.Start(languageTag, c.events()); err != nil {
		c.mu.Lock()
		c.listening = false
		c.mu.Unlock()
		return err
	}
	return nil
}

// Stop ends listening
func (c *Capture) Stop() {
	c.mu.Lock()
	wasListening := c.listening
	c.listening = false
	c.mu.Unlock()

	if wasListening {
		c.rec.Stop()
	}
}

// Toggle starts or stops listening
func (c *Capture) Toggle(languageTag string) error {
	if c.Listening() {
		c.Stop()
		return nil
	}
	return c.Start(languageTag)
}

func (c *Capture) events() Events {
	return Events{
		OnResult: func(transcript string) {
			if transcript == "" {
				return
			}
			c.onTranscript(transcript)
		},
		OnError: func(code ErrorCode) {
			c.logger.Warn("speech capture error", zap.String("code", string(code)))
			c.mu.Lock()
			c.errCode = code
			c.listening = false
			c.mu.Unlock()
		},
		OnEnd: func() {
			c.mu.Lock()
			restart := c.listening && c.errCode == ""
			if !restart {
				c.listening = false
			}
			c.mu.Unlock()

			if restart {
				time.AfterFunc(restartDelay, c.restart)
			}
		},
	}
}

// restart resumes listening after a benign end, unless the capture was
// stopped or failed in the meantime
func (c *Capture) restart() {
	c.mu.Lock()
	if !c.listening || c.errCode != "" {
		c.mu.Unlock()
		return
	}
	language := c.language
	c.mu.Unlock()

	if err := c.rec.Start(language, c.events()); err != nil {
		c.logger.Warn("speech capture restart failed", zap.Error(err))
		c.mu.Lock()
		c.listening = false
		c.mu.Unlock()
	}
}
