package chat

import (
	"strings"
	"sync"

	"github.com/kisanmitra/kisanmitra/internal/domain"
)

// Conversation is the ordered sequence of turns for one advisory session.
// It is owned by exactly one Engine and mutated only through the transition
// operations below, each of which is atomic under the conversation lock.
//
// Invariants: at most one turn is pending and it is always the last one;
// the in-flight flag is set exactly while a model turn is streaming.
type Conversation struct {
	mu       sync.Mutex
	turns    []domain.Turn
	inFlight bool
}

// NewConversation creates an empty conversation
func NewConversation() *Conversation {
	return &Conversation{}
}

// Begin appends a settled user turn and an empty pending model turn in one
// atomic step and acquires the in-flight guard. Returns ErrTurnInFlight if
// a model turn is already streaming.
func (c *Conversation) Begin(user domain.Turn) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inFlight {
		return domain.ErrTurnInFlight
	}

	user.Role = domain.RoleUser
	user.Pending = false
	c.turns = append(c.turns,
		user,
		domain.Turn{Role: domain.RoleModel, Pending: true},
	)
	c.inFlight = true
	return nil
}

// AppendText appends a streamed text delta to the pending turn. The first
// delta materializes the turn's single growing segment; text only ever
// grows, it is never reordered or truncated.
func (c *Conversation) AppendText(delta string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.pendingLocked()
	if t == nil {
		return
	}
	if len(t.Segments) == 0 {
		t.Segments = []domain.Segment{{}}
	}
	t.Segments[0].Text += delta
}

// ReplaceCitations replaces the pending turn's citation set wholesale.
// Empty sets are ignored: the latest non-empty set observed during the
// stream wins, mirroring the backend's incremental grounding refinement.
func (c *Conversation) ReplaceCitations(citations []domain.Citation) {
	if len(citations) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.pendingLocked()
	if t == nil {
		return
	}
	if len(t.Segments) == 0 {
		t.Segments = []domain.Segment{{}}
	}
	t.Segments[0].Citations = append([]domain.Citation(nil), citations...)
}

// Settle marks the pending turn as complete with whatever accumulated and
// releases the in-flight guard. Empty accumulated text is not an error.
func (c *Conversation) Settle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t := c.pendingLocked(); t != nil {
		t.Pending = false
	}
	c.inFlight = false
}

// Fail replaces the pending turn wholesale with a settled turn carrying the
// given error message and releases the in-flight guard. Partial text already
// accumulated is deliberately discarded.
func (c *Conversation) Fail(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t := c.pendingLocked(); t != nil {
		*t = domain.Turn{
			Role:     domain.RoleModel,
			Segments: []domain.Segment{{Text: message}},
		}
	}
	c.inFlight = false
}

// Reset discards all turns and clears the in-flight guard
func (c *Conversation) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns = nil
	c.inFlight = false
}

// Snapshot returns a deep copy of all turns
func (c *Conversation) Snapshot() []domain.Turn {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.Turn, len(c.turns))
	for i, t := range c.turns {
		out[i] = t.Clone()
	}
	return out
}

// Last returns a deep copy of the last turn, if any
func (c *Conversation) Last() (domain.Turn, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.turns) == 0 {
		return domain.Turn{}, false
	}
	return c.turns[len(c.turns)-1].Clone(), true
}

// InFlight reports whether a model turn is currently streaming
func (c *Conversation) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// Len returns the number of turns
func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.turns)
}

// History returns deep copies of the turns that may be sent to the backend:
// pending turns and turns with only empty or whitespace text are filtered
// out, guarding against malformed outbound requests.
func (c *Conversation) History() []domain.Turn {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []domain.Turn
	for _, t := range c.turns {
		if t.Pending || !hasText(t) {
			continue
		}
		out = append(out, t.Clone())
	}
	return out
}

func hasText(t domain.Turn) bool {
	for _, s := range t.Segments {
		if strings.TrimSpace(s.Text) != "" {
			return true
		}
	}
	return false
}

// pendingLocked returns the pending turn, which is always the last one.
// Callers must hold c.mu.
func (c *Conversation) pendingLocked() *domain.Turn {
	if len(c.turns) == 0 {
		return nil
	}
	t := &c.turns[len(c.turns)-1]
	if !t.Pending {
		return nil
	}
	return t
}
