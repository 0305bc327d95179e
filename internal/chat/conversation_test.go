package chat

import (
	"testing"

	"github.com/kisanmitra/kisanmitra/internal/domain"
)

func TestConversationBeginAppendsPair(t *testing.T) {
	c := NewConversation()

	err := c.Begin(domain.Turn{Segments: []domain.Segment{{Text: "hello"}}})
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	turns := c.Snapshot()
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].Role != domain.RoleUser || turns[0].Pending {
		t.Errorf("first turn should be a settled user turn: %+v", turns[0])
	}
	if turns[1].Role != domain.RoleModel || !turns[1].Pending {
		t.Errorf("second turn should be a pending model turn: %+v", turns[1])
	}
	if !c.InFlight() {
		t.Error("in-flight guard should be set after Begin")
	}
}

func TestConversationBeginRejectsWhileInFlight(t *testing.T) {
	c := NewConversation()

	if err := c.Begin(domain.Turn{Segments: []domain.Segment{{Text: "one"}}}); err != nil {
		t.Fatalf("first Begin failed: %v", err)
	}
	if err := c.Begin(domain.Turn{Segments: []domain.Segment{{Text: "two"}}}); err != domain.ErrTurnInFlight {
		t.Fatalf("expected ErrTurnInFlight, got %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("rejected submission must not change conversation length, got %d", c.Len())
	}
}

func TestConversationPendingIsAlwaysLast(t *testing.T) {
	c := NewConversation()
	c.Begin(domain.Turn{Segments: []domain.Segment{{Text: "q1"}}})
	c.AppendText("a1")
	c.Settle()
	c.Begin(domain.Turn{Segments: []domain.Segment{{Text: "q2"}}})

	turns := c.Snapshot()
	pending := 0
	for i, turn := range turns {
		if turn.Pending {
			pending++
			if i != len(turns)-1 {
				t.Errorf("pending turn at index %d, want last (%d)", i, len(turns)-1)
			}
		}
	}
	if pending != 1 {
		t.Errorf("expected exactly 1 pending turn, got %d", pending)
	}
}

func TestConversationAppendTextGrowsMonotonically(t *testing.T) {
	c := NewConversation()
	c.Begin(domain.Turn{Segments: []domain.Segment{{Text: "q"}}})

	prev := 0
	for _, delta := range []string{"Hel", "lo", " farmer"} {
		c.AppendText(delta)
		last, _ := c.Last()
		if len(last.Segments) != 1 {
			t.Fatalf("pending turn should have exactly one growing segment, got %d", len(last.Segments))
		}
		if len(last.Text()) < prev {
			t.Fatalf("accumulated text shrank: %d -> %d", prev, len(last.Text()))
		}
		prev = len(last.Text())
	}

	last, _ := c.Last()
	if last.Text() != "Hello farmer" {
		t.Errorf("expected accumulated text %q, got %q", "Hello farmer", last.Text())
	}
}

func TestConversationCitationsReplacedNotAccumulated(t *testing.T) {
	c := NewConversation()
	c.Begin(domain.Turn{Segments: []domain.Segment{{Text: "q"}}})
	c.AppendText("answer")

	setA := []domain.Citation{{URI: "https://a.example", Title: "A"}}
	setB := []domain.Citation{
		{URI: "https://b1.example", Title: "B1"},
		{URI: "https://b2.example", Title: "B2"},
	}

	c.ReplaceCitations(setA)
	c.ReplaceCitations(setB)
	c.ReplaceCitations(nil) // empty set must not clear the latest
	c.Settle()

	last, _ := c.Last()
	got := last.Segments[0].Citations
	if len(got) != 2 || got[0].URI != "https://b1.example" || got[1].URI != "https://b2.example" {
		t.Errorf("expected citations to equal set B, got %+v", got)
	}
}

func TestConversationFailReplacesPartialText(t *testing.T) {
	c := NewConversation()
	c.Begin(domain.Turn{Segments: []domain.Segment{{Text: "q"}}})
	c.AppendText("Hel")

	c.Fail("Sorry, I encountered an error. Please try again.")

	last, _ := c.Last()
	if last.Pending {
		t.Error("failed turn should be settled")
	}
	if last.Text() != "Sorry, I encountered an error. Please try again." {
		t.Errorf("partial text must be fully replaced by the error message, got %q", last.Text())
	}
	if c.InFlight() {
		t.Error("in-flight guard should be cleared after Fail")
	}
	if c.Len() != 2 {
		t.Errorf("Fail must replace, not append: got %d turns", c.Len())
	}
}

func TestConversationHistoryFiltersPendingAndWhitespace(t *testing.T) {
	c := NewConversation()

	c.Begin(domain.Turn{Segments: []domain.Segment{{Text: "first question"}}})
	c.AppendText("   ") // model produced only whitespace
	c.Settle()
	c.Begin(domain.Turn{Segments: []domain.Segment{{Text: "second question"}}})

	history := c.History()
	if len(history) != 2 {
		t.Fatalf("expected 2 history turns, got %d", len(history))
	}
	if history[0].Text() != "first question" || history[1].Text() != "second question" {
		t.Errorf("unexpected history contents: %+v", history)
	}
	for _, turn := range history {
		if turn.Pending {
			t.Error("history must not contain pending turns")
		}
	}
}

func TestConversationReset(t *testing.T) {
	c := NewConversation()
	c.Begin(domain.Turn{Segments: []domain.Segment{{Text: "q"}}})
	c.Reset()

	if c.Len() != 0 {
		t.Errorf("expected empty conversation after reset, got %d turns", c.Len())
	}
	if c.InFlight() {
		t.Error("in-flight guard should be cleared by reset")
	}
}

func TestConversationSnapshotIsCopy(t *testing.T) {
	c := NewConversation()
	c.Begin(domain.Turn{Segments: []domain.Segment{{Text: "hello"}}})

	snap := c.Snapshot()
	snap[0].Segments[0].Text = "modified"

	original := c.Snapshot()
	if original[0].Segments[0].Text != "hello" {
		t.Error("Snapshot should return deep copies, not the underlying turns")
	}
}
