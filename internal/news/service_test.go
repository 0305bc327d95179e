package news

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kisanmitra/kisanmitra/internal/domain"
	"github.com/kisanmitra/kisanmitra/internal/llm"
	"go.uber.org/zap"
)

type fakeBackend struct {
	text     string
	err      error
	lastOnce llm.OnceRequest
}

func (f *fakeBackend) StreamGenerate(context.Context, llm.StreamRequest) (<-chan llm.StreamChunk, error) {
	return nil, errors.New("not used")
}

func (f *fakeBackend) GenerateOnce(_ context.Context, req llm.OnceRequest) (string, error) {
	f.lastOnce = req
	return f.text, f.err
}

func TestServiceRefreshParsesBackendText(t *testing.T) {
	backend := &fakeBackend{text: "- Wheat: ₹2400/q - MP (Up)\n- Heavy rain forecast for Mumbai."}
	s := NewService(backend, zap.NewNop())

	items := s.Refresh(context.Background(), "English")
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Category != domain.NewsCategoryMarket || items[1].Category != domain.NewsCategoryWeather {
		t.Errorf("unexpected categories: %+v", items)
	}
}

func TestServiceRefreshPromptCarriesLanguageAndSearch(t *testing.T) {
	backend := &fakeBackend{text: ""}
	s := NewService(backend, zap.NewNop())

	s.Refresh(context.Background(), "Hindi")

	if !backend.lastOnce.UseSearch {
		t.Error("news refresh must request search grounding")
	}
	if !strings.Contains(backend.lastOnce.Prompt, "Respond ONLY in Hindi") {
		t.Errorf("prompt must name the target language, got: %s", backend.lastOnce.Prompt)
	}
	if !strings.HasPrefix(backend.lastOnce.Prompt, "[Request ID: ") {
		t.Errorf("prompt must lead with a request discriminator, got: %s", backend.lastOnce.Prompt)
	}
}

func TestServiceRefreshPromptsDiffer(t *testing.T) {
	backend := &fakeBackend{text: ""}
	s := NewService(backend, zap.NewNop())

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		s.Refresh(context.Background(), "English")
		seen[backend.lastOnce.Prompt] = true
	}
	if len(seen) < 2 {
		t.Error("consecutive refresh prompts should differ in their request ID")
	}
}

func TestServiceRefreshBackendFailureYieldsEmptyBatch(t *testing.T) {
	backend := &fakeBackend{err: errors.New("quota exceeded")}
	s := NewService(backend, zap.NewNop())

	items := s.Refresh(context.Background(), "English")
	if len(items) != 0 {
		t.Errorf("backend failure must yield an empty batch, got %d items", len(items))
	}
}
