package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/kisanmitra/kisanmitra/internal/domain"
	"github.com/kisanmitra/kisanmitra/internal/i18n"
	"github.com/kisanmitra/kisanmitra/internal/llm"
	"go.uber.org/zap"
)

// systemInstruction fixes the advisor persona for every streamed turn
const systemInstruction = `You are Kisan Mitra, an intelligent agricultural advisor.
Your primary goal is to help farmers with agriculture, weather, markets, and government schemes.
However, you are helpful and polite, so if the user asks about other topics, you may answer them as well.
Always be concise, practical, and empathetic.`

// Engine drives one conversation against the generative backend: it owns
// turn lifecycle, streaming accumulation, citation extraction, error
// substitution and the at-most-one-in-flight discipline.
type Engine struct {
	backend llm.Client
	logger  *zap.Logger
	conv    *Conversation

	mu     sync.Mutex
	closed bool
}

// NewEngine creates an engine with a fresh, empty conversation
func NewEngine(backend llm.Client, logger *zap.Logger) *Engine {
	return &Engine{
		backend: backend,
		logger:  logger,
		conv:    NewConversation(),
	}
}

// Conversation returns a deep-copy snapshot of the conversation
func (e *Engine) Conversation() []domain.Turn {
	return e.conv.Snapshot()
}

// InFlight reports whether a model turn is currently streaming
func (e *Engine) InFlight() bool {
	return e.conv.InFlight()
}

// Close tears the engine down. A stream still in flight keeps draining but
// its results are silently dropped; they are never applied to the dead
// conversation. The underlying transport is not cancelled.
func (e *Engine) Close() {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
	e.conv.Reset()
}

func (e *Engine) isClosed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}

// SubmitTurn submits one user turn. It rejects empty submissions and
// submissions while a turn is in flight with sentinel errors; callers are
// expected to treat both as silent no-ops. On acceptance the user turn and
// an empty pending model turn are appended atomically, and the returned
// channel carries a full snapshot of the model turn after every applied
// stream update, ending with the settled turn; the channel is then closed.
func (e *Engine) SubmitTurn(ctx context.Context, req domain.SubmitRequest) (<-chan domain.Turn, error) {
	prompt := strings.TrimSpace(req.Message)
	if prompt == "" && req.Image == nil {
		return nil, domain.ErrEmptySubmission
	}

	lang, ok := i18n.ByCode(req.Language)
	if !ok {
		lang = i18n.Default()
	}
	errMessage := i18n.Lookup(lang.Code).Chat.Error

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil, domain.ErrSessionClosed
	}
	// History is captured before the new pair is appended, filtered of
	// pending and whitespace-only turns; images are not replayed.
	history := e.conv.History()
	if err := e.conv.Begin(domain.Turn{
		Segments: []domain.Segment{{Text: req.Message}},
		Image:    req.Image,
	}); err != nil {
		e.mu.Unlock()
		return nil, err
	}
	e.mu.Unlock()

	outbound := buildRequest(history, prompt, req.Image, lang.Name, req.UseSearch)

	updates := make(chan domain.Turn, 100)
	stream, err := e.backend.StreamGenerate(ctx, outbound)
	if err != nil {
		e.logger.Error("chat stream failed to start", zap.Error(err))
		e.conv.Fail(errMessage)
		e.publish(updates)
		close(updates)
		return updates, nil
	}

	go e.consume(stream, updates, errMessage)
	return updates, nil
}

// consume applies stream chunks in arrival order. After teardown the stream
// is drained to completion but no further state is applied or published.
func (e *Engine) consume(stream <-chan llm.StreamChunk, updates chan<- domain.Turn, errMessage string) {
	defer close(updates)

	failed := false
	for chunk := range stream {
		if e.isClosed() || failed {
			continue
		}
		if chunk.Err != nil {
			e.logger.Error("chat stream failed", zap.Error(chunk.Err))
			e.conv.Fail(errMessage)
			e.publish(updates)
			failed = true
			continue
		}
		if chunk.Text != "" {
			e.conv.AppendText(chunk.Text)
		}
		e.conv.ReplaceCitations(chunk.Citations)
		e.publish(updates)
	}

	if e.isClosed() || failed {
		return
	}
	e.conv.Settle()
	e.publish(updates)
}

// publish sends the latest model-turn snapshot without blocking; when the
// observer has fallen behind the intermediate update is dropped, the
// conversation itself stays the source of truth.
func (e *Engine) publish(updates chan<- domain.Turn) {
	t, ok := e.conv.Last()
	if !ok {
		return
	}
	select {
	case updates <- t:
	default:
	}
}

// buildRequest assembles the outbound streaming request: prior history as
// text-only turns, then the new user turn with the optional inline image
// and the prompt wrapped in an explicit language directive.
func buildRequest(history []domain.Turn, prompt string, image *domain.ImageAttachment, languageName string, useSearch bool) llm.StreamRequest {
	contents := make([]llm.Content, 0, len(history)+1)
	for _, t := range history {
		parts := make([]llm.Part, 0, len(t.Segments))
		for _, s := range t.Segments {
			parts = append(parts, llm.Part{Text: s.Text})
		}
		contents = append(contents, llm.Content{Role: string(t.Role), Parts: parts})
	}

	var parts []llm.Part
	if image != nil {
		parts = append(parts, llm.Part{InlineData: &llm.Blob{
			Data:     image.Data,
			MIMEType: image.MIMEType,
		}})
	}
	parts = append(parts, llm.Part{
		Text: fmt.Sprintf("Respond in %s. %s", languageName, prompt),
	})
	contents = append(contents, llm.Content{Role: string(domain.RoleUser), Parts: parts})

	return llm.StreamRequest{
		Contents:          contents,
		SystemInstruction: systemInstruction,
		UseSearch:         useSearch,
	}
}
