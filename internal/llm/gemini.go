package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Gemini is the production Client backed by the Gemini API
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini client for the given API key and model
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// StreamGenerate starts a streaming generation and forwards chunks on the
// returned channel until the stream ends or fails
func (g *Gemini) StreamGenerate(ctx context.Context, req StreamRequest) (<-chan StreamChunk, error) {
	contents := toGenaiContents(req.Contents)

	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemInstruction}},
		}
	}
	if req.UseSearch {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	ch := make(chan StreamChunk, 100)
	go func() {
		defer close(ch)
		for resp, err := range g.client.Models.GenerateContentStream(ctx, g.model, contents, cfg) {
			if err != nil {
				ch <- StreamChunk{Err: err}
				return
			}
			ch <- StreamChunk{
				Text:      resp.Text(),
				Citations: extractCitations(resp),
			}
		}
	}()
	return ch, nil
}

// GenerateOnce performs a single-shot generation and returns the full text
func (g *Gemini) GenerateOnce(ctx context.Context, req OnceRequest) (string, error) {
	cfg := &genai.GenerateContentConfig{}
	if req.UseSearch {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}
	return resp.Text(), nil
}

func toGenaiContents(contents []Content) []*genai.Content {
	out := make([]*genai.Content, 0, len(contents))
	for _, c := range contents {
		parts := make([]*genai.Part, 0, len(c.Parts))
		for _, p := range c.Parts {
			if p.InlineData != nil {
				parts = append(parts, &genai.Part{
					InlineData: &genai.Blob{
						Data:     p.InlineData.Data,
						MIMEType: p.InlineData.MIMEType,
					},
				})
				continue
			}
			parts = append(parts, &genai.Part{Text: p.Text})
		}
		out = append(out, &genai.Content{Role: c.Role, Parts: parts})
	}
	return out
}
