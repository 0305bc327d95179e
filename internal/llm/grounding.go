package llm

import (
	"github.com/kisanmitra/kisanmitra/internal/domain"
	"google.golang.org/genai"
)

// extractCitations pulls web grounding references out of a response chunk.
// Returns nil when the chunk carries no grounding metadata; a non-empty
// result is the backend's current citation set for the whole turn.
func extractCitations(resp *genai.GenerateContentResponse) []domain.Citation {
	if len(resp.Candidates) == 0 {
		return nil
	}
	gm := resp.Candidates[0].GroundingMetadata
	if gm == nil || len(gm.GroundingChunks) == 0 {
		return nil
	}

	var citations []domain.Citation
	for _, gc := range gm.GroundingChunks {
		if gc.Web == nil {
			continue
		}
		citations = append(citations, domain.Citation{
			URI:   gc.Web.URI,
			Title: gc.Web.Title,
		})
	}
	return citations
}
