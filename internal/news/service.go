package news

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/kisanmitra/kisanmitra/internal/domain"
	"github.com/kisanmitra/kisanmitra/internal/llm"
	"go.uber.org/zap"
)

// Service fetches and parses the agricultural news feed. Each refresh is a
// fresh single-shot backend call; the previous batch is wholly discarded.
type Service struct {
	backend llm.Client
	logger  *zap.Logger
}

// NewService creates a news service
func NewService(backend llm.Client, logger *zap.Logger) *Service {
	return &Service{backend: backend, logger: logger}
}

// Refresh fetches a fresh batch of news in the given language. A backend
// failure and an unparseable response both yield an empty batch: callers
// treat the two identically as "no data available" and offer a manual
// retry, never an automatic one.
func (s *Service) Refresh(ctx context.Context, languageName string) []domain.NewsItem {
	text, err := s.backend.GenerateOnce(ctx, llm.OnceRequest{
		Prompt:    buildPrompt(languageName),
		UseSearch: true,
	})
	if err != nil {
		s.logger.Error("news fetch failed", zap.String("language", languageName), zap.Error(err))
		return nil
	}
	return Parse(text)
}

// buildPrompt assembles the news prompt. The random request ID embedded up
// front only defeats upstream response caching; it is not part of the data
// contract.
func buildPrompt(languageName string) string {
	requestID := rand.IntN(1000000)

	return fmt.Sprintf(`[Request ID: %d] You are an agricultural news bot.
Task: Fetch latest data from Agmarknet (Prices) and Skymet (Weather).

STRICT RULES:
1. TOPICS: ONLY Market Rates (Mandi prices for crops) and Weather (Rain, Heat, Storm). NO government schemes. NO pest warnings.
2. LANGUAGE: Respond ONLY in %[2]s. Do NOT mix languages.
   - If Hindi, use Hindi script.
   - If English, use English.
3. FORMAT: 3 to 4 short bullet points. Text-only. No emojis. Total length under 400 characters.

If real-time data is unavailable, provide general seasonal market rates and weather trends for India in %[2]s.

Example Output (%[2]s):
- Wheat: ₹2400/q - MP (Up)
- Cotton: ₹6000/q - Gujarat
- Heavy rain forecast for Mumbai.

Generate list now:`, requestID, languageName)
}
