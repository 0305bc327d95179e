package domain

// NewsCategory classifies a news item
type NewsCategory string

const (
	// NewsCategoryMarket covers mandi prices and commodity rates
	NewsCategoryMarket NewsCategory = "market"
	// NewsCategoryWeather covers rain, storm and monsoon updates
	NewsCategoryWeather NewsCategory = "weather"
	// NewsCategoryGeneral is everything else
	NewsCategoryGeneral NewsCategory = "general"
)

// NewsItem is one classified entry of the market/weather feed. A batch is
// produced per refresh and wholly replaced by the next; items are never
// merged or deduplicated across refreshes.
type NewsItem struct {
	Category NewsCategory `json:"category"`
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	Source   string       `json:"source,omitempty"`
}

// RefreshNewsRequest asks for a fresh news batch in the given language
type RefreshNewsRequest struct {
	Language string `json:"language" binding:"required"`
}
