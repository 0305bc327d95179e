// Package news turns the backend's freeform multilingual news text into a
// small, classified feed of market and weather items.
package news

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kisanmitra/kisanmitra/internal/domain"
)

const (
	// maxItems bounds a parsed batch
	maxItems = 4
	// minLineLen is the cleaned length below which a line is treated as noise
	minLineLen = 5
	// titleWords is the word budget for a derived display title
	titleWords = 6
	// sourceLabel is the fixed source attached to every parsed item
	sourceLabel = "Agri Update"
)

// bulletPrefix strips a leading bullet or numbering marker
var bulletPrefix = regexp.MustCompile(`^[-*•\d.]+\s*`)

// categoryKeywords classifies a line by lexical lookup across the supported
// languages. Order matters: the first category with a hit wins, so a line
// mentioning both prices and rain is classified as market.
var categoryKeywords = []struct {
	category domain.NewsCategory
	keywords []string
}{
	{domain.NewsCategoryMarket, []string{
		"₹", "price", "rate", "bhav", "mandi",
		"भाव", "दर", "விலை", "ದರ", "ధర",
	}},
	{domain.NewsCategoryWeather, []string{
		"rain", "weather", "storm", "monsoon", "mausam",
		"बारिश", "मौसम", "வானிலை", "ಮಳೆ", "వర్షం",
	}},
}

// Parse splits raw backend output into classified news items: lines are
// cleaned of bullet markers, short noise lines are dropped, each remaining
// line is categorized and given a short display title, and the result is
// capped at four items in original line order. No upstream format is
// guaranteed; arbitrary text degrades to an empty or general-only batch.
func Parse(raw string) []domain.NewsItem {
	var items []domain.NewsItem
	for _, line := range strings.Split(raw, "\n") {
		clean := strings.TrimSpace(bulletPrefix.ReplaceAllString(strings.TrimSpace(line), ""))
		if utf8.RuneCountInString(clean) < minLineLen {
			continue
		}

		items = append(items, domain.NewsItem{
			Category: classify(clean),
			Title:    deriveTitle(clean),
			Content:  clean,
			Source:   sourceLabel,
		})
		if len(items) == maxItems {
			break
		}
	}
	return items
}

func classify(line string) domain.NewsCategory {
	lower := strings.ToLower(line)
	for _, c := range categoryKeywords {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.category
			}
		}
	}
	return domain.NewsCategoryGeneral
}

// deriveTitle truncates long lines to their first few words for card UIs
func deriveTitle(line string) string {
	words := strings.Split(line, " ")
	if len(words) <= titleWords {
		return line
	}
	return strings.Join(words[:titleWords], " ") + "..."
}
