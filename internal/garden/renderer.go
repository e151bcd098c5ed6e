package garden

import (
	"fmt"
	"strings"
)

// FallbackLine is printed when a (season, plant) pair has no tips.
const FallbackLine = "No specific tips for this combination yet."

// Renderer builds advice text from the advice and recommendation
// tables. Keys passed to Render are assumed already validated by a
// Resolver and are not re-checked.
type Renderer struct {
	advice          AdviceTable
	recommendations RecommendationTable
}

// NewRenderer creates a renderer backed by the default tables.
func NewRenderer() *Renderer {
	return NewRendererWithTables(Advice, Recommendations)
}

// NewRendererWithTables creates a renderer over the given tables.
func NewRendererWithTables(advice AdviceTable, recommendations RecommendationTable) *Renderer {
	return &Renderer{
		advice:          advice,
		recommendations: recommendations,
	}
}

// Render returns the newline-joined advice text for a canonical
// (season, plant) pair: the tip lines (or the fallback line when the
// pair has no entry), then a blank separator and a recommendation line
// listing the season's suggested plants. The recommendation footer is
// skipped entirely when the season has no recommendation entry.
func (r *Renderer) Render(seasonKey, plantKey string) string {
	var lines []string

	tips := r.advice[seasonKey][plantKey]
	if len(tips) == 0 {
		lines = append(lines, FallbackLine)
	} else {
		lines = append(lines, tips...)
	}

	if recs := r.recommendations[seasonKey]; len(recs) > 0 {
		lines = append(lines, "")
		lines = append(lines, fmt.Sprintf("Suggested %ss for %s: %s",
			plantKey, seasonKey, strings.Join(recs, ", ")))
	}

	return strings.Join(lines, "\n")
}
