package search

import (
	"lawlex/internal/catalog"
	"lawlex/internal/domain"
)

const (
	// MaxSuggestions caps the suggestion list
	MaxSuggestions = 5
	// MinSuggestQueryLen is the shortest normalized query that yields suggestions
	MinSuggestQueryLen = 2
	// PreviewLen is the number of characters of definition kept in a preview
	PreviewLen = 60

	ellipsis = "..."
)

// Suggestion is a short reference to a matching term
type Suggestion struct {
	ID      int64
	Word    string
	Type    domain.Type
	Preview string
}

// Suggest returns up to MaxSuggestions terms matching rawQuery, first
// matches first. Queries shorter than MinSuggestQueryLen yield nothing.
func Suggest(entries []catalog.Entry, rawQuery string) []Suggestion {
	q := NormalizeQuery(rawQuery)
	if len([]rune(q)) < MinSuggestQueryLen {
		return nil
	}

	var result []Suggestion
	for _, e := range entries {
		if !Matches(e.Term, q) {
			continue
		}
		result = append(result, Suggestion{
			ID:      e.ID,
			Word:    e.Term.Word,
			Type:    e.Term.Type,
			Preview: Truncate(e.Term.Definition, PreviewLen),
		})
		if len(result) == MaxSuggestions {
			break
		}
	}
	return result
}

// Truncate shortens s to n characters, appending an ellipsis when it cuts
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + ellipsis
}
