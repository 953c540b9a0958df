package search

import (
	"fmt"
	"strings"
	"testing"

	"lawlex/internal/domain"
	"lawlex/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	entries := entriesOf(testutil.SampleTerms())

	tests := []struct {
		name          string
		query         string
		expectedWords []string
	}{
		{name: "empty query", query: "", expectedWords: nil},
		{name: "single character", query: "t", expectedWords: nil},
		{name: "single character padded", query: "  t  ", expectedWords: nil},
		{name: "two characters", query: "to", expectedWords: []string{"Tort", "Torture", "Abscond"}},
		{name: "definition match", query: "Evidence", expectedWords: []string{"Admissible"}},
		{name: "no match", query: "habeas", expectedWords: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestions := Suggest(entries, tt.query)

			var got []string
			for _, s := range suggestions {
				got = append(got, s.Word)
			}
			assert.Equal(t, tt.expectedWords, got)
		})
	}
}

func TestSuggest_TruncatesToFirstFive(t *testing.T) {
	terms := make([]domain.Term, 0, 8)
	for i := 0; i < 8; i++ {
		terms = append(terms, testutil.NewTestTerm(fmt.Sprintf("Contract %d", i), domain.TypeNoun, "An agreement"))
	}

	suggestions := Suggest(entriesOf(terms), "contract")

	require.Len(t, suggestions, MaxSuggestions)
	for i, s := range suggestions {
		assert.Equal(t, fmt.Sprintf("Contract %d", i), s.Word)
		assert.Equal(t, int64(i+1), s.ID)
		assert.Equal(t, domain.TypeNoun, s.Type)
	}
}

func TestSuggest_PreviewTruncation(t *testing.T) {
	long := strings.Repeat("ဥပဒေ", 20)
	terms := []domain.Term{
		testutil.NewTestTerm("Statute", domain.TypeNoun, long),
		testutil.NewTestTerm("Statutory", domain.TypeAdjective, "Required by statute"),
	}

	suggestions := Suggest(entriesOf(terms), "stat")

	require.Len(t, suggestions, 2)
	assert.Equal(t, string([]rune(long)[:PreviewLen])+"...", suggestions[0].Preview)
	assert.Equal(t, "Required by statute", suggestions[1].Preview)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		n        int
		expected string
	}{
		{name: "shorter", input: "abc", n: 5, expected: "abc"},
		{name: "exact", input: "abcde", n: 5, expected: "abcde"},
		{name: "longer", input: "abcdef", n: 5, expected: "abcde..."},
		{name: "multibyte", input: "ပြစ်မှု", n: 3, expected: "ပြစ..."},
		{name: "empty", input: "", n: 5, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.n))
		})
	}
}
