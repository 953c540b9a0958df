package catalog

import (
	"strings"
	"testing"

	"lawlex/internal/domain"
	"lawlex/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name          string
		payload       string
		expectedLen   int
		expectedError bool
	}{
		{
			name:        "array of records",
			payload:     `[{"word":"Tort","type":"n","definition":"A civil wrong"},{"word":"Sue","type":"v","definition":"To bring an action"}]`,
			expectedLen: 2,
		},
		{
			name:        "empty array",
			payload:     `[]`,
			expectedLen: 0,
		},
		{
			name:        "extra fields are ignored",
			payload:     `[{"word":"Tort","type":"n","definition":"A civil wrong","example":"x"}]`,
			expectedLen: 1,
		},
		{
			name:        "null type",
			payload:     `[{"word":"Tort","type":null,"definition":"A civil wrong"}]`,
			expectedLen: 1,
		},
		{name: "object instead of array", payload: `{"word":"Tort"}`, expectedError: true},
		{name: "null payload", payload: `null`, expectedError: true},
		{name: "empty payload", payload: ``, expectedError: true},
		{name: "truncated", payload: `[{"word":"Tort"`, expectedError: true},
		{name: "numeric word", payload: `[{"word":1,"type":"n","definition":"x"}]`, expectedError: true},
		{name: "trailing data", payload: `[] []`, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms, err := Decode(strings.NewReader(tt.payload))

			if tt.expectedError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, terms, tt.expectedLen)
		})
	}
}

func TestEncode(t *testing.T) {
	terms := []domain.Term{
		testutil.NewTestTerm("Tort", domain.TypeNoun, "A civil wrong"),
		testutil.NewTestTerm("A & B", "", "<ပြစ်မှု>"),
	}

	data, err := Encode(terms)
	require.NoError(t, err)

	expected := `[
  {
    "word": "Tort",
    "type": "n",
    "definition": "A civil wrong"
  },
  {
    "word": "A & B",
    "type": "",
    "definition": "<ပြစ်မှု>"
  }
]`
	assert.Equal(t, expected, string(data))
}

func TestEncode_Empty(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestExportFileName(t *testing.T) {
	tests := []struct {
		source   string
		expected string
	}{
		{source: "MyanmarEnglishLawDictionary.json", expected: "MyanmarEnglishLawDictionary_updated.json"},
		{source: "/srv/data/dict.json", expected: "dict_updated.json"},
		{source: "https://example.com/files/dict.json?v=2", expected: "dict_updated.json"},
		{source: "terms", expected: "terms_updated.json"},
		{source: "", expected: "dictionary_updated.json"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExportFileName(tt.source))
		})
	}
}
