package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferType(t *testing.T) {
	tests := []struct {
		name       string
		word       string
		definition string
		expected   Type
	}{
		{name: "adverb suffix", word: "lawfully", expected: TypeAdverb},
		{name: "noun suffix", word: "abolition", expected: TypeNoun},
		{name: "al is a noun before adjective", word: "tribunal", expected: TypeNoun},
		{name: "adjective suffix", word: "admissible", expected: TypeAdjective},
		{name: "trailing y is adjective", word: "guilty", expected: TypeAdjective},
		{name: "verb suffix", word: "legitimize", expected: TypeVerb},
		{name: "verb prefix", word: "bequeath", expected: TypeVerb},
		{name: "upper case word", word: "ARBITRATION", expected: TypeNoun},
		{name: "definition noun marker", word: "bail", definition: "အာမခံခြင်း", expected: TypeNoun},
		{name: "definition adjective marker", word: "void", definition: "ပျက်ပြယ်သော", expected: TypeAdjective},
		{name: "definition verb marker", word: "sue", definition: "တရားစွဲသည်", expected: TypeVerb},
		{name: "nothing matches", word: "void", definition: "null", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InferType(tt.word, tt.definition))
		})
	}
}
