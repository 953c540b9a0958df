package testutil

import (
	"lawlex/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestTerm creates a test term
func NewTestTerm(word string, typ domain.Type, definition string) domain.Term {
	return domain.Term{
		Word:       word,
		Type:       typ,
		Definition: definition,
	}
}

// SampleTerms returns a small mixed-type glossary
func SampleTerms() []domain.Term {
	return []domain.Term{
		NewTestTerm("Tort", domain.TypeNoun, "A civil wrong"),
		NewTestTerm("Torture", domain.TypeNoun, "Severe pain"),
		NewTestTerm("Abscond", domain.TypeVerb, "To flee from justice"),
		NewTestTerm("Lawfully", domain.TypeAdverb, "In a lawful manner"),
		NewTestTerm("Admissible", domain.TypeAdjective, "Allowed as evidence"),
		NewTestTerm("Mens rea", "phrase", "Guilty mind"),
	}
}
