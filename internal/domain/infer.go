package domain

import "strings"

type suffixRule struct {
	typ      Type
	suffixes []string
	prefixes []string
}

// Rules are checked in order; the first hit wins.
var suffixRules = []suffixRule{
	{typ: TypeAdverb, suffixes: []string{"ly"}},
	{typ: TypeNoun, suffixes: []string{
		"tion", "ment", "ness", "ity", "cy", "age", "al", "hood",
		"ship", "ism", "ist", "er", "or",
	}},
	{typ: TypeAdjective, suffixes: []string{
		"able", "ible", "al", "ful", "less", "ous", "ic", "ive", "en", "y",
	}},
	{typ: TypeVerb, suffixes: []string{"ize", "en", "ate", "fy", "ish"}, prefixes: []string{"be"}},
}

type markerRule struct {
	typ     Type
	markers []string
}

// Myanmar grammatical particles that hint at the part of speech of the gloss.
var definitionRules = []markerRule{
	{typ: TypeNoun, markers: []string{"စနစ်", "ခြင်း", "သူ", "အရာ"}},
	{typ: TypeAdjective, markers: []string{"သော"}},
	{typ: TypeVerb, markers: []string{"သည်"}},
}

// InferType guesses a grammatical type from the headword's affixes and,
// failing that, from particles in the definition. It returns "" when
// nothing matches.
func InferType(word, definition string) Type {
	w := strings.ToLower(strings.TrimSpace(word))
	for _, rule := range suffixRules {
		for _, s := range rule.suffixes {
			if strings.HasSuffix(w, s) {
				return rule.typ
			}
		}
		for _, p := range rule.prefixes {
			if strings.HasPrefix(w, p) {
				return rule.typ
			}
		}
	}

	for _, rule := range definitionRules {
		for _, m := range rule.markers {
			if strings.Contains(definition, m) {
				return rule.typ
			}
		}
	}
	return ""
}
