// Package tidy repairs known data problems in a dictionary file before it is served.
package tidy

import (
	"lawlex/internal/domain"
)

// corrections maps misspelled headwords found in the published dictionary to their fix
var corrections = map[string]string{
	"abolishion":        "abolition",
	"acitvity":          "activity",
	"administeration":   "administration",
	"admissable":        "admissible",
	"adverrising":       "advertising",
	"advoacy":           "advocacy",
	"afortiori":         "a fortiori",
	"analsis":           "analysis",
	"antagonisitic":     "antagonistic",
	"apprenhend":        "apprehend",
	"attitide":          "attitude",
	"baward":            "award",
	"bookeeper":         "bookkeeper",
	"bombrad":           "bombard",
	"cpmmander":         "commander",
	"cheif":             "chief",
	"cliquy":            "cliquey",
	"coliect":           "collect",
	"comple":            "compel",
	"confderate":        "confederate",
	"consultaion":       "consultation",
	"cprrespondent":     "correspondent",
	"counsle":           "counsel",
	"courter-espionage": "counter-espionage",
	"demeratize":        "democratize",
	"depotism":          "despotism",
	"destory":           "destroy",
	"detecive":          "detective",
	"eyecuritness":      "eyewitness",
	"hiljack":           "hijack",
	"huslings":          "hustings",
	"imprpper":          "improper",
	"informantion":      "information",
	"interrogaive":      "interrogative",
	"kidanpper":         "kidnapper",
	"manslaugther":      "manslaughter",
	"mufit":             "mufti",
	"negotiabte":        "negotiable",
	"personlity":        "personality",
	"plactory":          "placatory",
	"POlyeharous":       "Polyandrous",
	"proscirbe":         "proscribe",
	"resarch":           "research",
	"rigth":             "right",
	"ssduce":            "seduce",
	"self-detence":      "self-defence",
	"settement":         "settlement",
	"sobdivide":         "subdivide",
	"srangulation":      "strangulation",
	"substaniate":       "substantiate",
	"supension":         "suspension",
	"tansiate":          "translate",
	"trasformation":     "transformation",
	"tule":              "rule",
	"Mesllnony":         "testimony",
	"unsitable":         "unsuitable",

	// Page number and gloss fused into the headword
	"86075022008805 (ဒဏ်ရာရ) မှု။ တိုက်ဆိုင်မှု။ by accident": "accident",
}

// Report counts the changes made by Apply
type Report struct {
	Corrected int
	Typed     int
}

// Changed reports whether any term was modified
func (r Report) Changed() bool {
	return r.Corrected > 0 || r.Typed > 0
}

// Apply fixes misspelled words, then fills missing types
func Apply(terms []domain.Term) Report {
	return Report{
		Corrected: ApplyCorrections(terms),
		Typed:     FillTypes(terms),
	}
}

// ApplyCorrections replaces known misspelled words in place.
// Only exact matches are replaced.
func ApplyCorrections(terms []domain.Term) int {
	changed := 0
	for i := range terms {
		if fixed, ok := corrections[terms[i].Word]; ok {
			terms[i].Word = fixed
			changed++
		}
	}
	return changed
}

// Correction returns the fix for a misspelled word, if one is known
func Correction(word string) (string, bool) {
	fixed, ok := corrections[word]
	return fixed, ok
}

// FillTypes infers the type of every term that has none
func FillTypes(terms []domain.Term) int {
	filled := 0
	for i := range terms {
		if terms[i].Type != "" {
			continue
		}
		if t := domain.InferType(terms[i].Word, terms[i].Definition); t != "" {
			terms[i].Type = t
			filled++
		}
	}
	return filled
}
