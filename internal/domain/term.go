package domain

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Type is the grammatical category of a term
type Type string

const (
	TypeVerb      Type = "v"
	TypeNoun      Type = "n"
	TypeAdjective Type = "adj"
	TypeAdverb    Type = "adv"
)

// KnownTypes lists the recognised grammatical tags in display order
var KnownTypes = []Type{TypeVerb, TypeNoun, TypeAdjective, TypeAdverb}

// IsKnown reports whether t is one of the recognised tags
func (t Type) IsKnown() bool {
	for _, k := range KnownTypes {
		if t == k {
			return true
		}
	}
	return false
}

// Label returns a human readable name for the type
func (t Type) Label() string {
	switch t {
	case TypeVerb:
		return "verb"
	case TypeNoun:
		return "noun"
	case TypeAdjective:
		return "adjective"
	case TypeAdverb:
		return "adverb"
	case "":
		return "untyped"
	}
	return string(t)
}

// Term is one glossary entry: an English headword and its gloss
type Term struct {
	Word       string `json:"word" validate:"required"`
	Type       Type   `json:"type"`
	Definition string `json:"definition" validate:"required"`
}

// Normalize returns a copy with surrounding whitespace removed
func (t Term) Normalize() Term {
	return Term{
		Word:       strings.TrimSpace(t.Word),
		Type:       Type(strings.TrimSpace(string(t.Type))),
		Definition: strings.TrimSpace(t.Definition),
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that word and definition are non-empty after trimming.
// The returned error is a *ValidationError.
func (t Term) Validate() error {
	err := validate.Struct(t.Normalize())
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewValidationError("term", err.Error())
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Message: "must not be empty",
		})
	}
	return NewValidationErrors(fields)
}

// Category is a filter over term types
type Category string

// CategoryAll disables type filtering
const CategoryAll Category = "all"

// Categories lists the selectable filters in display order
var Categories = []Category{
	CategoryAll,
	Category(TypeVerb),
	Category(TypeNoun),
	Category(TypeAdjective),
	Category(TypeAdverb),
}

// ParseCategory normalizes s and reports whether it is a recognised filter
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c == CategoryAll || Type(c).IsKnown() {
		return c, true
	}
	return c, false
}

// Label returns the button text for the category
func (c Category) Label() string {
	if c == CategoryAll {
		return "All"
	}
	return Type(c).Label()
}
