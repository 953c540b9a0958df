// Package search derives what the user sees from the catalog contents,
// the current query and the selected category. Every function here is pure.
package search

import (
	"strings"

	"lawlex/internal/catalog"
	"lawlex/internal/domain"
)

// View is the displayed subset of the catalog
type View struct {
	Entries  []catalog.Entry
	Count    int
	Total    int
	Query    string
	Category domain.Category
}

// Filtered reports whether the view hides part of the catalog
func (v View) Filtered() bool {
	return v.Count != v.Total
}

// NormalizeQuery lowercases and trims a raw query
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Matches reports whether an already normalized query is contained in the
// term's word or definition, ignoring case. An empty query matches all.
func Matches(term domain.Term, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(term.Word), query) ||
		strings.Contains(strings.ToLower(term.Definition), query)
}

// MatchesCategory reports whether the term belongs to category.
// Unrecognised categories match nothing.
func MatchesCategory(term domain.Term, category domain.Category) bool {
	if category == domain.CategoryAll {
		return true
	}
	if !domain.Type(category).IsKnown() {
		return false
	}
	return term.Type == domain.Type(category)
}

// Project returns the entries matching both query and category, in catalog order
func Project(entries []catalog.Entry, query string, category domain.Category) View {
	q := NormalizeQuery(query)

	matched := make([]catalog.Entry, 0, len(entries))
	for _, e := range entries {
		if Matches(e.Term, q) && MatchesCategory(e.Term, category) {
			matched = append(matched, e)
		}
	}

	return View{
		Entries:  matched,
		Count:    len(matched),
		Total:    len(entries),
		Query:    q,
		Category: category,
	}
}

// Page returns the 1-based page of the view and the total number of pages.
// Out-of-range pages are clamped.
func Page(view View, page, size int) ([]catalog.Entry, int, int) {
	if size < 1 {
		size = 1
	}

	totalPages := (len(view.Entries) + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := min(start+size, len(view.Entries))
	return view.Entries[start:end], page, totalPages
}
