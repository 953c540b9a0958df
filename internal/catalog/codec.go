package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"lawlex/internal/domain"
)

// Decode reads a JSON array of {word, type, definition} records
func Decode(r io.Reader) ([]domain.Term, error) {
	dec := json.NewDecoder(r)

	var terms []domain.Term
	if err := dec.Decode(&terms); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty payload")
		}
		return nil, fmt.Errorf("decode terms: %w", err)
	}
	if terms == nil {
		return nil, fmt.Errorf("payload is not an array")
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after term array")
	}
	return terms, nil
}

// Encode renders terms as a two-space indented JSON array. HTML characters
// are kept literal and no trailing newline is written.
func Encode(terms []domain.Term) ([]byte, error) {
	if terms == nil {
		terms = []domain.Term{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(terms); err != nil {
		return nil, fmt.Errorf("encode terms: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// ExportFileName derives the download name from the source file name,
// e.g. "dict.json" becomes "dict_updated.json".
func ExportFileName(source string) string {
	base := filepath.Base(source)
	if base == "." || base == "/" || base == "" {
		base = "dictionary.json"
	}
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}

	ext := filepath.Ext(base)
	if ext == "" {
		ext = ".json"
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + "_updated" + ext
}
