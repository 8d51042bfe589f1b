// Package foundation holds small generic helpers shared across packages.
package foundation

import (
	"fmt"
	"strings"
)

var separatorFolder = strings.NewReplacer("-", "_", " ", "_")

// fold lower-cases, trims, and maps "-" and " " to "_" so "All-Atom" and
// "all_atom" compare equal.
func fold(s string) string {
	return separatorFolder.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// Normalizer maps user spellings onto enum values.
type Normalizer[T comparable] struct {
	validValues map[string]T
}

// NewNormalizer creates a normalizer from spelling->value pairs. Spellings are
// folded, so only one variant of each needs listing.
func NewNormalizer[T comparable](values map[string]T) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	for k, v := range values {
		normalized[fold(k)] = v
	}
	return &Normalizer[T]{validValues: normalized}
}

// Normalize returns the value for raw and whether it was recognized.
func (n *Normalizer[T]) Normalize(raw string) (T, bool) {
	v, ok := n.validValues[fold(raw)]
	return v, ok
}

// NormalizeWithError is Normalize with an error for unrecognized input.
func (n *Normalizer[T]) NormalizeWithError(raw string) (T, error) {
	if v, ok := n.Normalize(raw); ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid value: %s", raw)
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
