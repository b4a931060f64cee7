// Package terms holds the matching vocabulary attached to a schema element:
// an ordered list of literal terms or regular expressions the form engine
// uses to recognize user replies. Term generation from natural-language
// phrases is an external collaborator supplied through the Generator seam.
package terms

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilGenerator is returned when expansion is requested without a
	// generator.
	ErrNilGenerator = errors.New("terms: generator is nil")
	// ErrPhraseLength is returned for a non-positive max phrase length.
	ErrPhraseLength = errors.New("terms: max phrase length must be positive")
)

// Generator turns a word or phrase into the regular expressions that match
// it. It must be a pure function; the surrounding natural-language layer
// supplies it.
type Generator func(text string, maxPhraseLength int) []string

// Set is an immutable ordered collection of term alternatives. The zero
// value is an empty set.
type Set struct {
	alternatives []string
}

// New builds a set from literal terms or regular expressions, preserving
// order. Blank entries are dropped.
func New(alternatives ...string) Set {
	cleaned := make([]string, 0, len(alternatives))
	for _, alternative := range alternatives {
		if strings.TrimSpace(alternative) == "" {
			continue
		}
		cleaned = append(cleaned, alternative)
	}
	return Set{alternatives: cleaned}
}

// Alternatives returns the ordered alternatives as an independent copy.
func (s Set) Alternatives() []string {
	return append([]string(nil), s.alternatives...)
}

// Empty reports whether the set holds no alternatives.
func (s Set) Empty() bool { return len(s.alternatives) == 0 }

// Expand derives a new set by running every alternative through the
// generator and concatenating the results in order. The receiver is left
// untouched, so expanding the same source twice yields the same result;
// compounding only happens when a caller explicitly expands an
// already-expanded set.
func (s Set) Expand(generate Generator, maxPhraseLength int) (Set, error) {
	if generate == nil {
		return Set{}, ErrNilGenerator
	}
	if maxPhraseLength <= 0 {
		return Set{}, fmt.Errorf("%w: got %d", ErrPhraseLength, maxPhraseLength)
	}

	expanded := make([]string, 0, len(s.alternatives))
	for _, alternative := range s.alternatives {
		expanded = append(expanded, generate(alternative, maxPhraseLength)...)
	}
	return Set{alternatives: expanded}, nil
}
