package prompt

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyPatternSet is returned when a template is declared without a
	// single usable pattern.
	ErrEmptyPatternSet = errors.New("prompt: template requires at least one pattern")
	// ErrNilFallback is returned when defaults are applied from a nil
	// template.
	ErrNilFallback = errors.New("prompt: defaults fallback template is nil")
)

// Template is an ordered set of alternative pattern strings plus the
// formatting options that travel with them. Patterns are opaque to this
// package; an external renderer expands their directives into display text.
//
// A template starts with every option unset and becomes fully resolved by
// chaining ApplyDefaults through form-level and global tables at load time.
// After that it must be treated as read-only; Pattern selection is safe for
// concurrent readers.
type Template struct {
	usage    Usage
	patterns []string

	// Options may be populated freely between construction and resolution.
	Options Options
}

// New builds a template from one or more pattern strings. Empty and
// whitespace-only patterns are configuration mistakes and are rejected along
// with an empty list.
func New(patterns ...string) (*Template, error) {
	if len(patterns) == 0 {
		return nil, ErrEmptyPatternSet
	}
	cleaned := make([]string, 0, len(patterns))
	for idx, pattern := range patterns {
		if strings.TrimSpace(pattern) == "" {
			return nil, fmt.Errorf("%w: pattern %d is blank", ErrEmptyPatternSet, idx)
		}
		cleaned = append(cleaned, pattern)
	}
	return &Template{patterns: cleaned}, nil
}

// ForUsage builds a template bound to a conversational purpose.
func ForUsage(usage Usage, patterns ...string) (*Template, error) {
	if !usage.Valid() {
		return nil, fmt.Errorf("prompt: template usage %q is not valid", usage)
	}
	template, err := New(patterns...)
	if err != nil {
		return nil, err
	}
	template.usage = usage
	return template, nil
}

// Must panics when err is non-nil, for wiring static template tables.
func Must(template *Template, err error) *Template {
	if err != nil {
		panic(err)
	}
	return template
}

// Usage returns the purpose the template was bound to, or UsageNone.
func (t *Template) Usage() Usage { return t.usage }

// Clone copies the template: the pattern list is shared (it is never
// mutated), options are copied by value so resolving the clone leaves the
// source untouched.
func (t *Template) Clone() *Template {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}

// Patterns returns the full ordered alternative list, independent of any
// random selection. Callers use it to validate configuration.
func (t *Template) Patterns() []string {
	return append([]string(nil), t.patterns...)
}

// Pattern returns the single declared pattern, or one chosen uniformly at
// random among the alternatives. A nil Dice falls back to the package's
// concurrency-safe shared source.
func (t *Template) Pattern(d Dice) string {
	if len(t.patterns) == 1 {
		return t.patterns[0]
	}
	if d == nil {
		d = sharedDice{}
	}
	return t.patterns[d.Roll(len(t.patterns))]
}

// ApplyDefaults fills every option field still at its unset sentinel from
// fallback. Fields already resolved are left alone, so chaining the call
// through increasingly general templates keeps the most specific setting.
// Only the receiver is mutated. Unset fields on the fallback simply stay
// unset on the receiver; full resolution requires the chain to end in a
// fully resolved table.
func (t *Template) ApplyDefaults(fallback *Template) error {
	if fallback == nil {
		return ErrNilFallback
	}
	t.Options.fill(fallback.Options)
	return nil
}

// Resolved reports whether every option field carries a concrete value.
func (t *Template) Resolved() bool {
	return t.Options.Resolved()
}
