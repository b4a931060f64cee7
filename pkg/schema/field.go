package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tun-joachim/botframework-sdk/pkg/prompt"
	"github.com/tun-joachim/botframework-sdk/pkg/terms"
)

var errFieldNameMissing = errors.New("schema: field name is required")

// Value is one enumerated choice a field accepts, with its own description,
// matching terms and usage-tagged templates. Values are plain declaration
// data; NewField validates them.
type Value struct {
	Name        string
	Description string
	Terms       terms.Set
	Templates   []*prompt.Template
}

// Field carries everything the form engine needs to converse about one
// schema element. Build it with NewField; it is immutable afterwards.
type Field struct {
	name        string
	description string
	optional    bool
	numeric     *NumericRange
	terms       terms.Set
	templates   map[prompt.Usage]*prompt.Template
	values      []Value
}

// Option configures a Field during construction.
type Option func(*Field) error

// WithDescription overrides the description derived from the field name.
func WithDescription(description string) Option {
	return func(f *Field) error {
		trimmed := strings.TrimSpace(description)
		if trimmed == "" {
			return fmt.Errorf("schema: field %q description override is empty", f.name)
		}
		f.description = trimmed
		return nil
	}
}

// WithOptional marks the field as skippable; by default every field must be
// filled before the form completes.
func WithOptional() Option {
	return func(f *Field) error {
		f.optional = true
		return nil
	}
}

// WithRange bounds a numeric field. Declaration fails when min exceeds max.
func WithRange(min, max float64) Option {
	return func(f *Field) error {
		numeric, err := NewNumericRange(min, max)
		if err != nil {
			return fmt.Errorf("schema: field %q: %w", f.name, err)
		}
		f.numeric = &numeric
		return nil
	}
}

// WithTerms declares the matching vocabulary for the field.
func WithTerms(alternatives ...string) Option {
	return func(f *Field) error {
		f.terms = terms.New(alternatives...)
		return nil
	}
}

// WithExpandedTerms runs the field's declared terms through the external
// generator, replacing them with the generated expressions. Declare it after
// WithTerms; it expands whatever the field holds at that point.
func WithExpandedTerms(generate terms.Generator, maxPhraseLength int) Option {
	return func(f *Field) error {
		expanded, err := f.terms.Expand(generate, maxPhraseLength)
		if err != nil {
			return fmt.Errorf("schema: field %q: %w", f.name, err)
		}
		f.terms = expanded
		return nil
	}
}

// WithTemplate attaches a usage-tagged template. Declaring the same usage
// twice is last-declared-wins.
func WithTemplate(template *prompt.Template) Option {
	return func(f *Field) error {
		if template == nil {
			return fmt.Errorf("schema: field %q: template is nil", f.name)
		}
		if template.Usage() == prompt.UsageNone {
			return fmt.Errorf("schema: field %q: template has no usage", f.name)
		}
		if f.templates == nil {
			f.templates = make(map[prompt.Usage]*prompt.Template)
		}
		f.templates[template.Usage()] = template.Clone()
		return nil
	}
}

// WithValues declares the enumerated choices the field accepts.
func WithValues(values ...Value) Option {
	return func(f *Field) error {
		seen := make(map[string]struct{}, len(values))
		for _, value := range values {
			name := strings.TrimSpace(value.Name)
			if name == "" {
				return fmt.Errorf("schema: field %q declares a value without a name", f.name)
			}
			if _, exists := seen[name]; exists {
				return fmt.Errorf("schema: field %q declares duplicate value %q", f.name, name)
			}
			seen[name] = struct{}{}
			for _, template := range value.Templates {
				if template == nil || template.Usage() == prompt.UsageNone {
					return fmt.Errorf("schema: field %q value %q: template has no usage", f.name, name)
				}
			}
			if value.Description == "" {
				value.Description = DefaultLabeler(name)
			}
			value.Name = name
			f.values = append(f.values, value)
		}
		return nil
	}
}

// NewField registers a schema element. The description defaults to a
// human-friendly form of the name until WithDescription overrides it.
func NewField(name string, options ...Option) (*Field, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, errFieldNameMissing
	}

	field := &Field{
		name:        trimmed,
		description: DefaultLabeler(trimmed),
	}
	for _, option := range options {
		if option == nil {
			continue
		}
		if err := option(field); err != nil {
			return nil, err
		}
	}
	return field, nil
}

// Name returns the field identifier used by the engine and by documents.
func (f *Field) Name() string { return f.name }

// Description returns the human phrase substituted into prompts.
func (f *Field) Description() string { return f.description }

// Optional reports whether the form can complete without this field.
func (f *Field) Optional() bool { return f.optional }

// Range returns the numeric bounds when declared.
func (f *Field) Range() (NumericRange, bool) {
	if f.numeric == nil {
		return NumericRange{}, false
	}
	return *f.numeric, true
}

// Terms returns the field's matching vocabulary.
func (f *Field) Terms() terms.Set { return f.terms }

// Template returns a clone of the declared template for the usage, if any.
func (f *Field) Template(usage prompt.Usage) (*prompt.Template, bool) {
	template, ok := f.templates[usage]
	if !ok {
		return nil, false
	}
	return template.Clone(), true
}

// Values returns the declared enumerated choices in declaration order.
func (f *Field) Values() []Value {
	return append([]Value(nil), f.values...)
}
