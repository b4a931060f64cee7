package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tun-joachim/botframework-sdk/pkg/prompt"
)

var errFormIDMissing = errors.New("schema: form id is required")

// Form is an ordered collection of fields plus optional form-wide template
// overrides. It is declaration data; Finalize turns it into the read-only
// view the engine serves from.
type Form struct {
	id       string
	fields   []*Field
	index    map[string]*Field
	defaults *prompt.DefaultSet
}

// FormOption configures a Form during construction.
type FormOption func(*Form) error

// WithFields appends fields in declaration order. Duplicate names are a
// configuration error.
func WithFields(fields ...*Field) FormOption {
	return func(f *Form) error {
		for _, field := range fields {
			if field == nil {
				return fmt.Errorf("schema: form %q declares a nil field", f.id)
			}
			if _, exists := f.index[field.Name()]; exists {
				return fmt.Errorf("schema: form %q declares duplicate field %q", f.id, field.Name())
			}
			f.index[field.Name()] = field
			f.fields = append(f.fields, field)
		}
		return nil
	}
}

// WithDefaults layers a form-wide template table between field declarations
// and the global table. It may be sparse.
func WithDefaults(defaults *prompt.DefaultSet) FormOption {
	return func(f *Form) error {
		f.defaults = defaults
		return nil
	}
}

// NewForm registers a form schema.
func NewForm(id string, options ...FormOption) (*Form, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return nil, errFormIDMissing
	}

	form := &Form{
		id:    trimmed,
		index: make(map[string]*Field),
	}
	for _, option := range options {
		if option == nil {
			continue
		}
		if err := option(form); err != nil {
			return nil, err
		}
	}
	return form, nil
}

// ID returns the form identifier.
func (f *Form) ID() string { return f.id }

// Fields returns the fields in declaration order.
func (f *Form) Fields() []*Field {
	return append([]*Field(nil), f.fields...)
}

// Field looks a field up by name.
func (f *Form) Field(name string) (*Field, bool) {
	field, ok := f.index[name]
	return field, ok
}

type promptKey struct {
	field string
	value string
	usage prompt.Usage
}

// ResolvedForm is the read-only serving view produced by Finalize: every
// field resolved against the form and global default tables for every usage.
// It is safe for concurrent readers; returned templates must be treated as
// immutable (pattern selection is the only read that draws randomness, and
// it is per-call).
type ResolvedForm struct {
	form    *Form
	prompts map[promptKey]*prompt.Template
}

// Finalize resolves every field x usage combination once, at load time. A
// nil globals table uses the built-in one; either way the global table must
// be fully resolved or finalization aborts, because it is the terminal
// fallback every chain relies on.
func (f *Form) Finalize(globals *prompt.DefaultSet) (*ResolvedForm, error) {
	if globals == nil {
		globals = prompt.NewDefaultSet()
	}
	if err := globals.Validate(); err != nil {
		return nil, fmt.Errorf("schema: form %q: global default table: %w", f.id, err)
	}

	resolved := &ResolvedForm{
		form:    f,
		prompts: make(map[promptKey]*prompt.Template),
	}

	for _, field := range f.fields {
		for _, usage := range prompt.AllUsages() {
			declared, _ := field.Template(usage)
			template, err := prompt.Resolve(usage, declared, f.defaults, globals)
			if err != nil {
				return nil, fmt.Errorf("schema: form %q field %q: %w", f.id, field.Name(), err)
			}
			resolved.prompts[promptKey{field: field.Name(), usage: usage}] = template
		}

		for _, value := range field.values {
			for _, declared := range value.Templates {
				usage := declared.Usage()
				layered := declared.Clone()
				if fieldLevel, ok := field.Template(usage); ok {
					if err := layered.ApplyDefaults(fieldLevel); err != nil {
						return nil, fmt.Errorf("schema: form %q field %q value %q: %w", f.id, field.Name(), value.Name, err)
					}
				}
				template, err := prompt.Resolve(usage, layered, f.defaults, globals)
				if err != nil {
					return nil, fmt.Errorf("schema: form %q field %q value %q: %w", f.id, field.Name(), value.Name, err)
				}
				resolved.prompts[promptKey{field: field.Name(), value: value.Name, usage: usage}] = template
			}
		}
	}

	return resolved, nil
}

// Form returns the declaration the view was finalized from.
func (r *ResolvedForm) Form() *Form { return r.form }

// Prompt returns the resolved template for a field and usage.
func (r *ResolvedForm) Prompt(field string, usage prompt.Usage) (*prompt.Template, bool) {
	template, ok := r.prompts[promptKey{field: field, usage: usage}]
	return template, ok
}

// ValuePrompt returns the resolved template declared on an enumerated value,
// falling back to the field-level resolution when the value declared none.
func (r *ResolvedForm) ValuePrompt(field, value string, usage prompt.Usage) (*prompt.Template, bool) {
	if template, ok := r.prompts[promptKey{field: field, value: value, usage: usage}]; ok {
		return template, true
	}
	return r.Prompt(field, usage)
}
