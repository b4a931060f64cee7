package prompt

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNoTemplate is returned when resolution finds no template anywhere in
// the fallback chain for the requested usage.
var ErrNoTemplate = errors.New("prompt: no template declared for usage")

// DefaultSet is a usage-keyed table of fallback templates. The global table
// must be fully resolved (Validate reports this); per-form tables may stay
// sparse and only override what they care about.
//
// A DefaultSet is an explicit value threaded by callers; there is no
// package-level table. It is immutable after construction and safe for
// concurrent readers.
type DefaultSet struct {
	templates map[Usage]*Template
}

// DefaultSetOf builds a table from usage-tagged templates. Templates without
// a usage are rejected; a usage declared twice is last-declared-wins.
func DefaultSetOf(templates ...*Template) (*DefaultSet, error) {
	set := &DefaultSet{templates: make(map[Usage]*Template, len(templates))}
	for idx, template := range templates {
		if template == nil {
			return nil, fmt.Errorf("prompt: default set entry %d is nil", idx)
		}
		if template.Usage() == UsageNone {
			return nil, fmt.Errorf("prompt: default set entry %d has no usage", idx)
		}
		set.templates[template.Usage()] = template.Clone()
	}
	return set, nil
}

// Template returns the table's entry for the usage. The result is a clone so
// callers can resolve against it without aliasing table state.
func (s *DefaultSet) Template(usage Usage) (*Template, bool) {
	if s == nil {
		return nil, false
	}
	template, ok := s.templates[usage]
	if !ok {
		return nil, false
	}
	return template.Clone(), true
}

// Merge layers overrides on top of the receiver, producing a new table.
// Entries present in overrides win whole; option-level merging is Resolve's
// job, not Merge's. Both inputs are left untouched and either may be nil.
func (s *DefaultSet) Merge(overrides *DefaultSet) *DefaultSet {
	merged := &DefaultSet{templates: make(map[Usage]*Template)}
	if s != nil {
		for usage, template := range s.templates {
			merged.templates[usage] = template.Clone()
		}
	}
	if overrides != nil {
		for usage, template := range overrides.templates {
			merged.templates[usage] = template.Clone()
		}
	}
	return merged
}

// Usages returns the usages present in the table, sorted for stable output.
func (s *DefaultSet) Usages() []Usage {
	if s == nil {
		return nil
	}
	usages := make([]Usage, 0, len(s.templates))
	for usage := range s.templates {
		usages = append(usages, usage)
	}
	sort.Slice(usages, func(i, j int) bool { return usages[i] < usages[j] })
	return usages
}

// Validate enforces the terminal-table invariant: every usage in the closed
// set is present and fully resolved. The global table a schema resolves
// against must pass this before serving begins.
func (s *DefaultSet) Validate() error {
	if s == nil {
		return errors.New("prompt: default set is nil")
	}
	for _, usage := range allUsages {
		template, ok := s.templates[usage]
		if !ok {
			return fmt.Errorf("prompt: default set has no template for usage %q", usage)
		}
		if !template.Resolved() {
			return fmt.Errorf("prompt: default template for usage %q has unresolved options", usage)
		}
	}
	return nil
}

// Resolve merges a field-level template (which may be nil) against a chain
// of fallback tables, most specific first. The first table that knows the
// usage also donates its pattern when the field declared none. The result is
// a fresh template; neither the field template nor any table is mutated.
//
// Resolution is a load-time operation: run it once per schema element and
// usage before concurrent serving starts.
func Resolve(usage Usage, field *Template, tables ...*DefaultSet) (*Template, error) {
	if !usage.Valid() {
		return nil, fmt.Errorf("prompt: cannot resolve invalid usage %q", usage)
	}

	resolved := field.Clone()
	for _, table := range tables {
		fallback, ok := table.Template(usage)
		if !ok {
			continue
		}
		if resolved == nil {
			resolved = fallback
			continue
		}
		if err := resolved.ApplyDefaults(fallback); err != nil {
			return nil, err
		}
	}

	if resolved == nil {
		return nil, fmt.Errorf("%w %q", ErrNoTemplate, usage)
	}
	resolved.usage = usage
	return resolved, nil
}

// NewDefaultSet returns the built-in global table: one fully resolved
// template per usage. Patterns use {{ ... }} directives understood by the
// bundled renderer adapter, but remain opaque strings to this package, so a
// custom table can carry any directive syntax its renderer understands.
func NewDefaultSet() *DefaultSet {
	baseline := Options{
		AllowDefaultChoice:  BoolTrue,
		AllowNumberMatching: BoolTrue,
		FieldCase:           CaseLower,
		ValueCase:           CaseInitialUpper,
		Feedback:            FeedbackAuto,
		ChoiceFormat:        String("{{ index }}. {{ choice }}"),
		LastSeparator:       String(" and "),
		Separator:           String(", "),
		ChoiceStyle:         ChoiceStyleAuto,
	}

	table := map[Usage]string{
		UsagePrompt:             "Please enter {{ field }}",
		UsageString:             "Please enter {{ field }}",
		UsageStringHelp:         "You can enter any text for {{ field }}.",
		UsageInteger:            "Please enter a whole number for {{ field }}",
		UsageIntegerHelp:        "Enter a whole number between {{ min }} and {{ max }} for {{ field }}.",
		UsageDouble:             "Please enter a number for {{ field }}",
		UsageDoubleHelp:         "Enter a number between {{ min }} and {{ max }} for {{ field }}.",
		UsageDateTime:           "Please enter a date and time for {{ field }}",
		UsageDateTimeHelp:       "Enter a date and time for {{ field }}.",
		UsageBool:               "Would you like {{ field }}?",
		UsageBoolHelp:           "Answer yes or no for {{ field }}.",
		UsageEnumSelectOne:      "Please select {{ field }}: {{ choiceList }}",
		UsageEnumSelectMany:     "Please select one or more of {{ choiceList }} for {{ field }}",
		UsageEnumOneNumberHelp:  "Enter a number between 1 and {{ count }} to pick a choice.",
		UsageEnumManyNumberHelp: "Enter one or more numbers between 1 and {{ count }}, separated by commas.",
		UsageEnumOneWordHelp:    "Enter a word that matches one of the listed choices.",
		UsageEnumManyWordHelp:   "Enter one or more words matching the listed choices.",
		UsageClarify:            "By \"{{ input }}\" did you mean {{ choiceList }}?",
		UsageFeedback:           "Understood {{ value }} for {{ field }}.",
		UsageHelp:               "You are filling in {{ field }}. Possible replies: {{ choiceList }}",
		UsageNavigation:         "What do you want to change? {{ choiceList }}",
		UsageNavigationFormat:   "{{ field }} ({{ value }})",
		UsageStatusFormat:       "{{ field }}: {{ value }}",
		UsageCurrentChoice:      "(current choice: {{ value }})",
		UsageNoPreference:       "No preference",
		UsageNotUnderstood:      "\"{{ input }}\" is not an option for {{ field }}.",
		UsageUnspecified:        "Unspecified",
	}

	templates := make(map[Usage]*Template, len(table))
	for usage, pattern := range table {
		template := Must(ForUsage(usage, pattern))
		template.Options = baseline
		templates[usage] = template
	}
	return &DefaultSet{templates: templates}
}
