package prompt

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// CaseNormalization controls how field and value names are cased when they
// are substituted into a rendered pattern. The zero value means "inherit from
// the fallback template" and must be replaced during resolution.
type CaseNormalization string

const (
	CaseUnset        CaseNormalization = ""
	CaseNone         CaseNormalization = "none"
	CaseUpper        CaseNormalization = "upper"
	CaseLower        CaseNormalization = "lower"
	CaseInitialUpper CaseNormalization = "initialUpper"
)

// Apply normalizes s according to the receiver. CaseUnset and CaseNone leave
// the input untouched.
func (c CaseNormalization) Apply(s string) string {
	switch c {
	case CaseUpper:
		return strings.ToUpper(s)
	case CaseLower:
		return strings.ToLower(s)
	case CaseInitialUpper:
		lower := strings.ToLower(s)
		for i, r := range lower {
			if unicode.IsLetter(r) {
				return lower[:i] + string(unicode.ToUpper(r)) + lower[i+utf8.RuneLen(r):]
			}
		}
		return lower
	default:
		return s
	}
}

// BoolDefault is a tri-state flag whose zero value inherits from the fallback
// template during resolution.
type BoolDefault string

const (
	BoolUnset BoolDefault = ""
	BoolTrue  BoolDefault = "true"
	BoolFalse BoolDefault = "false"
)

// Bool converts a resolved flag to a plain bool. Unset reports false.
func (b BoolDefault) Bool() bool { return b == BoolTrue }

// ChoiceStyle selects how enumerated choices are laid out when a prompt
// offers them. The zero value inherits from the fallback template.
type ChoiceStyle string

const (
	ChoiceStyleUnset   ChoiceStyle = ""
	ChoiceStyleAuto    ChoiceStyle = "auto"
	ChoiceStyleInline  ChoiceStyle = "inline"
	ChoiceStylePerLine ChoiceStyle = "perLine"
)

// FeedbackPolicy controls whether the engine echoes back what it understood
// after a reply is matched. The zero value inherits from the fallback
// template.
type FeedbackPolicy string

const (
	FeedbackUnset  FeedbackPolicy = ""
	FeedbackAuto   FeedbackPolicy = "auto"
	FeedbackAlways FeedbackPolicy = "always"
	FeedbackNever  FeedbackPolicy = "never"
)

// Options bundles the formatting knobs attached to a template. Every field is
// either unset (its zero sentinel, nil for the string pointers) or resolved
// to a concrete value; ApplyDefaults on the owning Template fills unset
// fields from a fallback without ever touching resolved ones.
type Options struct {
	// AllowDefaultChoice permits the user to keep the field's current value
	// by accepting the offered default.
	AllowDefaultChoice BoolDefault `json:"allowDefaultChoice,omitempty" yaml:"allowDefaultChoice,omitempty"`
	// AllowNumberMatching lets replies pick a choice by its 1-based number.
	AllowNumberMatching BoolDefault `json:"allowNumberMatching,omitempty" yaml:"allowNumberMatching,omitempty"`
	// FieldCase normalizes the field description before substitution.
	FieldCase CaseNormalization `json:"fieldCase,omitempty" yaml:"fieldCase,omitempty"`
	// ValueCase normalizes value descriptions before substitution.
	ValueCase CaseNormalization `json:"valueCase,omitempty" yaml:"valueCase,omitempty"`
	// Feedback decides whether matched input is echoed back to the user.
	Feedback FeedbackPolicy `json:"feedback,omitempty" yaml:"feedback,omitempty"`
	// ChoiceFormat formats a single enumerated choice (index plus label).
	ChoiceFormat *string `json:"choiceFormat,omitempty" yaml:"choiceFormat,omitempty"`
	// LastSeparator joins the final two entries of a list ("a, b and c").
	LastSeparator *string `json:"lastSeparator,omitempty" yaml:"lastSeparator,omitempty"`
	// Separator joins all earlier entries of a list.
	Separator *string `json:"separator,omitempty" yaml:"separator,omitempty"`
	// ChoiceStyle lays out the offered choices.
	ChoiceStyle ChoiceStyle `json:"choiceStyle,omitempty" yaml:"choiceStyle,omitempty"`
}

// fill copies every still-unset field from fallback. Resolved fields always
// win over the fallback, which is what makes the field -> form -> global
// chain closest-scope-wins.
func (o *Options) fill(fallback Options) {
	if o.AllowDefaultChoice == BoolUnset {
		o.AllowDefaultChoice = fallback.AllowDefaultChoice
	}
	if o.AllowNumberMatching == BoolUnset {
		o.AllowNumberMatching = fallback.AllowNumberMatching
	}
	if o.FieldCase == CaseUnset {
		o.FieldCase = fallback.FieldCase
	}
	if o.ValueCase == CaseUnset {
		o.ValueCase = fallback.ValueCase
	}
	if o.Feedback == FeedbackUnset {
		o.Feedback = fallback.Feedback
	}
	if o.ChoiceFormat == nil {
		o.ChoiceFormat = fallback.ChoiceFormat
	}
	if o.LastSeparator == nil {
		o.LastSeparator = fallback.LastSeparator
	}
	if o.Separator == nil {
		o.Separator = fallback.Separator
	}
	if o.ChoiceStyle == ChoiceStyleUnset {
		o.ChoiceStyle = fallback.ChoiceStyle
	}
}

// Resolved reports whether every field carries a concrete value.
func (o Options) Resolved() bool {
	return o.AllowDefaultChoice != BoolUnset &&
		o.AllowNumberMatching != BoolUnset &&
		o.FieldCase != CaseUnset &&
		o.ValueCase != CaseUnset &&
		o.Feedback != FeedbackUnset &&
		o.ChoiceFormat != nil &&
		o.LastSeparator != nil &&
		o.Separator != nil &&
		o.ChoiceStyle != ChoiceStyleUnset
}

// JoinList joins items using the resolved separators, e.g. "a, b and c".
// Falls back to ", " joining when the separators are still unset.
func (o Options) JoinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}

	separator := ", "
	if o.Separator != nil {
		separator = *o.Separator
	}
	last := separator
	if o.LastSeparator != nil {
		last = *o.LastSeparator
	}

	head := strings.Join(items[:len(items)-1], separator)
	return head + last + items[len(items)-1]
}

// String returns a pointer to s, for populating the *string option fields.
func String(s string) *string { return &s }

// ParseCase converts a configuration token into a CaseNormalization. The
// empty string maps to CaseUnset so sparse documents stay sparse.
func ParseCase(raw string) (CaseNormalization, error) {
	switch CaseNormalization(strings.TrimSpace(raw)) {
	case CaseUnset:
		return CaseUnset, nil
	case CaseNone:
		return CaseNone, nil
	case CaseUpper:
		return CaseUpper, nil
	case CaseLower:
		return CaseLower, nil
	case CaseInitialUpper:
		return CaseInitialUpper, nil
	default:
		return CaseUnset, fmt.Errorf("prompt: unknown case normalization %q", raw)
	}
}

// ParseChoiceStyle converts a configuration token into a ChoiceStyle.
func ParseChoiceStyle(raw string) (ChoiceStyle, error) {
	switch ChoiceStyle(strings.TrimSpace(raw)) {
	case ChoiceStyleUnset:
		return ChoiceStyleUnset, nil
	case ChoiceStyleAuto:
		return ChoiceStyleAuto, nil
	case ChoiceStyleInline:
		return ChoiceStyleInline, nil
	case ChoiceStylePerLine:
		return ChoiceStylePerLine, nil
	default:
		return ChoiceStyleUnset, fmt.Errorf("prompt: unknown choice style %q", raw)
	}
}

// ParseFeedback converts a configuration token into a FeedbackPolicy.
func ParseFeedback(raw string) (FeedbackPolicy, error) {
	switch FeedbackPolicy(strings.TrimSpace(raw)) {
	case FeedbackUnset:
		return FeedbackUnset, nil
	case FeedbackAuto:
		return FeedbackAuto, nil
	case FeedbackAlways:
		return FeedbackAlways, nil
	case FeedbackNever:
		return FeedbackNever, nil
	default:
		return FeedbackUnset, fmt.Errorf("prompt: unknown feedback policy %q", raw)
	}
}
