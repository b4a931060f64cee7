package render

import (
	"strconv"

	"github.com/tun-joachim/botframework-sdk/pkg/prompt"
)

// PatternRenderer turns a template pattern into user-facing text. Patterns
// are opaque to the core packages; this is the seam a concrete engine plugs
// into.
type PatternRenderer interface {
	Render(pattern string, ctx Context) (string, error)
}

// Context carries the values a pattern may substitute. Field and Value names
// arrive already normalized per the template's options.
type Context struct {
	// Field is the display name of the field being prompted for.
	Field string
	// Value is the display name of the current option value, when prompting
	// about a specific enumerated value.
	Value string
	// Input is the raw user utterance, used by clarify and not-understood
	// patterns.
	Input string
	// Choices lists the selectable options in presentation order.
	Choices []string
	// Options controls case normalization, separators and choice formatting.
	Options prompt.Options
}

// ChoiceList formats Choices as a single line using the context's separators,
// numbering each entry when number matching is enabled.
func (c Context) ChoiceList() string {
	items := make([]string, 0, len(c.Choices))
	for idx, choice := range c.Choices {
		item := c.Options.ValueCase.Apply(choice)
		if c.Options.AllowNumberMatching != prompt.BoolFalse {
			item = strconv.Itoa(idx+1) + ". " + item
		}
		items = append(items, item)
	}
	return c.Options.JoinList(items)
}

// NormalizedField returns Field with the context's field-case applied.
func (c Context) NormalizedField() string {
	return c.Options.FieldCase.Apply(c.Field)
}

// NormalizedValue returns Value with the context's value-case applied.
func (c Context) NormalizedValue() string {
	return c.Options.ValueCase.Apply(c.Value)
}
