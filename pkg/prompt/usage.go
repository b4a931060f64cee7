package prompt

import (
	"fmt"
	"strings"
)

// Usage names the conversational purpose a template serves. A schema element
// may declare one template per usage; the engine picks the usage that fits
// the turn it is about to take (asking, helping, confirming, ...).
type Usage string

const (
	// UsageNone marks a template that has not been bound to a purpose yet.
	UsageNone Usage = ""

	// UsagePrompt is the direct ask for a field's value.
	UsagePrompt Usage = "prompt"

	// Per-type request and help pairs.
	UsageString       Usage = "string"
	UsageStringHelp   Usage = "stringHelp"
	UsageInteger      Usage = "integer"
	UsageIntegerHelp  Usage = "integerHelp"
	UsageDouble       Usage = "double"
	UsageDoubleHelp   Usage = "doubleHelp"
	UsageDateTime     Usage = "dateTime"
	UsageDateTimeHelp Usage = "dateTimeHelp"
	UsageBool         Usage = "bool"
	UsageBoolHelp     Usage = "boolHelp"

	// Enumerated choice selection and its help variants.
	UsageEnumSelectOne      Usage = "enumSelectOne"
	UsageEnumSelectMany     Usage = "enumSelectMany"
	UsageEnumOneNumberHelp  Usage = "enumOneNumberHelp"
	UsageEnumManyNumberHelp Usage = "enumManyNumberHelp"
	UsageEnumOneWordHelp    Usage = "enumOneWordHelp"
	UsageEnumManyWordHelp   Usage = "enumManyWordHelp"

	// Conversation management.
	UsageClarify          Usage = "clarify"
	UsageFeedback         Usage = "feedback"
	UsageHelp             Usage = "help"
	UsageNavigation       Usage = "navigation"
	UsageNavigationFormat Usage = "navigationFormat"
	UsageStatusFormat     Usage = "statusFormat"
	UsageCurrentChoice    Usage = "currentChoice"
	UsageNoPreference     Usage = "noPreference"
	UsageNotUnderstood    Usage = "notUnderstood"
	UsageUnspecified      Usage = "unspecified"
)

var allUsages = []Usage{
	UsagePrompt,
	UsageString, UsageStringHelp,
	UsageInteger, UsageIntegerHelp,
	UsageDouble, UsageDoubleHelp,
	UsageDateTime, UsageDateTimeHelp,
	UsageBool, UsageBoolHelp,
	UsageEnumSelectOne, UsageEnumSelectMany,
	UsageEnumOneNumberHelp, UsageEnumManyNumberHelp,
	UsageEnumOneWordHelp, UsageEnumManyWordHelp,
	UsageClarify, UsageFeedback, UsageHelp,
	UsageNavigation, UsageNavigationFormat,
	UsageStatusFormat, UsageCurrentChoice,
	UsageNoPreference, UsageNotUnderstood, UsageUnspecified,
}

var usageSet = func(usages []Usage) map[Usage]struct{} {
	result := make(map[Usage]struct{}, len(usages))
	for _, usage := range usages {
		result[usage] = struct{}{}
	}
	return result
}(allUsages)

// AllUsages returns the closed set of usages in declaration order.
func AllUsages() []Usage {
	return append([]Usage(nil), allUsages...)
}

// Valid reports whether the usage is part of the closed set. UsageNone is
// not a valid purpose for a declared template.
func (u Usage) Valid() bool {
	_, ok := usageSet[u]
	return ok
}

// ParseUsage converts a configuration token into a Usage.
func ParseUsage(raw string) (Usage, error) {
	usage := Usage(strings.TrimSpace(raw))
	if !usage.Valid() {
		return UsageNone, fmt.Errorf("prompt: unknown template usage %q", raw)
	}
	return usage, nil
}
