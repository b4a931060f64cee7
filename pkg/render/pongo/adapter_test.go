package pongo

import (
	"strings"
	"testing"

	"github.com/tun-joachim/botframework-sdk/pkg/prompt"
	"github.com/tun-joachim/botframework-sdk/pkg/render"
)

func TestEngineRendersBuiltinPlaceholders(t *testing.T) {
	engine, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := render.Context{
		Field:   "Size",
		Choices: []string{"small", "large"},
		Options: prompt.Options{
			AllowNumberMatching: prompt.BoolTrue,
			FieldCase:           prompt.CaseLower,
			ValueCase:           prompt.CaseInitialUpper,
			Separator:           prompt.String(", "),
			LastSeparator:       prompt.String(" or "),
		},
	}

	got, err := engine.Render("What {{ field }} would you like? Options: {{ choiceList }}", ctx)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "What size would you like? Options: 1. Small or 2. Large"
	if got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestEngineRendersDefaultTablePatterns(t *testing.T) {
	engine, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	table := prompt.NewDefaultSet()
	tmpl, _ := table.Template(prompt.UsageNotUnderstood)
	if tmpl == nil {
		t.Fatal("builtin table missing notUnderstood")
	}

	got, err := engine.Render(tmpl.Pattern(prompt.NewDice(1)), render.Context{
		Input:   "pepperoni",
		Options: tmpl.Options,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(got, "pepperoni") {
		t.Fatalf("rendered %q does not echo the input", got)
	}
}

func TestEngineCachesCompiledPatterns(t *testing.T) {
	engine, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	const pattern = "Hello {{ field }}"
	if _, err := engine.Render(pattern, render.Context{Field: "world"}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	engine.mu.RLock()
	_, cached := engine.compiled[pattern]
	engine.mu.RUnlock()
	if !cached {
		t.Fatal("pattern not cached after first render")
	}
}

func TestEngineRejectsBrokenPattern(t *testing.T) {
	engine, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := engine.Render("{{ field ", render.Context{}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEngineGlobals(t *testing.T) {
	engine, err := New(WithGlobals(map[string]any{"botName": "FormBot"}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := engine.Render("{{ botName }}: {{ field }}?", render.Context{Field: "size"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "FormBot: size?" {
		t.Fatalf("Render() = %q", got)
	}
}
