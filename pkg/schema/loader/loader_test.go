package loader

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/tun-joachim/botframework-sdk/pkg/prompt"
)

const pizzaYAML = `forms:
  pizza:
    defaults:
      help:
        patterns: ["Form-wide help for {{ field }}"]
        options:
          feedback: always
    fields:
      - name: size
        description: pizza size
        optional: true
        range: { min: 1, max: 20 }
        terms: ["size", "how big"]
        templates:
          prompt:
            patterns:
              - "What size pizza would you like?"
              - "How big should the pizza be?"
            options:
              fieldCase: none
              separator: "; "
      - name: crust
        values:
          - name: thin
            terms: ["thin", "crispy"]
          - name: deepDish
            description: deep dish
`

func TestLoadFS_YAMLDocument(t *testing.T) {
	forms, err := LoadFS(fstest.MapFS{
		"forms/pizza.yaml": &fstest.MapFile{Data: []byte(pizzaYAML)},
	})
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if len(forms) != 1 {
		t.Fatalf("expected one form, got %d", len(forms))
	}

	form := forms[0]
	if form.ID() != "pizza" {
		t.Fatalf("form id = %q", form.ID())
	}

	size, ok := form.Field("size")
	if !ok {
		t.Fatal("size field missing")
	}
	if size.Description() != "pizza size" {
		t.Fatalf("description = %q", size.Description())
	}
	if !size.Optional() {
		t.Fatal("optional flag lost")
	}
	rng, ok := size.Range()
	if !ok || rng.Min != 1 || rng.Max != 20 {
		t.Fatalf("range = %+v ok=%v", rng, ok)
	}
	if diff := cmp.Diff([]string{"size", "how big"}, size.Terms().Alternatives()); diff != "" {
		t.Fatalf("terms mismatch (-want +got):\n%s", diff)
	}

	ask, ok := size.Template(prompt.UsagePrompt)
	if !ok {
		t.Fatal("prompt template missing")
	}
	wantPatterns := []string{
		"What size pizza would you like?",
		"How big should the pizza be?",
	}
	if diff := cmp.Diff(wantPatterns, ask.Patterns()); diff != "" {
		t.Fatalf("patterns mismatch (-want +got):\n%s", diff)
	}
	if ask.Options.FieldCase != prompt.CaseNone {
		t.Fatalf("fieldCase = %q", ask.Options.FieldCase)
	}
	if ask.Options.Separator == nil || *ask.Options.Separator != "; " {
		t.Fatalf("separator = %v", ask.Options.Separator)
	}
	if ask.Options.Feedback != prompt.FeedbackUnset {
		t.Fatalf("undeclared option should stay unset, got %q", ask.Options.Feedback)
	}

	crust, _ := form.Field("crust")
	values := crust.Values()
	if len(values) != 2 || values[0].Name != "thin" || values[1].Description != "deep dish" {
		t.Fatalf("values = %+v", values)
	}

	// The form-wide defaults participate in finalization.
	resolved, err := form.Finalize(nil)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	help, _ := resolved.Prompt("size", prompt.UsageHelp)
	if got := help.Pattern(nil); got != "Form-wide help for {{ field }}" {
		t.Fatalf("form default pattern lost, got %q", got)
	}
	if help.Options.Feedback != prompt.FeedbackAlways {
		t.Fatalf("form default option lost, got %q", help.Options.Feedback)
	}
}

func TestLoadFS_JSONDocument(t *testing.T) {
	doc := `{
		"forms": {
			"contact": {
				"fields": [
					{"name": "email", "terms": ["email", "e-mail"]}
				]
			}
		}
	}`
	forms, err := LoadFS(fstest.MapFS{
		"contact.json": &fstest.MapFile{Data: []byte(doc)},
	})
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if len(forms) != 1 || forms[0].ID() != "contact" {
		t.Fatalf("forms = %+v", forms)
	}
}

func TestLoadFS_Errors(t *testing.T) {
	cases := []struct {
		name string
		fsys fstest.MapFS
		want string
	}{
		{
			name: "empty document",
			fsys: fstest.MapFS{"empty.yaml": &fstest.MapFile{Data: []byte("  \n")}},
			want: "is empty",
		},
		{
			name: "invalid payload",
			fsys: fstest.MapFS{"broken.yaml": &fstest.MapFile{Data: []byte("forms: [}")}},
			want: "invalid JSON or YAML",
		},
		{
			name: "duplicate form across files",
			fsys: fstest.MapFS{
				"a.yaml": &fstest.MapFile{Data: []byte("forms:\n  pizza:\n    fields: []\n")},
				"b.yaml": &fstest.MapFile{Data: []byte("forms:\n  pizza:\n    fields: []\n")},
			},
			want: `duplicate form "pizza"`,
		},
		{
			name: "unknown usage",
			fsys: fstest.MapFS{
				"bad.yaml": &fstest.MapFile{Data: []byte(
					"forms:\n  pizza:\n    fields:\n      - name: size\n        templates:\n          shouting:\n            patterns: [\"x\"]\n")},
			},
			want: "unknown template usage",
		},
		{
			name: "invalid range",
			fsys: fstest.MapFS{
				"bad.yaml": &fstest.MapFile{Data: []byte(
					"forms:\n  pizza:\n    fields:\n      - name: size\n        range: { min: 5, max: 3 }\n")},
			},
			want: "invalid numeric range",
		},
		{
			name: "template without patterns",
			fsys: fstest.MapFS{
				"bad.yaml": &fstest.MapFile{Data: []byte(
					"forms:\n  pizza:\n    fields:\n      - name: size\n        templates:\n          prompt:\n            patterns: []\n")},
			},
			want: "at least one pattern",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFS(tc.fsys)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadFS_NilAndNonDocumentFiles(t *testing.T) {
	forms, err := LoadFS(nil)
	if err != nil || forms != nil {
		t.Fatalf("nil fs: forms=%v err=%v", forms, err)
	}

	forms, err = LoadFS(fstest.MapFS{
		"README.md": &fstest.MapFile{Data: []byte("not a form document")},
	})
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if len(forms) != 0 {
		t.Fatalf("expected no forms, got %d", len(forms))
	}
}
