package openapi

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sandwichDoc = `{
	"openapi": "3.0.3",
	"info": {"title": "Sandwich Orders", "version": "1.0.0"},
	"paths": {},
	"components": {
		"schemas": {
			"SandwichOrder": {
				"type": "object",
				"required": ["length", "bread"],
				"properties": {
					"length": {
						"type": "number",
						"description": "Sandwich length in inches",
						"minimum": 6,
						"maximum": 12
					},
					"bread": {
						"type": "string",
						"enum": ["white", "wheat", "flatbread"]
					},
					"notes": {
						"type": "string",
						"description": "Anything else the kitchen should know"
					}
				}
			},
			"NotAnObject": {
				"type": "string"
			}
		}
	}
}`

func TestFieldsFromComponentSchema(t *testing.T) {
	doc, err := Load(context.Background(), []byte(sandwichDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	fields, err := Fields(doc, "SandwichOrder")
	if err != nil {
		t.Fatalf("Fields: %v", err)
	}
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}

	// Sorted by property name: bread, length, notes.
	bread := fields[0]
	if bread.Name() != "bread" {
		t.Fatalf("fields[0] = %q", bread.Name())
	}
	if bread.Optional() {
		t.Fatal("required property must not be optional")
	}
	names := make([]string, 0, 3)
	for _, value := range bread.Values() {
		names = append(names, value.Name)
	}
	if diff := cmp.Diff([]string{"white", "wheat", "flatbread"}, names); diff != "" {
		t.Fatalf("enum values mismatch (-want +got):\n%s", diff)
	}

	length := fields[1]
	if length.Description() != "Sandwich length in inches" {
		t.Fatalf("description = %q", length.Description())
	}
	rng, ok := length.Range()
	if !ok || rng.Min != 6 || rng.Max != 12 {
		t.Fatalf("range = %+v ok=%v", rng, ok)
	}

	notes := fields[2]
	if !notes.Optional() {
		t.Fatal("non-required property must be optional")
	}
}

func TestFormFromComponentSchema(t *testing.T) {
	doc, err := Load(context.Background(), []byte(sandwichDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	form, err := Form(doc, "SandwichOrder")
	if err != nil {
		t.Fatalf("Form: %v", err)
	}
	if form.ID() != "SandwichOrder" {
		t.Fatalf("form id = %q", form.ID())
	}
	if _, ok := form.Field("bread"); !ok {
		t.Fatal("bread field missing from form")
	}
}

func TestFieldsErrors(t *testing.T) {
	doc, err := Load(context.Background(), []byte(sandwichDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, err := Fields(doc, "Missing"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("missing schema: %v", err)
	}
	if _, err := Fields(doc, "NotAnObject"); err == nil || !strings.Contains(err.Error(), "not an object") {
		t.Fatalf("non-object schema: %v", err)
	}
	if _, err := Fields(nil, "SandwichOrder"); err == nil {
		t.Fatal("nil document must error")
	}
}

func TestLoadRejectsEmptyPayload(t *testing.T) {
	if _, err := Load(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty payload")
	}
}
