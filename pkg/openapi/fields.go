// Package openapi derives form definitions from OpenAPI component schemas.
// Object properties become fields: description, required markers, numeric
// bounds and string enums all carry over, so an existing API contract can
// seed a conversational form without restating the metadata.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/tun-joachim/botframework-sdk/pkg/schema"
	"github.com/tun-joachim/botframework-sdk/pkg/terms"
)

// Load parses an OpenAPI document from raw JSON or YAML bytes.
func Load(ctx context.Context, data []byte) (*openapi3.T, error) {
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: false,
	}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return doc, nil
}

// Form builds a form from the named component schema. The schema must be an
// object; its properties become the form's fields in name order.
func Form(doc *openapi3.T, name string) (*schema.Form, error) {
	fields, err := Fields(doc, name)
	if err != nil {
		return nil, err
	}
	return schema.NewForm(name, schema.WithFields(fields...))
}

// Fields converts the named component schema's properties into form fields.
func Fields(doc *openapi3.T, name string) ([]*schema.Field, error) {
	if doc == nil {
		return nil, errors.New("openapi: document is nil")
	}
	if doc.Components == nil {
		return nil, fmt.Errorf("openapi: document has no component schemas")
	}
	ref, ok := doc.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("openapi: component schema %q not found", name)
	}
	source := ref.Value
	if !hasType(source.Type, openapi3.TypeObject) {
		return nil, fmt.Errorf("openapi: component schema %q is not an object", name)
	}

	required := make(map[string]bool, len(source.Required))
	for _, propName := range source.Required {
		required[propName] = true
	}

	propNames := make([]string, 0, len(source.Properties))
	for propName := range source.Properties {
		propNames = append(propNames, propName)
	}
	sort.Strings(propNames)

	fields := make([]*schema.Field, 0, len(propNames))
	for _, propName := range propNames {
		propRef := source.Properties[propName]
		if propRef == nil || propRef.Value == nil {
			continue
		}
		field, err := buildField(propName, propRef.Value, required[propName])
		if err != nil {
			return nil, fmt.Errorf("openapi: schema %q property %q: %w", name, propName, err)
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func buildField(name string, property *openapi3.Schema, required bool) (*schema.Field, error) {
	options := []schema.Option{}
	if property.Description != "" {
		options = append(options, schema.WithDescription(property.Description))
	}
	if !required {
		options = append(options, schema.WithOptional())
	}
	if hasType(property.Type, openapi3.TypeNumber) || hasType(property.Type, openapi3.TypeInteger) {
		if rangeOption, ok := numericRange(property); ok {
			options = append(options, rangeOption)
		}
	}
	if values := enumValues(property.Enum); len(values) > 0 {
		options = append(options, schema.WithValues(values...))
	}
	return schema.NewField(name, options...)
}

// numericRange maps minimum/maximum onto field bounds. Ranges are inclusive
// on both ends, so only schemas that declare both bounds translate.
func numericRange(property *openapi3.Schema) (schema.Option, bool) {
	if property.Min == nil || property.Max == nil {
		return nil, false
	}
	return schema.WithRange(*property.Min, *property.Max), true
}

func enumValues(enum []any) []schema.Value {
	values := make([]schema.Value, 0, len(enum))
	for _, entry := range enum {
		text, ok := entry.(string)
		if !ok || text == "" {
			continue
		}
		values = append(values, schema.Value{Name: text, Terms: terms.New(text)})
	}
	return values
}

func hasType(types *openapi3.Types, want string) bool {
	if types == nil {
		return false
	}
	for _, t := range types.Slice() {
		if t == want {
			return true
		}
	}
	return false
}
