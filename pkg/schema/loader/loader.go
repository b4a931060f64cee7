// Package loader parses declarative form documents (JSON or YAML) into
// schema declarations. Documents are the file-based counterpart of the
// functional-option builders in pkg/schema; both feed the same explicit
// registration path.
package loader

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tun-joachim/botframework-sdk/pkg/prompt"
	"github.com/tun-joachim/botframework-sdk/pkg/schema"
	"github.com/tun-joachim/botframework-sdk/pkg/terms"
)

// LoadFS walks the provided filesystem and parses every JSON/YAML form
// document. Forms are returned sorted by id; declaring the same id twice,
// in one file or across files, is a configuration error.
func LoadFS(fsys fs.FS) ([]*schema.Form, error) {
	if fsys == nil {
		return nil, nil
	}

	forms := make(map[string]*schema.Form)
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isFormDocument(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("loader: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for formID, raw := range doc.Forms {
			id := strings.TrimSpace(formID)
			if id == "" {
				return fmt.Errorf("loader: file %s defines an empty form id", path)
			}
			if _, exists := forms[id]; exists {
				return fmt.Errorf("loader: duplicate form %q (file %s)", id, path)
			}
			form, err := buildForm(id, raw, path)
			if err != nil {
				return err
			}
			forms[id] = form
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]*schema.Form, 0, len(forms))
	for _, form := range forms {
		out = append(out, form)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

type documentFile struct {
	Forms map[string]formFile `json:"forms" yaml:"forms"`
}

type formFile struct {
	Defaults map[string]templateFile `json:"defaults" yaml:"defaults"`
	Fields   []fieldFile             `json:"fields" yaml:"fields"`
}

type fieldFile struct {
	Name        string                  `json:"name" yaml:"name"`
	Description string                  `json:"description,omitempty" yaml:"description,omitempty"`
	Optional    bool                    `json:"optional,omitempty" yaml:"optional,omitempty"`
	Range       *rangeFile              `json:"range,omitempty" yaml:"range,omitempty"`
	Terms       []string                `json:"terms,omitempty" yaml:"terms,omitempty"`
	Templates   map[string]templateFile `json:"templates,omitempty" yaml:"templates,omitempty"`
	Values      []valueFile             `json:"values,omitempty" yaml:"values,omitempty"`
}

type valueFile struct {
	Name        string                  `json:"name" yaml:"name"`
	Description string                  `json:"description,omitempty" yaml:"description,omitempty"`
	Terms       []string                `json:"terms,omitempty" yaml:"terms,omitempty"`
	Templates   map[string]templateFile `json:"templates,omitempty" yaml:"templates,omitempty"`
}

type rangeFile struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

type templateFile struct {
	Patterns []string    `json:"patterns" yaml:"patterns"`
	Options  optionsFile `json:"options,omitempty" yaml:"options,omitempty"`
}

type optionsFile struct {
	AllowDefaultChoice  *bool   `json:"allowDefaultChoice,omitempty" yaml:"allowDefaultChoice,omitempty"`
	AllowNumberMatching *bool   `json:"allowNumberMatching,omitempty" yaml:"allowNumberMatching,omitempty"`
	FieldCase           string  `json:"fieldCase,omitempty" yaml:"fieldCase,omitempty"`
	ValueCase           string  `json:"valueCase,omitempty" yaml:"valueCase,omitempty"`
	Feedback            string  `json:"feedback,omitempty" yaml:"feedback,omitempty"`
	ChoiceFormat        *string `json:"choiceFormat,omitempty" yaml:"choiceFormat,omitempty"`
	LastSeparator       *string `json:"lastSeparator,omitempty" yaml:"lastSeparator,omitempty"`
	Separator           *string `json:"separator,omitempty" yaml:"separator,omitempty"`
	ChoiceStyle         string  `json:"choiceStyle,omitempty" yaml:"choiceStyle,omitempty"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("loader: file %s is empty", source)
	}

	var doc documentFile
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return documentFile{}, fmt.Errorf("loader: parse %s: invalid JSON or YAML", source)
}

func buildForm(id string, raw formFile, source string) (*schema.Form, error) {
	options := []schema.FormOption{}

	if len(raw.Defaults) > 0 {
		templates, err := buildTemplates(raw.Defaults, fmt.Sprintf("form %q defaults", id), source)
		if err != nil {
			return nil, err
		}
		defaults, err := prompt.DefaultSetOf(templates...)
		if err != nil {
			return nil, fmt.Errorf("loader: form %q (file %s): %w", id, source, err)
		}
		options = append(options, schema.WithDefaults(defaults))
	}

	fields := make([]*schema.Field, 0, len(raw.Fields))
	for _, fieldRaw := range raw.Fields {
		field, err := buildField(id, fieldRaw, source)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	options = append(options, schema.WithFields(fields...))

	form, err := schema.NewForm(id, options...)
	if err != nil {
		return nil, fmt.Errorf("loader: file %s: %w", source, err)
	}
	return form, nil
}

func buildField(formID string, raw fieldFile, source string) (*schema.Field, error) {
	where := fmt.Sprintf("form %q field %q", formID, raw.Name)

	options := []schema.Option{}
	if raw.Description != "" {
		options = append(options, schema.WithDescription(raw.Description))
	}
	if raw.Optional {
		options = append(options, schema.WithOptional())
	}
	if raw.Range != nil {
		options = append(options, schema.WithRange(raw.Range.Min, raw.Range.Max))
	}
	if len(raw.Terms) > 0 {
		options = append(options, schema.WithTerms(raw.Terms...))
	}

	templates, err := buildTemplates(raw.Templates, where, source)
	if err != nil {
		return nil, err
	}
	for _, template := range templates {
		options = append(options, schema.WithTemplate(template))
	}

	if len(raw.Values) > 0 {
		values := make([]schema.Value, 0, len(raw.Values))
		for _, valueRaw := range raw.Values {
			valueTemplates, err := buildTemplates(valueRaw.Templates, fmt.Sprintf("%s value %q", where, valueRaw.Name), source)
			if err != nil {
				return nil, err
			}
			values = append(values, schema.Value{
				Name:        valueRaw.Name,
				Description: valueRaw.Description,
				Terms:       terms.New(valueRaw.Terms...),
				Templates:   valueTemplates,
			})
		}
		options = append(options, schema.WithValues(values...))
	}

	field, err := schema.NewField(raw.Name, options...)
	if err != nil {
		return nil, fmt.Errorf("loader: file %s: %w", source, err)
	}
	return field, nil
}

func buildTemplates(raw map[string]templateFile, where, source string) ([]*prompt.Template, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	usages := make([]string, 0, len(raw))
	for usageRaw := range raw {
		usages = append(usages, usageRaw)
	}
	sort.Strings(usages)

	templates := make([]*prompt.Template, 0, len(raw))
	for _, usageRaw := range usages {
		template, err := buildTemplate(usageRaw, raw[usageRaw])
		if err != nil {
			return nil, fmt.Errorf("loader: %s (file %s): %w", where, source, err)
		}
		templates = append(templates, template)
	}
	return templates, nil
}

func buildTemplate(usageRaw string, raw templateFile) (*prompt.Template, error) {
	usage, err := prompt.ParseUsage(usageRaw)
	if err != nil {
		return nil, err
	}
	template, err := prompt.ForUsage(usage, raw.Patterns...)
	if err != nil {
		return nil, err
	}

	options, err := buildOptions(raw.Options)
	if err != nil {
		return nil, err
	}
	template.Options = options
	return template, nil
}

func buildOptions(raw optionsFile) (prompt.Options, error) {
	var options prompt.Options
	options.AllowDefaultChoice = boolDefault(raw.AllowDefaultChoice)
	options.AllowNumberMatching = boolDefault(raw.AllowNumberMatching)

	var err error
	if options.FieldCase, err = prompt.ParseCase(raw.FieldCase); err != nil {
		return prompt.Options{}, err
	}
	if options.ValueCase, err = prompt.ParseCase(raw.ValueCase); err != nil {
		return prompt.Options{}, err
	}
	if options.Feedback, err = prompt.ParseFeedback(raw.Feedback); err != nil {
		return prompt.Options{}, err
	}
	if options.ChoiceStyle, err = prompt.ParseChoiceStyle(raw.ChoiceStyle); err != nil {
		return prompt.Options{}, err
	}

	options.ChoiceFormat = raw.ChoiceFormat
	options.LastSeparator = raw.LastSeparator
	options.Separator = raw.Separator
	return options, nil
}

func boolDefault(raw *bool) prompt.BoolDefault {
	switch {
	case raw == nil:
		return prompt.BoolUnset
	case *raw:
		return prompt.BoolTrue
	default:
		return prompt.BoolFalse
	}
}

func isFormDocument(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
