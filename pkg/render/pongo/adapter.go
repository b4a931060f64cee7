// Package pongo renders prompt patterns with the pongo2 template engine.
// Patterns use the familiar {{ field }} / {{ choiceList }} placeholders plus
// whatever filters the host registers.
package pongo

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/tun-joachim/botframework-sdk/pkg/render"
)

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	globals map[string]any
	filters map[string]func(input any, param any) (any, error)
}

// WithGlobals seeds context values available to every pattern.
func WithGlobals(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globals == nil {
			cfg.globals = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globals[strings.TrimSpace(key)] = value
		}
	}
}

// WithFilter registers a pattern filter when the engine loads.
func WithFilter(name string, fn func(input any, param any) (any, error)) Option {
	return func(cfg *config) {
		if strings.TrimSpace(name) == "" || fn == nil {
			return
		}
		if cfg.filters == nil {
			cfg.filters = make(map[string]func(any, any) (any, error))
		}
		cfg.filters[strings.TrimSpace(name)] = fn
	}
}

// Engine is a pongo2-backed render.PatternRenderer. Compiled patterns are
// cached; the engine is safe for concurrent use.
type Engine struct {
	mu sync.RWMutex

	templateSet *pongo2.TemplateSet
	compiled    map[string]*pongo2.Template
}

var _ render.PatternRenderer = (*Engine)(nil)

// New constructs an Engine using the provided configuration options.
func New(options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	engine := &Engine{
		templateSet: pongo2.NewSet("formflow", pongo2.MustNewLocalFileSystemLoader("")),
		compiled:    make(map[string]*pongo2.Template),
	}

	if len(cfg.globals) > 0 {
		engine.templateSet.Globals = make(pongo2.Context, len(cfg.globals))
		for key, value := range cfg.globals {
			engine.templateSet.Globals[key] = value
		}
	}
	for name, fn := range cfg.filters {
		if err := registerFilter(name, fn); err != nil {
			return nil, fmt.Errorf("pongo: register filter %q: %w", name, err)
		}
	}

	return engine, nil
}

// Render substitutes the context values into the pattern.
func (e *Engine) Render(pattern string, ctx render.Context) (string, error) {
	if e == nil || e.templateSet == nil {
		return "", errors.New("pongo: engine is nil")
	}

	tmpl, err := e.compile(pattern)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(toContext(ctx), &buf); err != nil {
		return "", fmt.Errorf("pongo: execute pattern %q: %w", pattern, err)
	}
	return buf.String(), nil
}

func (e *Engine) compile(pattern string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.compiled[pattern]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.compiled[pattern]; ok {
		return tmpl, nil
	}

	tmpl, err := e.templateSet.FromString(pattern)
	if err != nil {
		return nil, fmt.Errorf("pongo: parse pattern %q: %w", pattern, err)
	}
	e.compiled[pattern] = tmpl
	return tmpl, nil
}

func toContext(ctx render.Context) pongo2.Context {
	choices := make([]string, 0, len(ctx.Choices))
	for _, choice := range ctx.Choices {
		choices = append(choices, ctx.Options.ValueCase.Apply(choice))
	}
	return pongo2.Context{
		"field":      ctx.NormalizedField(),
		"value":      ctx.NormalizedValue(),
		"input":      ctx.Input,
		"choices":    choices,
		"choiceList": ctx.ChoiceList(),
	}
}

func registerFilter(name string, fn func(input any, param any) (any, error)) error {
	if pongo2.FilterExists(name) {
		return nil
	}
	return pongo2.RegisterFilter(name, func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var paramVal any
		if param != nil {
			paramVal = param.Interface()
		}
		result, err := fn(in.Interface(), paramVal)
		if err != nil {
			return nil, &pongo2.Error{Sender: name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	})
}
