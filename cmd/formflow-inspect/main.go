// Command formflow-inspect loads form documents from a directory, finalizes
// each form against the builtin template table and prints the resolved
// prompts as JSON. Useful for checking what a sparse document actually
// resolves to before wiring it into a bot.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tun-joachim/botframework-sdk/pkg/prompt"
	"github.com/tun-joachim/botframework-sdk/pkg/schema"
	"github.com/tun-joachim/botframework-sdk/pkg/schema/loader"
)

func main() {
	dir := flag.String("dir", ".", "directory containing form documents (JSON/YAML)")
	formID := flag.String("form", "", "inspect a single form (all forms if empty)")
	usageFlag := flag.String("usage", "", "limit output to one template usage")
	flag.Parse()

	forms, err := loader.LoadFS(os.DirFS(*dir))
	if err != nil {
		log.Fatalf("load documents: %v", err)
	}
	if len(forms) == 0 {
		log.Fatalf("no form documents found in %s", *dir)
	}

	usages := prompt.AllUsages()
	if *usageFlag != "" {
		usage, err := prompt.ParseUsage(*usageFlag)
		if err != nil {
			log.Fatalf("bad usage filter: %v", err)
		}
		usages = []prompt.Usage{usage}
	}

	report := make(map[string]any, len(forms))
	for _, form := range forms {
		if *formID != "" && form.ID() != *formID {
			continue
		}
		summary, err := inspectForm(form, usages)
		if err != nil {
			log.Fatalf("inspect form %q: %v", form.ID(), err)
		}
		report[form.ID()] = summary
	}
	if len(report) == 0 {
		log.Fatalf("form %q not found", *formID)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Fatalf("encode report: %v", err)
	}
}

type templateSummary struct {
	Patterns []string       `json:"patterns"`
	Options  prompt.Options `json:"options"`
}

func inspectForm(form *schema.Form, usages []prompt.Usage) (map[string]map[string]templateSummary, error) {
	resolved, err := form.Finalize(nil)
	if err != nil {
		return nil, fmt.Errorf("finalize: %w", err)
	}

	summary := make(map[string]map[string]templateSummary, len(form.Fields()))
	for _, field := range form.Fields() {
		prompts := make(map[string]templateSummary, len(usages))
		for _, usage := range usages {
			template, ok := resolved.Prompt(field.Name(), usage)
			if !ok {
				continue
			}
			prompts[string(usage)] = templateSummary{
				Patterns: template.Patterns(),
				Options:  template.Options,
			}
		}
		summary[field.Name()] = prompts
	}
	return summary, nil
}
