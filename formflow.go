// Package formflow assembles conversational forms from field metadata and a
// layered prompt-template table. The root package re-exports the small set of
// entry points most hosts need; the pkg subpackages carry the full surface.
package formflow

import (
	"io/fs"

	"github.com/tun-joachim/botframework-sdk/pkg/prompt"
	"github.com/tun-joachim/botframework-sdk/pkg/render/pongo"
	"github.com/tun-joachim/botframework-sdk/pkg/schema"
	"github.com/tun-joachim/botframework-sdk/pkg/schema/loader"
)

// NewForm declares a form. See the schema package for the field options.
func NewForm(id string, options ...schema.FormOption) (*schema.Form, error) {
	return schema.NewForm(id, options...)
}

// LoadForms parses every JSON/YAML form document under the filesystem.
func LoadForms(fsys fs.FS) ([]*schema.Form, error) {
	return loader.LoadFS(fsys)
}

// DefaultTemplates returns the builtin fully-resolved template table used
// when Finalize is called with a nil global table.
func DefaultTemplates() *prompt.DefaultSet {
	return prompt.NewDefaultSet()
}

// NewRenderer constructs the bundled pongo2-backed pattern renderer.
func NewRenderer(options ...pongo.Option) (*pongo.Engine, error) {
	return pongo.New(options...)
}
