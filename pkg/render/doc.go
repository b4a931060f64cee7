// Package render defines the seam between resolved prompt templates and a
// concrete pattern engine. The core packages treat patterns as opaque
// strings; render.Context carries the substitution values and a
// PatternRenderer implementation decides the syntax. The pongo subpackage
// provides the bundled implementation.
package render
