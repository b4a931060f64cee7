// Package schema declares the metadata a conversational form engine reads
// off each field: a human description, matching terms, numeric bounds, an
// optional marker, enumerated values and usage-tagged prompt templates.
//
// Registration is explicit: fields are built with NewField and functional
// options (or loaded from declarative documents by the loader subpackage),
// never discovered through reflection. A Form is finalized once against a
// validated global default table; the resulting ResolvedForm is read-only
// and safe to share across concurrent sessions.
package schema
