// Package prompt holds the template model a conversational form engine
// reads: pattern alternatives with random selection, usage tags naming the
// purpose a template serves, and the defaults-resolution merge that layers
// field-level overrides over form-level and global tables.
//
// The lifecycle is resolve-once, then read-only: Resolve every template at
// schema-load time against a validated global DefaultSet, then share the
// results freely across sessions. Pattern selection stays safe under that
// sharing because the random source is per-call.
package prompt
