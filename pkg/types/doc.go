// Package types defines the configuration value model shared by the
// builder and the formatter, together with the filesystem interface used by
// the translation pipeline.
//
// A configuration value is one of three kinds:
//
//	Integer  decimal integer of arbitrary size
//	Text     non-empty, whitespace-trimmed string
//	Mapping  ordered key/value collection, possibly nested
//
// Values are built once, bottom-up, and never mutated after the builder
// returns them.
package types
