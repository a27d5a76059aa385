// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml. Decoding into a generic value
// keeps native scalar types (strings, integers, floats, booleans, null),
// sequences as []any and mappings as map[string]any.
//
// Usage:
//
//	parser := yaml.NewParser()
//	var doc any
//	err := parser.Parse(data, &doc)
//
// Syntax errors wrap ErrSyntax together with the underlying goccy error,
// which carries the line and column of the failure. A stream holding more
// than one document, or bytes that are not valid UTF-8, are rejected with
// errors that also wrap ErrSyntax. Duplicate mapping keys are accepted and
// the last value wins.
package yaml
