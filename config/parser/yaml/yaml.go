package yaml

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrSyntax is returned when the input is not a valid YAML document.
var ErrSyntax = errors.New("invalid YAML")

// ErrMultipleDocuments is returned when the input holds more than one YAML document.
// It wraps ErrSyntax.
var ErrMultipleDocuments = fmt.Errorf("%w: expected a single document in the stream", ErrSyntax)

// ErrInvalidEncoding is returned when the input is not valid UTF-8. It wraps ErrSyntax.
var ErrInvalidEncoding = fmt.Errorf("%w: input is not valid UTF-8", ErrSyntax)

// Parser implements config.Parser interface for YAML data.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a single YAML document into the target.
// Decoding into *any produces map[string]any for mappings and []any for sequences.
// Duplicate mapping keys are accepted and the last occurrence wins.
func (p *Parser) Parse(data []byte, target any) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	if !utf8.Valid(data) {
		return ErrInvalidEncoding
	}

	file, err := parser.ParseBytes(data, 0, parser.AllowDuplicateMapKey())
	if err != nil {
		return syntaxError(err)
	}

	if docs := countDocuments(file); docs > 1 {
		return fmt.Errorf("%w, found %d", ErrMultipleDocuments, docs)
	}

	err = yaml.UnmarshalWithOptions(data, target, yaml.AllowDuplicateMapKey())
	if err != nil {
		return syntaxError(err)
	}

	return nil
}

// countDocuments skips the directive-only groups (%YAML, %TAG) the parser emits ahead of a document.
func countDocuments(file *ast.File) int {
	docs := 0

	for _, doc := range file.Docs {
		if _, directive := doc.Body.(*ast.DirectiveNode); directive {
			continue
		}

		docs++
	}

	return docs
}

func syntaxError(err error) error {
	slog.Debug("yaml syntax error", slog.String("detail", yaml.FormatError(err, false, true)))

	return fmt.Errorf("%w: %w", ErrSyntax, err)
}
