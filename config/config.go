package config

import (
	"fmt"
	"log/slog"
)

// Parser decodes raw configuration bytes into target.
type Parser interface {
	Parse(data []byte, target any) error
}

// DataFetcher returns the current raw configuration bytes. Implementations read
// their source on every call.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Load fetches once and decodes the result into a generic document
// (map[string]any, []any or a scalar). Empty data yields a nil document without
// calling the parser.
func Load(parser Parser, fetcher DataFetcher) (any, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("fetching configuration: %w", err)
	}

	if len(data) == 0 {
		slog.Debug("configuration data is empty")

		return nil, nil //nolint:nilnil // an empty document is valid
	}

	var document any

	err = parser.Parse(data, &document)
	if err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	return document, nil
}
