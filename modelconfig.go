package modelconfig

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-modelconfig/config"
	filefetcher "github.com/0xalexb/hjarta-modelconfig/config/fetcher/file"
	yamlparser "github.com/0xalexb/hjarta-modelconfig/config/parser/yaml"
)

// ErrConfigNotFound is returned by New when no usable configuration file is resolved.
var ErrConfigNotFound = errors.New("config file not found")

// ErrConfigParse is returned when the configuration file is not valid YAML.
var ErrConfigParse = errors.New("error parsing YAML file")

// ErrConfigKeyNotFound is returned when a top-level key is absent from the configuration.
var ErrConfigKeyNotFound = errors.New("key not found")

// ModelConfig reads top-level values from a YAML configuration file.
// The file is read and parsed again on every lookup.
type ModelConfig struct {
	path    string
	fetcher config.DataFetcher
	parser  config.Parser
}

// New resolves the configuration path and checks that it names a regular file.
// A non-empty path reported by host takes precedence over developmentConfig.
// host may be nil.
func New(host PathSource, developmentConfig string) (*ModelConfig, error) {
	path, source := resolvePath(host, developmentConfig)
	if path == "" {
		return nil, fmt.Errorf("%w: config file is not set, please provide a valid path", ErrConfigNotFound)
	}

	fetcher, err := filefetcher.NewFetcher(path)()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigNotFound, err)
	}

	slog.Debug("model config resolved", slog.String("path", fetcher.Path()), slog.String("source", source))

	return &ModelConfig{
		path:    fetcher.Path(),
		fetcher: fetcher,
		parser:  yamlparser.NewParser(),
	}, nil
}

func resolvePath(host PathSource, developmentConfig string) (string, string) {
	if host != nil {
		if injected := host.ConfigPath(); injected != "" {
			return injected, "host"
		}
	}

	return developmentConfig, "development"
}

// Path returns the resolved configuration path.
func (c *ModelConfig) Path() string {
	return c.path
}

// Document reads and parses the whole configuration file.
// An empty file yields a nil document.
func (c *ModelConfig) Document() (any, error) {
	document, err := config.Load(c.parser, c.fetcher)
	if err != nil {
		if errors.Is(err, yamlparser.ErrSyntax) {
			return nil, fmt.Errorf("%w %q: %w", ErrConfigParse, c.path, err)
		}

		return nil, fmt.Errorf("reading config: %w", err)
	}

	return document, nil
}

// Get returns the value of a top-level key, keeping its native YAML type.
// Documents that are empty or not a mapping report every key as missing.
func (c *ModelConfig) Get(key string) (any, error) {
	document, err := c.Document()
	if err != nil {
		return nil, err
	}

	if mapping, ok := document.(map[string]any); ok {
		if value, found := mapping[key]; found {
			slog.Debug("model config lookup", slog.String("path", c.path), slog.String("key", key))

			return value, nil
		}
	}

	return nil, fmt.Errorf("%w: key %q not found in configuration: %v", ErrConfigKeyNotFound, key, document)
}
