// Package config provides the read/parse pipeline used by the model configuration accessor.
//
// The package uses an interface-based design with two extension points:
//   - Parser: decodes raw bytes into a document (see config/parser/yaml)
//   - DataFetcher: retrieves raw bytes (see config/fetcher/file)
//
// Load runs both on every call; nothing is cached between calls.
//
// # Example
//
//	fetcher, err := filefetcher.NewFetcher("config.yaml")()
//	if err != nil {
//	    return err
//	}
//
//	doc, err := config.Load(yamlparser.NewParser(), fetcher)
package config
