package file

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrNotRegularFile is returned when the path exists but is neither a directory nor a regular file.
var ErrNotRegularFile = errors.New("path is not a regular file")

// Fetcher implements config.DataFetcher interface for file-based configuration.
// It re-reads the file on every Fetch.
type Fetcher struct {
	filepath string
}

// NewFetcher returns a constructor function that creates a new file-based Fetcher
// with the specified filepath. Construction only checks that the path is a regular file;
// the file is not opened until Fetch.
// This pattern is Fx-friendly, allowing the DI container to control when instantiation happens.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		if !stat.Mode().IsRegular() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrNotRegularFile)
		}

		return &Fetcher{
			filepath: cleanPath,
		}, nil
	}
}

// Path returns the cleaned path the Fetcher reads from.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch opens the file read-only, reads its full contents and closes it.
func (f *Fetcher) Fetch() ([]byte, error) {
	file, err := os.Open(f.filepath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("opening file %q: %w", f.filepath, err)
	}

	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", f.filepath, err)
	}

	return data, nil
}
