// Package file provides a file-based DataFetcher implementation for the config package.
//
// Construction validates that the path names an existing regular file. Every
// call to Fetch opens the file, reads it fully and closes it again, so edits
// made between calls are always observed.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/path/to/config.yaml")()
//	if err != nil {
//	    // Handle error: file not found, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
// Error Handling:
//   - Construction returns error if the path cannot be stat'ed or is not a regular file
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
//   - Use errors.Is(err, fs.ErrNotExist) to check for missing files
package file
