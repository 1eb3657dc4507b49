package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	KeyPackageName     = "package_name"
	KeyRepoURLOrPath   = "repo_url_or_path"
	KeyRepoMode        = "repo_mode"
	KeyGraphFileName   = "graph_file_name"
	KeyASCIITreeMode   = "ascii_tree_mode"
	KeyFilterSubstring = "filter_substring"
)

// RequiredKeys lists every configuration key in the
// order in which problems are reported.
var RequiredKeys = []string{
	KeyPackageName,
	KeyRepoURLOrPath,
	KeyRepoMode,
	KeyGraphFileName,
	KeyASCIITreeMode,
	KeyFilterSubstring,
}

var graphExtensions = []string{".png", ".jpg", ".svg"}

var (
	ErrNotFound      = errors.New("configuration file not found")
	ErrInvalidFormat = errors.New("invalid JSON format")
)

// FileError records a failure to load the configuration
// file at Path. Err is either one of the package sentinels
// or the underlying read error.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	switch {
	case errors.Is(e.Err, ErrNotFound):
		return fmt.Sprintf("Configuration file '%s' not found.", e.Path)
	case errors.Is(e.Err, ErrInvalidFormat):
		return fmt.Sprintf("Invalid JSON format in '%s'.", e.Path)
	default:
		return fmt.Sprintf("Failed to read configuration file: %s", e.Err)
	}
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// MissingKeysError is returned when one or more
// required keys are absent.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return itemise("Missing required configuration parameters:", e.Keys)
}

// ValidationError collects every problem found with
// the values of an otherwise complete configuration.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return itemise("Configuration validation failed:", e.Problems)
}

func itemise(header string, items []string) string {
	sb := strings.Builder{}
	sb.WriteString(header)
	for _, i := range items {
		sb.WriteString("\n - ")
		sb.WriteString(i)
	}
	return sb.String()
}
