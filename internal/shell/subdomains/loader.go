// Package subdomains reads the tenant subdomain list from disk.
package subdomains

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// ErrFileNotFound is returned when the subdomains file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrReadFailed is returned when the file exists but cannot be read.
	ErrReadFailed = errors.New("read failed")
)

// LoadError wraps errors with the path that failed to load.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if errors.Is(e.Err, ErrFileNotFound) {
		return fmt.Sprintf("File '%s' not found", e.Path)
	}
	return fmt.Sprintf("reading '%s': %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// =============================================================================
// Loading
// =============================================================================

// Load reads one subdomain per line from path. Lines are trimmed and blank
// lines dropped; order and duplicates are kept.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Path: path, Err: ErrFileNotFound}
		}
		return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: %v", ErrReadFailed, err)}
	}
	defer f.Close()

	subs, err := Parse(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: %v", ErrReadFailed, err)}
	}
	return subs, nil
}

// Parse reads subdomains from r using the same rules as Load. Lines have
// no length limit.
func Parse(r io.Reader) ([]string, error) {
	subs := []string{}
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			subs = append(subs, trimmed)
		}
		if errors.Is(err, io.EOF) {
			return subs, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
