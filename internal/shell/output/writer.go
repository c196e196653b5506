package output

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// StdoutPath is the destination name that writes to the writer's Stdout.
const StdoutPath = "-"

// Writer renders labels in a Format and writes them to a path.
type Writer struct {
	Format Format

	// ComposeService is the service to label when Format is FormatCompose.
	ComposeService string

	// Stdout receives the output when the path is StdoutPath.
	Stdout io.Writer

	Logger *slog.Logger
}

// NewWriter creates a Writer. A nil logger discards log output.
func NewWriter(format Format, composeService string, stdout io.Writer, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Writer{
		Format:         format,
		ComposeService: composeService,
		Stdout:         stdout,
		Logger:         logger,
	}
}

// Write renders lines and writes them to path, replacing any existing
// content. Every failure is returned as a *WriteError.
func (w *Writer) Write(path string, lines []string) error {
	data, err := w.render(path, lines)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	w.Logger.Debug("writing output",
		"path", path,
		"format", string(w.Format),
		"lines", len(lines),
		"bytes", len(data),
	)

	if path == StdoutPath {
		if _, err := w.Stdout.Write(data); err != nil {
			return &WriteError{Path: path, Err: fmt.Errorf("%w: %v", ErrWriteFailed, err)}
		}
		return nil
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return &WriteError{Path: path, Err: fmt.Errorf("%w: %v", ErrWriteFailed, err)}
	}
	return nil
}

func (w *Writer) render(path string, lines []string) ([]byte, error) {
	switch w.Format {
	case FormatLabels, "":
		return RenderLines(lines), nil
	case FormatYAML:
		return RenderYAML(lines)
	case FormatCompose:
		if path == StdoutPath {
			return nil, fmt.Errorf("%w: compose output needs a file path", ErrInvalidCompose)
		}
		existing, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCompose, err)
		}
		return MergeCompose(existing, filepath.Dir(path), w.ComposeService, lines)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(w.Format))
	}
}
