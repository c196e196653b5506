package output

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how labels are rendered.
type Format string

const (
	// FormatLabels is one key=value line per label, newline separated.
	FormatLabels Format = "labels"

	// FormatYAML is a docker-compose style labels list.
	FormatYAML Format = "yaml"

	// FormatCompose merges the labels into a service of an existing compose file.
	FormatCompose Format = "compose"
)

// ParseFormat validates a format name. Empty selects FormatLabels.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatLabels:
		return FormatLabels, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatCompose:
		return FormatCompose, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// RenderLines joins lines with newlines. No trailing newline is added.
func RenderLines(lines []string) []byte {
	return []byte(strings.Join(lines, "\n"))
}

type labelList struct {
	Labels []string `yaml:"labels"`
}

// RenderYAML renders lines as an ordered `labels:` sequence.
func RenderYAML(lines []string) ([]byte, error) {
	out, err := yaml.Marshal(labelList{Labels: lines})
	if err != nil {
		return nil, fmt.Errorf("marshal labels: %w", err)
	}
	return out, nil
}

// splitLabel splits a key=value line on the first '='.
func splitLabel(line string) (string, string) {
	key, value, _ := strings.Cut(line, "=")
	return key, value
}
