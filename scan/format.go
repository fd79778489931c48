package scan

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects the encoding of a network description.
type Format int

const (
	// Text is the line-oriented "Valve AA has flow rate=..." form.
	Text Format = iota
	// YAML is a document with a top-level "valves" list.
	YAML
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "text" or "yaml" (case-insensitive) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "text", "txt", "":
		return Text, nil
	case "yaml", "yml":
		return YAML, nil
	}

	return 0, fmt.Errorf("ParseFormat(%q): %w", name, ErrUnknownFormat)
}

// FormatOf picks the format by file extension: .yaml and .yml are YAML,
// everything else is text.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return Text
	}
}
