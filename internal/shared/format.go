package shared

import (
	"fmt"
	"strings"
)

// Format is a decade report rendering.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "txt"
)

// ParseFormat normalizes a user-supplied format name. Empty selects CSV.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "txt", "text":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q (want csv, markdown or txt)", ErrInvalidFormat, s)
	}
}

// Label is the human-readable name used in status messages.
func (f Format) Label() string {
	switch f {
	case FormatMarkdown:
		return "Markdown"
	case FormatText:
		return "text"
	default:
		return "CSV"
	}
}
