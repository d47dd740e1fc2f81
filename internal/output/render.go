package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v3"
)

// Format selects how command results are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unsupported output format '%s' (expected text, json or yaml)", s)
}

// Encode writes v to w as JSON or YAML. Text output is rendered by each
// command and is rejected here.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		_, err = w.Write(pretty.Pretty(data))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %s cannot be encoded", format)
	}
}
