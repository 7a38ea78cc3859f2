// Package cli provides JSON and JSONL output helpers.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
)

// IsJSONOutput reports whether --json was requested.
func IsJSONOutput() bool {
	return jsonOutput
}

// IsJSONLOutput reports whether --jsonl was requested.
func IsJSONLOutput() bool {
	return jsonlOutput
}

// WriteOutput encodes value as indented JSON, or as one JSON document per
// element when --jsonl is set and value is a slice.
func WriteOutput(out io.Writer, value any) error {
	if IsJSONLOutput() {
		return writeJSONL(out, value)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func writeJSONL(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice {
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		return nil
	}

	for i := 0; i < rv.Len(); i++ {
		if err := encoder.Encode(rv.Index(i).Interface()); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
	}
	return nil
}
