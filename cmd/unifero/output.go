package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// writeResult serializes a response envelope to stdout or to a file.
// Pretty-printed by default; compact emits a single line.
func writeResult(deps *Dependencies, v any, output string, compact bool) error {
	var (
		data []byte
		err  error
	)
	if compact {
		data, err = json.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}

	if output != "" {
		if err := os.WriteFile(output, append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}
		fmt.Fprintf(deps.Stderr, "wrote %s\n", output)
		return nil
	}

	fmt.Fprintln(deps.Stdout, string(data))
	return nil
}
