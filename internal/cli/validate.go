package cli

import (
	"fmt"
	"os"

	"github.com/craftcon/craftcon/internal/config"
)

// Validate checks a configuration file against the JSON Schema and reports
// every problem found.
func Validate(path string) error {
	if path == "" {
		path = config.Find()
	}
	if path == "" {
		return fmt.Errorf("no configuration file found")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	result, err := config.ValidateWithSchema(path, content)
	if err != nil {
		return err
	}

	if result.Valid {
		fmt.Printf("✓ %s is valid\n", path)
		return nil
	}

	fmt.Printf("✗ %s has %d problem(s):\n", path, len(result.Errors))
	for _, e := range result.Errors {
		fmt.Printf("  - %s: %s\n", e.Field, e.Message)
	}
	return fmt.Errorf("validation failed")
}
