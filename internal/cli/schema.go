package cli

import (
	"fmt"
	"os"

	"github.com/craftcon/craftcon/internal/config"
)

// Schema prints the configuration JSON Schema to stdout, or writes it to
// outputPath when one is given.
func Schema(outputPath string) error {
	schema := []byte(config.GetSchemaJSON())
	if outputPath == "" {
		_, err := os.Stdout.Write(schema)
		return err
	}
	if err := os.WriteFile(outputPath, schema, 0o644); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	fmt.Println("Schema written to", outputPath)
	return nil
}
