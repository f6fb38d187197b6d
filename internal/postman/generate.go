package postman

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"degen/internal/openapi"
)

// EnvironmentFileName is the fixed basename of the environment file written
// next to every generated collection.
const EnvironmentFileName = "degen-api.postman_environment.json"

// Generate reads the OpenAPI JSON document at specPath, writes the Postman
// collection to outputPath and the environment file beside it, and returns
// the environment file's path. The output directory is created if needed.
func Generate(specPath, outputPath string) (string, error) {
	data, err := os.ReadFile(specPath)
	if err != nil {
		return "", fmt.Errorf("failed to read OpenAPI spec: %w", err)
	}

	doc, err := openapi.Parse(data)
	if err != nil {
		return "", fmt.Errorf("failed to parse OpenAPI spec: %w", err)
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := writeJSON(outputPath, Build(doc)); err != nil {
		return "", fmt.Errorf("failed to write collection: %w", err)
	}

	envPath := filepath.Join(outputDir, EnvironmentFileName)
	if err := writeJSON(envPath, NewEnvironment()); err != nil {
		return "", fmt.Errorf("failed to write environment: %w", err)
	}

	return envPath, nil
}

// writeJSON serializes v with two-space indentation, the format Postman's
// own exports use.
func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
