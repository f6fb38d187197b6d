package main

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// validateOpenAPI checks the structure of the shipped OpenAPI specification
// before it is fed to the Postman generator or served by the API.
func main() {
	specFile := "api/openapi.yaml"
	if len(os.Args) > 1 {
		specFile = os.Args[1]
	}

	data, err := os.ReadFile(specFile)
	if err != nil {
		log.Fatalf("Failed to read spec file: %v", err)
	}

	var spec map[string]interface{}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		log.Fatalf("Failed to parse spec file: %v", err)
	}

	problems := validateSpec(spec)
	if len(problems) > 0 {
		fmt.Println("✗ Validation failed:")
		for _, p := range problems {
			fmt.Printf("  - %s\n", p)
		}
		os.Exit(1)
	}

	fmt.Println("✓ OpenAPI specification is valid")
	fmt.Printf("  Version: %v\n", spec["openapi"])
	if info, ok := spec["info"].(map[string]interface{}); ok {
		fmt.Printf("  Title: %v\n", info["title"])
	}
	if paths, ok := spec["paths"].(map[string]interface{}); ok {
		fmt.Printf("  Paths: %d\n", len(paths))
	}
}

// validateSpec returns a list of structural problems, empty when the
// document is usable.
func validateSpec(spec map[string]interface{}) []string {
	var problems []string

	for _, field := range []string{"openapi", "info", "paths"} {
		if _, ok := spec[field]; !ok {
			problems = append(problems, fmt.Sprintf("missing required field: %s", field))
		}
	}

	if version, ok := spec["openapi"].(string); ok && version < "3.0.0" {
		problems = append(problems, fmt.Sprintf("unsupported OpenAPI version: %s (requires 3.0.0+)", version))
	}

	if info, ok := spec["info"].(map[string]interface{}); ok {
		for _, field := range []string{"title", "version"} {
			if _, ok := info[field]; !ok {
				problems = append(problems, fmt.Sprintf("missing required info field: %s", field))
			}
		}
	} else if _, present := spec["info"]; present {
		problems = append(problems, "info must be an object")
	}

	if paths, ok := spec["paths"].(map[string]interface{}); ok {
		if len(paths) == 0 {
			problems = append(problems, "paths object is empty")
		}
	} else if _, present := spec["paths"]; present {
		problems = append(problems, "paths must be an object")
	}

	return problems
}
