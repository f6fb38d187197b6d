package main

import (
	"fmt"
	"io"
	"os"

	"degen/internal/postman"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run converts the OpenAPI JSON spec into a Postman collection plus an
// environment file. The argument check happens before any file is touched.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stdout, "Usage: generate-postman <openapi_file> <output_file>")
		fmt.Fprintln(stdout, "  openapi_file: Path to OpenAPI JSON file")
		fmt.Fprintln(stdout, "  output_file: Output path for the Postman collection")
		return 1
	}

	specFile := args[0]
	outputFile := args[1]

	envFile, err := postman.Generate(specFile, outputFile)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to generate Postman collection: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Postman collection saved to: %s\n", outputFile)
	fmt.Fprintf(stdout, "Postman environment saved to: %s\n", envFile)
	return 0
}
