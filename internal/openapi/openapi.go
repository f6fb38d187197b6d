package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document is an OpenAPI specification reduced to the parts the Postman
// generator consumes. Paths and the operations within them keep the order
// they have in the source document.
type Document struct {
	Paths []Path
}

// Path is a single entry of the document's paths object.
type Path struct {
	// Pattern is the URL template as written in the document, e.g. "/wallets/{id}".
	Pattern    string
	Operations []Operation
}

// Operation is one key of a path item. The key is recorded as-is; whether it
// actually names an HTTP method is the caller's concern, since path items may
// also carry keys like "parameters" or "summary".
type Operation struct {
	Method string
	// Summary is nil when the document omits the field. An explicit empty
	// string is kept as-is so the generated request name stays empty too.
	Summary        *string
	HasRequestBody bool
}

// operationDoc captures the operation fields we care about. RequestBody is a
// presence check only; its content is never inspected.
type operationDoc struct {
	Summary     *string         `json:"summary"`
	RequestBody json.RawMessage `json:"requestBody"`
}

// Parse reads an OpenAPI document from JSON. A document without a paths key
// is valid and yields an empty Paths slice. No schema validation is
// performed beyond the JSON syntax itself.
func Parse(data []byte) (*Document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}

	doc := &Document{Paths: []Path{}}

	rawPaths, ok := top["paths"]
	if !ok {
		return doc, nil
	}

	err := walkObject(rawPaths, func(pattern string, rawItem json.RawMessage) error {
		path := Path{Pattern: pattern}
		err := walkObject(rawItem, func(method string, rawOp json.RawMessage) error {
			op := Operation{Method: method}
			// Non-operation keys ("parameters", "summary", ...) hold
			// values that are not operation objects; they decode to the
			// zero operation and are filtered out by the generator.
			var details operationDoc
			if json.Unmarshal(rawOp, &details) == nil {
				op.Summary = details.Summary
				op.HasRequestBody = details.RequestBody != nil
			}
			path.Operations = append(path.Operations, op)
			return nil
		})
		if err != nil {
			return err
		}
		doc.Paths = append(doc.Paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// walkObject visits the members of a JSON object in document order. The
// standard decoder's map form would lose key order, which the generator's
// output ordering depends on, so the object is walked token by token.
func walkObject(raw json.RawMessage, visit func(key string, value json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("invalid OpenAPI document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("invalid OpenAPI document: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("invalid OpenAPI document: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("invalid OpenAPI document: expected object key, got %v", keyTok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("invalid OpenAPI document: %w", err)
		}

		if err := visit(key, value); err != nil {
			return err
		}
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("invalid OpenAPI document: %w", err)
	}

	return nil
}
