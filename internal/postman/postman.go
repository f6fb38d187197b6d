package postman

import (
	"strings"

	"degen/internal/openapi"
)

const (
	collectionName        = "Degen API"
	collectionDescription = "API for managing cryptocurrency wallets"
	schemaURL             = "https://schema.getpostman.com/json/collection/v2.1.0/collection.json"

	environmentName = "Degen API Environment"
	defaultBaseURL  = "http://localhost:3000"

	// exampleBody is attached to every request that declares a request body.
	// The source schema is intentionally not consulted.
	exampleBody = `{"address": "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"}`
)

// supportedMethods are the only path item keys that become requests.
// Anything else (options, head, vendor extensions, "parameters", ...) is
// skipped.
var supportedMethods = map[string]bool{
	"get":    true,
	"post":   true,
	"put":    true,
	"delete": true,
	"patch":  true,
}

// Collection is a Postman collection in the v2.1.0 schema.
type Collection struct {
	Info Info   `json:"info"`
	Item []Item `json:"item"`
}

// Info describes the collection itself.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Schema      string `json:"schema"`
}

// Item is a top-level collection entry. Each one is a folder wrapping a
// single request, which is the structure Postman expects for importable
// collections.
type Item struct {
	Name string        `json:"name"`
	Item []RequestItem `json:"item"`
}

// RequestItem holds one request and its (always empty) saved responses.
type RequestItem struct {
	Name     string     `json:"name"`
	Request  Request    `json:"request"`
	Response []Response `json:"response"`
}

// Request describes a single HTTP request.
type Request struct {
	Method string   `json:"method"`
	Header []Header `json:"header"`
	URL    URL      `json:"url"`
	Body   *Body    `json:"body,omitempty"`
}

// Header is a key/value request header.
type Header struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// URL is a Postman URL object. Raw keeps the {{base_url}} variable so the
// environment file controls the target host.
type URL struct {
	Raw  string   `json:"raw"`
	Host []string `json:"host"`
	Path []string `json:"path"`
}

// Body is a raw request body.
type Body struct {
	Mode    string      `json:"mode"`
	Raw     string      `json:"raw"`
	Options BodyOptions `json:"options"`
}

// BodyOptions selects the editor language Postman uses for the raw body.
type BodyOptions struct {
	Raw RawOptions `json:"raw"`
}

// RawOptions names the raw body language.
type RawOptions struct {
	Language string `json:"language"`
}

// Response is a saved example response. None are ever generated, but the
// key must serialize as an empty array.
type Response struct{}

// Environment is a Postman environment file.
type Environment struct {
	Name   string             `json:"name"`
	Values []EnvironmentValue `json:"values"`
}

// EnvironmentValue is one environment variable.
type EnvironmentValue struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Enabled bool   `json:"enabled"`
}

// Build converts an OpenAPI document into a Postman collection. Items come
// out in document order: paths first, then methods within each path.
func Build(doc *openapi.Document) Collection {
	collection := Collection{
		Info: Info{
			Name:        collectionName,
			Description: collectionDescription,
			Schema:      schemaURL,
		},
		Item: []Item{},
	}

	for _, path := range doc.Paths {
		for _, op := range path.Operations {
			if !supportedMethods[strings.ToLower(op.Method)] {
				continue
			}
			collection.Item = append(collection.Item, buildItem(path.Pattern, op))
		}
	}

	return collection
}

// buildItem wraps a single request in its folder item.
func buildItem(pattern string, op openapi.Operation) Item {
	method := strings.ToUpper(op.Method)
	fallback := method + " " + pattern

	name := fallback
	if op.Summary != nil {
		name = *op.Summary
	}

	request := Request{
		Method: method,
		Header: []Header{
			{Key: "Content-Type", Value: "application/json"},
		},
		URL: URL{
			Raw:  "{{base_url}}" + pattern,
			Host: []string{"{{base_url}}"},
			Path: strings.Split(strings.Trim(pattern, "/"), "/"),
		},
	}

	if op.HasRequestBody {
		request.Body = &Body{
			Mode:    "raw",
			Raw:     exampleBody,
			Options: BodyOptions{Raw: RawOptions{Language: "json"}},
		}
	}

	return Item{
		Name: fallback,
		Item: []RequestItem{
			{
				Name:     name,
				Request:  request,
				Response: []Response{},
			},
		},
	}
}

// NewEnvironment returns the fixed environment template shipped alongside
// every generated collection.
func NewEnvironment() Environment {
	return Environment{
		Name: environmentName,
		Values: []EnvironmentValue{
			{Key: "base_url", Value: defaultBaseURL, Enabled: true},
		},
	}
}
