package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Schema is a compiled JSON Schema that model output must satisfy.
type Schema struct {
	name     string
	compiled *jsonschema.Schema
}

// CompileSchema compiles a draft 2020-12 schema document.
func CompileSchema(name, src string) (*Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	url := fmt.Sprintf("https://interviewprep.local/llm/%s.schema.json", name)
	if err := c.AddResource(url, strings.NewReader(src)); err != nil {
		return nil, fmt.Errorf("llm schema %s: load: %w", name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("llm schema %s: compile: %w", name, err)
	}
	return &Schema{name: name, compiled: compiled}, nil
}

// MustCompileSchema is CompileSchema that panics on error. For package-level schemas.
func MustCompileSchema(name, src string) *Schema {
	s, err := CompileSchema(name, src)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Validate checks a raw JSON document against the schema.
func (s *Schema) Validate(raw []byte) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if err := s.compiled.Validate(doc); err != nil {
		return fmt.Errorf("schema %s: %w", s.name, err)
	}
	return nil
}
