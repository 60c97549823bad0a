package bank

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed data/round1.yaml
var defaultBankYAML []byte

//go:embed data/bank.schema.json
var bankSchemaJSON []byte

const schemaURL = "schema://bank.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// document is the on-disk YAML layout of a bank.
type document struct {
	Round     string     `yaml:"round"`
	Questions []Question `yaml:"questions"`
}

// LoadDefault returns the embedded Round 1 bank.
func LoadDefault() (*Bank, error) {
	return Parse(defaultBankYAML)
}

// DefaultYAML returns the embedded default bank document, for use as a template.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultBankYAML...)
}

// Load reads, validates, and returns the bank stored at path.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Parse decodes a YAML bank document, checks it against the bank schema and
// then validates it semantically.
func Parse(data []byte) (*Bank, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}
	return New(doc.Round, doc.Questions)
}

// validateSchema checks the raw document structure against the embedded schema.
func validateSchema(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse question bank: %w", err)
	}
	if raw == nil {
		return fmt.Errorf("%w: empty document", ErrInvalidBank)
	}

	// The jsonschema library expects JSON values, so round-trip the YAML tree.
	asJSON, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("convert question bank: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(asJSON, &parsed); err != nil {
		return fmt.Errorf("convert question bank: %w", err)
	}

	sch, err := bankSchema()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBank, err)
	}
	return nil
}

func bankSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(bankSchemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
