package stats

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const documentSchemaURL = "schema://tiltwelve/statistics.json"

// documentSchema describes the persisted statistics document:
// {"3": {"3x4": {"correct": 1, "total": 2}}}
var documentSchema = map[string]any{
	"type": "object",
	"propertyNames": map[string]any{
		"pattern": "^[0-9]+$",
	},
	"additionalProperties": map[string]any{
		"type": "object",
		"propertyNames": map[string]any{
			"pattern": "^[0-9]+x[0-9]+$",
		},
		"additionalProperties": map[string]any{
			"type":     "object",
			"required": []any{"correct", "total"},
			"properties": map[string]any{
				"correct": map[string]any{"type": "integer", "minimum": 0},
				"total":   map[string]any{"type": "integer", "minimum": 0},
			},
		},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, not Go maps with typed slices.
		raw, err := json.Marshal(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(raw, &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(documentSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(documentSchemaURL)
	})
	return compiled, compileErr
}

// document is the persisted shape, keyed by multiplicand then fact key.
type document map[string]map[string]Record

// decodeDocument parses and validates a persisted statistics document.
func decodeDocument(raw string) (document, error) {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var doc document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return doc, nil
}
