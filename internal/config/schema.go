// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	jschema "github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// schemaCache holds the compiled schema to avoid recompilation.
var schemaCache *jschema.Schema

// SchemaID is the schema $id for use in config.yml files.
const SchemaID = "https://shedux.dev/schemas/extraplaceholders.schema.json"

// GenerateSchema generates a JSON Schema from the Config struct.
func GenerateSchema() ([]byte, error) {
	// Every key in config.yml is optional: absent keys fall back to
	// the built-in defaults, so nothing is marked required.
	r := jsonschema.Reflector{
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	schema := r.Reflect(&Config{})

	schema.ID = jsonschema.ID(SchemaID)
	schema.Title = "ExtraPlaceholders Configuration"
	schema.Description = "Schema for the expansion's config.yml"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// ValidateSchema validates YAML data against the configuration JSON
// Schema. Empty input is valid: it means "all defaults".
func ValidateSchema(data []byte) error {
	if len(data) == 0 {
		return nil
	}

	var yamlData any
	if err := yaml.Unmarshal(data, &yamlData); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	if yamlData == nil {
		return nil
	}

	jsonData := convertToJSONTypes(yamlData)

	sch, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	if err := sch.Validate(jsonData); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// getCompiledSchema returns the cached compiled schema or compiles it.
func getCompiledSchema() (*jschema.Schema, error) {
	if schemaCache != nil {
		return schemaCache, nil
	}

	schemaBytes, err := GenerateSchema()
	if err != nil {
		return nil, err
	}

	var schemaData any
	if err := json.Unmarshal(schemaBytes, &schemaData); err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	c := jschema.NewCompiler()
	if err := c.AddResource("schema.json", schemaData); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	sch, err := c.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	schemaCache = sch
	return sch, nil
}

// convertToJSONTypes converts YAML-parsed data to JSON-compatible
// types. yaml.Unmarshal already yields map[string]any, but nested
// structures need the conversion applied recursively.
func convertToJSONTypes(v any) any {
	switch val := v.(type) {
	case map[string]any:
		result := make(map[string]any, len(val))
		for k, item := range val {
			result[k] = convertToJSONTypes(item)
		}
		return result
	case []any:
		result := make([]any, len(val))
		for i, item := range val {
			result[i] = convertToJSONTypes(item)
		}
		return result
	case string, int, int64, float64, bool, nil:
		return val
	default:
		if b, err := json.Marshal(val); err == nil {
			var result any
			if err := json.Unmarshal(b, &result); err == nil {
				return result
			}
		}
		return val
	}
}
