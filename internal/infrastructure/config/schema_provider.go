package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// GenerateSchema returns the JSON schema describing the settings file, for
// editors that validate TOML against a schema.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:              "toml",
		AllowAdditionalProperties: false,
	}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/hotbarscroll/hotbarscroll.schema.json"
	schema.Title = "hotbarscroll configuration"
	schema.Description = "Settings for scrolling the hotbar while a modifier key is held"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
