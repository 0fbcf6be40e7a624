package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaJSON reflects the configuration struct into a JSON schema,
// rendered as indented JSON. Editors can point at it for completion
// and validation of config.toml equivalents.
func SchemaJSON() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/splitview/config.schema.json"
	schema.Title = "Splitview Configuration"
	schema.Description = "Configuration schema for splitview, a tiling pane workspace for the terminal"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
