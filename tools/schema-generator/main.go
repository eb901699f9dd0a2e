package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/verdantsim/verdant/pkg/quickstart"
)

func main() {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	schema := r.Reflect(&quickstart.Config{})
	schema.Title = "Verdant Quickstart Configuration"
	schema.Description = "Schema for the 'quickstart' record in settings.yml."

	// All fields are optional; missing ones fall back to defaults.
	schema.Required = nil

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("Error marshaling schema: %v", err)
	}

	if err := os.WriteFile("quickstart.schema.json", data, 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated quickstart schema at quickstart.schema.json")
}
