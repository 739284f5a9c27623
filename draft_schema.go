package tfgov

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const draftSchemaURL = "https://tfgov.schemas.local/draft.schema.json"

//go:embed draft.schema.json
var draftSchemaJSON []byte

var compileDraftSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(draftSchemaURL, bytes.NewReader(draftSchemaJSON)); err != nil {
		return nil, fmt.Errorf("draft schema load failed: %w", err)
	}

	return c.Compile(draftSchemaURL)
})

// validateDraftSchema checks a JSON draft document against the embedded draft schema.
func validateDraftSchema(data []byte) error {
	schema, err := compileDraftSchema()
	if err != nil {
		return err
	}

	var doc any
	if err = json.Unmarshal(data, &doc); err != nil {
		return err
	}

	if err := schema.Validate(doc); err != nil {
		return NewInvalidDraftError(err)
	}

	return nil
}
