package ai

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed prompts/intent.schema.json
var intentSchemaJSON string

var intentSchema = mustSchema(intentSchemaJSON)

func mustSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded schema: %v", err))
	}
	return schema
}

// validateIntentShape checks field types only; enum membership is normalized afterwards.
func validateIntentShape(fields map[string]any) error {
	result, err := intentSchema.Validate(gojsonschema.NewGoLoader(fields))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("intent shape invalid: %s", strings.Join(errs, "; "))
	}
	return nil
}
