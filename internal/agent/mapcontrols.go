package agent

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/ahsenmahmood/nist-sentinel/internal/catalog"
	"github.com/ahsenmahmood/nist-sentinel/internal/llm"
	"github.com/ahsenmahmood/nist-sentinel/internal/prompts"
	"github.com/ahsenmahmood/nist-sentinel/internal/types"
)

// mapInputLimit caps the filtered content sent with the mapping prompt.
const mapInputLimit = 15000

//go:embed mapping_schema.json
var mappingSchema string

// MapToControls asks the model for explicit control mappings as JSON,
// validates the response against the mapping schema, and drops entries
// that reference publications outside the trusted catalog. On failure
// an empty mapping set is returned along with the error.
func (a *Agent) MapToControls(ctx context.Context, filtered string) (*types.ControlMappings, error) {
	empty := &types.ControlMappings{Mappings: []types.ControlMapping{}}

	prompt := prompts.MustGet("digest.json", "map_controls_system") + "\n\n" +
		prompts.Format(prompts.MustGet("digest.json", "map_controls"), map[string]string{
			"ReferenceGuide": catalog.ReferenceGuide(),
			"Content":        truncate(filtered, mapInputLimit),
		})

	raw, err := a.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return empty, fmt.Errorf("failed to map controls: %w", err)
	}

	mappings, err := ParseMappings(raw)
	if err != nil {
		return empty, err
	}

	return mappings, nil
}

// ParseMappings cleans, parses, schema-checks, and reference-filters a
// raw model mapping response.
func ParseMappings(raw string) (*types.ControlMappings, error) {
	cleaned := llm.CleanJSONBlock(raw)

	schemaResult, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(mappingSchema),
		gojsonschema.NewStringLoader(cleaned),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping response: %w", err)
	}
	if !schemaResult.Valid() {
		return nil, fmt.Errorf("mapping response failed schema validation: %s", schemaResult.Errors()[0])
	}

	var mappings types.ControlMappings
	if err := json.Unmarshal([]byte(cleaned), &mappings); err != nil {
		return nil, fmt.Errorf("failed to parse mapping JSON: %w", err)
	}

	return filterByReference(&mappings), nil
}

// filterByReference removes mappings that cite unknown publication
// identifiers. Entries without an identifier are kept: they map
// cross-cutting content rather than a single source.
func filterByReference(mappings *types.ControlMappings) *types.ControlMappings {
	valid := make([]types.ControlMapping, 0, len(mappings.Mappings))
	for _, m := range mappings.Mappings {
		if m.PublicationID == "" {
			valid = append(valid, m)
			continue
		}
		if _, ok := catalog.Lookup(m.PublicationID); ok {
			valid = append(valid, m)
		}
	}
	return &types.ControlMappings{Mappings: valid}
}
