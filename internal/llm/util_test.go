package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain json", `{"mappings": []}`, `{"mappings": []}`},
		{"json fence", "```json\n{\"mappings\": []}\n```", `{"mappings": []}`},
		{"bare fence", "```\n{\"mappings\": []}\n```", `{"mappings": []}`},
		{"fence with language id", "```js\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  \n{\"a\": 1}\n  ", `{"a": 1}`},
		{"fence no trailing", "```json\n{\"a\": 1}", `{"a": 1}`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestConfig_GetModelFallback(t *testing.T) {
	cfg := &Config{Models: map[ModelTier]string{TierLite: "lite-model"}}

	assert.Equal(t, "lite-model", cfg.GetModel(TierLite))
	// Unconfigured tiers fall back through standard to lite
	assert.Equal(t, "lite-model", cfg.GetModel(TierAdvanced))

	empty := &Config{}
	assert.Equal(t, "", empty.GetModel(TierStandard))
}

func TestDefaultConfig_AllTiers(t *testing.T) {
	cfg := DefaultConfig()
	for _, tier := range []ModelTier{TierLite, TierStandard, TierAdvanced} {
		assert.NotEmpty(t, cfg.GetModel(tier))
	}
}
