package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafetyInstructions(t *testing.T) {
	got := SafetyInstructions([]SafetySetting{
		{Category: HarmHateSpeech, Threshold: BlockOnlyHigh},
		{Category: HarmDangerousContent, Threshold: BlockNone},
	})
	want := "Content safety:\n" +
		"- Hate speech: refuse only clearly severe content.\n" +
		"- Dangerous content: no additional restriction."
	assert.Equal(t, want, got)
}

func TestSafetyInstructions_Empty(t *testing.T) {
	assert.Empty(t, SafetyInstructions(nil))
}

func TestSafetyInstructions_UnknownValuesPassThrough(t *testing.T) {
	got := SafetyInstructions([]SafetySetting{{Category: "HARM_CATEGORY_OTHER", Threshold: "BLOCK_SOMETIMES"}})
	assert.Contains(t, got, "- HARM_CATEGORY_OTHER: BLOCK_SOMETIMES.")
}

func TestSystemPrompt(t *testing.T) {
	req := GenerateRequest{
		SystemPrompt: "You are helpful.",
		Safety:       []SafetySetting{{Category: HarmHarassment, Threshold: BlockMediumAndAbove}},
		Schema:       &Schema{Name: "out", Definition: Object(map[string]any{"a": Prop("string", "A")})},
	}

	native := systemPrompt(req, false)
	assert.Contains(t, native, "Harassment: refuse moderate or severe content.")
	assert.NotContains(t, native, "JSON schema")

	embedded := systemPrompt(req, true)
	assert.Contains(t, embedded, "JSON schema (out)")
	assert.Contains(t, embedded, `"additionalProperties": false`)
}
