package llm

import (
	"fmt"
	"strings"
)

type HarmCategory string

const (
	HarmHateSpeech       HarmCategory = "HARM_CATEGORY_HATE_SPEECH"
	HarmDangerousContent HarmCategory = "HARM_CATEGORY_DANGEROUS_CONTENT"
	HarmHarassment       HarmCategory = "HARM_CATEGORY_HARASSMENT"
	HarmSexuallyExplicit HarmCategory = "HARM_CATEGORY_SEXUALLY_EXPLICIT"
)

type HarmThreshold string

const (
	BlockNone           HarmThreshold = "BLOCK_NONE"
	BlockOnlyHigh       HarmThreshold = "BLOCK_ONLY_HIGH"
	BlockMediumAndAbove HarmThreshold = "BLOCK_MEDIUM_AND_ABOVE"
	BlockLowAndAbove    HarmThreshold = "BLOCK_LOW_AND_ABOVE"
)

// SafetySetting pairs a harm category with the level at which content in
// that category should be withheld.
type SafetySetting struct {
	Category  HarmCategory
	Threshold HarmThreshold
}

var categoryLabels = map[HarmCategory]string{
	HarmHateSpeech:       "Hate speech",
	HarmDangerousContent: "Dangerous content",
	HarmHarassment:       "Harassment",
	HarmSexuallyExplicit: "Sexually explicit content",
}

var thresholdRules = map[HarmThreshold]string{
	BlockNone:           "no additional restriction",
	BlockOnlyHigh:       "refuse only clearly severe content",
	BlockMediumAndAbove: "refuse moderate or severe content",
	BlockLowAndAbove:    "refuse any content of this kind, however mild",
}

// SafetyInstructions renders settings as a system prompt section. None of
// the supported providers accept per-category thresholds natively.
func SafetyInstructions(settings []SafetySetting) string {
	if len(settings) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Content safety:")
	for _, s := range settings {
		label, ok := categoryLabels[s.Category]
		if !ok {
			label = string(s.Category)
		}
		rule, ok := thresholdRules[s.Threshold]
		if !ok {
			rule = string(s.Threshold)
		}
		fmt.Fprintf(&b, "\n- %s: %s.", label, rule)
	}
	return b.String()
}
