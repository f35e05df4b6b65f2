package llm

import "encoding/json"

// charsPerToken is the average number of characters per token for English
// text. Real tokenizers vary; this is only used for call logging.
const charsPerToken = 4

// EstimateTokens returns a rough token count for a string.
func EstimateTokens(s string) int {
	if len(s) == 0 {
		return 0
	}
	return (len(s) + charsPerToken - 1) / charsPerToken // round up
}

// EstimateRequestTokens returns the estimated prompt size of a request,
// counting both instructions, the response schema and per-message framing.
func EstimateRequestTokens(req GenerateRequest) int {
	tokens := 8 // two messages, role tokens and delimiters
	tokens += EstimateTokens(req.SystemPrompt)
	tokens += EstimateTokens(req.UserPrompt)
	tokens += EstimateTokens(SafetyInstructions(req.Safety))
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			tokens += EstimateTokens(string(def))
		}
		tokens += EstimateTokens(req.Schema.Name) + 4
	}
	return tokens
}
