package llm

import "context"

// GenerateRequest holds the parameters for one generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Schema       *Schema         // expected shape of the reply; nil for free text
	Safety       []SafetySetting // static per call
	Temperature  *float64        // nil uses task default
	MaxTokens    *int            // nil uses task default
}

// GenerateResponse holds the raw model reply.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client is implemented by every hosted-model provider.
type Client interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// systemPrompt returns the system instruction with safety settings and,
// when the provider cannot enforce a response schema natively, the schema
// itself appended.
func systemPrompt(req GenerateRequest, embedSchema bool) string {
	s := req.SystemPrompt
	if safety := SafetyInstructions(req.Safety); safety != "" {
		s += "\n\n" + safety
	}
	if embedSchema && req.Schema != nil {
		s += "\n\n" + req.Schema.Instructions()
	}
	return s
}
