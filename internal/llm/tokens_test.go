package llm

import "testing"

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"short", "hi", 1},
		{"exactly four chars", "test", 1},
		{"five chars rounds up", "hello", 2},
		{"typical sentence", "The quick brown fox jumps over the lazy dog.", 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateTokens(tt.input)
			if got != tt.want {
				t.Errorf("EstimateTokens(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestEstimateRequestTokens(t *testing.T) {
	tests := []struct {
		name string
		req  GenerateRequest
		want int
	}{
		{
			name: "empty request",
			req:  GenerateRequest{},
			want: 8, // framing only
		},
		{
			name: "prompts only",
			req:  GenerateRequest{SystemPrompt: "test", UserPrompt: "hello"},
			want: 8 + 1 + 2,
		},
		{
			name: "with schema",
			req: GenerateRequest{
				UserPrompt: "hello",
				Schema:     &Schema{Name: "out", Definition: map[string]any{"type": "object"}},
			},
			// framing(8) + "hello"(2) + `{"type":"object"}`(5) + name(1) + schema framing(4)
			want: 8 + 2 + 5 + 1 + 4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateRequestTokens(tt.req)
			if got != tt.want {
				t.Errorf("EstimateRequestTokens() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEstimateRequestTokens_SafetyCounts(t *testing.T) {
	base := GenerateRequest{UserPrompt: "hello"}
	withSafety := base
	withSafety.Safety = []SafetySetting{{Category: HarmHarassment, Threshold: BlockMediumAndAbove}}

	if EstimateRequestTokens(withSafety) <= EstimateRequestTokens(base) {
		t.Error("safety settings should add to the estimate")
	}
}
