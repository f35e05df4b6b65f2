package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"
)

// LangChainClient drives any OpenAI-compatible endpoint through langchaingo.
// It is used for DeepSeek, whose JSON mode accepts json_object but not a
// full schema.
type LangChainClient struct {
	model llms.Model
	name  string
	tasks map[TaskType]TaskConfig
}

func NewDeepseekClient(apiKey, endpoint, model string, tasks map[TaskType]TaskConfig) (*LangChainClient, error) {
	if model == "" {
		model = "deepseek-chat"
	}
	m, err := lcopenai.New(
		lcopenai.WithToken(apiKey),
		lcopenai.WithBaseURL(endpoint),
		lcopenai.WithModel(model),
		lcopenai.WithResponseFormat(&lcopenai.ResponseFormat{
			Type: "json_object",
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create deepseek client: %w", err)
	}
	return &LangChainClient{model: m, name: model, tasks: tasks}, nil
}

func (c *LangChainClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	temp, maxTok := resolveParams(c.tasks, req)

	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt(req, true))},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(req.UserPrompt)},
		},
	}

	resp, err := c.model.GenerateContent(ctx, messages,
		llms.WithTemperature(temp),
		llms.WithMaxTokens(maxTok),
	)
	if err != nil {
		return nil, fmt.Errorf("deepseek chat: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Content) == "" {
		return nil, ErrEmptyResponse
	}

	return &GenerateResponse{Text: resp.Choices[0].Content, Model: c.name}, nil
}
