package llm

import "fmt"

type ProviderConfig struct {
	Provider  string
	APIKey    string
	AuthToken string // OAuth token (Bearer auth)
	Model     string
	BaseURL   string
	Tasks     map[TaskType]TaskConfig // nil uses DefaultTasks
}

func NewClient(cfg ProviderConfig) (Client, error) {
	tasks := cfg.Tasks
	if tasks == nil {
		tasks = DefaultTasks()
	}
	switch cfg.Provider {
	case "anthropic":
		return NewAnthropicClient(cfg.APIKey, cfg.AuthToken, cfg.Model, cfg.BaseURL, tasks), nil
	case "openai":
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL, tasks), nil
	case "ollama":
		if cfg.Model == "" {
			cfg.Model = "llama3.1"
		}
		return NewOpenAIClient("ollama", cfg.Model, cfg.BaseURL, tasks), nil
	case "deepseek":
		return NewDeepseekClient(cfg.APIKey, cfg.BaseURL, cfg.Model, tasks)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
}
