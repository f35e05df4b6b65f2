package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	LLMProvider      string // openai, anthropic, ollama, deepseek
	OpenAIKey        string
	AnthropicKey     string // API key (X-Api-Key header)
	AnthropicToken   string // OAuth token (Authorization: Bearer header)
	DeepseekKey      string
	DeepseekEndpoint string
	LLMModel         string
	OllamaBaseURL    string
	LogCalls         bool

	ServerAddr  string
	Environment string // development, production
	CORSOrigins []string
	LogFile     string

	DiscordToken string
}

func Load() *Config {
	_ = godotenv.Load() // ignore error if no .env

	return &Config{
		LLMProvider:      envOr("LLM_PROVIDER", "openai"),
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		AnthropicKey:     os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicToken:   os.Getenv("ANTHROPIC_AUTH_TOKEN"),
		DeepseekKey:      os.Getenv("DEEPSEEK_API_KEY"),
		DeepseekEndpoint: envOr("DEEPSEEK_API_ENDPOINT", "https://api.deepseek.com/v1"),
		LLMModel:         os.Getenv("LLM_MODEL"),
		OllamaBaseURL:    envOr("OLLAMA_BASE_URL", "http://localhost:11434/v1"),
		LogCalls:         envBool("LLM_LOG_CALLS", true),
		ServerAddr:       envOr("SERVER_ADDR", ":8080"),
		Environment:      envOr("ENVIRONMENT", "development"),
		CORSOrigins:      splitList(envOr("CORS_ORIGINS", "*")),
		LogFile:          os.Getenv("LOG_FILE"),
		DiscordToken:     os.Getenv("DISCORD_BOT_TOKEN"),
	}
}

// APIKey returns the credential for the configured provider.
func (c *Config) APIKey() string {
	switch c.LLMProvider {
	case "anthropic":
		return c.AnthropicKey
	case "deepseek":
		return c.DeepseekKey
	case "ollama":
		return "ollama"
	default:
		return c.OpenAIKey
	}
}

// BaseURL returns the endpoint override for providers that need one.
func (c *Config) BaseURL() string {
	switch c.LLMProvider {
	case "ollama":
		return c.OllamaBaseURL
	case "deepseek":
		return c.DeepseekEndpoint
	default:
		return ""
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
