package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chris/studydesk/config"
	"github.com/chris/studydesk/internal/cli"
	"github.com/chris/studydesk/internal/llm"
	"github.com/chris/studydesk/internal/logging"
	"github.com/chris/studydesk/internal/planner"
	"github.com/chris/studydesk/internal/study"
)

func main() {
	cfg := config.Load()

	logger := logging.New(logging.Options{File: cfg.LogFile, Debug: !cfg.IsProduction()})
	defer func() { _ = logger.Sync() }()

	client, err := llm.NewClient(llm.ProviderConfig{
		Provider:  cfg.LLMProvider,
		APIKey:    cfg.APIKey(),
		AuthToken: cfg.AnthropicToken,
		Model:     cfg.LLMModel,
		BaseURL:   cfg.BaseURL(),
	})
	if err != nil {
		logger.Fatalw("failed to create LLM client", "provider", cfg.LLMProvider, "error", err)
	}

	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LogCalls {
		observer = llm.NewZapObserver(logger.Named("llm"))
	}

	svc, err := study.NewService(llm.Observe(client, observer), logger)
	if err != nil {
		logger.Fatalw("failed to build study service", "error", err)
	}

	app := &cli.App{
		Config: cfg,
		Store:  planner.NewSeededStore(time.Now()),
		Study:  svc,
		Log:    logger,
	}

	if err := cli.NewRootCmd(app).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}
