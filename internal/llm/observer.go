package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LLMCallEvent describes one completed generation call.
type LLMCallEvent struct {
	Task         TaskType
	Model        string
	PromptTokens int // estimate
	LatencyMs    int64
	Success      bool
	Err          error
}

// Observer receives an event after every generation call.
type Observer interface {
	OnLLMCall(ctx context.Context, event LLMCallEvent)
}

type NoopObserver struct{}

func (NoopObserver) OnLLMCall(context.Context, LLMCallEvent) {}

// ZapObserver logs each call.
type ZapObserver struct {
	log *zap.SugaredLogger
}

func NewZapObserver(log *zap.SugaredLogger) *ZapObserver {
	return &ZapObserver{log: log}
}

func (o *ZapObserver) OnLLMCall(_ context.Context, e LLMCallEvent) {
	fields := []any{
		"task", e.Task,
		"model", e.Model,
		"prompt_tokens", e.PromptTokens,
		"latency_ms", e.LatencyMs,
	}
	if !e.Success {
		o.log.Warnw("llm call failed", append(fields, "error", e.Err)...)
		return
	}
	o.log.Infow("llm call", fields...)
}

type observedClient struct {
	next     Client
	observer Observer
}

// Observe wraps c so every call is timed and reported to observer.
func Observe(c Client, observer Observer) Client {
	if observer == nil {
		return c
	}
	return &observedClient{next: c, observer: observer}
}

func (c *observedClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()
	resp, err := c.next.Generate(ctx, req)
	latency := time.Since(start).Milliseconds()

	event := LLMCallEvent{
		Task:         req.Task,
		PromptTokens: EstimateRequestTokens(req),
		LatencyMs:    latency,
		Success:      err == nil,
		Err:          err,
	}
	if resp != nil {
		resp.LatencyMs = latency
		event.Model = resp.Model
	}
	c.observer.OnLLMCall(ctx, event)
	return resp, err
}
