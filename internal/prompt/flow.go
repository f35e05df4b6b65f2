// Package prompt wraps a model call in a typed contract: the input is
// validated before any request is made and the reply must decode into, and
// validate as, the output type.
package prompt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"text/template"

	"github.com/chris/studydesk/internal/llm"
	"go.uber.org/zap"
)

// ErrGenerationFailed is returned when the provider call fails or its reply
// does not satisfy the output schema.
var ErrGenerationFailed = errors.New("generation failed")

// Definition describes one typed prompt.
type Definition[In, Out any] struct {
	Name     string
	Task     llm.TaskType
	System   string
	Template string
	Funcs    template.FuncMap
	Output   *llm.Schema
	Safety   []llm.SafetySetting

	// Check runs after struct tag validation of the decoded output.
	Check func(Out) error
}

// Flow binds a Definition to a client.
type Flow[In, Out any] struct {
	def    Definition[In, Out]
	tmpl   *template.Template
	client llm.Client
	log    *zap.SugaredLogger
}

func New[In, Out any](def Definition[In, Out], client llm.Client, log *zap.SugaredLogger) (*Flow[In, Out], error) {
	tmpl, err := template.New(def.Name).
		Funcs(def.Funcs).
		Option("missingkey=error").
		Parse(def.Template)
	if err != nil {
		return nil, fmt.Errorf("parsing %s template: %w", def.Name, err)
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Flow[In, Out]{def: def, tmpl: tmpl, client: client, log: log}, nil
}

// MustNew is like New but panics on a malformed template.
func MustNew[In, Out any](def Definition[In, Out], client llm.Client, log *zap.SugaredLogger) *Flow[In, Out] {
	f, err := New(def, client, log)
	if err != nil {
		panic(err)
	}
	return f
}

// Render produces the user instruction for in. It makes no network calls.
func (f *Flow[In, Out]) Render(in In) (string, error) {
	var buf bytes.Buffer
	if err := f.tmpl.Execute(&buf, in); err != nil {
		return "", fmt.Errorf("rendering %s: %w", f.def.Name, err)
	}
	return buf.String(), nil
}

// Run validates in, renders it, calls the model once and returns the
// validated output. Invalid input yields a *ValidationError without a model
// call; every later failure wraps ErrGenerationFailed.
func (f *Flow[In, Out]) Run(ctx context.Context, in In) (*Out, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	user, err := f.Render(in)
	if err != nil {
		return nil, f.fail(err)
	}

	resp, err := f.client.Generate(ctx, llm.GenerateRequest{
		Task:         f.def.Task,
		SystemPrompt: f.def.System,
		UserPrompt:   user,
		Schema:       f.def.Output,
		Safety:       f.def.Safety,
	})
	if err != nil {
		return nil, f.fail(err)
	}

	out, err := llm.DecodeObject[Out](resp.Text, f.def.Output.Required()...)
	if err != nil {
		return nil, f.fail(err)
	}
	if err := validate.Struct(out); err != nil {
		return nil, f.fail(fmt.Errorf("%w: %v", llm.ErrInvalidOutput, fieldErrors(err)))
	}
	if f.def.Check != nil {
		if err := f.def.Check(*out); err != nil {
			return nil, f.fail(fmt.Errorf("%w: %v", llm.ErrInvalidOutput, err))
		}
	}
	return out, nil
}

func (f *Flow[In, Out]) fail(cause error) error {
	f.log.Errorw("generation failed", "flow", f.def.Name, "error", cause)
	return fmt.Errorf("%s: %w", f.def.Name, ErrGenerationFailed)
}
