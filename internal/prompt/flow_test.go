package prompt

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/chris/studydesk/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	mu    sync.Mutex
	calls []llm.GenerateRequest
	reply string
	err   error
}

func (f *fakeClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	return &llm.GenerateResponse{Text: f.reply, Model: "fake"}, nil
}

type greetIn struct {
	Name  string   `json:"name" validate:"required,min=2"`
	Items []string `json:"items" validate:"required,min=1,dive,required"`
}

type greetOut struct {
	Greeting string `json:"greeting" validate:"required"`
}

func greetDefinition() Definition[greetIn, greetOut] {
	return Definition[greetIn, greetOut]{
		Name:     "greet",
		Task:     llm.TaskStudyTips,
		System:   "You greet people.",
		Template: "Greet {{.Name}}.{{range .Items}}\n- {{.}}{{end}}",
		Output: &llm.Schema{
			Name:       "greeting",
			Definition: llm.Object(map[string]any{"greeting": llm.Prop("string", "The greeting")}),
		},
		Safety: []llm.SafetySetting{{Category: llm.HarmHarassment, Threshold: llm.BlockLowAndAbove}},
	}
}

func validIn() greetIn {
	return greetIn{Name: "Ada", Items: []string{"math", "poetry"}}
}

func TestRender(t *testing.T) {
	f := MustNew(greetDefinition(), &fakeClient{}, nil)

	got, err := f.Render(validIn())
	require.NoError(t, err)
	assert.Equal(t, "Greet Ada.\n- math\n- poetry", got)

	again, err := f.Render(validIn())
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestNew_BadTemplate(t *testing.T) {
	def := greetDefinition()
	def.Template = "{{.Name"
	_, err := New(def, &fakeClient{}, nil)
	assert.Error(t, err)
}

func TestRun_Success(t *testing.T) {
	client := &fakeClient{reply: "```json\n{\"greeting\":\"Hello Ada\"}\n```"}
	f := MustNew(greetDefinition(), client, nil)

	out, err := f.Run(context.Background(), validIn())
	require.NoError(t, err)
	assert.Equal(t, "Hello Ada", out.Greeting)

	require.Len(t, client.calls, 1)
	req := client.calls[0]
	assert.Equal(t, llm.TaskStudyTips, req.Task)
	assert.Equal(t, "You greet people.", req.SystemPrompt)
	assert.Equal(t, "Greet Ada.\n- math\n- poetry", req.UserPrompt)
	assert.Equal(t, "greeting", req.Schema.Name)
	assert.Len(t, req.Safety, 1)
}

func TestRun_InvalidInputSkipsModel(t *testing.T) {
	client := &fakeClient{reply: `{"greeting":"hi"}`}
	f := MustNew(greetDefinition(), client, nil)

	_, err := f.Run(context.Background(), greetIn{Name: "A", Items: []string{}})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be at least 2 characters", verr.Fields["name"])
	assert.Equal(t, "must contain at least 1 item(s)", verr.Fields["items"])
	assert.Empty(t, client.calls)
}

func TestRun_NestedFieldPath(t *testing.T) {
	client := &fakeClient{}
	f := MustNew(greetDefinition(), client, nil)

	_, err := f.Run(context.Background(), greetIn{Name: "Ada", Items: []string{"ok", ""}})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "is required", verr.Fields["items[1]"])
	assert.Empty(t, client.calls)
}

func TestRun_GenerationFailures(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeClient
		check  func(greetOut) error
	}{
		{"provider error", &fakeClient{err: errors.New("connection refused")}, nil},
		{"not json", &fakeClient{reply: "Hello there!"}, nil},
		{"missing key", &fakeClient{reply: `{"message":"hi"}`}, nil},
		{"empty value", &fakeClient{reply: `{"greeting":""}`}, nil},
		{"check rejects", &fakeClient{reply: `{"greeting":"hi"}`}, func(greetOut) error { return errors.New("too short") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := greetDefinition()
			def.Check = tt.check
			f := MustNew(def, tt.client, nil)

			out, err := f.Run(context.Background(), validIn())
			assert.Nil(t, out)
			assert.ErrorIs(t, err, ErrGenerationFailed)
			assert.Len(t, tt.client.calls, 1)
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"b": "is required", "a": "must be at least 2 characters"}}
	assert.Equal(t, "validation failed: a: must be at least 2 characters; b: is required", err.Error())
}
