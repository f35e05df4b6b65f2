package study

import (
	"fmt"

	"github.com/chris/studydesk/internal/llm"
	"github.com/chris/studydesk/internal/prompt"
)

type ResourcesInput struct {
	Subject string `json:"subject" validate:"required"`
	Task    string `json:"task" validate:"required"`
}

type Resource struct {
	Title  string `json:"title" validate:"required"`
	URL    string `json:"url" validate:"required"`
	Type   string `json:"type" validate:"required"`
	Reason string `json:"reason" validate:"required"`
}

type ResourcesOutput struct {
	Resources []Resource `json:"resources" validate:"required,min=1,dive"`
}

const resourcesSystem = "You are an AI assistant designed to suggest relevant learning resources for students."

const resourcesTemplate = `Given the subject and task, suggest a list of learning resources that would be helpful.
Each resource should have a title, URL, type (e.g., article, video, book), and a brief explanation of why it is helpful.

Subject: {{.Subject}}
Task: {{.Task}}`

func ResourcesDefinition() prompt.Definition[ResourcesInput, ResourcesOutput] {
	resource := llm.Object(map[string]any{
		"title":  llm.Prop("string", "The title of the learning resource."),
		"url":    llm.Prop("string", "The URL of the learning resource."),
		"type":   llm.Prop("string", "The type of learning resource (e.g., article, video, book)."),
		"reason": llm.Prop("string", "Why this resource is helpful for the given task and subject"),
	})
	return prompt.Definition[ResourcesInput, ResourcesOutput]{
		Name:     "suggestLearningResources",
		Task:     llm.TaskResources,
		System:   resourcesSystem,
		Template: resourcesTemplate,
		Output: &llm.Schema{
			Name:        "learning_resources",
			Description: "Suggested learning resources.",
			Definition: llm.Object(map[string]any{
				"resources": llm.ArrayOf(resource, "A list of suggested learning resources."),
			}),
		},
		Check: checkResources,
	}
}

func checkResources(out ResourcesOutput) error {
	for i, r := range out.Resources {
		for field, v := range map[string]string{"title": r.Title, "url": r.URL, "type": r.Type, "reason": r.Reason} {
			if err := nonBlank(fmt.Sprintf("resources[%d].%s", i, field), v); err != nil {
				return err
			}
		}
	}
	return nil
}
