package study

import (
	"strings"
	"time"

	"github.com/chris/studydesk/internal/llm"
	"github.com/chris/studydesk/internal/planner"
	"github.com/chris/studydesk/internal/prompt"
)

const noPreferences = "No specific preferences provided."

type PlanTask struct {
	Subject     string `json:"subject" validate:"required"`
	Description string `json:"description" validate:"required"`
	Deadline    string `json:"deadline"` // YYYY-MM-DD or empty
	Priority    string `json:"priority" validate:"required,oneof=High Medium Low"`
}

type PlanInput struct {
	Tasks               []PlanTask `json:"tasks" validate:"required,min=1,dive"`
	LearningPreferences string     `json:"learningPreferences" validate:"required"`
}

type PlanOutput struct {
	StudyPlan string `json:"studyPlan" validate:"required"`
}

const planSystem = "You are an AI academic planner."

const planTemplate = `Generate a personalized study plan for the student based on the following information:

Tasks:
{{- range .Tasks}}
- Subject: {{.Subject}}
  Description: {{.Description}}
  Deadline: {{.Deadline}}
  Priority: {{.Priority}}
{{- end}}

Learning Preferences: {{.LearningPreferences}}

Consider the deadlines and priorities of the tasks when creating the study plan. Suggest optimal learning resources to enhance subject comprehension. The study plan should be detailed, including schedule, topics, and resources.`

func PlanDefinition() prompt.Definition[PlanInput, PlanOutput] {
	return prompt.Definition[PlanInput, PlanOutput]{
		Name:     "generateStudyPlan",
		Task:     llm.TaskStudyPlan,
		System:   planSystem,
		Template: planTemplate,
		Output: &llm.Schema{
			Name:        "study_plan",
			Description: "A personalized study plan.",
			Definition: llm.Object(map[string]any{
				"studyPlan": llm.Prop("string", "A detailed study plan, including schedule, topics, and resources."),
			}),
		},
		Check: func(out PlanOutput) error {
			return nonBlank("studyPlan", out.StudyPlan)
		},
	}
}

// PlanInputFromBoard lists every task on the board in board order. An empty
// board yields an input that fails validation on tasks.
func PlanInputFromBoard(board planner.Board, prefs string) PlanInput {
	tasks := board.Tasks()
	in := PlanInput{
		Tasks:               make([]PlanTask, 0, len(tasks)),
		LearningPreferences: strings.TrimSpace(prefs),
	}
	if in.LearningPreferences == "" {
		in.LearningPreferences = noPreferences
	}
	for _, t := range tasks {
		pt := PlanTask{
			Subject:     t.Subject,
			Description: t.Description,
			Priority:    string(t.Priority),
		}
		if t.Deadline != nil {
			pt.Deadline = t.Deadline.Format(time.DateOnly)
		}
		in.Tasks = append(in.Tasks, pt)
	}
	return in
}
