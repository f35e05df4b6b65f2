package study

import (
	"strings"

	"github.com/chris/studydesk/internal/llm"
	"github.com/chris/studydesk/internal/planner"
	"github.com/chris/studydesk/internal/prompt"
)

type TipsInput struct {
	LearningHabits string `json:"learningHabits" validate:"required"`
	Schedule       string `json:"schedule" validate:"required"`
	Subjects       string `json:"subjects" validate:"required"`
	TaskPriorities string `json:"taskPriorities" validate:"required"`
}

type TipsOutput struct {
	StudyTips string `json:"studyTips" validate:"required"`
}

const tipsSystem = "You are an AI study advisor who provides personalized study tips to students based on their learning habits, schedule, subjects, and task priorities."

const tipsTemplate = `Learning Habits: {{.LearningHabits}}
Schedule: {{.Schedule}}
Subjects: {{.Subjects}}
Task Priorities: {{.TaskPriorities}}

Based on the information above, provide study tips to help the student optimize their study techniques and improve knowledge retention.
The study tips should be clear, actionable, and tailored to the student's specific circumstances.`

var tipsSafety = []llm.SafetySetting{
	{Category: llm.HarmHateSpeech, Threshold: llm.BlockOnlyHigh},
	{Category: llm.HarmDangerousContent, Threshold: llm.BlockNone},
	{Category: llm.HarmHarassment, Threshold: llm.BlockMediumAndAbove},
	{Category: llm.HarmSexuallyExplicit, Threshold: llm.BlockLowAndAbove},
}

func TipsDefinition() prompt.Definition[TipsInput, TipsOutput] {
	return prompt.Definition[TipsInput, TipsOutput]{
		Name:     "provideStudyTips",
		Task:     llm.TaskStudyTips,
		System:   tipsSystem,
		Template: tipsTemplate,
		Output: &llm.Schema{
			Name:        "study_tips",
			Description: "Personalized study tips.",
			Definition: llm.Object(map[string]any{
				"studyTips": llm.Prop("string", "Personalized study tips for the student."),
			}),
		},
		Safety: tipsSafety,
		Check: func(out TipsOutput) error {
			return nonBlank("studyTips", out.StudyTips)
		},
	}
}

// TipsInputFromBoard fills subjects and task priorities from the board.
func TipsInputFromBoard(board planner.Board, subjects []planner.Subject, habits, schedule string) TipsInput {
	names := make([]string, len(subjects))
	for i, s := range subjects {
		names[i] = s.Name
	}
	tasks := board.Tasks()
	priorities := make([]string, len(tasks))
	for i, t := range tasks {
		priorities[i] = string(t.Priority) + ": " + t.Description
	}
	return TipsInput{
		LearningHabits: strings.TrimSpace(habits),
		Schedule:       strings.TrimSpace(schedule),
		Subjects:       strings.Join(names, ", "),
		TaskPriorities: strings.Join(priorities, "\n"),
	}
}
