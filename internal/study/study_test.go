package study

import (
	"context"
	"testing"
	"time"

	"github.com/chris/studydesk/internal/llm"
	"github.com/chris/studydesk/internal/planner"
	"github.com/chris/studydesk/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	reply string
	calls []llm.GenerateRequest
}

func (f *fakeClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.calls = append(f.calls, req)
	return &llm.GenerateResponse{Text: f.reply, Model: "fake"}, nil
}

var testNow = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

func seededBoard() planner.Board {
	return planner.NewBoard(planner.NewIDSource(), planner.SeedTasks(testNow)...)
}

func newService(t *testing.T, reply string) (*Service, *fakeClient) {
	t.Helper()
	client := &fakeClient{reply: reply}
	svc, err := NewService(client, nil)
	require.NoError(t, err)
	return svc, client
}

func TestPlanRender(t *testing.T) {
	f := prompt.MustNew(PlanDefinition(), &fakeClient{}, nil)
	in := PlanInput{
		Tasks: []PlanTask{
			{Subject: "Quantum Physics", Description: "Solve problem set 3", Deadline: "2024-05-13", Priority: "High"},
			{Subject: "Calculus II", Description: "Review integration techniques", Priority: "Low"},
		},
		LearningPreferences: "Visual learner",
	}

	got, err := f.Render(in)
	require.NoError(t, err)

	want := "Generate a personalized study plan for the student based on the following information:\n" +
		"\n" +
		"Tasks:\n" +
		"- Subject: Quantum Physics\n" +
		"  Description: Solve problem set 3\n" +
		"  Deadline: 2024-05-13\n" +
		"  Priority: High\n" +
		"- Subject: Calculus II\n" +
		"  Description: Review integration techniques\n" +
		"  Deadline: \n" +
		"  Priority: Low\n" +
		"\n" +
		"Learning Preferences: Visual learner\n" +
		"\n" +
		"Consider the deadlines and priorities of the tasks when creating the study plan. Suggest optimal learning resources to enhance subject comprehension. The study plan should be detailed, including schedule, topics, and resources."
	assert.Equal(t, want, got)
}

func TestTipsRender(t *testing.T) {
	f := prompt.MustNew(TipsDefinition(), &fakeClient{}, nil)
	got, err := f.Render(TipsInput{
		LearningHabits: "I study late at night",
		Schedule:       "Classes 9-3 weekdays",
		Subjects:       "Calculus II, World History",
		TaskPriorities: "High: Solve problem set 3\nLow: Review notes",
	})
	require.NoError(t, err)

	want := "Learning Habits: I study late at night\n" +
		"Schedule: Classes 9-3 weekdays\n" +
		"Subjects: Calculus II, World History\n" +
		"Task Priorities: High: Solve problem set 3\nLow: Review notes\n" +
		"\n" +
		"Based on the information above, provide study tips to help the student optimize their study techniques and improve knowledge retention.\n" +
		"The study tips should be clear, actionable, and tailored to the student's specific circumstances."
	assert.Equal(t, want, got)
}

func TestResourcesRender(t *testing.T) {
	f := prompt.MustNew(ResourcesDefinition(), &fakeClient{}, nil)
	got, err := f.Render(ResourcesInput{Subject: "Organic Chemistry", Task: "Understanding SN1 reactions"})
	require.NoError(t, err)
	assert.Contains(t, got, "\n\nSubject: Organic Chemistry\nTask: Understanding SN1 reactions")
	assert.Contains(t, got, "type (e.g., article, video, book)")
}

func TestPlanInputFromBoard(t *testing.T) {
	in := PlanInputFromBoard(seededBoard(), "  ")

	assert.Equal(t, noPreferences, in.LearningPreferences)
	require.Len(t, in.Tasks, 5)
	assert.Equal(t, PlanTask{
		Subject:     "Quantum Physics",
		Description: "Solve problem set 3",
		Deadline:    "2024-05-13",
		Priority:    "High",
	}, in.Tasks[0])
	assert.Equal(t, "Write up lab report", in.Tasks[4].Description)
}

func TestPlanInputFromBoard_NoDeadline(t *testing.T) {
	b, _ := seededBoard().Insert(planner.Task{Subject: "Calculus II", Description: "Series", Priority: planner.PriorityLow})
	in := PlanInputFromBoard(b, "Short sessions")
	assert.Equal(t, "", in.Tasks[5].Deadline)
	assert.Equal(t, "Short sessions", in.LearningPreferences)
}

func TestGenerateStudyPlan_EmptyBoardSkipsModel(t *testing.T) {
	svc, client := newService(t, `{"studyPlan":"plan"}`)
	empty := planner.NewBoard(planner.NewIDSource())

	_, err := svc.GenerateStudyPlan(context.Background(), PlanInputFromBoard(empty, ""))

	var verr *prompt.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "tasks")
	assert.Empty(t, client.calls)
}

func TestGenerateStudyPlan(t *testing.T) {
	svc, client := newService(t, `{"studyPlan":"Monday: problem set 3."}`)

	out, err := svc.GenerateStudyPlan(context.Background(), PlanInputFromBoard(seededBoard(), "Visual learner"))
	require.NoError(t, err)
	assert.Equal(t, "Monday: problem set 3.", out.StudyPlan)
	require.Len(t, client.calls, 1)
	assert.Equal(t, llm.TaskStudyPlan, client.calls[0].Task)
	assert.Empty(t, client.calls[0].Safety)
}

func TestGenerateStudyPlan_BadPriority(t *testing.T) {
	svc, client := newService(t, `{"studyPlan":"x"}`)
	_, err := svc.GenerateStudyPlan(context.Background(), PlanInput{
		Tasks:               []PlanTask{{Subject: "Calculus II", Description: "Series", Priority: "Urgent"}},
		LearningPreferences: "none",
	})

	var verr *prompt.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be one of: High, Medium, Low", verr.Fields["tasks[0].priority"])
	assert.Empty(t, client.calls)
}

func TestProvideStudyTips(t *testing.T) {
	svc, client := newService(t, `{"studyTips":"Study in 25-minute blocks and review before bed."}`)

	in := TipsInputFromBoard(seededBoard(), planner.DefaultSubjects(),
		"I learn best with flashcards", "Classes in the morning, free evenings")
	out, err := svc.ProvideStudyTips(context.Background(), in)

	require.NoError(t, err)
	assert.NotEmpty(t, out.StudyTips)
	require.Len(t, client.calls, 1)
	assert.Equal(t, tipsSafety, client.calls[0].Safety)
}

func TestTipsInputFromBoard(t *testing.T) {
	in := TipsInputFromBoard(seededBoard(), planner.DefaultSubjects()[:2], " habits ", "schedule")
	assert.Equal(t, "habits", in.LearningHabits)
	assert.Equal(t, "Quantum Physics, Organic Chemistry", in.Subjects)
	assert.Equal(t, "High: Solve problem set 3\n"+
		"Medium: Read chapter on the Renaissance\n"+
		"High: Prepare for lab session\n"+
		"Low: Review integration techniques\n"+
		"Medium: Write up lab report", in.TaskPriorities)
}

func TestSuggestLearningResources(t *testing.T) {
	reply := `{"resources":[
		{"title":"SN1 Reaction Mechanism","url":"https://www.khanacademy.org/sn1","type":"video","reason":"Walks through carbocation formation step by step."},
		{"title":"Organic Chemistry, Clayden","url":"https://example.org/clayden","type":"book","reason":"Chapter 15 covers substitution kinetics."}
	]}`
	svc, _ := newService(t, reply)

	out, err := svc.SuggestLearningResources(context.Background(), ResourcesInput{
		Subject: "Organic Chemistry",
		Task:    "Understanding SN1 reactions",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Resources)
	for _, r := range out.Resources {
		assert.NotEmpty(t, r.Title)
		assert.NotEmpty(t, r.URL)
		assert.NotEmpty(t, r.Type)
		assert.NotEmpty(t, r.Reason)
	}
}

func TestSuggestLearningResources_RejectsIncomplete(t *testing.T) {
	tests := map[string]string{
		"empty list":    `{"resources":[]}`,
		"blank reason":  `{"resources":[{"title":"t","url":"u","type":"video","reason":"   "}]}`,
		"missing field": `{"resources":[{"title":"t","url":"u","type":"video"}]}`,
	}
	for name, reply := range tests {
		t.Run(name, func(t *testing.T) {
			svc, _ := newService(t, reply)
			out, err := svc.SuggestLearningResources(context.Background(), ResourcesInput{Subject: "Math", Task: "Limits"})
			assert.Nil(t, out)
			assert.ErrorIs(t, err, prompt.ErrGenerationFailed)
		})
	}
}
