package planner

import (
	"errors"
	"testing"
	"time"
)

func TestValidateForm(t *testing.T) {
	today := testNow
	tests := []struct {
		name    string
		form    TaskForm
		editing bool
		field   string
		msg     string
	}{
		{"missing subject", TaskForm{Description: "Read notes"}, false, "subject", "Please select a subject."},
		{"unknown subject", TaskForm{Subject: "Astrology", Description: "Read notes"}, false, "subject", "Unknown subject."},
		{"short description", TaskForm{Subject: "Calculus II", Description: "ab"}, false, "description", "Description must be at least 3 characters."},
		{"whitespace description", TaskForm{Subject: "Calculus II", Description: "  a  "}, false, "description", "Description must be at least 3 characters."},
		{"bad priority", TaskForm{Subject: "Calculus II", Description: "Read", Priority: "Urgent"}, false, "priority", "Priority must be Low, Medium or High."},
		{"bad deadline", TaskForm{Subject: "Calculus II", Description: "Read", Deadline: "next week"}, false, "deadline", "Deadline must be a date (YYYY-MM-DD)."},
		{"past deadline on add", TaskForm{Subject: "Calculus II", Description: "Read", Deadline: "2024-05-09"}, false, "deadline", "Deadline cannot be in the past."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate(DefaultSubjects(), today, tt.editing)
			var fe *FormError
			if !errors.As(err, &fe) {
				t.Fatalf("expected *FormError, got %v", err)
			}
			if fe.Fields[tt.field] != tt.msg {
				t.Errorf("expected %s message %q, got %q", tt.field, tt.msg, fe.Fields[tt.field])
			}
		})
	}
}

func TestValidateFormAccepts(t *testing.T) {
	tests := []struct {
		name    string
		form    TaskForm
		editing bool
	}{
		{"minimal", TaskForm{Subject: "World History", Description: "Map"}, false},
		{"due today", TaskForm{Subject: "World History", Description: "Map", Deadline: "2024-05-10"}, false},
		{"rfc3339 deadline", TaskForm{Subject: "World History", Description: "Map", Deadline: "2024-06-01T12:00:00Z"}, false},
		{"past deadline on edit", TaskForm{Subject: "World History", Description: "Map", Deadline: "2024-01-01"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.form.Validate(DefaultSubjects(), testNow, tt.editing); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestToTaskDefaults(t *testing.T) {
	task := TaskForm{Subject: " Calculus II ", Description: " Limits "}.ToTask(42)
	if task.ID != 42 || task.Subject != "Calculus II" || task.Description != "Limits" {
		t.Errorf("unexpected task %+v", task)
	}
	if task.Priority != PriorityMedium {
		t.Errorf("expected default priority Medium, got %s", task.Priority)
	}
	if task.Deadline != nil {
		t.Errorf("expected no deadline, got %v", task.Deadline)
	}
}

func TestFormFromTaskRoundTrip(t *testing.T) {
	due := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	task := Task{ID: 7, Subject: "Calculus II", Description: "Series", Priority: PriorityLow, Deadline: &due}
	got := FormFromTask(task).ToTask(7)
	if got.ID != task.ID || got.Priority != task.Priority || !got.Deadline.Equal(due) {
		t.Errorf("expected %+v, got %+v", task, got)
	}
}

func TestFormErrorMessage(t *testing.T) {
	err := &FormError{Fields: map[string]string{
		"subject":     "Please select a subject.",
		"description": "Description must be at least 3 characters.",
	}}
	want := "Description must be at least 3 characters. Please select a subject."
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}
