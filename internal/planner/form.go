package planner

import (
	"sort"
	"strings"
	"time"
)

// TaskForm is the add/edit form as submitted. Deadline is a date
// (2006-01-02) or an RFC 3339 timestamp; empty means none.
type TaskForm struct {
	Subject     string `json:"subject" form:"subject"`
	Description string `json:"description" form:"description"`
	Priority    string `json:"priority" form:"priority"`
	Deadline    string `json:"deadline" form:"deadline"`
}

// FormError maps form fields to messages shown next to them.
type FormError struct {
	Fields map[string]string
}

func (e *FormError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	msgs := make([]string, len(names))
	for i, name := range names {
		msgs[i] = e.Fields[name]
	}
	return strings.Join(msgs, " ")
}

// Validate checks the form. New entries may not be due before today; edits
// may keep a deadline that has since passed.
func (f TaskForm) Validate(subjects []Subject, today time.Time, editing bool) error {
	fields := map[string]string{}

	switch subject := strings.TrimSpace(f.Subject); {
	case subject == "":
		fields["subject"] = "Please select a subject."
	case !knownSubject(subjects, subject):
		fields["subject"] = "Unknown subject."
	}

	if len([]rune(strings.TrimSpace(f.Description))) < 3 {
		fields["description"] = "Description must be at least 3 characters."
	}

	if f.Priority != "" && !Priority(f.Priority).Valid() {
		fields["priority"] = "Priority must be Low, Medium or High."
	}

	deadline, err := parseDeadline(f.Deadline)
	switch {
	case err != nil:
		fields["deadline"] = "Deadline must be a date (YYYY-MM-DD)."
	case deadline != nil && !editing && dateOf(*deadline).Before(dateOf(today)):
		fields["deadline"] = "Deadline cannot be in the past."
	}

	if len(fields) > 0 {
		return &FormError{Fields: fields}
	}
	return nil
}

// ToTask builds a task from a validated form.
func (f TaskForm) ToTask(id int64) Task {
	priority := Priority(f.Priority)
	if priority == "" {
		priority = PriorityMedium
	}
	deadline, _ := parseDeadline(f.Deadline)
	return Task{
		ID:          id,
		Subject:     strings.TrimSpace(f.Subject),
		Description: strings.TrimSpace(f.Description),
		Deadline:    deadline,
		Priority:    priority,
	}
}

// FormFromTask pre-fills the edit form.
func FormFromTask(t Task) TaskForm {
	f := TaskForm{Subject: t.Subject, Description: t.Description, Priority: string(t.Priority)}
	if t.Deadline != nil {
		f.Deadline = t.Deadline.Format(time.DateOnly)
	}
	return f
}

func knownSubject(subjects []Subject, name string) bool {
	for _, s := range subjects {
		if s.Name == name {
			return true
		}
	}
	return false
}

func parseDeadline(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
