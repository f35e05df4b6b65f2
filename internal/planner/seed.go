package planner

import "time"

func DefaultSubjects() []Subject {
	return []Subject{
		{ID: 1, Name: "Quantum Physics", Color: "bg-blue-500"},
		{ID: 2, Name: "Organic Chemistry", Color: "bg-green-500"},
		{ID: 3, Name: "World History", Color: "bg-yellow-500"},
		{ID: 4, Name: "Calculus II", Color: "bg-red-500"},
		{ID: 5, Name: "English Literature", Color: "bg-purple-500"},
	}
}

// SeedTasks returns the sample tasks, due a few days after now.
func SeedTasks(now time.Time) []Task {
	due := func(days int) *time.Time {
		t := now.AddDate(0, 0, days)
		return &t
	}
	return []Task{
		{ID: 1, Subject: "Quantum Physics", Description: "Solve problem set 3", Deadline: due(3), Priority: PriorityHigh},
		{ID: 2, Subject: "World History", Description: "Read chapter on the Renaissance", Deadline: due(5), Priority: PriorityMedium},
		{ID: 3, Subject: "Organic Chemistry", Description: "Prepare for lab session", Deadline: due(2), Priority: PriorityHigh},
		{ID: 4, Subject: "Calculus II", Description: "Review integration techniques", Deadline: due(7), Priority: PriorityLow},
		{ID: 5, Subject: "Quantum Physics", Description: "Write up lab report", Deadline: due(10), Priority: PriorityMedium},
	}
}
