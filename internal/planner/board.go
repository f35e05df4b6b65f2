package planner

import "errors"

var ErrTaskNotFound = errors.New("task not found")

// DefaultCardLimit is the number of tasks shown per dashboard card.
const DefaultCardLimit = 4

// Board is an immutable ordered list of tasks. Insert and Update return a
// new Board and leave the receiver untouched.
type Board struct {
	tasks []Task
	ids   *IDSource
}

func NewBoard(ids *IDSource, tasks ...Task) Board {
	for _, t := range tasks {
		ids.Reserve(t.ID)
	}
	return Board{tasks: append([]Task(nil), tasks...), ids: ids}
}

// Tasks returns a copy of the tasks in board order.
func (b Board) Tasks() []Task {
	return append([]Task(nil), b.tasks...)
}

func (b Board) Len() int { return len(b.tasks) }

func (b Board) Get(id int64) (Task, bool) {
	for _, t := range b.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Insert appends t under a freshly issued id and returns the new board along
// with the stored task.
func (b Board) Insert(t Task) (Board, Task) {
	if b.ids == nil {
		b.ids = NewIDSource()
	}
	t.ID = b.ids.Next()
	tasks := make([]Task, len(b.tasks), len(b.tasks)+1)
	copy(tasks, b.tasks)
	return Board{tasks: append(tasks, t), ids: b.ids}, t
}

// Update replaces the task with t.ID, keeping its position.
func (b Board) Update(t Task) (Board, error) {
	for i, cur := range b.tasks {
		if cur.ID != t.ID {
			continue
		}
		tasks := append([]Task(nil), b.tasks...)
		tasks[i] = t
		return Board{tasks: tasks, ids: b.ids}, nil
	}
	return b, ErrTaskNotFound
}

func (b Board) BySubject(name string) []Task {
	var out []Task
	for _, t := range b.tasks {
		if t.Subject == name {
			out = append(out, t)
		}
	}
	return out
}

// Card is one subject's section of the dashboard.
type Card struct {
	Subject Subject `json:"subject"`
	Count   int     `json:"count"`
	Tasks   []Task  `json:"tasks"`
}

// Dashboard groups tasks by subject in subject order. Each card carries the
// full count but at most limit tasks; limit <= 0 means DefaultCardLimit.
func (b Board) Dashboard(subjects []Subject, limit int) []Card {
	if limit <= 0 {
		limit = DefaultCardLimit
	}
	cards := make([]Card, 0, len(subjects))
	for _, s := range subjects {
		tasks := b.BySubject(s.Name)
		card := Card{Subject: s, Count: len(tasks), Tasks: []Task{}}
		if len(tasks) > limit {
			tasks = tasks[:limit]
		}
		card.Tasks = append(card.Tasks, tasks...)
		cards = append(cards, card)
	}
	return cards
}
