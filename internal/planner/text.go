package planner

import (
	"fmt"
	"strings"
	"time"
)

// DueLabel formats a deadline as "Jan 2", or "N/A" when unset.
func DueLabel(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("Jan 2")
}

// FormatDashboard renders cards as plain text for chat and terminal output.
func FormatDashboard(cards []Card) string {
	var b strings.Builder
	for i, card := range cards {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s (%d)\n", card.Subject.Name, card.Count)
		if len(card.Tasks) == 0 {
			b.WriteString("  no tasks\n")
			continue
		}
		for _, t := range card.Tasks {
			fmt.Fprintf(&b, "  - %s [%s, due %s]\n", t.Description, t.Priority, DueLabel(t.Deadline))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
