package discord

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/chris/studydesk/internal/planner"
	"github.com/chris/studydesk/internal/prompt"
	"github.com/chris/studydesk/internal/study"
	"go.uber.org/zap"
)

const helpText = "Commands:\n" +
	"`tasks` - show the dashboard\n" +
	"`plan [preferences]` - generate a study plan from your tasks\n" +
	"`tips <learning habits> | <schedule>` - get personalized study tips\n" +
	"`resources <subject> | <task>` - suggest learning resources\n" +
	"`help` - show this message"

// Commands turns chat messages into replies.
type Commands struct {
	store *planner.Store
	study *study.Service
	log   *zap.SugaredLogger
}

func NewCommands(store *planner.Store, svc *study.Service, log *zap.SugaredLogger) *Commands {
	return &Commands{store: store, study: svc, log: log}
}

func (c *Commands) Handle(ctx context.Context, content string) string {
	name, args, _ := strings.Cut(strings.TrimSpace(content), " ")
	args = strings.TrimSpace(args)

	switch strings.ToLower(name) {
	case "tasks":
		return planner.FormatDashboard(c.store.Board().Dashboard(c.store.Subjects(), planner.DefaultCardLimit))
	case "plan":
		out, err := c.study.GenerateStudyPlan(ctx, study.PlanInputFromBoard(c.store.Board(), args))
		if err != nil {
			return c.failure(err, "study plan")
		}
		return out.StudyPlan
	case "tips":
		habits, schedule, ok := splitArgs(args)
		if !ok {
			return "Usage: `tips <learning habits> | <schedule>`"
		}
		in := study.TipsInputFromBoard(c.store.Board(), c.store.Subjects(), habits, schedule)
		out, err := c.study.ProvideStudyTips(ctx, in)
		if err != nil {
			return c.failure(err, "study tips")
		}
		return out.StudyTips
	case "resources":
		subject, task, ok := splitArgs(args)
		if !ok {
			return "Usage: `resources <subject> | <task>`"
		}
		out, err := c.study.SuggestLearningResources(ctx, study.ResourcesInput{Subject: subject, Task: task})
		if err != nil {
			return c.failure(err, "resources")
		}
		return formatResources(out.Resources)
	default:
		return helpText
	}
}

func (c *Commands) failure(err error, thing string) string {
	var verr *prompt.ValidationError
	if errors.As(err, &verr) {
		if _, ok := verr.Fields["tasks"]; ok {
			return "No tasks found. Add some tasks before generating a study plan."
		}
		return "Please fix: " + formatFields(verr.Fields)
	}
	c.log.Warnw("discord command failed", "what", thing, "error", err)
	return "Failed to generate " + thing + "."
}

func splitArgs(args string) (string, string, bool) {
	left, right, ok := strings.Cut(args, "|")
	left, right = strings.TrimSpace(left), strings.TrimSpace(right)
	return left, right, ok && left != "" && right != ""
}

func formatFields(fields map[string]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + " " + fields[name]
	}
	return strings.Join(parts, "; ")
}

func formatResources(resources []study.Resource) string {
	var b strings.Builder
	for i, r := range resources {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "**%s** (%s)\n<%s>\n%s", r.Title, r.Type, r.URL, r.Reason)
	}
	return b.String()
}
