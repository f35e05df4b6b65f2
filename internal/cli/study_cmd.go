package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chris/studydesk/internal/planner"
	"github.com/chris/studydesk/internal/prompt"
	"github.com/chris/studydesk/internal/study"
	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "Show the dashboard: tasks grouped by subject",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cards := app.Store.Board().Dashboard(app.Store.Subjects(), planner.DefaultCardLimit)
			fmt.Fprintln(cmd.OutOrStdout(), planner.FormatDashboard(cards))
			return nil
		},
	}
}

func newPlanCmd(app *App) *cobra.Command {
	var prefs string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a study plan from the current tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := study.PlanInputFromBoard(app.Store.Board(), prefs)
			out, err := app.Study.GenerateStudyPlan(cmd.Context(), in)
			if err != nil {
				return explain(cmd.ErrOrStderr(), err, "study plan")
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.StudyPlan)
			return nil
		},
	}

	cmd.Flags().StringVar(&prefs, "prefs", "", "Learning preferences (e.g. visual learner, short sessions)")
	return cmd
}

func newTipsCmd(app *App) *cobra.Command {
	var habits, schedule string

	cmd := &cobra.Command{
		Use:   "tips",
		Short: "Get personalized study tips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := study.TipsInputFromBoard(app.Store.Board(), app.Store.Subjects(), habits, schedule)
			out, err := app.Study.ProvideStudyTips(cmd.Context(), in)
			if err != nil {
				return explain(cmd.ErrOrStderr(), err, "study tips")
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.StudyTips)
			return nil
		},
	}

	cmd.Flags().StringVar(&habits, "habits", "", "How you usually study")
	cmd.Flags().StringVar(&schedule, "schedule", "", "Your weekly schedule")
	_ = cmd.MarkFlagRequired("habits")
	_ = cmd.MarkFlagRequired("schedule")
	return cmd
}

func newResourcesCmd(app *App) *cobra.Command {
	var subject, task string

	cmd := &cobra.Command{
		Use:   "resources",
		Short: "Suggest learning resources for a subject and task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.Study.SuggestLearningResources(cmd.Context(), study.ResourcesInput{
				Subject: strings.TrimSpace(subject),
				Task:    strings.TrimSpace(task),
			})
			if err != nil {
				return explain(cmd.ErrOrStderr(), err, "resources")
			}
			w := cmd.OutOrStdout()
			for i, r := range out.Resources {
				fmt.Fprintf(w, "%d. %s [%s]\n   %s\n   %s\n", i+1, r.Title, r.Type, r.URL, r.Reason)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject, e.g. Organic Chemistry")
	cmd.Flags().StringVar(&task, "task", "", "Task or topic, e.g. Understanding SN1 reactions")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("task")
	return cmd
}

// explain prints field messages for validation errors and returns a short
// error for the exit status.
func explain(w io.Writer, err error, thing string) error {
	var verr *prompt.ValidationError
	if errors.As(err, &verr) {
		names := make([]string, 0, len(verr.Fields))
		for name := range verr.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "  %s: %s\n", name, verr.Fields[name])
		}
		return fmt.Errorf("invalid input for %s", thing)
	}
	return fmt.Errorf("failed to generate %s", thing)
}
