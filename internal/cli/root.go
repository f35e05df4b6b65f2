package cli

import (
	"github.com/chris/studydesk/config"
	"github.com/chris/studydesk/internal/planner"
	"github.com/chris/studydesk/internal/study"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds what the commands run against.
type App struct {
	Config *config.Config
	Store  *planner.Store
	Study  *study.Service
	Log    *zap.SugaredLogger
}

// NewRootCmd creates the top-level "studydesk" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "studydesk",
		Short:         "Student task dashboard with AI study helpers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(app),
		newTasksCmd(app),
		newPlanCmd(app),
		newTipsCmd(app),
		newResourcesCmd(app),
	)

	return root
}
