package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/chris/studydesk/internal/discord"
	"github.com/chris/studydesk/internal/web"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server, plus the Discord bot when a token is set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv, err := web.NewServer(app.Store, app.Study, app.Log, web.Options{
				Production:  app.Config.IsProduction(),
				CORSOrigins: app.Config.CORSOrigins,
			})
			if err != nil {
				return err
			}

			if app.Config.DiscordToken != "" {
				bot, err := discord.NewBot(app.Config.DiscordToken, discord.NewCommands(app.Store, app.Study, app.Log), app.Log)
				if err != nil {
					return fmt.Errorf("starting Discord bot: %w", err)
				}
				defer bot.Close()
			}

			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", app.Config.ServerAddr, "Listen address")
	return cmd
}
