package cmd

import (
	"github.com/habedi/tf2cu/app"
	"github.com/habedi/tf2cu/messages"
	"github.com/habedi/tf2cu/pkg/clierr"
	"github.com/habedi/tf2cu/tui"
	"github.com/spf13/cobra"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive terminal view",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			c := app.New(ctx, controllerOptions())
			if err := tui.Run(ctx, c, messages.New(cfg.Language), rememberRoot); err != nil {
				return clierr.New(clierr.Internal, "terminal UI failed", err)
			}
			return nil
		},
	}
}

// controllerOptions wires the configured root, discovery, manifest loader and
// history into a Controller.
func controllerOptions() app.Options {
	return app.Options{
		GameID:   cfg.GameID,
		Root:     explicitRoot(),
		Discover: discoverRoot,
		Loader:   newLoader(),
		Recorder: recorder(),
	}
}
