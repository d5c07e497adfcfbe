//go:build !headless

package cmd

import (
	"github.com/habedi/tf2cu/app"
	"github.com/habedi/tf2cu/gui"
	"github.com/habedi/tf2cu/messages"
	"github.com/spf13/cobra"
)

func guiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Start the desktop window",
		Run: func(cmd *cobra.Command, args []string) {
			c := app.New(commandContext(cmd), controllerOptions())
			gui.Run(gui.Params{
				Version:    version,
				Controller: c,
				Printer:    messages.New(cfg.Language),
				Theme:      cfg.Theme,
				Remember:   rememberRoot,
			})
		},
	}
	return cmd
}
