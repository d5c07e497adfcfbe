//go:build headless

package cmd

import (
	"github.com/habedi/tf2cu/pkg/clierr"
	"github.com/spf13/cobra"
)

func guiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Start the desktop window (not available in headless build)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.PrintErrln("This is a headless (CLI-only) build of tf2cu.")
			cmd.PrintErrln("Use `tf2cu tui` for an interactive terminal view, or build without the 'headless' tag.")
			return clierr.New(clierr.Validation, "GUI is not available in this build", nil)
		},
	}
	return cmd
}
