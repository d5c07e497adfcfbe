package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/habedi/tf2cu/db"
	"github.com/habedi/tf2cu/pkg/clierr"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	var limit int
	var jsonFlag bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show previous version checks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return clierr.New(clierr.Validation, fmt.Sprintf("limit must not be negative, got %d", limit), nil)
			}
			checks, err := db.NewCheckRepository(db.GetDB()).List(commandContext(cmd), limit)
			if err != nil {
				return clierr.New(clierr.Internal, "failed to read history", err)
			}

			if jsonFlag {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(checks); err != nil {
					return clierr.New(clierr.Internal, "failed to encode history", err)
				}
				return nil
			}

			if len(checks) == 0 {
				cmd.Println("No checks recorded yet. Run `tf2cu check` first.")
				return nil
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"When", "Root", "Installed", "Latest", "Result"})
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAutoWrapText(false)
			for _, c := range checks {
				table.Append([]string{
					c.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					c.Root,
					c.InstalledName,
					c.Latest,
					c.Comparison,
				})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of checks to show; 0 shows all")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the history as JSON")
	cmd.AddCommand(historyClearCmd())
	return cmd
}

func historyClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded check",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := db.NewCheckRepository(db.GetDB()).Clear(commandContext(cmd)); err != nil {
				return clierr.New(clierr.Internal, "failed to clear history", err)
			}
			log.Info().Msg("History cleared")
			cmd.Println("History cleared.")
			return nil
		},
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
