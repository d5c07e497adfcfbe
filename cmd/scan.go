package cmd

import (
	"context"
	"errors"

	"github.com/habedi/tf2cu/locator"
	"github.com/habedi/tf2cu/messages"
	"github.com/habedi/tf2cu/pkg/clierr"
	"github.com/habedi/tf2cu/pkg/pool"
	"github.com/habedi/tf2cu/pkg/validation"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func scanCmd() *cobra.Command {
	var numThreads int
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Look for the game in every Steam library",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.ValidateThreadCount(numThreads); err != nil {
				return clierr.New(clierr.Validation, err.Error(), err)
			}
			libs, err := discoverLibraries()
			if err != nil {
				return err
			}
			ctx := commandContext(cmd)

			results := scanLibraries(ctx, libs, cfg.GameID, numThreads)
			printer := messages.New(cfg.Language)

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Library", "Installed", "Details"})
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAutoWrapText(false)

			found := 0
			for _, r := range results {
				if r.Err == nil {
					found++
					table.Append([]string{r.Item, r.Value.Version.Name, r.Value.Location})
					continue
				}
				var le *locator.Error
				if errors.As(r.Err, &le) {
					table.Append([]string{r.Item, "-", printer.Reason(le)})
				} else {
					table.Append([]string{r.Item, "-", r.Err.Error()})
				}
			}
			table.Render()

			if found == 0 {
				return clierr.New(clierr.NotFound, "the game was not found in any Steam library", nil)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&numThreads, "threads", "t", 4, "Number of libraries to inspect concurrently [1-20]")
	return cmd
}

func scanLibraries(ctx context.Context, libs []string, gameID string, numThreads int) []pool.Result[string, locator.GameInstallation] {
	return pool.Map(ctx, libs, numThreads, func(ctx context.Context, lib string) (locator.GameInstallation, error) {
		return locator.Validate(lib, gameID)
	})
}
