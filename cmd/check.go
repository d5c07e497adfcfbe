package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/habedi/tf2cu/app"
	"github.com/habedi/tf2cu/locator"
	"github.com/habedi/tf2cu/messages"
	"github.com/habedi/tf2cu/pkg/clierr"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// checkReport is the --json form of a check.
type checkReport struct {
	Root         string                    `json:"root"`
	GameID       string                    `json:"game_id"`
	Selection    string                    `json:"selection"`
	Installation *locator.GameInstallation `json:"installation,omitempty"`
	ErrorKind    string                    `json:"error_kind,omitempty"`
	Error        string                    `json:"error,omitempty"`
	Manifest     string                    `json:"manifest_status"`
	Latest       string                    `json:"latest,omitempty"`
	Comparison   string                    `json:"comparison"`
}

func checkCmd() *cobra.Command {
	var jsonFlag bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Locate the game and compare it with the latest published version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, jsonFlag)
		},
	}
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the result as JSON")
	return cmd
}

func runCheck(cmd *cobra.Command, jsonOut bool) error {
	ctx := commandContext(cmd)
	printer := messages.New(cfg.Language)

	c := app.New(ctx, controllerOptions())

	// The manifest only matters once there is something to compare it with.
	if c.Snapshot().Installation != nil {
		interactive := !jsonOut && term.IsTerminal(int(os.Stderr.Fd()))
		waitForManifest(ctx, c.Done(), cmd.ErrOrStderr(), interactive, printer.Manifest(c.Snapshot().Manifest))
		c.Poll()
	}

	s := c.Snapshot()
	log.Info().Str("root", s.Root).Str("selection", s.Selection().String()).Str("comparison", s.Compare().String()).Msg("Check finished")

	if jsonOut {
		if err := writeCheckJSON(cmd.OutOrStdout(), c.GameID(), s); err != nil {
			return clierr.New(clierr.Internal, "failed to encode report", err)
		}
	} else {
		renderCheckTable(cmd.OutOrStdout(), printer, s)
	}
	return checkError(printer, s)
}

// waitForManifest blocks until done is closed or ctx ends, drawing a
// spinner on w when interactive.
func waitForManifest(ctx context.Context, done <-chan struct{}, w io.Writer, interactive bool, description string) {
	if done == nil {
		return
	}
	if !interactive {
		select {
		case <-done:
		case <-ctx.Done():
		}
		return
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	defer func() { _ = bar.Finish() }()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = bar.Add(1)
		}
	}
}

func renderCheckTable(w io.Writer, p *messages.Printer, s app.State) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)

	table.Append([]string{"Steam root", s.Root})
	switch {
	case s.Installation != nil:
		table.Append([]string{"Game location", s.Installation.Location})
		table.Append([]string{"Installed", s.Installation.Version.Name})
		table.Append([]string{"Version time", s.Installation.Version.Time})
		table.Append([]string{"Latest", p.Manifest(s.Manifest)})
		if verdict := p.Comparison(s.Compare()); verdict != "" {
			table.Append([]string{"Status", verdict})
		}
	case s.LocationErr != nil:
		table.Append([]string{"Status", p.LocationError(s.LocationErr)})
	default:
		table.Append([]string{"Status", p.Location(s)})
	}
	table.Render()
}

func writeCheckJSON(w io.Writer, gameID string, s app.State) error {
	report := checkReport{
		Root:         s.Root,
		GameID:       gameID,
		Selection:    s.Selection().String(),
		Installation: s.Installation,
		Manifest:     s.Manifest.Status.String(),
		Latest:       s.Manifest.Latest,
		Comparison:   s.Compare().String(),
	}
	if s.LocationErr != nil {
		report.ErrorKind = s.LocationErr.Kind.String()
		report.Error = s.LocationErr.Error()
	} else if s.Manifest.Err != nil {
		report.Error = s.Manifest.Err.Error()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// checkError maps the final state onto an exit status. An available update
// is not an error.
func checkError(p *messages.Printer, s app.State) error {
	switch {
	case s.Root == "":
		return clierr.New(clierr.NotFound, p.Location(s), nil)
	case s.LocationErr != nil:
		t := clierr.NotFound
		if s.LocationErr.Kind == locator.Internal {
			t = clierr.Internal
		}
		return clierr.New(t, p.Reason(s.LocationErr), s.LocationErr)
	case s.Manifest.Status == app.Failed:
		return clierr.New(clierr.Network, p.Manifest(s.Manifest), s.Manifest.Err)
	case s.Manifest.Status == app.Pending:
		return clierr.New(clierr.Network, p.Manifest(s.Manifest), context.Canceled)
	}
	return nil
}
