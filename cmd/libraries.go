package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/habedi/tf2cu/locator"
	"github.com/habedi/tf2cu/pkg/clierr"
	"github.com/habedi/tf2cu/steam"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func librariesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "libraries",
		Short: "List the Steam library folders and whether each has sourcemods",
		RunE: func(cmd *cobra.Command, args []string) error {
			libs, err := discoverLibraries()
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"#", "Library", "Sourcemods"})
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAutoWrapText(false)
			for i, lib := range libs {
				table.Append([]string{fmt.Sprintf("%d", i+1), lib, sourcemodsState(lib)})
			}
			table.Render()
			return nil
		},
	}
}

// discoverLibraries resolves the main root the same way check does and
// expands it into every library listed in libraryfolders.vdf.
func discoverLibraries() ([]string, error) {
	root := explicitRoot()
	if root == "" {
		found, ok := discoverRoot()
		if !ok {
			return nil, clierr.New(clierr.NotFound, "no Steam installation found; pass --root", nil)
		}
		root = found
	}
	libs, err := steam.LibraryFolders(root)
	if err != nil {
		return nil, clierr.New(clierr.Internal, "failed to read Steam library folders", err)
	}
	log.Debug().Str("root", root).Strs("libraries", libs).Msg("Libraries discovered")
	return libs, nil
}

func sourcemodsState(lib string) string {
	ok, err := locator.HasDirectSubdirectory(filepath.Join(lib, locator.SteamAppsDir), locator.SourcemodsDir)
	switch {
	case err != nil:
		return "error: " + err.Error()
	case ok:
		return "yes"
	default:
		return "no"
	}
}
