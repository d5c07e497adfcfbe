package cmd

import (
	"context"
	"os"

	"github.com/habedi/tf2cu/app"
	"github.com/habedi/tf2cu/client"
	"github.com/habedi/tf2cu/config"
	"github.com/habedi/tf2cu/db"
	"github.com/habedi/tf2cu/manifest"
	"github.com/habedi/tf2cu/pkg/clierr"
	"github.com/habedi/tf2cu/steam"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cfg is resolved once per invocation by the root command's pre-run hook.
var cfg config.Config

// configFile is the --config flag.
var configFile string

func Execute() {
	rootCmd := createRootCmd()
	rootCmd.PersistentFlags().BoolP("help", "h", false, "Show help for a command")

	err := rootCmd.Execute()
	closeDatabase()
	if err != nil {
		log.Error().Err(err).Msg("Command execution failed.")
		os.Exit(clierr.ExitCode(err))
	}
}

func createRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "tf2cu",
		Short:        "Find a TF2 Classic install and check it against the latest release",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			return initializeDatabase()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (default is $HOME/.tf2cu/config.yaml)")
	flags.String("root", "", "Steam library root to inspect instead of auto-discovery")
	flags.String("game", config.DefaultGameID, "Sourcemod folder name of the game")
	flags.String("manifest-url", manifest.DefaultURL, "URL of the published versions list")
	flags.String("lang", "en", "Language for messages [en, de]")

	rootCmd.AddCommand(
		checkCmd(),
		librariesCmd(),
		scanCmd(),
		historyCmd(),
		versionCmd(),
		guiCmd(),
		tuiCmd(),
	)

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:    "no-help",
		Hidden: true,
	})

	return rootCmd
}

// flagKeys maps persistent flags onto config keys.
var flagKeys = map[string]string{
	"root":         config.KeySteamRoot,
	"game":         config.KeyGameID,
	"manifest-url": config.KeyManifestURL,
	"lang":         config.KeyLanguage,
}

func loadConfig(cmd *cobra.Command) error {
	v := config.New(configFile)
	if err := bindFlags(v, cmd); err != nil {
		return clierr.New(clierr.Internal, "failed to bind flags", err)
	}
	loaded, err := config.Load(v)
	if err != nil {
		return clierr.New(clierr.Validation, err.Error(), err)
	}
	cfg = loaded
	db.Path = cfg.DBPath
	log.Debug().Interface("config", cfg).Msg("Configuration loaded")
	return nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

func initializeDatabase() error {
	if err := db.InitDB(); err != nil {
		log.Error().Err(err).Msg("Failed to initialize database")
		return clierr.New(clierr.Internal, "failed to open the history database", err)
	}
	return nil
}

func closeDatabase() {
	if err := db.CloseDB(); err != nil {
		log.Error().Err(err).Msg("Failed to close the database.")
	}
}

// newLoader builds the manifest loader for the current configuration.
func newLoader() *manifest.Fetcher {
	return manifest.NewFetcher(cfg.ManifestURL, client.New(client.WithTimeout(cfg.ManifestTimeout)))
}

// explicitRoot is the root named by flag, env or config file, if any.
func explicitRoot() string { return cfg.SteamRoot }

// discoverRoot prefers the location the user last picked interactively and
// falls back to the platform's default Steam install. A remembered location
// that no longer contains steamapps is skipped.
func discoverRoot() (string, bool) {
	if database := db.GetDB(); database != nil {
		last, ok, err := db.NewSettingRepository(database).Get(context.Background(), db.KeyLastRoot)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("Failed to read remembered location")
		case ok && last != "":
			if root, found := steam.FirstLibrary([]string{last}); found {
				log.Debug().Str("root", root).Msg("Using remembered location")
				return root, true
			}
			log.Info().Str("root", last).Msg("Remembered location is no longer a Steam library")
		}
	}
	return steam.DefaultRoot()
}

// rememberRoot stores root as the preferred location for later runs.
func rememberRoot(root string) {
	database := db.GetDB()
	if database == nil || root == "" {
		return
	}
	if err := db.NewSettingRepository(database).Put(context.Background(), db.KeyLastRoot, root); err != nil {
		log.Warn().Err(err).Str("root", root).Msg("Failed to remember location")
	}
}

// recorder returns the history recorder, or nil when no database is open.
func recorder() app.Recorder {
	database := db.GetDB()
	if database == nil {
		return nil
	}
	return db.NewHistoryRecorder(db.NewCheckRepository(database), cfg.HashAlgo)
}
