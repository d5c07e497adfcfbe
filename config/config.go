// Package config loads settings from ~/.tf2cu/config.yaml, TF2CU_* environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/habedi/tf2cu/manifest"
	"github.com/habedi/tf2cu/pkg/hasher"
	"github.com/habedi/tf2cu/pkg/validation"
	"github.com/spf13/viper"
)

// Keys understood by Load.
const (
	KeyGameID          = "game.id"
	KeySteamRoot       = "steam.root"
	KeyManifestURL     = "manifest.url"
	KeyManifestTimeout = "manifest.timeout"
	KeyLanguage        = "ui.language"
	KeyTheme           = "ui.theme"
	KeyDBPath          = "db.path"
	KeyHashAlgo        = "history.hash_algo"
)

// DefaultGameID is the sourcemods folder name of TF2 Classic.
const DefaultGameID = "tf2classic"

// Config is the resolved configuration.
type Config struct {
	GameID          string
	SteamRoot       string
	ManifestURL     string
	ManifestTimeout time.Duration
	Language        string
	Theme           string
	DBPath          string
	HashAlgo        string
}

// Dir is the per-user directory holding the config file and database.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = os.Getenv("HOME")
	}
	return filepath.Join(home, ".tf2cu")
}

// New returns a viper instance with defaults, env binding and the config
// search path set up. configFile, when non-empty, replaces the search.
func New(configFile string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("TF2CU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyGameID, DefaultGameID)
	v.SetDefault(KeySteamRoot, "")
	v.SetDefault(KeyManifestURL, manifest.DefaultURL)
	v.SetDefault(KeyManifestTimeout, "0s")
	v.SetDefault(KeyLanguage, "en")
	v.SetDefault(KeyTheme, "dark")
	v.SetDefault(KeyDBPath, filepath.Join(Dir(), "history.db"))
	v.SetDefault(KeyHashAlgo, hasher.DefaultAlgo)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir())
	}
	return v
}

// Load reads the optional config file and validates the result.
// A missing file in the default location is fine; a missing file that
// was named explicitly is not.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{
		GameID:          strings.TrimSpace(v.GetString(KeyGameID)),
		SteamRoot:       strings.TrimSpace(v.GetString(KeySteamRoot)),
		ManifestURL:     strings.TrimSpace(v.GetString(KeyManifestURL)),
		ManifestTimeout: v.GetDuration(KeyManifestTimeout),
		Language:        strings.TrimSpace(v.GetString(KeyLanguage)),
		Theme:           strings.ToLower(strings.TrimSpace(v.GetString(KeyTheme))),
		DBPath:          strings.TrimSpace(v.GetString(KeyDBPath)),
		HashAlgo:        strings.ToLower(strings.TrimSpace(v.GetString(KeyHashAlgo))),
	}

	if err := validation.ValidateGameID(cfg.GameID); err != nil {
		return Config{}, err
	}
	if err := validation.ValidateManifestURL(cfg.ManifestURL); err != nil {
		return Config{}, err
	}
	if err := validation.ValidateLanguage(cfg.Language); err != nil {
		return Config{}, err
	}
	if cfg.ManifestTimeout < 0 {
		return Config{}, fmt.Errorf("%s must not be negative, got %s", KeyManifestTimeout, cfg.ManifestTimeout)
	}
	if cfg.Theme != "dark" && cfg.Theme != "light" && cfg.Theme != "system" {
		return Config{}, fmt.Errorf("invalid %s: %s (must be one of: dark, light, system)", KeyTheme, cfg.Theme)
	}
	if cfg.DBPath == "" {
		return Config{}, fmt.Errorf("%s cannot be empty", KeyDBPath)
	}
	if !hasher.IsValidHashAlgo(cfg.HashAlgo) {
		return Config{}, fmt.Errorf("invalid %s: %s (must be one of: %s)",
			KeyHashAlgo, cfg.HashAlgo, strings.Join(hasher.HashAlgorithms, ", "))
	}
	return cfg, nil
}
