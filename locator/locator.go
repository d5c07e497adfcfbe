package locator

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/habedi/tf2cu/versionfile"
	"github.com/rs/zerolog/log"
)

// Fixed layout of a Steam library.
const (
	SteamAppsDir   = "steamapps"
	SourcemodsDir  = "sourcemods"
	VersionFileRel = "version.txt"
)

// GameInstallation is a game folder whose version descriptor was read and parsed.
type GameInstallation struct {
	Root     string              `json:"root"`
	Location string              `json:"location"`
	Version  versionfile.Version `json:"version"`
}

// VersionFile returns the path of the descriptor that produced this installation.
func (g GameInstallation) VersionFile() string {
	return filepath.Join(g.Location, VersionFileRel)
}

// SourcemodsPath returns root/steamapps/sourcemods.
func SourcemodsPath(root string) string {
	return filepath.Join(root, SteamAppsDir, SourcemodsDir)
}

// GamePath returns root/steamapps/sourcemods/<gameID>.
func GamePath(root, gameID string) string {
	return filepath.Join(SourcemodsPath(root), gameID)
}

// HasDirectSubdirectory reports whether path directly contains a directory called name.
// A path that is missing or is not a directory yields false with no error;
// any other failure to list it is returned as an Internal *Error.
func HasDirectSubdirectory(path, name string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if isMissing(err) {
			return false, nil
		}
		return false, newError(Internal, path, err)
	}
	if !info.IsDir() {
		return false, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to list directory")
		return false, newError(Internal, path, err)
	}
	for _, entry := range entries {
		if entry.Name() != name {
			continue
		}
		if entry.IsDir() {
			return true, nil
		}
		if entry.Type()&fs.ModeSymlink != 0 {
			link := filepath.Join(path, name)
			target, err := os.Stat(link)
			if err != nil {
				if isMissing(err) {
					return false, nil
				}
				log.Error().Err(err).Str("path", link).Msg("Failed to follow symlink")
				return false, newError(Internal, link, err)
			}
			return target.IsDir(), nil
		}
		return false, nil
	}
	return false, nil
}

// Locate looks for gameID under root/steamapps/sourcemods and parses its version.txt.
func Locate(root, gameID string) (GameInstallation, error) {
	candidate := GamePath(root, gameID)
	logger := log.With().Str("root", root).Str("game", gameID).Logger()

	isDir, err := dirExists(candidate)
	if err != nil {
		logger.Error().Err(err).Str("path", candidate).Msg("Unexpected error probing game directory")
		return GameInstallation{}, newError(Internal, candidate, err)
	}

	if isDir {
		versionPath := filepath.Join(candidate, VersionFileRel)
		raw, err := os.ReadFile(versionPath)
		if err != nil {
			logger.Debug().Err(err).Msg("Version file not readable")
			return GameInstallation{}, newError(NoVersionFile, versionPath, err)
		}
		version, err := versionfile.ParseVersion(string(raw))
		if err != nil {
			logger.Warn().Err(err).Msg("Version file rejected")
			return GameInstallation{}, newError(VersionFileUnparseable, versionPath, err)
		}
		logger.Info().Str("version", version.Name).Msg("Found game installation")
		return GameInstallation{Root: root, Location: candidate, Version: version}, nil
	}

	sourcemods := SourcemodsPath(root)
	hasSourcemods, err := dirExists(sourcemods)
	if err != nil {
		logger.Error().Err(err).Str("path", sourcemods).Msg("Unexpected error probing sourcemods")
		return GameInstallation{}, newError(Internal, sourcemods, err)
	}
	if hasSourcemods {
		return GameInstallation{}, newError(NotInstalled, candidate, nil)
	}
	return GameInstallation{}, newError(NoSourcemods, sourcemods, nil)
}

// Validate checks that root looks like a Steam library before calling Locate.
func Validate(root, gameID string) (GameInstallation, error) {
	ok, err := HasDirectSubdirectory(root, SteamAppsDir)
	if err != nil {
		return GameInstallation{}, err
	}
	if !ok {
		return GameInstallation{}, newError(NoSteamApps, root, nil)
	}
	return Locate(root, gameID)
}

// dirExists returns false for a clean "not there" and an error for anything else.
func dirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.IsDir(), nil
	}
	if isMissing(err) {
		return false, nil
	}
	return false, err
}

func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
