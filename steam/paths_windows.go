//go:build windows

package steam

import (
	"path/filepath"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows/registry"
)

const caseInsensitiveFS = true

func platformCandidates() []string {
	var out []string
	if p, ok := registrySteamPath(); ok {
		out = append(out, p)
	}
	return append(out, `C:\Program Files (x86)\Steam`, `C:\Program Files\Steam`)
}

// registrySteamPath reads HKCU\Software\Valve\Steam\SteamPath, which the
// Steam client keeps up to date with its own install location.
func registrySteamPath() (string, bool) {
	key, err := registry.OpenKey(registry.CURRENT_USER, `SOFTWARE\Valve\Steam`, registry.QUERY_VALUE)
	if err != nil {
		log.Debug().Err(err).Msg("Steam registry key not found")
		return "", false
	}
	defer key.Close()

	steamPath, _, err := key.GetStringValue("SteamPath")
	if err != nil || steamPath == "" {
		log.Debug().Err(err).Msg("SteamPath registry value not readable")
		return "", false
	}
	return filepath.Clean(steamPath), true
}
