// Package steam finds Steam library roots on the local machine.
package steam

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/andygrunwald/vdf"
	"github.com/habedi/tf2cu/locator"
	"github.com/rs/zerolog/log"
)

// LibraryFoldersFile is where Steam lists every configured library.
const LibraryFoldersFile = "libraryfolders.vdf"

// Candidates returns the well-known Steam install roots for this platform,
// most likely first. Entries are not checked for existence.
func Candidates() []string {
	return dedupe(platformCandidates())
}

// FirstLibrary returns the first candidate that directly contains steamapps.
func FirstLibrary(candidates []string) (string, bool) {
	for _, c := range candidates {
		ok, err := locator.HasDirectSubdirectory(c, locator.SteamAppsDir)
		if err != nil {
			log.Warn().Err(err).Str("path", c).Msg("Skipping unreadable Steam candidate")
			continue
		}
		if ok {
			return c, true
		}
	}
	return "", false
}

// DefaultRoot is the best-effort default library root for this machine.
func DefaultRoot() (string, bool) {
	root, ok := FirstLibrary(Candidates())
	if ok {
		log.Debug().Str("root", root).Msg("Detected default Steam root")
	}
	return root, ok
}

// LibraryFolders returns every library listed in root/steamapps/libraryfolders.vdf.
// root itself is always first. A missing vdf file is not an error.
func LibraryFolders(root string) ([]string, error) {
	libs := []string{root}
	path := filepath.Join(root, locator.SteamAppsDir, LibraryFoldersFile)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return libs, nil
		}
		return libs, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	parsed, err := vdf.NewParser(f).Parse()
	if err != nil {
		return libs, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	libs = append(libs, libraryPaths(parsed)...)
	return dedupe(libs), nil
}

// libraryPaths understands both layouts Steam has used:
//
//	"libraryfolders" { "0" { "path" "C:\\Steam" ... } }
//	"LibraryFolders" { "1" "D:\\SteamLibrary" }
func libraryPaths(parsed map[string]interface{}) []string {
	var top map[string]interface{}
	for k, v := range parsed {
		if strings.EqualFold(k, "libraryfolders") {
			top, _ = v.(map[string]interface{})
		}
	}

	var paths []string
	for _, key := range sortedNumericKeys(top) {
		switch v := top[key].(type) {
		case string:
			paths = append(paths, v)
		case map[string]interface{}:
			if p, ok := v["path"].(string); ok && p != "" {
				paths = append(paths, p)
			}
		}
	}
	return paths
}

// sortedNumericKeys returns the all-digit keys of m ordered by value.
func sortedNumericKeys(m map[string]interface{}) []string {
	var keys []string
	for k := range m {
		if k != "" && strings.Trim(k, "0123456789") == "" {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return numLess(keys[i], keys[j]) })
	return keys
}

func numLess(a, b string) bool {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		key := filepath.Clean(p)
		if caseInsensitiveFS {
			key = strings.ToLower(key)
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}
