package steam

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeVDF(t *testing.T, root, content string) {
	t.Helper()
	dir := filepath.Join(root, "steamapps")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, LibraryFoldersFile), []byte(content), 0o644))
}

func TestLibraryFolders_CurrentFormat(t *testing.T) {
	root := t.TempDir()
	writeVDF(t, root, `"libraryfolders"
{
	"0"
	{
		"path"		"/mnt/steam"
		"label"		""
		"apps"
		{
			"228980"		"123"
		}
	}
	"1"
	{
		"path"		"/mnt/games/SteamLibrary"
	}
	"10"
	{
		"path"		"/mnt/other"
	}
	"2"
	{
		"path"		"/mnt/second"
	}
}
`)

	libs, err := LibraryFolders(root)
	require.NoError(t, err)
	assert.Equal(t, []string{root, "/mnt/steam", "/mnt/games/SteamLibrary", "/mnt/second", "/mnt/other"}, libs)
}

func TestLibraryFolders_LegacyFormat(t *testing.T) {
	root := t.TempDir()
	writeVDF(t, root, `"LibraryFolders"
{
	"TimeNextStatsReport"		"1600000000"
	"ContentStatsID"		"-123"
	"1"		"D:\\SteamLibrary"
}
`)

	libs, err := LibraryFolders(root)
	require.NoError(t, err)
	assert.Equal(t, []string{root, `D:\SteamLibrary`}, libs)
}

func TestLibraryFolders_MissingFile(t *testing.T) {
	root := t.TempDir()
	libs, err := LibraryFolders(root)
	require.NoError(t, err)
	assert.Equal(t, []string{root}, libs)
}

func TestLibraryFolders_Malformed(t *testing.T) {
	root := t.TempDir()
	writeVDF(t, root, `{ "broken"`)
	libs, err := LibraryFolders(root)
	assert.Error(t, err)
	assert.Equal(t, []string{root}, libs, "root is still reported")
}

func TestFirstLibrary(t *testing.T) {
	empty := t.TempDir()
	lib := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(lib, "steamapps"), 0o755))

	got, ok := FirstLibrary([]string{filepath.Join(empty, "missing"), empty, lib})
	assert.True(t, ok)
	assert.Equal(t, lib, got)

	_, ok = FirstLibrary([]string{empty})
	assert.False(t, ok)

	_, ok = FirstLibrary(nil)
	assert.False(t, ok)
}

func TestDedupe(t *testing.T) {
	got := dedupe([]string{"/a", "", "/a/", "/b", "/a/../a"})
	assert.Equal(t, []string{"/a", "/b"}, got)
}

func TestSortedNumericKeys(t *testing.T) {
	m := map[string]interface{}{"2": 1, "10": 1, "1": 1, "x": 1, "": 1, "0": 1}
	assert.Equal(t, []string{"0", "1", "2", "10"}, sortedNumericKeys(m))
}
