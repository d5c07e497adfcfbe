package locator

import "fmt"

// Kind classifies why no GameInstallation could be produced for a root.
type Kind int

const (
	// NoSteamApps means the chosen folder has no direct steamapps child.
	NoSteamApps Kind = iota + 1
	// NoSourcemods means steamapps exists but has no sourcemods folder.
	NoSourcemods
	// NotInstalled means sourcemods exists but the game folder does not.
	NotInstalled
	// NoVersionFile means the game folder has no readable version.txt.
	NoVersionFile
	// VersionFileUnparseable means version.txt exists but was rejected.
	VersionFileUnparseable
	// Internal covers filesystem failures other than a clean "not found".
	Internal
)

var kindNames = map[Kind]string{
	NoSteamApps:            "no_steamapps",
	NoSourcemods:           "no_sourcemods",
	NotInstalled:           "not_installed",
	NoVersionFile:          "no_version_file",
	VersionFileUnparseable: "version_file_unparseable",
	Internal:               "internal",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Benign reports whether the kind is informational rather than a failure.
func (k Kind) Benign() bool { return k == NotInstalled }

// Error carries the classification plus the path that was being probed.
// The message is technical; user-facing text is rendered elsewhere.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s at %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s at %s", e.Kind, e.Path)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match on kind alone, e.g. errors.Is(err, &Error{Kind: NotInstalled}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}
