package versionfile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Keys that every version descriptor must carry.
const (
	KeyName = "VersionName"
	KeyTime = "VersionTime"
)

// ErrParse is the sentinel wrapped by every ParseError.
var ErrParse = errors.New("version file cannot be parsed")

// Version identifies an installed build as written in version.txt.
type Version struct {
	Name string `json:"name"`
	Time string `json:"time"`
}

// ParseError describes why a version descriptor was rejected.
// Line is 1-based and zero when the failure is a missing key.
type ParseError struct {
	Line    int
	Text    string
	Missing string
}

func (e *ParseError) Error() string {
	if e.Missing != "" {
		return fmt.Sprintf("%s: missing key %q", ErrParse, e.Missing)
	}
	return fmt.Sprintf("%s: line %d has no '=': %q", ErrParse, e.Line, e.Text)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// Parse turns key=value lines into a map.
// Blank lines are skipped, every other line is split on its first '='
// and a repeated key keeps the last value seen.
func Parse(raw string) (map[string]string, error) {
	kv := make(map[string]string)
	for i, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			err := &ParseError{Line: i + 1, Text: line}
			log.Debug().Err(err).Msg("Rejected version file line")
			return nil, err
		}
		kv[key] = value
	}
	return kv, nil
}

// ToVersion extracts the required keys. Values are taken verbatim,
// empty strings included.
func ToVersion(kv map[string]string) (Version, error) {
	name, ok := kv[KeyName]
	if !ok {
		return Version{}, &ParseError{Missing: KeyName}
	}
	t, ok := kv[KeyTime]
	if !ok {
		return Version{}, &ParseError{Missing: KeyTime}
	}
	return Version{Name: name, Time: t}, nil
}

// ParseVersion is Parse followed by ToVersion.
func ParseVersion(raw string) (Version, error) {
	kv, err := Parse(raw)
	if err != nil {
		return Version{}, err
	}
	return ToVersion(kv)
}
