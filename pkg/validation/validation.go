package validation

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"
)

const (
	MinThreads = 1
	MaxThreads = 20
)

func ValidateThreadCount(threads int) error {
	if threads < MinThreads || threads > MaxThreads {
		return fmt.Errorf("thread count must be between %d and %d, got %d", MinThreads, MaxThreads, threads)
	}
	return nil
}

// ValidateGameID checks that id names a single folder under sourcemods.
func ValidateGameID(id string) error {
	if err := ValidateNonEmptyString("game ID", id); err != nil {
		return err
	}
	if strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return fmt.Errorf("game ID must be a single folder name, got %q", id)
	}
	return nil
}

func ValidateNonEmptyString(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidateManifestURL accepts absolute http and https URLs only.
func ValidateManifestURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid manifest URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid manifest URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid manifest URL %q: missing host", raw)
	}
	return nil
}

// ValidateLanguage checks that code is a well-formed BCP 47 tag.
func ValidateLanguage(code string) error {
	if _, err := language.Parse(code); err != nil {
		return fmt.Errorf("invalid language code: %s", code)
	}
	return nil
}
