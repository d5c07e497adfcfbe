package manifest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/habedi/tf2cu/client"
	"github.com/rs/zerolog/log"
)

// DefaultURL is the published version list for TF2 Classic.
const DefaultURL = "https://wiki.tf2classic.com/kachemak/versions.json"

var (
	// ErrTransport wraps any failure to obtain the manifest text.
	ErrTransport = errors.New("manifest fetch failed")
	// ErrParse wraps any failure to interpret the manifest text.
	ErrParse = errors.New("manifest cannot be parsed")
	// ErrEmpty is returned by Latest when no versions are listed.
	ErrEmpty = errors.New("manifest lists no versions")
)

// Manifest is the ordered list of published version names.
type Manifest struct {
	Versions []string `json:"versions"`
}

// Latest returns the last version in lexicographic order.
func (m Manifest) Latest() (string, error) {
	if len(m.Versions) == 0 {
		return "", ErrEmpty
	}
	return m.Versions[len(m.Versions)-1], nil
}

// Parse extracts the key set of the "versions" object and sorts it
// ascending by byte order. "1.10.0" therefore sorts before "1.3.0".
func Parse(raw string) (Manifest, error) {
	var doc struct {
		Versions json.RawMessage `json:"versions"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		log.Error().Err(err).Str("body_preview", raw[:min(len(raw), 200)]).Msg("Failed to parse manifest JSON")
		return Manifest{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(doc.Versions) == 0 || string(doc.Versions) == "null" {
		return Manifest{}, fmt.Errorf("%w: no \"versions\" field", ErrParse)
	}

	var versions map[string]json.RawMessage
	if err := json.Unmarshal(doc.Versions, &versions); err != nil {
		return Manifest{}, fmt.Errorf("%w: \"versions\" is not an object: %v", ErrParse, err)
	}

	names := make([]string, 0, len(versions))
	for name := range versions {
		names = append(names, name)
	}
	sort.Strings(names)
	return Manifest{Versions: names}, nil
}

// Loader produces a parsed manifest.
type Loader interface {
	Load(ctx context.Context) (Manifest, error)
}

// Fetcher downloads the manifest from a fixed URL.
type Fetcher struct {
	url    string
	client *client.Client
}

// NewFetcher returns a Fetcher for url using c for transport.
func NewFetcher(url string, c *client.Client) *Fetcher {
	if c == nil {
		c = client.New()
	}
	return &Fetcher{url: url, client: c}
}

// URL returns the manifest location.
func (f *Fetcher) URL() string { return f.url }

// Fetch returns the raw manifest text.
func (f *Fetcher) Fetch(ctx context.Context) (string, error) {
	log.Info().Str("url", f.url).Msg("Fetching version manifest")
	body, err := f.client.GetText(ctx, f.url)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return body, nil
}

// Load fetches and parses the manifest.
func (f *Fetcher) Load(ctx context.Context) (Manifest, error) {
	raw, err := f.Fetch(ctx)
	if err != nil {
		return Manifest{}, err
	}
	m, err := Parse(raw)
	if err != nil {
		return Manifest{}, err
	}
	log.Info().Int("count", len(m.Versions)).Msg("Parsed version manifest")
	return m, nil
}
