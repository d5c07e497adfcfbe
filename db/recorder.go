package db

import (
	"context"
	"path/filepath"
	"time"

	"github.com/habedi/tf2cu/app"
	"github.com/habedi/tf2cu/pkg/hasher"
	"github.com/rs/zerolog/log"
)

// HistoryRecorder writes every recordable app.State as a Check.
type HistoryRecorder struct {
	Checks CheckRepository
	// Algo names the digest algorithm; empty means hasher.DefaultAlgo.
	Algo string
	// Now is overridable for tests.
	Now func() time.Time
}

// NewHistoryRecorder returns a recorder backed by checks that digests
// version files with algo.
func NewHistoryRecorder(checks CheckRepository, algo string) *HistoryRecorder {
	return &HistoryRecorder{Checks: checks, Algo: algo, Now: time.Now}
}

// Record implements app.Recorder.
func (r *HistoryRecorder) Record(s app.State) error {
	c := CheckFromState(s, r.Algo)
	if c == nil {
		return nil
	}
	if r.Now != nil {
		c.CreatedAt = r.Now()
	}
	return r.Checks.Add(context.Background(), c)
}

// CheckFromState builds a Check from s, or returns nil when s has no
// installation. The version file is digested with algo.
func CheckFromState(s app.State, algo string) *Check {
	if s.Installation == nil {
		return nil
	}
	inst := s.Installation
	if algo == "" {
		algo = hasher.DefaultAlgo
	}
	digest, err := hasher.GenerateHash(inst.VersionFile(), algo)
	if err != nil {
		log.Debug().Err(err).Str("file", inst.VersionFile()).Msg("Could not hash version file")
	}
	return &Check{
		Root:          inst.Root,
		Location:      inst.Location,
		GameID:        filepath.Base(inst.Location),
		InstalledName: inst.Version.Name,
		InstalledTime: inst.Version.Time,
		Latest:        s.Manifest.Latest,
		Comparison:    s.Compare().String(),
		Digest:        digest,
	}
}
