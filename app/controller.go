package app

import (
	"context"

	"github.com/habedi/tf2cu/locator"
	"github.com/habedi/tf2cu/manifest"
	"github.com/rs/zerolog/log"
)

// Recorder is told about every state that has both an installation and
// a ready manifest.
type Recorder interface {
	Record(s State) error
}

// Options configures a Controller.
type Options struct {
	GameID string
	// Root is used as-is when set; otherwise Discover is consulted and its
	// answer is used only when it contains a steamapps directory.
	Root     string
	Discover func() (string, bool)
	Loader   manifest.Loader
	Recorder Recorder
}

// Controller owns the State for a single front-end. It is not safe for
// concurrent use: every method must be called from the UI goroutine. The
// only cross-goroutine handoff is the manifest Result slot.
type Controller struct {
	gameID   string
	state    State
	result   *manifest.Result
	consumed bool
	recorder Recorder
}

// New builds the initial state and starts the manifest load in the background.
func New(ctx context.Context, opts Options) *Controller {
	c := &Controller{gameID: opts.GameID, recorder: opts.Recorder}

	root := opts.Root
	if root == "" && opts.Discover != nil {
		if found, ok := opts.Discover(); ok && isSteamLibrary(found) {
			root = found
		}
	}
	if root != "" {
		c.state = Reduce(c.state, LocationChangeRequested{Path: root}, c.gameID)
	}
	log.Debug().Str("root", root).Str("selection", c.state.Selection().String()).Msg("Initial state built")

	if opts.Loader != nil {
		c.result = manifest.Start(ctx, opts.Loader)
	}
	return c
}

func isSteamLibrary(root string) bool {
	ok, err := locator.HasDirectSubdirectory(root, locator.SteamAppsDir)
	if err != nil || !ok {
		log.Debug().Err(err).Str("root", root).Msg("Ignoring discovered location without steamapps")
		return false
	}
	return true
}

// GameID is the sourcemod folder name being looked for.
func (c *Controller) GameID() string { return c.gameID }

// Snapshot returns the current state for rendering.
func (c *Controller) Snapshot() State { return c.state }

// Dispatch applies ev.
func (c *Controller) Dispatch(ev Event) {
	c.state = Reduce(c.state, ev, c.gameID)
	if _, ok := ev.(LocationChangeRequested); ok {
		log.Info().Str("root", c.state.Root).Str("selection", c.state.Selection().String()).Msg("Location changed")
		c.record()
	}
}

// Done is closed once the manifest outcome is available. It is nil when
// no loader was configured.
func (c *Controller) Done() <-chan struct{} {
	if c.result == nil {
		return nil
	}
	return c.result.Done()
}

// Poll moves a finished manifest load into the state. It reads the result
// slot at most once and reports whether the state changed.
func (c *Controller) Poll() bool {
	if c.consumed || c.result == nil || !c.result.Ready() {
		return false
	}
	m, err := c.result.Get()
	c.consumed = true
	c.state = Reduce(c.state, ManifestResolved{Manifest: m, Err: err}, c.gameID)
	log.Info().Str("status", c.state.Manifest.Status.String()).Str("latest", c.state.Manifest.Latest).Msg("Manifest resolved")
	c.record()
	return true
}

func (c *Controller) record() {
	if c.recorder == nil || c.state.Installation == nil || c.state.Manifest.Status != Ready {
		return
	}
	if err := c.recorder.Record(c.state); err != nil {
		log.Warn().Err(err).Msg("Failed to record check")
	}
}
