// Package app holds the application state and the reducer that drives it.
// Front-ends render State snapshots and feed Events back in; they never
// mutate State directly.
package app

import (
	"errors"

	"github.com/habedi/tf2cu/locator"
	"github.com/habedi/tf2cu/manifest"
)

// Selection is the location half of the state machine.
type Selection int

const (
	NoLocationSelected Selection = iota
	LocationSelectedNoGameData
	LocationSelectedWithGameData
)

func (s Selection) String() string {
	switch s {
	case LocationSelectedNoGameData:
		return "location_selected_no_game_data"
	case LocationSelectedWithGameData:
		return "location_selected_with_game_data"
	default:
		return "no_location_selected"
	}
}

// Status of the one-shot manifest load.
type Status int

const (
	Pending Status = iota
	Ready
	Failed
)

func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "pending"
	}
}

// ManifestStatus is the manifest half of the state machine.
type ManifestStatus struct {
	Status   Status
	Latest   string
	Versions []string
	Err      error
}

// State is a value; every transition produces a new one.
// Installation and LocationErr are never both set.
type State struct {
	Root         string
	Installation *locator.GameInstallation
	LocationErr  *locator.Error
	Manifest     ManifestStatus
}

// Selection derives which location state s is in.
func (s State) Selection() Selection {
	switch {
	case s.Installation != nil:
		return LocationSelectedWithGameData
	case s.LocationErr != nil:
		return LocationSelectedNoGameData
	default:
		return NoLocationSelected
	}
}

// Event is something that may change State.
type Event interface{ isEvent() }

// LocationChangeRequested is sent when the user picks a folder.
type LocationChangeRequested struct{ Path string }

// LocationPickCancelled is sent when the picker is dismissed without a choice.
type LocationPickCancelled struct{}

// ManifestResolved carries the outcome of the background load.
type ManifestResolved struct {
	Manifest manifest.Manifest
	Err      error
}

func (LocationChangeRequested) isEvent() {}
func (LocationPickCancelled) isEvent()   {}
func (ManifestResolved) isEvent()        {}

// Reduce applies ev to s. It touches the filesystem for
// LocationChangeRequested but is otherwise pure.
func Reduce(s State, ev Event, gameID string) State {
	switch ev := ev.(type) {
	case LocationChangeRequested:
		return selectLocation(s, ev.Path, gameID)
	case ManifestResolved:
		s.Manifest = resolveManifest(ev)
		return s
	default:
		return s
	}
}

// selectLocation replaces every location field. The root is kept on all
// failure branches, NoSteamApps included, so the user always sees which
// folder produced the message.
func selectLocation(s State, root, gameID string) State {
	next := State{Root: root, Manifest: s.Manifest}

	inst, err := locator.Validate(root, gameID)
	if err == nil {
		next.Installation = &inst
		return next
	}

	var le *locator.Error
	if !errors.As(err, &le) {
		le = &locator.Error{Kind: locator.Internal, Path: root, Err: err}
	}
	next.LocationErr = le
	return next
}

func resolveManifest(ev ManifestResolved) ManifestStatus {
	if ev.Err != nil {
		return ManifestStatus{Status: Failed, Err: ev.Err}
	}
	latest, err := ev.Manifest.Latest()
	if err != nil {
		return ManifestStatus{Status: Failed, Err: err}
	}
	return ManifestStatus{Status: Ready, Latest: latest, Versions: ev.Manifest.Versions}
}
