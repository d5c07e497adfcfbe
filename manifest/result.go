package manifest

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
)

// ErrPending is returned by Get while the load is still running.
var ErrPending = errors.New("manifest still loading")

// Result is a one-shot handle for a manifest loaded in the background.
// The worker writes the outcome once and closes done; readers only look
// at the outcome after done is closed.
type Result struct {
	done     chan struct{}
	manifest Manifest
	err      error
}

// Start launches a single worker that calls l.Load. There is no retry and
// the caller cannot cancel it except through ctx.
func Start(ctx context.Context, l Loader) *Result {
	r := &Result{done: make(chan struct{})}
	go func() {
		defer close(r.done)
		r.manifest, r.err = l.Load(ctx)
		if r.err != nil {
			log.Warn().Err(r.err).Msg("Background manifest load failed")
		}
	}()
	return r
}

// Resolved returns a Result that is already complete.
func Resolved(m Manifest, err error) *Result {
	r := &Result{done: make(chan struct{}), manifest: m, err: err}
	close(r.done)
	return r
}

// Done is closed once the outcome is available.
func (r *Result) Done() <-chan struct{} { return r.done }

// Ready polls without blocking.
func (r *Result) Ready() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

// Get returns the outcome, or ErrPending if there is none yet.
func (r *Result) Get() (Manifest, error) {
	if !r.Ready() {
		return Manifest{}, ErrPending
	}
	return r.manifest, r.err
}

// Wait blocks until the outcome is available or ctx ends.
func (r *Result) Wait(ctx context.Context) (Manifest, error) {
	select {
	case <-r.done:
		return r.manifest, r.err
	case <-ctx.Done():
		return Manifest{}, ctx.Err()
	}
}
