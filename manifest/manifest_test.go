package manifest_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/habedi/tf2cu/client"
	"github.com/habedi/tf2cu/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SortsLexicographically(t *testing.T) {
	m, err := manifest.Parse(`{"versions": {"1.2.0": {}, "1.10.0": {}, "1.3.0": {}}}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"1.10.0", "1.2.0", "1.3.0"}, m.Versions)

	latest, err := m.Latest()
	require.NoError(t, err)
	assert.Equal(t, "1.3.0", latest, "byte order, not numeric order")
}

func TestParse_IgnoresOtherFieldsAndValues(t *testing.T) {
	raw := `{"name":"tf2c","versions":{"2.0.0":{"url":"a"},"2.1.0":null},"extra":[1,2]}`
	m, err := manifest.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"2.0.0", "2.1.0"}, m.Versions)
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "<html>"},
		{"top level array", `[1,2]`},
		{"missing versions", `{"other": {}}`},
		{"null versions", `{"versions": null}`},
		{"versions is array", `{"versions": ["1.0"]}`},
		{"versions is string", `{"versions": "1.0"}`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manifest.Parse(tt.raw)
			assert.ErrorIs(t, err, manifest.ErrParse)
		})
	}
}

func TestLatest_Empty(t *testing.T) {
	m, err := manifest.Parse(`{"versions": {}}`)
	require.NoError(t, err)
	assert.Empty(t, m.Versions)

	_, err = m.Latest()
	assert.ErrorIs(t, err, manifest.ErrEmpty)

	_, err = manifest.Manifest{}.Latest()
	assert.ErrorIs(t, err, manifest.ErrEmpty)
}

func TestFetcher_Load(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"versions":{"2.1.4":{},"2.0.0":{}}}`)
	}))
	defer ts.Close()

	f := manifest.NewFetcher(ts.URL, client.New())
	assert.Equal(t, ts.URL, f.URL())

	m, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"2.0.0", "2.1.4"}, m.Versions)
}

func TestFetcher_TransportErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := manifest.NewFetcher(ts.URL, nil).Load(context.Background())
	assert.ErrorIs(t, err, manifest.ErrTransport)

	var se *client.StatusError
	assert.ErrorAs(t, err, &se)

	closed := httptest.NewServer(http.NotFoundHandler())
	url := closed.URL
	closed.Close()
	_, err = manifest.NewFetcher(url, nil).Fetch(context.Background())
	assert.ErrorIs(t, err, manifest.ErrTransport)
}

func TestFetcher_ParseError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	}))
	defer ts.Close()

	_, err := manifest.NewFetcher(ts.URL, nil).Load(context.Background())
	assert.ErrorIs(t, err, manifest.ErrParse)
	assert.NotErrorIs(t, err, manifest.ErrTransport)
}

type loaderFunc func(ctx context.Context) (manifest.Manifest, error)

func (f loaderFunc) Load(ctx context.Context) (manifest.Manifest, error) { return f(ctx) }

func TestResult_PendingThenReady(t *testing.T) {
	release := make(chan struct{})
	r := manifest.Start(context.Background(), loaderFunc(func(ctx context.Context) (manifest.Manifest, error) {
		<-release
		return manifest.Manifest{Versions: []string{"1"}}, nil
	}))

	assert.False(t, r.Ready())
	_, err := r.Get()
	assert.ErrorIs(t, err, manifest.ErrPending)

	close(release)
	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("result never completed")
	}

	assert.True(t, r.Ready())
	m, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, m.Versions)
}

func TestResult_Failure(t *testing.T) {
	boom := errors.New("boom")
	r := manifest.Start(context.Background(), loaderFunc(func(ctx context.Context) (manifest.Manifest, error) {
		return manifest.Manifest{}, boom
	}))
	_, err := r.Wait(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestResult_WaitHonoursContext(t *testing.T) {
	stop := make(chan struct{})
	t.Cleanup(func() { close(stop) })
	r := manifest.Start(context.Background(), loaderFunc(func(ctx context.Context) (manifest.Manifest, error) {
		<-stop
		return manifest.Manifest{}, nil
	}))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := r.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, r.Ready())
}

func TestResolved(t *testing.T) {
	r := manifest.Resolved(manifest.Manifest{Versions: []string{"a"}}, nil)
	assert.True(t, r.Ready())
	m, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, "a", m.Versions[0])
}
