package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errReader struct{}

func (errReader) Read(p []byte) (int, error) { return 0, errors.New("read err") }

func TestReadResponseBody_Error(t *testing.T) {
	resp := &http.Response{Body: io.NopCloser(errReader{})}
	_, err := readResponseBody(resp)
	assert.Error(t, err)
}

func TestGetText_SendsHeaders(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "custom-agent", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = io.WriteString(w, `{"ok":true}`)
	}))
	defer ts.Close()

	c := New(WithUserAgent("custom-agent"))
	body, err := c.GetText(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, body)
}

func TestGetText_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := New().GetText(context.Background(), ts.URL)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.Code)
	assert.Contains(t, se.Body, "gone")
	assert.Contains(t, se.Error(), "404")
}

func TestGetText_BadURL(t *testing.T) {
	_, err := New().GetText(context.Background(), "://not a url")
	assert.Error(t, err)
}

func TestOptions(t *testing.T) {
	hc := &http.Client{}
	c := New(WithHTTPClient(hc))
	assert.Same(t, hc, c.httpClient, "without a timeout the client is used as given")

	assert.Zero(t, New().httpClient.Timeout, "no timeout unless configured")
	assert.Equal(t, DefaultUserAgent, New().userAgent)
}

func TestWithTimeout_OrderAndSharedClient(t *testing.T) {
	shared := &http.Client{Timeout: time.Minute}

	for name, opts := range map[string][]Option{
		"timeout first": {WithTimeout(3 * time.Second), WithHTTPClient(shared)},
		"timeout last":  {WithHTTPClient(shared), WithTimeout(3 * time.Second)},
	} {
		t.Run(name, func(t *testing.T) {
			c := New(opts...)
			assert.Equal(t, 3*time.Second, c.httpClient.Timeout)
			assert.NotSame(t, shared, c.httpClient)
			assert.Equal(t, time.Minute, shared.Timeout, "the caller's client is left alone")
		})
	}

	assert.Zero(t, New(WithHTTPClient(shared), WithTimeout(0)).httpClient.Timeout, "zero clears the timeout")
}
