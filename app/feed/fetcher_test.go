package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcherSendsUserAgent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Podcast RSS/test", r.Header.Get("User-Agent"))
		w.Write([]byte("<rss/>"))
	}))
	defer server.Close()

	data, err := NewFetcher(server.Client(), "Podcast RSS/test").Fetch(context.Background(), server.URL, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "<rss/>", string(data))
}

func TestFetcherHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer server.Close()

	_, err := NewFetcher(server.Client(), "test").Fetch(context.Background(), server.URL, time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "410")
}

func TestFetcherTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	_, err := NewFetcher(server.Client(), "test").Fetch(context.Background(), server.URL, 50*time.Millisecond)
	assert.Error(t, err)
}

func TestFetcherInvalidURL(t *testing.T) {
	_, err := NewFetcher(nil, "test").Fetch(context.Background(), "://bad", 0)
	assert.Error(t, err)
}
