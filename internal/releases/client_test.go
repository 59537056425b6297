// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package releases

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedServer(t *testing.T, hits *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		assert.Equal(t, "GO", r.URL.Query().Get("code"))
		assert.Equal(t, "release", r.URL.Query().Get("type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleFeed))
	}))
}

func TestClient_Fetch(t *testing.T) {
	t.Setenv("JBCTL_CACHE_DIR", t.TempDir())

	var hits int
	srv := newFeedServer(t, &hits)
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	rels, err := c.Fetch(context.Background(), "go", true)
	require.NoError(t, err)
	require.Len(t, rels, 2)
	assert.Equal(t, "2024.1", rels[0].Version)
	assert.Equal(t, 1, hits)
}

func TestClient_FetchUsesCache(t *testing.T) {
	t.Setenv("JBCTL_CACHE_DIR", t.TempDir())

	var hits int
	srv := newFeedServer(t, &hits)
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	_, err := c.Fetch(context.Background(), "GO", false)
	require.NoError(t, err)
	_, err = c.Fetch(context.Background(), "GO", false)
	require.NoError(t, err)

	assert.Equal(t, 1, hits, "second fetch must be served from cache")
}

func TestClient_CacheDisabled(t *testing.T) {
	t.Setenv("JBCTL_CACHE_DIR", t.TempDir())
	t.Setenv("JBCTL_CACHE", "0")

	var hits int
	srv := newFeedServer(t, &hits)
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	_, err := c.Fetch(context.Background(), "GO", false)
	require.NoError(t, err)
	_, err = c.Fetch(context.Background(), "GO", false)
	require.NoError(t, err)

	assert.Equal(t, 2, hits)
}

func TestClient_FetchErrorStatus(t *testing.T) {
	t.Setenv("JBCTL_CACHE_DIR", t.TempDir())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	_, err := c.Fetch(context.Background(), "GO", true)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
