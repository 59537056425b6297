// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package releases

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/apex/log"

	"github.com/staranto/jbctlgo/internal/cacheutil"
	"github.com/staranto/jbctlgo/internal/config"
)

// DefaultBaseURL is the JetBrains release metadata endpoint.
const DefaultBaseURL = "https://data.services.jetbrains.com/products/releases"

// Client fetches release feed documents, with an on-disk cache in front of
// the endpoint so repeated CI invocations don't hammer it.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a Client against the default endpoint. JBCTL_FEED_URL
// overrides the endpoint.
func NewClient() *Client {
	base := DefaultBaseURL
	if v := os.Getenv("JBCTL_FEED_URL"); v != "" {
		base = v
	}
	return &Client{
		BaseURL: base,
		HTTP:    &http.Client{},
	}
}

// FetchDocument returns the raw feed document for the product code.  The
// cache is keyed on the full request URL and organized by product code.
func (c *Client) FetchDocument(ctx context.Context, code string, latest bool) (bytes.Buffer, error) {
	code = NormalizeCode(code)

	params := url.Values{}
	params.Set("code", code)
	params.Set("type", "release")
	if latest {
		params.Set("latest", "true")
	} else {
		params.Set("latest", "false")
	}
	reqURL := c.BaseURL + "?" + params.Encode()

	// Best-effort age-based purge before any read.
	cleanHours, _ := config.GetInt("cache.clean", 0)
	if err := cacheutil.Purge(cleanHours); err != nil {
		log.Warnf("failed to purge cache: %v", err)
	}

	subdirs := []string{"releases", code}
	if entry, ok := cacheutil.Read(subdirs, reqURL); ok {
		log.Debugf("cache hit: %s", entry.Path)
		return *bytes.NewBuffer(entry.Data), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return bytes.Buffer{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return bytes.Buffer{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return bytes.Buffer{}, fmt.Errorf("release feed returned status %d for %s", resp.StatusCode, code)
	}

	var doc bytes.Buffer
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return bytes.Buffer{}, fmt.Errorf("failed to read response: %w", err)
	}

	if err := cacheutil.Write(subdirs, reqURL, doc.Bytes()); err != nil {
		log.Warnf("failed to write feed to cache: %v", err)
	}

	return doc, nil
}

// Fetch returns the decoded release list for the product code.
func (c *Client) Fetch(ctx context.Context, code string, latest bool) ([]Release, error) {
	doc, err := c.FetchDocument(ctx, code, latest)
	if err != nil {
		return nil, err
	}
	return ParseFeed(doc.Bytes(), code)
}
