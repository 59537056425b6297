// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package artifact

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"
)

// Filename extracts the artifact filename from a download URL, ignoring any
// query string.
func Filename(rawurl string) (string, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return "", fmt.Errorf("failed to parse url %s: %w", rawurl, err)
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "", fmt.Errorf("url %s has no filename component", rawurl)
	}
	return name, nil
}

// Download streams the artifact at rawurl into destDir and returns the local
// path. Interactive terminals get a progress bar on stderr; CI runs stay
// quiet apart from debug logging.
func Download(ctx context.Context, rawurl, destDir string) (string, error) {
	filename, err := Filename(rawurl)
	if err != nil {
		return "", err
	}

	if destDir == "" {
		destDir = "."
	}
	outPath := filepath.Join(destDir, filename)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download of %s returned status %d", rawurl, resp.StatusCode)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer out.Close()

	size := resp.ContentLength
	if size > 0 {
		log.Debugf("downloading %s (%s)", rawurl, humanize.Bytes(uint64(size)))
	} else {
		log.Debugf("downloading %s (unknown size)", rawurl)
	}

	var written int64
	if size > 0 && term.IsTerminal(int(os.Stderr.Fd())) {
		written, err = copyWithProgress(out, resp.Body, size)
	} else {
		written, err = io.Copy(out, resp.Body)
	}
	if err != nil {
		return "", fmt.Errorf("failed to download %s: %w", rawurl, err)
	}

	log.Debugf("wrote %s (%s)", outPath, humanize.Bytes(uint64(written)))
	return outPath, nil
}

// Read fetches a small document (a checksum sidecar) and returns its body.
func Read(ctx context.Context, rawurl string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch of %s returned status %d", rawurl, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return body, nil
}
