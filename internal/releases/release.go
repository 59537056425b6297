// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package releases

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Download is one platform entry of a release's downloads map.
type Download struct {
	Link         string `json:"link"`
	Size         int64  `json:"size"`
	ChecksumLink string `json:"checksumLink"`
}

// Release is a single entry of the release feed for a product. The feed
// carries more keys than these; anything not listed here is still reachable
// through --output=raw and the attrs/filter machinery, which work off the
// raw document.
type Release struct {
	Date         string              `json:"date"`
	Type         string              `json:"type"`
	Version      string              `json:"version"`
	MajorVersion string              `json:"majorVersion,omitempty"`
	Build        string              `json:"build"`
	WhatsNew     string              `json:"whatsnew,omitempty"`
	NotesLink    string              `json:"notesLink,omitempty"`
	Downloads    map[string]Download `json:"downloads,omitempty"`
}

// NormalizeCode upcases a product code the way the feed expects it
// (pcs -> PCS).
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ParseFeed decodes the release list for code out of a raw feed document.
// The feed nests the list under the product code:
//
//	{"PCS": [ {release}, {release}, ... ]}
func ParseFeed(data []byte, code string) ([]Release, error) {
	code = NormalizeCode(code)

	list := gjson.GetBytes(data, code)
	if !list.Exists() {
		return nil, fmt.Errorf("feed has no entry for product code %s", code)
	}

	var releases []Release
	if err := json.Unmarshal([]byte(list.Raw), &releases); err != nil {
		return nil, fmt.Errorf("failed to decode releases for %s: %w", code, err)
	}

	return releases, nil
}

// PlatformDownload returns the downloads entry for the platform, or an error
// when the release has no artifact for it.
func (r Release) PlatformDownload(platform string) (Download, error) {
	d, ok := r.Downloads[platform]
	if !ok || d.Link == "" {
		return Download{}, fmt.Errorf("release %s (%s) has no %s download", r.Version, r.Build, platform)
	}
	return d, nil
}
