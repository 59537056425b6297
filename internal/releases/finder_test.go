// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package releases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var finderFeed = []Release{
	{Version: "2024.1", Build: "241.14494.238"},
	{Version: "2023.3.2", Build: "233.13135.104"},
	{Version: "2023.3.1", Build: "233.13135.79"},
}

func TestFind_LatestWhenUnspecified(t *testing.T) {
	r, err := Find(finderFeed, "", "")
	require.NoError(t, err)
	assert.Equal(t, "2024.1", r.Version)
}

func TestFind_ByVersion(t *testing.T) {
	r, err := Find(finderFeed, "2023.3.2", "")
	require.NoError(t, err)
	assert.Equal(t, "233.13135.104", r.Build)
}

func TestFind_ByBuild(t *testing.T) {
	r, err := Find(finderFeed, "", "233.13135.79")
	require.NoError(t, err)
	assert.Equal(t, "2023.3.1", r.Version)
}

// A version request always wins; the build is ignored even when only the
// build would have matched.
func TestFind_VersionWinsOverBuild(t *testing.T) {
	r, err := Find(finderFeed, "2024.1", "233.13135.104")
	require.NoError(t, err)
	assert.Equal(t, "2024.1", r.Version)
	assert.Equal(t, "241.14494.238", r.Build)

	// The build matches an entry, but the (unmatchable) version still wins
	// and forces the no-match error.
	_, err = Find(finderFeed, "1999.9", "233.13135.104")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestFind_NoMatch(t *testing.T) {
	_, err := Find(finderFeed, "2020.1", "")
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = Find(finderFeed, "", "999.1")
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = Find(nil, "", "")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestSince(t *testing.T) {
	got := Since(finderFeed, "2023.3.2")
	require.Len(t, got, 2)
	assert.Equal(t, "2024.1", got[0].Version)
	assert.Equal(t, "2023.3.2", got[1].Version)
}

func TestSince_EmptyFloorKeepsAll(t *testing.T) {
	got := Since(finderFeed, "")
	assert.Len(t, got, len(finderFeed))
}

func TestSince_UnparseableFloorKeepsAll(t *testing.T) {
	got := Since(finderFeed, "not-a-version")
	assert.Len(t, got, len(finderFeed))
}
