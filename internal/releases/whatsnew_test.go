// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package releases

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWhatsNew(t *testing.T) {
	rels := []Release{
		{
			Version:   "2024.1",
			Build:     "241.14494.238",
			Date:      "2024-04-09",
			WhatsNew:  "<p>Faster indexing.</p>",
			NotesLink: "https://example/notes/2024.1",
		},
		{
			Version:   "2023.3.2",
			Build:     "233.13135.104",
			Date:      "2023-12-21",
			WhatsNew:  "   ",
			NotesLink: "https://example/notes/2023.3.2",
		},
	}

	page, err := GenerateWhatsNew("GoLand", rels)
	require.NoError(t, err)

	assert.Contains(t, page, "<title>GoLand - What's New</title>")
	assert.Contains(t, page, "<h1>What's New in GoLand</h1>")

	// One article per release, id'd by version.
	assert.Contains(t, page, `<h2 id="2024.1">2024.1 (241.14494.238)</h2>`)
	assert.Contains(t, page, `<h2 id="2023.3.2">2023.3.2 (233.13135.104)</h2>`)

	// Feed HTML passes through unescaped.
	assert.Contains(t, page, "<p>Faster indexing.</p>")

	// Blank notes get the placeholder.
	assert.Contains(t, page, EmptyNotes)

	assert.Contains(t, page, `<a href="https://example/notes/2024.1">Release Notes</a>`)

	// Newest first, matching feed order.
	assert.Less(t,
		strings.Index(page, `id="2024.1"`),
		strings.Index(page, `id="2023.3.2"`))
}

func TestGenerateWhatsNew_Empty(t *testing.T) {
	page, err := GenerateWhatsNew("PyCharm", nil)
	require.NoError(t, err)
	assert.Contains(t, page, "<h1>What's New in PyCharm</h1>")
	assert.NotContains(t, page, "<article>")
}
