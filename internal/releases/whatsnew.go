// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package releases

import (
	"fmt"
	"html/template"
	"strings"
)

// EmptyNotes is substituted for releases that shipped without a What's New
// blurb.
const EmptyNotes = "No information provided."

var whatsNewMainTmpl = template.Must(template.New("whatsnew").Parse(`<!DOCTYPE html><html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Product}} - What's New</title>
<style>
article header { margin-bottom: 1em; }
article header h2 { margin-bottom: 0; }
article:not(:last-child) { padding: 1em 0; border-bottom: 1px solid #ddd; }
article section { margin-bottom: 1em; }

.subtitle { font-size: 0.9em; color: #666; margin-top: 0; }
</style>
<body>
<h1>What's New in {{.Product}}</h1>
{{.Content}}
</body>
</html>
`))

var whatsNewEntryTmpl = template.Must(template.New("entry").Parse(`<article>
<header>
<h2 id="{{.Version}}">{{.Version}} ({{.Build}})</h2>
<span class="subtitle">{{.Date}}</span>
</header>
<section>
{{.WhatsNew}}
</section>
<footer>
<a href="{{.NotesLink}}">Release Notes</a></div>
</footer>
</article>
`))

// whatsNewEntry feeds the entry template. WhatsNew is feed-supplied HTML and
// is emitted unescaped.
type whatsNewEntry struct {
	Version   string
	Build     string
	Date      string
	WhatsNew  template.HTML
	NotesLink string
}

// GenerateWhatsNew renders the standalone What's New page for the product,
// one article per release, newest first (feed order).
func GenerateWhatsNew(name string, releases []Release) (string, error) {
	var entries strings.Builder

	for _, r := range releases {
		notes := strings.TrimSpace(r.WhatsNew)
		if notes == "" {
			notes = EmptyNotes
		}

		entry := whatsNewEntry{
			Version:   r.Version,
			Build:     r.Build,
			Date:      r.Date,
			WhatsNew:  template.HTML(notes), //nolint:gosec // feed-supplied HTML, rendered verbatim
			NotesLink: r.NotesLink,
		}
		if err := whatsNewEntryTmpl.Execute(&entries, entry); err != nil {
			return "", fmt.Errorf("failed to render release %s: %w", r.Version, err)
		}
	}

	var page strings.Builder
	err := whatsNewMainTmpl.Execute(&page, struct {
		Product string
		Content template.HTML
	}{
		Product: name,
		Content: template.HTML(entries.String()), //nolint:gosec // output of the entry template
	})
	if err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}

	return page.String(), nil
}
