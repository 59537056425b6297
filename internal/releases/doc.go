// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package releases talks to the JetBrains product release feed. It fetches
// and caches the feed document, decodes release entries, and selects the
// entry matching a version or build request.
package releases
