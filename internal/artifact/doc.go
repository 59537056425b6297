// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package artifact downloads installer artifacts and validates them against
// their sha256 sidecar files. Destinations may be local directories or
// s3:// URIs.
package artifact
