// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// no-cloc
package driller

import (
	"testing"
)

func TestDriller(t *testing.T) {
	tests := []struct {
		name        string
		json        string
		path        string
		expectedStr string
		isNil       bool
		isArray     bool
	}{
		// Simple key tests
		{
			name:        "simple string key",
			json:        `{"version": "2024.1"}`,
			path:        "version",
			expectedStr: "2024.1",
		},
		{
			name:        "simple number key",
			json:        `{"size": 792723969}`,
			path:        "size",
			expectedStr: "792723969",
		},
		{
			name:        "simple boolean key",
			json:        `{"latest": true}`,
			path:        "latest",
			expectedStr: "true",
		},
		{
			name:  "simple null key",
			json:  `{"whatsnew": null}`,
			path:  "whatsnew",
			isNil: true,
		},
		// Nested object tests
		{
			name:        "nested single level",
			json:        `{"downloads": {"linux": {"link": "https://example/go.tar.gz"}}}`,
			path:        "downloads.linux.link",
			expectedStr: "https://example/go.tar.gz",
		},
		// Array access tests
		{
			name:        "single element array returns element",
			json:        `{"builds": ["241.100"]}`,
			path:        "builds",
			expectedStr: "241.100",
		},
		{
			name:        "single element array of objects drills through",
			json:        `{"GO": [{"version": "2024.1"}]}`,
			path:        "GO.version",
			expectedStr: "2024.1",
		},
		{
			name:    "multi element array returns array",
			json:    `{"builds": ["241.100", "233.90"]}`,
			path:    "builds",
			isArray: true,
		},
		{
			name:        "array with explicit index",
			json:        `{"GO": [{"build": "241.100"}, {"build": "233.90"}]}`,
			path:        "GO[1].build",
			expectedStr: "233.90",
		},
		{
			name:        "array with explicit index zero",
			json:        `{"GO": [{"build": "241.100"}, {"build": "233.90"}]}`,
			path:        "GO[0].build",
			expectedStr: "241.100",
		},
		// Key names with special characters
		{
			name:        "key with camel case",
			json:        `{"notesLink": "https://example/notes"}`,
			path:        "notesLink",
			expectedStr: "https://example/notes",
		},
		// Error cases
		{
			name:  "nonexistent key returns empty result",
			json:  `{"version": "2024.1"}`,
			path:  "build",
			isNil: true,
		},
		{
			name:  "invalid array index returns empty result",
			json:  `{"builds": ["a", "b"]}`,
			path:  "builds[10]",
			isNil: true,
		},
		{
			name:  "nested missing key returns empty result",
			json:  `{"downloads": {"linux": {"link": "x"}}}`,
			path:  "downloads.mac.link",
			isNil: true,
		},
		{
			name:  "empty object returns empty result for any key",
			json:  `{}`,
			path:  "any",
			isNil: true,
		},
		{
			name:  "empty array with index returns empty result",
			json:  `{"builds": []}`,
			path:  "builds[0]",
			isNil: true,
		},
		// Feed-shaped structures
		{
			name:        "release feed drill to checksum link",
			json:        `{"PCS": [{"downloads": {"linux": {"checksumLink": "https://example/pcs.sha256"}}}]}`,
			path:        "PCS.downloads.linux.checksumLink",
			expectedStr: "https://example/pcs.sha256",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Driller(tt.json, tt.path)

			if tt.isNil {
				if got.Value() != nil {
					t.Fatalf("expected nil result, got %v", got.Value())
				}
				return
			}

			if tt.isArray {
				if !got.IsArray() {
					t.Fatalf("expected array result, got %v", got.Value())
				}
				return
			}

			if got.String() != tt.expectedStr {
				t.Fatalf("expected %q, got %q", tt.expectedStr, got.String())
			}
		})
	}
}
