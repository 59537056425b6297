// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// indexRegex rewrites bracketed array indexes (tags[0]) into gjson's dotted
// form (tags.0).
var indexRegex = regexp.MustCompile(`\[(\d+)\]`)

// Driller returns the value at the dotted path within the raw JSON document.
// It is more forgiving than a plain gjson.Get: a single-element array found
// along the path is silently drilled through, so "downloads.linux.link" works
// whether "downloads" is an object or a one-element wrapper array. A
// multi-element array at the end of the path is returned as is. Missing keys
// and out-of-range indexes yield an empty (Null) result.
func Driller(raw string, path string) gjson.Result {
	path = indexRegex.ReplaceAllString(path, ".$1")

	current := gjson.Parse(raw)
	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			continue
		}

		// Drill through single-element arrays before applying the next key.
		if current.IsArray() {
			arr := current.Array()
			if len(arr) == 1 {
				current = arr[0]
			}
		}

		current = current.Get(segment)
		if !current.Exists() {
			return gjson.Result{}
		}
	}

	// A trailing single-element array unwraps to its element.
	if current.IsArray() {
		if arr := current.Array(); len(arr) == 1 {
			return arr[0]
		}
	}

	return current
}
