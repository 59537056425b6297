// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"sort"
	"strings"
)

// sortKey is a single parsed --sort field. A leading '-' reverses the order
// and a leading '!' makes the comparison case-sensitive.
type sortKey struct {
	key           string
	descending    bool
	caseSensitive bool
}

// SortDataset sorts the result set in place per the comma-separated spec.
// An empty spec leaves the dataset untouched.
func SortDataset(dataset []map[string]interface{}, spec string) {
	if spec == "" {
		return
	}

	//nolint:prealloc
	var keys []sortKey
	for _, field := range strings.Split(spec, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		var k sortKey
		for {
			if strings.HasPrefix(field, "-") {
				k.descending = true
				field = field[1:]
				continue
			}
			if strings.HasPrefix(field, "!") {
				k.caseSensitive = true
				field = field[1:]
				continue
			}
			break
		}
		k.key = field
		keys = append(keys, k)
	}

	if len(keys) == 0 {
		return
	}

	sort.SliceStable(dataset, func(i, j int) bool {
		for _, k := range keys {
			cmp := compareValues(dataset[i][k.key], dataset[j][k.key], k.caseSensitive)
			if cmp == 0 {
				continue
			}
			if k.descending {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

// compareValues orders two row values. Numbers compare numerically, anything
// else through its string form.
func compareValues(a, b interface{}, caseSensitive bool) int {
	af, aok := a.(float64)
	bf, bok := b.(float64)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}

	as := InterfaceToString(a)
	bs := InterfaceToString(b)
	if !caseSensitive {
		as = strings.ToLower(as)
		bs = strings.ToLower(bs)
	}

	return strings.Compare(as, bs)
}
