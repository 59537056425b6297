// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"github.com/staranto/jbctlgo/internal/attrs"
)

func TestSortDataset(t *testing.T) {
	testData := []map[string]interface{}{
		{"version": "2024.1", "size": 3.0, "build": "241.100"},
		{"version": "2023.2", "size": 1.0, "build": "232.80"},
		{"version": "2023.3", "size": 2.0, "build": "233.90"},
	}

	tests := []struct {
		name      string
		spec      string
		wantOrder []string
	}{
		{
			name:      "ascending by version",
			spec:      "version",
			wantOrder: []string{"2023.2", "2023.3", "2024.1"},
		},
		{
			name:      "descending by version",
			spec:      "-version",
			wantOrder: []string{"2024.1", "2023.3", "2023.2"},
		},
		{
			name:      "ascending by size",
			spec:      "size",
			wantOrder: []string{"2023.2", "2023.3", "2024.1"},
		},
		{
			name:      "descending by size",
			spec:      "-size",
			wantOrder: []string{"2024.1", "2023.3", "2023.2"},
		},
		{
			name:      "case sensitive",
			spec:      "!version",
			wantOrder: []string{"2023.2", "2023.3", "2024.1"},
		},
		{
			name:      "multiple fields",
			spec:      "size,version",
			wantOrder: []string{"2023.2", "2023.3", "2024.1"},
		},
		{
			name:      "empty spec",
			spec:      "",
			wantOrder: []string{"2024.1", "2023.2", "2023.3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]map[string]interface{}, len(testData))
			copy(data, testData)
			SortDataset(data, tt.spec)
			for i, expectedVersion := range tt.wantOrder {
				assert.Equal(t, expectedVersion, data[i]["version"], "at index %d", i)
			}
		})
	}
}

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		emptyVal string
		want     string
	}{
		{
			name:  "string",
			value: "hello",
			want:  "hello",
		},
		{
			name:  "int",
			value: 42,
			want:  "42",
		},
		{
			name:  "float64",
			value: 42.5,
			want:  "42",
		},
		{
			name:  "float64 with decimal",
			value: 42.7,
			want:  "43",
		},
		{
			name:  "bool true",
			value: true,
			want:  "true",
		},
		{
			name:  "bool false is zero value",
			value: false,
			want:  "",
		},
		{
			name:  "nil default",
			value: nil,
			want:  "",
		},
		{
			name:     "nil custom",
			value:    nil,
			emptyVal: "-",
			want:     "-",
		},
		{
			name:  "slice",
			value: []string{"a", "b"},
			want:  `["a","b"]`,
		},
		{
			name:  "map",
			value: map[string]int{"x": 1},
			want:  `{"x":1}`,
		},
		{
			name:  "zero value int",
			value: 0,
			want:  "",
		},
		{
			name:     "zero value with custom empty",
			value:    0,
			emptyVal: "-",
			want:     "-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if tt.emptyVal != "" {
				got = InterfaceToString(tt.value, tt.emptyVal)
			} else {
				got = InterfaceToString(tt.value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildFilters(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []Filter
	}{
		{
			name: "empty spec",
			spec: "",
			want: nil,
		},
		{
			name: "equality",
			spec: "version=2024.1",
			want: []Filter{{Key: "version", Operand: "=", Target: "2024.1"}},
		},
		{
			name: "negated equality",
			spec: "type!=eap",
			want: []Filter{{Key: "type", Negate: true, Operand: "=", Target: "eap"}},
		},
		{
			name: "prefix",
			spec: "build^241",
			want: []Filter{{Key: "build", Operand: "^", Target: "241"}},
		},
		{
			name: "multiple filters",
			spec: "version^2024,type=release",
			want: []Filter{
				{Key: "version", Operand: "^", Target: "2024"},
				{Key: "type", Operand: "=", Target: "release"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildFilters(tt.spec)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterDataset(t *testing.T) {
	feed := `[
		{"version": "2024.1", "build": "241.100", "type": "release"},
		{"version": "2023.3", "build": "233.90", "type": "release"},
		{"version": "2024.2", "build": "242.10", "type": "eap"}
	]`

	var al attrs.AttrList
	//nolint:errcheck
	{
		al.Set("version")
		al.Set("build")
		al.Set("type")
	}

	tests := []struct {
		name         string
		filter       string
		wantVersions []string
	}{
		{
			name:         "no filter keeps everything",
			filter:       "",
			wantVersions: []string{"2024.1", "2023.3", "2024.2"},
		},
		{
			name:         "equality filter",
			filter:       "type=release",
			wantVersions: []string{"2024.1", "2023.3"},
		},
		{
			name:         "prefix filter",
			filter:       "version^2024",
			wantVersions: []string{"2024.1", "2024.2"},
		},
		{
			name:         "combined filters",
			filter:       "version^2024,type=release",
			wantVersions: []string{"2024.1"},
		},
		{
			name:         "negated filter",
			filter:       "type!=eap",
			wantVersions: []string{"2024.1", "2023.3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterDataset(gjson.Parse(feed), al, tt.filter)
			versions := make([]string, 0, len(got))
			for _, row := range got {
				versions = append(versions, InterfaceToString(row["version"]))
			}
			assert.Equal(t, tt.wantVersions, versions)
		})
	}
}
