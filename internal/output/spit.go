// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/staranto/jbctlgo/internal/attrs"
	"github.com/staranto/jbctlgo/internal/config"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"
)

// Tag represents a discovered struct field tag used when emitting schema
// information (--schema flag).
type Tag struct {
	Name string
}

// NewTag constructs a Tag from a raw json struct tag value and an optional
// holder prefix used to build hierarchical attribute names.
func NewTag(h string, s string) Tag {
	tag := Tag{}

	parts := strings.Split(s, ",")
	if len(parts) == 0 || parts[0] == "" || parts[0] == "-" {
		return tag
	}

	name := parts[0]
	if h != "" {
		name = fmt.Sprintf("%s.%s", h, name)
	}
	tag.Name = name

	return tag
}

// Print renders the tag into its display form.
func (t Tag) Print() (out string) {
	return t.Name
}

// DumpSchema prints a sorted list of attribute tags for the provided type.
func DumpSchema(prefix string, typ reflect.Type) {
	tags := DumpSchemaWalker(prefix, typ, 0)
	if len(tags) == 0 {
		log.Debugf("No tags found for type: %s", typ.Name())
		return
	}

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})

	fmt.Println("Schema for", typ.Name(), "--")

	for _, tag := range tags {
		fmt.Println(tag.Print())
	}

	fmt.Println("")
	fmt.Println(
		`Release attributes that are directly available to the --attrs flag.
For the complete feed document use --output=raw.`)
}

const maxSchemaDepth = 2

// DumpSchemaWalker recursively walks a struct type discovering json tags.
func DumpSchemaWalker(holder string, typ reflect.Type, depth int) []Tag {
	tags := make([]Tag, 0)

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)

		log.Debugf("field: %s, type: %s in %s", field.Name, field.Type, field.PkgPath)

		tagValue, ok := field.Tag.Lookup("json")
		if !ok {
			continue
		}

		tag := NewTag(holder, tagValue)
		if tag.Name == "" {
			continue
		}

		tags = append(tags, tag)

		if depth < maxSchemaDepth {
			ft := field.Type
			if ft.Kind() == reflect.Map {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				tags = append(tags, DumpSchemaWalker(tag.Name, ft, depth+1)...)
			}
		}
	}

	return tags
}

// SliceDiceSpit orchestrates filtering, transforming, sorting and rendering
// of a dataset according to command flags and attribute specifications.
func SliceDiceSpit(raw bytes.Buffer,
	attrs attrs.AttrList,
	cmd *cli.Command,
	parent string,
	w io.Writer) {

	if w == nil {
		w = os.Stdout
	}

	// If raw, just dump it and go home.
	output := cmd.String("output")
	if output == "raw" {
		_, _ = w.Write(raw.Bytes())
		return
	}

	var fullDataset gjson.Result
	// Just keep the requested parent object from the document and throw away
	// everything else. The release feed nests the result list under the
	// product code, so parent is usually that code.
	if parent != "" {
		fullDataset = gjson.Parse(raw.String()).Get(parent)
	} else {
		fullDataset = gjson.Parse(raw.String())
	}

	filter := cmd.String("filter")

	// Filter out the rows we don't want. Do it here so that the following
	// processes are slightly more efficient since they'll be working on a smaller
	// dataset.
	filteredDataset := FilterDataset(fullDataset, attrs, filter)

	// THINK This is inefficient. We're forcing a time transformation to occur
	// for all attributes, even though many will not be a timestamp.
	if cmd.Bool("local") {
		for a := range attrs {
			attrs[a].TransformSpec += "t"
		}
	}

	// Transform each value in each row.
	for _, row := range filteredDataset {
		for _, attr := range attrs {
			if attr.TransformSpec != "" {
				row[attr.OutputKey] = attr.Transform(row[attr.OutputKey])
			}
		}
	}

	spec := cmd.String("sort")
	SortDataset(filteredDataset, spec)

	switch output {
	case "json":
		// Marshal the filtered dataset into a JSON document.
		// TODO Figure out how to maintain key order in the JSON document.
		jsonOutput, err := json.Marshal(filteredDataset)
		if err != nil {
			slog.Error("SliceDiceSpit()", "err", err)
		}
		_, _ = w.Write(jsonOutput)
	case "yaml":
		yamlOutput, err := yaml.Marshal(filteredDataset)
		if err != nil {
			slog.Error("SliceDiceSpit()", "err", err)
		}
		_, _ = w.Write(yamlOutput)
	default:
		TableWriter(filteredDataset, attrs, cmd, w)
	}
}

// TableWriter renders the result set in a tabular form honoring color,
// titles and padding options.
func TableWriter(
	resultSet []map[string]interface{},
	attrs attrs.AttrList,
	cmd *cli.Command,
	w io.Writer) {

	if len(resultSet) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if cmd.Bool("color") {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	var rows [][]string
	for _, result := range resultSet {
		row := make([]string, 0, len(result))
		for _, attr := range attrs {
			if !attr.Include {
				continue
			}
			row = append(row, InterfaceToString(result[attr.OutputKey], "-"))
		}
		rows = append(rows, row)
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {

			pad, _ := config.GetInt("padding", 0)
			log.Debugf("padding: %v", pad)

			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if cmd.Bool("titles") {
		var headers []string
		for _, attr := range attrs {
			if attr.Include {
				headers = append(headers, attr.OutputKey)
			}
		}

		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		// Our current use cases have no use for an actual float, so we're just
		// going to return an integer.
		return fmt.Sprintf("%.0f", value)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}
