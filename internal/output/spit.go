// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"reflect"
	"strconv"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/vshell/vshell/internal/attrs"
	"github.com/vshell/vshell/internal/config"
	"github.com/vshell/vshell/internal/filters"
)

// Formats lists the values accepted by --output.
var Formats = []string{"text", "json", "yaml", "raw"}

// InterfaceToString renders a row value for a table cell. Nil and zero values
// render as emptyValue, "" by default.
func InterfaceToString(value any, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		if b, ok := value.(bool); ok && !b {
			return "false"
		}
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
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

// SliceDiceSpit filters, transforms, sorts and renders the rows found at
// parent in raw, per the command's --filter, --sort and --output flags. An
// empty parent means raw is the row array itself. postProcess, when given,
// runs on the rows before text rendering.
func SliceDiceSpit(raw bytes.Buffer,
	attrs attrs.AttrList,
	cmd *cli.Command,
	parent string,
	w io.Writer,
	postProcess func([]map[string]any) error) error {

	if w == nil {
		w = os.Stdout
	}

	format := cmd.String("output")
	if format == "raw" {
		_, err := w.Write(raw.Bytes())
		return err
	}

	dataset := gjson.Parse(raw.String())
	if parent != "" {
		dataset = dataset.Get(parent)
	}

	rows := filters.FilterDataset(dataset, attrs, cmd.String("filter"))

	for _, row := range rows {
		for _, attr := range attrs {
			if attr.TransformSpec != "" {
				row[attr.OutputKey] = attr.Transform(row[attr.OutputKey])
			}
		}
	}

	SortDataset(rows, cmd.String("sort"))

	switch format {
	case "json", "yaml":
		return Document(w, format, projectRows(rows, attrs))
	default:
		if postProcess != nil {
			if err := postProcess(rows); err != nil {
				return fmt.Errorf("post-processing failed: %w", err)
			}
		}
		TableWriter(rows, attrs, cmd, w)
		return nil
	}
}

// projectRows returns rows as ordered documents holding only the included
// attributes, in attribute order.
func projectRows(rows []map[string]any, attrs attrs.AttrList) []yaml.MapSlice {
	included := attrs.Included()
	out := make([]yaml.MapSlice, 0, len(rows))
	for _, row := range rows {
		doc := make(yaml.MapSlice, 0, len(included))
		for _, attr := range included {
			doc = append(doc, yaml.MapItem{Key: attr.OutputKey, Value: row[attr.OutputKey]})
		}
		out = append(out, doc)
	}
	return out
}

// Document writes v as json or yaml. Structs are converted through their
// JSON form, so yaml output uses the same key names and order as json.
func Document(w io.Writer, format string, v any) error {
	if w == nil {
		w = os.Stdout
	}

	doc, err := ordered(v)
	if err != nil {
		return err
	}

	var out []byte
	switch format {
	case "json":
		out, err = json.MarshalIndent(doc, "", "  ")
		out = append(out, '\n')
	case "yaml":
		out, err = yaml.Marshal(doc)
	default:
		return fmt.Errorf("unsupported document format %q", format)
	}
	if err != nil {
		log.WithError(err).Errorf("%s marshal failed", format)
		return err
	}
	_, err = w.Write(out)
	return err
}

// ordered turns v into values that keep JSON key order under both
// encoders. yaml.v2 decodes JSON into nested yaml.MapSlice values when asked
// for a MapSlice, which is what preserves the order.
func ordered(v any) (any, error) {
	if rows, ok := v.([]yaml.MapSlice); ok {
		return orderedSlice(rows), nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	parsed := gjson.ParseBytes(raw)
	switch {
	case parsed.IsObject():
		var ms yaml.MapSlice
		if err := yaml.Unmarshal(raw, &ms); err != nil {
			return nil, err
		}
		return jsonMapSlice(ms), nil
	case parsed.IsArray() && allObjects(parsed):
		var rows []yaml.MapSlice
		if err := yaml.Unmarshal(raw, &rows); err != nil {
			return nil, err
		}
		return orderedSlice(rows), nil
	default:
		var doc any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		return jsonValue(doc), nil
	}
}

func allObjects(arr gjson.Result) bool {
	for _, el := range arr.Array() {
		if !el.IsObject() {
			return false
		}
	}
	return true
}

func orderedSlice(rows []yaml.MapSlice) []jsonMapSlice {
	out := make([]jsonMapSlice, len(rows))
	for i, r := range rows {
		out[i] = jsonMapSlice(r)
	}
	return out
}

// jsonMapSlice is a yaml.MapSlice that also marshals to a JSON object with
// its keys in order.
type jsonMapSlice yaml.MapSlice

// MarshalYAML implements yaml.Marshaler.
func (m jsonMapSlice) MarshalYAML() (any, error) {
	out := make(yaml.MapSlice, len(m))
	for i, item := range m {
		out[i] = yaml.MapItem{Key: item.Key, Value: jsonValue(item.Value)}
	}
	return out, nil
}

// MarshalJSON implements json.Marshaler.
func (m jsonMapSlice) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, item := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(fmt.Sprint(item.Key))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(jsonValue(item.Value))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// jsonValue wraps nested maps decoded by yaml.v2 so they keep their order and
// are accepted by encoding/json.
func jsonValue(v any) any {
	switch val := v.(type) {
	case yaml.MapSlice:
		return jsonMapSlice(val)
	case map[any]any:
		ms := make(yaml.MapSlice, 0, len(val))
		for k, item := range val {
			ms = append(ms, yaml.MapItem{Key: fmt.Sprint(k), Value: item})
		}
		return jsonMapSlice(ms)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = jsonValue(item)
		}
		return out
	default:
		return v
	}
}

// TableWriter renders rows as a borderless table honoring --color, --titles
// and --padding. Header and footer lines come from cmd.Metadata.
func TableWriter(
	resultSet []map[string]any,
	attrs attrs.AttrList,
	cmd *cli.Command,
	w io.Writer) {

	if w == nil {
		w = os.Stdout
	}
	if len(resultSet) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if cmd.Bool("color") {
		headerColor, evenColor, oddColor := getColors("colors")
		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	included := attrs.Included()
	rows := make([][]string, 0, len(resultSet))
	for _, result := range resultSet {
		row := make([]string, 0, len(included))
		for _, attr := range included {
			row = append(row, InterfaceToString(result[attr.OutputKey], "-"))
		}
		rows = append(rows, row)
	}

	if header, ok := cmd.Metadata["header"].(string); ok {
		fmt.Fprintln(w, headerStyle.Render(header))
	}

	pad := int(cmd.Int("padding"))
	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
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
		headers := make([]string, 0, len(included))
		for _, attr := range included {
			headers = append(headers, attr.OutputKey)
		}
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)

	if footer, ok := cmd.Metadata["footer"].(string); ok {
		fmt.Fprintln(w, headerStyle.Render(footer))
	}
}

// getColors returns the title, even and odd row colors. Configured values
// under key win; otherwise a default suited to the terminal background.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		if colorCfg, err := config.GetString(key); err == nil {
			return lipgloss.Color(colorCfg)
		}
		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#1565c0", "#64b5f6")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#00796b", "#4db6ac")
	return
}
