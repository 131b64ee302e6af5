// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/vshell/vshell/internal/attrs"
	"github.com/vshell/vshell/internal/vendor"
)

const students = `{"items":[
  {"id":"1","name":"Aarnav Radhu","parent":"Vaibhav Radhu","classSection":"Play Group - A","admissionNo":"408766"},
  {"id":"2","name":"Vikkrant Gambhir","parent":"Gautam Gambhir","classSection":"Play Group - A","admissionNo":"4"},
  {"id":"3","name":"Viyom","classSection":"Play Group - B"}
]}`

// run executes SliceDiceSpit inside a real command so flags are parsed the
// way the CLI parses them.
func run(t *testing.T, raw string, attrSpec string, args ...string) string {
	t.Helper()

	a := attrs.AttrList{}
	require.NoError(t, a.Set(attrSpec))

	var out bytes.Buffer
	cmd := &cli.Command{
		Name: "items",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Value: "text"},
			&cli.StringFlag{Name: "filter"},
			&cli.StringFlag{Name: "sort"},
			&cli.BoolFlag{Name: "titles"},
			&cli.BoolFlag{Name: "color"},
			&cli.IntFlag{Name: "padding", Value: 2},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return SliceDiceSpit(*bytes.NewBufferString(raw), a, cmd, "items", &out, nil)
		},
	}
	require.NoError(t, cmd.Run(context.Background(), append([]string{"items"}, args...)))
	return out.String()
}

func TestSliceDiceSpit_Text(t *testing.T) {
	out := run(t, students, "id,name,classSection:class", "--titles", "--sort=-name")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "class")
	assert.Contains(t, lines[1], "Vikkrant Gambhir")
	assert.Contains(t, lines[3], "Aarnav Radhu")
}

func TestSliceDiceSpit_JSONKeepsAttrOrder(t *testing.T) {
	out := run(t, students, "name,id,!classSection", "--output=json", "--filter=classSection^Play Group - A", "--sort=id")
	assert.JSONEq(t, `[{"name":"Aarnav Radhu","id":"1"},{"name":"Vikkrant Gambhir","id":"2"}]`, out)
	assert.Less(t, strings.Index(out, `"name"`), strings.Index(out, `"id"`))
}

func TestSliceDiceSpit_YAMLTransforms(t *testing.T) {
	out := run(t, students, "id,name::U", "--output=yaml", "--filter=id=3")
	assert.Equal(t, "- id: \"3\"\n  name: VIYOM\n", out)
}

func TestSliceDiceSpit_Raw(t *testing.T) {
	out := run(t, students, "id", "--output=raw")
	assert.Equal(t, students, out)
}

func TestSliceDiceSpit_PostProcess(t *testing.T) {
	a := attrs.AttrList{}
	require.NoError(t, a.Set("id"))

	var seen int
	cmd := &cli.Command{
		Name:  "items",
		Flags: []cli.Flag{&cli.StringFlag{Name: "output", Value: "text"}},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return SliceDiceSpit(*bytes.NewBufferString(students), a, cmd, "items", &bytes.Buffer{},
				func(rows []map[string]any) error {
					seen = len(rows)
					return nil
				})
		},
	}
	require.NoError(t, cmd.Run(context.Background(), []string{"items"}))
	assert.Equal(t, 3, seen)
}

func TestSortDataset(t *testing.T) {
	rows := func() []map[string]any {
		return []map[string]any{
			{"name": "Vitamin C", "price": "320.00", "stock": 0.0},
			{"name": "amoxicillin", "price": "110", "stock": 80.0},
			{"name": "Paracetamol", "price": "25.50", "stock": 240.0},
		}
	}
	names := func(rs []map[string]any) []string {
		out := []string{}
		for _, r := range rs {
			out = append(out, r["name"].(string))
		}
		return out
	}

	tests := []struct {
		spec string
		want []string
	}{
		{"", []string{"Vitamin C", "amoxicillin", "Paracetamol"}},
		{"name", []string{"amoxicillin", "Paracetamol", "Vitamin C"}},
		{"!name", []string{"Paracetamol", "Vitamin C", "amoxicillin"}},
		{"-name", []string{"Vitamin C", "Paracetamol", "amoxicillin"}},
		{"price", []string{"Paracetamol", "amoxicillin", "Vitamin C"}},
		{"-stock", []string{"Paracetamol", "amoxicillin", "Vitamin C"}},
		{"missing,name", []string{"amoxicillin", "Paracetamol", "Vitamin C"}},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			rs := rows()
			SortDataset(rs, tt.spec)
			assert.Equal(t, tt.want, names(rs))
		})
	}
}

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "-"},
		{"", "-"},
		{"x", "x"},
		{7, "7"},
		{25.5, "25.5"},
		{240.0, "240"},
		{true, "true"},
		{false, "false"},
		{[]any{"a", 1.0}, `["a",1]`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InterfaceToString(tt.in, "-"), "%v", tt.in)
	}
}

func TestDocument(t *testing.T) {
	v := struct {
		Zeta  string         `json:"zeta"`
		Alpha map[string]int `json:"alpha"`
		List  []vendor.Tab   `json:"list"`
	}{
		Zeta:  "z",
		Alpha: map[string]int{"b": 2, "a": 1},
		List:  []vendor.Tab{{ID: "home", Label: "Home", Icon: "🏠", Screen: vendor.ScreenHome}},
	}

	var j bytes.Buffer
	require.NoError(t, Document(&j, "json", v))
	assert.JSONEq(t, `{"zeta":"z","alpha":{"a":1,"b":2},"list":[{"id":"home","label":"Home","icon":"🏠","screen":"home"}]}`, j.String())
	assert.Less(t, strings.Index(j.String(), "zeta"), strings.Index(j.String(), "alpha"))

	var y bytes.Buffer
	require.NoError(t, Document(&y, "yaml", v))
	var back yaml.MapSlice
	require.NoError(t, yaml.Unmarshal(y.Bytes(), &back))
	require.Len(t, back, 3)
	assert.Equal(t, "zeta", back[0].Key)
	assert.Equal(t, "list", back[2].Key)

	assert.Error(t, Document(&y, "toml", v))
}

func TestDocument_Scalars(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Document(&buf, "json", []string{"a", "b"}))
	assert.JSONEq(t, `["a","b"]`, buf.String())

	buf.Reset()
	require.NoError(t, Document(&buf, "yaml", "plain"))
	assert.Equal(t, "plain\n", buf.String())
}

func TestNewTag(t *testing.T) {
	assert.Equal(t, schemaTag{Name: "id"}, NewTag("", "id"))
	assert.Equal(t, schemaTag{Name: "price.amount", OmitEmpty: true}, NewTag("price", "amount,omitempty"))
	assert.Equal(t, schemaTag{}, NewTag("", "-"))
	assert.Equal(t, schemaTag{}, NewTag("", ""))
}

func TestDumpSchema(t *testing.T) {
	var buf bytes.Buffer
	DumpSchema("pharmacy", reflect.TypeOf(vendor.PharmacyItem{}), &buf)
	out := buf.String()

	assert.Contains(t, out, "Attributes of pharmacy items")
	for _, want := range []string{"category", "id", "manufacturer", "name", "prescription", "price", "stock"} {
		assert.Contains(t, out, "\n"+want)
	}
	assert.Contains(t, out, "price                decimal")
	assert.Contains(t, out, "category             string (optional)")
	assert.Less(t, strings.Index(out, "\ncategory"), strings.Index(out, "\nstock"))
}
