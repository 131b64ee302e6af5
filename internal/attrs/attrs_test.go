// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package attrs

import (
	"embed"
	"testing"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// testSetCase represents a single test case for TestAttrList_Set.
type testSetCase struct {
	Name      string `yaml:"name"`
	Initial   []Attr `yaml:"initial"`
	Value     string `yaml:"value"`
	WantLen   int    `yaml:"wantLen"`
	WantAttrs []Attr `yaml:"wantAttrs"`
	WantErr   bool   `yaml:"wantErr"`
}

// testTransformCase represents a single test case for TestAttr_Transform.
type testTransformCase struct {
	Name          string `yaml:"name"`
	TransformSpec string `yaml:"transformSpec"`
	Input         any    `yaml:"input"`
	Want          any    `yaml:"want"`
}

func loadTestData(filename string, v any) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

// asJSONNumber mimics gjson, which hands numbers over as float64.
func asJSONNumber(v any) any {
	if i, ok := v.(int); ok {
		return float64(i)
	}
	return v
}

func TestAttrList_Set(t *testing.T) {
	var tests []testSetCase
	require.NoError(t, loadTestData("set_cases.yaml", &tests))
	require.NotEmpty(t, tests)

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			a := AttrList(tt.Initial)
			err := a.Set(tt.Value)
			if tt.WantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, a, tt.WantLen)
			if tt.WantAttrs != nil {
				assert.Equal(t, AttrList(tt.WantAttrs), a)
			}
		})
	}
}

func TestAttr_Transform(t *testing.T) {
	var tests []testTransformCase
	require.NoError(t, loadTestData("transform_cases.yaml", &tests))
	require.NotEmpty(t, tests)

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			a := Attr{Key: "k", TransformSpec: tt.TransformSpec}
			got := a.Transform(asJSONNumber(tt.Input))
			want := tt.Want
			if _, isString := got.(string); !isString {
				want = asJSONNumber(want)
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestAttr_TransformRelative(t *testing.T) {
	then := time.Now().Add(-72 * time.Hour)
	a := Attr{Key: "date", TransformSpec: "T"}
	assert.Equal(t, humanize.Time(then.UTC().Truncate(time.Second)),
		a.Transform(then.UTC().Format(time.RFC3339)))
}

func TestAttrList_SetGlobalTransformSpec(t *testing.T) {
	a := AttrList{}
	require.NoError(t, a.Set("*::U,name,classSection:class:l"))
	require.NoError(t, a.SetGlobalTransformSpec())

	assert.Equal(t, "U,", a[1].TransformSpec)
	assert.Equal(t, "U,l", a[2].TransformSpec)
	assert.Equal(t, "AARNAV", a[1].Transform("Aarnav"))
	assert.Equal(t, "play group - a", a[2].Transform("Play Group - A"))

	none := AttrList{{Key: "id", Include: true, OutputKey: "id"}}
	require.NoError(t, none.SetGlobalTransformSpec())
	assert.Equal(t, "", none[0].TransformSpec)
}

func TestAttrList_Included(t *testing.T) {
	a := AttrList{}
	require.NoError(t, a.Set("id,!stock,name"))
	inc := a.Included()
	require.Len(t, inc, 2)
	assert.Equal(t, "id", inc[0].OutputKey)
	assert.Equal(t, "name", inc[1].OutputKey)
}

func TestAttrList_String(t *testing.T) {
	a := AttrList{}
	require.NoError(t, a.Set("id,name:student:U"))
	assert.Equal(t, "id:id:,name:student:U", a.String())
}
