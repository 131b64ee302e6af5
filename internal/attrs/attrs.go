// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package attrs

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/vshell/vshell/internal/log"
)

// Attr is one column of a result set: where its value comes from in a row,
// what it is called in output and how it is transformed.
type Attr struct {
	// Key is the dot path of the value inside a row.
	Key string `yaml:"key" json:"Key"`
	// Include is false for attributes used only to filter or sort.
	Include bool `yaml:"include" json:"Include"`
	// OutputKey names the value in json/yaml output and titles the column
	// in text output.
	OutputKey string `yaml:"outputKey" json:"OutputKey"`
	// TransformSpec is a string of transform letters and an optional width.
	TransformSpec string `yaml:"transformSpec" json:"TransformSpec"`
}

// lengthRegex finds width specs such as 12 or -12 in a transform spec.
var lengthRegex = regexp.MustCompile(`-?\d+`)

// dateLayouts are the timestamp shapes the t and T transforms understand.
var dateLayouts = []string{time.RFC3339, time.DateOnly}

// Transform applies the transform spec to value:
//
//	l, u  lower or upper case; the last one in the spec wins
//	t     timestamp in local time
//	T     timestamp relative to now ("3 days ago")
//	c     thousands separators on whole numbers
//	n     truncate to n characters; -n elides the middle instead
//
// Values the spec cannot apply to are returned unchanged.
func (a *Attr) Transform(value any) any {
	spec := a.TransformSpec
	if spec == "" {
		return value
	}

	if n, ok := value.(float64); ok {
		if strings.Contains(spec, "c") && n == float64(int64(n)) {
			return humanize.Comma(int64(n))
		}
		return value
	}

	s, ok := value.(string)
	if !ok {
		log.Tracef("transform skipped: key=%s type=%T", a.Key, value)
		return value
	}

	if strings.ContainsAny(spec, "tT") {
		s = transformTime(s, strings.Contains(spec, "T"))
	}

	// A global spec is prepended, so the attribute's own letters come last
	// and take precedence.
	lastL := strings.LastIndexAny(spec, "lL")
	lastU := strings.LastIndexAny(spec, "uU")
	switch {
	case lastL > lastU:
		s = strings.ToLower(s)
	case lastU > lastL:
		s = strings.ToUpper(s)
	}

	if widths := lengthRegex.FindAllString(spec, -1); len(widths) > 0 {
		width, _ := strconv.Atoi(widths[len(widths)-1])
		s = truncate(s, width)
	}

	log.Tracef("transformed: key=%s spec=%s result=%s", a.Key, spec, s)
	return s
}

func transformTime(s string, relative bool) string {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if relative {
			return humanize.Time(t)
		}
		if layout == time.DateOnly {
			return t.Format("Mon, 02 Jan 2006")
		}
		return t.Local().Format("2006-01-02T15:04:05MST")
	}
	return s
}

// truncate shortens s to width runes. A negative width keeps both ends and
// joins them with "..".
func truncate(s string, width int) string {
	runes := []rune(s)
	abs := width
	if abs < 0 {
		abs = -abs
	}
	if len(runes) <= abs {
		return s
	}
	if width >= 0 {
		return string(runes[:abs])
	}
	keep := abs/2 - 1
	if keep < 1 {
		return string(runes[:abs])
	}
	return string(runes[:keep]) + ".." + string(runes[len(runes)-keep:])
}

// AttrList is the ordered set of attributes of a result set.
type AttrList []Attr

// Set parses a comma separated list of key[:outputKey[:transform]] specs and
// merges it into the list. A leading ! keeps the attribute out of the
// output. The key * carries a transform applied to every attribute. When
// outputKey is omitted it defaults to the last segment of key.
func (a *AttrList) Set(value string) error {
	if value == "" || value == "*" {
		return nil
	}

	for _, spec := range strings.Split(value, ",") {
		attr, err := parseSpec(spec)
		if err != nil {
			return err
		}

		if i := a.index(attr.Key); i >= 0 {
			(*a)[i].Include = attr.Include
			(*a)[i].OutputKey = attr.OutputKey
			(*a)[i].TransformSpec = attr.TransformSpec
			log.Tracef("attr updated: key=%s", attr.Key)
			continue
		}

		*a = append(*a, attr)
		log.Tracef("attr added: key=%s output=%s", attr.Key, attr.OutputKey)
	}
	return nil
}

func parseSpec(spec string) (Attr, error) {
	fields := strings.Split(spec, ":")
	if len(fields) > 3 {
		return Attr{}, fmt.Errorf("invalid attribute spec %q", spec)
	}

	attr := Attr{Include: true, Key: strings.TrimSpace(fields[0])}
	if strings.HasPrefix(attr.Key, "!") {
		attr.Include = false
		attr.Key = attr.Key[1:]
	}
	if attr.Key == "" {
		return Attr{}, fmt.Errorf("invalid attribute spec %q: empty key", spec)
	}
	if attr.Key == "*" {
		attr.Include = false
	}

	segments := strings.Split(attr.Key, ".")
	attr.OutputKey = segments[len(segments)-1]
	if len(fields) > 1 && strings.TrimSpace(fields[1]) != "" {
		attr.OutputKey = strings.TrimSpace(fields[1])
	}
	if len(fields) > 2 {
		attr.TransformSpec = strings.TrimSpace(fields[2])
	}
	return attr, nil
}

// index returns the position of the attribute addressed by key, matching
// either its Key or its OutputKey, or -1.
func (a AttrList) index(key string) int {
	for i := range a {
		if a[i].Key == key || a[i].OutputKey == key {
			return i
		}
	}
	return -1
}

// SetGlobalTransformSpec prepends the transform of the * attribute, if any,
// to every attribute's own spec.
func (a *AttrList) SetGlobalTransformSpec() error {
	i := a.index("*")
	if i < 0 || (*a)[i].TransformSpec == "" {
		return nil
	}
	global := (*a)[i].TransformSpec
	log.Debugf("global transform: spec=%s", global)

	for j := range *a {
		(*a)[j].TransformSpec = global + "," + (*a)[j].TransformSpec
	}
	return nil
}

// Included returns the attributes that appear in output.
func (a AttrList) Included() AttrList {
	out := make(AttrList, 0, len(a))
	for _, attr := range a {
		if attr.Include {
			out = append(out, attr)
		}
	}
	return out
}

// String renders the list in --attrs form.
func (a *AttrList) String() string {
	specs := make([]string, 0, len(*a))
	for _, attr := range *a {
		specs = append(specs, fmt.Sprintf("%s:%s:%s", attr.Key, attr.OutputKey, attr.TransformSpec))
	}
	return strings.Join(specs, ",")
}
