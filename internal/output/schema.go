// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/apex/log"
)

// schemaTag is an attribute discovered from a json struct tag.
type schemaTag struct {
	Name      string
	Type      string
	OmitEmpty bool
}

// print renders the tag as a line of --schema output.
func (t schemaTag) print() string {
	out := fmt.Sprintf("%-20s %s", t.Name, t.Type)
	if t.OmitEmpty {
		out += " (optional)"
	}
	return strings.TrimRight(out, " ")
}

// NewTag parses a json struct tag value. holder prefixes the name for nested
// structs. Fields tagged "-" or left untagged give a zero tag.
func NewTag(holder string, s string) schemaTag {
	parts := strings.Split(s, ",")
	if parts[0] == "" || parts[0] == "-" {
		return schemaTag{}
	}

	tag := schemaTag{Name: parts[0]}
	if holder != "" {
		tag.Name = holder + "." + parts[0]
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			tag.OmitEmpty = true
		}
	}
	return tag
}

// maxSchemaDepth limits how far nested structs are walked.
const maxSchemaDepth = 1

// DumpSchema writes the attributes of typ that --attrs, --filter and --sort
// accept, one per line in name order.
func DumpSchema(title string, typ reflect.Type, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	fmt.Fprintf(w, "Attributes of %s items available to --attrs, --filter and --sort.\n\n", title)

	tags := dumpSchemaWalker("", typ, 0)
	if len(tags) == 0 {
		log.Debugf("no tags found for type: %s", typ.Name())
		return
	}

	sort.Slice(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name })
	for _, tag := range tags {
		fmt.Fprintln(w, tag.print())
	}
}

// dumpSchemaWalker collects the json tags of typ's fields, descending into
// nested structs.
func dumpSchemaWalker(holder string, typ reflect.Type, depth int) []schemaTag {
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil
	}

	tags := make([]schemaTag, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		tag := NewTag(holder, field.Tag.Get("json"))
		if tag.Name == "" {
			continue
		}
		tag.Type = typeName(field.Type)
		tags = append(tags, tag)

		if depth < maxSchemaDepth && field.Type.Kind() == reflect.Struct && field.Type.PkgPath() == typ.PkgPath() {
			tags = append(tags, dumpSchemaWalker(tag.Name, field.Type, depth+1)...)
		}
	}
	return tags
}

// typeName describes a field type the way it appears in JSON.
func typeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int64, reflect.Int32, reflect.Float64, reflect.Float32:
		return "number"
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Map:
		return "object"
	case reflect.Struct:
		if t.Name() == "Decimal" {
			return "decimal"
		}
		return "object"
	default:
		return t.Kind().String()
	}
}
