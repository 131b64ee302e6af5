// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/apex/log"
	"github.com/tidwall/jsonc"
	"github.com/urfave/cli/v3"

	"github.com/vshell/vshell/internal/attrs"
	"github.com/vshell/vshell/internal/config"
	"github.com/vshell/vshell/internal/loader"
	"github.com/vshell/vshell/internal/meta"
	"github.com/vshell/vshell/internal/output"
	"github.com/vshell/vshell/internal/shellerr"
)

// defaultVendor is used when neither an argument nor the preferences name a
// vendor.
const defaultVendor = "myschool"

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs, then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList, err error) {
	for _, d := range defaults {
		if err = al.Set(d); err != nil {
			return nil, err
		}
	}
	if extras := cmd.String("attrs"); extras != "" {
		if err = al.Set(extras); err != nil {
			return nil, fmt.Errorf("invalid --attrs: %w", err)
		}
	}
	err = al.SetGlobalTransformSpec()
	return
}

// DumpSchemaIfRequested writes the attributes of t to the command's writer
// when --schema is set, and returns true if it handled the request.
func DumpSchemaIfRequested(cmd *cli.Command, title string, t reflect.Type) bool {
	if cmd.Bool("schema") {
		output.DumpSchema(title, t, writer(cmd))
		return true
	}
	return false
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// catalog returns the command's vendor catalog, the bundled one by default.
func catalog(cmd *cli.Command) *loader.Catalog {
	if c := GetMeta(cmd).Catalog; c != nil {
		return c
	}
	return loader.Bundled()
}

// vendorArg returns the positional vendor id at i, falling back to the
// vendor preference.
func vendorArg(cmd *cli.Command, i int) string {
	if id := cmd.Args().Get(i); id != "" {
		return id
	}
	id, _ := config.GetString("vendor", defaultVendor)
	return id
}

// loadVendor returns a loader with vendor id active.
func loadVendor(cmd *cli.Command, id string) (*loader.Loader, error) {
	l := loader.New(catalog(cmd))
	if _, err := l.Load(id); err != nil {
		return nil, err
	}
	log.Debugf("loaded vendor %s for %s", id, cmd.Name)
	return l, nil
}

// document returns the JSON form of a vendor document. spec is a catalog id
// or, when it names an existing file, a path to a document on disk.
func document(cmd *cli.Command, spec string) ([]byte, error) {
	if fi, err := os.Stat(spec); err == nil && !fi.IsDir() {
		raw, err := os.ReadFile(spec)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", spec, err)
		}
		return jsonc.ToJSON(raw), nil
	}

	raw, ok := catalog(cmd).Raw(spec)
	if !ok {
		return nil, shellerr.New(shellerr.CodeConfigNotFound, "no vendor configuration for %q", spec)
	}
	return jsonc.ToJSON(raw), nil
}

// writer is where a command prints its results.
func writer(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}
