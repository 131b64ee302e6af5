// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/urfave/cli/v3"

	"github.com/vshell/vshell/internal/loader"
	"github.com/vshell/vshell/internal/meta"
	"github.com/vshell/vshell/internal/output"
	"github.com/vshell/vshell/internal/vendor"
)

// vendorsDefaultAttrs are the catalog columns shown by default.
var vendorsDefaultAttrs = []string{"id", "name", "type", "items", "valid"}

// catalogEntry is one row of the vendors listing.
type catalogEntry struct {
	ID       string      `json:"id"`
	Name     string      `json:"name,omitempty"`
	Type     vendor.Type `json:"type,omitempty"`
	Items    int         `json:"items"`
	Tabs     int         `json:"tabs"`
	Valid    bool        `json:"valid"`
	Problems []string    `json:"problems,omitempty"`
}

// catalogEntries resolves every document of the catalog. Invalid documents
// are listed with their problems rather than failing the listing.
func catalogEntries(c *loader.Catalog) []catalogEntry {
	l := loader.New(c)
	entries := make([]catalogEntry, 0, len(c.IDs()))
	for _, id := range c.IDs() {
		e := catalogEntry{ID: id}
		cfg, err := l.Resolve(id)
		if err != nil {
			e.Problems = problems(err)
			entries = append(entries, e)
			continue
		}
		e.Name = cfg.Vendor.Name
		e.Type = cfg.Vendor.Type
		e.Items = len(cfg.Screens.Details.Items)
		e.Tabs = len(cfg.Tabs)
		e.Valid = true
		entries = append(entries, e)
	}
	return entries
}

func vendorsCommandAction(_ context.Context, cmd *cli.Command) error {
	if DumpSchemaIfRequested(cmd, "vendor", reflect.TypeOf(catalogEntry{})) {
		return nil
	}

	al, err := BuildAttrs(cmd, vendorsDefaultAttrs...)
	if err != nil {
		return err
	}

	var raw bytes.Buffer
	if err := json.NewEncoder(&raw).Encode(catalogEntries(catalog(cmd))); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return output.SliceDiceSpit(raw, al, cmd, "", writer(cmd), nil)
}

func vendorsCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "vendors",
		Usage:     "list the vendor catalog",
		UsageText: "vshell vendors [options]",
		Action:    vendorsCommandAction,
		Meta:      meta,
		MaxArgs:   0,
		Listing:   true,
	}).Build()
}
