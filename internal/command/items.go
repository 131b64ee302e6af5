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

	"github.com/vshell/vshell/internal/accessor"
	"github.com/vshell/vshell/internal/meta"
	"github.com/vshell/vshell/internal/output"
	"github.com/vshell/vshell/internal/render"
	"github.com/vshell/vshell/internal/vendor"
)

// itemTypes maps a vendor type to the Go type of its items, for --schema.
var itemTypes = map[vendor.Type]reflect.Type{
	vendor.TypeSchool:   reflect.TypeOf(vendor.SchoolItem{}),
	vendor.TypePharmacy: reflect.TypeOf(vendor.PharmacyItem{}),
	vendor.TypeRetail:   reflect.TypeOf(vendor.RetailItem{}),
}

// itemsDefaultAttrs are id and name followed by the fields the details
// screen shows for the vendor type.
func itemsDefaultAttrs(t vendor.Type) []string {
	attrs := []string{"id", "name"}
	layout, _ := render.For(t)
	for _, f := range layout.Fields {
		attrs = append(attrs, f.Key)
	}
	return attrs
}

func itemsCommandAction(_ context.Context, cmd *cli.Command) error {
	l, err := loadVendor(cmd, vendorArg(cmd, 0))
	if err != nil {
		return err
	}
	acc := accessor.New(l)

	t, err := acc.VendorType()
	if err != nil {
		return err
	}
	if DumpSchemaIfRequested(cmd, t.String(), itemTypes[t]) {
		return nil
	}

	al, err := BuildAttrs(cmd, itemsDefaultAttrs(t)...)
	if err != nil {
		return err
	}

	items, err := acc.Items()
	if err != nil {
		return err
	}
	var raw bytes.Buffer
	if err := json.NewEncoder(&raw).Encode(items); err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}
	return output.SliceDiceSpit(raw, al, cmd, "", writer(cmd), nil)
}

func itemsCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "items",
		Usage:     "list the items of a vendor's details screen",
		UsageText: "vshell items [vendor] [options]",
		Action:    itemsCommandAction,
		Meta:      meta,
		MaxArgs:   1,
		Listing:   true,
	}).Build()
}
