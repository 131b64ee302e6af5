// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/vshell/vshell/internal/accessor"
	"github.com/vshell/vshell/internal/meta"
	"github.com/vshell/vshell/internal/output"
)

// showSections are the parts of a vendor view show can print. The empty
// section is the whole view.
var showSections = map[string]func(accessor.View) any{
	"":        func(v accessor.View) any { return v },
	"vendor":  func(v accessor.View) any { return v.Vendor },
	"theme":   func(v accessor.View) any { return v.Theme },
	"tabs":    func(v accessor.View) any { return v.Tabs },
	"home":    func(v accessor.View) any { return v.Home },
	"updates": func(v accessor.View) any { return v.Updates },
	"details": func(v accessor.View) any { return v.Details },
	"info":    func(v accessor.View) any { return v.Info },
	"drawer":  func(v accessor.View) any { return v.Drawer },
}

func showCommandAction(_ context.Context, cmd *cli.Command) error {
	section := cmd.Args().Get(1)
	pick, ok := showSections[section]
	if !ok {
		return fmt.Errorf("unknown section %q", section)
	}

	l, err := loadVendor(cmd, vendorArg(cmd, 0))
	if err != nil {
		return err
	}
	view, err := accessor.New(l).View()
	if err != nil {
		return err
	}
	return output.Document(writer(cmd), cmd.String("output"), pick(view))
}

func showCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "show",
		Usage:     "print a vendor configuration as the screens see it",
		UsageText: "vshell show [vendor] [vendor|theme|tabs|home|updates|details|info|drawer]",
		Flags: []cli.Flag{
			NewDocumentFlag("show", meta.Config.Source, "yaml", "yaml", "json"),
		},
		Action:  showCommandAction,
		Meta:    meta,
		MaxArgs: 2,
	}).Build()
}
