// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/vshell/vshell/internal/accessor"
	"github.com/vshell/vshell/internal/meta"
	"github.com/vshell/vshell/internal/shell"
	"github.com/vshell/vshell/internal/store"
)

// ErrNoTerminal is returned by run when stdin or stdout is not a terminal.
var ErrNoTerminal = errors.New("vshell run needs an interactive terminal")

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func runCommandAction(ctx context.Context, cmd *cli.Command) error {
	if !isTerminal() {
		return ErrNoTerminal
	}

	l, err := loadVendor(cmd, cmd.String("vendor"))
	if err != nil {
		return err
	}
	acc := accessor.New(l)
	s, err := store.New(l, acc)
	if err != nil {
		return err
	}
	choices, err := shell.Choices(l)
	if err != nil {
		return err
	}

	return shell.Run(ctx, shell.New(shell.Options{
		Store:    s,
		Accessor: acc,
		Vendors:  choices,
	}))
}

func runCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "run",
		Usage:     "start the terminal front end",
		UsageText: "vshell run [--vendor id]",
		Flags: []cli.Flag{
			NewVendorFlag("run", meta.Config.Source),
		},
		Action: runCommandAction,
		Meta:   meta,
	}).Build()
}
