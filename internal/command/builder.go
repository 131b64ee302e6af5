// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/vshell/vshell/internal/meta"
)

// CommandBuilder constructs a cli.Command in the common shape: metadata
// wiring, positional argument bounds checked before the action, and the
// listing flags for commands that emit rows.
type CommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta

	// MinArgs and MaxArgs bound the positional arguments. A negative MaxArgs
	// means unbounded.
	MinArgs int
	MaxArgs int

	// Listing adds --schema and the global output flags.
	Listing bool
}

// Build returns a configured cli.Command from the builder.
func (cb *CommandBuilder) Build() *cli.Command {
	flags := cb.Flags
	if cb.Listing {
		flags = append(flags, schemaFlag)
		flags = append(flags, NewGlobalFlags(cb.Name, cb.Meta.Config.Source)...)
	}

	return &cli.Command{
		Name:      cb.Name,
		Usage:     cb.Usage,
		UsageText: cb.UsageText,
		Metadata: map[string]any{
			"meta": cb.Meta,
		},
		Flags: flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, ArgsValidator(c, cb.MinArgs, cb.MaxArgs)
		},
		Action: cb.Action,
	}
}
