// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/vshell/vshell/internal/config"
	"github.com/vshell/vshell/internal/loader"
	"github.com/vshell/vshell/internal/meta"
)

// InitApp builds the root command over the bundled vendor catalog.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	return initApp(ctx, args, loader.Bundled())
}

func initApp(ctx context.Context, args []string, catalog *loader.Catalog) (*cli.Command, error) {
	// The arg[1] immediately following the binary is the subcommand and also
	// the namespace used when retrieving config values. It could be
	// -h/--help, so ignore it if it appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Debugf("no preferences loaded: %v", err)
	}
	config.Config.Namespace = ns

	meta := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
		Catalog: catalog,
	}

	app := &cli.Command{
		Name:  "vshell",
		Usage: "multi-tenant app shell",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "vshell version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		runCommandBuilder(meta),
		vendorsCommandBuilder(meta),
		showCommandBuilder(meta),
		itemsCommandBuilder(meta),
		getCommandBuilder(meta),
		diffCommandBuilder(meta),
		schemaCommandBuilder(meta),
		validateCommandBuilder(meta),
		replayCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
