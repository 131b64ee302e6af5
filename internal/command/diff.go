// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/vshell/vshell/internal/differ"
	"github.com/vshell/vshell/internal/meta"
)

// selectPair is replaced in tests.
var selectPair = differ.SelectPair

func diffCommandAction(_ context.Context, cmd *cli.Command) error {
	pair := cmd.Args().Slice()
	if len(pair) == 0 {
		if !isTerminal() {
			return errors.New("diff: name two vendors or files")
		}
		choices := make([]differ.Choice, 0)
		for _, e := range catalogEntries(catalog(cmd)) {
			choices = append(choices, differ.Choice{ID: e.ID, Label: e.Name})
		}
		picked, err := selectPair(choices)
		if err != nil {
			return err
		}
		if picked == nil {
			return nil
		}
		pair = picked
	}
	if len(pair) != 2 {
		return errors.New("diff: name two vendors or files")
	}

	left, err := document(cmd, pair[0])
	if err != nil {
		return err
	}
	right, err := document(cmd, pair[1])
	if err != nil {
		return err
	}

	var exclude []string
	if spec := cmd.String("exclude"); spec != "" {
		exclude = strings.Split(spec, ",")
	}
	_, err = differ.Diff(writer(cmd), left, right, differ.Options{
		Exclude:        exclude,
		Color:          cmd.Bool("color"),
		ShowArrayIndex: cmd.Bool("index"),
	})
	return err
}

func diffCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "diff",
		Usage:     "show the structural difference of two vendor documents",
		UsageText: "vshell diff [<vendor|file> <vendor|file>] [options]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "color",
				Aliases: []string{"c"},
				Usage:   "color added and removed lines",
				Sources: sources("diff", meta.Config.Source, "color"),
			},
			&cli.StringFlag{
				Name:    "exclude",
				Aliases: []string{"x"},
				Usage:   "comma-separated top-level keys to leave out",
			},
			&cli.BoolFlag{
				Name:  "index",
				Usage: "show list indexes",
			},
		},
		Action:  diffCommandAction,
		Meta:    meta,
		MaxArgs: 2,
	}).Build()
}
