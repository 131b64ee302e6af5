// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/vshell/vshell/internal/meta"
	"github.com/vshell/vshell/internal/output"
	"github.com/vshell/vshell/internal/vendor"
)

func schemaCommandAction(_ context.Context, cmd *cli.Command) error {
	return output.Document(writer(cmd), cmd.String("output"), vendor.Schema())
}

func schemaCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "schema",
		Usage:     "print the JSON Schema of vendor documents",
		UsageText: "vshell schema [options]",
		Flags: []cli.Flag{
			NewDocumentFlag("schema", meta.Config.Source, "json", "json", "yaml"),
		},
		Action: schemaCommandAction,
		Meta:   meta,
	}).Build()
}
