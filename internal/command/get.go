// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/vshell/vshell/internal/driller"
	"github.com/vshell/vshell/internal/meta"
	"github.com/vshell/vshell/internal/output"
)

func getCommandAction(_ context.Context, cmd *cli.Command) error {
	id := cmd.Args().Get(0)
	path := cmd.Args().Get(1)

	doc, err := document(cmd, id)
	if err != nil {
		return err
	}

	result := driller.Driller(string(doc), path)
	if !result.Exists() {
		return fmt.Errorf("%s: nothing at %q", id, path)
	}

	w := writer(cmd)
	switch format := cmd.String("output"); format {
	case "raw":
		_, err = fmt.Fprintln(w, result.Raw)
	case "json", "yaml":
		err = output.Document(w, format, result.Value())
	default:
		if result.IsObject() || result.IsArray() {
			err = output.Document(w, "yaml", result.Value())
		} else {
			_, err = fmt.Fprintln(w, scalar(result))
		}
	}
	return err
}

// scalar renders a leaf value without JSON quoting.
func scalar(r gjson.Result) string {
	if r.Type == gjson.Null {
		return "null"
	}
	return r.String()
}

func getCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "get",
		Usage:     "query a vendor document by path",
		UsageText: "vshell get <vendor|file> <path>\n\nexample: vshell get pharmacy screens.details.items[0].price",
		Flags: []cli.Flag{
			NewDocumentFlag("get", meta.Config.Source, "text", "text", "json", "yaml", "raw"),
		},
		Action:  getCommandAction,
		Meta:    meta,
		MinArgs: 2,
		MaxArgs: 2,
	}).Build()
}
