// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/vshell/vshell/internal/loader"
	"github.com/vshell/vshell/internal/meta"
	"github.com/vshell/vshell/internal/shellerr"
	"github.com/vshell/vshell/internal/vendor"
)

// ErrInvalid is returned by validate when any document fails.
var ErrInvalid = errors.New("invalid vendor configuration")

// problems lists what is wrong according to err.
func problems(err error) []string {
	var se *shellerr.Error
	if errors.As(err, &se) && len(se.Problems) > 0 {
		return se.Problems
	}
	return []string{err.Error()}
}

// validateOne checks a catalog id or a document file.
func validateOne(l *loader.Loader, spec string) error {
	if fi, err := os.Stat(spec); err == nil && !fi.IsDir() {
		raw, err := os.ReadFile(spec)
		if err != nil {
			return err
		}
		_, err = vendor.Parse("", raw)
		return err
	}
	_, err := l.Resolve(spec)
	return err
}

func validateCommandAction(_ context.Context, cmd *cli.Command) error {
	c := catalog(cmd)
	specs := cmd.Args().Slice()
	if len(specs) == 0 {
		specs = c.IDs()
	}

	l := loader.New(c)
	w := writer(cmd)
	failed := 0
	for _, spec := range specs {
		if err := validateOne(l, spec); err != nil {
			failed++
			fmt.Fprintf(w, "FAIL %s\n", spec)
			for _, p := range problems(err) {
				fmt.Fprintf(w, "     %s\n", p)
			}
			continue
		}
		fmt.Fprintf(w, "ok   %s\n", spec)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d documents", ErrInvalid, failed, len(specs))
	}
	return nil
}

func validateCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "validate",
		Usage:     "validate vendor documents",
		UsageText: "vshell validate [vendor|file ...]",
		Action:    validateCommandAction,
		Meta:      meta,
		MaxArgs:   -1,
	}).Build()
}
