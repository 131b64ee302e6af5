// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"strings"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/vshell/vshell/internal/output"
)

// envPrefix prefixes the environment variable of every sourced flag.
const envPrefix = "VSHELL_"

var schemaFlag *cli.BoolFlag = &cli.BoolFlag{
	Name:        "schema",
	Usage:       "list the attributes available to --attrs, --filter and --sort",
	HideDefault: true,
}

// NewGlobalFlags returns the flags shared by every listing command. ns is the
// command's config namespace and path the preferences file.
func NewGlobalFlags(ns, path string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "comma-separated list of attributes to include in results",
			Sources: sources(ns, path, "attrs"),
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
			Sources: sources(ns, path, "color"),
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
			Sources: sources(ns, path, "filter"),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Sources: sources(ns, path, "output"),
			Validator: func(value string) error {
				return FlagValidators(value, OneOf(output.Formats...))
			},
		},
		&cli.IntFlag{
			Name:    "padding",
			Usage:   "cell padding of text output",
			Value:   1,
			Sources: sources(ns, path, "padding"),
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of attributes to sort the results by",
			Sources: sources(ns, path, "sort"),
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
			Sources: sources(ns, path, "titles"),
		},
	}

	return
}

// NewDocumentFlag is the --output flag of commands that print a single
// document rather than rows.
func NewDocumentFlag(ns, path, value string, formats ...string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format (" + strings.Join(formats, ", ") + ")",
		Value:   value,
		Sources: sources(ns, path, "output"),
		Validator: func(value string) error {
			return FlagValidators(value, OneOf(formats...))
		},
	}
}

// NewVendorFlag constructs the --vendor flag, optionally namespaced to a
// command and config file.
func NewVendorFlag(ns, path string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "vendor",
		Aliases: []string{"V"},
		Usage:   "vendor to start with",
		Sources: sources(ns, path, "vendor"),
		Value:   defaultVendor,
	}
}

// sources chains the flag's VSHELL_ environment variable, then the
// namespaced and global keys of the config file.
func sources(ns, path, name string) cli.ValueSourceChain {
	chain := cli.NewValueSourceChain(
		cli.EnvVar(envPrefix + strings.ToUpper(name)),
	)
	if path == "" {
		return chain
	}

	if ns != "" {
		chain.Chain = append(chain.Chain, yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)))
	}
	chain.Chain = append(chain.Chain, yaml.YAML(name, altsrc.StringSourcer(path)))

	return chain
}
