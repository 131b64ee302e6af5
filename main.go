// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/vshell/vshell/internal/command"
	"github.com/vshell/vshell/internal/config"
	"github.com/vshell/vshell/internal/log"
	"github.com/vshell/vshell/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// loadDotEnv reads .env from the working directory when there is one. Values
// already in the environment win.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "ignoring .env: %v\n", err)
	}
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// expandSets replaces an @name argument with the entries of the config key
// <command>.<name>. Without one, <command>.defaults is injected right after
// the command so later arguments override it.
func expandSets(args []string) []string {
	if len(args) < 2 {
		return args
	}

	set := "defaults"
	insertIdx := 2
	for i, a := range args[2:] {
		if strings.HasPrefix(a, "@") && len(a) > 1 {
			set = a[1:]
			insertIdx = 2 + i
			args = append(args[:insertIdx:insertIdx], args[insertIdx+1:]...)
			break
		}
	}

	entries, _ := config.GetStringSlice(args[1] + "." + set)
	log.Debugf("set %s.%s: %v", args[1], set, entries)
	return injectConfigSet(args, entries, insertIdx)
}

// injectConfigSet splits every entry on whitespace and inserts the words at
// insertIdx.
func injectConfigSet(args []string, entries []string, insertIdx int) []string {
	if len(entries) == 0 {
		return args
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, strings.Fields(entry)...)
	}

	out := make([]string, 0, len(args)+len(expanded))
	out = append(out, args[:insertIdx]...)
	out = append(out, expanded...)
	return append(out, args[insertIdx:]...)
}

// argGroup is a flag with its value, or a single positional argument.
type argGroup struct {
	flag  string
	words []string
}

// flagName returns the name of a flag token, without dashes or value.
func flagName(token string) (string, bool) {
	if token == "-" || !strings.HasPrefix(token, "-") {
		return "", false
	}
	name := strings.TrimLeft(token, "-")
	if i := strings.Index(name, "="); i >= 0 {
		name = name[:i]
	}
	return name, true
}

// deduplicateFlags drops every occurrence of a flag but the last, so flags
// injected from sets can be overridden on the command line. A flag followed
// by a word that is not a flag takes it as its value.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return args
	}

	var groups []argGroup
	rest := args[2:]
	for i := 0; i < len(rest); i++ {
		name, ok := flagName(rest[i])
		if !ok {
			groups = append(groups, argGroup{words: rest[i : i+1]})
			continue
		}
		g := argGroup{flag: name, words: rest[i : i+1]}
		if !strings.Contains(rest[i], "=") && i+1 < len(rest) {
			if _, next := flagName(rest[i+1]); !next {
				g.words = rest[i : i+2]
				i++
			}
		}
		groups = append(groups, g)
	}

	last := map[string]int{}
	for i, g := range groups {
		if g.flag != "" {
			last[g.flag] = i
		}
	}

	out := append([]string{}, args[:2]...)
	for i, g := range groups {
		if g.flag != "" && last[g.flag] != i {
			continue
		}
		out = append(out, g.words...)
	}
	return out
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	loadDotEnv()
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip set processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound && args[1] != "completion" {
		args = deduplicateFlags(expandSets(args))
		log.Debugf("args after set processing: args=%v", args)
	}

	return initAndRunApp(args)
}
