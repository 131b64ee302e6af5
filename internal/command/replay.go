// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/vshell/vshell/internal/accessor"
	"github.com/vshell/vshell/internal/auth"
	"github.com/vshell/vshell/internal/meta"
	"github.com/vshell/vshell/internal/output"
	"github.com/vshell/vshell/internal/shellerr"
	"github.com/vshell/vshell/internal/store"
	"github.com/vshell/vshell/internal/vendor"
)

// replayStep is one line of a replay script.
type replayStep struct {
	Line int
	Op   string
	Args []string
}

// replayOps maps an operation name to its argument count bounds.
var replayOps = map[string][2]int{
	"login":    {0, 2},
	"logout":   {0, 0},
	"navigate": {1, 1},
	"select":   {1, 1},
	"drawer":   {0, 1},
	"switch":   {1, 1},
	"menu":     {1, 1},
	"tab":      {1, 1},
}

// parseScript reads one operation per line. Blank lines and lines starting
// with # are skipped.
func parseScript(r io.Reader) ([]replayStep, error) {
	var steps []replayStep
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		op := strings.ToLower(fields[0])
		bounds, ok := replayOps[op]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown operation %q", line, fields[0])
		}
		args := fields[1:]
		if len(args) < bounds[0] || len(args) > bounds[1] {
			return nil, fmt.Errorf("line %d: %s takes %d to %d arguments", line, op, bounds[0], bounds[1])
		}
		if op == "login" && len(args) == 1 {
			return nil, fmt.Errorf("line %d: login takes a username and a password", line)
		}
		steps = append(steps, replayStep{Line: line, Op: op, Args: args})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return steps, nil
}

// apply performs step on s.
func (step replayStep) apply(s *store.Store) error {
	st := s.Snapshot()
	switch step.Op {
	case "login":
		if len(step.Args) == 2 {
			if err := auth.Verify(step.Args[0], step.Args[1]); err != nil {
				return err
			}
		}
		s.Login()
	case "logout":
		s.Logout()
	case "navigate":
		return s.Navigate(vendor.Screen(step.Args[0]))
	case "select":
		if step.Args[0] == "none" {
			return s.SelectItem(nil)
		}
		idx := slices.IndexFunc(st.Items, func(it vendor.Item) bool {
			return it.ItemID() == step.Args[0]
		})
		if idx < 0 {
			return shellerr.New(shellerr.CodeUnknownItem,
				"item %q is not part of vendor %s", step.Args[0], st.VendorID)
		}
		return s.SelectItem(st.Items[idx])
	case "drawer":
		if len(step.Args) == 1 && step.Args[0] == "close" {
			s.CloseDrawer()
		} else {
			s.ToggleDrawer()
		}
	case "switch":
		return s.SwitchVendor(step.Args[0])
	case "menu":
		entry := vendor.MenuEntry{ID: step.Args[0]}
		if idx := slices.IndexFunc(st.Drawer, func(e accessor.DrawerEntry) bool {
			return e.ID == step.Args[0]
		}); idx >= 0 {
			entry = st.Drawer[idx].MenuEntry
		}
		return s.ActivateMenuEntry(entry)
	case "tab":
		return s.SelectTab(vendor.Tab{ID: step.Args[0]})
	}
	return nil
}

// replayState is the part of the state a replay reports.
type replayState struct {
	Vendor     string        `json:"vendor"`
	LoggedIn   bool          `json:"loggedIn"`
	Screen     vendor.Screen `json:"screen"`
	Primary    vendor.Screen `json:"primary"`
	DrawerOpen bool          `json:"drawerOpen"`
	Selected   string        `json:"selected,omitempty"`
}

// replayResult is the report of one step.
type replayResult struct {
	Line  int    `json:"line"`
	Op    string `json:"op"`
	Error string `json:"error,omitempty"`
	State any    `json:"state"`
}

func summarize(st store.State) replayState {
	rs := replayState{
		Vendor:     st.VendorID,
		LoggedIn:   st.LoggedIn,
		Screen:     st.CurrentScreen,
		Primary:    store.Route(st).Primary,
		DrawerOpen: st.DrawerOpen,
	}
	if st.SelectedItem != nil {
		rs.Selected = st.SelectedItem.ItemID()
	}
	return rs
}

// replay runs steps against a fresh store on vendor id.
func replay(cmd *cli.Command, id string, steps []replayStep, full, strict bool) ([]replayResult, error) {
	l, err := loadVendor(cmd, id)
	if err != nil {
		return nil, err
	}
	s, err := store.New(l, accessor.New(l))
	if err != nil {
		return nil, err
	}

	results := make([]replayResult, 0, len(steps))
	for _, step := range steps {
		r := replayResult{Line: step.Line, Op: strings.Join(append([]string{step.Op}, step.Args...), " ")}
		if err := step.apply(s); err != nil {
			if strict {
				return results, fmt.Errorf("line %d: %w", step.Line, err)
			}
			r.Error = err.Error()
		}
		if st := s.Snapshot(); full {
			r.State = st
		} else {
			r.State = summarize(st)
		}
		results = append(results, r)
	}
	return results, nil
}

func replayCommandAction(_ context.Context, cmd *cli.Command) error {
	var in io.Reader = cmd.Root().Reader
	if in == nil {
		in = os.Stdin
	}
	if path := cmd.Args().Get(1); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	steps, err := parseScript(in)
	if err != nil {
		return err
	}

	results, err := replay(cmd, vendorArg(cmd, 0), steps, cmd.Bool("full"), cmd.Bool("strict"))
	if err != nil {
		return err
	}
	return output.Document(writer(cmd), cmd.String("output"), results)
}

func replayCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:  "replay",
		Usage: "drive the state store from a script and print every state",
		UsageText: "vshell replay [vendor] [script|-]\n\n" +
			"operations: login [user pass], logout, navigate <screen>, select <id|none>,\n" +
			"drawer [toggle|close], switch <vendor>, menu <entry>, tab <tab>",
		Flags: []cli.Flag{
			NewDocumentFlag("replay", meta.Config.Source, "yaml", "yaml", "json"),
			&cli.BoolFlag{
				Name:  "full",
				Usage: "print the complete state after every step",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "stop at the first failing operation",
			},
		},
		Action:  replayCommandAction,
		Meta:    meta,
		MaxArgs: 2,
	}).Build()
}
