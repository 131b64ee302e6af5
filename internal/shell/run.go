// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vshell/vshell/internal/log"
)

// LogFileEnv names a file that receives log lines while the front end owns
// the terminal. Without it they are discarded.
const LogFileEnv = "VSHELL_LOG_FILE"

// Run starts the full screen front end and blocks until the user quits or
// ctx is done.
func Run(ctx context.Context, m Model) error {
	defer m.Close()

	var sink io.Writer = io.Discard
	if path := os.Getenv(LogFileEnv); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		sink = f
	}
	prev := log.SetOutput(sink)
	defer log.SetOutput(prev)

	log.Infof("starting front end on vendor %s", m.State().VendorID)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("front end failed: %w", err)
	}
	return nil
}
