// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Choice is a document offered by the picker.
type Choice struct {
	ID    string
	Label string
}

// SelectPair lets the user pick two of choices on the terminal. It returns
// nil when the user quits.
func SelectPair(choices []Choice) ([]string, error) {
	p := tea.NewProgram(pickModel{choices: choices})
	m, err := p.Run()
	if err != nil {
		return nil, err
	}
	return m.(pickModel).selected, nil
}

type pickModel struct {
	choices  []Choice
	cursor   int
	selected []string
}

func (m pickModel) Init() tea.Cmd { return nil }

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.selected = nil
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case " ":
		if len(m.choices) == 0 {
			break
		}
		id := m.choices[m.cursor].ID
		if i := slices.Index(m.selected, id); i >= 0 {
			m.selected = slices.Delete(slices.Clone(m.selected), i, i+1)
		} else if len(m.selected) < 2 {
			m.selected = append(slices.Clone(m.selected), id)
		}
	case "enter":
		if len(m.selected) == 2 {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pickModel) View() string {
	var b strings.Builder
	b.WriteString("Select two vendors to compare:\n\n")
	for i, c := range m.choices {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		mark := " "
		if slices.Contains(m.selected, c.ID) {
			mark = "x"
		}
		fmt.Fprintf(&b, "%s [%s] %-12s %s\n", cursor, mark, c.ID, c.Label)
	}
	b.WriteString("\nSPACE: toggle, ENTER: go, Q/ESCAPE: quit\n")
	return b.String()
}
