// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vshell/vshell/internal/vendor"
)

// styles are derived from a vendor theme.
type styles struct {
	header   lipgloss.Style
	title    lipgloss.Style
	text     lipgloss.Style
	muted    lipgloss.Style
	card     lipgloss.Style
	selected lipgloss.Style
	cursor   lipgloss.Style
	tab      lipgloss.Style
	tabOn    lipgloss.Style
	drawer   lipgloss.Style
	disabled lipgloss.Style
	err      lipgloss.Style
	ok       lipgloss.Style
}

func newStyles(t vendor.Theme) styles {
	primary := lipgloss.Color(t.Primary)
	surface := lipgloss.Color(t.Surface)
	text := lipgloss.Color(t.Text)
	secondaryText := lipgloss.Color(t.TextSecondary)
	border := lipgloss.Color(t.Border)

	return styles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(surface).
			Background(primary).
			Padding(0, 1),
		title:    lipgloss.NewStyle().Bold(true).Foreground(primary),
		text:     lipgloss.NewStyle().Foreground(text),
		muted:    lipgloss.NewStyle().Foreground(secondaryText),
		card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Secondary)),
		cursor:   lipgloss.NewStyle().Foreground(primary),
		tab:      lipgloss.NewStyle().Foreground(secondaryText).Padding(0, 1),
		tabOn:    lipgloss.NewStyle().Bold(true).Foreground(surface).Background(primary).Padding(0, 1),
		drawer: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(border).
			Padding(0, 1).
			Width(28),
		disabled: lipgloss.NewStyle().Faint(true).Foreground(secondaryText),
		err:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error)),
		ok:       lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)),
	}
}
