// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vshell/vshell/internal/render"
	"github.com/vshell/vshell/internal/store"
	"github.com/vshell/vshell/internal/vendor"
)

// View implements tea.Model.
func (m Model) View() string {
	frame := store.Route(m.state)

	var body string
	if m.picking {
		body = m.pickerView()
	} else {
		body = m.screenView(frame.Primary)
	}
	if frame.DrawerOverlay && !m.picking {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.drawerView(), body)
	}

	sections := []string{m.headerView(), body}
	if m.state.LoggedIn {
		sections = append(sections, m.tabBarView())
	}
	if m.status != "" {
		style := m.styles.ok
		if m.statusErr {
			style = m.styles.err
		}
		sections = append(sections, style.Render(m.status))
	}
	if m.state.LoggedIn {
		sections = append(sections, m.help.View(screenKeys(m.keys)))
	} else {
		sections = append(sections, m.help.View(loginKeys(m.keys)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) headerView() string {
	title := m.state.OrganisationName
	if m.state.LoggedIn {
		title = fmt.Sprintf("%s · %s", title, screenTitle(m.state.CurrentScreen))
	}
	return m.styles.header.Render(title)
}

func (m Model) screenView(screen vendor.Screen) string {
	var body string
	var err error
	switch screen {
	case vendor.ScreenLogin:
		body = m.loginView()
	case vendor.ScreenHome:
		body, err = m.homeView()
	case vendor.ScreenUpdates:
		body, err = m.updatesView()
	case vendor.ScreenDetails:
		body, err = m.detailsView()
	case vendor.ScreenInfo:
		body, err = m.infoView()
	case vendor.ScreenHelpSupport:
		body = m.styles.title.Render("Help & Support") + "\n" +
			m.styles.muted.Render("Contact "+m.state.OrganisationName+" for assistance.")
	case vendor.ScreenSettingsPrivacy:
		body = m.styles.title.Render("Settings & Privacy") + "\n" +
			m.styles.muted.Render("Signed in as "+m.state.AdminName+".")
	case vendor.ScreenAppVersion:
		body = m.styles.title.Render("App Version") + "\n" +
			m.styles.text.Render("Version "+m.state.AppVersion)
	}
	if err != nil {
		return m.styles.err.Render(err.Error())
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

func (m Model) loginView() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Welcome to "+m.state.OrganisationName) + "\n")
	b.WriteString(m.styles.muted.Render(fmt.Sprintf("%s portal", titleCase(string(m.state.VendorType)))) + "\n\n")
	b.WriteString(m.username.View() + "\n")
	b.WriteString(m.password.View() + "\n\n")
	b.WriteString(m.styles.muted.Render("Test credentials: test / test"))
	return b.String()
}

func (m Model) homeView() (string, error) {
	home, err := m.acc.Home()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render(home.OrganisationName) + "\n")
	b.WriteString(m.styles.muted.Render("Welcome, "+home.AdminName) + "\n\n")

	tiles := make([]string, 0, len(home.QuickAccessItems))
	for i, q := range home.QuickAccessItems {
		style := m.styles.card
		label := fmt.Sprintf("%d %s %s", i+1, q.Icon, q.Label)
		if q.Screen == "" {
			label = m.styles.disabled.Render(label)
		}
		tiles = append(tiles, style.Width(22).Render(label))
	}
	for i := 0; i < len(tiles); i += 4 {
		end := min(i+4, len(tiles))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tiles[i:end]...) + "\n")
	}
	return b.String(), nil
}

func (m Model) updatesView() (string, error) {
	updates, err := m.acc.Updates()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render(updates.Title) + "\n\n")
	if len(updates.Updates) == 0 {
		b.WriteString(m.styles.muted.Render("No updates."))
	}
	for _, u := range updates.Updates {
		fmt.Fprintf(&b, "%s %s  %s\n", u.Icon, m.styles.text.Bold(true).Render(u.Title), m.styles.muted.Render(relativeDate(u.Date)))
		b.WriteString("   " + m.styles.text.Render(u.Description) + "\n\n")
	}
	return b.String(), nil
}

// relativeDate renders a YYYY-MM-DD date as "3 days ago". Other values are
// shown as they are.
func relativeDate(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return humanize.Time(t)
}

func (m Model) detailsView() (string, error) {
	details, err := m.acc.Details()
	if err != nil {
		return "", err
	}
	layout, _ := render.For(m.state.VendorType)

	var b strings.Builder
	b.WriteString(m.styles.title.Render(details.Title) + "\n")
	label := render.ItemLabel(m.state.VendorType, details)
	b.WriteString(m.styles.muted.Render(fmt.Sprintf("%s (%d)", label, len(m.state.Items))) + "\n\n")

	for i, it := range m.state.Items {
		cursor := "  "
		if i == m.listCursor {
			cursor = m.styles.cursor.Render("> ")
		}
		line := fmt.Sprintf("%s %s", layout.ItemIcon, it.ItemName())
		if vendor.SameItem(it, m.state.SelectedItem) {
			line = m.styles.selected.Render(line + " ✓")
		}
		b.WriteString(cursor + line + "\n")
	}

	if m.state.SelectedItem != nil {
		card, err := m.itemCard(m.state.SelectedItem)
		if err != nil {
			return "", err
		}
		b.WriteString("\n" + card)
	}
	return b.String(), nil
}

func (m Model) itemCard(item vendor.Item) (string, error) {
	values, err := render.Values(item)
	if err != nil {
		return "", err
	}
	lines := []string{m.styles.title.Render(item.ItemName())}
	for _, v := range values {
		if v.Value == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s", m.styles.muted.Render(v.Label+":"), m.styles.text.Render(v.Value)))
	}
	return m.styles.card.Render(strings.Join(lines, "\n")), nil
}

func (m Model) infoView() (string, error) {
	info, err := m.acc.Info()
	if err != nil {
		return "", err
	}
	layout, _ := render.For(m.state.VendorType)

	field := func(label, value string) string {
		if value == "" {
			return ""
		}
		return fmt.Sprintf("%s %s\n", m.styles.muted.Render(label+":"), m.styles.text.Render(value))
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render(info.Name) + "\n\n")
	b.WriteString(field("Address", info.Address))
	b.WriteString(field("Phone", info.Phone))
	b.WriteString(field("Email", info.Email))
	b.WriteString(field("Website", info.Website))
	b.WriteString("\n" + m.styles.title.Render(layout.About) + "\n")
	b.WriteString(field(layout.Manager, info.Manager))
	b.WriteString(field("Established", info.Established))
	b.WriteString(field(layout.TotalItems, info.TotalItems))
	b.WriteString(field(layout.Staff, info.Staff))

	if offerings := render.Offerings(m.state.VendorType, info); len(offerings) > 0 {
		b.WriteString("\n" + m.styles.title.Render(layout.Offerings) + "\n")
		for _, o := range offerings {
			fmt.Fprintf(&b, "%s %s  %s\n", o.Icon, m.styles.text.Render(o.Name), m.styles.muted.Render(o.Description))
		}
	}
	return b.String(), nil
}

func (m Model) drawerView() string {
	lines := []string{m.styles.title.Render(m.state.OrganisationName), m.styles.muted.Render(m.state.AdminName), ""}
	for i, e := range m.state.Drawer {
		cursor := "  "
		if i == m.drawerCursor {
			cursor = m.styles.cursor.Render("> ")
		}
		label := fmt.Sprintf("%s %s", e.Icon, e.Label)
		if e.Disabled {
			label = m.styles.disabled.Render(label)
		} else {
			label = m.styles.text.Render(label)
		}
		lines = append(lines, cursor+label)
	}
	lines = append(lines, "", m.styles.muted.Render("v"+m.state.AppVersion))
	return m.styles.drawer.Render(strings.Join(lines, "\n"))
}

func (m Model) tabBarView() string {
	tabs := make([]string, 0, len(m.state.Tabs))
	for _, t := range m.state.Tabs {
		style := m.styles.tab
		if t.Screen == m.state.CurrentScreen {
			style = m.styles.tabOn
		}
		tabs = append(tabs, style.Render(t.Icon+" "+t.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) pickerView() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Select vendor") + "\n\n")
	for i, v := range m.vendors {
		cursor := "  "
		if i == m.pickerCursor {
			cursor = m.styles.cursor.Render("> ")
		}
		mark := " "
		if v.ID == m.state.VendorID {
			mark = "•"
		}
		fmt.Fprintf(&b, "%s%s %-10s %s %s\n", cursor, mark, v.ID, m.styles.text.Render(v.Name), m.styles.muted.Render("("+string(v.Type)+")"))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// screenTitle is the header label of a screen.
func screenTitle(s vendor.Screen) string {
	switch s {
	case vendor.ScreenHelpSupport:
		return "Help & Support"
	case vendor.ScreenSettingsPrivacy:
		return "Settings & Privacy"
	case vendor.ScreenAppVersion:
		return "App Version"
	}
	return titleCase(string(s))
}
