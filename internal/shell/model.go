// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vshell/vshell/internal/accessor"
	"github.com/vshell/vshell/internal/auth"
	"github.com/vshell/vshell/internal/loader"
	"github.com/vshell/vshell/internal/log"
	"github.com/vshell/vshell/internal/shellerr"
	"github.com/vshell/vshell/internal/store"
	"github.com/vshell/vshell/internal/vendor"
)

// VendorChoice is an entry of the vendor picker.
type VendorChoice struct {
	ID   string
	Name string
	Type vendor.Type
}

// Choices lists every vendor of l's catalog for the picker.
func Choices(l *loader.Loader) ([]VendorChoice, error) {
	ids := l.Catalog().IDs()
	choices := make([]VendorChoice, 0, len(ids))
	for _, id := range ids {
		cfg, err := l.Resolve(id)
		if err != nil {
			return nil, err
		}
		choices = append(choices, VendorChoice{ID: id, Name: cfg.Vendor.Name, Type: cfg.Vendor.Type})
	}
	return choices, nil
}

// Options configures a Model.
type Options struct {
	Store    *store.Store
	Accessor *accessor.Accessor
	Vendors  []VendorChoice
	// Verify checks credentials; auth.Verify when nil.
	Verify func(username, password string) error
	// Keys defaults to DefaultKeyMap.
	Keys *KeyMap
}

// Model is the bubbletea model of the front end.
type Model struct {
	store   *store.Store
	acc     *accessor.Accessor
	verify  func(username, password string) error
	keys    KeyMap
	help    help.Model
	vendors []VendorChoice

	sub     *store.Subscription
	updates chan store.State
	state   store.State
	styles  styles

	username textinput.Model
	password textinput.Model

	picking      bool
	pickerCursor int
	listCursor   int
	drawerCursor int

	status    string
	statusErr bool

	width, height int
}

// New builds a Model over opts.Store and subscribes it to the store. Close
// releases the subscription.
func New(opts Options) Model {
	keys := DefaultKeyMap
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	verify := opts.Verify
	if verify == nil {
		verify = auth.Verify
	}

	username := textinput.New()
	username.Placeholder = "Enter your username"
	username.Prompt = "Username: "
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "Enter your password"
	password.Prompt = "Password: "
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	m := Model{
		store:    opts.Store,
		acc:      opts.Accessor,
		verify:   verify,
		keys:     keys,
		help:     help.New(),
		vendors:  slices.Clone(opts.Vendors),
		updates:  make(chan store.State, 1),
		username: username,
		password: password,
	}
	m.sub = opts.Store.Subscribe(m.publish)
	m.state = opts.Store.Snapshot()
	m.styles = newStyles(m.state.Theme)
	return m
}

// publish hands a broadcast to the model. Only the newest state matters, so
// an unread one is replaced.
func (m Model) publish(st store.State) {
	for {
		select {
		case m.updates <- st:
			return
		default:
			select {
			case <-m.updates:
			default:
			}
		}
	}
}

// sync applies the newest broadcast, if any.
func (m Model) sync() Model {
	select {
	case st := <-m.updates:
		if st.VendorID != m.state.VendorID {
			m.styles = newStyles(st.Theme)
			m.listCursor = 0
			m.drawerCursor = 0
		}
		m.state = st
		m.listCursor = clamp(m.listCursor, len(st.Items))
		m.drawerCursor = clamp(m.drawerCursor, len(st.Drawer))
	default:
	}
	return m
}

// Close cancels the store subscription.
func (m Model) Close() {
	m.sub.Cancel()
}

// State returns the state the model last rendered.
func (m Model) State() store.State {
	return m.state
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.status = ""

		var cmd tea.Cmd
		switch {
		case m.picking:
			m = m.handlePickerKeys(msg)
		case key.Matches(msg, m.keys.Vendor):
			m = m.openPicker()
		case m.state.LoggedIn && m.state.DrawerOpen:
			m = m.handleDrawerKeys(msg)
		case m.onLoginScreen():
			m, cmd = m.handleLoginKeys(msg)
		default:
			m = m.handleScreenKeys(msg)
		}
		return m.sync(), cmd
	}

	if m.onLoginScreen() {
		var cmd tea.Cmd
		if m.username.Focused() {
			m.username, cmd = m.username.Update(msg)
		} else {
			m.password, cmd = m.password.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

// onLoginScreen reports whether the login form is what is drawn. A signed-in
// session can land there through Navigate.
func (m Model) onLoginScreen() bool {
	return store.Route(m.state).Primary == vendor.ScreenLogin
}

// report shows err in the status line. Errors the user can act on get their
// own message; everything else is logged too.
func (m Model) report(err error) Model {
	if err == nil {
		return m
	}
	m.statusErr = true
	var se *shellerr.Error
	if errors.As(err, &se) && se.Message != "" {
		m.status = se.Message
	} else {
		m.status = err.Error()
	}
	if !shellerr.HasCode(err, shellerr.CodeInvalidCredentials) {
		log.WithError(err).Warnf("operation failed")
	}
	return m
}

func (m Model) info(format string, args ...any) Model {
	m.statusErr = false
	m.status = fmt.Sprintf(format, args...)
	return m
}

func (m Model) openPicker() Model {
	m.picking = true
	m.pickerCursor = slices.IndexFunc(m.vendors, func(v VendorChoice) bool {
		return v.ID == m.state.VendorID
	})
	if m.pickerCursor < 0 {
		m.pickerCursor = 0
	}
	return m
}

func (m Model) handlePickerKeys(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.pickerCursor = max(m.pickerCursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.pickerCursor = clamp(m.pickerCursor+1, len(m.vendors))
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Vendor):
		m.picking = false
	case key.Matches(msg, m.keys.Select):
		m.picking = false
		if len(m.vendors) == 0 {
			return m
		}
		choice := m.vendors[m.pickerCursor]
		if err := m.store.SwitchVendor(choice.ID); err != nil {
			return m.report(err)
		}
		return m.info("Switched to %s", choice.Name)
	}
	return m
}

func (m Model) handleLoginKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		return m.toggleFocus(), nil
	case tea.KeyEnter:
		if m.username.Focused() {
			return m.toggleFocus(), nil
		}
		return m.submitLogin(), nil
	}

	var cmd tea.Cmd
	if m.username.Focused() {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m Model) toggleFocus() Model {
	if m.username.Focused() {
		m.username.Blur()
		m.password.Focus()
	} else {
		m.password.Blur()
		m.username.Focus()
	}
	return m
}

func (m Model) submitLogin() Model {
	if err := m.verify(m.username.Value(), m.password.Value()); err != nil {
		m.password.SetValue("")
		return m.report(err)
	}
	m.store.Login()
	m.username.SetValue("")
	m.password.SetValue("")
	m.password.Blur()
	m.username.Focus()
	return m
}

func (m Model) handleDrawerKeys(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.drawerCursor = max(m.drawerCursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.drawerCursor = clamp(m.drawerCursor+1, len(m.state.Drawer))
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Drawer):
		m.store.CloseDrawer()
	case key.Matches(msg, m.keys.Select):
		if len(m.state.Drawer) == 0 {
			return m
		}
		entry := m.state.Drawer[m.drawerCursor]
		if err := m.store.ActivateMenuEntry(entry.MenuEntry); err != nil {
			if shellerr.HasCode(err, shellerr.CodeMenuEntryDisabled) {
				return m.info("%s is coming soon", entry.Label)
			}
			return m.report(err)
		}
	}
	return m
}

func (m Model) handleScreenKeys(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Drawer):
		m.store.ToggleDrawer()
		return m
	case key.Matches(msg, m.keys.NextTab):
		return m.cycleTab(1)
	case key.Matches(msg, m.keys.PrevTab):
		return m.cycleTab(-1)
	case key.Matches(msg, m.keys.Back):
		if m.state.CurrentScreen != vendor.ScreenHome {
			return m.report(m.store.Navigate(vendor.ScreenHome))
		}
		return m
	}

	switch m.state.CurrentScreen {
	case vendor.ScreenHome:
		return m.handleHomeKeys(msg)
	case vendor.ScreenDetails:
		return m.handleDetailsKeys(msg)
	}
	return m
}

// cycleTab moves to the next or previous tab. From a screen without a tab
// it starts at the first.
func (m Model) cycleTab(step int) Model {
	tabs := m.state.Tabs
	if len(tabs) == 0 {
		return m
	}
	i := slices.IndexFunc(tabs, func(t vendor.Tab) bool {
		return t.Screen == m.state.CurrentScreen
	})
	next := 0
	if i >= 0 {
		next = (i + step + len(tabs)) % len(tabs)
	}
	return m.report(m.store.SelectTab(tabs[next]))
}

// handleHomeKeys opens quick access tiles by their number.
func (m Model) handleHomeKeys(msg tea.KeyMsg) Model {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return m
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return m
	}

	home, err := m.acc.Home()
	if err != nil {
		return m.report(err)
	}
	n := int(r - '1')
	if n >= len(home.QuickAccessItems) {
		return m
	}
	tile := home.QuickAccessItems[n]
	if tile.Screen == "" {
		return m.info("%s is coming soon", tile.Label)
	}
	return m.report(m.store.Navigate(tile.Screen))
}

func (m Model) handleDetailsKeys(msg tea.KeyMsg) Model {
	items := m.state.Items
	switch {
	case key.Matches(msg, m.keys.Up):
		m.listCursor = max(m.listCursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.listCursor = clamp(m.listCursor+1, len(items))
	case key.Matches(msg, m.keys.Select):
		if len(items) > 0 {
			return m.report(m.store.SelectItem(items[m.listCursor]))
		}
	case key.Matches(msg, m.keys.Clear):
		return m.report(m.store.SelectItem(nil))
	}
	return m
}

// clamp limits i to a valid index of a list of length n.
func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
