// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package shell

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vshell/vshell/internal/accessor"
	"github.com/vshell/vshell/internal/loader"
	"github.com/vshell/vshell/internal/store"
	"github.com/vshell/vshell/internal/vendor"
)

func newModel(t *testing.T) Model {
	t.Helper()
	l := loader.New(loader.Bundled())
	_, err := l.Load("myschool")
	require.NoError(t, err)
	acc := accessor.New(l)
	s, err := store.New(l, acc)
	require.NoError(t, err)
	choices, err := Choices(l)
	require.NoError(t, err)

	m := New(Options{Store: s, Accessor: acc, Vendors: choices})
	t.Cleanup(m.Close)
	return m
}

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"esc":       tea.KeyEsc,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"ctrl+v":    tea.KeyCtrlV,
	"ctrl+c":    tea.KeyCtrlC,
}

func keyMsg(k string) tea.KeyMsg {
	if kt, ok := namedKeys[k]; ok {
		return tea.KeyMsg{Type: kt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m = press(m, string(r))
	}
	return m
}

func login(t *testing.T, m Model) Model {
	t.Helper()
	m = typeText(m, "test")
	m = press(m, "tab")
	m = typeText(m, "test")
	m = press(m, "enter")
	require.True(t, m.State().LoggedIn)
	return m
}

func TestLogin_Blank(t *testing.T) {
	m := newModel(t)
	m = press(m, "enter", "enter")

	assert.False(t, m.State().LoggedIn)
	assert.Equal(t, "please enter both username and password", m.status)
	assert.True(t, m.statusErr)
}

func TestLogin_Wrong(t *testing.T) {
	m := newModel(t)
	m = typeText(m, "test")
	m = press(m, "tab")
	m = typeText(m, "nope")
	m = press(m, "enter")

	assert.False(t, m.State().LoggedIn)
	assert.Equal(t, "invalid username or password", m.status)
	assert.Empty(t, m.password.Value())
}

func TestLogin_Success(t *testing.T) {
	m := login(t, newModel(t))

	assert.Equal(t, vendor.ScreenHome, m.State().CurrentScreen)
	assert.Empty(t, m.username.Value())
	assert.Empty(t, m.password.Value())
	assert.Empty(t, m.status)
}

func TestLogin_FormWorksWhenSignedIn(t *testing.T) {
	m := login(t, newModel(t))
	require.NoError(t, m.store.Navigate(vendor.ScreenLogin))
	m = m.sync()
	require.True(t, m.State().LoggedIn)

	m = typeText(m, "test")
	assert.Equal(t, "test", m.username.Value())
	assert.Contains(t, m.View(), "Welcome to")

	m = press(m, "tab")
	m = typeText(m, "test")
	m = press(m, "enter")
	assert.Equal(t, vendor.ScreenHome, m.State().CurrentScreen)
	assert.Empty(t, m.username.Value())
}

func TestLogin_VendorKeysDoNotType(t *testing.T) {
	m := newModel(t)
	m = typeText(m, "mj")

	assert.Equal(t, "mj", m.username.Value())
	assert.False(t, m.State().DrawerOpen)
}

func TestPicker_SwitchVendor(t *testing.T) {
	m := login(t, newModel(t))

	m = press(m, "ctrl+v")
	require.True(t, m.picking)
	assert.Equal(t, "myschool", m.vendors[m.pickerCursor].ID)

	m = press(m, "down", "enter")
	assert.False(t, m.picking)
	st := m.State()
	assert.Equal(t, "pharmacy", st.VendorID)
	assert.Equal(t, vendor.TypePharmacy, st.VendorType)
	assert.Equal(t, "Store Manager", st.AdminName)
	assert.Equal(t, "Switched to HealthPlus Pharmacy", m.status)
	assert.False(t, m.statusErr)
}

func TestPicker_Cancel(t *testing.T) {
	m := newModel(t)
	m = press(m, "ctrl+v", "down", "esc")

	assert.False(t, m.picking)
	assert.Equal(t, "myschool", m.State().VendorID)
}

func TestPicker_AvailableLoggedOut(t *testing.T) {
	m := newModel(t)
	m = press(m, "ctrl+v", "up", "enter")

	st := m.State()
	assert.Equal(t, "freshmart", st.VendorID)
	assert.False(t, st.LoggedIn)
	assert.Equal(t, vendor.ScreenLogin, st.CurrentScreen)
}

func TestDrawer(t *testing.T) {
	m := login(t, newModel(t))

	m = press(m, "m")
	require.True(t, m.State().DrawerOpen)

	// help is the fifth entry and has no screen.
	m = press(m, "down", "down", "down", "down", "enter")
	assert.Equal(t, "Help & Support is coming soon", m.status)
	assert.True(t, m.State().DrawerOpen)

	m = press(m, "up", "up", "enter")
	assert.Equal(t, vendor.ScreenDetails, m.State().CurrentScreen)
	assert.False(t, m.State().DrawerOpen)

	m = press(m, "m", "esc")
	assert.False(t, m.State().DrawerOpen)
}

func TestDrawer_Logout(t *testing.T) {
	m := login(t, newModel(t))

	m = press(m, "m")
	for range len(m.State().Drawer) {
		m = press(m, "down")
	}
	m = press(m, "enter")

	st := m.State()
	assert.False(t, st.LoggedIn)
	assert.Equal(t, vendor.ScreenLogin, st.CurrentScreen)
	assert.False(t, st.DrawerOpen)
}

func TestTabs(t *testing.T) {
	m := login(t, newModel(t))

	tests := []struct {
		key  string
		want vendor.Screen
	}{
		{"tab", vendor.ScreenUpdates},
		{"tab", vendor.ScreenDetails},
		{"shift+tab", vendor.ScreenUpdates},
		{"shift+tab", vendor.ScreenHome},
		{"shift+tab", vendor.ScreenInfo},
		{"tab", vendor.ScreenHome},
	}
	for _, tt := range tests {
		m = press(m, tt.key)
		assert.Equal(t, tt.want, m.State().CurrentScreen, "after %s", tt.key)
	}
}

func TestHome_QuickAccess(t *testing.T) {
	m := login(t, newModel(t))

	m = press(m, "2")
	assert.Equal(t, "Attendance is coming soon", m.status)
	assert.Equal(t, vendor.ScreenHome, m.State().CurrentScreen)

	m = press(m, "4")
	assert.Equal(t, vendor.ScreenDetails, m.State().CurrentScreen)

	m = press(m, "esc")
	assert.Equal(t, vendor.ScreenHome, m.State().CurrentScreen)
}

func TestDetails_Select(t *testing.T) {
	m := login(t, newModel(t))
	m = press(m, "4")

	m = press(m, "down", "enter")
	require.NotNil(t, m.State().SelectedItem)
	assert.Equal(t, "2", m.State().SelectedItem.ItemID())
	assert.Contains(t, m.View(), "Admission No:")

	m = press(m, "x")
	assert.Nil(t, m.State().SelectedItem)
}

func TestDetails_CursorResetOnSwitch(t *testing.T) {
	m := login(t, newModel(t))
	m = press(m, "4", "down", "down")
	require.Equal(t, 2, m.listCursor)

	m = press(m, "ctrl+v", "down", "enter")
	assert.Equal(t, 0, m.listCursor)
	assert.Equal(t, "#4CAF50", m.State().Theme.Primary)
}

func TestView(t *testing.T) {
	m := newModel(t)
	assert.Contains(t, m.View(), "Test credentials")
	assert.Contains(t, m.View(), "Welcome to mySchool Academy")

	m = login(t, m)
	view := m.View()
	assert.Contains(t, view, "Welcome, Admin User")
	assert.Contains(t, view, "Attendance")
	assert.NotContains(t, view, "Test credentials")

	m = press(m, "4")
	view = m.View()
	assert.Contains(t, view, "Aarnav Radhu")
	assert.Contains(t, view, "Students (3)")

	m = press(m, "m")
	assert.Contains(t, m.View(), "Settings & Privacy")
}

func TestView_AppVersion(t *testing.T) {
	m := login(t, newModel(t))
	require.NoError(t, m.store.Navigate(vendor.ScreenAppVersion))
	m = m.sync()

	assert.Contains(t, m.View(), "Version "+store.AppVersion)
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRelativeDate(t *testing.T) {
	assert.Equal(t, "soon", relativeDate("soon"))
	assert.Contains(t, relativeDate("2001-01-02"), "ago")
}
