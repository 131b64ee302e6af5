// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"fmt"

	"github.com/vshell/vshell/internal/vendor"
)

// Frame is what a front end renders: exactly one primary screen and, on top
// of it, optionally the drawer.
type Frame struct {
	Primary       vendor.Screen
	DrawerOverlay bool
}

// Route maps a state to its frame. Logged out, only the login screen shows.
// A logged-out state away from the login screen cannot be produced by the
// Store's operations; Route panics on it.
func Route(st State) Frame {
	if !st.LoggedIn {
		if st.CurrentScreen != vendor.ScreenLogin {
			panic(fmt.Sprintf("store: logged out on screen %q", st.CurrentScreen))
		}
		return Frame{Primary: vendor.ScreenLogin}
	}
	return Frame{
		Primary:       st.CurrentScreen,
		DrawerOverlay: st.DrawerOpen,
	}
}

// Visible reports whether screen is the primary screen of f.
func (f Frame) Visible(screen vendor.Screen) bool {
	return f.Primary == screen
}
