// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package store owns the application state of the shell: authentication,
// the current screen, the drawer, the selected item, and the snapshots of the
// active vendor configuration that screens display.
//
// A Store is constructed once from a loader and an accessor and handed to
// whatever front end needs it. State is only changed through the Store's
// operations. Each operation is one atomic transition; subscribers are told
// about it synchronously, after the transition completes, with a copy of the
// new State.
//
// Screen transitions:
//
//	login --Login()--> home
//	home|updates|details|info|... --Navigate(s)--> s   (logged in only)
//	any --Logout()--> login
//
// SwitchVendor replaces every vendor-derived snapshot and clears the
// selection but leaves authentication and the current screen alone; it is
// normally used from the login screen, before authentication.
package store
