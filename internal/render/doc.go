// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package render holds the per-vendor-type presentation table: which item
// attributes a screen shows, how they are labelled and formatted, and the
// wording of the info screen. Screens look up the Layout for the active
// vendor type instead of branching on it.
package render
