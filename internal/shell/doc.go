// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package shell is the terminal front end. It renders the frame the store
// routes to, styled with the active vendor's theme, and turns key presses
// into store operations.
//
// The model subscribes to the store. Since the store is only driven from
// Update, broadcasts are drained there right after each operation, so the
// next key press always sees the state it produced.
package shell
