// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output filters, sorts and renders result sets as text tables, json
// or yaml, and lists the attributes of item types for --schema.
package output
