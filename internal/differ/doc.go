// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ renders structural differences between two vendor
// configurations and offers a terminal picker to choose the pair.
package differ
