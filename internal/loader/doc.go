// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package loader resolves vendor identifiers to parsed vendor documents and
// holds the single active configuration of the process.
//
// The set of vendors is closed and compiled in: the JSONC documents under
// vendors/ are embedded into the binary and exposed through a Catalog.
// Loading is synchronous. A successful Load swaps the active configuration
// in one atomic step; a failed Load leaves the previous one active.
package loader
