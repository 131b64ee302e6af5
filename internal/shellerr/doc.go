// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package shellerr defines the coded errors shared by the loader, accessor
// and store. Callers match them with errors.Is against the exported
// sentinels.
package shellerr
