// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller resolves dot paths with list indexes against JSON
// documents. It backs attribute extraction for item rows and the get command.
package driller
