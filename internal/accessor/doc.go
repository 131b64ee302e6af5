// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package accessor is the read-only query facade over the active vendor
// configuration. Every call reads the loader's active configuration at call
// time; nothing is cached, so a query never reflects a superseded document.
package accessor
