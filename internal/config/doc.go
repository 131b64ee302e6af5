// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config loads vshell's user preferences: a YAML document named by
// VSHELL_CFG_FILE or found as vshell.yaml in the user's configuration
// directory, typically:
//   - Linux: $XDG_CONFIG_HOME/vshell.yaml or $HOME/.config/vshell.yaml
//   - macOS: $HOME/Library/Application Support/vshell.yaml
//   - Windows: %APPDATA%/vshell.yaml
//
// Keys are dotted paths such as "colors.title". Commands set
// Config.Namespace so "items.sort" is preferred over a plain "sort".
package config
