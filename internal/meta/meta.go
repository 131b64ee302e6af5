// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/vshell/vshell/internal/config"
	"github.com/vshell/vshell/internal/loader"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded preferences, context, and the vendor catalog the commands read from.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	Catalog *loader.Catalog
}
