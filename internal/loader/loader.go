// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"sync"
	"sync/atomic"

	"github.com/apex/log"

	"github.com/vshell/vshell/internal/shellerr"
	"github.com/vshell/vshell/internal/vendor"
)

// Loader parses catalog documents and tracks the active one.
type Loader struct {
	catalog *Catalog

	// mu serializes parsing and activation so two loads never race to decide
	// the active configuration.
	mu     sync.Mutex
	parsed map[string]*vendor.Config

	active atomic.Pointer[activeConfig]
}

type activeConfig struct {
	id  string
	cfg *vendor.Config
}

// New returns a Loader over catalog with nothing active.
func New(catalog *Catalog) *Loader {
	return &Loader{
		catalog: catalog,
		parsed:  map[string]*vendor.Config{},
	}
}

// Catalog returns the loader's catalog.
func (l *Loader) Catalog() *Catalog {
	return l.catalog
}

// Load resolves id and makes it the active configuration. Loading the same id
// again returns the same *vendor.Config. On error the active configuration is
// unchanged.
func (l *Loader) Load(id string) (*vendor.Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cfg, err := l.resolveLocked(id)
	if err != nil {
		log.WithError(err).Errorf("load %s failed", id)
		return nil, err
	}

	prev := l.active.Swap(&activeConfig{id: id, cfg: cfg})
	if prev != nil && prev.id != id {
		log.Infof("active vendor %s -> %s", prev.id, id)
	} else {
		log.Debugf("active vendor %s", id)
	}
	return cfg, nil
}

// Resolve parses id without activating it.
func (l *Loader) Resolve(id string) (*vendor.Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.resolveLocked(id)
}

func (l *Loader) resolveLocked(id string) (*vendor.Config, error) {
	if cfg, ok := l.parsed[id]; ok {
		log.Debugf("parsed cache hit: id=%s", id)
		return cfg, nil
	}

	raw, ok := l.catalog.Raw(id)
	if !ok {
		return nil, shellerr.New(shellerr.CodeConfigNotFound,
			"no configuration for vendor %q (known: %v)", id, l.catalog.IDs())
	}

	cfg, err := vendor.Parse(id, raw)
	if err != nil {
		return nil, err
	}
	l.parsed[id] = cfg
	log.Debugf("parsed vendor %s: type=%s items=%d", id, cfg.Vendor.Type, len(cfg.Screens.Details.Items))
	return cfg, nil
}

// Active returns the active configuration.
func (l *Loader) Active() (*vendor.Config, error) {
	a := l.active.Load()
	if a == nil {
		return nil, shellerr.New(shellerr.CodeNoActiveConfig, "no vendor configuration has been loaded")
	}
	return a.cfg, nil
}

// ActiveID returns the id of the active configuration, or "" when none.
func (l *Loader) ActiveID() string {
	a := l.active.Load()
	if a == nil {
		return ""
	}
	return a.id
}
