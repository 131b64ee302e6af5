// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"embed"
	"maps"
	"path"
	"slices"
	"strings"
)

//go:embed vendors/*.jsonc
var bundled embed.FS

// docExt is the extension of bundled vendor documents.
const docExt = ".jsonc"

// Catalog is a closed set of raw vendor documents keyed by vendor id.
type Catalog struct {
	docs map[string][]byte
}

// NewCatalog builds a catalog from raw documents. It is mostly useful in
// tests; the binary uses Bundled.
func NewCatalog(docs map[string][]byte) *Catalog {
	return &Catalog{docs: maps.Clone(docs)}
}

// Bundled returns the catalog of documents compiled into the binary.
func Bundled() *Catalog {
	entries, err := bundled.ReadDir("vendors")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}

	docs := make(map[string][]byte, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, docExt) {
			continue
		}
		data, err := bundled.ReadFile(path.Join("vendors", name))
		if err != nil {
			panic(err)
		}
		docs[strings.TrimSuffix(name, docExt)] = data
	}
	return &Catalog{docs: docs}
}

// IDs returns the vendor ids in sorted order.
func (c *Catalog) IDs() []string {
	return slices.Sorted(maps.Keys(c.docs))
}

// Has reports whether id is in the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.docs[id]
	return ok
}

// Raw returns the raw document for id.
func (c *Catalog) Raw(id string) ([]byte, bool) {
	data, ok := c.docs[id]
	if !ok {
		return nil, false
	}
	return slices.Clone(data), true
}
