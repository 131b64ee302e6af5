// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package accessor

import (
	"slices"

	"github.com/vshell/vshell/internal/shellerr"
	"github.com/vshell/vshell/internal/vendor"
)

// Source provides the active configuration. *loader.Loader satisfies it.
type Source interface {
	Active() (*vendor.Config, error)
}

// Accessor projects the active configuration.
type Accessor struct {
	src Source
}

// New returns an Accessor reading from src.
func New(src Source) *Accessor {
	return &Accessor{src: src}
}

// DrawerEntry is a menu entry as the drawer shows it.
type DrawerEntry struct {
	vendor.MenuEntry
	Disabled bool `json:"disabled"`
}

// View is every projection of one configuration, taken at once.
type View struct {
	Vendor  vendor.Info          `json:"vendor"`
	Theme   vendor.Theme         `json:"theme"`
	Tabs    []vendor.Tab         `json:"tabs"`
	Home    vendor.HomeScreen    `json:"home"`
	Updates vendor.UpdatesScreen `json:"updates"`
	Details vendor.DetailsScreen `json:"details"`
	Info    vendor.InfoScreen    `json:"info"`
	Drawer  []DrawerEntry        `json:"drawer"`
}

// Project builds a View of cfg. Slices are copies.
func Project(cfg *vendor.Config) View {
	return View{
		Vendor:  cfg.Vendor,
		Theme:   cfg.Vendor.Theme,
		Tabs:    slices.Clone(cfg.Tabs),
		Home:    home(cfg),
		Updates: updates(cfg),
		Details: details(cfg),
		Info:    info(cfg),
		Drawer:  drawerEntries(cfg),
	}
}

// View returns a View of the active configuration.
func (a *Accessor) View() (View, error) {
	cfg, err := a.src.Active()
	if err != nil {
		return View{}, err
	}
	return Project(cfg), nil
}

// Theme returns the vendor's color palette.
func (a *Accessor) Theme() (vendor.Theme, error) {
	cfg, err := a.src.Active()
	if err != nil {
		return vendor.Theme{}, err
	}
	return cfg.Vendor.Theme, nil
}

// Tabs returns the tab bar entries in order.
func (a *Accessor) Tabs() ([]vendor.Tab, error) {
	cfg, err := a.src.Active()
	if err != nil {
		return nil, err
	}
	return slices.Clone(cfg.Tabs), nil
}

// ScreenData returns the data of one of the document-backed screens: a
// vendor.HomeScreen, vendor.UpdatesScreen, vendor.DetailsScreen or
// vendor.InfoScreen.
func (a *Accessor) ScreenData(name vendor.Screen) (any, error) {
	cfg, err := a.src.Active()
	if err != nil {
		return nil, err
	}
	switch name {
	case vendor.ScreenHome:
		return home(cfg), nil
	case vendor.ScreenUpdates:
		return updates(cfg), nil
	case vendor.ScreenDetails:
		return details(cfg), nil
	case vendor.ScreenInfo:
		return info(cfg), nil
	}
	return nil, shellerr.New(shellerr.CodeUnknownScreen, "screen %q has no configuration data", name)
}

// Home returns the home screen data.
func (a *Accessor) Home() (vendor.HomeScreen, error) {
	cfg, err := a.src.Active()
	if err != nil {
		return vendor.HomeScreen{}, err
	}
	return home(cfg), nil
}

// Updates returns the updates screen data.
func (a *Accessor) Updates() (vendor.UpdatesScreen, error) {
	cfg, err := a.src.Active()
	if err != nil {
		return vendor.UpdatesScreen{}, err
	}
	return updates(cfg), nil
}

// Details returns the details screen data.
func (a *Accessor) Details() (vendor.DetailsScreen, error) {
	cfg, err := a.src.Active()
	if err != nil {
		return vendor.DetailsScreen{}, err
	}
	return details(cfg), nil
}

// Info returns the info screen data.
func (a *Accessor) Info() (vendor.InfoScreen, error) {
	cfg, err := a.src.Active()
	if err != nil {
		return vendor.InfoScreen{}, err
	}
	return info(cfg), nil
}

// Items returns the details collection.
func (a *Accessor) Items() ([]vendor.Item, error) {
	cfg, err := a.src.Active()
	if err != nil {
		return nil, err
	}
	return slices.Clone(cfg.Screens.Details.Items), nil
}

// DrawerMenuItems returns freshly built drawer entries, with entries that
// neither navigate nor log out marked disabled.
func (a *Accessor) DrawerMenuItems() ([]DrawerEntry, error) {
	cfg, err := a.src.Active()
	if err != nil {
		return nil, err
	}
	return drawerEntries(cfg), nil
}

// VendorType returns the active vendor's type.
func (a *Accessor) VendorType() (vendor.Type, error) {
	cfg, err := a.src.Active()
	if err != nil {
		return "", err
	}
	return cfg.Vendor.Type, nil
}

// VendorInfo returns the active vendor's identity and theme.
func (a *Accessor) VendorInfo() (vendor.Info, error) {
	cfg, err := a.src.Active()
	if err != nil {
		return vendor.Info{}, err
	}
	return cfg.Vendor, nil
}

func home(cfg *vendor.Config) vendor.HomeScreen {
	h := cfg.Screens.Home
	h.QuickAccessItems = slices.Clone(h.QuickAccessItems)
	return h
}

func updates(cfg *vendor.Config) vendor.UpdatesScreen {
	u := cfg.Screens.Updates
	u.Updates = slices.Clone(u.Updates)
	return u
}

func details(cfg *vendor.Config) vendor.DetailsScreen {
	d := cfg.Screens.Details
	d.Items = slices.Clone(d.Items)
	return d
}

func info(cfg *vendor.Config) vendor.InfoScreen {
	i := cfg.Screens.Info
	i.Facilities = slices.Clone(i.Facilities)
	i.Services = slices.Clone(i.Services)
	return i
}

func drawerEntries(cfg *vendor.Config) []DrawerEntry {
	entries := make([]DrawerEntry, 0, len(cfg.Drawer.MenuItems))
	for _, e := range cfg.Drawer.MenuItems {
		entries = append(entries, DrawerEntry{MenuEntry: e, Disabled: !e.Enabled()})
	}
	return entries
}
