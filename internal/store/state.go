// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"slices"

	"github.com/vshell/vshell/internal/accessor"
	"github.com/vshell/vshell/internal/vendor"
)

// AppVersion is reported on the app version screen.
const AppVersion = "1.0.0"

// State is the application state. Values handed out by the Store are copies;
// changing them has no effect on the Store.
type State struct {
	LoggedIn      bool          `json:"isLoggedIn"`
	CurrentScreen vendor.Screen `json:"currentScreen"`
	DrawerOpen    bool          `json:"drawerOpen"`
	SelectedItem  vendor.Item   `json:"selectedItem"`

	VendorID         string                 `json:"vendorId"`
	VendorType       vendor.Type            `json:"vendorType"`
	AdminName        string                 `json:"adminName"`
	OrganisationName string                 `json:"organisationName"`
	AppVersion       string                 `json:"appVersion"`
	Theme            vendor.Theme           `json:"theme"`
	Tabs             []vendor.Tab           `json:"tabs"`
	Items            []vendor.Item          `json:"items"`
	Drawer           []accessor.DrawerEntry `json:"drawer"`
}

// clone returns a copy of s that shares no slices with it.
func (s State) clone() State {
	s.Tabs = slices.Clone(s.Tabs)
	s.Items = slices.Clone(s.Items)
	s.Drawer = slices.Clone(s.Drawer)
	return s
}

// withVendor replaces every vendor-derived field of s from v and clears the
// selection, which is only meaningful within one tenant.
func (s State) withVendor(id string, v accessor.View) State {
	s.VendorID = id
	s.VendorType = v.Vendor.Type
	s.AdminName = v.Home.AdminName
	s.OrganisationName = v.Home.OrganisationName
	s.Theme = v.Theme
	s.Tabs = v.Tabs
	s.Items = v.Details.Items
	s.Drawer = v.Drawer
	s.SelectedItem = nil
	return s
}

// initialState is the state of a fresh process: logged out on the login
// screen with the drawer closed and nothing selected.
func initialState() State {
	return State{
		CurrentScreen: vendor.ScreenLogin,
		AppVersion:    AppVersion,
	}
}

// HasItem reports whether item belongs to the state's item collection.
func (s State) HasItem(item vendor.Item) bool {
	return slices.ContainsFunc(s.Items, func(it vendor.Item) bool {
		return vendor.SameItem(it, item)
	})
}
