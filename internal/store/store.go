// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"slices"
	"sync"

	"github.com/apex/log"
	"github.com/google/uuid"

	"github.com/vshell/vshell/internal/accessor"
	"github.com/vshell/vshell/internal/shellerr"
	"github.com/vshell/vshell/internal/vendor"
)

// Loader activates vendor configurations. *loader.Loader satisfies it.
type Loader interface {
	Load(id string) (*vendor.Config, error)
}

// Store holds the application state and is its only writer.
type Store struct {
	loader Loader

	// mu serializes operations, including the loader call in SwitchVendor.
	mu    sync.Mutex
	state State
	subs  []*Subscription

	// pending holds committed states not yet delivered, in commit order.
	// One goroutine at a time drains it; delivering is true while it does.
	pending    []delivery
	delivering bool
}

type delivery struct {
	snap State
	subs []*Subscription
}

// Subscription is a registered state listener.
type Subscription struct {
	ID    uuid.UUID
	fn    func(State)
	store *Store
}

// Cancel removes the subscription. It is safe to call more than once.
func (sub *Subscription) Cancel() {
	s := sub.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = slices.DeleteFunc(s.subs, func(other *Subscription) bool {
		return other.ID == sub.ID
	})
}

// New builds a Store from the configuration currently active in acc. It fails
// with shellerr.ErrNoActiveConfig when nothing has been loaded yet.
func New(l Loader, acc *accessor.Accessor) (*Store, error) {
	v, err := acc.View()
	if err != nil {
		return nil, err
	}
	st := initialState().withVendor(v.Vendor.ID, v)
	log.Debugf("store created: vendor=%s type=%s", st.VendorID, st.VendorType)
	return &Store{loader: l, state: st}, nil
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn to receive the new state after every successful
// operation. fn runs after the Store has released its lock, so it may call
// back into the Store. States arrive in the order they were committed; when
// operations overlap, the goroutine already delivering hands over the later
// states too.
func (s *Store) Subscribe(fn func(State)) *Subscription {
	sub := &Subscription{ID: uuid.New(), fn: fn, store: s}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, sub)
	return sub
}

// apply runs one transition. On error nothing changes and nobody is told.
func (s *Store) apply(op string, fn func(State) (State, error)) error {
	s.mu.Lock()
	prev := s.state
	next, err := fn(prev)
	if err != nil {
		s.mu.Unlock()
		log.WithError(err).Debugf("%s rejected", op)
		return err
	}
	s.state = next
	s.pending = append(s.pending, delivery{snap: next.clone(), subs: slices.Clone(s.subs)})
	drain := !s.delivering
	s.delivering = true
	s.mu.Unlock()

	log.Debugf("%s: screen %s->%s loggedIn=%t drawer=%t vendor=%s",
		op, prev.CurrentScreen, next.CurrentScreen, next.LoggedIn, next.DrawerOpen, next.VendorID)

	if drain {
		s.deliver()
	}
	return nil
}

// deliver hands pending states to their subscribers until the queue is empty.
func (s *Store) deliver() {
	defer func() {
		if r := recover(); r != nil {
			s.mu.Lock()
			s.pending = nil
			s.delivering = false
			s.mu.Unlock()
			panic(r)
		}
	}()
	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.delivering = false
			s.mu.Unlock()
			return
		}
		d := s.pending[0]
		s.pending = s.pending[1:]
		s.mu.Unlock()

		for _, sub := range d.subs {
			sub.fn(d.snap.clone())
		}
	}
}

// Login marks the session authenticated and shows the home screen.
// Credentials are checked by the caller.
func (s *Store) Login() {
	_ = s.apply("login", func(st State) (State, error) {
		st.LoggedIn = true
		st.CurrentScreen = vendor.ScreenHome
		return st, nil
	})
}

// Logout ends the session: back to login, drawer closed, selection cleared.
func (s *Store) Logout() {
	_ = s.apply("logout", func(st State) (State, error) {
		return loggedOut(st), nil
	})
}

func loggedOut(st State) State {
	st.LoggedIn = false
	st.CurrentScreen = vendor.ScreenLogin
	st.SelectedItem = nil
	st.DrawerOpen = false
	return st
}

// Navigate makes screen the current screen. While logged out only the login
// screen may be reached. The drawer is left as it is.
func (s *Store) Navigate(screen vendor.Screen) error {
	return s.apply("navigate", func(st State) (State, error) {
		return navigate(st, screen)
	})
}

func navigate(st State, screen vendor.Screen) (State, error) {
	if !screen.Valid() {
		return st, shellerr.New(shellerr.CodeUnknownScreen, "unknown screen %q", screen)
	}
	if !st.LoggedIn && screen != vendor.ScreenLogin {
		return st, shellerr.New(shellerr.CodeNotAuthenticated, "login required to open %s", screen)
	}
	st.CurrentScreen = screen
	return st, nil
}

// SelectItem selects item, or clears the selection when item is nil. The
// item must belong to the active vendor's collection; the stored selection
// is the collection's own record.
func (s *Store) SelectItem(item vendor.Item) error {
	return s.apply("selectItem", func(st State) (State, error) {
		if item == nil {
			st.SelectedItem = nil
			return st, nil
		}
		idx := slices.IndexFunc(st.Items, func(it vendor.Item) bool {
			return vendor.SameItem(it, item)
		})
		if idx < 0 {
			return st, shellerr.New(shellerr.CodeUnknownItem,
				"item %q (%s) is not part of vendor %s", item.ItemID(), item.VendorType(), st.VendorID)
		}
		st.SelectedItem = st.Items[idx]
		return st, nil
	})
}

// ToggleDrawer opens a closed drawer and closes an open one.
func (s *Store) ToggleDrawer() {
	_ = s.apply("toggleDrawer", func(st State) (State, error) {
		st.DrawerOpen = !st.DrawerOpen
		return st, nil
	})
}

// CloseDrawer closes the drawer.
func (s *Store) CloseDrawer() {
	_ = s.apply("closeDrawer", func(st State) (State, error) {
		st.DrawerOpen = false
		return st, nil
	})
}

// SwitchVendor activates vendor id and replaces every vendor-derived value.
// The selection is cleared; authentication and the current screen are kept.
// On error the state is unchanged.
func (s *Store) SwitchVendor(id string) error {
	return s.apply("switchVendor", func(st State) (State, error) {
		cfg, err := s.loader.Load(id)
		if err != nil {
			return st, err
		}
		return st.withVendor(cfg.Vendor.ID, accessor.Project(cfg)), nil
	})
}

// ActivateMenuEntry performs a drawer selection as one transition: the
// logout action logs out, a screen entry navigates, and the drawer closes.
// Disabled entries and entries not in the active drawer change nothing.
func (s *Store) ActivateMenuEntry(entry vendor.MenuEntry) error {
	return s.apply("activateMenuEntry", func(st State) (State, error) {
		idx := slices.IndexFunc(st.Drawer, func(e accessor.DrawerEntry) bool {
			return e.ID == entry.ID
		})
		if idx < 0 {
			return st, shellerr.New(shellerr.CodeMenuEntryDisabled,
				"menu entry %q is not part of vendor %s", entry.ID, st.VendorID)
		}
		own := st.Drawer[idx]
		if own.Disabled {
			return st, shellerr.New(shellerr.CodeMenuEntryDisabled, "menu entry %q is disabled", own.ID)
		}

		var err error
		switch {
		case own.Action == vendor.ActionLogout:
			st = loggedOut(st)
		case own.Screen != "":
			if st, err = navigate(st, own.Screen); err != nil {
				return st, err
			}
		}
		st.DrawerOpen = false
		return st, nil
	})
}

// SelectTab navigates to the screen of a tab of the active vendor.
func (s *Store) SelectTab(tab vendor.Tab) error {
	return s.apply("selectTab", func(st State) (State, error) {
		idx := slices.IndexFunc(st.Tabs, func(t vendor.Tab) bool {
			return t.ID == tab.ID
		})
		if idx < 0 {
			return st, shellerr.New(shellerr.CodeUnknownScreen,
				"tab %q is not part of vendor %s", tab.ID, st.VendorID)
		}
		return navigate(st, st.Tabs[idx].Screen)
	})
}

// Route returns the frame to render for the current state.
func (s *Store) Route() Frame {
	return Route(s.Snapshot())
}
