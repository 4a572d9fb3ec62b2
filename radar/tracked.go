// radar/tracked.go
// Copyright(c) 2026 radarview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

// trackedRef is the single optional reference to the object of interest
// for auxiliary overlays. It holds the object's identifier rather than a
// record handle, so it can never dangle; the store is consulted on every
// change that could invalidate it. The maintenance hooks below are called
// synchronously by the facade as part of the corresponding store
// mutation, before control returns to the caller.
type trackedRef struct {
	id string
	ok bool
}

// Set points the reference at id if it names a live store entry. A
// request for an unknown id is a no-op: it does not clear an existing
// valid reference.
func (t *trackedRef) Set(id string, store *objectStore) {
	if _, ok := store.Lookup(id); !ok {
		return
	}
	t.id, t.ok = id, true
}

func (t *trackedRef) Get() (string, bool) {
	return t.id, t.ok
}

func (t *trackedRef) Clear() {
	t.id, t.ok = "", false
}

// objectRemoved clears the reference if the removed object was tracked.
func (t *trackedRef) objectRemoved(id string) {
	if t.ok && t.id == id {
		t.Clear()
	}
}

// objectRenamed follows a rename of the tracked object to its new
// identifier; the tracked object itself hasn't changed. Tracking never
// migrates to a different object on its own.
func (t *trackedRef) objectRenamed(old, new string) {
	if t.ok && t.id == old {
		t.id = new
	}
}
