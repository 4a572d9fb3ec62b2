// radar/store.go
// Copyright(c) 2026 radarview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

import (
	"log/slog"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/avionix/radarview/log"
	"github.com/avionix/radarview/math"
	"github.com/avionix/radarview/renderer"
	"github.com/brunoga/deep"
)

// Object is the record kept for one displayed object. All fields exist
// on every record regardless of type; Area is only meaningful for
// area-type objects and Altitude is not meaningful for them. An Altitude
// of NaN suppresses the object's altitude indicator.
type Object struct {
	Type     ObjectType
	Position math.Point2LL
	Color    renderer.RGBA
	Area     [2]float32
	Altitude float32
	Visible  bool
}

func (o *Object) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", o.Type.String()),
		slog.String("position", o.Position.DDString()),
		slog.Bool("visible", o.Visible))
}

// objectStore owns the authoritative identifier-indexed object
// collection. Identifiers are case-sensitive and unique; insertion order
// carries no meaning. All operations report failure through their return
// value and leave the store untouched when they fail.
type objectStore struct {
	objects map[string]*Object
	lg      *log.Logger
}

func newObjectStore(lg *log.Logger) *objectStore {
	return &objectStore{
		objects: make(map[string]*Object),
		lg:      lg,
	}
}

// Add inserts obj under id; it fails if id is already present.
func (s *objectStore) Add(id string, obj *Object) bool {
	if _, ok := s.objects[id]; ok {
		s.lg.Debug("add rejected", slog.String("id", id), slog.Any("error", ErrDuplicateIdentifier))
		return false
	}
	s.objects[id] = obj
	return true
}

// Remove deletes the entry for id; it fails if id is absent.
func (s *objectStore) Remove(id string) bool {
	if _, ok := s.objects[id]; !ok {
		return false
	}
	delete(s.objects, id)
	return true
}

// Clear removes all entries and returns how many there were.
func (s *objectStore) Clear() int {
	n := len(s.objects)
	clear(s.objects)
	return n
}

// Lookup returns the record for id. The returned handle is only valid
// until the next structural mutation (Add/Remove/Clear/Rename) of the
// store; callers must not retain it across one.
func (s *objectStore) Lookup(id string) (*Object, bool) {
	obj, ok := s.objects[id]
	return obj, ok
}

// Rename re-keys the record at old under new. The record is copied under
// the new identifier and then the old entry is removed, so the operation
// is atomic from the caller's perspective: on failure the store is
// unchanged, and on success old handles to the record are dead.
func (s *objectStore) Rename(old, new string) bool {
	obj, ok := s.objects[old]
	if !ok {
		s.lg.Debug("rename rejected", slog.String("id", old), slog.Any("error", ErrNoSuchObject))
		return false
	}
	if _, ok := s.objects[new]; ok {
		s.lg.Debug("rename rejected", slog.String("id", new), slog.Any("error", ErrDuplicateIdentifier))
		return false
	}

	s.objects[new] = deep.MustCopy(obj)
	delete(s.objects, old)
	return true
}

func (s *objectStore) Len() int {
	return len(s.objects)
}

// Ids returns the live identifiers in sorted order.
func (s *objectStore) Ids() []string {
	ids := maps.Keys(s.objects)
	slices.Sort(ids)
	return ids
}

func (s *objectStore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("len", len(s.objects)),
		slog.Any("ids", s.Ids()))
}
