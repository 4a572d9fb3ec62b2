// radar/radar.go
// Copyright(c) 2026 radarview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package radar implements the object radar display core: a widget that
// plots named objects (vehicles, people, markers, paths, areas) relative
// to a movable center point, for remote-control and cockpit-style
// instrumentation. The embedding shell owns the window and the actual
// rasterization; this package owns the authoritative display state, the
// validated property interface through which it is read and written, the
// derived render resources, and the periodic redraw cadence.
package radar

import (
	"log/slog"
	"sync"

	"github.com/avionix/radarview/log"
	"github.com/avionix/radarview/math"
	"github.com/avionix/radarview/renderer"
)

// viewState holds the view-wide settings, owned exclusively by
// ObjectRadar and mutated only through validated property writes. Fields
// are exported for snapshot serialization.
type viewState struct {
	AutoUpdate       bool
	UpdateRate       float32       // redraws per second
	Center           math.Point2LL // {lat, long} of the radar center
	Altitude         float32       // meters above sea level
	Range            [2]float32    // {min, max} meters from the center
	Foreground       renderer.RGBA
	Background       renderer.RGBA
	StaticTextFont   renderer.FontSpec
	OutsideLabelFont renderer.FontSpec
	ObjectLabelFont  renderer.FontSpec
	AreaFillOpacity  int
	OutlineWidth     int
	OutlineStyle     LineStyle
}

func defaultViewState() viewState {
	font := func(pt int) renderer.FontSpec {
		return renderer.FontSpec{Family: renderer.B612Mono, PointSize: pt, Weight: -1}
	}
	return viewState{
		UpdateRate:       30,
		Range:            [2]float32{5, 35},
		Foreground:       renderer.RGBFromUInt8(160, 160, 160).WithAlpha(1),
		Background:       renderer.RGBA{A: 1},
		StaticTextFont:   font(10),
		OutsideLabelFont: font(8),
		ObjectLabelFont:  font(10),
		AreaFillOpacity:  160,
		OutlineWidth:     1,
		OutlineStyle:     LineStyleSolid,
	}
}

// ObjectSprite is the prepared plot for one object, handed to the paint
// target: position is already resolved to distance and bearing from the
// radar center.
type ObjectSprite struct {
	Identifier string
	Type       ObjectType
	Distance   float32 // meters from the radar center
	Bearing    float32 // degrees, 0 = north
	// Altitude relative to the radar center in meters; NaN means the
	// altitude indicator is suppressed for this object.
	RelativeAltitude float32
	Color            renderer.RGBA
	Tracked          bool
}

// PaintTarget receives the contents of one frame. Implementations do the
// actual pixel or cell drawing; the widget guarantees calls arrive in
// back-to-front order: background, backdrops, then sprites.
type PaintTarget interface {
	FillBackground(c renderer.RGBA)
	Backdrop(kind ResourceKind, b *renderer.Backdrop)
	Sprite(s ObjectSprite, label *renderer.Font)
}

// ObjectRadar is the radar widget's public surface. All reads and writes
// of both view-wide settings and per-object attributes are routed through
// its validated property interface; redraws read state but never mutate
// it.
//
// A single mutex serializes property writes, object mutations, and
// painting: a write and its cache invalidation are one critical section,
// so a repaint can never observe one without the other, and structural
// store mutations complete (tracked-reference maintenance included)
// before the mutex is released.
type ObjectRadar struct {
	mu      sync.Mutex
	dim     [2]int // widget dimensions in pixels, width x height
	view    viewState
	store   *objectStore
	tracked trackedRef
	cache   *renderCache
	sched   *scheduler
	events  *EventStream
	redraw  func()
	lg      *log.Logger
}

// New creates an object radar with the given pixel dimensions. The
// widget starts with default view settings, no objects, and its redraw
// scheduler stopped; call Start once a redraw handler is set.
func New(width, height int, lg *log.Logger) *ObjectRadar {
	r := &ObjectRadar{
		dim:    [2]int{width, height},
		view:   defaultViewState(),
		store:  newObjectStore(lg),
		cache:  newRenderCache(lg),
		events: NewEventStream(lg),
		lg:     lg,
	}
	r.sched = newScheduler(r.view.UpdateRate, r.requestRedraw, lg)
	return r
}

// Events returns the widget's outbound notification stream.
func (r *ObjectRadar) Events() *EventStream {
	return r.events
}

// SetRedrawHandler installs the host's repaint hook; it is invoked once
// per scheduler tick and after successful writes when AutoUpdate is on.
func (r *ObjectRadar) SetRedrawHandler(redraw func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.redraw = redraw
}

// Start begins periodic redraw requests at the UpdateRate property's
// cadence.
func (r *ObjectRadar) Start() {
	r.sched.start()
}

// Stop halts periodic redraw requests; idempotent.
func (r *ObjectRadar) Stop() {
	r.sched.stop()
}

func (r *ObjectRadar) requestRedraw() {
	r.mu.Lock()
	redraw := r.redraw
	r.mu.Unlock()

	if redraw != nil {
		redraw()
	}
}

///////////////////////////////////////////////////////////////////////////
// Object management

// AddObject adds an object with the given unique identifier, type, and
// initial position and altitude. It fails if the type is unknown or an
// object with the identifier already exists. Altitude NaN is accepted:
// it suppresses the altitude indicator for this object.
func (r *ObjectRadar) AddObject(id string, typ ObjectType, pos math.Point2LL, alt float32) bool {
	r.mu.Lock()

	if typ < 0 || typ >= NumObjectTypes {
		r.mu.Unlock()
		r.lg.Debug("add rejected", slog.String("id", id), slog.Int("type", int(typ)))
		return false
	}

	obj := &Object{
		Type:     typ,
		Position: pos,
		Color:    r.view.Foreground,
		Altitude: alt,
		Visible:  true,
	}
	if !r.store.Add(id, obj) {
		r.mu.Unlock()
		return false
	}

	r.events.Post(Event{Type: ObjectAddedEvent, Identifier: id})
	auto := r.view.AutoUpdate
	r.mu.Unlock()

	if auto {
		r.requestRedraw()
	}
	return true
}

// RemoveObject removes the object with the given identifier; if it was
// the tracked object, tracking is cleared.
func (r *ObjectRadar) RemoveObject(id string) bool {
	r.mu.Lock()

	if !r.store.Remove(id) {
		r.mu.Unlock()
		return false
	}
	r.tracked.objectRemoved(id)

	r.events.Post(Event{Type: ObjectRemovedEvent, Identifier: id})
	auto := r.view.AutoUpdate
	r.mu.Unlock()

	if auto {
		r.requestRedraw()
	}
	return true
}

// RemoveAllObjects removes every object and clears tracking. With no
// objects present it does nothing.
func (r *ObjectRadar) RemoveAllObjects() {
	r.mu.Lock()

	if r.store.Clear() == 0 {
		r.mu.Unlock()
		return
	}
	r.tracked.Clear()

	r.events.Post(Event{Type: ObjectRemovedEvent})
	auto := r.view.AutoUpdate
	r.mu.Unlock()

	if auto {
		r.requestRedraw()
	}
}

// HasObject reports whether an object with the given identifier exists;
// identifiers match exactly, case included.
func (r *ObjectRadar) HasObject(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.store.Lookup(id)
	return ok
}

func (r *ObjectRadar) NumObjects() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Len()
}

///////////////////////////////////////////////////////////////////////////
// Tracked object

// SetTrackedObject designates the object with the given identifier as
// the reference point for auxiliary overlays. If no such object exists
// the call is a no-op; it does not disturb existing tracking.
func (r *ObjectRadar) SetTrackedObject(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tracked.Set(id, r.store)
}

// GetTrackedObject returns the tracked object's identifier, if any.
func (r *ObjectRadar) GetTrackedObject() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tracked.Get()
}

///////////////////////////////////////////////////////////////////////////
// View properties

// GetViewProperty returns the value of a view-wide property, or the
// invalid Value if prop isn't a readable view property.
func (r *ObjectRadar) GetViewProperty(prop Property) Value {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !KnownProperty(prop) || !prop.IsViewProperty() {
		return Value{}
	}

	switch prop {
	case AutoUpdate:
		return BoolValue(r.view.AutoUpdate)
	case UpdateRate:
		return FloatValue(r.view.UpdateRate)
	case RadarCenter:
		return PointValue(r.view.Center)
	case RadarAltitude:
		return FloatValue(r.view.Altitude)
	case RadarRange:
		return SizeValue(r.view.Range)
	case ForegroundColor:
		return ColorValue(r.view.Foreground)
	case BackgroundColor:
		return ColorValue(r.view.Background)
	case StaticTextFont:
		return FontValue(r.view.StaticTextFont)
	case OutsideLabelFont:
		return FontValue(r.view.OutsideLabelFont)
	case ObjectLabelFont:
		return FontValue(r.view.ObjectLabelFont)
	case AreaFillOpacity:
		return IntValue(r.view.AreaFillOpacity)
	case OutlineWidth:
		return IntValue(r.view.OutlineWidth)
	case OutlineStyle:
		return EnumValue(int(r.view.OutlineStyle))
	}
	return Value{}
}

// SetViewProperty updates a view-wide property after validating the
// value's type and range against the catalog. On success the dependent
// render resources are invalidated in the same critical section and a
// change event is posted.
func (r *ObjectRadar) SetViewProperty(prop Property, val Value) bool {
	r.mu.Lock()

	if err := r.checkViewWrite(prop, val); err != nil {
		r.mu.Unlock()
		r.lg.Debug("view property write rejected", slog.String("property", prop.String()),
			slog.Any("value", val), slog.Any("error", err))
		return false
	}

	switch prop {
	case AutoUpdate:
		r.view.AutoUpdate = val.Bool()
	case UpdateRate:
		r.view.UpdateRate = val.Float()
	case RadarCenter:
		r.view.Center = val.Point()
	case RadarAltitude:
		r.view.Altitude = val.Float()
	case RadarRange:
		r.view.Range = val.Size()
	case ForegroundColor:
		r.view.Foreground = val.Color()
	case BackgroundColor:
		r.view.Background = val.Color()
	case StaticTextFont:
		r.view.StaticTextFont = val.Font()
	case OutsideLabelFont:
		r.view.OutsideLabelFont = val.Font()
	case ObjectLabelFont:
		r.view.ObjectLabelFont = val.Font()
	case AreaFillOpacity:
		r.view.AreaFillOpacity = val.Int()
	case OutlineWidth:
		r.view.OutlineWidth = val.Int()
	case OutlineStyle:
		r.view.OutlineStyle = LineStyle(val.Enum())
	}

	r.cache.invalidate(prop)
	if prop == UpdateRate {
		r.sched.reconfigure(val.Float())
	}
	r.events.Post(Event{Type: ViewPropertyChangedEvent, Property: prop, Value: val})

	auto := r.view.AutoUpdate
	r.mu.Unlock()

	if auto {
		r.requestRedraw()
	}
	return true
}

func (r *ObjectRadar) checkViewWrite(prop Property, val Value) error {
	if !KnownProperty(prop) {
		return ErrUnknownProperty
	}
	if !prop.IsViewProperty() {
		return ErrScopeViolation
	}
	return checkPropertyValue(prop, val)
}

///////////////////////////////////////////////////////////////////////////
// Object properties

// GetObjectProperty returns the value of a property of the object with
// the given identifier, or the invalid Value if the object doesn't exist
// or prop isn't an object property.
func (r *ObjectRadar) GetObjectProperty(id string, prop Property) Value {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !KnownProperty(prop) || !prop.IsObjectProperty() {
		return Value{}
	}
	obj, ok := r.store.Lookup(id)
	if !ok {
		return Value{}
	}

	switch prop {
	case Identifier:
		return StringValue(id)
	case Type:
		return EnumValue(int(obj.Type))
	case Position:
		return PointValue(obj.Position)
	case Color:
		return ColorValue(obj.Color)
	case Area:
		return SizeValue(obj.Area)
	case Altitude:
		return FloatValue(obj.Altitude)
	case Visibility:
		return BoolValue(obj.Visible)
	}
	return Value{}
}

// SetObjectProperty updates a property of the object with the given
// identifier after catalog validation. Writing Identifier renames the
// object: the record is re-keyed atomically and, if it was tracked, the
// tracking follows the new identifier. Type-correct writes to fields the
// object's type doesn't use (say, Area on a vehicle) are accepted and
// stored; rendering ignores them.
func (r *ObjectRadar) SetObjectProperty(id string, prop Property, val Value) bool {
	r.mu.Lock()

	if err := r.checkObjectWrite(id, prop, val); err != nil {
		r.mu.Unlock()
		r.lg.Debug("object property write rejected", slog.String("id", id),
			slog.String("property", prop.String()), slog.Any("value", val), slog.Any("error", err))
		return false
	}

	if prop == Identifier {
		ok := r.renameObject(id, val.Text())
		auto := ok && r.view.AutoUpdate
		r.mu.Unlock()
		if auto {
			r.requestRedraw()
		}
		return ok
	}

	obj, _ := r.store.Lookup(id)
	switch prop {
	case Type:
		obj.Type = ObjectType(val.Enum())
	case Position:
		obj.Position = val.Point()
	case Color:
		obj.Color = val.Color()
	case Area:
		obj.Area = val.Size()
	case Altitude:
		obj.Altitude = val.Float()
	case Visibility:
		obj.Visible = val.Bool()
	}

	auto := r.view.AutoUpdate
	r.mu.Unlock()

	if auto {
		r.requestRedraw()
	}
	return true
}

func (r *ObjectRadar) checkObjectWrite(id string, prop Property, val Value) error {
	if !KnownProperty(prop) {
		return ErrUnknownProperty
	}
	if !prop.IsObjectProperty() {
		return ErrScopeViolation
	}
	if _, ok := r.store.Lookup(id); !ok {
		return ErrNoSuchObject
	}
	return checkPropertyValue(prop, val)
}

// renameObject re-keys an object and keeps the tracked reference and the
// shell consistent. The shell sees the rename as a removal of the old
// identifier followed by an addition of the new one.
func (r *ObjectRadar) renameObject(old, new string) bool {
	if !r.store.Rename(old, new) {
		return false
	}
	r.tracked.objectRenamed(old, new)

	r.events.Post(Event{Type: ObjectRemovedEvent, Identifier: old})
	r.events.Post(Event{Type: ObjectAddedEvent, Identifier: new})
	return true
}

///////////////////////////////////////////////////////////////////////////
// Painting

// Paint renders the current frame to the given target: background fill,
// the two cached backdrops, then one sprite per visible object within
// the display range. It is safe to call at any time after construction
// and never mutates display state; stale render resources encountered
// along the way are recomputed before use.
func (r *ObjectRadar) Paint(t PaintTarget) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.FillBackground(r.view.Background)
	t.Backdrop(BackdropCompass, r.cache.backdrop(BackdropCompass, &r.view, r.dim))
	t.Backdrop(BackdropRangeScale, r.cache.backdrop(BackdropRangeScale, &r.view, r.dim))

	label := r.cache.font(FontObjectLabel, &r.view)
	trackedId, isTracked := r.tracked.Get()
	for _, id := range r.store.Ids() {
		obj, _ := r.store.Lookup(id)
		if !obj.Visible {
			continue
		}
		d := math.DistanceMeters(r.view.Center, obj.Position)
		if d > r.view.Range[1] {
			continue
		}

		relAlt := math.NaN()
		if obj.Type != AreaObject && !math.IsNaN(obj.Altitude) {
			relAlt = obj.Altitude - r.view.Altitude
		}
		t.Sprite(ObjectSprite{
			Identifier:       id,
			Type:             obj.Type,
			Distance:         d,
			Bearing:          math.BearingDegrees(r.view.Center, obj.Position),
			RelativeAltitude: relAlt,
			Color:            obj.Color,
			Tracked:          isTracked && id == trackedId,
		}, label)
	}
}
