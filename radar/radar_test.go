// radar/radar_test.go
// Copyright(c) 2026 radarview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

import (
	"testing"

	"github.com/avionix/radarview/math"
	"github.com/avionix/radarview/renderer"
)

func TestViewPropertyRoundTrip(t *testing.T) {
	r := New(400, 400, nil)

	// defaults are readable before any write
	if got := r.GetViewProperty(UpdateRate).Float(); got != 30 {
		t.Errorf("default update rate: got %g, expected 30", got)
	}
	if got := r.GetViewProperty(RadarRange).Size(); got != [2]float32{5, 35} {
		t.Errorf("default range: got %v", got)
	}
	if r.GetViewProperty(AutoUpdate).Bool() {
		t.Errorf("auto update defaults on")
	}

	for prop, val := range map[Property]Value{
		UpdateRate:      FloatValue(12.5),
		RadarCenter:     PointValue(math.Point2LL{12, 55}),
		RadarAltitude:   FloatValue(120),
		RadarRange:      SizeValue([2]float32{10, 80}),
		ForegroundColor: ColorValue(renderer.RGBA{G: 1, A: 1}),
		AreaFillOpacity: IntValue(90),
		OutlineStyle:    EnumValue(int(LineStyleDashed)),
		StaticTextFont:  FontValue(renderer.FontSpec{Family: renderer.B612Regular, PointSize: 12}),
	} {
		if !r.SetViewProperty(prop, val) {
			t.Errorf("%s: write rejected", prop)
		}
		if got := r.GetViewProperty(prop); got != val {
			t.Errorf("%s: got %s, expected %s", prop, got, val)
		}
	}
}

func TestViewPropertyRejection(t *testing.T) {
	r := New(400, 400, nil)
	sub := r.Events().Subscribe()
	defer sub.Unsubscribe()

	before := r.GetViewProperty(UpdateRate)
	for _, tc := range []struct {
		prop Property
		val  Value
	}{
		{UpdateRate, FloatValue(500)},           // out of range
		{UpdateRate, IntValue(10)},              // wrong kind
		{UpdateRate, Value{}},                   // invalid value
		{NumProperties, FloatValue(10)},         // unknown id
		{Position, PointValue(math.Point2LL{})}, // object-scope property
	} {
		if r.SetViewProperty(tc.prop, tc.val) {
			t.Errorf("write of %s = %s succeeded", tc.prop, tc.val)
		}
	}

	if got := r.GetViewProperty(UpdateRate); got != before {
		t.Errorf("rejected writes changed the rate: %s", got)
	}
	if evs := sub.Get(); len(evs) != 0 {
		t.Errorf("rejected writes posted %d events", len(evs))
	}

	// reads honor scope too
	if r.GetViewProperty(Identifier).IsValid() {
		t.Errorf("object property readable through the view interface")
	}
}

func TestObjectLifecycle(t *testing.T) {
	r := New(400, 400, nil)
	sub := r.Events().Subscribe()
	defer sub.Unsubscribe()

	if !r.AddObject("HAWK1", VehicleObject, math.Point2LL{12, 55}, 120) {
		t.Fatalf("add failed")
	}
	if r.AddObject("HAWK1", PersonObject, math.Point2LL{}, 0) {
		t.Errorf("duplicate add succeeded")
	}
	if r.AddObject("BAD", NumObjectTypes, math.Point2LL{}, 0) {
		t.Errorf("add with unknown type succeeded")
	}
	if !r.HasObject("HAWK1") || r.HasObject("hawk1") {
		t.Errorf("identifier lookup is not exact-match")
	}

	// a new object is visible and carries the view foreground color
	if !r.GetObjectProperty("HAWK1", Visibility).Bool() {
		t.Errorf("new object not visible")
	}
	fg := r.GetViewProperty(ForegroundColor).Color()
	if got := r.GetObjectProperty("HAWK1", Color).Color(); got != fg {
		t.Errorf("new object color: got %v, expected foreground %v", got, fg)
	}

	evs := sub.Get()
	if len(evs) != 1 || evs[0].Type != ObjectAddedEvent || evs[0].Identifier != "HAWK1" {
		t.Errorf("add events: got %v", evs)
	}

	r.AddObject("HAWK2", VehicleObject, math.Point2LL{12, 55}, 80)
	if !r.RemoveObject("HAWK1") {
		t.Errorf("remove failed")
	}
	if r.RemoveObject("HAWK1") {
		t.Errorf("double remove succeeded")
	}
	sub.Get()

	r.RemoveAllObjects()
	if r.NumObjects() != 0 {
		t.Errorf("objects remain after RemoveAllObjects: %d", r.NumObjects())
	}
	evs = sub.Get()
	if len(evs) != 1 || evs[0].Type != ObjectRemovedEvent || evs[0].Identifier != "" {
		t.Errorf("remove-all events: got %v", evs)
	}

	// with nothing present, remove-all is silent
	r.RemoveAllObjects()
	if evs := sub.Get(); len(evs) != 0 {
		t.Errorf("empty remove-all posted %d events", len(evs))
	}
}

func TestObjectPropertyWrites(t *testing.T) {
	r := New(400, 400, nil)
	r.AddObject("HAWK1", VehicleObject, math.Point2LL{12, 55}, 120)

	if r.SetObjectProperty("missing", Altitude, FloatValue(10)) {
		t.Errorf("write to a missing object succeeded")
	}
	if r.SetObjectProperty("HAWK1", UpdateRate, FloatValue(10)) {
		t.Errorf("view property writable through the object interface")
	}
	if r.SetObjectProperty("HAWK1", Type, EnumValue(int(NumObjectTypes))) {
		t.Errorf("out-of-range type write succeeded")
	}

	// a type-correct write to a field the object's type doesn't use is
	// stored and readable
	if !r.SetObjectProperty("HAWK1", Area, SizeValue([2]float32{30, 40})) {
		t.Errorf("area write on a vehicle rejected")
	}
	if got := r.GetObjectProperty("HAWK1", Area).Size(); got != [2]float32{30, 40} {
		t.Errorf("area: got %v", got)
	}

	// the altitude sentinel round-trips
	if !r.SetObjectProperty("HAWK1", Altitude, FloatValue(math.NaN())) {
		t.Errorf("NaN altitude rejected")
	}
	if got := r.GetObjectProperty("HAWK1", Altitude).Float(); !math.IsNaN(got) {
		t.Errorf("altitude: got %g, expected NaN", got)
	}

	if got := r.GetObjectProperty("HAWK1", Identifier).Text(); got != "HAWK1" {
		t.Errorf("identifier read: got %q", got)
	}
	if r.GetObjectProperty("missing", Position).IsValid() {
		t.Errorf("read of a missing object returned a valid value")
	}
}

func TestObjectRename(t *testing.T) {
	r := New(400, 400, nil)
	r.AddObject("HAWK1", VehicleObject, math.Point2LL{12, 55}, 120)
	r.AddObject("HAWK2", VehicleObject, math.Point2LL{12, 55}, 80)
	r.SetTrackedObject("HAWK1")
	sub := r.Events().Subscribe()
	defer sub.Unsubscribe()

	// renaming onto a live identifier fails and changes nothing
	if r.SetObjectProperty("HAWK1", Identifier, StringValue("HAWK2")) {
		t.Errorf("rename onto a live identifier succeeded")
	}
	if !r.HasObject("HAWK1") {
		t.Errorf("failed rename lost the source object")
	}

	if !r.SetObjectProperty("HAWK1", Identifier, StringValue("EAGLE1")) {
		t.Fatalf("rename failed")
	}
	if r.HasObject("HAWK1") || !r.HasObject("EAGLE1") {
		t.Errorf("rename did not re-key the object")
	}
	if got := r.GetObjectProperty("EAGLE1", Altitude).Float(); got != 120 {
		t.Errorf("altitude lost across rename: %g", got)
	}
	if id, ok := r.GetTrackedObject(); !ok || id != "EAGLE1" {
		t.Errorf("tracking did not follow rename: %q, %v", id, ok)
	}

	// the shell sees a removal of the old name then an addition of the new
	evs := sub.Get()
	if len(evs) != 2 ||
		evs[0].Type != ObjectRemovedEvent || evs[0].Identifier != "HAWK1" ||
		evs[1].Type != ObjectAddedEvent || evs[1].Identifier != "EAGLE1" {
		t.Errorf("rename events: got %v", evs)
	}
}

func TestTrackedObjectFacade(t *testing.T) {
	r := New(400, 400, nil)
	r.AddObject("A1", VehicleObject, math.Point2LL{12, 55}, 0)

	if _, ok := r.GetTrackedObject(); ok {
		t.Errorf("fresh widget tracks an object")
	}
	r.SetTrackedObject("missing")
	if _, ok := r.GetTrackedObject(); ok {
		t.Errorf("tracking set to a missing object")
	}
	r.SetTrackedObject("A1")
	if id, ok := r.GetTrackedObject(); !ok || id != "A1" {
		t.Errorf("tracking: got %q, %v", id, ok)
	}

	r.RemoveObject("A1")
	if _, ok := r.GetTrackedObject(); ok {
		t.Errorf("tracking survived removal")
	}
}

func TestAutoUpdateRedraw(t *testing.T) {
	r := New(400, 400, nil)
	redraws := 0
	r.SetRedrawHandler(func() { redraws++ })

	// with auto update off, writes don't repaint
	r.SetViewProperty(RadarAltitude, FloatValue(50))
	r.AddObject("A1", VehicleObject, math.Point2LL{12, 55}, 0)
	if redraws != 0 {
		t.Errorf("redraw requested with auto update off")
	}

	// turning it on repaints for that write and each successful one after
	r.SetViewProperty(AutoUpdate, BoolValue(true))
	if redraws != 1 {
		t.Errorf("redraws after enabling auto update: %d", redraws)
	}
	r.SetObjectProperty("A1", Altitude, FloatValue(10))
	r.RemoveObject("A1")
	if redraws != 3 {
		t.Errorf("redraws after mutations: got %d, expected 3", redraws)
	}

	// failed writes never repaint
	r.SetViewProperty(UpdateRate, FloatValue(-1))
	r.SetObjectProperty("missing", Altitude, FloatValue(0))
	if redraws != 3 {
		t.Errorf("failed writes requested redraws: %d", redraws)
	}
}

// paintRecorder captures the paint sequence for inspection.
type paintRecorder struct {
	background renderer.RGBA
	backdrops  []ResourceKind
	sprites    []ObjectSprite
	label      *renderer.Font
	calls      []string
}

func (p *paintRecorder) FillBackground(c renderer.RGBA) {
	p.background = c
	p.calls = append(p.calls, "background")
}

func (p *paintRecorder) Backdrop(kind ResourceKind, b *renderer.Backdrop) {
	p.backdrops = append(p.backdrops, kind)
	p.calls = append(p.calls, "backdrop")
}

func (p *paintRecorder) Sprite(s ObjectSprite, label *renderer.Font) {
	p.sprites = append(p.sprites, s)
	p.label = label
	p.calls = append(p.calls, "sprite")
}

func (p *paintRecorder) sprite(id string) *ObjectSprite {
	for i := range p.sprites {
		if p.sprites[i].Identifier == id {
			return &p.sprites[i]
		}
	}
	return nil
}

func TestPaint(t *testing.T) {
	r := New(400, 400, nil)
	center := math.Point2LL{12, 55}
	r.SetViewProperty(RadarCenter, PointValue(center))
	r.SetViewProperty(RadarAltitude, FloatValue(100))

	// a degree of latitude is about 111km, so 1e-4 degrees keeps the
	// objects inside the default 35m range
	r.AddObject("NORTH", VehicleObject, math.Point2LL{12, 55.0001}, 150)
	r.AddObject("EAST", VehicleObject, math.Point2LL{12.00015, 55}, 80)
	r.AddObject("SILENT", PersonObject, math.Point2LL{12, 54.9999}, math.NaN())
	r.AddObject("ZONE", AreaObject, math.Point2LL{12.0001, 55.0001}, 40)
	r.AddObject("HIDDEN", MarkerObject, center, 0)
	r.SetObjectProperty("HIDDEN", Visibility, BoolValue(false))
	r.AddObject("FAR", VehicleObject, math.Point2LL{12, 56}, 0)
	r.SetTrackedObject("NORTH")

	var p paintRecorder
	r.Paint(&p)

	// back-to-front: background, both backdrops, then sprites
	if len(p.calls) < 3 || p.calls[0] != "background" || p.calls[1] != "backdrop" || p.calls[2] != "backdrop" {
		t.Fatalf("paint order: %v", p.calls)
	}
	if p.backdrops[0] != BackdropCompass || p.backdrops[1] != BackdropRangeScale {
		t.Errorf("backdrop order: %v", p.backdrops)
	}
	if p.background != r.GetViewProperty(BackgroundColor).Color() {
		t.Errorf("background color: got %v", p.background)
	}
	if p.label == nil || p.label.Spec != r.GetViewProperty(ObjectLabelFont).Font() {
		t.Errorf("sprites not drawn with the object label font")
	}

	// invisible and out-of-range objects are not plotted
	if len(p.sprites) != 4 {
		t.Fatalf("got %d sprites: %v", len(p.sprites), p.sprites)
	}
	if p.sprite("HIDDEN") != nil || p.sprite("FAR") != nil {
		t.Errorf("hidden or out-of-range object was plotted")
	}

	north := p.sprite("NORTH")
	if north == nil {
		t.Fatalf("NORTH not plotted")
	}
	if north.Bearing > 1 && north.Bearing < 359 {
		t.Errorf("NORTH bearing: got %g, expected ~0", north.Bearing)
	}
	if north.Distance < 5 || north.Distance > 20 {
		t.Errorf("NORTH distance: got %g", north.Distance)
	}
	if north.RelativeAltitude != 50 {
		t.Errorf("NORTH relative altitude: got %g, expected 50", north.RelativeAltitude)
	}
	if !north.Tracked {
		t.Errorf("NORTH not flagged tracked")
	}

	east := p.sprite("EAST")
	if east == nil {
		t.Fatalf("EAST not plotted")
	}
	if east.Bearing < 85 || east.Bearing > 95 {
		t.Errorf("EAST bearing: got %g, expected ~90", east.Bearing)
	}
	if east.Tracked {
		t.Errorf("EAST flagged tracked")
	}

	// altitude indicators are suppressed for the NaN sentinel and for areas
	if s := p.sprite("SILENT"); s == nil || !math.IsNaN(s.RelativeAltitude) {
		t.Errorf("SILENT altitude indicator not suppressed")
	}
	if s := p.sprite("ZONE"); s == nil || !math.IsNaN(s.RelativeAltitude) {
		t.Errorf("ZONE altitude indicator not suppressed")
	}

	// painting reads state but never changes it
	if r.NumObjects() != 6 {
		t.Errorf("paint changed the object count: %d", r.NumObjects())
	}
}
