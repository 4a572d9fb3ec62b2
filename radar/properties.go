// radar/properties.go
// Copyright(c) 2026 radarview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

import "github.com/avionix/radarview/math"

// Property identifies one recognized, independently-validated setting.
// The enumeration is split into two contiguous blocks: view properties,
// which apply to the display as a whole, and object properties, which
// apply to one displayed object addressed by identifier. Every get/set
// on the widget goes through this catalog.
type Property int

const (
	// view properties
	AutoUpdate      Property = iota // [bool] repaint immediately after a successful property write
	UpdateRate                      // [float] scheduled redraws per second {0.05, 240}
	RadarCenter                     // [point] {lat, long} position of the radar center
	RadarAltitude                   // [float] altitude of the radar center, meters above sea level
	RadarRange                      // [size] radar range {min, max}, meters from the center
	ForegroundColor                 // [color] lines, ticks, and standard text
	BackgroundColor                 // [color] backgrounds and surface fills
	StaticTextFont                  // [font] fixed captions and readouts
	OutsideLabelFont                // [font] labels for objects beyond the display range
	ObjectLabelFont                 // [font] identifier labels next to object icons
	AreaFillOpacity                 // [int] area fill alpha {0, 255}
	OutlineWidth                    // [int] outline stroke width in pixels {0, 20}
	OutlineStyle                    // [enum] outline stroke style

	// object properties
	Identifier // [string] unique object identifier
	Type       // [enum] object type
	Position   // [point] {lat, long} object position
	Color      // [color] RGBA object color
	Area       // [size] extent of the object (area-type objects only)
	Altitude   // [float] object altitude in meters (not meaningful for areas)
	Visibility // [bool] object visible flag

	NumProperties
)

func (p Property) String() string {
	if !KnownProperty(p) {
		return "invalid"
	}
	return [...]string{"AutoUpdate", "UpdateRate", "RadarCenter", "RadarAltitude", "RadarRange",
		"ForegroundColor", "BackgroundColor", "StaticTextFont", "OutsideLabelFont", "ObjectLabelFont",
		"AreaFillOpacity", "OutlineWidth", "OutlineStyle", "Identifier", "Type", "Position", "Color",
		"Area", "Altitude", "Visibility"}[p]
}

// IsViewProperty reports whether p applies to the display as a whole.
func (p Property) IsViewProperty() bool {
	return p >= AutoUpdate && p <= OutlineStyle
}

// IsObjectProperty reports whether p applies to a single displayed object.
func (p Property) IsObjectProperty() bool {
	return p >= Identifier && p < NumProperties
}

// ObjectType enumerates the kinds of objects representable on the radar.
type ObjectType int

const (
	VehicleObject ObjectType = iota
	PersonObject
	MarkerObject
	PathObject
	AreaObject

	NumObjectTypes
)

func (t ObjectType) String() string {
	if t < 0 || t >= NumObjectTypes {
		return "invalid"
	}
	return [...]string{"Vehicle", "Person", "Marker", "Path", "Area"}[t]
}

// LineStyle enumerates outline stroke styles.
type LineStyle int

const (
	LineStyleSolid LineStyle = iota
	LineStyleDashed
	LineStyleDotted

	NumLineStyles
)

func (s LineStyle) String() string {
	if s < 0 || s >= NumLineStyles {
		return "invalid"
	}
	return [...]string{"Solid", "Dashed", "Dotted"}[s]
}

// propertyDescriptor gives the required value kind for a property and,
// when set, an inclusive numeric range for its scalar payload.
type propertyDescriptor struct {
	kind ValueKind
	rng  *[2]float32
}

// propertyTable is the catalog: one descriptor per property, indexed by
// the Property value itself and fixed at compile time.
var propertyTable = [NumProperties]propertyDescriptor{
	AutoUpdate:       {kind: BoolKind},
	UpdateRate:       {kind: FloatKind, rng: &[2]float32{0.05, 240}},
	RadarCenter:      {kind: PointKind},
	RadarAltitude:    {kind: FloatKind},
	RadarRange:       {kind: SizeKind},
	ForegroundColor:  {kind: ColorKind},
	BackgroundColor:  {kind: ColorKind},
	StaticTextFont:   {kind: FontKind},
	OutsideLabelFont: {kind: FontKind},
	ObjectLabelFont:  {kind: FontKind},
	AreaFillOpacity:  {kind: IntKind, rng: &[2]float32{0, 255}},
	OutlineWidth:     {kind: IntKind, rng: &[2]float32{0, 20}},
	OutlineStyle:     {kind: EnumKind, rng: &[2]float32{0, float32(NumLineStyles - 1)}},
	Identifier:       {kind: StringKind},
	Type:             {kind: EnumKind, rng: &[2]float32{0, float32(NumObjectTypes - 1)}},
	Position:         {kind: PointKind},
	Color:            {kind: ColorKind},
	Area:             {kind: SizeKind},
	Altitude:         {kind: FloatKind},
	Visibility:       {kind: BoolKind},
}

// KnownProperty reports whether p indexes a catalog descriptor. Raw
// integer casts outside the enumeration land here and are reported as
// unknown rather than faulting on the table lookup.
func KnownProperty(p Property) bool {
	return p >= 0 && p < NumProperties
}

// checkPropertyValue validates v as a candidate value for p: the value
// kind must match the descriptor exactly and, for descriptors that carry
// a range, the scalar payload must lie within the inclusive bounds.
func checkPropertyValue(p Property, v Value) error {
	if !KnownProperty(p) {
		return ErrUnknownProperty
	}

	d := propertyTable[p]
	if v.Kind() != d.kind {
		return ErrTypeMismatch
	}

	if d.rng != nil {
		s, ok := v.scalar()
		// NaN compares false against both bounds; reject it explicitly so
		// that ranged properties can't be set to NaN. (Unranged float
		// properties accept it; object altitude uses NaN as a sentinel.)
		if !ok || math.IsNaN(s) || s < d.rng[0] || s > d.rng[1] {
			return ErrRangeViolation
		}
	}
	return nil
}

// ValidatePropertyValue reports whether v is an acceptable value for p.
// It is a pure function of its arguments and the static catalog.
func ValidatePropertyValue(p Property, v Value) bool {
	return checkPropertyValue(p, v) == nil
}
