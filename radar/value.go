// radar/value.go
// Copyright(c) 2026 radarview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

import (
	"fmt"
	"log/slog"

	"github.com/avionix/radarview/math"
	"github.com/avionix/radarview/renderer"
)

// ValueKind tags the payload carried by a Value; there is one kind per
// value type the property catalog knows about.
type ValueKind int

const (
	InvalidKind ValueKind = iota
	BoolKind
	IntKind
	FloatKind
	StringKind
	PointKind
	SizeKind
	ColorKind
	FontKind
	EnumKind
)

func (k ValueKind) String() string {
	return [...]string{"Invalid", "Bool", "Int", "Float", "String", "Point", "Size",
		"Color", "Font", "Enum"}[k]
}

// Value is the tagged union passed through the property interface. The
// zero Value is the invalid sentinel returned by failed property reads.
// Values are immutable and comparable with ==.
type Value struct {
	kind ValueKind
	b    bool
	i    int32 // int and enum payloads
	f    float32
	s    string
	p    math.Point2LL
	sz   [2]float32
	c    renderer.RGBA
	font renderer.FontSpec
}

func BoolValue(b bool) Value               { return Value{kind: BoolKind, b: b} }
func IntValue(i int) Value                 { return Value{kind: IntKind, i: int32(i)} }
func FloatValue(f float32) Value           { return Value{kind: FloatKind, f: f} }
func StringValue(s string) Value           { return Value{kind: StringKind, s: s} }
func PointValue(p math.Point2LL) Value     { return Value{kind: PointKind, p: p} }
func SizeValue(sz [2]float32) Value        { return Value{kind: SizeKind, sz: sz} }
func ColorValue(c renderer.RGBA) Value     { return Value{kind: ColorKind, c: c} }
func FontValue(fs renderer.FontSpec) Value { return Value{kind: FontKind, font: fs} }
func EnumValue(e int) Value                { return Value{kind: EnumKind, i: int32(e)} }

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsValid() bool { return v.kind != InvalidKind }

// The payload accessors return the zero payload when the kind doesn't
// match; callers that care check Kind() or validate first.

func (v Value) Bool() bool              { return v.b }
func (v Value) Int() int                { return int(v.i) }
func (v Value) Float() float32          { return v.f }
func (v Value) Text() string            { return v.s }
func (v Value) Point() math.Point2LL    { return v.p }
func (v Value) Size() [2]float32        { return v.sz }
func (v Value) Color() renderer.RGBA    { return v.c }
func (v Value) Font() renderer.FontSpec { return v.font }
func (v Value) Enum() int               { return int(v.i) }

// scalar unwraps the numeric payload kinds for range checking.
func (v Value) scalar() (float32, bool) {
	switch v.kind {
	case IntKind, EnumKind:
		return float32(v.i), true
	case FloatKind:
		return v.f, true
	default:
		return 0, false
	}
}

func (v Value) String() string {
	switch v.kind {
	case InvalidKind:
		return "invalid"
	case BoolKind:
		return fmt.Sprintf("%v", v.b)
	case IntKind, EnumKind:
		return fmt.Sprintf("%d", v.i)
	case FloatKind:
		return fmt.Sprintf("%g", v.f)
	case StringKind:
		return v.s
	case PointKind:
		return v.p.DDString()
	case SizeKind:
		return fmt.Sprintf("{%g, %g}", v.sz[0], v.sz[1])
	case ColorKind:
		return fmt.Sprintf("rgba(%g, %g, %g, %g)", v.c.R, v.c.G, v.c.B, v.c.A)
	case FontKind:
		return v.font.String()
	default:
		return "invalid"
	}
}

func (v Value) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", v.kind.String()),
		slog.String("value", v.String()))
}
