// renderer/backdrop.go
// Copyright(c) 2026 radarview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"fmt"

	"github.com/avionix/radarview/math"
)

// Backdrop is a pre-rendered bitmap that sits behind the live object
// layer: the compass rose and the range scale are drawn once per
// view-state change rather than on every repaint. Pixels are packed RGBA,
// four bytes each, rows top to bottom.
type Backdrop struct {
	Width, Height int
	Pix           []uint8
}

func NewBackdrop(w, h int, fill RGBA) *Backdrop {
	b := &Backdrop{Width: w, Height: h, Pix: make([]uint8, 4*w*h)}
	r, g, bl, a := toBytes(fill)
	for i := 0; i < len(b.Pix); i += 4 {
		b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3] = r, g, bl, a
	}
	return b
}

func (b *Backdrop) SetPixel(x, y int, c RGBA) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	i := 4 * (y*b.Width + x)
	b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3] = toBytes(c)
}

func toBytes(c RGBA) (uint8, uint8, uint8, uint8) {
	q := func(v float32) uint8 { return uint8(math.Clamp(v, 0, 1)*255 + 0.5) }
	return q(c.R), q(c.G), q(c.B), q(c.A)
}

// CompassParams are the view-state inputs the compass backdrop is
// derived from.
type CompassParams struct {
	Width, Height int
	Foreground    RGBA
	Background    RGBA
	OutlineWidth  int
}

func (p CompassParams) String() string {
	return fmt.Sprintf("compass-%dx%d-%v-%v-%d", p.Width, p.Height, p.Foreground, p.Background, p.OutlineWidth)
}

// DrawCompassBackdrop renders the compass rose backdrop: background fill
// plus heading ticks every ten degrees. Full rose artwork (cardinal
// labels, minor ticks) is left to the embedding shell.
func DrawCompassBackdrop(p CompassParams) *Backdrop {
	b := NewBackdrop(p.Width, p.Height, p.Background)

	cx, cy := float32(p.Width)/2, float32(p.Height)/2
	radius := math.Clamp(cx, 0, cy) - 2
	for deg := 0; deg < 360; deg += 10 {
		sin, cos := math.Sin(math.Radians(float32(deg))), math.Cos(math.Radians(float32(deg)))
		for w := 0; w <= p.OutlineWidth; w++ {
			r := radius - float32(w)
			b.SetPixel(int(cx+r*sin), int(cy-r*cos), p.Foreground)
		}
	}
	return b
}

// RangeScaleParams are the view-state inputs the range-scale backdrop is
// derived from.
type RangeScaleParams struct {
	Width, Height      int
	Foreground         RGBA
	Background         RGBA
	RangeMin, RangeMax float32 // meters
	Altitude           float32 // meters above sea level
	OutlineWidth       int
}

func (p RangeScaleParams) String() string {
	return fmt.Sprintf("rangescale-%dx%d-%v-%v-%g-%g-%g-%d", p.Width, p.Height, p.Foreground,
		p.Background, p.RangeMin, p.RangeMax, p.Altitude, p.OutlineWidth)
}

// DrawRangeScaleBackdrop renders the range ring backdrop, one ring per
// scale step between the minimum and maximum range.
func DrawRangeScaleBackdrop(p RangeScaleParams) *Backdrop {
	b := NewBackdrop(p.Width, p.Height, p.Background)
	if p.RangeMax <= p.RangeMin {
		return b
	}

	cx, cy := float32(p.Width)/2, float32(p.Height)/2
	maxRadius := math.Clamp(cx, 0, cy) - 2
	steps := rangeScaleSteps(p.RangeMax - p.RangeMin)
	for s := 1; s <= steps; s++ {
		r := maxRadius * float32(s) / float32(steps)
		for deg := 0; deg < 360; deg++ {
			sin, cos := math.Sin(math.Radians(float32(deg))), math.Cos(math.Radians(float32(deg)))
			b.SetPixel(int(cx+r*sin), int(cy-r*cos), p.Foreground)
		}
	}
	return b
}

// rangeScaleSteps picks the ring count for a range extent: one ring per
// five meters close in, capped so that wide views don't clutter.
func rangeScaleSteps(extent float32) int {
	steps := int(math.Ceil(extent / 5))
	return math.Clamp(steps, 1, 8)
}
