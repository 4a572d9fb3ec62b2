// renderer/font.go
// Copyright(c) 2026 radarview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"fmt"
	"strconv"
)

// Font name constants
const (
	B612Mono    = "B612 Mono"
	B612Regular = "B612 Regular"
)

// FontSpec identifies a font by family and styling parameters; it is the
// key from which shaped Fonts are derived.
type FontSpec struct {
	Family    string
	PointSize int
	Weight    int // 100..900, or -1 for the family default
	Italic    bool
}

func (fs FontSpec) String() string {
	s := fs.Family + "-" + strconv.Itoa(fs.PointSize)
	if fs.Weight > 0 {
		s += "-w" + strconv.Itoa(fs.Weight)
	}
	if fs.Italic {
		s += "-italic"
	}
	return s
}

// Each shaped (family,size,weight) combination is represented by (surprise) a Font.
type Font struct {
	// Glyphs for the commonly-used ASCII range can be looked up using a
	// directly-mapped array, for efficiency.
	lowGlyphs [128]*Glyph
	// The remaining glyphs are stored in a map.
	glyphs map[rune]*Glyph
	// Font size
	Size int
	Spec FontSpec
}

// Glyph caches the information needed to lay out one character so that
// metrics queries don't have to re-derive it for each character drawn.
type Glyph struct {
	// Vertex positions for the quad to draw
	X0, Y0, X1, Y1 float32
	// Distance to advance in x after the character.
	AdvanceX float32
	// Is it a visible character (i.e., not space, tab, CR, ...)
	Visible bool
}

func (g *Glyph) Width() float32 {
	return g.X1 - g.X0
}

func (g *Glyph) Height() float32 {
	return g.Y1 - g.Y0
}

// ShapeFont derives the glyph metric table for the given spec. The
// library's bundled families are monospaced instrument fonts, so metrics
// follow from the point size and weight alone; the rasterizing backend in
// the embedding shell supplies the actual pixels.
func ShapeFont(spec FontSpec) *Font {
	if spec.PointSize <= 0 {
		spec.PointSize = 10
	}
	f := &Font{
		glyphs: make(map[rune]*Glyph),
		Size:   spec.PointSize,
		Spec:   spec,
	}
	// Shape the printable ASCII range up front; anything else is filled
	// in on demand by LookupGlyph.
	for ch := rune(32); ch < 127; ch++ {
		f.lowGlyphs[ch] = f.createGlyph(ch)
	}
	return f
}

// advanceX returns the fixed horizontal advance for the font. A heavier
// weight widens the em box slightly, as the bundled families do.
func (f *Font) advanceX() float32 {
	adv := 0.6 * float32(f.Size)
	if f.Spec.Weight >= 600 {
		adv *= 1.08
	}
	return adv
}

func (f *Font) createGlyph(ch rune) *Glyph {
	adv := f.advanceX()
	g := &Glyph{
		X0:       0,
		Y0:       0,
		X1:       adv,
		Y1:       float32(f.Size),
		AdvanceX: adv,
		Visible:  ch > 32 && ch != 127,
	}
	if f.Spec.Italic {
		// Sheared quad; the advance is unchanged.
		g.X1 += 0.2 * float32(f.Size)
	}
	return g
}

// LookupGlyph returns the Glyph for the specified rune.
func (f *Font) LookupGlyph(ch rune) *Glyph {
	if int(ch) < len(f.lowGlyphs) {
		if g := f.lowGlyphs[ch]; g == nil {
			g = f.createGlyph(ch)
			f.lowGlyphs[ch] = g
			return g
		} else {
			return g
		}
	} else if g, ok := f.glyphs[ch]; !ok {
		g = f.createGlyph(ch)
		f.glyphs[ch] = g
		return g
	} else {
		return g
	}
}

// BoundText returns the bound of the specified text in the given font,
// assuming the given pixel spacing between lines.
func (font *Font) BoundText(s string, spacing int) (int, int) {
	dy := font.Size + spacing
	py := dy
	var px, xmax float32
	for _, ch := range s {
		if ch == '\n' {
			px = 0
			py += dy
		} else {
			glyph := font.LookupGlyph(ch)
			px += glyph.AdvanceX
			if px > xmax {
				xmax = px
			}
		}
	}

	return int(xmax + 0.5), py
}

func (font *Font) String() string {
	return fmt.Sprintf("%s size %d", font.Spec, font.Size)
}
