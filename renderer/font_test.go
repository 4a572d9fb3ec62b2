// renderer/font_test.go
// Copyright(c) 2026 radarview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import "testing"

func TestShapeFont(t *testing.T) {
	f := ShapeFont(FontSpec{Family: B612Mono, PointSize: 10})
	if f.Size != 10 {
		t.Errorf("size: got %d", f.Size)
	}

	// monospace: every printable glyph advances the same amount
	adv := f.LookupGlyph('M').AdvanceX
	for ch := rune(33); ch < 127; ch++ {
		if g := f.LookupGlyph(ch); g.AdvanceX != adv {
			t.Errorf("%q: advance %g differs from %g", ch, g.AdvanceX, adv)
		}
	}
	if g := f.LookupGlyph(' '); g.Visible {
		t.Errorf("space is visible")
	}
	if g := f.LookupGlyph('A'); !g.Visible || g.Height() != 10 {
		t.Errorf("glyph A: visible %v height %g", g.Visible, g.Height())
	}

	// non-ASCII glyphs are shaped on demand with the same metrics
	if g := f.LookupGlyph('å'); g == nil || g.AdvanceX != adv {
		t.Errorf("on-demand glyph has different metrics")
	}

	// a degenerate point size falls back to a usable default
	if f := ShapeFont(FontSpec{Family: B612Mono}); f.Size != 10 {
		t.Errorf("zero point size: got %d", f.Size)
	}
}

func TestShapeFontStyles(t *testing.T) {
	base := ShapeFont(FontSpec{Family: B612Mono, PointSize: 10})
	bold := ShapeFont(FontSpec{Family: B612Mono, PointSize: 10, Weight: 700})
	italic := ShapeFont(FontSpec{Family: B612Mono, PointSize: 10, Italic: true})

	if bold.LookupGlyph('A').AdvanceX <= base.LookupGlyph('A').AdvanceX {
		t.Errorf("bold advance not wider than regular")
	}
	bg, ig := base.LookupGlyph('A'), italic.LookupGlyph('A')
	if ig.Width() <= bg.Width() || ig.AdvanceX != bg.AdvanceX {
		t.Errorf("italic quad width %g advance %g vs regular %g/%g", ig.Width(), ig.AdvanceX, bg.Width(), bg.AdvanceX)
	}
}

func TestBoundText(t *testing.T) {
	f := ShapeFont(FontSpec{Family: B612Mono, PointSize: 10})
	adv := f.LookupGlyph('A').AdvanceX

	w, h := f.BoundText("HAWK1", 2)
	if want := int(5*adv + 0.5); w != want {
		t.Errorf("width: got %d, expected %d", w, want)
	}
	if h != 12 {
		t.Errorf("height: got %d, expected 12", h)
	}

	// the widest line governs the width; each newline adds a line height
	w2, h2 := f.BoundText("AB\nWXYZ\nC", 2)
	if want := int(4*adv + 0.5); w2 != want {
		t.Errorf("multi-line width: got %d, expected %d", w2, want)
	}
	if h2 != 36 {
		t.Errorf("multi-line height: got %d, expected 36", h2)
	}
}

func TestFontSpecString(t *testing.T) {
	for _, tc := range []struct {
		spec FontSpec
		want string
	}{
		{FontSpec{Family: B612Mono, PointSize: 10}, "B612 Mono-10"},
		{FontSpec{Family: B612Regular, PointSize: 8, Weight: 700}, "B612 Regular-8-w700"},
		{FontSpec{Family: B612Mono, PointSize: 12, Italic: true}, "B612 Mono-12-italic"},
	} {
		if got := tc.spec.String(); got != tc.want {
			t.Errorf("got %q, expected %q", got, tc.want)
		}
	}
}
