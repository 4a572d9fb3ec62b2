// radar/cache.go
// Copyright(c) 2026 radarview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

import (
	"log/slog"
	"time"

	"github.com/avionix/radarview/log"
	"github.com/avionix/radarview/renderer"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ResourceKind identifies one derived render resource kept by the cache.
type ResourceKind int

const (
	FontStaticText ResourceKind = iota
	FontOutsideLabel
	FontObjectLabel
	BackdropCompass
	BackdropRangeScale

	NumResourceKinds
)

func (k ResourceKind) String() string {
	return [...]string{"FontStaticText", "FontOutsideLabel", "FontObjectLabel",
		"BackdropCompass", "BackdropRangeScale"}[k]
}

// resourceDeps maps each view property to the cached resources derived
// from it; a property write marks exactly these stale.
var resourceDeps = map[Property][]ResourceKind{
	StaticTextFont:   {FontStaticText},
	OutsideLabelFont: {FontOutsideLabel},
	ObjectLabelFont:  {FontObjectLabel},
	RadarRange:       {BackdropRangeScale},
	RadarAltitude:    {BackdropRangeScale},
	ForegroundColor:  {BackdropCompass, BackdropRangeScale},
	BackgroundColor:  {BackdropCompass, BackdropRangeScale},
	OutlineWidth:     {BackdropCompass, BackdropRangeScale},
	OutlineStyle:     {BackdropCompass, BackdropRangeScale},
}

// renderCache holds the expensive-to-recompute display resources: the
// three shaped label fonts and the two pre-rendered backdrop bitmaps.
// Resources are invalidated selectively when a feeding view property
// changes and recomputed lazily on the next read, never eagerly on the
// write itself.
type renderCache struct {
	stale     [NumResourceKinds]bool
	fonts     [3]*renderer.Font
	backdrops [2]*renderer.Backdrop

	// Recently drawn backdrop variants, so flipping between a few view
	// configurations doesn't redraw each time.
	variants *expirable.LRU[string, *renderer.Backdrop]

	lg *log.Logger
}

func newRenderCache(lg *log.Logger) *renderCache {
	c := &renderCache{
		variants: expirable.NewLRU[string, *renderer.Backdrop](32, nil, 15*time.Minute),
		lg:       lg,
	}
	c.invalidateAll()
	return c
}

func (c *renderCache) invalidateAll() {
	for i := range c.stale {
		c.stale[i] = true
	}
}

// invalidate marks the resources derived from p stale. Properties that
// feed no cached resource are a no-op.
func (c *renderCache) invalidate(p Property) {
	for _, k := range resourceDeps[p] {
		c.stale[k] = true
		c.lg.Debug("render resource invalidated", slog.String("resource", k.String()),
			slog.String("property", p.String()))
	}
}

// font returns the shaped font for kind, recomputing it from the current
// view state first if it is stale.
func (c *renderCache) font(kind ResourceKind, view *viewState) *renderer.Font {
	var spec renderer.FontSpec
	switch kind {
	case FontStaticText:
		spec = view.StaticTextFont
	case FontOutsideLabel:
		spec = view.OutsideLabelFont
	case FontObjectLabel:
		spec = view.ObjectLabelFont
	default:
		return nil
	}

	i := int(kind - FontStaticText)
	if c.stale[kind] || c.fonts[i] == nil {
		c.fonts[i] = renderer.ShapeFont(spec)
		c.stale[kind] = false
	}
	return c.fonts[i]
}

// backdrop returns the bitmap for kind, recomputing it if stale. Recent
// variants are kept in an LRU keyed by their drawing parameters.
func (c *renderCache) backdrop(kind ResourceKind, view *viewState, dim [2]int) *renderer.Backdrop {
	i := int(kind - BackdropCompass)
	if i < 0 || i >= len(c.backdrops) {
		return nil
	}
	if !c.stale[kind] && c.backdrops[i] != nil {
		return c.backdrops[i]
	}

	var key string
	var draw func() *renderer.Backdrop
	switch kind {
	case BackdropCompass:
		p := renderer.CompassParams{
			Width:        dim[0],
			Height:       dim[1],
			Foreground:   view.Foreground,
			Background:   view.Background,
			OutlineWidth: view.OutlineWidth,
		}
		key, draw = p.String(), func() *renderer.Backdrop { return renderer.DrawCompassBackdrop(p) }
	case BackdropRangeScale:
		p := renderer.RangeScaleParams{
			Width:        dim[0],
			Height:       dim[1],
			Foreground:   view.Foreground,
			Background:   view.Background,
			RangeMin:     view.Range[0],
			RangeMax:     view.Range[1],
			Altitude:     view.Altitude,
			OutlineWidth: view.OutlineWidth,
		}
		key, draw = p.String(), func() *renderer.Backdrop { return renderer.DrawRangeScaleBackdrop(p) }
	}

	b, ok := c.variants.Get(key)
	if !ok {
		b = draw()
		c.variants.Add(key, b)
	}
	c.backdrops[i] = b
	c.stale[kind] = false
	return b
}
