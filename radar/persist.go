// radar/persist.go
// Copyright(c) 2026 radarview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

import (
	"fmt"
	"log/slog"

	"github.com/avionix/radarview/util"
)

// SaveViewState writes a snapshot of the current view settings to the
// named file under the user's cache directory, so that a host can bring
// the display back up the way the operator left it.
func (r *ObjectRadar) SaveViewState(name string) error {
	r.mu.Lock()
	snap := r.view
	r.mu.Unlock()

	if err := util.CacheStoreObject(name, &snap); err != nil {
		return fmt.Errorf("%s: saving view state: %w", name, err)
	}
	return nil
}

// LoadViewState restores view settings previously written by
// SaveViewState. Each restored field goes through the validated property
// write path, so a snapshot that has gone bad on disk (or that predates
// a range change) can't smuggle in out-of-range values; rejected fields
// keep their current value and are logged.
func (r *ObjectRadar) LoadViewState(name string) error {
	var snap viewState
	if _, err := util.CacheRetrieveObject(name, &snap); err != nil {
		return fmt.Errorf("%s: restoring view state: %w", name, err)
	}

	for prop, val := range map[Property]Value{
		AutoUpdate:       BoolValue(snap.AutoUpdate),
		UpdateRate:       FloatValue(snap.UpdateRate),
		RadarCenter:      PointValue(snap.Center),
		RadarAltitude:    FloatValue(snap.Altitude),
		RadarRange:       SizeValue(snap.Range),
		ForegroundColor:  ColorValue(snap.Foreground),
		BackgroundColor:  ColorValue(snap.Background),
		StaticTextFont:   FontValue(snap.StaticTextFont),
		OutsideLabelFont: FontValue(snap.OutsideLabelFont),
		ObjectLabelFont:  FontValue(snap.ObjectLabelFont),
		AreaFillOpacity:  IntValue(snap.AreaFillOpacity),
		OutlineWidth:     IntValue(snap.OutlineWidth),
		OutlineStyle:     EnumValue(int(snap.OutlineStyle)),
	} {
		if !r.SetViewProperty(prop, val) {
			r.lg.Warn("dropped saved view property", slog.String("property", prop.String()),
				slog.Any("value", val))
		}
	}
	return nil
}
