// cmd/radarview-sandbox/main.go
// Copyright(c) 2026 radarview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// radarview-sandbox exercises the object radar widget in a terminal: it
// seeds a handful of moving objects, runs the redraw scheduler, and
// presents the widget's paint output as character cells. It doubles as
// an example of embedding the widget in a host shell.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/avionix/radarview/log"
	"github.com/avionix/radarview/math"
	"github.com/avionix/radarview/radar"
	"github.com/avionix/radarview/renderer"
	"github.com/avionix/radarview/util"
	"github.com/gdamore/tcell/v2"
)

var (
	logDir        = flag.String("logdir", "", "log file directory")
	logLevel      = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	updateRate    = flag.Float64("rate", 30, "redraws per second")
	viewStateFile = flag.String("viewstate", "", "saved view state to restore on startup and update on exit")
)

const cacheSizeLimit = 32 * 1024 * 1024

func main() {
	flag.Parse()

	lg := log.New(*logLevel, *logDir)
	if err := util.CacheCullObjects(cacheSizeLimit); err != nil {
		lg.Warnf("unable to cull cache: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "unable to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	r := radar.New(600, 600, lg)
	if *viewStateFile != "" {
		if err := r.LoadViewState(*viewStateFile); err != nil {
			lg.Warnf("%v", err)
		}
	}
	r.SetViewProperty(radar.UpdateRate, radar.FloatValue(float32(*updateRate)))

	seedObjects(r)

	// The widget hands us repaint requests; forward them to the main
	// loop without queueing so a slow terminal can't pile up frames.
	paint := make(chan struct{}, 1)
	r.SetRedrawHandler(func() {
		select {
		case paint <- struct{}{}:
		default:
		}
	})

	sub := r.Events().Subscribe()
	defer sub.Unsubscribe()

	quit := make(chan struct{})
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					close(quit)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	r.Start()
	defer r.Stop()

	move := time.Tick(250 * time.Millisecond)
	var lastEvent string
	for {
		select {
		case <-quit:
			if *viewStateFile != "" {
				if err := r.SaveViewState(*viewStateFile); err != nil {
					lg.Warnf("%v", err)
				}
			}
			return
		case <-move:
			nudgeObjects(r)
		case <-paint:
			for _, ev := range sub.Get() {
				lastEvent = ev.String()
			}
			drawFrame(screen, r, lastEvent)
		}
	}
}

func seedObjects(r *radar.ObjectRadar) {
	r.AddObject("HAWK1", radar.VehicleObject, math.Point2LL{12.0001, 55.0001}, 120)
	r.AddObject("HAWK2", radar.VehicleObject, math.Point2LL{11.9999, 55.0002}, 80)
	r.AddObject("OBSERVER", radar.PersonObject, math.Point2LL{12.0002, 54.9999}, math.NaN())
	r.AddObject("HOME", radar.MarkerObject, math.Point2LL{12, 55}, 0)
	r.SetViewProperty(radar.RadarCenter, radar.PointValue(math.Point2LL{12, 55}))
	r.SetObjectProperty("HAWK1", radar.Color, radar.ColorValue(renderer.RGBFromHex(0x30c030).WithAlpha(1)))
	r.SetTrackedObject("HAWK1")
}

// nudgeObjects moves the vehicles a little so the display has something
// to show.
func nudgeObjects(r *radar.ObjectRadar) {
	for i, id := range []string{"HAWK1", "HAWK2"} {
		pos := r.GetObjectProperty(id, radar.Position).Point()
		d := float32(1 - 2*i)
		pos[0] += d * 0.00002
		pos[1] += d * 0.00001
		r.SetObjectProperty(id, radar.Position, radar.PointValue(pos))
	}
}

// cellTarget adapts a tcell screen to the widget's paint interface,
// mapping sprite polar coordinates into character cells.
type cellTarget struct {
	screen   tcell.Screen
	width    int
	height   int
	rangeMax float32
}

func (t *cellTarget) FillBackground(c renderer.RGBA) {
	st := tcell.StyleDefault.Background(toTcell(c))
	t.screen.Fill(' ', st)
}

func (t *cellTarget) Backdrop(kind radar.ResourceKind, b *renderer.Backdrop) {
	// The backdrop bitmaps are sized for pixel displays; on a terminal we
	// only mark the compass cardinal points.
	if kind != radar.BackdropCompass {
		return
	}
	cx, cy := t.width/2, t.height/2
	rx, ry := t.width/2-1, t.height/2-1
	st := tcell.StyleDefault
	t.screen.SetContent(cx, cy-ry, 'N', nil, st)
	t.screen.SetContent(cx, cy+ry, 'S', nil, st)
	t.screen.SetContent(cx+rx, cy, 'E', nil, st)
	t.screen.SetContent(cx-rx, cy, 'W', nil, st)
}

var typeGlyphs = map[radar.ObjectType]rune{
	radar.VehicleObject: 'V',
	radar.PersonObject:  'P',
	radar.MarkerObject:  'x',
	radar.PathObject:    '.',
	radar.AreaObject:    '#',
}

func (t *cellTarget) Sprite(s radar.ObjectSprite, label *renderer.Font) {
	if t.rangeMax <= 0 {
		return
	}
	// Polar to cell coordinates; terminal cells are roughly twice as
	// tall as wide, so x gets double scale.
	frac := s.Distance / t.rangeMax
	x := t.width/2 + int(frac*float32(t.width/2)*math.Sin(math.Radians(s.Bearing)))
	y := t.height/2 - int(frac*float32(t.height/2)*math.Cos(math.Radians(s.Bearing)))

	st := tcell.StyleDefault.Foreground(toTcell(s.Color))
	if s.Tracked {
		st = st.Bold(true).Underline(true)
	}
	t.screen.SetContent(x, y, typeGlyphs[s.Type], nil, st)
	for i, ch := range s.Identifier {
		t.screen.SetContent(x+2+i, y, ch, nil, st)
	}
}

func drawFrame(screen tcell.Screen, r *radar.ObjectRadar, status string) {
	w, h := screen.Size()
	t := &cellTarget{
		screen:   screen,
		width:    w,
		height:   h - 1, // bottom row is the status line
		rangeMax: r.GetViewProperty(radar.RadarRange).Size()[1],
	}
	r.Paint(t)

	st := tcell.StyleDefault.Reverse(true)
	tracked, _ := r.GetTrackedObject()
	line := fmt.Sprintf(" objects %d | tracked %s | %s | q to quit", r.NumObjects(), tracked, status)
	for i, ch := range line {
		if i >= w {
			break
		}
		screen.SetContent(i, h-1, ch, nil, st)
	}
	screen.Show()
}

func toTcell(c renderer.RGBA) tcell.Color {
	q := func(v float32) int32 { return int32(math.Clamp(v, 0, 1) * 255) }
	return tcell.NewRGBColor(q(c.R), q(c.G), q(c.B))
}
