// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gnuplot

import (
	"image/color"
	"math"
	"testing"

	"github.com/aclements/go-gg/palette"
)

func TestInitCommands(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetGrid(true, Front).
		SetGraphTitle("Latency").
		SetLegend("outside").
		SetXLabel("date").
		SetOrigin(0.1, 0).
		SetXTimeFormat("%Y-%m-%d", "%m/%d").
		SetYLabel("ms").
		SetYFormat("%.1f").
		SetXRange(math.NaN(), 100).
		SetYRange(0, math.NaN()).
		SetXTics(7).
		SetYTics(0.25).
		SetMXTics(7).
		SetMYTics(4).
		AddLabel("2016-01-02", 3.5, "release")
	checkLines(t, s.initCommands(), []string{
		"set grid xtics ytics mxtics mytics front",
		`set title "Latency"`,
		"set key outside",
		`set xlabel "date"`,
		"set origin 0.1,0",
		"set xdata time",
		`set timefmt "%Y-%m-%d"`,
		"set xtics rotate",
		`set format x "%m/%d"`,
		`set ylabel "ms"`,
		`set format y "%.1f"`,
		"set xrange [:100]",
		"set yrange [0:]",
		"set xtics 7",
		"set ytics 0.25",
		"set mxtics 7",
		"set mytics 4",
		`set label "release" at 2016-01-02, 3.5`,
	})
}

func TestPlotClauses(t *testing.T) {
	s, _ := newTestSession(t)
	mustPush(t, s, 0, 1, 1)
	mustPush(t, s, 1, 1, 0.5, 1.5)
	mustPush(t, s, 2, 1, 1)
	s.SetSmooth(0, "csplines").
		SetLineType(0, 2).
		SetColor(0, "#ff0000").
		SetLineWidth(0, 1.5).
		SetPointType(0, 7).
		SetTitle(0, "fit")
	s.SetMode(1, FilledCurves).SetTitle(1, "band")
	// Series 0 and 2 have no mode of their own, so they use the
	// default in effect at render time.
	s.SetDefaultMode(Points)

	want := `plot '-' using 1:2 smooth csplines with points lt 2 lc rgb "#ff0000" lw 1.5 pt 7 title "fit", ` +
		`'-' using 1:2:3 with filledcurves title "band", ` +
		`'-' using 1:2 with points`
	if got := s.plotCommand(); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
	checkLines(t, s.dataLines(), []string{"1 1", "e", "1 0.5 1.5", "e", "1 1", "e"})
}

func TestPalette(t *testing.T) {
	s, _ := newTestSession(t)
	mustPush(t, s, 0, 1, 1)
	mustPush(t, s, 5, 1, 1)
	s.SetPalette(palette.RGBGradient{Colors: []color.RGBA{
		{0xff, 0, 0, 0xff},
		{0, 0, 0xff, 0xff},
	}})
	want := `plot '-' using 1:2 with lines lc rgb "#ff0000", '-' using 1:2 with lines lc rgb "#0000ff"`
	if got := s.plotCommand(); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}

	// Explicit colors win.
	s.SetColor(5, "dark-green")
	want = `plot '-' using 1:2 with lines lc rgb "#ff0000", '-' using 1:2 with lines lc rgb "dark-green"`
	if got := s.plotCommand(); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}

	s.SetPalette(nil)
	want = `plot '-' using 1:2 with lines, '-' using 1:2 with lines lc rgb "dark-green"`
	if got := s.plotCommand(); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}
