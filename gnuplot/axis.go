// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gnuplot

import "math"

// Axis identifies a plot axis.
type Axis int

const (
	X Axis = iota
	Y
)

// Range is an axis range. A NaN bound leaves that end to the engine's
// autoscaling.
type Range struct {
	Min, Max float64
}

// Layer places the grid relative to the plot.
type Layer string

const (
	LayerDefault Layer = ""
	Front        Layer = "front"
	Back         Layer = "back"
)

type axisConfig struct {
	xlabel, ylabel string
	xrange, yrange *Range

	// Tic spacing; 0 means engine default.
	xtics, ytics float64
	// Minor tic intervals per major tic; 0 means engine default.
	mxtics, mytics int
	// Maximum tick counts for automatic ranges; 0 disables.
	autoTics [2]int

	xTimeFmt, xDisplayFmt string
	yFormat               string

	origin *[2]float64
	legend string

	gridMinor bool
	gridLayer Layer
}

type label struct {
	x, y interface{}
	text string
}

// SetXLabel sets the x axis label.
func (s *Session) SetXLabel(label string) *Session {
	s.axis.xlabel = label
	return s.touch()
}

// SetYLabel sets the y axis label.
func (s *Session) SetYLabel(label string) *Session {
	s.axis.ylabel = label
	return s.touch()
}

// SetXRange fixes the x axis range. Either bound may be NaN.
func (s *Session) SetXRange(min, max float64) *Session {
	s.axis.xrange = &Range{min, max}
	return s.touch()
}

// SetYRange fixes the y axis range. Either bound may be NaN.
func (s *Session) SetYRange(min, max float64) *Session {
	s.axis.yrange = &Range{min, max}
	return s.touch()
}

// SetXTics sets the spacing between major x tics.
func (s *Session) SetXTics(step float64) *Session {
	s.axis.xtics = step
	return s.touch()
}

// SetYTics sets the spacing between major y tics.
func (s *Session) SetYTics(step float64) *Session {
	s.axis.ytics = step
	return s.touch()
}

// SetMXTics sets the number of minor x tic intervals per major tic.
func (s *Session) SetMXTics(n int) *Session {
	s.axis.mxtics = n
	return s.touch()
}

// SetMYTics sets the number of minor y tic intervals per major tic.
func (s *Session) SetMYTics(n int) *Session {
	s.axis.mytics = n
	return s.touch()
}

// SetAutoTics chooses a rounded range and tic spacing for axis from
// the pushed data at render time, using at most maxTicks major tics.
// An explicit range or tic spacing on that axis takes precedence.
// maxTicks <= 0 turns it off; 1 is treated as 2. If the data's
// bounds cannot be rounded, the engine's autoscaling is left alone.
func (s *Session) SetAutoTics(axis Axis, maxTicks int) *Session {
	s.axis.autoTics[axis] = maxTicks
	return s.touch()
}

// SetXTimeFormat makes the x axis a time axis. input is the gnuplot
// timefmt of the x data (for example "%Y-%m-%d"); display, if not
// empty, is the format of the tic labels.
func (s *Session) SetXTimeFormat(input, display string) *Session {
	s.axis.xTimeFmt = input
	s.axis.xDisplayFmt = display
	return s.touch()
}

// SetYFormat sets the format of the y tic labels, such as "%.0f%%".
func (s *Session) SetYFormat(format string) *Session {
	s.axis.yFormat = format
	return s.touch()
}

// SetOrigin offsets the plot origin on the canvas, in screen
// coordinates.
func (s *Session) SetOrigin(x, y float64) *Session {
	s.axis.origin = &[2]float64{x, y}
	return s.touch()
}

// SetLegend sets the legend ("key") position, such as "top left",
// "outside", or "off".
func (s *Session) SetLegend(pos string) *Session {
	s.axis.legend = pos
	return s.touch()
}

// SetGrid configures the grid. minorTics adds grid lines at minor tics.
func (s *Session) SetGrid(minorTics bool, layer Layer) *Session {
	s.axis.gridMinor = minorTics
	s.axis.gridLayer = layer
	return s.touch()
}

// SetGraphTitle sets the title of the whole graph.
func (s *Session) SetGraphTitle(title string) *Session {
	s.title = title
	return s.touch()
}

// AddLabel places text at (x, y) in graph coordinates.
func (s *Session) AddLabel(x, y interface{}, text string) *Session {
	s.labels = append(s.labels, label{x, y, text})
	return s.touch()
}

func (s *Session) formatRange(r Range) string {
	f := s.opts.Format
	lo, hi := "", ""
	if !math.IsNaN(r.Min) {
		lo = f.FormatFloat(r.Min)
	}
	if !math.IsNaN(r.Max) {
		hi = f.FormatFloat(r.Max)
	}
	return "[" + lo + ":" + hi + "]"
}
