// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gnuplot

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-gg/palette"
)

// Mode is a gnuplot plotting style.
type Mode string

const (
	Lines        Mode = "lines"
	Points       Mode = "points"
	LinesPoints  Mode = "linespoints"
	Impulses     Mode = "impulses"
	Dots         Mode = "dots"
	Steps        Mode = "steps"
	Boxes        Mode = "boxes"
	FilledCurves Mode = "filledcurves"
)

// style holds the optional attributes of one series. Zero values mean
// "not set".
type style struct {
	title     string
	width     float64
	lineType  int
	color     string
	pointType int
	smooth    string
	mode      Mode
}

func (s *Session) style(index int) *style {
	st := s.styles[index]
	if st == nil {
		st = new(style)
		s.styles[index] = st
	}
	return st
}

// SetTitle sets the legend title of series index.
func (s *Session) SetTitle(index int, title string) *Session {
	s.style(index).title = title
	return s.touch()
}

// SetLineWidth sets the line width of series index.
func (s *Session) SetLineWidth(index int, width float64) *Session {
	s.style(index).width = width
	return s.touch()
}

// SetLineType sets the gnuplot line type (lt) of series index.
func (s *Session) SetLineType(index int, lt int) *Session {
	s.style(index).lineType = lt
	return s.touch()
}

// SetColor sets the color of series index. color is anything gnuplot
// accepts after "rgb", such as "#A61E22" or "dark-red".
func (s *Session) SetColor(index int, color string) *Session {
	s.style(index).color = color
	return s.touch()
}

// SetPointType sets the gnuplot point type (pt) of series index.
func (s *Session) SetPointType(index int, pt int) *Session {
	s.style(index).pointType = pt
	return s.touch()
}

// SetSmooth sets the smoothing of series index, such as "csplines"
// or "bezier".
func (s *Session) SetSmooth(index int, smooth string) *Session {
	s.style(index).smooth = smooth
	return s.touch()
}

// SetMode sets the plotting style of series index, overriding the
// default mode.
func (s *Session) SetMode(index int, mode Mode) *Session {
	s.style(index).mode = mode
	return s.touch()
}

// SetDefaultMode sets the plotting style of series without their own
// mode. The initial default is Lines.
func (s *Session) SetDefaultMode(mode Mode) *Session {
	s.defaultMode = mode
	return s.touch()
}

// SetPalette colors series that have no explicit color by sampling p
// evenly across the populated series, in index order. A nil p turns
// this off.
func (s *Session) SetPalette(p palette.Continuous) *Session {
	s.palette = p
	return s.touch()
}

// paletteColors returns the palette color for each of n series.
func (s *Session) paletteColors(n int) []string {
	if s.palette == nil || n == 0 {
		return nil
	}
	colors := make([]string, n)
	for i := range colors {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		colors[i] = hexColor(s.palette.Map(x))
	}
	return colors
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
