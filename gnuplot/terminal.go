// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gnuplot

// Format is an output format, named by its gnuplot terminal type.
type Format string

const (
	PNG      Format = "png"
	PNGCairo Format = "pngcairo"
	JPEG     Format = "jpeg"
	GIF      Format = "gif"
	WebP     Format = "webp"
	SVG      Format = "svg"
	PDF      Format = "pdfcairo"
	EPS      Format = "epscairo"
)

// Unit is the unit of canvas dimensions.
type Unit string

const (
	// Blank leaves dimensions unitless, which gnuplot interprets
	// as pixels for raster terminals.
	Blank       Unit = ""
	Inches      Unit = "in"
	Centimeters Unit = "cm"
)

type canvas struct {
	width, height float64
	// outWidth and outHeight, when both set, replace width and
	// height in the terminal command.
	outWidth, outHeight float64
	unit                Unit
}

// size returns the canvas dimensions the terminal should use.
func (c canvas) size() (w, h float64) {
	if c.outWidth > 0 && c.outHeight > 0 {
		return c.outWidth, c.outHeight
	}
	return c.width, c.height
}

// SetWidth sets the canvas width. The default is 1200.
func (s *Session) SetWidth(w float64) *Session {
	s.canvas.width = w
	return s.touch()
}

// SetHeight sets the canvas height. The default is 800.
func (s *Session) SetHeight(h float64) *Session {
	s.canvas.height = h
	return s.touch()
}

// SetCanvasSize sets distinct output canvas dimensions. When both are
// positive they take precedence over SetWidth and SetHeight.
func (s *Session) SetCanvasSize(w, h float64) *Session {
	s.canvas.outWidth, s.canvas.outHeight = w, h
	return s.touch()
}

// SetUnit sets the unit of the canvas dimensions.
func (s *Session) SetUnit(u Unit) *Session {
	s.canvas.unit = u
	return s.touch()
}

func (s *Session) terminalCommand(f Format, c canvas) string {
	fm := s.opts.Format
	w, h := c.size()
	return "set terminal " + string(f) + " size " +
		fm.FormatFloat(w) + string(c.unit) + "," +
		fm.FormatFloat(h) + string(c.unit)
}
