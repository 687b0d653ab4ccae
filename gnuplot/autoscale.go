// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gnuplot

import (
	"math"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"
)

// autoAxis returns the range and major tic spacing to emit for axis.
// explicit settings win; otherwise, if automatic tics are enabled for
// axis, they are derived from the data.
func (s *Session) autoAxis(axis Axis, r *Range, tics float64) (*Range, float64) {
	maxTicks := s.axis.autoTics[axis]
	if maxTicks <= 0 || r != nil {
		return r, tics
	}
	if axis == X && s.axis.xTimeFmt != "" {
		return r, tics
	}
	nr, step, ok := niceRange(s.axisValues(axis), maxTicks)
	if !ok {
		return r, tics
	}
	if tics <= 0 {
		tics = step
	}
	return &nr, tics
}

// axisValues returns every finite value plotted along axis. For X it
// returns nil if any x value is not a number.
func (s *Session) axisValues(axis Axis) []float64 {
	var xs []float64
	for _, sr := range s.series {
		for _, p := range sr.points {
			if axis == X {
				x, ok := toFloat(p.x)
				if !ok {
					return nil
				}
				xs = appendFinite(xs, x)
				continue
			}
			for _, y := range p.y {
				xs = appendFinite(xs, y)
			}
		}
	}
	return xs
}

func appendFinite(xs []float64, x float64) []float64 {
	if !finite(x) {
		return xs
	}
	return append(xs, x)
}

// niceRange rounds the bounds of xs out to tic marks, choosing the
// finest tic level with at most maxTicks major tics. maxTicks below 2
// is treated as 2, since a range needs two tics to have a spacing.
//
// It reports false if the bounds cannot be rounded, for example when
// they are so far apart or so close together that the tic level
// computation overflows or underflows.
func niceRange(xs []float64, maxTicks int) (r Range, step float64, ok bool) {
	if len(xs) == 0 {
		return Range{}, 0, false
	}
	if maxTicks < 2 {
		maxTicks = 2
	}
	lo, hi := stats.Bounds(xs)
	if lo == hi {
		// Give a single value some room.
		pad := math.Abs(lo) / 2
		if pad == 0 {
			pad = 1
		}
		lo, hi = lo-pad, hi+pad
	}
	if !finite(hi - lo) {
		return Range{}, 0, false
	}

	// scale panics when a tick level's tick count doesn't fit in an
	// int, which extreme bounds can provoke.
	defer func() {
		if recover() != nil {
			r, step, ok = Range{}, 0, false
		}
	}()

	o := scale.TickOptions{Max: maxTicks}
	l := scale.Linear{Min: lo, Max: hi}
	l.Nice(o)
	if !finite(l.Min) || !finite(l.Max) || !(l.Min < l.Max) || l.Min > lo || l.Max < hi {
		return Range{}, 0, false
	}
	major, _ := l.Ticks(o)
	if len(major) < 2 {
		return Range{}, 0, false
	}
	step = major[1] - major[0]
	if !finite(step) || step <= 0 {
		return Range{}, 0, false
	}
	return Range{l.Min, l.Max}, step, true
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
