// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gnuplot

import (
	"fmt"
	"sort"
)

type point struct {
	x interface{}
	y []float64
}

// series is the data for one plot index, in plot order.
type series struct {
	// dim is the number of y components of every point.
	dim    int
	points []point
}

// Push appends the point (x, y...) to series index. x may be any Go
// number, a string, or a time.Time; it is formatted with the Session's
// Formatter. Most plot modes take one y value; bands such as
// FilledCurves take two.
//
// The first point pushed to a series fixes its y dimension. Pushing a
// point with a different number of y values returns an error wrapping
// ErrDimensionMismatch and leaves the series unchanged.
func (s *Session) Push(index int, x interface{}, y ...float64) error {
	if index < 0 {
		return fmt.Errorf("gnuplot: negative series index %d", index)
	}
	if len(y) == 0 {
		return fmt.Errorf("gnuplot: point for series %d has no y value", index)
	}
	sr := s.series[index]
	if sr == nil {
		sr = &series{dim: len(y)}
		s.series[index] = sr
	} else if sr.dim != len(y) {
		return fmt.Errorf("%w: series %d has %d y values per point, got %d", ErrDimensionMismatch, index, sr.dim, len(y))
	}
	sr.points = append(sr.points, point{x, append([]float64(nil), y...)})
	s.touch()
	return nil
}

// Len returns the number of points in series index.
func (s *Session) Len(index int) int {
	if sr := s.series[index]; sr != nil {
		return len(sr.points)
	}
	return 0
}

// indexes returns the populated series indexes in ascending order.
func (s *Session) indexes() []int {
	idxs := make([]int, 0, len(s.series))
	for i := range s.series {
		idxs = append(idxs, i)
	}
	sort.Ints(idxs)
	return idxs
}

// nextIndex returns the smallest index above every populated series.
func (s *Session) nextIndex() int {
	next := 0
	for i := range s.series {
		if i >= next {
			next = i + 1
		}
	}
	return next
}
