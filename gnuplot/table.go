// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gnuplot

import (
	"fmt"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// PushTable adds the rows of each table in g as a new series, using
// column xcol for x and columns ycols for y. Series are numbered from
// the first index above every existing series, in group order; that
// first index is returned. If g is grouped, each series is titled with
// its group label.
//
// The y columns must be numeric. PushTable adds nothing if any table
// is missing a column.
func (s *Session) PushTable(g table.Grouping, xcol string, ycols ...string) (int, error) {
	if len(ycols) == 0 {
		return 0, fmt.Errorf("gnuplot: PushTable needs at least one y column")
	}

	type group struct {
		title string
		xs    reflect.Value
		ys    [][]float64
	}
	var groups []group
	for _, gid := range g.Tables() {
		t := g.Table(gid)
		xcolv := t.Column(xcol)
		if xcolv == nil {
			return 0, fmt.Errorf("gnuplot: table %v has no column %q", gid, xcol)
		}
		grp := group{xs: reflect.ValueOf(xcolv)}
		for _, ycol := range ycols {
			col := t.Column(ycol)
			if col == nil {
				return 0, fmt.Errorf("gnuplot: table %v has no column %q", gid, ycol)
			}
			if !isNumericSlice(col) {
				return 0, fmt.Errorf("gnuplot: column %q is %T, not numeric", ycol, col)
			}
			var ys []float64
			slice.Convert(&ys, col)
			grp.ys = append(grp.ys, ys)
		}
		if gid != table.RootGroupID {
			grp.title = fmt.Sprint(gid.Label())
		}
		groups = append(groups, grp)
	}

	first := s.nextIndex()
	for i, grp := range groups {
		idx := first + i
		y := make([]float64, len(ycols))
		for row := 0; row < grp.xs.Len(); row++ {
			for j := range ycols {
				y[j] = grp.ys[j][row]
			}
			// idx is a new series and every row has the same
			// dimension, so this can't fail.
			s.Push(idx, grp.xs.Index(row).Interface(), y...)
		}
		if grp.title != "" {
			s.SetTitle(idx, grp.title)
		}
	}
	return first, nil
}

func isNumericSlice(col interface{}) bool {
	t := reflect.TypeOf(col)
	if t.Kind() != reflect.Slice {
		return false
	}
	switch t.Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
