// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gnuplot

import (
	"testing"
	"time"
)

type stringer struct{}

func (stringer) String() string { return "str" }

func TestDecimalFormat(t *testing.T) {
	when := time.Date(2016, 3, 4, 5, 6, 7, 0, time.UTC)
	for _, test := range []struct {
		f    DecimalFormat
		v    interface{}
		want string
	}{
		{DecimalFormat{}, 0.1, "0.1"},
		{DecimalFormat{}, 1e21, "1e+21"},
		{DecimalFormat{}, -3.0, "-3"},
		{DecimalFormat{}, float32(0.1), "0.1"},
		{DecimalFormat{}, 42, "42"},
		{DecimalFormat{}, int64(-7), "-7"},
		{DecimalFormat{}, uint8(255), "255"},
		{DecimalFormat{}, "2016-03-04", "2016-03-04"},
		{DecimalFormat{}, when, "2016-03-04T05:06:07Z"},
		{DecimalFormat{TimeLayout: "2006-01-02"}, when, "2016-03-04"},
		{DecimalFormat{}, stringer{}, "str"},
		{DecimalFormat{Fmt: 'f', Prec: 2}, 2.5, "2.50"},
		{DecimalFormat{Fmt: 'e', Prec: 1}, 1234.0, "1.2e+03"},
	} {
		if got := test.f.FormatValue(test.v); got != test.want {
			t.Errorf("%+v.FormatValue(%v) = %q; want %q", test.f, test.v, got, test.want)
		}
	}
}

func TestCustomFormatter(t *testing.T) {
	s, fc := newTestSession(t)
	s.opts.Format = DecimalFormat{Fmt: 'f', Prec: 1}
	s.SetYRange(0, 2)
	mustPush(t, s, 0, 1.75, 2)
	if err := s.Display(); err != nil {
		t.Fatal(err)
	}
	checkLines(t, fc.lines, []string{
		"set grid",
		"set yrange [0.0:2.0]",
		"plot '-' using 1:2 with lines",
		"1.8 2.0", "e",
	})
}
