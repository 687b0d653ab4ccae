// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gnuplot

import (
	"testing"

	"github.com/aclements/go-gg/table"
)

func TestPushTable(t *testing.T) {
	s, _ := newTestSession(t)
	mustPush(t, s, 2, 0, 0)

	tab := new(table.Builder).
		Add("commit", []int{1, 2, 3, 1, 2}).
		Add("ns/op", []float64{10, 11, 9, 100, 90}).
		Add("n", []int{5, 5, 5, 3, 3}).
		Add("bench", []string{"A", "A", "A", "B", "B"}).
		Done()
	first, err := s.PushTable(table.GroupBy(tab, "bench"), "commit", "ns/op", "n")
	if err != nil {
		t.Fatal(err)
	}
	if first != 3 {
		t.Fatalf("first index %d; want 3", first)
	}
	if s.Len(3) != 3 || s.Len(4) != 2 {
		t.Fatalf("series lengths %d, %d; want 3, 2", s.Len(3), s.Len(4))
	}
	want := `plot '-' using 1:2 with lines, ` +
		`'-' using 1:2:3 with lines title "A", ` +
		`'-' using 1:2:3 with lines title "B"`
	if got := s.plotCommand(); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
	checkLines(t, s.dataLines(), []string{
		"0 0", "e",
		"1 10 5", "2 11 5", "3 9 5", "e",
		"1 100 3", "2 90 3", "e",
	})
}

func TestPushTableUngrouped(t *testing.T) {
	s, _ := newTestSession(t)
	tab := new(table.Builder).
		Add("x", []string{"a", "b"}).
		Add("y", []float64{1, 2}).
		Done()
	first, err := s.PushTable(tab, "x", "y")
	if err != nil {
		t.Fatal(err)
	}
	if first != 0 || s.Len(0) != 2 {
		t.Fatalf("got first %d, len %d; want 0, 2", first, s.Len(0))
	}
	if st := s.styles[0]; st != nil && st.title != "" {
		t.Errorf("ungrouped table got title %q", st.title)
	}
}

func TestPushTableErrors(t *testing.T) {
	s, _ := newTestSession(t)
	tab := new(table.Builder).
		Add("x", []float64{1, 2}).
		Add("name", []string{"a", "b"}).
		Done()
	for _, ycols := range [][]string{nil, {"missing"}, {"name"}} {
		if _, err := s.PushTable(tab, "x", ycols...); err == nil {
			t.Errorf("PushTable with y columns %q succeeded", ycols)
		}
	}
	if _, err := s.PushTable(tab, "missing", "x"); err == nil {
		t.Errorf("PushTable with missing x column succeeded")
	}
	if s.Len(0) != 0 || s.State() != Fresh {
		t.Errorf("failed PushTable modified the session")
	}
}
