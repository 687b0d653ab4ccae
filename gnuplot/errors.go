// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gnuplot

import "errors"

var (
	// ErrEngineUnavailable indicates the engine process could not
	// be started.
	ErrEngineUnavailable = errors.New("gnuplot: engine unavailable")

	// ErrChannelBroken indicates a write to or read from the engine
	// failed, usually because it exited. The Session must be
	// flushed before it can be used again.
	ErrChannelBroken = errors.New("gnuplot: channel broken")

	// ErrDimensionMismatch indicates a point's y dimension differs
	// from the dimension established by the series' first point.
	ErrDimensionMismatch = errors.New("gnuplot: dimension mismatch")
)
