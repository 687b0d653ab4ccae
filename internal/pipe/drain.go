// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipe

import (
	"io"
	"time"
)

// ChunkSize is the maximum number of bytes Drain takes from its source
// per poll.
const ChunkSize = 4096

// A Source is a non-blocking byte source. ReadAvailable returns 0, nil
// if no data is available yet and 0, io.EOF once no more data will
// ever be available.
type Source interface {
	ReadAvailable(p []byte) (int, error)
}

// sleep is replaced in tests.
var sleep = time.Sleep

// Drain polls src every poll interval and accumulates what it reads.
//
// timeout is a floor, not a deadline: Drain keeps going past it for as
// long as each poll still returns data, so a large render that keeps
// streaming is not truncated. Consequently a source that never goes
// quiet never returns. Drain stops early if src reaches EOF; that is
// an error only if nothing was read.
//
// TODO: revisit whether the floor behavior should become a hard cap
// once callers can tolerate truncated output.
func Drain(src Source, poll, timeout time.Duration) ([]byte, error) {
	if poll <= 0 {
		poll = time.Millisecond
	}
	var out []byte
	buf := make([]byte, ChunkSize)
	for {
		n, err := src.ReadAvailable(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			if len(out) == 0 {
				return nil, io.ErrUnexpectedEOF
			}
			return out, nil
		} else if err != nil {
			return out, err
		}
		sleep(poll)
		timeout -= poll
		if timeout <= 0 && n == 0 {
			return out, nil
		}
	}
}
