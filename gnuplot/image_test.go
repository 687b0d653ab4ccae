// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gnuplot

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestDecodeImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{0xff, 0, 0, 0xff})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	got, format, err := DecodeImage(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if format != "png" {
		t.Errorf("format %q; want png", format)
	}
	if b := got.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds %v; want 4x3", b)
	}

	if _, _, err := DecodeImage([]byte("gnuplot> plot\n         ^\n")); err == nil {
		t.Errorf("decoding engine error text succeeded")
	}
}
