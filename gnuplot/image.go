// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gnuplot

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// DecodeImage decodes raster output from RenderToBuffer. It
// recognizes the PNG, JPEG, GIF, and WebP formats by their magic
// bytes and returns the format name along with the image.
func DecodeImage(b []byte) (image.Image, string, error) {
	return image.Decode(bytes.NewReader(b))
}
