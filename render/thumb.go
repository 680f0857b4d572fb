// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// Thumbnail reads an image from src, scales it down by factor and
// writes the result to dst as PNG.
func Thumbnail(dst io.Writer, src io.Reader, factor int) error {
	if factor < 1 {
		return fmt.Errorf("thumbnail scale factor must be at least 1, got %d", factor)
	}
	img, _, err := image.Decode(src)
	if err != nil {
		return err
	}

	sb := img.Bounds()
	w, h := sb.Dx()/factor, sb.Dy()/factor
	if w < 1 || h < 1 {
		return fmt.Errorf("%dx%d image too small to scale down by %d", sb.Dx(), sb.Dy(), factor)
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(out, out.Bounds(), img, sb, draw.Over, nil)
	return png.Encode(dst, out)
}

// ThumbnailFile writes a thumbnail of the image at path to thumbPath.
func ThumbnailFile(thumbPath, path string, factor int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	out, err := os.Create(thumbPath)
	if err != nil {
		return err
	}
	if err := Thumbnail(out, f, factor); err != nil {
		out.Close()
		os.Remove(thumbPath)
		return err
	}
	return out.Close()
}
