// This file is part of glsimple.
//
// glsimple is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// glsimple is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with glsimple.  If not, see <https://www.gnu.org/licenses/>.

// Package texture generates the procedural image drawn on the quad and
// uploads it to the GPU.
package texture

import (
	"image"
	"image/color"

	"github.com/glsimple/glsimple/gles"
	"github.com/glsimple/glsimple/logger"
)

// Radius of the circle drawn by Circle() when creating the quad texture. The
// texture is a square with an edge length of twice the radius.
const Radius = 128

// Fill is the color of pixels inside the circle.
var Fill = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}

// Circle rasterises a filled circle into a new square image with an edge
// length of twice the radius. A pixel at (x, y) is set to Fill if
//
//	(x-r)² + (y-r)² < r²
//
// otherwise it is left as the zero value, which is fully transparent.
func Circle(radius int) *image.RGBA {
	edge := radius * 2
	img := image.NewRGBA(image.Rect(0, 0, edge, edge))

	rr := radius * radius
	for y := 0; y < edge; y++ {
		dy := y - radius
		for x := 0; x < edge; x++ {
			dx := x - radius
			if dx*dx+dy*dy < rr {
				img.SetRGBA(x, y, Fill)
			}
		}
	}

	return img
}

// Coverage returns the number of pixels in the image that have the Fill color.
func Coverage(img *image.RGBA) int {
	var n int
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == Fill {
				n++
			}
		}
	}
	return n
}

// Upload creates a new 2D texture object from the image and returns its
// handle. The texture uses linear filtering and is clamped at the edges. The
// texture is unbound before returning and the image is no longer needed once
// Upload() has returned.
//
// Returns zero if the texture object could not be created.
func Upload(api gles.API, img *image.RGBA) uint32 {
	tex := api.GenTexture()
	if tex == 0 {
		return 0
	}

	w := int32(img.Bounds().Dx())
	h := int32(img.Bounds().Dy())

	// the image stride is always 4*w for an image created by image.NewRGBA()
	// so the pixel data can be uploaded without repacking
	api.BindTexture(gles.TEXTURE_2D, tex)
	api.TexImage2D(gles.TEXTURE_2D, 0, gles.RGBA, w, h, gles.RGBA, gles.UNSIGNED_BYTE, img.Pix)
	api.TexParameteri(gles.TEXTURE_2D, gles.TEXTURE_MAG_FILTER, gles.LINEAR)
	api.TexParameteri(gles.TEXTURE_2D, gles.TEXTURE_MIN_FILTER, gles.LINEAR)
	api.TexParameteri(gles.TEXTURE_2D, gles.TEXTURE_WRAP_S, gles.CLAMP_TO_EDGE)
	api.TexParameteri(gles.TEXTURE_2D, gles.TEXTURE_WRAP_T, gles.CLAMP_TO_EDGE)
	api.BindTexture(gles.TEXTURE_2D, 0)

	logger.Logf(logger.Allow, "texture", "uploaded %dx%d texture %d", w, h, tex)

	return tex
}
