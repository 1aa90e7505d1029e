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

package texture_test

import (
	"image/color"
	"math"
	"testing"

	"github.com/glsimple/glsimple/gles"
	"github.com/glsimple/glsimple/test"
	"github.com/glsimple/glsimple/texture"
)

func TestCircleDisk(t *testing.T) {
	for _, r := range []int{1, 2, 5, 16, 33} {
		img := texture.Circle(r)
		test.DemandEquality(t, img.Bounds().Dx(), r*2, r)
		test.DemandEquality(t, img.Bounds().Dy(), r*2, r)

		for y := 0; y < r*2; y++ {
			for x := 0; x < r*2; x++ {
				inside := (x-r)*(x-r)+(y-r)*(y-r) < r*r
				c := img.RGBAAt(x, y)
				if inside {
					test.ExpectEquality(t, c, texture.Fill, r, x, y)
				} else {
					test.ExpectEquality(t, c, color.RGBA{}, r, x, y)
				}
			}
		}
	}
}

func TestCircleScenario(t *testing.T) {
	img := texture.Circle(texture.Radius)
	test.ExpectEquality(t, img.Bounds().Dx(), 256)
	test.ExpectEquality(t, img.Bounds().Dy(), 256)

	// centre
	test.ExpectEquality(t, img.RGBAAt(128, 128), texture.Fill)

	// corner
	test.ExpectEquality(t, img.RGBAAt(0, 0), color.RGBA{})
	test.ExpectEquality(t, img.RGBAAt(255, 255), color.RGBA{})

	// margin. 127² < 128²
	test.ExpectEquality(t, img.RGBAAt(128, 127), texture.Fill)

	// on the circle itself. the inequality is strict
	test.ExpectEquality(t, img.RGBAAt(128, 0), color.RGBA{})
	test.ExpectEquality(t, img.RGBAAt(0, 128), color.RGBA{})
	test.ExpectEquality(t, img.RGBAAt(128, 1), texture.Fill)

	// byte layout of a filled pixel is R, G, B, A
	i := img.PixOffset(128, 128)
	test.ExpectEquality(t, img.Pix[i+0], uint8(0xff))
	test.ExpectEquality(t, img.Pix[i+1], uint8(0x00))
	test.ExpectEquality(t, img.Pix[i+2], uint8(0x00))
	test.ExpectEquality(t, img.Pix[i+3], uint8(0xff))
}

func TestCoverage(t *testing.T) {
	// coverage converges on the area of the circle as the radius grows
	for _, r := range []int{32, 64, 128, 256} {
		area := math.Pi * float64(r*r)
		test.ExpectApproximate(t, float64(texture.Coverage(texture.Circle(r))), area, 4.0/float64(r), r)
	}

	// a radius of one covers the single pixel at the centre
	test.ExpectEquality(t, texture.Coverage(texture.Circle(1)), 1)
}

func TestUpload(t *testing.T) {
	rec := gles.NewRecorder()
	img := texture.Circle(texture.Radius)

	tex := texture.Upload(rec, img)
	test.DemandInequality(t, tex, uint32(0))
	test.ExpectEquality(t, rec.GetError(), uint32(gles.NO_ERROR))
	test.ExpectEquality(t, rec.LiveTextures(), 1)

	rt := rec.Textures[tex]
	test.ExpectEquality(t, rt.Width, int32(256))
	test.ExpectEquality(t, rt.Height, int32(256))
	test.ExpectEquality(t, rt.Format, uint32(gles.RGBA))
	test.ExpectEquality(t, len(rt.Pixels), 256*256*4)
	test.ExpectEquality(t, rt.Params[gles.TEXTURE_MAG_FILTER], int32(gles.LINEAR))
	test.ExpectEquality(t, rt.Params[gles.TEXTURE_MIN_FILTER], int32(gles.LINEAR))
	test.ExpectEquality(t, rt.Params[gles.TEXTURE_WRAP_S], int32(gles.CLAMP_TO_EDGE))
	test.ExpectEquality(t, rt.Params[gles.TEXTURE_WRAP_T], int32(gles.CLAMP_TO_EDGE))

	// the upload is a copy so the image can be discarded
	img.Pix[img.PixOffset(128, 128)] = 0
	test.ExpectEquality(t, rt.Pixels[img.PixOffset(128, 128)], uint8(0xff))

	// texture has been unbound
	test.ExpectEquality(t, rec.Units[gles.TEXTURE0], uint32(0))
}
