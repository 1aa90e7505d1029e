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

package gles_test

import (
	"testing"

	"github.com/glsimple/glsimple/curated"
	"github.com/glsimple/glsimple/gles"
	"github.com/glsimple/glsimple/test"
)

func TestDefaultRequirements(t *testing.T) {
	req := gles.DefaultRequirements()
	test.ExpectEquality(t, req.String(), "GLES 2.0 r1 g1 b1 a1 d16")

	// exactly what was asked for
	test.ExpectSuccess(t, req.Satisfied(req))

	// more than was asked for
	got := req
	got.Red = 8
	got.Green = 8
	got.Blue = 8
	got.Alpha = 8
	got.Depth = 24
	got.Minor = 1
	test.ExpectSuccess(t, req.Satisfied(got))
}

func TestUnsatisfiedRequirements(t *testing.T) {
	req := gles.DefaultRequirements()

	got := req
	got.Alpha = 0
	err := req.Satisfied(got)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, gles.RequirementsError))
	test.ExpectEquality(t, err.Error(), "context: alpha size 0 (wanted 1)")

	got = req
	got.Depth = 8
	got.ES = false
	err = req.Satisfied(got)
	test.ExpectEquality(t, err.Error(), "context: not an ES context, depth size 8 (wanted 16)")

	got = req
	got.Major = 1
	got.Minor = 1
	err = req.Satisfied(got)
	test.ExpectEquality(t, err.Error(), "context: version 1.1 (wanted 2.0)")
}

func TestShaderKind(t *testing.T) {
	test.ExpectEquality(t, gles.ShaderKind(gles.VERTEX_SHADER), "vertex")
	test.ExpectEquality(t, gles.ShaderKind(gles.FRAGMENT_SHADER), "fragment")
	test.ExpectEquality(t, gles.ShaderKind(0), "unknown")
}
