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

package pipeline_test

import (
	"strings"
	"testing"

	"github.com/glsimple/glsimple/curated"
	"github.com/glsimple/glsimple/gles"
	"github.com/glsimple/glsimple/logger"
	"github.com/glsimple/glsimple/pipeline"
	"github.com/glsimple/glsimple/test"
)

// rejects any source containing the string "syntax error"
func rejectSyntaxErrors(kind uint32, source string) string {
	if strings.Contains(source, "syntax error") {
		return "0:1: syntax error"
	}
	return ""
}

func TestBuild(t *testing.T) {
	rec := gles.NewRecorder()
	rec.CompileCheck = rejectSyntaxErrors

	prg, err := pipeline.Build(rec, pipeline.QuadSources())
	test.DemandSuccess(t, err)

	test.ExpectInequality(t, prg.Handle, uint32(0))
	test.ExpectEquality(t, prg.Position, uint32(0))
	test.ExpectEquality(t, prg.Texcoord, uint32(1))
	test.ExpectEquality(t, prg.Texture, int32(0))

	// intermediate shaders have been deleted
	test.ExpectEquality(t, rec.LiveShaders(), 0)
	test.ExpectEquality(t, rec.LivePrograms(), 1)

	prg.Destroy(rec)
	test.ExpectEquality(t, rec.LivePrograms(), 0)
	test.ExpectEquality(t, prg.Handle, uint32(0))

	// a second call to Destroy() does nothing
	prg.Destroy(rec)
	test.ExpectEquality(t, rec.Count("DeleteProgram"), 1)
	test.ExpectEquality(t, rec.GetError(), uint32(gles.NO_ERROR))
}

func TestCompileFailure(t *testing.T) {
	for _, stage := range []string{"vertex", "fragment"} {
		logger.Clear()

		rec := gles.NewRecorder()
		rec.CompileCheck = rejectSyntaxErrors

		src := pipeline.QuadSources()
		switch stage {
		case "vertex":
			src.Vertex = "syntax error"
		case "fragment":
			src.Fragment = "syntax error"
		}

		prg, err := pipeline.Build(rec, src)
		test.ExpectFailure(t, err, stage)
		test.ExpectSuccess(t, prg == nil, stage)
		test.ExpectSuccess(t, curated.Is(err, pipeline.CompileError), stage)
		test.ExpectEquality(t, err.Error(), "shader: compiling "+stage+": 0:1: syntax error", stage)

		// nothing survives the failure
		test.ExpectEquality(t, rec.LiveShaders(), 0, stage)
		test.ExpectEquality(t, rec.LivePrograms(), 0, stage)

		// diagnostic has been logged
		w := &test.Writer{}
		logger.Tail(w, 1)
		test.ExpectEquality(t, w.String(), "shader: compiling "+stage+": 0:1: syntax error\n", stage)
	}
}

func TestLinkFailure(t *testing.T) {
	rec := gles.NewRecorder()
	rec.LinkCheck = func(program uint32) string {
		return "varying v_texcoord not written by vertex shader"
	}

	prg, err := pipeline.Build(rec, pipeline.QuadSources())
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, prg == nil)
	test.ExpectSuccess(t, curated.Is(err, pipeline.LinkError))
	test.ExpectEquality(t, rec.LiveShaders(), 0)
	test.ExpectEquality(t, rec.LivePrograms(), 0)
}

func TestMissingLocation(t *testing.T) {
	rec := gles.NewRecorder()

	src := pipeline.QuadSources()
	src.Fragment = strings.ReplaceAll(src.Fragment, "uniform sampler2D texture;", "")

	prg, err := pipeline.Build(rec, src)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, prg == nil)
	test.ExpectSuccess(t, curated.Is(err, pipeline.LocationError))
	test.ExpectEquality(t, err.Error(), "shader: uniform texture not found")
	test.ExpectEquality(t, rec.LivePrograms(), 0)
}

func TestQuadSources(t *testing.T) {
	src := pipeline.QuadSources()
	test.ExpectSuccess(t, strings.Contains(src.Vertex, "attribute vec3 position;"))
	test.ExpectSuccess(t, strings.Contains(src.Vertex, "attribute vec2 texcoord;"))
	test.ExpectSuccess(t, strings.Contains(src.Fragment, "uniform sampler2D texture;"))
}
