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

package renderer

import (
	"strings"
	"testing"

	"github.com/glsimple/glsimple/curated"
	"github.com/glsimple/glsimple/geometry"
	"github.com/glsimple/glsimple/gles"
	"github.com/glsimple/glsimple/interrupt"
	"github.com/glsimple/glsimple/pipeline"
	"github.com/glsimple/glsimple/test"
)

// counts calls to Present() and optionally calls a function on each call
type presenter struct {
	presented int
	onPresent func(n int)
}

func (p *presenter) Present() {
	p.presented++
	if p.onPresent != nil {
		p.onPresent(p.presented)
	}
}

func newState(t *testing.T) (*State, *gles.Recorder) {
	t.Helper()
	rec := gles.NewRecorder()
	st, err := NewState(rec, pipeline.QuadSources())
	test.DemandSuccess(t, err)
	return st, rec
}

func TestNewState(t *testing.T) {
	st, rec := newState(t)

	// one program, one texture and three buffers are live
	test.ExpectEquality(t, rec.LivePrograms(), 1)
	test.ExpectEquality(t, rec.LiveTextures(), 1)
	test.ExpectEquality(t, rec.LiveBuffers(), 3)
	test.ExpectEquality(t, rec.LiveShaders(), 0)

	test.ExpectEquality(t, rec.Program, st.program.Handle)
	test.ExpectSuccess(t, rec.Enabled[gles.BLEND])
	test.ExpectEquality(t, rec.BlendFactors, [2]uint32{gles.SRC_ALPHA, gles.ONE_MINUS_SRC_ALPHA})
	test.ExpectSuccess(t, rec.Attribs[st.program.Position].Enabled)
	test.ExpectSuccess(t, rec.Attribs[st.program.Texcoord].Enabled)
	test.ExpectEquality(t, rec.GetError(), uint32(gles.NO_ERROR))

	st.Destroy()
	test.ExpectEquality(t, rec.String(), "shaders: 0, programs: 0, textures: 0, buffers: 0")

	// a second call to Destroy() has no effect
	calls := len(rec.Calls)
	st.Destroy()
	test.ExpectEquality(t, len(rec.Calls), calls)
}

func TestNewStateShaderFailure(t *testing.T) {
	rec := gles.NewRecorder()
	rec.CompileCheck = func(kind uint32, source string) string {
		if strings.Contains(source, "syntax error") {
			return "0:1: syntax error"
		}
		return ""
	}

	src := pipeline.QuadSources()
	src.Fragment = "syntax error"

	st, err := NewState(rec, src)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, st == nil)
	test.ExpectSuccess(t, curated.Is(err, SetupError))
	test.ExpectSuccess(t, curated.Has(err, pipeline.CompileError))
	test.ExpectEquality(t, err.Error(), "renderer: shader: compiling fragment: 0:1: syntax error")

	// no texture or buffer objects were ever created
	test.ExpectEquality(t, rec.Count("GenTexture"), 0)
	test.ExpectEquality(t, rec.Count("GenBuffer"), 0)
	test.ExpectEquality(t, rec.String(), "shaders: 0, programs: 0, textures: 0, buffers: 0")
}

func TestDraw(t *testing.T) {
	st, rec := newState(t)
	defer st.Destroy()

	p := &presenter{}
	st.Draw(p)

	test.ExpectEquality(t, p.presented, 1)
	test.ExpectEquality(t, st.Frames(), 1)
	test.ExpectEquality(t, rec.GetError(), uint32(gles.NO_ERROR))

	// cleared to opaque white
	test.ExpectEquality(t, rec.ClearColorValue, [4]float32{1, 1, 1, 1})
	test.ExpectEquality(t, rec.Cleared, uint32(gles.COLOR_BUFFER_BIT))

	// texture bound to unit zero and the sampler pointing at unit zero
	test.ExpectEquality(t, rec.Units[gles.TEXTURE0], st.texture)
	test.ExpectEquality(t, rec.Uniforms[st.program.Texture], int32(0))

	// one indexed draw of two triangles
	test.DemandEquality(t, len(rec.Draws), 1)
	d := rec.Draws[0]
	test.ExpectEquality(t, d.Mode, uint32(gles.TRIANGLES))
	test.ExpectEquality(t, d.Count, int32(6))
	test.ExpectEquality(t, d.Type, uint32(gles.UNSIGNED_SHORT))
	test.ExpectEquality(t, d.Program, st.program.Handle)
	test.ExpectEquality(t, d.Texture, st.texture)
	test.ExpectEquality(t, d.Elements, st.indexBuf)

	// uploaded geometry matches the quad
	q := geometry.NewQuad()

	vb := rec.Buffers[st.vertexBuf]
	test.ExpectEquality(t, vb.Target, uint32(gles.ARRAY_BUFFER))
	test.ExpectEquality(t, vb.Usage, uint32(gles.STATIC_DRAW))
	test.DemandEquality(t, len(vb.Float32), len(q.Positions))
	for i := range q.Positions {
		test.ExpectEquality(t, vb.Float32[i], q.Positions[i], i)
	}

	tb := rec.Buffers[st.texcoordBuf]
	test.DemandEquality(t, len(tb.Float32), len(q.Texcoords))
	for i := range q.Texcoords {
		test.ExpectEquality(t, tb.Float32[i], q.Texcoords[i], i)
	}

	ib := rec.Buffers[st.indexBuf]
	test.ExpectEquality(t, ib.Target, uint32(gles.ELEMENT_ARRAY_BUFFER))
	test.DemandEquality(t, len(ib.Uint16), len(q.Indices))
	for i := range q.Indices {
		test.ExpectEquality(t, ib.Uint16[i], q.Indices[i], i)
	}

	// attribute pointers reference the correct buffers
	pos := rec.Attribs[st.program.Position]
	test.ExpectEquality(t, pos.Buffer, st.vertexBuf)
	test.ExpectEquality(t, pos.Size, int32(3))
	test.ExpectEquality(t, pos.Type, uint32(gles.FLOAT))
	tex := rec.Attribs[st.program.Texcoord]
	test.ExpectEquality(t, tex.Buffer, st.texcoordBuf)
	test.ExpectEquality(t, tex.Size, int32(2))

	// GL errors are checked after the first frame only
	test.ExpectEquality(t, rec.Count("GetError"), 2)
	st.Draw(p)
	test.ExpectEquality(t, rec.Count("GetError"), 2)
	test.ExpectFailure(t, st.AllowLogging())
}

func TestGeometryReuploaded(t *testing.T) {
	st, rec := newState(t)
	defer st.Destroy()

	running := interrupt.NewFlag()
	n := st.Run(running, &presenter{}, 5)
	test.ExpectEquality(t, n, 5)

	test.ExpectEquality(t, rec.Buffers[st.vertexBuf].Uploads, 5)
	test.ExpectEquality(t, rec.Buffers[st.texcoordBuf].Uploads, 5)
	test.ExpectEquality(t, rec.Buffers[st.indexBuf].Uploads, 5)
	test.ExpectEquality(t, len(rec.Draws), 5)
}

func TestRunStopped(t *testing.T) {
	st, rec := newState(t)
	defer st.Destroy()

	running := interrupt.NewFlag()

	// stop the flag during the third frame. a second stop before the flag
	// is observed makes no difference
	p := &presenter{
		onPresent: func(n int) {
			if n == 3 {
				running.Stop()
				running.Stop()
			}
		},
	}

	n := st.Run(running, p, 0)
	test.ExpectEquality(t, n, 3)
	test.ExpectEquality(t, p.presented, 3)
	test.ExpectEquality(t, len(rec.Draws), 3)

	// once stopped nothing more is drawn
	n = st.Run(running, p, 0)
	test.ExpectEquality(t, n, 0)
	test.ExpectEquality(t, p.presented, 3)
	test.ExpectEquality(t, len(rec.Draws), 3)
}

func TestRunAlreadyStopped(t *testing.T) {
	st, rec := newState(t)
	defer st.Destroy()

	running := interrupt.NewFlag()
	running.Stop()

	p := &presenter{}
	test.ExpectEquality(t, st.Run(running, p, 0), 0)
	test.ExpectEquality(t, p.presented, 0)
	test.ExpectEquality(t, rec.Count("Clear"), 0)
}
