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

// Package renderer owns the GL objects used to draw the textured quad and
// runs the render loop.
//
// All GL objects are held by the State type. A State is created by NewState(),
// driven by Draw() or Run() and released by Destroy(). State functions MUST be
// called from the goroutine that created the State and that goroutine must be
// locked to the thread on which the GL context is current.
package renderer

import (
	"time"

	"github.com/glsimple/glsimple/assert"
	"github.com/glsimple/glsimple/curated"
	"github.com/glsimple/glsimple/geometry"
	"github.com/glsimple/glsimple/gles"
	"github.com/glsimple/glsimple/interrupt"
	"github.com/glsimple/glsimple/logger"
	"github.com/glsimple/glsimple/pipeline"
	"github.com/glsimple/glsimple/texture"
)

// Error patterns returned by NewState().
const (
	SetupError  = "renderer: %v"
	ObjectError = "renderer: cannot create %s"
)

// Presenter is implemented by types that can show the most recently drawn
// frame. For a windowed surface this means swapping the buffers.
type Presenter interface {
	Present()
}

// State is the GL state required to draw the quad.
type State struct {
	api   gles.API
	owner assert.Owner

	program *pipeline.Program
	texture uint32

	vertexBuf   uint32
	texcoordBuf uint32
	indexBuf    uint32

	quad geometry.Quad

	// number of frames drawn
	frames int
}

// NewState builds the shader program, uploads the texture and creates the
// buffer objects. If the program cannot be built then an error is returned
// and no texture or buffer objects are created.
func NewState(api gles.API, src pipeline.Sources) (*State, error) {
	prg, err := pipeline.Build(api, src)
	if err != nil {
		return nil, curated.Errorf(SetupError, err)
	}

	st := &State{
		api:     api,
		owner:   assert.NewOwner(),
		program: prg,
		quad:    geometry.NewQuad(),
	}

	api.UseProgram(prg.Handle)
	api.Enable(gles.BLEND)
	api.BlendFunc(gles.SRC_ALPHA, gles.ONE_MINUS_SRC_ALPHA)
	api.EnableVertexAttribArray(prg.Position)
	api.EnableVertexAttribArray(prg.Texcoord)

	img := texture.Circle(texture.Radius)
	logger.Logf(logger.Allow, "texture", "circle of radius %d covers %d pixels", texture.Radius, texture.Coverage(img))

	st.texture = texture.Upload(api, img)
	if st.texture == 0 {
		st.Destroy()
		return nil, curated.Errorf(ObjectError, "texture")
	}

	for _, b := range []struct {
		handle *uint32
		name   string
	}{
		{&st.vertexBuf, "vertex buffer"},
		{&st.texcoordBuf, "texcoord buffer"},
		{&st.indexBuf, "index buffer"},
	} {
		*b.handle = api.GenBuffer()
		if *b.handle == 0 {
			st.Destroy()
			return nil, curated.Errorf(ObjectError, b.name)
		}
	}

	return st, nil
}

// AllowLogging implements the logger.Permission interface. Logging is only
// allowed before the first frame has completed.
func (st *State) AllowLogging() bool {
	return st.frames == 0
}

// Frames returns the number of frames drawn.
func (st *State) Frames() int {
	return st.frames
}

// Draw a single frame and present it. Geometry is uploaded on every call.
func (st *State) Draw(p Presenter) {
	api := st.api

	api.ClearColor(1.0, 1.0, 1.0, 1.0)
	api.Clear(gles.COLOR_BUFFER_BIT)

	api.ActiveTexture(gles.TEXTURE0)
	api.BindTexture(gles.TEXTURE_2D, st.texture)
	api.Uniform1i(st.program.Texture, 0)

	api.BindBuffer(gles.ARRAY_BUFFER, st.vertexBuf)
	api.BufferDataFloat32(gles.ARRAY_BUFFER, st.quad.Positions[:], gles.STATIC_DRAW)
	api.VertexAttribPointer(st.program.Position, geometry.PositionSize, gles.FLOAT, false, 0, 0)

	api.BindBuffer(gles.ARRAY_BUFFER, st.texcoordBuf)
	api.BufferDataFloat32(gles.ARRAY_BUFFER, st.quad.Texcoords[:], gles.STATIC_DRAW)
	api.VertexAttribPointer(st.program.Texcoord, geometry.TexcoordSize, gles.FLOAT, false, 0, 0)

	api.BindBuffer(gles.ELEMENT_ARRAY_BUFFER, st.indexBuf)
	api.BufferDataUint16(gles.ELEMENT_ARRAY_BUFFER, st.quad.Indices[:], gles.STATIC_DRAW)

	api.DrawElements(gles.TRIANGLES, int32(len(st.quad.Indices)), gles.UNSIGNED_SHORT, 0)

	p.Present()

	// errors are only checked after the first frame
	if st.frames == 0 {
		if err := api.GetError(); err != gles.NO_ERROR {
			logger.Logf(st, "renderer", "GL error %#04x after first frame", err)
		}
	}

	st.frames++
}

// Run draws frames until the flag is stopped. The flag is checked before each
// frame so a frame that has started will always be presented. If limit is
// greater than zero then no more than limit frames will be drawn.
//
// Returns the number of frames drawn by this call.
func (st *State) Run(running *interrupt.Flag, p Presenter, limit int) int {
	if !st.owner.IsOwner() {
		logger.Log(logger.Allow, "renderer", "render loop is running on a different goroutine to the one that created the GL objects")
	}

	start := time.Now()

	var n int
	for running.Running() {
		if limit > 0 && n >= limit {
			break
		}
		st.Draw(p)
		n++
	}

	elapsed := time.Since(start)
	if elapsed > 0 && n > 0 {
		logger.Logf(logger.Allow, "renderer", "%d frames in %v (%.1f fps)", n, elapsed.Round(time.Millisecond), float64(n)/elapsed.Seconds())
	}

	return n
}

// Destroy deletes the program, texture and buffer objects. It is safe to call
// more than once.
func (st *State) Destroy() {
	api := st.api

	if st.program != nil {
		st.program.Destroy(api)
	}

	if st.texture != 0 {
		api.DeleteTexture(st.texture)
		st.texture = 0
	}

	for _, b := range []*uint32{&st.vertexBuf, &st.texcoordBuf, &st.indexBuf} {
		if *b != 0 {
			api.DeleteBuffer(*b)
			*b = 0
		}
	}
}
