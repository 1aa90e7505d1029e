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

// Package pipeline compiles and links the shader program used to draw the
// textured quad.
//
// Intermediate shader objects never outlive the call to Build(), whether or
// not the build was successful. A program is only returned if it has linked and
// all of the attribute and uniform locations needed to draw have been found.
package pipeline

import (
	"github.com/glsimple/glsimple/curated"
	"github.com/glsimple/glsimple/gles"
	"github.com/glsimple/glsimple/logger"
	"github.com/glsimple/glsimple/pipeline/shaders"
)

// Error patterns returned by Build().
const (
	CreateError   = "shader: cannot create %s"
	CompileError  = "shader: compiling %s: %s"
	LinkError     = "shader: linking: %s"
	LocationError = "shader: %s %s not found"
)

// Sources is the GLSL source for each stage of the program.
type Sources struct {
	Vertex   string
	Fragment string
}

// QuadSources returns the sources for the textured quad program. The vertex
// stage passes through a 3D position and forwards a 2D texture coordinate. The
// fragment stage samples a single texture at the forwarded coordinate.
func QuadSources() Sources {
	return Sources{
		Vertex:   string(shaders.QuadVertexShader),
		Fragment: string(shaders.QuadFragmentShader),
	}
}

// Program is a linked shader program and the locations of the variables used
// by the draw stage.
type Program struct {
	Handle uint32

	// vertex attributes
	Position uint32
	Texcoord uint32

	// sampler uniform
	Texture int32
}

// Build compiles and links the shader sources. On failure the compiler or
// linker log is written to the central logger and returned as part of the
// error. No GL objects created by Build() survive a failure.
func Build(api gles.API, src Sources) (*Program, error) {
	vert, err := compile(api, gles.VERTEX_SHADER, src.Vertex)
	if err != nil {
		return nil, err
	}
	defer api.DeleteShader(vert)

	frag, err := compile(api, gles.FRAGMENT_SHADER, src.Fragment)
	if err != nil {
		return nil, err
	}
	defer api.DeleteShader(frag)

	handle := api.CreateProgram()
	if handle == 0 {
		return nil, curated.Errorf(CreateError, "program")
	}

	api.AttachShader(handle, vert)
	api.AttachShader(handle, frag)
	api.LinkProgram(handle)

	if api.GetProgramiv(handle, gles.LINK_STATUS) == 0 {
		log := api.GetProgramInfoLog(handle)
		api.DeleteProgram(handle)
		logger.Logf(logger.Allow, "shader", "linking: %s", log)
		return nil, curated.Errorf(LinkError, log)
	}

	prg := &Program{Handle: handle}

	position := api.GetAttribLocation(handle, "position")
	if position < 0 {
		api.DeleteProgram(handle)
		return nil, curated.Errorf(LocationError, "attribute", "position")
	}
	prg.Position = uint32(position)

	texcoord := api.GetAttribLocation(handle, "texcoord")
	if texcoord < 0 {
		api.DeleteProgram(handle)
		return nil, curated.Errorf(LocationError, "attribute", "texcoord")
	}
	prg.Texcoord = uint32(texcoord)

	prg.Texture = api.GetUniformLocation(handle, "texture")
	if prg.Texture < 0 {
		api.DeleteProgram(handle)
		return nil, curated.Errorf(LocationError, "uniform", "texture")
	}

	logger.Logf(logger.Allow, "shader", "program %d linked (position=%d texcoord=%d texture=%d)",
		prg.Handle, prg.Position, prg.Texcoord, prg.Texture)

	return prg, nil
}

// compile a single shader stage. the shader object is deleted if compilation
// fails.
func compile(api gles.API, kind uint32, source string) (uint32, error) {
	shader := api.CreateShader(kind)
	if shader == 0 {
		return 0, curated.Errorf(CreateError, gles.ShaderKind(kind))
	}

	api.ShaderSource(shader, source)
	api.CompileShader(shader)

	if api.GetShaderiv(shader, gles.COMPILE_STATUS) == 0 {
		log := api.GetShaderInfoLog(shader)
		api.DeleteShader(shader)
		logger.Logf(logger.Allow, "shader", "compiling %s: %s", gles.ShaderKind(kind), log)
		return 0, curated.Errorf(CompileError, gles.ShaderKind(kind), log)
	}

	return shader, nil
}

// Destroy deletes the program. It is safe to call more than once.
func (prg *Program) Destroy(api gles.API) {
	if prg.Handle != 0 {
		api.DeleteProgram(prg.Handle)
		prg.Handle = 0
	}
}
