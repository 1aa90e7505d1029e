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

// Package native implements the gles.API interface by binding to the system's
// OpenGL ES 2 driver through the go-gl bindings.
//
// All functions MUST be called from the thread on which the GL context was
// made current.
package native

import (
	"fmt"
	"unsafe"

	"github.com/glsimple/glsimple/curated"
	"github.com/glsimple/glsimple/gles"
	"github.com/go-gl/gl/v3.1/gles2"
)

// GLES is the driver backed implementation of gles.API.
type GLES struct {
	Vendor   string
	Renderer string
	Version  string
	GLSL     string
}

var _ gles.API = (*GLES)(nil)

// New loads the GL function pointers for the current context. The context must
// have been created and made current before calling this function.
func New() (*GLES, error) {
	if err := gles2.Init(); err != nil {
		return nil, curated.Errorf("gles: %v", err)
	}

	return &GLES{
		Vendor:   gles2.GoStr(gles2.GetString(gles2.VENDOR)),
		Renderer: gles2.GoStr(gles2.GetString(gles2.RENDERER)),
		Version:  gles2.GoStr(gles2.GetString(gles2.VERSION)),
		GLSL:     gles2.GoStr(gles2.GetString(gles2.SHADING_LANGUAGE_VERSION)),
	}, nil
}

func (g *GLES) String() string {
	return fmt.Sprintf("%s (%s, %s)", g.Version, g.Renderer, g.GLSL)
}

func (g *GLES) CreateShader(kind uint32) uint32 {
	return gles2.CreateShader(kind)
}

func (g *GLES) ShaderSource(shader uint32, source string) {
	csource, free := gles2.Strs(source + "\x00")
	defer free()
	gles2.ShaderSource(shader, 1, csource, nil)
}

func (g *GLES) CompileShader(shader uint32) {
	gles2.CompileShader(shader)
}

func (g *GLES) GetShaderiv(shader uint32, pname uint32) int32 {
	var v int32
	gles2.GetShaderiv(shader, pname, &v)
	return v
}

func (g *GLES) GetShaderInfoLog(shader uint32) string {
	n := g.GetShaderiv(shader, gles2.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}

	// the length includes the NULL character
	buf := make([]uint8, n+1)
	var written int32
	gles2.GetShaderInfoLog(shader, n+1, &written, &buf[0])
	return string(buf[:written])
}

func (g *GLES) DeleteShader(shader uint32) {
	gles2.DeleteShader(shader)
}

func (g *GLES) CreateProgram() uint32 {
	return gles2.CreateProgram()
}

func (g *GLES) AttachShader(program uint32, shader uint32) {
	gles2.AttachShader(program, shader)
}

func (g *GLES) LinkProgram(program uint32) {
	gles2.LinkProgram(program)
}

func (g *GLES) GetProgramiv(program uint32, pname uint32) int32 {
	var v int32
	gles2.GetProgramiv(program, pname, &v)
	return v
}

func (g *GLES) GetProgramInfoLog(program uint32) string {
	n := g.GetProgramiv(program, gles2.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}

	buf := make([]uint8, n+1)
	var written int32
	gles2.GetProgramInfoLog(program, n+1, &written, &buf[0])
	return string(buf[:written])
}

func (g *GLES) UseProgram(program uint32) {
	gles2.UseProgram(program)
}

func (g *GLES) DeleteProgram(program uint32) {
	gles2.DeleteProgram(program)
}

func (g *GLES) GetAttribLocation(program uint32, name string) int32 {
	return gles2.GetAttribLocation(program, gles2.Str(name+"\x00"))
}

func (g *GLES) GetUniformLocation(program uint32, name string) int32 {
	return gles2.GetUniformLocation(program, gles2.Str(name+"\x00"))
}

func (g *GLES) EnableVertexAttribArray(index uint32) {
	gles2.EnableVertexAttribArray(index)
}

func (g *GLES) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gles2.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

func (g *GLES) Uniform1i(location int32, v int32) {
	gles2.Uniform1i(location, v)
}

func (g *GLES) GenTexture() uint32 {
	var t uint32
	gles2.GenTextures(1, &t)
	return t
}

func (g *GLES) ActiveTexture(unit uint32) {
	gles2.ActiveTexture(unit)
}

func (g *GLES) BindTexture(target uint32, texture uint32) {
	gles2.BindTexture(target, texture)
}

func (g *GLES) TexImage2D(target uint32, level int32, internalFormat int32, width int32, height int32, format uint32, xtype uint32, pixels []uint8) {
	var p unsafe.Pointer
	if len(pixels) > 0 {
		p = gles2.Ptr(pixels)
	}
	gles2.TexImage2D(target, level, internalFormat, width, height, 0, format, xtype, p)
}

func (g *GLES) TexParameteri(target uint32, pname uint32, param int32) {
	gles2.TexParameteri(target, pname, param)
}

func (g *GLES) DeleteTexture(texture uint32) {
	gles2.DeleteTextures(1, &texture)
}

func (g *GLES) GenBuffer() uint32 {
	var b uint32
	gles2.GenBuffers(1, &b)
	return b
}

func (g *GLES) BindBuffer(target uint32, buffer uint32) {
	gles2.BindBuffer(target, buffer)
}

func (g *GLES) BufferDataFloat32(target uint32, data []float32, usage uint32) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = gles2.Ptr(data)
	}
	gles2.BufferData(target, len(data)*4, p, usage)
}

func (g *GLES) BufferDataUint16(target uint32, data []uint16, usage uint32) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = gles2.Ptr(data)
	}
	gles2.BufferData(target, len(data)*2, p, usage)
}

func (g *GLES) DeleteBuffer(buffer uint32) {
	gles2.DeleteBuffers(1, &buffer)
}

func (g *GLES) Enable(capability uint32) {
	gles2.Enable(capability)
}

func (g *GLES) BlendFunc(sfactor uint32, dfactor uint32) {
	gles2.BlendFunc(sfactor, dfactor)
}

func (g *GLES) ClearColor(red float32, green float32, blue float32, alpha float32) {
	gles2.ClearColor(red, green, blue, alpha)
}

func (g *GLES) Clear(mask uint32) {
	gles2.Clear(mask)
}

func (g *GLES) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gles2.DrawElementsWithOffset(mode, count, xtype, offset)
}

func (g *GLES) GetError() uint32 {
	return gles2.GetError()
}
