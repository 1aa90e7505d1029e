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

package gles

// Enumerations from the OpenGL ES 2.0 specification.
const (
	NO_ERROR = 0

	VERTEX_SHADER   = 0x8B31
	FRAGMENT_SHADER = 0x8B30
	COMPILE_STATUS  = 0x8B81
	LINK_STATUS     = 0x8B82
	INFO_LOG_LENGTH = 0x8B84

	TEXTURE_2D         = 0x0DE1
	TEXTURE0           = 0x84C0
	TEXTURE_MAG_FILTER = 0x2800
	TEXTURE_MIN_FILTER = 0x2801
	TEXTURE_WRAP_S     = 0x2802
	TEXTURE_WRAP_T     = 0x2803
	LINEAR             = 0x2601
	CLAMP_TO_EDGE      = 0x812F
	RGBA               = 0x1908

	UNSIGNED_BYTE  = 0x1401
	UNSIGNED_SHORT = 0x1403
	FLOAT          = 0x1406

	ARRAY_BUFFER         = 0x8892
	ELEMENT_ARRAY_BUFFER = 0x8893
	STATIC_DRAW          = 0x88E4

	BLEND               = 0x0BE2
	SRC_ALPHA           = 0x0302
	ONE_MINUS_SRC_ALPHA = 0x0303

	COLOR_BUFFER_BIT = 0x4000
	TRIANGLES        = 0x0004
)

// ShaderKind returns a short description of a shader type. Used in log and
// error messages.
func ShaderKind(kind uint32) string {
	switch kind {
	case VERTEX_SHADER:
		return "vertex"
	case FRAGMENT_SHADER:
		return "fragment"
	}
	return "unknown"
}

// API is the set of GL calls required to build the shader program, upload the
// texture and geometry, and draw.
//
// Object creation functions return zero on failure, as GL does. Location
// functions return -1 if the named variable is not active in the program.
type API interface {
	CreateShader(kind uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname uint32) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program uint32, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname uint32) int32
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GetAttribLocation(program uint32, name string) int32
	GetUniformLocation(program uint32, name string) int32
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)
	Uniform1i(location int32, v int32)

	GenTexture() uint32
	ActiveTexture(unit uint32)
	BindTexture(target uint32, texture uint32)
	TexImage2D(target uint32, level int32, internalFormat int32, width int32, height int32, format uint32, xtype uint32, pixels []uint8)
	TexParameteri(target uint32, pname uint32, param int32)
	DeleteTexture(texture uint32)

	GenBuffer() uint32
	BindBuffer(target uint32, buffer uint32)
	BufferDataFloat32(target uint32, data []float32, usage uint32)
	BufferDataUint16(target uint32, data []uint16, usage uint32)
	DeleteBuffer(buffer uint32)

	Enable(capability uint32)
	BlendFunc(sfactor uint32, dfactor uint32)
	ClearColor(red float32, green float32, blue float32, alpha float32)
	Clear(mask uint32)
	DrawElements(mode uint32, count int32, xtype uint32, offset uintptr)
	GetError() uint32
}
