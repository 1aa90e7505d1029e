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

import (
	"fmt"
	"sort"
	"strings"
)

// error values returned by Recorder.GetError().
const (
	INVALID_VALUE     = 0x0501
	INVALID_OPERATION = 0x0502
)

// RecordedTexture is the state of a texture object held by the Recorder.
type RecordedTexture struct {
	Width  int32
	Height int32
	Format uint32
	Pixels []uint8
	Params map[uint32]int32
}

// RecordedBuffer is the state of a buffer object held by the Recorder.
type RecordedBuffer struct {
	Target  uint32
	Usage   uint32
	Float32 []float32
	Uint16  []uint16

	// the number of times data has been uploaded to the buffer
	Uploads int
}

// RecordedAttrib is the vertex attribute pointer state for an attribute index.
type RecordedAttrib struct {
	Enabled    bool
	Buffer     uint32
	Size       int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     uintptr
}

// DrawCall describes a call to DrawElements().
type DrawCall struct {
	Mode     uint32
	Count    int32
	Type     uint32
	Offset   uintptr
	Program  uint32
	Texture  uint32
	Elements uint32
}

type recordedShader struct {
	kind     uint32
	source   string
	compiled bool
	log      string
}

type recordedProgram struct {
	shaders  []uint32
	linked   bool
	log      string
	attribs  map[string]int32
	uniforms map[string]int32
}

// Recorder is an in-memory implementation of the API interface. It allocates
// object handles, keeps track of which objects are live and records the data
// uploaded to textures and buffers.
//
// Shader sources are not compiled but they are scanned for attribute and
// uniform declarations so that location queries behave as they would with a
// real driver. Compilation and linking can be made to fail with the
// CompileCheck and LinkCheck fields.
type Recorder struct {
	// CompileCheck is called when a shader is compiled. A non-empty return
	// value indicates that compilation has failed and is used as the info log.
	CompileCheck func(kind uint32, source string) string

	// LinkCheck is called when a program is linked. A non-empty return value
	// indicates that linking has failed and is used as the info log.
	LinkCheck func(program uint32) string

	// Calls is the sequence of API functions called, by name
	Calls []string

	Textures map[uint32]*RecordedTexture
	Buffers  map[uint32]*RecordedBuffer
	Attribs  map[uint32]*RecordedAttrib
	Uniforms map[int32]int32
	Enabled  map[uint32]bool
	Draws    []DrawCall

	ClearColorValue [4]float32
	BlendFactors    [2]uint32

	// the most recent clear mask
	Cleared uint32

	// the program in use
	Program uint32

	// the active texture unit and the textures bound to each unit
	ActiveUnit uint32
	Units      map[uint32]uint32

	shaders  map[uint32]*recordedShader
	programs map[uint32]*recordedProgram
	bound    map[uint32]uint32

	next uint32
	err  uint32
}

var _ API = (*Recorder)(nil)

// NewRecorder is the preferred method of initialisation for the Recorder type.
func NewRecorder() *Recorder {
	return &Recorder{
		Textures:   make(map[uint32]*RecordedTexture),
		Buffers:    make(map[uint32]*RecordedBuffer),
		Attribs:    make(map[uint32]*RecordedAttrib),
		Uniforms:   make(map[int32]int32),
		Enabled:    make(map[uint32]bool),
		Units:      make(map[uint32]uint32),
		ActiveUnit: TEXTURE0,
		shaders:    make(map[uint32]*recordedShader),
		programs:   make(map[uint32]*recordedProgram),
		bound:      make(map[uint32]uint32),
	}
}

// LiveShaders returns the number of shader objects that have not been deleted.
func (rec *Recorder) LiveShaders() int {
	return len(rec.shaders)
}

// LivePrograms returns the number of program objects that have not been deleted.
func (rec *Recorder) LivePrograms() int {
	return len(rec.programs)
}

// LiveTextures returns the number of texture objects that have not been deleted.
func (rec *Recorder) LiveTextures() int {
	return len(rec.Textures)
}

// LiveBuffers returns the number of buffer objects that have not been deleted.
func (rec *Recorder) LiveBuffers() int {
	return len(rec.Buffers)
}

// Count returns the number of times the named API function has been called.
func (rec *Recorder) Count(name string) int {
	var n int
	for _, c := range rec.Calls {
		if c == name {
			n++
		}
	}
	return n
}

// String returns a summary of live objects.
func (rec *Recorder) String() string {
	return fmt.Sprintf("shaders: %d, programs: %d, textures: %d, buffers: %d",
		rec.LiveShaders(), rec.LivePrograms(), rec.LiveTextures(), rec.LiveBuffers())
}

func (rec *Recorder) call(name string) {
	rec.Calls = append(rec.Calls, name)
}

func (rec *Recorder) handle() uint32 {
	rec.next++
	return rec.next
}

func (rec *Recorder) setError(err uint32) {
	// the first error is kept until GetError() is called, as with GL
	if rec.err == NO_ERROR {
		rec.err = err
	}
}

func (rec *Recorder) CreateShader(kind uint32) uint32 {
	rec.call("CreateShader")
	if kind != VERTEX_SHADER && kind != FRAGMENT_SHADER {
		rec.setError(INVALID_VALUE)
		return 0
	}
	h := rec.handle()
	rec.shaders[h] = &recordedShader{kind: kind}
	return h
}

func (rec *Recorder) ShaderSource(shader uint32, source string) {
	rec.call("ShaderSource")
	if sh, ok := rec.shaders[shader]; ok {
		sh.source = source
		return
	}
	rec.setError(INVALID_VALUE)
}

func (rec *Recorder) CompileShader(shader uint32) {
	rec.call("CompileShader")
	sh, ok := rec.shaders[shader]
	if !ok {
		rec.setError(INVALID_VALUE)
		return
	}
	sh.log = ""
	if rec.CompileCheck != nil {
		sh.log = rec.CompileCheck(sh.kind, sh.source)
	}
	sh.compiled = sh.log == ""
}

func (rec *Recorder) GetShaderiv(shader uint32, pname uint32) int32 {
	rec.call("GetShaderiv")
	sh, ok := rec.shaders[shader]
	if !ok {
		rec.setError(INVALID_VALUE)
		return 0
	}
	switch pname {
	case COMPILE_STATUS:
		if sh.compiled {
			return 1
		}
		return 0
	case INFO_LOG_LENGTH:
		if sh.log == "" {
			return 0
		}
		return int32(len(sh.log) + 1)
	}
	rec.setError(INVALID_VALUE)
	return 0
}

func (rec *Recorder) GetShaderInfoLog(shader uint32) string {
	rec.call("GetShaderInfoLog")
	if sh, ok := rec.shaders[shader]; ok {
		return sh.log
	}
	rec.setError(INVALID_VALUE)
	return ""
}

func (rec *Recorder) DeleteShader(shader uint32) {
	rec.call("DeleteShader")
	if shader == 0 {
		return
	}
	if _, ok := rec.shaders[shader]; !ok {
		rec.setError(INVALID_VALUE)
		return
	}
	delete(rec.shaders, shader)
}

func (rec *Recorder) CreateProgram() uint32 {
	rec.call("CreateProgram")
	h := rec.handle()
	rec.programs[h] = &recordedProgram{}
	return h
}

func (rec *Recorder) AttachShader(program uint32, shader uint32) {
	rec.call("AttachShader")
	prg, ok := rec.programs[program]
	if !ok {
		rec.setError(INVALID_VALUE)
		return
	}
	if _, ok := rec.shaders[shader]; !ok {
		rec.setError(INVALID_VALUE)
		return
	}
	prg.shaders = append(prg.shaders, shader)
}

// declarations scans GLSL source for declarations with the specified
// qualifier and returns the declared names in order of appearance.
func declarations(source string, qualifier string) []string {
	var names []string
	for _, l := range strings.Split(source, "\n") {
		f := strings.Fields(strings.TrimSpace(l))
		if len(f) >= 3 && f[0] == qualifier {
			names = append(names, strings.TrimSuffix(f[len(f)-1], ";"))
		}
	}
	return names
}

func (rec *Recorder) LinkProgram(program uint32) {
	rec.call("LinkProgram")
	prg, ok := rec.programs[program]
	if !ok {
		rec.setError(INVALID_VALUE)
		return
	}

	prg.linked = false
	prg.log = ""
	prg.attribs = make(map[string]int32)
	prg.uniforms = make(map[string]int32)

	var kinds []uint32
	for _, s := range prg.shaders {
		sh, ok := rec.shaders[s]
		if !ok || !sh.compiled {
			prg.log = "attached shader has not been compiled"
			return
		}
		kinds = append(kinds, sh.kind)

		switch sh.kind {
		case VERTEX_SHADER:
			for _, n := range declarations(sh.source, "attribute") {
				prg.attribs[n] = int32(len(prg.attribs))
			}
		}
		for _, n := range declarations(sh.source, "uniform") {
			if _, ok := prg.uniforms[n]; !ok {
				prg.uniforms[n] = int32(len(prg.uniforms))
			}
		}
	}

	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	if len(kinds) != 2 || kinds[0] != FRAGMENT_SHADER || kinds[1] != VERTEX_SHADER {
		prg.log = "program requires one vertex and one fragment shader"
		return
	}

	if rec.LinkCheck != nil {
		prg.log = rec.LinkCheck(program)
	}
	prg.linked = prg.log == ""
}

func (rec *Recorder) GetProgramiv(program uint32, pname uint32) int32 {
	rec.call("GetProgramiv")
	prg, ok := rec.programs[program]
	if !ok {
		rec.setError(INVALID_VALUE)
		return 0
	}
	switch pname {
	case LINK_STATUS:
		if prg.linked {
			return 1
		}
		return 0
	case INFO_LOG_LENGTH:
		if prg.log == "" {
			return 0
		}
		return int32(len(prg.log) + 1)
	}
	rec.setError(INVALID_VALUE)
	return 0
}

func (rec *Recorder) GetProgramInfoLog(program uint32) string {
	rec.call("GetProgramInfoLog")
	if prg, ok := rec.programs[program]; ok {
		return prg.log
	}
	rec.setError(INVALID_VALUE)
	return ""
}

func (rec *Recorder) UseProgram(program uint32) {
	rec.call("UseProgram")
	if program != 0 {
		prg, ok := rec.programs[program]
		if !ok || !prg.linked {
			rec.setError(INVALID_OPERATION)
			return
		}
	}
	rec.Program = program
}

func (rec *Recorder) DeleteProgram(program uint32) {
	rec.call("DeleteProgram")
	if program == 0 {
		return
	}
	if _, ok := rec.programs[program]; !ok {
		rec.setError(INVALID_VALUE)
		return
	}
	delete(rec.programs, program)
	if rec.Program == program {
		rec.Program = 0
	}
}

func (rec *Recorder) GetAttribLocation(program uint32, name string) int32 {
	rec.call("GetAttribLocation")
	prg, ok := rec.programs[program]
	if !ok || !prg.linked {
		rec.setError(INVALID_OPERATION)
		return -1
	}
	if l, ok := prg.attribs[name]; ok {
		return l
	}
	return -1
}

func (rec *Recorder) GetUniformLocation(program uint32, name string) int32 {
	rec.call("GetUniformLocation")
	prg, ok := rec.programs[program]
	if !ok || !prg.linked {
		rec.setError(INVALID_OPERATION)
		return -1
	}
	if l, ok := prg.uniforms[name]; ok {
		return l
	}
	return -1
}

func (rec *Recorder) attrib(index uint32) *RecordedAttrib {
	a, ok := rec.Attribs[index]
	if !ok {
		a = &RecordedAttrib{}
		rec.Attribs[index] = a
	}
	return a
}

func (rec *Recorder) EnableVertexAttribArray(index uint32) {
	rec.call("EnableVertexAttribArray")
	rec.attrib(index).Enabled = true
}

func (rec *Recorder) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	rec.call("VertexAttribPointer")
	if size < 1 || size > 4 {
		rec.setError(INVALID_VALUE)
		return
	}
	a := rec.attrib(index)
	a.Buffer = rec.bound[ARRAY_BUFFER]
	a.Size = size
	a.Type = xtype
	a.Normalized = normalized
	a.Stride = stride
	a.Offset = offset
}

func (rec *Recorder) Uniform1i(location int32, v int32) {
	rec.call("Uniform1i")
	if rec.Program == 0 {
		rec.setError(INVALID_OPERATION)
		return
	}
	if location == -1 {
		return
	}
	rec.Uniforms[location] = v
}

func (rec *Recorder) GenTexture() uint32 {
	rec.call("GenTexture")
	h := rec.handle()
	rec.Textures[h] = &RecordedTexture{Params: make(map[uint32]int32)}
	return h
}

func (rec *Recorder) ActiveTexture(unit uint32) {
	rec.call("ActiveTexture")
	rec.ActiveUnit = unit
}

func (rec *Recorder) BindTexture(target uint32, texture uint32) {
	rec.call("BindTexture")
	if target != TEXTURE_2D {
		rec.setError(INVALID_VALUE)
		return
	}
	if texture != 0 {
		if _, ok := rec.Textures[texture]; !ok {
			rec.setError(INVALID_OPERATION)
			return
		}
	}
	rec.Units[rec.ActiveUnit] = texture
}

func (rec *Recorder) boundTexture() *RecordedTexture {
	tex, ok := rec.Textures[rec.Units[rec.ActiveUnit]]
	if !ok {
		rec.setError(INVALID_OPERATION)
		return nil
	}
	return tex
}

func (rec *Recorder) TexImage2D(target uint32, level int32, internalFormat int32, width int32, height int32, format uint32, xtype uint32, pixels []uint8) {
	rec.call("TexImage2D")
	tex := rec.boundTexture()
	if tex == nil {
		return
	}
	if xtype != UNSIGNED_BYTE || format != RGBA || int(width*height*4) != len(pixels) {
		rec.setError(INVALID_VALUE)
		return
	}
	tex.Width = width
	tex.Height = height
	tex.Format = format
	tex.Pixels = make([]uint8, len(pixels))
	copy(tex.Pixels, pixels)
}

func (rec *Recorder) TexParameteri(target uint32, pname uint32, param int32) {
	rec.call("TexParameteri")
	tex := rec.boundTexture()
	if tex == nil {
		return
	}
	tex.Params[pname] = param
}

func (rec *Recorder) DeleteTexture(texture uint32) {
	rec.call("DeleteTexture")
	delete(rec.Textures, texture)
	for u, t := range rec.Units {
		if t == texture {
			rec.Units[u] = 0
		}
	}
}

func (rec *Recorder) GenBuffer() uint32 {
	rec.call("GenBuffer")
	h := rec.handle()
	rec.Buffers[h] = &RecordedBuffer{}
	return h
}

func (rec *Recorder) BindBuffer(target uint32, buffer uint32) {
	rec.call("BindBuffer")
	if target != ARRAY_BUFFER && target != ELEMENT_ARRAY_BUFFER {
		rec.setError(INVALID_VALUE)
		return
	}
	if buffer != 0 {
		buf, ok := rec.Buffers[buffer]
		if !ok {
			rec.setError(INVALID_OPERATION)
			return
		}
		buf.Target = target
	}
	rec.bound[target] = buffer
}

func (rec *Recorder) boundBuffer(target uint32) *RecordedBuffer {
	buf, ok := rec.Buffers[rec.bound[target]]
	if !ok {
		rec.setError(INVALID_OPERATION)
		return nil
	}
	return buf
}

func (rec *Recorder) BufferDataFloat32(target uint32, data []float32, usage uint32) {
	rec.call("BufferData")
	buf := rec.boundBuffer(target)
	if buf == nil {
		return
	}
	buf.Usage = usage
	buf.Float32 = append(buf.Float32[:0], data...)
	buf.Uint16 = nil
	buf.Uploads++
}

func (rec *Recorder) BufferDataUint16(target uint32, data []uint16, usage uint32) {
	rec.call("BufferData")
	buf := rec.boundBuffer(target)
	if buf == nil {
		return
	}
	buf.Usage = usage
	buf.Uint16 = append(buf.Uint16[:0], data...)
	buf.Float32 = nil
	buf.Uploads++
}

func (rec *Recorder) DeleteBuffer(buffer uint32) {
	rec.call("DeleteBuffer")
	delete(rec.Buffers, buffer)
	for t, b := range rec.bound {
		if b == buffer {
			rec.bound[t] = 0
		}
	}
}

func (rec *Recorder) Enable(capability uint32) {
	rec.call("Enable")
	rec.Enabled[capability] = true
}

func (rec *Recorder) BlendFunc(sfactor uint32, dfactor uint32) {
	rec.call("BlendFunc")
	rec.BlendFactors = [2]uint32{sfactor, dfactor}
}

func (rec *Recorder) ClearColor(red float32, green float32, blue float32, alpha float32) {
	rec.call("ClearColor")
	rec.ClearColorValue = [4]float32{red, green, blue, alpha}
}

func (rec *Recorder) Clear(mask uint32) {
	rec.call("Clear")
	rec.Cleared = mask
}

func (rec *Recorder) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	rec.call("DrawElements")
	if rec.Program == 0 || rec.bound[ELEMENT_ARRAY_BUFFER] == 0 {
		rec.setError(INVALID_OPERATION)
		return
	}
	rec.Draws = append(rec.Draws, DrawCall{
		Mode:     mode,
		Count:    count,
		Type:     xtype,
		Offset:   offset,
		Program:  rec.Program,
		Texture:  rec.Units[TEXTURE0],
		Elements: rec.bound[ELEMENT_ARRAY_BUFFER],
	})
}

func (rec *Recorder) GetError() uint32 {
	rec.call("GetError")
	err := rec.err
	rec.err = NO_ERROR
	return err
}
