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

// Package platform opens the window and creates the OpenGL ES rendering
// context and drawing surface with SDL.
//
// On X11, SDL is asked to use EGL rather than GLX to create the context. The
// capabilities requested of the windowing system are those described by
// gles.DefaultRequirements(). Because SDL negotiates the surface configuration
// internally the negotiated attributes are read back and checked after the
// context has been created.
//
// Functions in this package MUST be called from the main thread.
package platform

import (
	"fmt"
	"runtime"

	"github.com/glsimple/glsimple/curated"
	"github.com/glsimple/glsimple/gles"
	"github.com/glsimple/glsimple/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// SDLError is the pattern used for all errors returned by SDL.
const SDLError = "sdl: %v"

// SDL hints set before the video subsystem is initialised.
const (
	hintForceEGL       = "SDL_VIDEO_X11_FORCE_EGL"
	hintOpenGLESDriver = "SDL_OPENGL_ES_DRIVER"
)

// Config is the description of the window to open.
type Config struct {
	Width  int32
	Height int32
	Title  string

	// capabilities required of the rendering context
	Requirements gles.Requirements
}

// DefaultConfig returns the configuration for a 500x500 window.
func DefaultConfig() Config {
	return Config{
		Width:        500,
		Height:       500,
		Title:        "GL Simple Test",
		Requirements: gles.DefaultRequirements(),
	}
}

// Platform is the window, rendering context and drawing surface.
type Platform struct {
	window  *sdl.Window
	context sdl.GLContext
}

// NewPlatform is the preferred method of initialisation for the Platform type.
// On success the rendering context and drawing surface are current for the
// calling thread.
func NewPlatform(cfg Config) (*Platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	sdl.SetHint(hintForceEGL, "1")
	sdl.SetHint(hintOpenGLESDriver, "1")

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	err = request(cfg.Requirements)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	plt := &Platform{}

	plt.window, err = sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		cfg.Width, cfg.Height,
		sdl.WINDOW_OPENGL|sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	plt.context, err = plt.window.GLCreateContext()
	if err != nil {
		_ = plt.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	err = plt.window.GLMakeCurrent(plt.context)
	if err != nil {
		_ = plt.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	got, err := negotiated()
	if err != nil {
		_ = plt.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}
	logger.Logf(logger.Allow, "sdl", "negotiated %s", got)

	err = cfg.Requirements.Satisfied(got)
	if err != nil {
		_ = plt.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	return plt, nil
}

// request sets the GL attributes that SDL will use when creating the context.
func request(req gles.Requirements) error {
	profile := sdl.GL_CONTEXT_PROFILE_COMPATIBILITY
	if req.ES {
		profile = sdl.GL_CONTEXT_PROFILE_ES
	}

	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_PROFILE_MASK, profile},
		{sdl.GL_CONTEXT_MAJOR_VERSION, req.Major},
		{sdl.GL_CONTEXT_MINOR_VERSION, req.Minor},
		{sdl.GL_RED_SIZE, req.Red},
		{sdl.GL_GREEN_SIZE, req.Green},
		{sdl.GL_BLUE_SIZE, req.Blue},
		{sdl.GL_ALPHA_SIZE, req.Alpha},
		{sdl.GL_DEPTH_SIZE, req.Depth},
		{sdl.GL_DOUBLEBUFFER, 1},
	}

	for _, a := range attrs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			return err
		}
	}

	return nil
}

// negotiated reads back the attributes of the current context.
func negotiated() (gles.Requirements, error) {
	var got gles.Requirements

	profile, err := sdl.GLGetAttribute(sdl.GL_CONTEXT_PROFILE_MASK)
	if err != nil {
		return got, err
	}
	got.ES = profile == sdl.GL_CONTEXT_PROFILE_ES

	attrs := []struct {
		attr  sdl.GLattr
		value *int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, &got.Major},
		{sdl.GL_CONTEXT_MINOR_VERSION, &got.Minor},
		{sdl.GL_RED_SIZE, &got.Red},
		{sdl.GL_GREEN_SIZE, &got.Green},
		{sdl.GL_BLUE_SIZE, &got.Blue},
		{sdl.GL_ALPHA_SIZE, &got.Alpha},
		{sdl.GL_DEPTH_SIZE, &got.Depth},
	}

	for _, a := range attrs {
		v, err := sdl.GLGetAttribute(a.attr)
		if err != nil {
			return got, err
		}
		*a.value = v
	}

	return got, nil
}

func (plt *Platform) String() string {
	if plt.window == nil {
		return "no window"
	}
	w, h := plt.window.GetSize()
	return fmt.Sprintf("%s (%dx%d)", plt.window.GetTitle(), w, h)
}

// Present implements the renderer.Presenter interface.
func (plt *Platform) Present() {
	plt.window.GLSwap()
}

// Destroy releases the rendering context, the window and the connection to
// the windowing system.
func (plt *Platform) Destroy() error {
	if plt.context != nil {
		sdl.GLDeleteContext(plt.context)
		plt.context = nil
	}

	if plt.window != nil {
		err := plt.window.Destroy()
		if err != nil {
			return curated.Errorf(SDLError, err)
		}
		plt.window = nil
	}

	sdl.Quit()

	return nil
}
