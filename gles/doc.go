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

// Package gles describes the subset of OpenGL ES 2 used to draw the textured
// quad. The API interface is implemented by the native package, which binds
// to the system GL driver, and by the Recorder type, which keeps everything
// in memory and is used for testing.
//
// Enumeration values are those defined by the OpenGL ES 2.0 specification and
// are declared here so that packages using the API do not need to link against
// the driver.
package gles
