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

// Package statsview offers a local HTTP server with runtime statistics for
// the render loop. Memory use is the main point of interest because the
// render loop uploads its vertex data on every frame.
//
// The server is only compiled in when the statsview build tag is present:
//
//	go build -tags statsview
//
// Without the tag, Available() returns false and Launch() prints a short
// notice. After launch, graphs are available at:
//
//	localhost:12600/debug/statsview
//
// and standard Go pprof statistics at:
//
//	localhost:12600/debug/pprof/
package statsview
