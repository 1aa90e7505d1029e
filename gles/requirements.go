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
	"strings"

	"github.com/glsimple/glsimple/curated"
)

// RequirementsError is the pattern used when a negotiated context does not
// meet the requested capabilities.
const RequirementsError = "context: %s"

// Requirements describes the capabilities requested of the windowing system
// when creating the rendering context and drawing surface. The same type is
// used to describe what the windowing system actually provided.
type Requirements struct {
	// version of the OpenGL ES API
	Major int
	Minor int

	// whether the context is an OpenGL ES context
	ES bool

	// minimum bit depths
	Red   int
	Green int
	Blue  int
	Alpha int
	Depth int
}

// DefaultRequirements returns the capabilities needed to draw the quad. A
// window-presentable surface is implied by the windowing system.
func DefaultRequirements() Requirements {
	return Requirements{
		Major: 2,
		Minor: 0,
		ES:    true,
		Red:   1,
		Green: 1,
		Blue:  1,
		Alpha: 1,
		Depth: 16,
	}
}

func (req Requirements) String() string {
	api := "GL"
	if req.ES {
		api = "GLES"
	}
	return fmt.Sprintf("%s %d.%d r%d g%d b%d a%d d%d", api, req.Major, req.Minor,
		req.Red, req.Green, req.Blue, req.Alpha, req.Depth)
}

// Satisfied returns an error if the negotiated capabilities fall short of the
// requested capabilities. Bit depths and version numbers greater than those
// requested are acceptable.
func (req Requirements) Satisfied(got Requirements) error {
	var short []string

	if req.ES && !got.ES {
		short = append(short, "not an ES context")
	}
	if got.Major < req.Major || (got.Major == req.Major && got.Minor < req.Minor) {
		short = append(short, fmt.Sprintf("version %d.%d (wanted %d.%d)", got.Major, got.Minor, req.Major, req.Minor))
	}

	depths := []struct {
		name      string
		got, want int
	}{
		{"red", got.Red, req.Red},
		{"green", got.Green, req.Green},
		{"blue", got.Blue, req.Blue},
		{"alpha", got.Alpha, req.Alpha},
		{"depth", got.Depth, req.Depth},
	}
	for _, d := range depths {
		if d.got < d.want {
			short = append(short, fmt.Sprintf("%s size %d (wanted %d)", d.name, d.got, d.want))
		}
	}

	if len(short) > 0 {
		return curated.Errorf(RequirementsError, strings.Join(short, ", "))
	}

	return nil
}
