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

// Package geometry contains the vertex data for the quad.
package geometry

// Quad is a full-screen quad in clip space, described by four vertices and
// two triangles.
type Quad struct {
	// x, y, z for each vertex
	Positions [12]float32

	// u, v for each vertex
	Texcoords [8]float32

	// two triangles sharing the edge 0-2
	Indices [6]uint16
}

// number of components in each vertex attribute.
const (
	PositionSize = 3
	TexcoordSize = 2
)

// NewQuad returns the quad covering the clip-space square from -1 to 1 on each
// axis. The vertices are ordered top-left, bottom-left, bottom-right,
// top-right. Texture coordinates place the origin of the texture at the
// top-left of the quad.
func NewQuad() Quad {
	return Quad{
		Positions: [12]float32{
			-1, 1, 0,
			-1, -1, 0,
			1, -1, 0,
			1, 1, 0,
		},
		Texcoords: [8]float32{
			0, 0,
			0, 1,
			1, 1,
			1, 0,
		},
		Indices: [6]uint16{
			0, 1, 2,
			0, 2, 3,
		},
	}
}

// NumVertices returns the number of vertices in the quad.
func (q Quad) NumVertices() int {
	return len(q.Positions) / PositionSize
}

// Vertex returns the position of the numbered vertex.
func (q Quad) Vertex(i int) (float32, float32, float32) {
	return q.Positions[i*PositionSize], q.Positions[i*PositionSize+1], q.Positions[i*PositionSize+2]
}

// Bounds returns the minimum and maximum x and y values of the vertex
// positions.
func (q Quad) Bounds() (minX, minY, maxX, maxY float32) {
	minX, minY, _ = q.Vertex(0)
	maxX, maxY = minX, minY
	for i := 1; i < q.NumVertices(); i++ {
		x, y, _ := q.Vertex(i)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	return minX, minY, maxX, maxY
}

// Triangles returns the vertex indices grouped into triangles.
func (q Quad) Triangles() [][3]uint16 {
	t := make([][3]uint16, 0, len(q.Indices)/3)
	for i := 0; i+2 < len(q.Indices); i += 3 {
		t = append(t, [3]uint16{q.Indices[i], q.Indices[i+1], q.Indices[i+2]})
	}
	return t
}

// Area returns the area of the triangle in the x/y plane. The result is
// positive if the vertices wind counter-clockwise.
func (q Quad) Area(tri [3]uint16) float32 {
	ax, ay, _ := q.Vertex(int(tri[0]))
	bx, by, _ := q.Vertex(int(tri[1]))
	cx, cy, _ := q.Vertex(int(tri[2]))
	return ((bx-ax)*(cy-ay) - (cx-ax)*(by-ay)) / 2
}
