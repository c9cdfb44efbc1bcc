package metadata

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/wireframe/engine/math"
)

var (
	ErrIndexCount      = errors.New("mesh index count is not a multiple of 3")
	ErrIndexOutOfRange = errors.New("mesh index out of range")
)

// Mesh is immutable triangle geometry: every consecutive triple of Indices
// names one triangle by vertex position. It is shared read-only by the
// renderer across frames.
type Mesh struct {
	Name     string
	Vertices []math.Vec3
	Indices  []int
}

// Validate reports whether the mesh satisfies the renderer's invariants.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%s: %w (%d indices)", m.name(), ErrIndexCount, len(m.Indices))
	}
	for i, idx := range m.Indices {
		if idx < 0 || idx >= len(m.Vertices) {
			return fmt.Errorf("%s: %w: indices[%d]=%d with %d vertices", m.name(), ErrIndexOutOfRange, i, idx, len(m.Vertices))
		}
	}
	return nil
}

// TriangleCount returns the number of complete index triples.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the three vertices of triangle i.
func (m *Mesh) Triangle(i int) (math.Vec3, math.Vec3, math.Vec3) {
	return m.Vertices[m.Indices[i*3]], m.Vertices[m.Indices[i*3+1]], m.Vertices[m.Indices[i*3+2]]
}

// Extents returns the axis aligned bounds of the vertices.
func (m *Mesh) Extents() math.Extents3D {
	if len(m.Vertices) == 0 {
		return math.Extents3D{}
	}
	ext := math.Extents3D{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		ext.Min = math.NewVec3(min(ext.Min.X, v.X), min(ext.Min.Y, v.Y), min(ext.Min.Z, v.Z))
		ext.Max = math.NewVec3(max(ext.Max.X, v.X), max(ext.Max.Y, v.Y), max(ext.Max.Z, v.Z))
	}
	return ext
}

func (m *Mesh) name() string {
	if m.Name == "" {
		return "mesh"
	}
	return m.Name
}
