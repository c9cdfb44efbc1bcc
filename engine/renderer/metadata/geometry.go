package metadata

import "github.com/spaghettifunk/wireframe/engine/math"

/** @brief The name of the built-in cube geometry. */
const CubeGeometryName string = "cube"

/** @brief The name of the built-in tetrahedron geometry. */
const TetrahedronGeometryName string = "tetrahedron"

// NewCubeMesh returns the 2x2x2 cube centered on the origin: eight corners
// and twelve triangles wound so the outside faces the camera.
func NewCubeMesh() *Mesh {
	return &Mesh{
		Name: CubeGeometryName,
		Vertices: []math.Vec3{
			{X: -1.0, Y: -1.0, Z: -1.0},
			{X: -1.0, Y: -1.0, Z: 1.0},
			{X: 1.0, Y: -1.0, Z: -1.0},
			{X: 1.0, Y: -1.0, Z: 1.0},
			{X: -1.0, Y: 1.0, Z: -1.0},
			{X: -1.0, Y: 1.0, Z: 1.0},
			{X: 1.0, Y: 1.0, Z: -1.0},
			{X: 1.0, Y: 1.0, Z: 1.0},
		},
		Indices: []int{
			6, 2, 3,
			6, 3, 7,
			7, 3, 1,
			7, 1, 5,
			5, 1, 0,
			5, 0, 4,
			4, 0, 2,
			4, 2, 6,
			4, 6, 5,
			5, 6, 7,
			2, 0, 3,
			3, 0, 1,
		},
	}
}

// NewTetrahedronMesh returns a regular tetrahedron inscribed in the unit
// sphere, wound the same way as NewCubeMesh.
func NewTetrahedronMesh() *Mesh {
	const a = 0.57735026918962576450 // 1/sqrt(3)
	return &Mesh{
		Name: TetrahedronGeometryName,
		Vertices: []math.Vec3{
			{X: a, Y: a, Z: a},
			{X: -a, Y: -a, Z: a},
			{X: -a, Y: a, Z: -a},
			{X: a, Y: -a, Z: -a},
		},
		Indices: []int{
			0, 3, 1,
			0, 1, 2,
			0, 2, 3,
			1, 3, 2,
		},
	}
}

// BuiltinMesh resolves the names accepted in scene files.
func BuiltinMesh(name string) (*Mesh, bool) {
	switch name {
	case CubeGeometryName:
		return NewCubeMesh(), true
	case TetrahedronGeometryName:
		return NewTetrahedronMesh(), true
	}
	return nil, false
}
