package math

// Vec2 represents a 2D vector, typically a point in screen space.
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

/** @brief A quaternion, used to represent rotational orientation. W is the scalar part. */
type Quaternion Vec4

/**
 * @brief A 3x3 matrix stored column-major: Data[col*3+row].
 * Used by the Euler rotation path only.
 */
type Mat3 struct {
	Data [9]float32
}

/**
 * @brief Represents the transform of an object in the world: scale is
 * applied first, then rotation about the local origin, then translation.
 */
type Transform struct {
	/** @brief The position in the world. */
	Position Vec3
	/** @brief The rotation in the world. */
	Rotation Quaternion
	/** @brief The per-axis scale. */
	Scale Vec3
}

/**
 * @brief Represents the extents of a 3d object.
 */
type Extents3D struct {
	/** @brief The minimum extents of the object. */
	Min Vec3
	/** @brief The maximum extents of the object. */
	Max Vec3
}
