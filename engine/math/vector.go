package math

// ------------------------------------------
// Vector 2
// ------------------------------------------

// NewVec2 creates a new 2-element vector using the supplied values.
func NewVec2(x, y float32) Vec2 {
	return Vec2{x, y}
}

// NewVec2Zero returns a 2-component vector with all components set to 0.
func NewVec2Zero() Vec2 {
	return Vec2{}
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

func (v Vec2) MulScalar(scalar float32) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

/**
 * @brief Returns the z component of the 3D cross product of v and other,
 * treating both as lying in the z=0 plane.
 */
func (v Vec2) Cross(other Vec2) float32 {
	return v.X*other.Y - v.Y*other.X
}

func (v Vec2) Length() float32 {
	return ksqrt(v.X*v.X + v.Y*v.Y)
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 */
func (v Vec2) Compare(other Vec2, tolerance float32) bool {
	return kabs(v.X-other.X) <= tolerance && kabs(v.Y-other.Y) <= tolerance
}

// IsFinite reports whether both components are finite numbers.
func (v Vec2) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of the
 * supplied vec4, essentially dropping the w component.
 */
func NewVec3FromVec4(vector Vec4) Vec3 {
	return Vec3{vector.X, vector.Y, vector.Z}
}

/**
 * @brief Returns a new vec4 using v as the x, y and z components and w for w.
 */
func (v Vec3) ToVec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

func NewVec3One() Vec3 {
	return Vec3{1.0, 1.0, 1.0}
}

func NewVec3Up() Vec3 {
	return Vec3{0.0, 1.0, 0.0}
}

func NewVec3Right() Vec3 {
	return Vec3{1.0, 0.0, 0.0}
}

func NewVec3Back() Vec3 {
	return Vec3{0.0, 0.0, 1.0}
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul multiplies component-wise.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Length() float32 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Returns a normalized copy of the supplied vector. The zero vector
 * is returned unchanged.
 */
func (v Vec3) Normalized() Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/**
 * @brief Calculates and returns the cross product of the supplied vectors.
 * The cross product is a new vector which is orthoganal to both provided vectors.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	if kabs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}
