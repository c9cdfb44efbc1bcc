package math

/**
 * @brief Creates an identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1.0}
}

/**
 * @brief Returns the normal (length) of the provided quaternion.
 */
func (q Quaternion) Normal() float32 {
	return ksqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

/**
 * @brief Returns a normalized copy of the provided quaternion.
 */
func (q Quaternion) Normalize() Quaternion {
	normal := q.Normal()
	if normal == 0 {
		return NewQuatIdentity()
	}
	return Quaternion{q.X / normal, q.Y / normal, q.Z / normal, q.W / normal}
}

/**
 * @brief Returns the conjugate of the provided quaternion. That is,
 * The x, y and z elements are negated, but the w element is untouched.
 */
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

/**
 * @brief Returns an inverse copy of the provided quaternion.
 */
func (q Quaternion) Inverse() Quaternion {
	n := q.Dot(q)
	if n == 0 {
		return NewQuatIdentity()
	}
	c := q.Conjugate()
	return Quaternion{c.X / n, c.Y / n, c.Z / n, c.W / n}
}

/**
 * @brief Multiplies the provided quaternions (Hamilton product, q * other).
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		X: q.X*other.W + q.Y*other.Z - q.Z*other.Y + q.W*other.X,
		Y: -q.X*other.Z + q.Y*other.W + q.Z*other.X + q.W*other.Y,
		Z: q.X*other.Y - q.Y*other.X + q.Z*other.W + q.W*other.Z,
		W: -q.X*other.X - q.Y*other.Y - q.Z*other.Z + q.W*other.W,
	}
}

/**
 * @brief Calculates the dot product of the provided quaternions.
 */
func (q Quaternion) Dot(other Quaternion) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

/**
 * @brief Creates a quaternion from the given axis and angle.
 *
 * @param axis The axis of rotation.
 * @param angle The angle of rotation in radians.
 * @param normalize Indicates if the quaternion should be normalized.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float32, normalize bool) Quaternion {
	halfAngle := 0.5 * angle
	s := ksin(halfAngle)
	c := kcos(halfAngle)

	q := Quaternion{s * axis.X, s * axis.Y, s * axis.Z, c}
	if normalize {
		q = q.Normalize()
	}
	return q
}

/**
 * @brief Calculates spherical linear interpolation of a given percentage
 * between two quaternions.
 */
func (q Quaternion) Slerp(other Quaternion, percentage float32) Quaternion {
	// Only unit quaternions are valid rotations.
	v0 := q.Normalize()
	v1 := other.Normalize()

	dot := v0.Dot(v1)

	// Take the shorter path; v1 and -v1 are the same rotation.
	if dot < 0.0 {
		v1 = Quaternion{-v1.X, -v1.Y, -v1.Z, -v1.W}
		dot = -dot
	}

	const dotThreshold float32 = 0.9995
	if dot > dotThreshold {
		qt := Quaternion{
			v0.X + ((v1.X - v0.X) * percentage),
			v0.Y + ((v1.Y - v0.Y) * percentage),
			v0.Z + ((v1.Z - v0.Z) * percentage),
			v0.W + ((v1.W - v0.W) * percentage)}
		return qt.Normalize()
	}

	theta0 := kacos(dot)
	theta := theta0 * percentage
	sinTheta := ksin(theta)
	sinTheta0 := ksin(theta0)

	s0 := kcos(theta) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return Quaternion{
		(v0.X * s0) + (v1.X * s1),
		(v0.Y * s0) + (v1.Y * s1),
		(v0.Z * s0) + (v1.Z * s1),
		(v0.W * s0) + (v1.W * s1)}
}

/**
 * @brief Compares all components of q and other within tolerance. Note that
 * q and -q are the same rotation but do not compare equal.
 */
func (q Quaternion) Compare(other Quaternion, tolerance float32) bool {
	return Vec4(q).Compare(Vec4(other), tolerance)
}

func (v Vec4) Compare(other Vec4, tolerance float32) bool {
	return kabs(v.X-other.X) <= tolerance &&
		kabs(v.Y-other.Y) <= tolerance &&
		kabs(v.Z-other.Z) <= tolerance &&
		kabs(v.W-other.W) <= tolerance
}
