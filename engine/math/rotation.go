package math

/**
 * @brief Creates a 3x3 matrix from three column vectors.
 */
func NewMat3FromColumns(c0, c1, c2 Vec3) Mat3 {
	return Mat3{Data: [9]float32{
		c0.X, c0.Y, c0.Z,
		c1.X, c1.Y, c1.Z,
		c2.X, c2.Y, c2.Z,
	}}
}

/**
 * @brief Returns the element at the given row and column.
 */
func (mt Mat3) At(row, col int) float32 {
	return mt.Data[col*3+row]
}

/**
 * @brief Multiplies the matrix by a column vector (M * v).
 */
func (mt Mat3) MulVec3(v Vec3) Vec3 {
	d := mt.Data
	return Vec3{
		d[0]*v.X + d[3]*v.Y + d[6]*v.Z,
		d[1]*v.X + d[4]*v.Y + d[7]*v.Z,
		d[2]*v.X + d[5]*v.Y + d[8]*v.Z,
	}
}

/**
 * @brief Builds the combined Euler rotation matrix for the given angles
 * (radians, x=pitch y=yaw z=roll). The columns of the result are the rows
 * of the ZYX matrix Rz*Ry*Rx, so the matrix equals (Rz*Ry*Rx) transposed.
 */
func NewMat3Euler(angles Vec3) Mat3 {
	cx, sx := kcos(angles.X), ksin(angles.X)
	cy, sy := kcos(angles.Y), ksin(angles.Y)
	cz, sz := kcos(angles.Z), ksin(angles.Z)

	return NewMat3FromColumns(
		Vec3{
			cy * cz,
			cz*sx*sy - cx*sz,
			cx*cz*sy + sx*sz,
		},
		Vec3{
			cy * sz,
			cx*cz + sx*sy*sz,
			-cz*sx + cx*sy*sz,
		},
		Vec3{
			-sy,
			cy * sx,
			cx * cy,
		},
	)
}

/**
 * @brief Returns the quaternion that rotates points exactly like
 * NewMat3Euler(angles) does.
 */
func NewQuatFromEuler(angles Vec3) Quaternion {
	qx := NewQuatFromAxisAngle(NewVec3Right(), angles.X, false)
	qy := NewQuatFromAxisAngle(NewVec3Up(), angles.Y, false)
	qz := NewQuatFromAxisAngle(NewVec3Back(), angles.Z, false)
	return qz.Mul(qy).Mul(qx).Conjugate()
}

// Rotate rotates p about pivot by the quaternion q using the sandwich
// product q * (p - pivot, 0) * q^-1.
func Rotate(p Vec3, q Quaternion, pivot Vec3) Vec3 {
	r := q.Mul(Quaternion(p.Sub(pivot).ToVec4(0))).Mul(q.Inverse())
	return NewVec3FromVec4(Vec4(r)).Add(pivot)
}

// RotateEuler rotates p about pivot by the Euler angles (radians).
func RotateEuler(p, angles, pivot Vec3) Vec3 {
	return NewMat3Euler(angles).MulVec3(p.Sub(pivot)).Add(pivot)
}
