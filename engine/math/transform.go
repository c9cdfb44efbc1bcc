package math

func TransformCreate() *Transform {
	return TransformFromPositionRotationScale(NewVec3Zero(), NewQuatIdentity(), NewVec3One())
}

func TransformFromPosition(position Vec3) *Transform {
	return TransformFromPositionRotationScale(position, NewQuatIdentity(), NewVec3One())
}

func TransformFromPositionRotation(position Vec3, rotation Quaternion) *Transform {
	return TransformFromPositionRotationScale(position, rotation, NewVec3One())
}

func TransformFromPositionRotationScale(position Vec3, rotation Quaternion, scale Vec3) *Transform {
	t := &Transform{}
	t.SetPositionRotationScale(position, rotation, scale)
	return t
}

func (t *Transform) SetPosition(position Vec3) {
	t.Position = position
}

func (t *Transform) Translate(translation Vec3) {
	t.Position = t.Position.Add(translation)
}

func (t *Transform) SetRotation(rotation Quaternion) {
	t.Rotation = rotation
}

// SetEulerRotation replaces the rotation with the one described by the
// Euler angles (radians), see NewQuatFromEuler.
func (t *Transform) SetEulerRotation(angles Vec3) {
	t.Rotation = NewQuatFromEuler(angles)
}

func (t *Transform) Rotate(rotation Quaternion) {
	t.Rotation = t.Rotation.Mul(rotation)
}

func (t *Transform) SetScale(scale Vec3) {
	t.Scale = scale
}

func (t *Transform) SetPositionRotationScale(position Vec3, rotation Quaternion, scale Vec3) {
	t.Position = position
	t.Rotation = rotation
	t.Scale = scale
}

// Apply maps a local-space vertex to world space: scale, then rotate about
// the local origin, then translate.
func (t *Transform) Apply(v Vec3) Vec3 {
	if t == nil {
		return v
	}
	return Rotate(v.Mul(t.Scale), t.Rotation, NewVec3Zero()).Add(t.Position)
}
