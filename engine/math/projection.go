package math

// Project maps a camera-space point to screen coordinates on a width x height
// raster with the given horizontal field of view in degrees. The divisors
// (scale + v.Z) are not guarded: points near z = -scale project to +-Inf or
// NaN and callers decide what to do with them.
func Project(v Vec3, width, height, fovDegrees float32) Vec2 {
	aspect := width / height
	scaleX := ktan(DegToRad(fovDegrees * 0.5))
	scaleY := scaleX * aspect

	return Vec2{
		X: width/2.0 + (v.X*scaleX)/(scaleX+v.Z)*width/2.0,
		Y: height/2.0 - (v.Y*scaleY)/(scaleY+v.Z)*height/2.0,
	}
}
