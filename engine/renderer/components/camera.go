package components

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/wireframe/engine/math"
)

var ErrInvalidCamera = errors.New("invalid camera")

/** @brief The default vertical field of view, in degrees. */
const DEFAULT_CAMERA_FOV float32 = 47.0

/**
 * @brief Represents the fixed perspective camera the renderer projects
 * through. It sits at the origin looking down +Z; only the viewport size
 * and the field of view can change.
 */
type Camera struct {
	/** @brief The viewport width in pixels. */
	Width int
	/** @brief The viewport height in pixels. */
	Height int
	/** @brief The field of view in degrees. */
	FOV float32
}

func NewCamera(width, height int, fov float32) *Camera {
	return &Camera{
		Width:  width,
		Height: height,
		FOV:    fov,
	}
}

// Validate reports whether the camera describes a usable projection.
func (c *Camera) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidCamera, c.Width, c.Height)
	}
	if !math.IsFinite(c.FOV) || c.FOV <= 0 || c.FOV >= 180 {
		return fmt.Errorf("%w: fov %v", ErrInvalidCamera, c.FOV)
	}
	return nil
}

func (c *Camera) SetSize(width, height int) {
	c.Width = width
	c.Height = height
}

func (c *Camera) SetFOV(fov float32) {
	c.FOV = fov
}

func (c *Camera) AspectRatio() float32 {
	return float32(c.Width) / float32(c.Height)
}

/**
 * @brief Projects a world space point onto the viewport.
 * @param v The point to project.
 * @return The screen space position; may be non-finite near the camera plane.
 */
func (c *Camera) Project(v math.Vec3) math.Vec2 {
	return math.Project(v, float32(c.Width), float32(c.Height), c.FOV)
}
