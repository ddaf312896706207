package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center core.Vec3 // Camera position
	LookAt core.Vec3 // Point the camera is looking at
	Up     core.Vec3 // Up direction (usually (0,1,0))
	VFov   float64   // Vertical field of view in degrees
}

// DefaultCameraConfig returns a camera at the origin looking down +Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, 1),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   60.0,
	}
}

// MergeCameraConfig merges a partial camera config with defaults.
// LookAt and Up are replaced only when non-zero; Center is replaced when
// either it or LookAt is set so a camera can be moved to the origin.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Center != (core.Vec3{}) || override.LookAt != (core.Vec3{}) {
		result.Center = override.Center
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	return result
}

// Camera projects image coordinates onto a viewport one unit in front of
// its origin. It is immutable after construction.
type Camera struct {
	origin     core.Vec3
	forward    core.Vec3
	lowerLeft  core.Vec3
	horizontal core.Vec3 // right × viewport width
	vertical   core.Vec3 // up × viewport height
	width      int
	height     int
}

// NewCamera creates a camera for an image of the given size
func NewCamera(config CameraConfig, width, height int) *Camera {
	width = max(1, width)
	height = max(1, height)

	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2.0)
	viewportWidth := viewportHeight * float64(width) / float64(height)

	forward := config.LookAt.Subtract(config.Center).Normalize()
	if forward == (core.Vec3{}) {
		forward = core.NewVec3(0, 0, 1)
	}
	right := config.Up.Cross(forward).Normalize()
	if right == (core.Vec3{}) {
		// Up parallel to the view direction; pick any perpendicular axis
		right = core.NewVec3(0, 0, 1).Cross(forward).Normalize()
		if right == (core.Vec3{}) {
			right = core.NewVec3(1, 0, 0)
		}
	}
	up := forward.Cross(right)

	horizontal := right.Multiply(viewportWidth)
	vertical := up.Multiply(viewportHeight)
	lowerLeft := config.Center.Add(forward).
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5))

	return &Camera{
		origin:     config.Center,
		forward:    forward,
		lowerLeft:  lowerLeft,
		horizontal: horizontal,
		vertical:   vertical,
		width:      width,
		height:     height,
	}
}

// GetRay generates a ray for viewport coordinates (u, v) where 0 <= u,v <= 1
// and (0, 0) is the lower-left corner
func (c *Camera) GetRay(u, v float64) core.Ray {
	point := c.lowerLeft.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v))
	return core.NewRay(c.origin, point.Subtract(c.origin).Normalize())
}

// PixelRay returns the primary ray for pixel column i and viewport row j,
// where row 0 is the bottom of the viewport
func (c *Camera) PixelRay(i, j int) core.Ray {
	return c.SubpixelRay(i, j, 0, 0)
}

// SubpixelRay returns the ray through pixel (i, j) shifted by a sub-pixel offset
func (c *Camera) SubpixelRay(i, j int, offX, offY float64) core.Ray {
	u := normalizedCoord(float64(i)+offX, c.width)
	v := normalizedCoord(float64(j)+offY, c.height)
	return c.GetRay(u, v)
}

// GetCameraForward returns the unit view direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.forward
}

// normalizedCoord maps a pixel coordinate to [0, 1] over size-1 intervals
func normalizedCoord(pos float64, size int) float64 {
	if size <= 1 {
		return 0.5
	}
	return pos / float64(size-1)
}
