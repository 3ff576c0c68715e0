package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"neonhex/internal/util"
	"neonhex/pkg/config"
	"neonhex/pkg/terrain"
)

// MoveInput is the axis state read from the keyboard each frame.
type MoveInput struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
}

// Camera is a fly viewpoint that glides over the terrain: free yaw
// and pitch from the mouse, planar movement from the keyboard, and a
// smoothly interpolated height that follows the surface below.
type Camera struct {
	cfg config.CameraConfig

	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32
}

// NewCamera places the viewpoint above the terrain at the origin.
func NewCamera(cfg config.CameraConfig, field *terrain.Field) *Camera {
	h := field.InterpolateHeight(mgl32.Vec2{0, 0})
	return &Camera{
		cfg:      cfg,
		Position: mgl32.Vec3{0, h + cfg.HeightOffset, 0},
	}
}

// Forward returns the full look direction.
func (c *Camera) Forward() mgl32.Vec3 {
	cp := float32(math.Cos(float64(c.Pitch)))
	return mgl32.Vec3{
		cp * float32(math.Sin(float64(c.Yaw))),
		float32(math.Sin(float64(c.Pitch))),
		-cp * float32(math.Cos(float64(c.Yaw))),
	}
}

// PlanarForward returns the yaw-plane forward direction, ignoring
// pitch so movement stays level.
func (c *Camera) PlanarForward() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(math.Sin(float64(c.Yaw))),
		0,
		-float32(math.Cos(float64(c.Yaw))),
	}
}

// Right returns the yaw-plane strafe direction.
func (c *Camera) Right() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(math.Cos(float64(c.Yaw))),
		0,
		float32(math.Sin(float64(c.Yaw))),
	}
}

// ApplyLook turns the camera by a mouse delta, keeping pitch away
// from the vertical poles.
func (c *Camera) ApplyLook(dx, dy float32) {
	c.Yaw += dx * c.cfg.SensitivityX
	c.Pitch = util.ClampPitch(c.Pitch-dy*c.cfg.SensitivityY, c.cfg.PitchMargin)
}

// Move translates the camera in the yaw plane.
func (c *Camera) Move(in MoveInput, dt float32) {
	var dir mgl32.Vec3
	if in.Forward {
		dir = dir.Add(c.PlanarForward())
	}
	if in.Back {
		dir = dir.Sub(c.PlanarForward())
	}
	if in.Right {
		dir = dir.Add(c.Right())
	}
	if in.Left {
		dir = dir.Sub(c.Right())
	}
	if dir.Len() < 1e-6 {
		return
	}
	c.Position = c.Position.Add(dir.Normalize().Mul(c.cfg.MoveSpeed * dt))
}

// FollowTerrain eases the camera height toward the interpolated
// surface height plus the configured offset.
func (c *Camera) FollowTerrain(field *terrain.Field) {
	target := field.InterpolateHeight(mgl32.Vec2{c.Position.X(), c.Position.Z()}) + c.cfg.HeightOffset
	c.Position = mgl32.Vec3{
		c.Position.X(),
		util.Lerp(c.Position.Y(), target, c.cfg.HeightLerp),
		c.Position.Z(),
	}
}

// PlanarPosition is the camera's (x, z) footprint.
func (c *Camera) PlanarPosition() mgl32.Vec2 {
	return mgl32.Vec2{c.Position.X(), c.Position.Z()}
}

// ViewMatrix returns the camera's view matrix, with an extra pitch
// offset applied for the intro sweep.
func (c *Camera) ViewMatrix(pitchOffset float32) mgl32.Mat4 {
	pitch := util.ClampPitch(c.Pitch+pitchOffset, c.cfg.PitchMargin)
	cp := float32(math.Cos(float64(pitch)))
	forward := mgl32.Vec3{
		cp * float32(math.Sin(float64(c.Yaw))),
		float32(math.Sin(float64(pitch))),
		-cp * float32(math.Cos(float64(c.Yaw))),
	}
	return mgl32.LookAtV(c.Position, c.Position.Add(forward), mgl32.Vec3{0, 1, 0})
}
