package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/kiln/engine/math"
)

const (
	DEFAULT_YAW            float32 = -90.0
	DEFAULT_PITCH          float32 = 0.0
	DEFAULT_SPEED          float32 = 10.0
	DEFAULT_ROTATION_SPEED float32 = 50.0
	DEFAULT_ZOOM           float32 = 45.0

	MIN_ZOOM  float32 = 1.0
	MAX_ZOOM  float32 = 45.0
	MAX_PITCH float32 = 89.0

	NEAR_PLANE float32 = 0.1
	FAR_PLANE  float32 = 100.0
)

// Camera is a free-flying perspective camera. Angles are in degrees; Zoom is
// the vertical field of view.
type Camera struct {
	Position mgl32.Vec3
	Forward  mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3
	Yaw      float32
	Pitch    float32
	Zoom     float32
}

// Movement holds the tuning of a camera driven by the keyboard.
type Movement struct {
	Speed          float32
	RotationSpeed  float32
	ConstrainPitch bool
}

func NewCamera(position mgl32.Vec3) *Camera {
	c := &Camera{
		Position: position,
		WorldUp:  mgl32.Vec3{0, 1, 0},
		Yaw:      DEFAULT_YAW,
		Pitch:    DEFAULT_PITCH,
		Zoom:     DEFAULT_ZOOM,
	}
	c.updateVectors()
	return c
}

func DefaultMovement() *Movement {
	return &Movement{
		Speed:          DEFAULT_SPEED,
		RotationSpeed:  DEFAULT_ROTATION_SPEED,
		ConstrainPitch: true,
	}
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Forward), c.Up)
}

// Projection returns the perspective matrix for the given width/height ratio.
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, NEAR_PLANE, FAR_PLANE)
}

// ApplyScroll narrows the field of view for positive scroll amounts.
func (c *Camera) ApplyScroll(scroll float32) {
	c.Zoom = math.Clamp(c.Zoom-scroll, MIN_ZOOM, MAX_ZOOM)
}

// Move translates the camera. local is the requested direction in camera
// space: -Z forward and +X right. Only the X and Z components are used.
func (c *Camera) Move(local mgl32.Vec3, m *Movement, dt float32) {
	if local.X() == 0 && local.Z() == 0 {
		return
	}
	dir := c.Forward.Mul(-local.Z()).Add(c.Right.Mul(local.X()))
	if dir.Len() == 0 {
		return
	}
	c.Position = c.Position.Add(dir.Normalize().Mul(m.Speed * dt))
}

// Rotate turns the camera by pitch and yaw steps, each scaled by the
// rotation speed and dt.
func (c *Camera) Rotate(pitch, yaw float32, m *Movement, dt float32) {
	if pitch == 0 && yaw == 0 {
		return
	}
	c.Pitch += pitch * m.RotationSpeed * dt
	c.Yaw = math.WrapDegrees(c.Yaw + yaw*m.RotationSpeed*dt)
	if m.ConstrainPitch {
		c.Pitch = math.Clamp(c.Pitch, -MAX_PITCH, MAX_PITCH)
	}
	c.updateVectors()
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	forward := mgl32.Vec3{
		float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		float32(gomath.Sin(pitch)),
		float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}
	c.Forward = forward.Normalize()
	c.Right = c.Forward.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Forward).Normalize()
}
