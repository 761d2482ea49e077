// Package geometry provides the planar pose algebra used by the goto
// controller: conversions between full 3-D pose messages and compact
// (x, y, heading) poses, frame composition and frame-relative errors.
package geometry

import (
	"math"

	"github.com/edwinhayes/gotoctl/msgs/geometry_msgs"
)

// Pose2D is a rigid-body pose projected to the ground plane.
// Theta is always kept in (-pi, pi].
type Pose2D struct {
	X     float64
	Y     float64
	Theta float64
}

// NormalizeAngle wraps an angle into (-pi, pi].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// YawFromQuaternion extracts the rotation about the world Z axis.
func YawFromQuaternion(q geometry_msgs.Quaternion) float64 {
	return math.Atan2(2.0*(q.W*q.Z+q.X*q.Y), 1.0-2.0*(q.Y*q.Y+q.Z*q.Z))
}

// FromPoseMsg projects a full 3-D pose message onto the ground plane.
func FromPoseMsg(p geometry_msgs.Pose) Pose2D {
	return Pose2D{
		X:     p.Position.X,
		Y:     p.Position.Y,
		Theta: NormalizeAngle(YawFromQuaternion(p.Orientation)),
	}
}

// ToPoseMsg converts a planar pose back into a 3-D pose message with the
// heading encoded as a rotation about Z.
func ToPoseMsg(p Pose2D) geometry_msgs.Pose {
	return geometry_msgs.Pose{
		Position: geometry_msgs.Point{X: p.X, Y: p.Y, Z: 0.0},
		Orientation: geometry_msgs.Quaternion{
			X: 0.0,
			Y: 0.0,
			Z: math.Sin(p.Theta / 2.0),
			W: math.Cos(p.Theta / 2.0),
		},
	}
}

// Compose applies other in the frame of p, returning the combined pose
// expressed in the frame p is expressed in.
func (p Pose2D) Compose(other Pose2D) Pose2D {
	sin, cos := math.Sincos(p.Theta)
	return Pose2D{
		X:     p.X + cos*other.X - sin*other.Y,
		Y:     p.Y + sin*other.X + cos*other.Y,
		Theta: NormalizeAngle(p.Theta + other.Theta),
	}
}

// Inverse returns the pose q such that p.Compose(q) is the identity.
func (p Pose2D) Inverse() Pose2D {
	sin, cos := math.Sincos(p.Theta)
	return Pose2D{
		X:     -(cos*p.X + sin*p.Y),
		Y:     -(-sin*p.X + cos*p.Y),
		Theta: NormalizeAngle(-p.Theta),
	}
}

// GlobalToBase re-expresses a pose given in the world frame relative to a
// base pose in the same frame: the translation is rotated into the base
// frame and the heading difference is wrapped.
func GlobalToBase(global Pose2D, base Pose2D) Pose2D {
	return base.Inverse().Compose(global)
}
