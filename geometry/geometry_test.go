package geometry

import (
	"math"
	"testing"

	"github.com/edwinhayes/gotoctl/msgs/geometry_msgs"
)

const tolerance = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestNormalizeAngleRange(t *testing.T) {
	angles := []float64{0, 1, -1, math.Pi, -math.Pi, 3 * math.Pi, -3 * math.Pi, 10, -10, 2 * math.Pi}
	for _, a := range angles {
		n := NormalizeAngle(a)
		if n <= -math.Pi || n > math.Pi {
			t.Errorf("NormalizeAngle(%v) = %v out of (-pi, pi]", a, n)
		}
	}
}

func TestNormalizeAngleValues(t *testing.T) {
	if n := NormalizeAngle(-math.Pi); !near(n, math.Pi) {
		t.Errorf("NormalizeAngle(-pi) = %v, want pi", n)
	}
	if n := NormalizeAngle(3 * math.Pi / 2); !near(n, -math.Pi/2) {
		t.Errorf("NormalizeAngle(3pi/2) = %v, want -pi/2", n)
	}
	if n := NormalizeAngle(math.Pi / 4); !near(n, math.Pi/4) {
		t.Errorf("NormalizeAngle(pi/4) = %v, want pi/4", n)
	}
}

func TestYawFromQuaternion(t *testing.T) {
	yaw := math.Pi / 3
	q := geometry_msgs.Quaternion{Z: math.Sin(yaw / 2), W: math.Cos(yaw / 2)}
	if got := YawFromQuaternion(q); !near(got, yaw) {
		t.Errorf("YawFromQuaternion = %v, want %v", got, yaw)
	}
}

func TestPoseMsgRoundTrip(t *testing.T) {
	p := Pose2D{X: 1.5, Y: -2.0, Theta: -math.Pi / 6}
	back := FromPoseMsg(ToPoseMsg(p))
	if !near(back.X, p.X) || !near(back.Y, p.Y) || !near(back.Theta, p.Theta) {
		t.Errorf("round trip mismatch: got %+v, want %+v", back, p)
	}
}

func TestComposeInverseIdentity(t *testing.T) {
	p := Pose2D{X: 0.7, Y: 1.2, Theta: 2.1}
	id := p.Compose(p.Inverse())
	if !near(id.X, 0) || !near(id.Y, 0) || !near(id.Theta, 0) {
		t.Errorf("p * p^-1 = %+v, want identity", id)
	}
}

func TestGlobalToBaseAhead(t *testing.T) {
	// Goal one meter straight ahead of a base at the origin.
	err := GlobalToBase(Pose2D{X: 1}, Pose2D{})
	if !near(err.X, 1) || !near(err.Y, 0) || !near(err.Theta, 0) {
		t.Errorf("error = %+v, want (1, 0, 0)", err)
	}
}

func TestGlobalToBaseRotatedBase(t *testing.T) {
	// Base facing +Y; a goal at the origin heading differs by -pi/2.
	err := GlobalToBase(Pose2D{}, Pose2D{Theta: math.Pi / 2})
	if !near(err.Theta, -math.Pi/2) {
		t.Errorf("heading error = %v, want -pi/2", err.Theta)
	}
}

func TestGlobalToBaseTranslationRotation(t *testing.T) {
	// Base at (1, 1) facing +Y; goal at (1, 2) is one meter ahead.
	err := GlobalToBase(Pose2D{X: 1, Y: 2}, Pose2D{X: 1, Y: 1, Theta: math.Pi / 2})
	if !near(err.X, 1) || !near(err.Y, 0) {
		t.Errorf("error = %+v, want (1, 0)", err)
	}
}
