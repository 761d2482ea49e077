package control

import (
	"math"

	"github.com/edwinhayes/gotoctl/geometry"
)

//DiffDriveConfig bundles the gains and limits of the diff drive law
type DiffDriveConfig struct {
	VMax   float64 `json:"v_max"`
	WMax   float64 `json:"w_max"`
	AccLin float64 `json:"acc_lin"`
	AccAng float64 `json:"acc_ang"`
	KpLin  float64 `json:"kp_lin"`
	KpAng  float64 `json:"kp_ang"`
	LinTol float64 `json:"lin_tol"`
	AngTol float64 `json:"ang_tol"`
}

//DefaultDiffDriveConfig returns the stock gains and limits
func DefaultDiffDriveConfig() DiffDriveConfig {
	return DiffDriveConfig{
		VMax:   0.5,
		WMax:   0.9,
		AccLin: 0.4,
		AccAng: 1.2,
		KpLin:  1.0,
		KpAng:  2.0,
		LinTol: 0.01,
		AngTol: 0.02,
	}
}

// DiffDrive is a proportional goal-seeking law for a differential-drive
// base. While far from the goal it steers towards the goal point and only
// drives forward when roughly facing it; once the position error is inside
// tolerance it rotates in place onto the goal heading. Commanded
// velocities are ramped so per-tick changes respect the acceleration
// limits.
type DiffDrive struct {
	cfg DiffDriveConfig
	dt  float64
	v   float64
	w   float64
}

//NewDiffDrive creates a diff drive law stepped at the given rate
func NewDiffDrive(cfg DiffDriveConfig, hz float64) *DiffDrive {
	return &DiffDrive{cfg: cfg, dt: 1.0 / hz}
}

func (c *DiffDrive) Step(err geometry.Pose2D) (float64, float64) {
	dist := math.Hypot(err.X, err.Y)

	var vTarget, wTarget float64
	if dist > c.cfg.LinTol {
		heading := math.Atan2(err.Y, err.X)
		wTarget = clamp(c.cfg.KpAng*heading, -c.cfg.WMax, c.cfg.WMax)
		// Drive forward only while roughly facing the goal point;
		// otherwise rotate first.
		if align := math.Cos(heading); align > 0 {
			vTarget = clamp(c.cfg.KpLin*dist*align*align, 0, c.cfg.VMax)
		}
	} else if math.Abs(err.Theta) > c.cfg.AngTol {
		wTarget = clamp(c.cfg.KpAng*err.Theta, -c.cfg.WMax, c.cfg.WMax)
	}

	c.v = rampTowards(c.v, vTarget, c.cfg.AccLin*c.dt)
	c.w = rampTowards(c.w, wTarget, c.cfg.AccAng*c.dt)
	return c.v, c.w
}

// Reset clears the ramp state. The controller never calls this on disable;
// the law resumes from its previous velocities when tracking restarts.
func (c *DiffDrive) Reset() {
	c.v = 0
	c.w = 0
}

func rampTowards(current, target, maxDelta float64) float64 {
	delta := target - current
	if delta > maxDelta {
		delta = maxDelta
	} else if delta < -maxDelta {
		delta = -maxDelta
	}
	return current + delta
}

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
