package control

import (
	"math"
	"testing"

	"github.com/edwinhayes/gotoctl/geometry"
)

const hz = 20.0

func TestStepGoalAhead(t *testing.T) {
	law := NewDiffDrive(DefaultDiffDriveConfig(), hz)
	v, w := law.Step(geometry.Pose2D{X: 1})
	if v <= 0 {
		t.Errorf("v = %v, want forward motion", v)
	}
	if math.Abs(w) > 1e-9 {
		t.Errorf("w = %v, want no turn for a goal straight ahead", w)
	}
}

func TestStepGoalBehindRotatesFirst(t *testing.T) {
	law := NewDiffDrive(DefaultDiffDriveConfig(), hz)
	v, w := law.Step(geometry.Pose2D{X: -1, Y: 0.1})
	if v != 0 {
		t.Errorf("v = %v, want no forward motion while facing away", v)
	}
	if w <= 0 {
		t.Errorf("w = %v, want positive turn towards the goal", w)
	}
}

func TestStepRotateInPlace(t *testing.T) {
	law := NewDiffDrive(DefaultDiffDriveConfig(), hz)
	v, w := law.Step(geometry.Pose2D{Theta: 1.0})
	if v != 0 {
		t.Errorf("v = %v, want pure rotation at the goal point", v)
	}
	if w <= 0 {
		t.Errorf("w = %v, want positive rotation onto the goal heading", w)
	}
}

func TestStepAccelerationLimit(t *testing.T) {
	cfg := DefaultDiffDriveConfig()
	law := NewDiffDrive(cfg, hz)
	maxDelta := cfg.AccLin/hz + 1e-12
	var last float64
	for i := 0; i < 50; i++ {
		v, _ := law.Step(geometry.Pose2D{X: 10})
		if v-last > maxDelta {
			t.Fatalf("tick %d: v jumped by %v, limit %v", i, v-last, cfg.AccLin/hz)
		}
		last = v
	}
	if last <= 0 {
		t.Error("velocity never ramped up")
	}
	if last > cfg.VMax {
		t.Errorf("v = %v exceeds VMax %v", last, cfg.VMax)
	}
}

func TestStepVelocityPersistsAcrossIdle(t *testing.T) {
	law := NewDiffDrive(DefaultDiffDriveConfig(), hz)
	for i := 0; i < 10; i++ {
		law.Step(geometry.Pose2D{X: 10})
	}
	vBefore := law.v
	if vBefore == 0 {
		t.Fatal("expected ramped velocity")
	}
	// No Reset between steps: the ramp continues from the previous value.
	v, _ := law.Step(geometry.Pose2D{X: 10})
	if v < vBefore {
		t.Errorf("v = %v dropped below previous %v", v, vBefore)
	}
}

func TestReset(t *testing.T) {
	law := NewDiffDrive(DefaultDiffDriveConfig(), hz)
	law.Step(geometry.Pose2D{X: 10})
	law.Reset()
	if law.v != 0 || law.w != 0 {
		t.Errorf("reset left state v=%v w=%v", law.v, law.w)
	}
}
