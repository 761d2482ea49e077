// Package control holds the velocity control laws that turn a planar pose
// error into a velocity command for a differential-drive base.
package control

import (
	"github.com/edwinhayes/gotoctl/geometry"
)

// Law converts the pose error of the current control tick into a linear and
// angular velocity pair. Implementations are stateful: successive calls are
// assumed to arrive at the controller rate and internal state (such as the
// previously commanded velocities) persists across calls until Reset.
type Law interface {
	Step(err geometry.Pose2D) (v float64, w float64)
	Reset()
}
