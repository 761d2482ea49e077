package controller

import (
	"sync"

	"github.com/edwinhayes/gotoctl/geometry"
)

// stateSnapshot is the consistent view of the shared state a control tick
// works from. All fields are plain copies; the tick never re-reads.
type stateSnapshot struct {
	Localization geometry.Pose2D
	Odometry     geometry.Pose2D
	Goal         geometry.Pose2D
	HasGoal      bool
	Active       bool
	TrackYaw     bool
}

// controllerState is the single source of truth for the latest pose
// estimates, the goal and the mode flags. Every write replaces a whole
// value under the lock so a concurrent reader observes either the fully
// old or the fully new record, never a torn mix of fields.
type controllerState struct {
	mu           sync.RWMutex
	localization geometry.Pose2D
	odometry     geometry.Pose2D
	goal         geometry.Pose2D
	hasGoal      bool
	active       bool
	trackYaw     bool
}

func newControllerState() *controllerState {
	return &controllerState{trackYaw: true}
}

func (s *controllerState) SetLocalization(pose geometry.Pose2D) {
	s.mu.Lock()
	s.localization = pose
	s.mu.Unlock()
}

func (s *controllerState) SetOdometry(pose geometry.Pose2D) {
	s.mu.Lock()
	s.odometry = pose
	s.mu.Unlock()
}

// SetGoal replaces the goal unconditionally, also while inactive.
func (s *controllerState) SetGoal(goal geometry.Pose2D) {
	s.mu.Lock()
	s.goal = goal
	s.hasGoal = true
	s.mu.Unlock()
}

// SetActive flips the running flag. The goal is deliberately left in
// place on disable; re-enabling resumes tracking the previous goal.
func (s *controllerState) SetActive(active bool) {
	s.mu.Lock()
	s.active = active
	s.mu.Unlock()
}

func (s *controllerState) SetTrackYaw(trackYaw bool) {
	s.mu.Lock()
	s.trackYaw = trackYaw
	s.mu.Unlock()
}

func (s *controllerState) Snapshot() stateSnapshot {
	s.mu.RLock()
	snap := stateSnapshot{
		Localization: s.localization,
		Odometry:     s.odometry,
		Goal:         s.goal,
		HasGoal:      s.hasGoal,
		Active:       s.active,
		TrackYaw:     s.trackYaw,
	}
	s.mu.RUnlock()
	return snap
}
