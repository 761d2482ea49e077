// Package controller implements a self-contained goal-tracking velocity
// controller for a differential-drive base. The target goal is
// update-able at any instant; pose, odometry and goal updates arrive
// asynchronously while a fixed-rate loop turns the current pose error
// into velocity commands.
package controller

import (
	"math"

	modular "github.com/edwinhayes/logrus-modular"

	"github.com/edwinhayes/gotoctl/control"
	"github.com/edwinhayes/gotoctl/geometry"
	"github.com/edwinhayes/gotoctl/msgs/geometry_msgs"
	"github.com/edwinhayes/gotoctl/msgs/nav_msgs"
	"github.com/edwinhayes/gotoctl/msgs/std_srvs"
	"github.com/edwinhayes/gotoctl/ros"
)

//GotoController tracks a single goal pose with a pluggable velocity law
type GotoController struct {
	node   ros.Node
	logger *modular.ModuleLogger
	cfg    Config
	law    control.Law
	state  *controllerState

	cmdPub ros.Publisher
	viz    *Visualizer
}

//NewGotoController wires the controller onto the given node
func NewGotoController(node ros.Node, cfg Config, law control.Law) *GotoController {
	c := new(GotoController)
	c.node = node
	c.logger = node.Logger()
	c.cfg = cfg
	c.law = law
	c.state = newControllerState()

	c.cmdPub = node.NewPublisher(cfg.CmdVelTopic, geometry_msgs.MsgTwist)
	c.viz = NewVisualizer(node, cfg.GoalVizTopic)

	node.NewSubscriber(cfg.PoseTopic, geometry_msgs.MsgPoseStamped, c.onPose)
	node.NewSubscriber(cfg.OdomTopic, nav_msgs.MsgOdometry, c.onOdometry)
	node.NewSubscriber(cfg.GoalTopic, geometry_msgs.MsgPose, c.onGoal)

	node.NewServiceServer(cfg.EnableService, std_srvs.SrvTrigger, c.onEnable)
	node.NewServiceServer(cfg.DisableService, std_srvs.SrvTrigger, c.onDisable)
	node.NewServiceServer(cfg.SetYawTrackingService, std_srvs.SrvSetBool, c.onSetYawTracking)

	return c
}

func (c *GotoController) onPose(msg *geometry_msgs.PoseStamped) {
	c.state.SetLocalization(geometry.FromPoseMsg(msg.Pose))
}

func (c *GotoController) onOdometry(msg *nav_msgs.Odometry) {
	c.state.SetOdometry(geometry.FromPoseMsg(msg.Pose.Pose))
}

// onGoal replaces the goal wholesale, also while the controller is
// inactive. The visualization side effect republishes the goal through
// the current localization/odometry offset and does not touch control
// state.
func (c *GotoController) onGoal(msg *geometry_msgs.Pose) {
	goal := geometry.FromPoseMsg(*msg)
	c.state.SetGoal(goal)

	snap := c.state.Snapshot()
	c.viz.Publish(snap.Localization.Compose(snap.Odometry.Inverse()).Compose(goal))
}

func (c *GotoController) onEnable(srv *std_srvs.Trigger) error {
	c.state.SetActive(true)
	srv.Response = std_srvs.TriggerResponse{
		Success: true,
		Message: "goto controller is now RUNNING",
	}
	return nil
}

// onDisable clears neither the goal nor the velocity law state.
func (c *GotoController) onDisable(srv *std_srvs.Trigger) error {
	c.state.SetActive(false)
	srv.Response = std_srvs.TriggerResponse{
		Success: true,
		Message: "goto controller is now STOPPED",
	}
	return nil
}

func (c *GotoController) onSetYawTracking(srv *std_srvs.SetBool) error {
	c.state.SetTrackYaw(srv.Request.Data)
	status := "OFF"
	if srv.Request.Data {
		status = "ON"
	}
	srv.Response = std_srvs.SetBoolResponse{
		Success: true,
		Message: "yaw tracking is now " + status,
	}
	return nil
}

// errorFromSnapshot expresses the goal in the base frame of the
// configured feedback pose and applies the yaw tracking gate.
func (c *GotoController) errorFromSnapshot(snap stateSnapshot) geometry.Pose2D {
	feedback := snap.Localization
	if c.cfg.OdomOnly {
		feedback = snap.Odometry
	}
	err := geometry.GlobalToBase(snap.Goal, feedback)
	if !snap.TrackYaw {
		err.Theta = 0.0
	} else {
		err.Theta = geometry.NormalizeAngle(err.Theta)
	}
	return err
}

func (c *GotoController) publishCommand(v, w float64) {
	var cmd geometry_msgs.Twist
	cmd.Linear.X = v
	cmd.Angular.Z = w
	c.cmdPub.Publish(&cmd)
}

// Run executes the control loop until the node shuts down. Each tick
// works from one snapshot of the shared state: while tracking, the pose
// error is fed to the velocity law and the resulting command published;
// while idle nothing is emitted, unless StopOnIdle asks for a single
// zero velocity command on the transition out of tracking.
func (c *GotoController) Run() {
	logger := *c.logger
	rate := ros.NewRate(c.cfg.Rate)
	tracking := false

	for c.node.OK() {
		snap := c.state.Snapshot()
		if snap.Active && snap.HasGoal {
			err := c.errorFromSnapshot(snap)
			v, w := c.law.Step(err)
			c.publishCommand(v, w)
			if !tracking {
				logger.Infof("tracking goal (%.3f, %.3f, %.3f)",
					snap.Goal.X, snap.Goal.Y, snap.Goal.Theta)
			}
			tracking = true
		} else {
			if tracking {
				logger.Info("tracking stopped")
				if c.cfg.StopOnIdle {
					c.publishCommand(0.0, 0.0)
				}
			}
			tracking = false
		}
		rate.Sleep()
	}
}

//Start launches the control loop goroutine
func (c *GotoController) Start() {
	go c.Run()
}

// DistanceToGoal reports the current planar distance between the feedback
// pose and the goal, or false when no goal is set.
func (c *GotoController) DistanceToGoal() (float64, bool) {
	snap := c.state.Snapshot()
	if !snap.HasGoal {
		return 0, false
	}
	err := geometry.GlobalToBase(snap.Goal, snap.Odometry)
	if !c.cfg.OdomOnly {
		err = geometry.GlobalToBase(snap.Goal, snap.Localization)
	}
	return math.Hypot(err.X, err.Y), true
}
