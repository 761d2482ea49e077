package controller

import (
	"github.com/edwinhayes/gotoctl/geometry"
	"github.com/edwinhayes/gotoctl/msgs/geometry_msgs"
	"github.com/edwinhayes/gotoctl/msgs/std_msgs"
	"github.com/edwinhayes/gotoctl/ros"
)

//Visualizer republishes poses on a debug topic for external inspection
type Visualizer struct {
	pub     ros.Publisher
	frameID string
	seq     uint32
}

//NewVisualizer creates a pose visualizer publishing on the given topic
func NewVisualizer(node ros.Node, topic string) *Visualizer {
	v := new(Visualizer)
	v.pub = node.NewPublisher(topic, geometry_msgs.MsgPoseStamped)
	v.frameID = "map"
	return v
}

//Publish stamps and publishes a planar pose
func (v *Visualizer) Publish(pose geometry.Pose2D) {
	v.seq++
	var msg geometry_msgs.PoseStamped
	msg.Header = std_msgs.Header{Seq: v.seq, Stamp: ros.Now(), FrameId: v.frameID}
	msg.Pose = geometry.ToPoseMsg(pose)
	v.pub.Publish(&msg)
}
