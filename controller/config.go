package controller

import (
	"io/ioutil"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
)

//DefaultControlHz is the stock control loop rate
const DefaultControlHz = 20.0

//Config carries the construction time parameters of the goto controller
type Config struct {
	// Rate is the control loop frequency in Hz.
	Rate float64
	// OdomOnly selects wheel odometry as the feedback source instead of
	// the filtered localization estimate.
	OdomOnly bool
	// StopOnIdle emits a single zero velocity command when the loop
	// leaves the tracking state. The default preserves the historical
	// behaviour of leaving the last command in effect on the actuator.
	StopOnIdle bool

	PoseTopic    string
	OdomTopic    string
	GoalTopic    string
	CmdVelTopic  string
	GoalVizTopic string

	EnableService         string
	DisableService        string
	SetYawTrackingService string
}

//DefaultConfig returns the stock controller configuration
func DefaultConfig() Config {
	return Config{
		Rate:                  DefaultControlHz,
		OdomOnly:              true,
		StopOnIdle:            false,
		PoseTopic:             "state_estimator/pose_filtered",
		OdomTopic:             "odom",
		GoalTopic:             "goto_controller/goal",
		CmdVelTopic:           "stretch/cmd_vel",
		GoalVizTopic:          "goto_controller/goal_abs",
		EnableService:         "goto_controller/enable",
		DisableService:        "goto_controller/disable",
		SetYawTrackingService: "goto_controller/set_yaw_tracking",
	}
}

//LoadConfig reads a JSON configuration file, applying defaults for keys
//that are absent
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "error reading controller config")
	}

	if rate, err := jsonparser.GetFloat(data, "rate"); err == nil {
		if rate <= 0 {
			return cfg, errors.Errorf("config rate must be positive, got %v", rate)
		}
		cfg.Rate = rate
	}
	if odomOnly, err := jsonparser.GetBoolean(data, "odom_only"); err == nil {
		cfg.OdomOnly = odomOnly
	}
	if stopOnIdle, err := jsonparser.GetBoolean(data, "stop_on_idle"); err == nil {
		cfg.StopOnIdle = stopOnIdle
	}

	topics := []struct {
		key   string
		field *string
	}{
		{"pose_topic", &cfg.PoseTopic},
		{"odom_topic", &cfg.OdomTopic},
		{"goal_topic", &cfg.GoalTopic},
		{"cmd_vel_topic", &cfg.CmdVelTopic},
		{"goal_viz_topic", &cfg.GoalVizTopic},
		{"enable_service", &cfg.EnableService},
		{"disable_service", &cfg.DisableService},
		{"set_yaw_tracking_service", &cfg.SetYawTrackingService},
	}
	for _, t := range topics {
		if value, err := jsonparser.GetString(data, t.key); err == nil {
			if len(value) == 0 {
				return cfg, errors.Errorf("config key %s must not be empty", t.key)
			}
			*t.field = value
		}
	}

	return cfg, nil
}
