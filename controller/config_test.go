package controller

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "gotoctl")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	path := filepath.Join(dir, "config.json")
	if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Rate != DefaultControlHz {
		t.Error(cfg.Rate)
	}
	if !cfg.OdomOnly {
		t.Error("feedback must default to odometry")
	}
	if cfg.StopOnIdle {
		t.Error("stop on idle must default to off")
	}
	if cfg.GoalTopic != "goto_controller/goal" {
		t.Error(cfg.GoalTopic)
	}
	if cfg.CmdVelTopic != "stretch/cmd_vel" {
		t.Error(cfg.CmdVelTopic)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `{
		"rate": 50,
		"odom_only": false,
		"stop_on_idle": true,
		"cmd_vel_topic": "robot/cmd_vel"
	}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rate != 50 {
		t.Error(cfg.Rate)
	}
	if cfg.OdomOnly {
		t.Error("odom_only override ignored")
	}
	if !cfg.StopOnIdle {
		t.Error("stop_on_idle override ignored")
	}
	if cfg.CmdVelTopic != "robot/cmd_vel" {
		t.Error(cfg.CmdVelTopic)
	}
	// Untouched keys keep their defaults.
	if cfg.GoalTopic != "goto_controller/goal" {
		t.Error(cfg.GoalTopic)
	}
}

func TestLoadConfigRejectsBadRate(t *testing.T) {
	path := writeConfig(t, `{"rate": -1}`)
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected an error for a non-positive rate")
	}
}

func TestLoadConfigRejectsEmptyTopic(t *testing.T) {
	path := writeConfig(t, `{"goal_topic": ""}`)
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected an error for an empty topic name")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/config.json"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
