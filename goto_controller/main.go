package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/edwinhayes/gotoctl/control"
	"github.com/edwinhayes/gotoctl/controller"
	"github.com/edwinhayes/gotoctl/ros"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON controller configuration")
	flag.Parse()

	node, err := ros.NewNode("/goto_controller", os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
	defer node.Shutdown()

	cfg := controller.DefaultConfig()
	if *configPath != "" {
		cfg, err = controller.LoadConfig(*configPath)
		if err != nil {
			fmt.Println(err)
			os.Exit(-1)
		}
	}

	law := control.NewDiffDrive(control.DefaultDiffDriveConfig(), cfg.Rate)
	ctl := controller.NewGotoController(node, cfg, law)
	ctl.Start()

	logger := *node.Logger()
	logger.Info("goto controller launched")
	node.Spin()
}
