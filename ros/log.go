package ros

import (
	modular "github.com/edwinhayes/logrus-modular"
	"github.com/sirupsen/logrus"
)

// newNodeLogger creates the root module logger a node hands out to its
// publishers, subscribers and service servers.
func newNodeLogger() modular.ModuleLogger {
	root := logrus.New()
	root.SetLevel(logrus.InfoLevel)
	return modular.NewRootLogger(root)
}
