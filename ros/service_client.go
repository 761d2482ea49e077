package ros

import (
	"time"

	modular "github.com/edwinhayes/logrus-modular"
	"github.com/pkg/errors"
)

const serviceCallTimeout = 1000 * time.Millisecond

type defaultServiceClient struct {
	node    *defaultNode
	service string
	srvType ServiceType
	logger  *modular.ModuleLogger
}

func newDefaultServiceClient(node *defaultNode, service string, srvType ServiceType) *defaultServiceClient {
	client := new(defaultServiceClient)
	client.node = node
	client.service = service
	client.srvType = srvType
	client.logger = &node.logger
	return client
}

func (c *defaultServiceClient) Call(srv Service) error {
	server := c.node.lookupServiceServer(c.service)
	if server == nil {
		return errors.Errorf("no provider registered for service %s", c.service)
	}
	if server.srvType.MD5Sum() != c.srvType.MD5Sum() {
		return errors.Errorf("incompatible service type for %s: %s vs %s",
			c.service, server.srvType.Name(), c.srvType.Name())
	}

	call := &localServiceCall{
		srv:      srv,
		callerID: c.node.qualifiedName,
		doneChan: make(chan error, 1),
	}
	select {
	case server.callChan <- call:
	case <-time.After(serviceCallTimeout):
		return errors.Errorf("service %s is not accepting calls", c.service)
	}
	select {
	case err := <-call.doneChan:
		return errors.Wrapf(err, "service %s", c.service)
	case <-time.After(serviceCallTimeout):
		return errors.Errorf("service %s call timeout", c.service)
	}
}

func (c *defaultServiceClient) Shutdown() {
}
