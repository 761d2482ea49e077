package ros

import (
	"reflect"

	"github.com/pkg/errors"
)

type localServiceCall struct {
	srv      Service
	callerID string
	doneChan chan error
}

type defaultServiceServer struct {
	node         *defaultNode
	service      string
	srvType      ServiceType
	handler      interface{}
	callChan     chan *localServiceCall
	shutdownChan chan struct{}
}

func newDefaultServiceServer(node *defaultNode, service string, srvType ServiceType, handler interface{}) *defaultServiceServer {
	server := new(defaultServiceServer)
	server.node = node
	server.service = service
	server.srvType = srvType
	server.handler = handler
	server.callChan = make(chan *localServiceCall, 10)
	server.shutdownChan = make(chan struct{}, 10)
	node.waitGroup.Add(1)
	go server.start()
	return server
}

func (s *defaultServiceServer) Shutdown() {
	s.shutdownChan <- struct{}{}
}

// event loop
func (s *defaultServiceServer) start() {
	logger := *s.node.Logger()
	logger.Debugf("service server '%s' started.", s.service)
	defer func() {
		logger.Debug("defaultServiceServer.start exit")
		s.node.waitGroup.Done()
	}()

	for {
		select {
		case call := <-s.callChan:
			logger.Debugf("service server '%s' dispatching call from %s", s.service, call.callerID)
			s.dispatch(call)
		case <-s.shutdownChan:
			logger.Debug("defaultServiceServer.start Receive shutdownChan")
			return
		}
	}
}

// dispatch enqueues the handler invocation on the node job channel so the
// callback runs in the spin context, then reports the result to the caller.
func (s *defaultServiceServer) dispatch(call *localServiceCall) {
	logger := *s.node.Logger()
	s.node.jobChan <- func() {
		args := []reflect.Value{reflect.ValueOf(call.srv)}
		fun := reflect.ValueOf(s.handler)
		results := fun.Call(args)

		if len(results) != 1 {
			call.doneChan <- errors.New("service callback return type must be 'error'")
			return
		}
		result := results[0]
		if result.IsNil() {
			logger.Debugf("service %s callback success", s.service)
			call.doneChan <- nil
			return
		}
		if err, ok := result.Interface().(error); ok {
			logger.Debugf("service %s callback failure", s.service)
			call.doneChan <- err
		} else {
			call.doneChan <- errors.New("service handler has invalid signature")
		}
	}
}
