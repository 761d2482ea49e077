package ros

import (
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	modular "github.com/edwinhayes/logrus-modular"
	"github.com/pkg/errors"
)

const (
	//Remap string constant for splitting remapping components
	Remap = ":="
)

//NameMap holds name remappings parsed from command line arguments
type NameMap map[string]string

func processArguments(args []string) (NameMap, NameMap, []string) {
	mapping := make(NameMap)
	specials := make(NameMap)
	rest := make([]string, 0)
	for _, arg := range args {
		components := strings.Split(arg, Remap)
		if len(components) == 2 {
			key := components[0]
			value := components[1]
			if strings.HasPrefix(key, "__") {
				specials[key] = value
			} else {
				mapping[key] = value
			}
		} else {
			rest = append(rest, arg)
		}
	}
	return mapping, specials, rest
}

// *defaultNode implements Node interface.
// Registration methods must be accessed in the user goroutine.
type defaultNode struct {
	name          string
	qualifiedName string
	subscribers   map[string]*defaultSubscriber
	publishers    sync.Map
	servers       map[string]*defaultServiceServer
	serversMutex  sync.RWMutex
	remapping     NameMap
	jobChan       chan func()
	interruptChan chan os.Signal
	logger        modular.ModuleLogger
	ok            bool
	okMutex       sync.RWMutex
	waitGroup     sync.WaitGroup
	nonNodeArgs   []string
}

func newDefaultNode(name string, args []string) (*defaultNode, error) {
	if len(name) == 0 {
		return nil, errors.New("empty node name")
	}
	node := new(defaultNode)

	remapping, specials, rest := processArguments(args)

	node.name = name
	if value, ok := specials["__name"]; ok {
		node.name = value
	}
	if !strings.HasPrefix(node.name, "/") {
		node.name = "/" + node.name
	}
	node.qualifiedName = node.name

	node.remapping = remapping
	node.nonNodeArgs = rest
	node.subscribers = make(map[string]*defaultSubscriber)
	node.servers = make(map[string]*defaultServiceServer)
	node.interruptChan = make(chan os.Signal)
	node.jobChan = make(chan func(), 100)
	node.ok = true

	logger := newNodeLogger()
	node.logger = logger

	// Install signal handler
	signal.Notify(node.interruptChan, os.Interrupt)
	go func() {
		<-node.interruptChan
		logger.Info("Interrupted")
		node.okMutex.Lock()
		node.ok = false
		node.okMutex.Unlock()
	}()

	logger.Debugf("Started %s", node.qualifiedName)
	return node, nil
}

func (node *defaultNode) OK() bool {
	node.okMutex.RLock()
	ok := node.ok
	node.okMutex.RUnlock()
	return ok
}

func (node *defaultNode) Name() string {
	return node.name
}

func (node *defaultNode) remap(name string) string {
	if value, ok := node.remapping[name]; ok {
		return value
	}
	return name
}

func (node *defaultNode) NewPublisher(topic string, msgType MessageType) Publisher {
	name := node.remap(topic)
	pub, ok := node.publishers.Load(name)
	if !ok {
		pub = newDefaultPublisher(node, name, msgType)
		node.publishers.Store(name, pub)
		node.waitGroup.Add(1)
		go pub.(*defaultPublisher).start(&node.waitGroup)
		if sub, ok := node.subscribers[name]; ok {
			pub.(*defaultPublisher).sessionChan <- newLocalSubscriberSession(node.qualifiedName, sub)
			sub.pubListChan <- []string{node.qualifiedName}
		}
	}
	return pub.(*defaultPublisher)
}

// RemovePublisher shuts down and deletes an existing topic publisher.
func (node *defaultNode) RemovePublisher(topic string) {
	name := node.remap(topic)
	if pub, ok := node.publishers.Load(name); ok {
		pub.(*defaultPublisher).Shutdown()
		node.publishers.Delete(name)
		if sub, ok := node.subscribers[name]; ok {
			sub.pubListChan <- nil
		}
	}
}

func (node *defaultNode) NewSubscriber(topic string, msgType MessageType, callback interface{}) Subscriber {
	name := node.remap(topic)
	sub, ok := node.subscribers[name]
	logger := node.logger
	if !ok {
		sub = newDefaultSubscriber(name, msgType, callback)
		node.subscribers[name] = sub

		logger.Debugf("Start subscriber goroutine for topic '%s'", sub.topic)
		node.waitGroup.Add(1)
		go sub.start(&node.waitGroup, node.jobChan, &node.logger)
		if pub, ok := node.publishers.Load(name); ok {
			pub.(*defaultPublisher).sessionChan <- newLocalSubscriberSession(node.qualifiedName, sub)
			sub.pubListChan <- []string{node.qualifiedName}
		}
	} else {
		sub.addCallbackChan <- callback
	}
	return sub
}

// RemoveSubscriber shuts down and deletes an existing topic subscriber.
func (node *defaultNode) RemoveSubscriber(topic string) {
	name := node.remap(topic)
	if sub, ok := node.subscribers[name]; ok {
		if pub, ok := node.publishers.Load(name); ok {
			pub.(*defaultPublisher).detachChan <- sub
		}
		sub.Shutdown()
		delete(node.subscribers, name)
	}
}

func (node *defaultNode) NewServiceClient(service string, srvType ServiceType) ServiceClient {
	name := node.remap(service)
	return newDefaultServiceClient(node, name, srvType)
}

func (node *defaultNode) NewServiceServer(service string, srvType ServiceType, handler interface{}) ServiceServer {
	name := node.remap(service)
	node.serversMutex.Lock()
	defer node.serversMutex.Unlock()
	server, ok := node.servers[name]
	if ok {
		server.Shutdown()
	}
	server = newDefaultServiceServer(node, name, srvType, handler)
	node.servers[name] = server
	return server
}

func (node *defaultNode) lookupServiceServer(service string) *defaultServiceServer {
	node.serversMutex.RLock()
	defer node.serversMutex.RUnlock()
	return node.servers[service]
}

func (node *defaultNode) SpinOnce() {
	timeoutChan := time.After(10 * time.Millisecond)
	select {
	case job := <-node.jobChan:
		job()
	case <-timeoutChan:
		break
	}
}

func (node *defaultNode) Spin() {
	logger := node.logger
	for node.OK() {
		timeoutChan := time.After(1000 * time.Millisecond)
		select {
		case job := <-node.jobChan:
			logger.Debug("Execute job")
			job()
		case <-timeoutChan:
			break
		}
	}
}

func (node *defaultNode) Shutdown() {
	node.logger.Debug("Shutting node down")
	node.okMutex.Lock()
	node.ok = false
	node.okMutex.Unlock()
	node.logger.Debug("Shutdown subscribers")
	for _, s := range node.subscribers {
		s.Shutdown()
	}
	node.subscribers = make(map[string]*defaultSubscriber)
	node.logger.Debug("Shutdown publishers")
	node.publishers.Range(func(key interface{}, value interface{}) bool {
		value.(*defaultPublisher).Shutdown()
		node.publishers.Delete(key)
		return true
	})
	node.logger.Debug("Shutdown servers")
	node.serversMutex.Lock()
	for _, s := range node.servers {
		s.Shutdown()
	}
	node.servers = make(map[string]*defaultServiceServer)
	node.serversMutex.Unlock()
	node.logger.Debug("Wait all goroutines")
	node.waitGroup.Wait()
	node.logger.Debug("Shutting node down completed")
}

func (node *defaultNode) Logger() *modular.ModuleLogger {
	return &node.logger
}

func (node *defaultNode) NonNodeArgs() []string {
	return node.nonNodeArgs
}
