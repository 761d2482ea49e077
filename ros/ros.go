package ros

import (
	"time"

	modular "github.com/edwinhayes/logrus-modular"
)

type Node interface {
	NewPublisher(topic string, msgType MessageType) Publisher
	// callback should be a function which takes 0, 1, or 2 arguments.
	// If it takes 0 arguments, it will simply be called without the
	// message.  1-argument functions are the normal case, and the
	// argument should be of the message type.  If the function takes
	// 2 arguments, the first argument should be of the message type
	// and the second argument should be of type MessageEvent.
	NewSubscriber(topic string, msgType MessageType, callback interface{}) Subscriber
	NewServiceClient(service string, srvType ServiceType) ServiceClient
	NewServiceServer(service string, srvType ServiceType, callback interface{}) ServiceServer

	RemovePublisher(topic string)
	RemoveSubscriber(topic string)

	OK() bool
	SpinOnce()
	Spin()
	Shutdown()

	Name() string
	Logger() *modular.ModuleLogger

	NonNodeArgs() []string
}

func NewNode(name string, args []string) (Node, error) {
	return newDefaultNode(name, args)
}

type Publisher interface {
	Publish(msg Message)
	Shutdown()
}

type Subscriber interface {
	GetNumPublishers() int
	Shutdown()
}

// Optional second argument to a Subscriber callback.
type MessageEvent struct {
	PublisherName string
	ReceiptTime   time.Time
}

type ServiceHandler interface{}

type ServiceServer interface {
	Shutdown()
}

type ServiceClient interface {
	Call(srv Service) error
	Shutdown()
}
