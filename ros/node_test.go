package ros

import (
	"bytes"
	"encoding/binary"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
)

type _MsgValue struct{}

func (t *_MsgValue) Text() string        { return "int32 data\n" }
func (t *_MsgValue) MD5Sum() string      { return "da5909fbe378aeaf85e547e830cc1bb7" }
func (t *_MsgValue) Name() string        { return "gotoctl_tests/Value" }
func (t *_MsgValue) NewMessage() Message { return new(Value) }

var msgValue = &_MsgValue{}

type Value struct {
	Data int32
}

func (m *Value) Type() MessageType { return msgValue }
func (m *Value) Serialize(buf *bytes.Buffer) error {
	return binary.Write(buf, binary.LittleEndian, m.Data)
}
func (m *Value) Deserialize(buf *bytes.Reader) error {
	return binary.Read(buf, binary.LittleEndian, &m.Data)
}

type _SrvDouble struct{}

func (t *_SrvDouble) Name() string              { return "gotoctl_tests/Double" }
func (t *_SrvDouble) MD5Sum() string            { return "4b2b7ee17e852ded36d8f11d2a7b4354" }
func (t *_SrvDouble) Text() string              { return "int32 data\n---\nint32 data\n" }
func (t *_SrvDouble) RequestType() MessageType  { return msgValue }
func (t *_SrvDouble) ResponseType() MessageType { return msgValue }
func (t *_SrvDouble) NewService() Service       { return new(Double) }

var srvDouble = &_SrvDouble{}

type Double struct {
	Request  Value
	Response Value
}

func (s *Double) ReqMessage() Message { return &s.Request }
func (s *Double) ResMessage() Message { return &s.Response }

// publishUntil republishes msg and spins the node until the done channel
// yields a value or the deadline expires.
func publishUntil(t *testing.T, node Node, pub Publisher, msg Message, done chan int32) int32 {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case v := <-done:
			return v
		case <-deadline:
			t.Fatal("message was not delivered")
			return 0
		default:
			pub.Publish(msg)
			node.SpinOnce()
		}
	}
}

func TestProcessArguments(t *testing.T) {
	mapping, specials, rest := processArguments([]string{
		"/chatter:=/gossip", "__name:=renamed", "plain",
	})
	if mapping["/chatter"] != "/gossip" {
		t.Error(mapping)
	}
	if specials["__name"] != "renamed" {
		t.Error(specials)
	}
	if len(rest) != 1 || rest[0] != "plain" {
		t.Error(rest)
	}
}

func TestNodeName(t *testing.T) {
	node, err := NewNode("test_node", []string{"__name:=renamed"})
	if err != nil {
		t.Fatal(err)
	}
	defer node.Shutdown()
	if node.Name() != "/renamed" {
		t.Error(node.Name())
	}
}

func TestPubSubRoundTrip(t *testing.T) {
	node, err := NewNode("/test_node", []string{})
	if err != nil {
		t.Fatal(err)
	}
	defer node.Shutdown()

	received := make(chan int32, 1)
	node.NewSubscriber("/chatter", msgValue, func(msg *Value) {
		select {
		case received <- msg.Data:
		default:
		}
	})
	pub := node.NewPublisher("/chatter", msgValue)

	if v := publishUntil(t, node, pub, &Value{Data: 42}, received); v != 42 {
		t.Error(v)
	}
}

func TestSubscriberMessageEvent(t *testing.T) {
	node, err := NewNode("/test_node", []string{})
	if err != nil {
		t.Fatal(err)
	}
	defer node.Shutdown()

	received := make(chan int32, 1)
	var mutex sync.Mutex
	var event MessageEvent
	node.NewSubscriber("/chatter", msgValue, func(msg *Value, ev MessageEvent) {
		mutex.Lock()
		event = ev
		mutex.Unlock()
		select {
		case received <- msg.Data:
		default:
		}
	})
	pub := node.NewPublisher("/chatter", msgValue)
	publishUntil(t, node, pub, &Value{Data: 1}, received)

	mutex.Lock()
	defer mutex.Unlock()
	if event.PublisherName != "/test_node" {
		t.Error(event.PublisherName)
	}
	if event.ReceiptTime.IsZero() {
		t.Error("receipt time not stamped")
	}
}

func TestPublishBurstDeliversLatest(t *testing.T) {
	node, err := NewNode("/test_node", []string{})
	if err != nil {
		t.Fatal(err)
	}
	defer node.Shutdown()

	received := make(chan int32, 1)
	node.NewSubscriber("/chatter", msgValue, func(msg *Value) {
		select {
		case received <- msg.Data:
		default:
			select {
			case <-received:
			default:
			}
			received <- msg.Data
		}
	})
	pub := node.NewPublisher("/chatter", msgValue)
	publishUntil(t, node, pub, &Value{Data: -1}, received)

	// A burst faster than the consumer must never block the publisher
	// and the final value must come through.
	for i := int32(0); i < 50; i++ {
		pub.Publish(&Value{Data: i})
	}
	deadline := time.After(3 * time.Second)
	for {
		node.SpinOnce()
		select {
		case v := <-received:
			if v == 49 {
				return
			}
		case <-deadline:
			t.Fatal("final burst value was not delivered")
		default:
		}
	}
}

func TestTopicRemapping(t *testing.T) {
	node, err := NewNode("/test_node", []string{"/chatter:=/gossip"})
	if err != nil {
		t.Fatal(err)
	}
	defer node.Shutdown()

	received := make(chan int32, 1)
	node.NewSubscriber("/gossip", msgValue, func(msg *Value) {
		select {
		case received <- msg.Data:
		default:
		}
	})
	pub := node.NewPublisher("/chatter", msgValue)
	if v := publishUntil(t, node, pub, &Value{Data: 7}, received); v != 7 {
		t.Error(v)
	}
}

func TestServiceCallRoundTrip(t *testing.T) {
	node, err := NewNode("/test_node", []string{})
	if err != nil {
		t.Fatal(err)
	}
	defer node.Shutdown()

	node.NewServiceServer("/double", srvDouble, func(srv *Double) error {
		srv.Response.Data = srv.Request.Data * 2
		return nil
	})
	client := node.NewServiceClient("/double", srvDouble)
	go node.Spin()

	var srv Double
	srv.Request.Data = 21
	if err := client.Call(&srv); err != nil {
		t.Fatal(err)
	}
	if srv.Response.Data != 42 {
		t.Error(srv.Response.Data)
	}
}

func TestServiceCallNoProvider(t *testing.T) {
	node, err := NewNode("/test_node", []string{})
	if err != nil {
		t.Fatal(err)
	}
	defer node.Shutdown()

	client := node.NewServiceClient("/absent", srvDouble)
	var srv Double
	if err := client.Call(&srv); err == nil {
		t.Error("expected an error for a service without provider")
	}
}

func TestServiceCallHandlerError(t *testing.T) {
	node, err := NewNode("/test_node", []string{})
	if err != nil {
		t.Fatal(err)
	}
	defer node.Shutdown()

	node.NewServiceServer("/double", srvDouble, func(srv *Double) error {
		return errors.New("handler rejected the request")
	})
	client := node.NewServiceClient("/double", srvDouble)
	go node.Spin()

	var srv Double
	if err := client.Call(&srv); err == nil {
		t.Error("expected the handler error to propagate")
	}
}
