package ros

import (
	"bytes"
	"container/list"
	"sync"
	"time"

	modular "github.com/edwinhayes/logrus-modular"
)

// subscriberQueueSize keeps only the most recent message queued per
// connected subscriber; a slow consumer always observes the latest value.
const subscriberQueueSize = 1

type defaultPublisher struct {
	node         *defaultNode
	topic        string
	msgType      MessageType
	msgChan      chan []byte
	shutdownChan chan struct{}
	sessions     *list.List
	sessionChan  chan *localSubscriberSession
	detachChan   chan *defaultSubscriber
	logger       *modular.ModuleLogger
}

func newDefaultPublisher(node *defaultNode, topic string, msgType MessageType) *defaultPublisher {
	pub := new(defaultPublisher)
	pub.node = node
	pub.topic = topic
	pub.msgType = msgType
	pub.shutdownChan = make(chan struct{}, 10)
	pub.msgChan = make(chan []byte, 10)
	pub.sessionChan = make(chan *localSubscriberSession, 10)
	pub.detachChan = make(chan *defaultSubscriber, 10)
	pub.sessions = list.New()
	pub.logger = &node.logger
	return pub
}

func (pub *defaultPublisher) start(wg *sync.WaitGroup) {
	logger := *pub.logger
	logger.Debugf("Publisher goroutine for %s started.", pub.topic)
	defer func() {
		logger.Debug(pub.topic, " : defaultPublisher.start exit")
		wg.Done()
	}()

	for {
		select {
		case msg := <-pub.msgChan:
			now := time.Now()
			for e := pub.sessions.Front(); e != nil; e = e.Next() {
				session := e.Value.(*localSubscriberSession)
				session.deliver(msg, now)
			}
		case session := <-pub.sessionChan:
			pub.sessions.PushBack(session)
		case sub := <-pub.detachChan:
			for e := pub.sessions.Front(); e != nil; e = e.Next() {
				if e.Value.(*localSubscriberSession).sub == sub {
					pub.sessions.Remove(e)
					break
				}
			}
		case <-pub.shutdownChan:
			logger.Debug(pub.topic, " : Receive shutdownChan")
			pub.sessions.Init() // Clear all sessions
			return
		}
	}
}

func (pub *defaultPublisher) Publish(msg Message) {
	var buf bytes.Buffer
	_ = msg.Serialize(&buf)
	pub.msgChan <- buf.Bytes()
}

func (pub *defaultPublisher) Shutdown() {
	pub.shutdownChan <- struct{}{}
}

// A localSubscriberSession forwards serialized messages from a publisher
// event loop to one subscriber queue.
type localSubscriberSession struct {
	pubName string
	sub     *defaultSubscriber
}

func newLocalSubscriberSession(pubName string, sub *defaultSubscriber) *localSubscriberSession {
	session := new(localSubscriberSession)
	session.pubName = pubName
	session.sub = sub
	return session
}

// deliver never blocks the publisher loop: when the subscriber queue is
// full the oldest entry is dropped so the latest message wins.
func (session *localSubscriberSession) deliver(msg []byte, stamp time.Time) {
	ev := messageEvent{
		bytes: msg,
		event: MessageEvent{PublisherName: session.pubName, ReceiptTime: stamp},
	}
	for {
		select {
		case session.sub.msgChan <- ev:
			return
		default:
		}
		select {
		case <-session.sub.msgChan:
		default:
		}
	}
}
