package ros

import (
	"bytes"
	"reflect"
	"sync"

	modular "github.com/edwinhayes/logrus-modular"
)

type messageEvent struct {
	bytes []byte
	event MessageEvent
}

// The subscription object runs in its own goroutine (start).
// Do not access any properties from other goroutines.
type defaultSubscriber struct {
	topic           string
	msgType         MessageType
	pubList         []string
	pubListChan     chan []string
	msgChan         chan messageEvent
	callbacks       []interface{}
	addCallbackChan chan interface{}
	shutdownChan    chan struct{}
}

func newDefaultSubscriber(topic string, msgType MessageType, callback interface{}) *defaultSubscriber {
	sub := new(defaultSubscriber)
	sub.topic = topic
	sub.msgType = msgType
	sub.msgChan = make(chan messageEvent, subscriberQueueSize)
	sub.pubListChan = make(chan []string, 10)
	sub.addCallbackChan = make(chan interface{}, 10)
	sub.shutdownChan = make(chan struct{}, 10)
	sub.callbacks = []interface{}{callback}
	return sub
}

func (sub *defaultSubscriber) start(wg *sync.WaitGroup, jobChan chan func(), logger *modular.ModuleLogger) {
	log := *logger
	log.Debugf("Subscriber goroutine for %s started.", sub.topic)
	defer func() {
		log.Debug(sub.topic, " : defaultSubscriber.start exit")
		wg.Done()
	}()
	for {
		select {
		case list := <-sub.pubListChan:
			log.Debug(sub.topic, " : Receive pubListChan")
			sub.pubList = list
		case callback := <-sub.addCallbackChan:
			log.Debug(sub.topic, " : Receive addCallbackChan")
			sub.callbacks = append(sub.callbacks, callback)
		case msgEvent := <-sub.msgChan:
			// Pop received message then bind callbacks and enqueue to the job channel.
			callbacks := make([]interface{}, len(sub.callbacks))
			copy(callbacks, sub.callbacks)
			jobChan <- func() {
				m := sub.msgType.NewMessage()
				reader := bytes.NewReader(msgEvent.bytes)
				if err := m.Deserialize(reader); err != nil {
					log.Error(sub.topic, " : ", err)
					return
				}
				args := []reflect.Value{reflect.ValueOf(m), reflect.ValueOf(msgEvent.event)}
				for _, callback := range callbacks {
					fun := reflect.ValueOf(callback)
					numArgsNeeded := fun.Type().NumIn()
					if numArgsNeeded <= 2 {
						fun.Call(args[0:numArgsNeeded])
					}
				}
			}
		case <-sub.shutdownChan:
			log.Debug(sub.topic, " : Receive shutdownChan")
			return
		}
	}
}

func (sub *defaultSubscriber) Shutdown() {
	sub.shutdownChan <- struct{}{}
}

func (sub *defaultSubscriber) GetNumPublishers() int {
	return len(sub.pubList)
}
