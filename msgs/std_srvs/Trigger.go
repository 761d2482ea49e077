// Automatically generated from the message definition "std_srvs/Trigger.srv"
package std_srvs

import (
	"github.com/edwinhayes/gotoctl/ros"
)

// Service type metadata
type _SrvTrigger struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvTrigger) Name() string                  { return t.name }
func (t *_SrvTrigger) MD5Sum() string                { return t.md5sum }
func (t *_SrvTrigger) Text() string                  { return t.text }
func (t *_SrvTrigger) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvTrigger) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvTrigger) NewService() ros.Service {
	return new(Trigger)
}

var (
	SrvTrigger = &_SrvTrigger{
		"std_srvs/Trigger",
		"937c9679a518e3a18d831e57125ea522",
		`---
bool success   # indicate successful run of triggered service
string message # informational, e.g. for error messages
`,
		MsgTriggerRequest,
		MsgTriggerResponse,
	}
)

type Trigger struct {
	Request  TriggerRequest
	Response TriggerResponse
}

func (s *Trigger) ReqMessage() ros.Message { return &s.Request }
func (s *Trigger) ResMessage() ros.Message { return &s.Response }
