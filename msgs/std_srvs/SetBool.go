// Automatically generated from the message definition "std_srvs/SetBool.srv"
package std_srvs

import (
	"github.com/edwinhayes/gotoctl/ros"
)

// Service type metadata
type _SrvSetBool struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvSetBool) Name() string                  { return t.name }
func (t *_SrvSetBool) MD5Sum() string                { return t.md5sum }
func (t *_SrvSetBool) Text() string                  { return t.text }
func (t *_SrvSetBool) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvSetBool) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvSetBool) NewService() ros.Service {
	return new(SetBool)
}

var (
	SrvSetBool = &_SrvSetBool{
		"std_srvs/SetBool",
		"09fb03525b03e7ea1fd3992bafd87e16",
		`bool data # e.g. for hardware enabling / disabling
---
bool success   # indicate successful run of triggered service
string message # informational, e.g. for error messages
`,
		MsgSetBoolRequest,
		MsgSetBoolResponse,
	}
)

type SetBool struct {
	Request  SetBoolRequest
	Response SetBoolResponse
}

func (s *SetBool) ReqMessage() ros.Message { return &s.Request }
func (s *SetBool) ResMessage() ros.Message { return &s.Response }
