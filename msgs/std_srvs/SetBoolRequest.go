// Package std_srvs is automatically generated from the message definition "std_srvs/SetBoolRequest.msg"
package std_srvs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/gotoctl/ros"
)

type _MsgSetBoolRequest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgSetBoolRequest) Text() string {
	return t.text
}

func (t *_MsgSetBoolRequest) Name() string {
	return t.name
}

func (t *_MsgSetBoolRequest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgSetBoolRequest) NewMessage() ros.Message {
	m := new(SetBoolRequest)
	m.Data = false
	return m
}

var (
	MsgSetBoolRequest = &_MsgSetBoolRequest{
		`bool data # e.g. for hardware enabling / disabling
`,
		"std_srvs/SetBoolRequest",
		"8b94c1b53db61fb6aed406028ad6332a",
	}
)

type SetBoolRequest struct {
	Data bool `rosmsg:"data:bool"`
}

func (m *SetBoolRequest) Type() ros.MessageType {
	return MsgSetBoolRequest
}

func (m *SetBoolRequest) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Data)
	return err
}

func (m *SetBoolRequest) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Data); err != nil {
		return err
	}
	return err
}
