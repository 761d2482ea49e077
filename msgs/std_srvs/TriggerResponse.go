// Package std_srvs is automatically generated from the message definition "std_srvs/TriggerResponse.msg"
package std_srvs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/gotoctl/ros"
)

type _MsgTriggerResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgTriggerResponse) Text() string {
	return t.text
}

func (t *_MsgTriggerResponse) Name() string {
	return t.name
}

func (t *_MsgTriggerResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgTriggerResponse) NewMessage() ros.Message {
	m := new(TriggerResponse)
	m.Success = false
	m.Message = ""
	return m
}

var (
	MsgTriggerResponse = &_MsgTriggerResponse{
		`bool success   # indicate successful run of triggered service
string message # informational, e.g. for error messages
`,
		"std_srvs/TriggerResponse",
		"937c9679a518e3a18d831e57125ea522",
	}
)

type TriggerResponse struct {
	Success bool   `rosmsg:"success:bool"`
	Message string `rosmsg:"message:string"`
}

func (m *TriggerResponse) Type() ros.MessageType {
	return MsgTriggerResponse
}

func (m *TriggerResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Success)
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.Message))))
	buf.Write([]byte(m.Message))
	return err
}

func (m *TriggerResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Success); err != nil {
		return err
	}
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		data := make([]byte, int(size))
		if err = binary.Read(buf, binary.LittleEndian, data); err != nil {
			return err
		}
		m.Message = string(data)
	}
	return err
}
