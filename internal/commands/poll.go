package commands

import "encoding/xml"

// PollRequest asks for the first message in the registry's queue. The reply
// carries a <msgQ> element and, for most message types, an object-specific
// <resData>.
type PollRequest struct {
	XMLName xml.Name `xml:"poll"`
	Op      string   `xml:"op,attr"`
}

func NewPollRequest() *PollRequest { return &PollRequest{Op: "req"} }

func (*PollRequest) Action() string { return "poll" }

// PollAck dequeues a message by ID after the caller has processed it.
type PollAck struct {
	XMLName xml.Name `xml:"poll"`
	Op      string   `xml:"op,attr"`
	MsgID   string   `xml:"msgID,attr"`
}

func NewPollAck(msgID string) *PollAck { return &PollAck{Op: "ack", MsgID: msgID} }

func (*PollAck) Action() string { return "poll" }

// PollData captures the raw <resData> of a queued message. Its shape depends
// on the originating object service (transfer notices, low-balance notices,
// ...), so it is kept verbatim for the caller to decode.
type PollData struct {
	Raw string `xml:",innerxml"`
}
