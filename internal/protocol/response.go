package protocol

import "encoding/xml"

// Result is the <result> element of a command response: the registry's code,
// human-readable message, and optional extended diagnostic value.
type Result struct {
	Code     ResultCode `xml:"code,attr"`
	Message  string     `xml:"msg"`
	ExtValue *ExtValue  `xml:"extValue"`
}

// ExtValue carries the offending element and reason attached to some error
// results. Value keeps the registry's fragment verbatim for diagnostics.
type ExtValue struct {
	Value  RawXML `xml:"value"`
	Reason string `xml:"reason"`
}

// RawXML preserves an element's inner XML without imposing a shape on it.
type RawXML struct {
	Inner string `xml:",innerxml"`
}

// MessageQueue is the <msgQ> element announcing queued service messages.
type MessageQueue struct {
	Count uint64 `xml:"count,attr"`
	ID    string `xml:"id,attr"`
	Date  string `xml:"qDate"`
	Text  string `xml:"msg"`
}

// TrIDs carries the transaction identifiers echoed on every well-formed
// response: the client TRID (empty if the command carried none) and the
// server-assigned TRID, which is always present.
type TrIDs struct {
	ClTRID string `xml:"clTRID"`
	SvTRID string `xml:"svTRID"`
}

// NoData is the payload type for commands whose responses carry no <resData>.
type NoData struct{}

// NoExtension is the extension payload type for transactions without one.
type NoExtension struct{}

// Response is the generic EPP command response envelope. D is the
// command-specific <resData> payload and E the extension-specific
// <extension> payload; both are nil when the corresponding element is
// absent. Unmarshalling matches local element names, so registry namespace
// prefixes are tolerated.
type Response[D, E any] struct {
	XMLName      xml.Name      `xml:"epp"`
	Result       Result        `xml:"response>result"`
	MessageQueue *MessageQueue `xml:"response>msgQ"`
	ResData      *D            `xml:"response>resData"`
	Extension    *E            `xml:"response>extension"`
	TrIDs        TrIDs         `xml:"response>trID"`
}

// Deserialize parses an EPP response document into a typed envelope.
// Malformed XML, or a result code outside the RFC 5730 enumeration, yields a
// CodecError carrying the underlying parse position.
func Deserialize[D, E any](doc string) (*Response[D, E], error) {
	var resp Response[D, E]
	if err := xml.Unmarshal([]byte(doc), &resp); err != nil {
		return nil, &CodecError{Op: "deserialize", Err: err}
	}
	return &resp, nil
}
