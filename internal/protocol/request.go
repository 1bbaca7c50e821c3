package protocol

import "encoding/xml"

// Namespace is the EPP-1.0 protocol namespace carried by every top-level
// <epp> wrapper.
const Namespace = "urn:ietf:params:xml:ns:epp-1.0"

// XMLHeader is the fixed declaration prepended to every serialized document.
const XMLHeader = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>`

// Command is one EPP command body. Implementations are plain structs whose
// XMLName is the command verb element (<check>, <create>, ...) and whose
// inner object element declares its own namespace. The engine never looks
// inside a Command; it only wraps it into the <command> envelope.
type Command interface {
	// Action returns the EPP command verb, e.g. "check" or "create". Used
	// for logging and journalling, not for serialization.
	Action() string
}

// Extension is an optional registry-specific addendum serialized into the
// <extension> slot of a command. Like Command, implementations carry their
// own XMLName and namespace declarations.
type Extension interface {
	// ExtensionName returns the extension's wire element name, e.g.
	// "namestoreExt:namestoreExt".
	ExtensionName() string
}

// request is the <epp><command>...</command></epp> envelope. Field order is
// significant: the command element, then the optional extension, then the
// client transaction ID.
type request struct {
	XMLName xml.Name       `xml:"epp"`
	Xmlns   string         `xml:"xmlns,attr"`
	Command requestCommand `xml:"command"`
}

type requestCommand struct {
	// Action is untagged so encoding/xml names the element after the
	// dynamic value's own XMLName.
	Action    Command
	Extension *requestExtension
	ClTRID    string `xml:"clTRID"`
}

type requestExtension struct {
	XMLName xml.Name `xml:"extension"`
	Body    Extension
}

// helloRequest is the fixed <hello> document.
type helloRequest struct {
	XMLName xml.Name `xml:"epp"`
	Xmlns   string   `xml:"xmlns,attr"`
	Hello   struct{} `xml:"hello"`
}

// SerializeCommand renders a command (and optional extension) into a complete
// EPP document with the fixed XML declaration and the clTRID injected in the
// envelope's last slot.
func SerializeCommand(cmd Command, ext Extension, clTRID string) (string, error) {
	req := request{Xmlns: Namespace}
	req.Command.Action = cmd
	if ext != nil {
		req.Command.Extension = &requestExtension{Body: ext}
	}
	req.Command.ClTRID = clTRID
	return serializeDocument(&req)
}

// SerializeHello renders the fixed <hello> document.
func SerializeHello() (string, error) {
	return serializeDocument(&helloRequest{Xmlns: Namespace})
}

func serializeDocument(v any) (string, error) {
	body, err := xml.Marshal(v)
	if err != nil {
		return "", &CodecError{Op: "serialize", Err: err}
	}
	return XMLHeader + "\n" + string(body), nil
}
