package protocol

import "fmt"

// The engine classifies every failure into exactly one of three error kinds.
// Transport errors kill the current connection; codec errors kill the current
// call only; command errors are the registry saying no. Nothing is retried
// internally and a failure is never downgraded to a success envelope.

// TransportError reports a socket, TLS, timeout, or framing failure. The
// connection that produced it must be considered dead; callers decide whether
// to Reconnect.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return "transport: " + e.Op
	}
	return fmt.Sprintf("transport: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// CodecError reports XML that could not be serialized or parsed into the
// expected shape. The underlying encoding/xml error carries the offending
// position. The connection remains usable: either no bytes were sent yet, or
// the reply frame was already fully consumed.
type CodecError struct {
	Op  string // "serialize" or "deserialize"
	Err error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("xml %s: %v", e.Op, e.Err)
}

func (e *CodecError) Unwrap() error { return e.Err }

// CommandError reports a syntactically valid response whose result code
// denotes failure (>= 2000). It carries the registry's own code and message
// verbatim plus the transaction identifiers of the failed exchange.
type CommandError struct {
	Result Result
	TrIDs  TrIDs
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command failed: %d %q (svTRID %s)", e.Result.Code, e.Result.Message, e.TrIDs.SvTRID)
}
