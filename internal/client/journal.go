package client

import (
	"time"

	"github.com/eppwiresh/eppwire/internal/protocol"
)

// Record is one completed transaction as seen by the journal: what was sent,
// how the registry answered, and how long the round trip took.
type Record struct {
	Registry string
	Command  string
	ClTRID   string
	SvTRID   string
	Code     protocol.ResultCode
	Message  string
	Elapsed  time.Duration
}

// Journal receives one Record per completed transaction. Implementations
// must tolerate being called from the transaction path; slow sinks should
// buffer internally.
type Journal interface {
	Record(rec Record) error
}
