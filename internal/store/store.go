// Package store persists a local journal of completed commands: one row
// per command with its correlation identifiers, result code, and timing.
// The client writes through the Journal hook; the CLI reads it back for
// the `journal` subcommand.
package store

import (
	"time"

	"github.com/eppwiresh/eppwire/internal/protocol"
)

// Entry is one journaled command as read back from the database.
type Entry struct {
	ID         string
	Registry   string
	Command    string
	ClTRID     string
	SvTRID     string
	Code       protocol.ResultCode
	Message    string
	ElapsedMS  int64
	RecordedAt time.Time
}

// Elapsed returns the round-trip duration of the journaled command.
func (e Entry) Elapsed() time.Duration {
	return time.Duration(e.ElapsedMS) * time.Millisecond
}
