package connection

import (
	"errors"
	"net"
	"time"

	"github.com/rs/zerolog"

	"github.com/eppwiresh/eppwire/internal/log"
	"github.com/eppwiresh/eppwire/internal/protocol"
)

// ErrClosed reports an operation on a connection whose stream has been
// released by Shutdown.
var ErrClosed = errors.New("connection is closed")

// Connection owns exactly one live stream produced by its Connector, plus
// the raw greeting captured immediately after connecting. Lifecycle:
// Connecting → Greeted (greeting frame stored) → Active (Transact calls) →
// Closed. It performs no internal retries; an I/O error leaves the stream in
// an unknown state and the caller decides whether to Reconnect.
//
// A Connection is not safe for concurrent use; the owning Client serializes
// access to it.
type Connection struct {
	connector Connector
	registry  string
	timeout   time.Duration
	conn      net.Conn
	greeting  string
	logger    zerolog.Logger
}

// Connect dials through the connector, reads the server's greeting frame,
// and returns the connection in the Greeted state. The greeting frame is not
// a response to any request; it is captured verbatim.
func Connect(connector Connector, registry string, timeout time.Duration) (*Connection, error) {
	c := &Connection{
		connector: connector,
		registry:  registry,
		timeout:   timeout,
		logger:    log.WithComponent("connection"),
	}
	if err := c.dial(); err != nil {
		return nil, err
	}
	return c, nil
}

// dial opens a fresh stream and captures the greeting. On any failure the
// stream is closed before returning so no handle leaks.
func (c *Connection) dial() error {
	conn, err := c.connector.Connect(c.timeout)
	if err != nil {
		return err
	}
	if c.timeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
			conn.Close()
			return &protocol.TransportError{Op: "setting read deadline", Err: err}
		}
	}
	greeting, err := protocol.ReadFrame(conn)
	if err != nil {
		conn.Close()
		return err
	}
	c.conn = conn
	c.greeting = greeting
	c.logger.Debug().
		Str("registry", c.registry).
		Int("greeting_bytes", len(greeting)).
		Msg("session greeted")
	return nil
}

// Greeting returns the raw greeting text captured on connect. No I/O.
func (c *Connection) Greeting() string { return c.greeting }

// Transact writes one XML document as a frame and reads the single reply
// frame. Exactly one exchange; the caller guarantees no other operation is
// in flight. If an error escapes mid-exchange the stream may be
// desynchronized and should be Reconnected, not reused.
func (c *Connection) Transact(doc string) (string, error) {
	if c.conn == nil {
		return "", &protocol.TransportError{Op: "transact", Err: ErrClosed}
	}
	if c.timeout > 0 {
		if err := c.conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
			return "", &protocol.TransportError{Op: "setting deadline", Err: err}
		}
	}
	if err := protocol.WriteFrame(c.conn, doc); err != nil {
		return "", err
	}
	return protocol.ReadFrame(c.conn)
}

// Reconnect discards the current stream and greeting and re-runs the
// Connecting → Greeted transition with the same connector and parameters.
// It does not replay login; that is a regular command layered above.
func (c *Connection) Reconnect() error {
	c.release()
	c.logger.Debug().Str("registry", c.registry).Msg("reconnecting")
	return c.dial()
}

// Shutdown performs an orderly half-close of the write side and then
// releases the stream. Safe to call more than once. The greeting is kept
// for post-mortem inspection.
func (c *Connection) Shutdown() error {
	if c.conn == nil {
		return nil
	}
	c.logger.Debug().Str("registry", c.registry).Msg("shutting down session")
	return c.release()
}

// release closes the stream on every path: half-close the write side when
// the transport supports it, then unconditionally close the handle.
func (c *Connection) release() error {
	if c.conn == nil {
		return nil
	}
	conn := c.conn
	c.conn = nil
	if cw, ok := conn.(interface{ CloseWrite() error }); ok {
		_ = cw.CloseWrite()
	}
	return conn.Close()
}
