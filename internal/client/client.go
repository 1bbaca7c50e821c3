package client

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/eppwiresh/eppwire/internal/connection"
	"github.com/eppwiresh/eppwire/internal/log"
	"github.com/eppwiresh/eppwire/internal/protocol"
)

// Client is the public surface of the engine: one logical EPP session with
// one registry. Every call is a single request/response exchange; the mutex
// guarantees at most one transaction is in flight, so responses are strictly
// ordered with requests.
//
// If an external timeout cancels a call mid-exchange the underlying stream
// may be desynchronized; treat the session as broken and Reconnect.
type Client struct {
	mu       sync.Mutex
	conn     *connection.Connection
	registry string
	username string
	journal  Journal
	logger   zerolog.Logger
}

// Connect opens a TLS session to the registry described by params and waits
// for the greeting. The username seeds generated client transaction IDs.
func Connect(params connection.Params, username string) (*Client, error) {
	return ConnectWith(connection.NewTLSConnector(params), params.Registry, params.Timeout, username)
}

// ConnectWith opens a session over an arbitrary connector. Tests use this
// with scripted in-memory streams.
func ConnectWith(connector connection.Connector, registry string, timeout time.Duration, username string) (*Client, error) {
	conn, err := connection.Connect(connector, registry, timeout)
	if err != nil {
		return nil, err
	}
	return &Client{
		conn:     conn,
		registry: registry,
		username: username,
		logger:   log.WithComponent("client"),
	}, nil
}

// SetJournal installs a hook that receives one record per completed
// transaction. Pass nil to disable.
func (c *Client) SetJournal(j Journal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.journal = j
}

// Hello sends the fixed <hello> document and parses the reply as a fresh
// greeting. Session state is unaffected.
func (c *Client) Hello() (*protocol.Greeting, error) {
	doc, err := protocol.SerializeHello()
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	reply, err := c.conn.Transact(doc)
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return protocol.ParseGreeting(reply)
}

// XMLGreeting returns the raw greeting captured on connect. No network I/O.
func (c *Client) XMLGreeting() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.Greeting()
}

// Greeting parses the cached greeting into its typed form. No network I/O.
func (c *Client) Greeting() (*protocol.Greeting, error) {
	return protocol.ParseGreeting(c.XMLGreeting())
}

// TransactXML sends a raw document and returns the raw reply: the escape
// hatch for debugging and commands the typed layer does not cover.
func (c *Client) TransactXML(doc string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.Transact(doc)
}

// NewClTRID generates a client transaction ID from the session username and
// a nanosecond timestamp. TRIDs are opaque to the engine; this scheme just
// makes them collision-resistant and greppable in registry logs.
func (c *Client) NewClTRID() string {
	return fmt.Sprintf("%s:%d", c.username, time.Now().UnixNano())
}

// Reconnect tears down the current stream and re-establishes the session.
// The registry will expect a fresh login afterwards.
func (c *Client) Reconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.Reconnect()
}

// Shutdown ends the session and releases the stream.
func (c *Client) Shutdown() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.Shutdown()
}

// Transact runs one typed command/response exchange. D is the expected
// <resData> payload type and E the expected <extension> payload type. An
// empty clTRID is replaced with a generated one. A response whose result
// code denotes failure comes back as a *protocol.CommandError, never as a
// success envelope; transport and codec failures keep their own types.
//
// Free function rather than method because Go methods cannot introduce type
// parameters.
func Transact[D, E any](c *Client, cmd protocol.Command, ext protocol.Extension, clTRID string) (*protocol.Response[D, E], error) {
	if clTRID == "" {
		clTRID = c.NewClTRID()
	}
	doc, err := protocol.SerializeCommand(cmd, ext, clTRID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	start := time.Now()
	reply, err := c.conn.Transact(doc)
	elapsed := time.Since(start)
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}

	resp, err := protocol.Deserialize[D, E](reply)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("registry", c.registry).
		Str("command", cmd.Action()).
		Str("cltrid", clTRID).
		Str("svtrid", resp.TrIDs.SvTRID).
		Uint16("code", uint16(resp.Result.Code)).
		Dur("elapsed", elapsed).
		Msg("transaction completed")
	c.record(cmd.Action(), resp.Result, resp.TrIDs, elapsed)

	if !resp.Result.Code.IsSuccess() {
		return nil, &protocol.CommandError{Result: resp.Result, TrIDs: resp.TrIDs}
	}
	return resp, nil
}

// record forwards a completed transaction to the journal, if one is
// installed. Journal failures are logged, never propagated: bookkeeping must
// not break the session.
func (c *Client) record(action string, result protocol.Result, trIDs protocol.TrIDs, elapsed time.Duration) {
	c.mu.Lock()
	j := c.journal
	c.mu.Unlock()
	if j == nil {
		return
	}
	rec := Record{
		Registry: c.registry,
		Command:  action,
		ClTRID:   trIDs.ClTRID,
		SvTRID:   trIDs.SvTRID,
		Code:     result.Code,
		Message:  result.Message,
		Elapsed:  elapsed,
	}
	if err := j.Record(rec); err != nil {
		c.logger.Warn().Err(err).Str("command", action).Msg("journal write failed")
	}
}
