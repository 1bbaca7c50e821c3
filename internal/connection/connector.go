package connection

import (
	"crypto/tls"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/eppwiresh/eppwire/internal/protocol"
)

// Connector produces a connected duplex stream within a timeout. The
// production implementation is TLS over TCP; tests substitute scripted
// in-memory streams. A Connector holds connection parameters only; the
// stream it returns is owned by the Connection that asked for it.
type Connector interface {
	Connect(timeout time.Duration) (net.Conn, error)
}

// Params configures the TLS connector for one registry endpoint.
type Params struct {
	// Registry is a display name used only in logs and journal records.
	Registry string
	Host     string
	Port     uint16
	Timeout  time.Duration
	// Certificates optionally presents a client identity for mutual TLS.
	Certificates []tls.Certificate
}

// Addr returns the host:port dial target.
func (p Params) Addr() string {
	return net.JoinHostPort(p.Host, strconv.Itoa(int(p.Port)))
}

// TLSConnector dials a registry over TLS (RFC 5734 transport mapping),
// optionally presenting a client certificate.
type TLSConnector struct {
	params Params
}

// NewTLSConnector creates a connector for the given endpoint parameters.
func NewTLSConnector(p Params) *TLSConnector {
	return &TLSConnector{params: p}
}

// Connect resolves and dials the endpoint and completes the TLS handshake
// within the timeout. Failing to finish in time is an error, not a hang.
func (c *TLSConnector) Connect(timeout time.Duration) (net.Conn, error) {
	cfg := &tls.Config{
		ServerName:   c.params.Host,
		Certificates: c.params.Certificates,
	}
	dialer := &net.Dialer{Timeout: timeout}
	conn, err := tls.DialWithDialer(dialer, "tcp", c.params.Addr(), cfg)
	if err != nil {
		return nil, &protocol.TransportError{
			Op:  fmt.Sprintf("dialing %s", c.params.Addr()),
			Err: err,
		}
	}
	return conn, nil
}
