package mockstream

import (
	"net"
	"sync"
	"time"
)

// Addr is a placeholder net.Addr for mock connections.
type Addr string

func (a Addr) Network() string { return "mock" }
func (a Addr) String() string  { return string(a) }

// Conn adapts a Stream to net.Conn so the mocks can be handed to code that
// requires a real connection type. Deadline setters are recorded no-ops: no
// mock operation can block, so a deadline can never fire. Conn also provides
// CloseRead/CloseWrite so callers that half-close a TCP connection are
// satisfied.
type Conn struct {
	Stream

	mu            sync.Mutex
	local, remote net.Addr
	readDeadline  time.Time
	writeDeadline time.Time
}

func NewConn(s Stream) *Conn {
	return &Conn{
		Stream: s,
		local:  Addr("local"),
		remote: Addr("remote"),
	}
}

// SetAddrs overrides the placeholder local and remote addresses.
func (c *Conn) SetAddrs(local, remote net.Addr) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.local = local
	c.remote = remote
}

func (c *Conn) LocalAddr() net.Addr {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.local
}

func (c *Conn) RemoteAddr() net.Addr {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remote
}

func (c *Conn) SetDeadline(t time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.readDeadline = t
	c.writeDeadline = t
	return nil
}

func (c *Conn) SetReadDeadline(t time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.readDeadline = t
	return nil
}

func (c *Conn) SetWriteDeadline(t time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writeDeadline = t
	return nil
}

// Deadlines returns the most recently set read and write deadlines, for
// tests asserting that the code under test arms them.
func (c *Conn) Deadlines() (read, write time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readDeadline, c.writeDeadline
}

func (c *Conn) CloseRead() error {
	return c.Stream.Close()
}

func (c *Conn) CloseWrite() error {
	return c.Stream.Close()
}
