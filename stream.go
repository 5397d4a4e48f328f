// Package mockstream provides in-memory test doubles for stream-oriented
// network connections. Code written against the Stream interface (or
// net.Conn, via Conn) can be exercised in unit tests without opening real
// sockets.
//
// Two mock kinds are provided. BufferedStream is an unchecked duplex byte
// pipe that replays seeded bytes and records writes. ScriptedStream validates
// every operation the caller performs against a pre-declared Script and fails
// on the first divergence.
package mockstream

import "io"

// Stream is the byte-stream contract both mock kinds implement. Code under
// test should depend on this interface (or on net.Conn) rather than on a
// concrete mock type, so the same code can later run against a real
// connection.
type Stream interface {
	io.Reader
	io.Writer
	Flush() error
	Close() error
}

// OpKind identifies a stream operation in scripts and error reports.
type OpKind string

const (
	OpRead  OpKind = "read"
	OpWrite OpKind = "write"
	OpClose OpKind = "close"
	OpFlush OpKind = "flush"
)
