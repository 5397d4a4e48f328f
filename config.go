package mockstream

import "log"

// Config tunes mock stream behavior. The zero value gives full-transfer
// reads and writes, io.EOF at end of data and strict script matching. A nil
// *Config passed to any constructor means defaults.
type Config struct {
	// MaxReadChunk caps the number of bytes a single Read returns, forcing
	// short reads even when more data is buffered. Zero means no cap.
	MaxReadChunk int
	// MaxWriteChunk caps the number of bytes a single Write accepts. A
	// truncated write returns io.ErrShortWrite so callers must loop. Zero
	// means writes are accepted in full.
	MaxWriteChunk int
	// EOFErr is returned by Read once the inbound data is drained, in place
	// of io.EOF. Used to exercise caller error paths at end of stream.
	EOFErr error
	// LenientClose permits Close on a scripted stream without a matching
	// ExpectClose entry.
	LenientClose bool
	// Verbose enables per-operation tracing through Logger.
	Verbose bool
	// Logger receives trace output when Verbose is set. Defaults to the
	// standard logger.
	Logger *log.Logger
}

func NewDefaultConfig() *Config {
	return &Config{}
}
