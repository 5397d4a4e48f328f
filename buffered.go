package mockstream

import (
	"io"
	"sync"
)

// BufferedStream is an unchecked in-memory duplex stream. Reads consume a
// seeded inbound buffer through a cursor, writes accumulate in an outbound
// buffer a test can inspect with Written. Partial transfers are emulated the
// way a real socket produces them: a Read returns at most what is buffered
// (and at most Config.MaxReadChunk), so callers must not assume one call
// drains everything.
//
// All state is guarded by a single mutex so a harness may drive reads and
// writes from concurrent call sites without corrupting the cursors.
type BufferedStream struct {
	mu       sync.Mutex
	cfg      *Config
	log      *Logger
	inbound  []byte
	pos      int
	outbound []byte
	closed   bool
}

// NewBufferedStream returns an empty stream: reads hit end-of-stream
// immediately and writes accumulate.
func NewBufferedStream(cfg *Config) *BufferedStream {
	return NewBufferedStreamFrom(nil, cfg)
}

// NewBufferedStreamFrom returns a stream pre-seeded with data to be read.
// The slice is copied, so the caller may reuse it.
func NewBufferedStreamFrom(data []byte, cfg *Config) *BufferedStream {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	return &BufferedStream{
		cfg:     cfg,
		log:     newTraceLogger(cfg),
		inbound: append([]byte(nil), data...),
	}
}

// Feed appends data to the inbound buffer. Bytes already consumed are not
// disturbed, so a test can stage more input between reads.
func (s *BufferedStream) Feed(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inbound = append(s.inbound, data...)
}

func (s *BufferedStream) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrStreamClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	if s.pos == len(s.inbound) {
		if s.cfg.EOFErr != nil {
			return 0, s.cfg.EOFErr
		}
		return 0, io.EOF
	}

	n := len(s.inbound) - s.pos
	if n > len(p) {
		n = len(p)
	}
	if s.cfg.MaxReadChunk > 0 && n > s.cfg.MaxReadChunk {
		n = s.cfg.MaxReadChunk
	}
	copy(p, s.inbound[s.pos:s.pos+n])
	s.pos += n
	s.log.Verbose("mockstream: read %d bytes, %d remaining", n, len(s.inbound)-s.pos)

	return n, nil
}

func (s *BufferedStream) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrStreamClosed
	}

	n := len(p)
	var err error
	if s.cfg.MaxWriteChunk > 0 && n > s.cfg.MaxWriteChunk {
		n = s.cfg.MaxWriteChunk
		err = io.ErrShortWrite
	}
	s.outbound = append(s.outbound, p[:n]...)
	s.log.Verbose("mockstream: wrote %d of %d bytes", n, len(p))

	return n, err
}

func (s *BufferedStream) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStreamClosed
	}
	return nil
}

// Close marks the stream closed. Closing twice is not an error; every other
// operation afterwards fails with ErrStreamClosed.
func (s *BufferedStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		s.log.Verbose("mockstream: closed")
	}
	return nil
}

// Closed reports whether Close has been called.
func (s *BufferedStream) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Written returns a snapshot of everything written so far, in call order.
func (s *BufferedStream) Written() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.outbound...)
}

// Seeded returns a snapshot of all bytes staged for reading, consumed or not.
func (s *BufferedStream) Seeded() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.inbound...)
}

// Remaining returns a snapshot of the inbound bytes not yet consumed.
func (s *BufferedStream) Remaining() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.inbound[s.pos:]...)
}

// Reset rewinds the read cursor, clears the written record and reopens the
// stream for another session against the same seeded data.
func (s *BufferedStream) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = 0
	s.outbound = nil
	s.closed = false
}

// ResetRead rewinds the read cursor, preserving the written record.
func (s *BufferedStream) ResetRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = 0
}

// ResetWritten clears the written record.
func (s *BufferedStream) ResetWritten() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outbound = nil
}
