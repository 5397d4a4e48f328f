package mockstream

import (
	"bytes"
	"fmt"
	"sync"
)

type step struct {
	kind OpKind
	data []byte
	err  error
}

// Script is an ordered sequence of expected stream operations. Build one
// with the chainable Expect methods, then hand it to NewScriptedStream. A
// Script is independent of any stream; the stream copies its steps at
// construction.
type Script struct {
	steps []step
}

func NewScript() *Script {
	return &Script{}
}

// ExpectRead queues data to be returned by the stream's Read. The entry may
// be drained across several short reads; it is consumed once every byte has
// been delivered.
func (s *Script) ExpectRead(data []byte) *Script {
	s.steps = append(s.steps, step{kind: OpRead, data: append([]byte(nil), data...)})
	return s
}

// ExpectWrite queues data the caller is required to write, byte for byte, in
// a single call.
func (s *Script) ExpectWrite(data []byte) *Script {
	s.steps = append(s.steps, step{kind: OpWrite, data: append([]byte(nil), data...)})
	return s
}

// ExpectReadError queues an error to be returned by the next Read.
func (s *Script) ExpectReadError(err error) *Script {
	s.steps = append(s.steps, step{kind: OpRead, err: err})
	return s
}

// ExpectWriteError queues an error to be returned by the next Write.
func (s *Script) ExpectWriteError(err error) *Script {
	s.steps = append(s.steps, step{kind: OpWrite, err: err})
	return s
}

// ExpectClose requires the caller to close the stream at this point.
func (s *Script) ExpectClose() *Script {
	s.steps = append(s.steps, step{kind: OpClose})
	return s
}

// ExpectCloseError queues an error to be returned by the next Close. The
// stream stays open.
func (s *Script) ExpectCloseError(err error) *Script {
	s.steps = append(s.steps, step{kind: OpClose, err: err})
	return s
}

// Len returns the number of steps in the script.
func (s *Script) Len() int {
	return len(s.steps)
}

// ScriptedStream enforces that the code under test performs exactly the
// declared sequence of stream operations, in order, with exact byte content.
// The first divergence fails with an assertion-grade error and leaves the
// pending expectation in place, so repeating the call fails identically.
//
// The script is walked by a monotonic cursor; Finished reports whether every
// expectation has been consumed. Test authors should assert Finished at
// teardown to catch code under test that stopped early.
type ScriptedStream struct {
	mu      sync.Mutex
	cfg     *Config
	log     *Logger
	steps   []step
	cursor  int
	pos     int
	written []byte
	closed  bool
}

func NewScriptedStream(script *Script, cfg *Config) *ScriptedStream {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	return &ScriptedStream{
		cfg:   cfg,
		log:   newTraceLogger(cfg),
		steps: append([]step(nil), script.steps...),
	}
}

func (s *ScriptedStream) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrStreamClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	if s.cursor >= len(s.steps) {
		return 0, fmt.Errorf("%s: %w", OpRead, ErrScriptExhausted)
	}

	st := s.steps[s.cursor]
	if st.kind != OpRead {
		return 0, &UnexpectedOpError{Expected: st.kind, Actual: OpRead, Step: s.cursor}
	}
	if st.err != nil {
		s.cursor++
		s.log.Verbose("mockstream: step %d injected read error: %v", s.cursor-1, st.err)
		return 0, st.err
	}

	n := len(st.data) - s.pos
	if n > len(p) {
		n = len(p)
	}
	copy(p, st.data[s.pos:s.pos+n])
	s.pos += n
	if s.pos == len(st.data) {
		s.cursor++
		s.pos = 0
	}
	s.log.Verbose("mockstream: read %d bytes, step %d of %d", n, s.cursor, len(s.steps))

	return n, nil
}

func (s *ScriptedStream) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrStreamClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	if s.cursor >= len(s.steps) {
		return 0, fmt.Errorf("%s: %w", OpWrite, ErrScriptExhausted)
	}

	st := s.steps[s.cursor]
	if st.kind != OpWrite {
		return 0, &UnexpectedOpError{Expected: st.kind, Actual: OpWrite, Step: s.cursor}
	}
	if st.err != nil {
		s.cursor++
		s.log.Verbose("mockstream: step %d injected write error: %v", s.cursor-1, st.err)
		return 0, st.err
	}
	if !bytes.Equal(st.data, p) {
		return 0, &WriteMismatchError{
			Expected: append([]byte(nil), st.data...),
			Actual:   append([]byte(nil), p...),
			Step:     s.cursor,
		}
	}

	s.written = append(s.written, p...)
	s.cursor++
	s.log.Verbose("mockstream: wrote %d bytes, step %d of %d", len(p), s.cursor, len(s.steps))

	return len(p), nil
}

// Flush is always permitted; scripts do not track flushes.
func (s *ScriptedStream) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStreamClosed
	}
	return nil
}

// Close must match an ExpectClose entry unless Config.LenientClose is set,
// in which case it is permitted at any point without consuming a step.
func (s *ScriptedStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cursor >= len(s.steps) || s.steps[s.cursor].kind != OpClose {
		if s.cfg.LenientClose {
			s.closed = true
			return nil
		}
		if s.cursor >= len(s.steps) {
			return fmt.Errorf("%s: %w", OpClose, ErrScriptExhausted)
		}
		return &UnexpectedOpError{Expected: s.steps[s.cursor].kind, Actual: OpClose, Step: s.cursor}
	}

	st := s.steps[s.cursor]
	s.cursor++
	if st.err != nil {
		s.log.Verbose("mockstream: step %d injected close error: %v", s.cursor-1, st.err)
		return st.err
	}
	s.closed = true
	s.log.Verbose("mockstream: closed, step %d of %d", s.cursor, len(s.steps))
	return nil
}

// Closed reports whether the stream has been successfully closed.
func (s *ScriptedStream) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Finished reports whether every expectation has been consumed.
func (s *ScriptedStream) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor == len(s.steps)
}

// Cursor returns the index of the next pending expectation.
func (s *ScriptedStream) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Written returns a snapshot of every matched write so far, in call order.
func (s *ScriptedStream) Written() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.written...)
}

// Reset rewinds the script, clears the written record and reopens the stream
// so the same script can be replayed.
func (s *ScriptedStream) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetActions()
	s.written = nil
}

// ResetActions rewinds the script and reopens the stream, preserving the
// written record.
func (s *ScriptedStream) ResetActions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetActions()
}

func (s *ScriptedStream) resetActions() {
	s.cursor = 0
	s.pos = 0
	s.closed = false
}

// SeekStep positions the cursor at step n, clamped to the script bounds, and
// reopens the stream.
func (s *ScriptedStream) SeekStep(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 0 {
		n = 0
	}
	if n > len(s.steps) {
		n = len(s.steps)
	}
	s.cursor = n
	s.pos = 0
	s.closed = false
}

// ResetWritten clears the written record.
func (s *ScriptedStream) ResetWritten() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.written = nil
}
