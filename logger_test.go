package mockstream

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestLoggerVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	l := log.New(buf, "", 0)
	cfg := &Config{Verbose: true}
	logger := NewLogger(l, cfg)

	logger.Verbose("This is a verbose message: %s", "test")

	if buf.Len() == 0 {
		t.Error("Expected verbose log output, but got none")
	}
	if buf.String() != "This is a verbose message: test\n" {
		t.Errorf("Expected 'This is a verbose message: test\\n', got '%s'", buf.String())
	}
}

func TestLoggerVerbose_Disabled(t *testing.T) {
	buf := &bytes.Buffer{}
	l := log.New(buf, "", 0)
	logger := NewLogger(l, &Config{})

	logger.Verbose("This message should be suppressed")

	if buf.Len() != 0 {
		t.Errorf("Expected no log output, got '%s'", buf.String())
	}
}

func TestStreamTracing(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := &Config{
		Verbose: true,
		Logger:  log.New(buf, "", 0),
	}
	s := NewBufferedStreamFrom([]byte("hello"), cfg)

	if _, err := s.Read(make([]byte, 3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Write([]byte("hi")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"read 3 bytes, 2 remaining",
		"wrote 2 of 2 bytes",
		"closed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected trace output to contain %q, got %q", want, out)
		}
	}
}

func TestStreamTracing_SilentByDefault(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := &Config{Logger: log.New(buf, "", 0)}
	s := NewScriptedStream(NewScript().ExpectRead([]byte("x")), cfg)

	if _, err := s.Read(make([]byte, 1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no trace output, got '%s'", buf.String())
	}
}
