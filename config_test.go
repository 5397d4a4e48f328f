package mockstream

import (
	"testing"
)

func Test_NewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.MaxReadChunk != 0 {
		t.Errorf("expected MaxReadChunk 0, got %d", cfg.MaxReadChunk)
	}
	if cfg.MaxWriteChunk != 0 {
		t.Errorf("expected MaxWriteChunk 0, got %d", cfg.MaxWriteChunk)
	}
	if cfg.EOFErr != nil {
		t.Errorf("expected no EOFErr, got %v", cfg.EOFErr)
	}
	if cfg.LenientClose {
		t.Error("expected LenientClose to be false")
	}
	if cfg.Verbose {
		t.Error("expected Verbose to be false")
	}
}

func Test_NilConfig_MeansDefaults(t *testing.T) {
	buffered := NewBufferedStreamFrom([]byte("abc"), nil)
	buf := make([]byte, 8)
	n, err := buffered.Read(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("expected full read of 3 bytes, got %d", n)
	}

	scripted := NewScriptedStream(NewScript().ExpectClose(), nil)
	if err := scripted.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
