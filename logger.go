package mockstream

import (
	"log"
)

// Logger traces mock stream operations. Output is gated by Config.Verbose so
// the mocks are silent unless a test opts in.
type Logger struct {
	*log.Logger
	cfg *Config
}

func NewLogger(l *log.Logger, cfg *Config) *Logger {
	return &Logger{
		Logger: l,
		cfg:    cfg,
	}
}

func (l *Logger) Verbose(msg string, args ...interface{}) {
	if l.cfg.Verbose {
		l.Printf(msg, args...)
	}
}

func newTraceLogger(cfg *Config) *Logger {
	base := cfg.Logger
	if base == nil {
		base = log.Default()
	}
	return NewLogger(base, cfg)
}
