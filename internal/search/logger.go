package search

import (
	"os"

	"github.com/rs/zerolog"
)

// VerbosityLevel mirrors twsearch's SearchLogger verbosity levels
// (original_source/.../four_phase.rs constructs one at VerbosityLevel::Info).
type VerbosityLevel int

const (
	VerbositySilent VerbosityLevel = iota
	VerbosityInfo
	VerbosityDebug
)

// SearchLogger is the search core's only I/O: progress messages and
// acceptance-predicate rejection counters, backed by zerolog rather than the
// bare println!/eprintln! calls original_source uses.
type SearchLogger struct {
	Verbosity VerbosityLevel
	log       zerolog.Logger
}

// NewSearchLogger builds a logger writing to stderr at the given verbosity.
func NewSearchLogger(verbosity VerbosityLevel) *SearchLogger {
	level := zerolog.Disabled
	switch verbosity {
	case VerbosityInfo:
		level = zerolog.InfoLevel
	case VerbosityDebug:
		level = zerolog.DebugLevel
	}
	return &SearchLogger{
		Verbosity: verbosity,
		log:       zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger(),
	}
}

func (l *SearchLogger) Infof(msg string, fields map[string]any) {
	if l == nil {
		return
	}
	ev := l.log.Info()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

func (l *SearchLogger) Debugf(msg string, fields map[string]any) {
	if l == nil {
		return
	}
	ev := l.log.Debug()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}
