package logger

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/brendan.keane/qutil/pkg/debug"
)

// ConsoleSink adapts a zerolog logger to the debug.Sink interface, so
// channel-gated messages land in the same stream as everything else.
type ConsoleSink struct {
	logger zerolog.Logger
}

// NewConsoleSink wraps logger as a debug sink.
func NewConsoleSink(logger zerolog.Logger) *ConsoleSink {
	return &ConsoleSink{logger: logger}
}

var _ debug.Sink = (*ConsoleSink)(nil)

// Log emits a debug-level message.
func (s *ConsoleSink) Log(values ...any) {
	s.logger.Debug().Msg(render(values))
}

// Warn emits a warn-level message.
func (s *ConsoleSink) Warn(values ...any) {
	s.logger.Warn().Msg(render(values))
}

// Error emits an error-level message.
func (s *ConsoleSink) Error(values ...any) {
	s.logger.Error().Msg(render(values))
}

// render joins values the way console.log would, space separated.
func render(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
