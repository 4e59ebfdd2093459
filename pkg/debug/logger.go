// Package debug provides conditional logging gated by named channels.
// A Logger is constructed once with its channel set and never mutated,
// so callers can share it freely across goroutines.
package debug

// Channel names resolved by Warn and Error. Log takes its channel from
// the caller.
const (
	ChannelWarn  = "warn"
	ChannelError = "error"
)

// Sink receives the values of messages that pass the channel gate.
// internal/logger provides a zerolog-backed implementation; tests use a
// recording one.
type Sink interface {
	Log(values ...any)
	Warn(values ...any)
	Error(values ...any)
}

// Config holds everything a Logger needs at construction time.
type Config struct {
	// Enabled is the master debug switch; when false every channel is off.
	Enabled bool
	// Channels lists the enabled channel names.
	Channels []string
	// Sink receives emitted messages. A nil Sink makes every call a no-op.
	Sink Sink
}

// Logger gates messages on a fixed channel set.
type Logger struct {
	enabled  bool
	channels map[string]struct{}
	sink     Sink
}

// New builds a Logger from config. The channel list is copied; later
// changes to the slice do not affect the Logger.
func New(config Config) *Logger {
	channels := make(map[string]struct{}, len(config.Channels))
	for _, c := range config.Channels {
		channels[c] = struct{}{}
	}
	return &Logger{
		enabled:  config.Enabled,
		channels: channels,
		sink:     config.Sink,
	}
}

// EnabledFor reports whether messages on channel would be emitted. Unknown
// channels are simply disabled, never an error.
func (l *Logger) EnabledFor(channel string) bool {
	if l == nil || !l.enabled {
		return false
	}
	_, ok := l.channels[channel]
	return ok
}

// Log emits values on the given channel when it is enabled.
func (l *Logger) Log(channel string, values ...any) {
	if !l.EnabledFor(channel) || l.sink == nil {
		return
	}
	l.sink.Log(values...)
}

// Warn emits values on the reserved warn channel.
func (l *Logger) Warn(values ...any) {
	if !l.EnabledFor(ChannelWarn) || l.sink == nil {
		return
	}
	l.sink.Warn(values...)
}

// Error emits values on the reserved error channel.
func (l *Logger) Error(values ...any) {
	if !l.EnabledFor(ChannelError) || l.sink == nil {
		return
	}
	l.sink.Error(values...)
}
