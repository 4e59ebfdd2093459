package cli

import (
	"github.com/rs/zerolog"

	"github.com/brendan.keane/qutil/internal/config"
	"github.com/brendan.keane/qutil/internal/logger"
	"github.com/brendan.keane/qutil/pkg/debug"
)

// Channel names the handlers emit on.
const (
	channelQuery = "query"
	channelPath  = "path"
)

// debugLogger builds the channel-gated logger the handlers use for
// operation traces. With --debug off it swallows everything.
func debugLogger(cfg *config.Config, zl zerolog.Logger) *debug.Logger {
	return debug.New(debug.Config{
		Enabled:  cfg.Debug,
		Channels: cfg.Channels,
		Sink:     logger.NewConsoleSink(zl),
	})
}
