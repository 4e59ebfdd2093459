package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/brendan.keane/qutil/internal/config"
	"github.com/brendan.keane/qutil/internal/errors"
	"github.com/brendan.keane/qutil/pkg/pathval"
)

// PathHandler handles the get command: dotted-path lookup into a JSON
// document read from stdin.
type PathHandler struct {
	logger zerolog.Logger
	in     io.Reader
	out    io.Writer
}

// NewPathHandler creates a new path lookup handler
func NewPathHandler(logger zerolog.Logger, in io.Reader, out io.Writer) *PathHandler {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &PathHandler{
		logger: logger.With().Str("handler", "path").Logger(),
		in:     in,
		out:    out,
	}
}

// Get reads a JSON object from stdin and resolves the given path in it.
// An unresolved path is not an error; it prints nothing and sets no
// failure status, mirroring the library's absence semantics.
func (h *PathHandler) Get(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFlags(cmd.Flags())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load configuration")
		return err
	}
	if err := cfg.Validate(); err != nil {
		h.logger.Error().Err(err).Msg("configuration validation failed")
		return err
	}

	if len(args) != 1 {
		return errors.New(errors.ErrorTypeValidation, "get requires a single PATH argument").
			WithContext("args", args)
	}
	path := args[0]

	var obj map[string]any
	decoder := json.NewDecoder(h.in)
	if err := decoder.Decode(&obj); err != nil {
		h.logger.Error().Err(err).Msg("failed to decode input")
		return errors.Wrap(err, errors.ErrorTypeInput, "input is not a JSON object").
			WithContext("source", "stdin")
	}

	h.logger.Debug().
		Str("path", path).
		Str("separator", cfg.Separator).
		Msg("resolving path")

	value, ok := pathval.GetSep(obj, path, cfg.Separator)
	if !ok {
		debugLogger(cfg, h.logger).Log(channelPath, "path", path, "not found")
		return nil
	}

	switch v := value.(type) {
	case string:
		_, err = fmt.Fprintln(h.out, v)
	default:
		encoder := json.NewEncoder(h.out)
		err = encoder.Encode(v)
	}
	return err
}
