package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/brendan.keane/qutil/internal/config"
	"github.com/brendan.keane/qutil/internal/errors"
	"github.com/brendan.keane/qutil/pkg/query"
)

// QueryHandler handles the query string commands
type QueryHandler struct {
	logger zerolog.Logger
	out    io.Writer
}

// NewQueryHandler creates a new query command handler
func NewQueryHandler(logger zerolog.Logger, out io.Writer) *QueryHandler {
	if out == nil {
		out = os.Stdout
	}
	return &QueryHandler{
		logger: logger.With().Str("handler", "query").Logger(),
		out:    out,
	}
}

// Merge handles the merge command: extend NEW with the parameters of OLD
func (h *QueryHandler) Merge(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFlags(cmd.Flags())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load configuration")
		return err
	}
	if err := cfg.Validate(); err != nil {
		h.logger.Error().Err(err).Msg("configuration validation failed")
		return err
	}

	if len(args) != 2 {
		return errors.New(errors.ErrorTypeValidation, "merge requires NEW and OLD arguments").
			WithContext("args", args)
	}
	newURL, oldURL := args[0], args[1]

	h.logger.Debug().
		Str("new", newURL).
		Str("old", oldURL).
		Str("renew", cfg.Renew).
		Msg("merging query strings")

	result := query.Extend(newURL, oldURL, cfg.Renew)
	debugLogger(cfg, h.logger).Log(channelQuery, "merged", newURL, "with", oldURL, "into", result)
	_, err = fmt.Fprintln(h.out, result)
	return err
}

// Decode handles the decode command: print the parameters of a query string
func (h *QueryHandler) Decode(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFlags(cmd.Flags())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load configuration")
		return err
	}

	if len(args) != 1 {
		return errors.New(errors.ErrorTypeValidation, "decode requires a single URI argument").
			WithContext("args", args)
	}

	uri := args[0]
	// Accept a full URL as well as a bare query string.
	if i := strings.Index(uri, "?"); i >= 0 {
		uri = uri[i+1:]
	}
	params := query.Decode(uri)

	h.logger.Debug().Int("params", len(params)).Msg("decoded query string")

	if cfg.JSON {
		encoder := json.NewEncoder(h.out)
		return encoder.Encode(params)
	}
	_, err = fmt.Fprintln(h.out, renderParams(params))
	return err
}

// Encode handles the encode command: serialize key=value pairs
func (h *QueryHandler) Encode(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New(errors.ErrorTypeValidation, "encode requires at least one key=value pair")
	}

	params := make(query.Params, len(args))
	for _, pair := range args {
		parts := strings.SplitN(pair, "=", 2)
		if parts[0] == "" {
			return errors.Newf(errors.ErrorTypeValidation, "pair %q has no key", pair)
		}
		value := ""
		if len(parts) == 2 {
			value = parts[1]
		}
		params[parts[0]] = value
	}

	h.logger.Debug().Int("params", len(params)).Msg("encoding parameters")

	_, err := fmt.Fprintln(h.out, query.Encode(params))
	return err
}
