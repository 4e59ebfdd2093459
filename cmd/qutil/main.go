package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/brendan.keane/qutil/internal/cli"
	"github.com/brendan.keane/qutil/internal/errors"
	"github.com/brendan.keane/qutil/internal/logger"
)

var (
	debugEnabled  bool
	debugChannels []string
	renewParam    string
	separator     string
	jsonOutput    bool
	verbose       bool
)

var rootCmd *cobra.Command

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.UserMessage(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "qutil",
		Short: "Query string and lookup helpers for the command line",
		Long: `qutil exposes a small set of URL query-string helpers: merging the
parameters of two URLs, encoding and decoding query strings, and dotted-path
lookup into JSON read from stdin.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&debugEnabled, "debug", false, "Enable channel-gated debug logging")
	rootCmd.PersistentFlags().StringSliceVar(&debugChannels, "channel", []string{}, "Enabled debug channels (can be used multiple times)")
	rootCmd.PersistentFlags().StringVar(&renewParam, "renew", "", "Query key whose old value is discarded before merging")
	rootCmd.PersistentFlags().StringVar(&separator, "separator", ".", "Path separator for get")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of styled output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Environment variable binding (QUTIL_ prefixed to avoid collisions)
	if os.Getenv("QUTIL_DEBUG") != "" && !debugEnabled {
		debugEnabled = true
	}

	rootCmd.AddCommand(mergeCmd())
	rootCmd.AddCommand(decodeCmd())
	rootCmd.AddCommand(encodeCmd())
	rootCmd.AddCommand(getCmd())
}

// rootLogger builds the zerolog logger shared by all handlers.
func rootLogger() zerolog.Logger {
	return logger.SetupFromFlags(verbose, debugEnabled)
}

func mergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge NEW OLD",
		Short: "Merge the query parameters of OLD into NEW",
		Long: `Merge takes two URLs or query strings and prints NEW with OLD's
parameters folded in. On key collision NEW wins; --renew drops a key from
OLD entirely so NEW's value, or its absence, dominates.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := cli.NewQueryHandler(rootLogger(), os.Stdout)
			return handler.Merge(cmd, args)
		},
	}
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode URI",
		Short: "Print the query parameters of a URL or query string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := cli.NewQueryHandler(rootLogger(), os.Stdout)
			return handler.Decode(cmd, args)
		},
	}
}

func encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode KEY=VALUE...",
		Short: "Serialize key=value pairs as a query string",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := cli.NewQueryHandler(rootLogger(), os.Stdout)
			return handler.Encode(cmd, args)
		},
	}
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get PATH",
		Short: "Resolve a dotted path in a JSON object read from stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := cli.NewPathHandler(rootLogger(), os.Stdin, os.Stdout)
			return handler.Get(cmd, args)
		},
	}
}
