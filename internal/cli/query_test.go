package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/brendan.keane/qutil/internal/testutil"
)

// newTestCommand returns a command carrying the flags the handlers load.
func newTestCommand(args ...string) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Bool("debug", false, "")
	cmd.Flags().StringSlice("channel", []string{}, "")
	cmd.Flags().String("renew", "", "")
	cmd.Flags().String("separator", ".", "")
	cmd.Flags().Bool("json", false, "")
	cmd.Flags().Bool("verbose", false, "")
	if err := cmd.Flags().Parse(args); err != nil {
		panic(err)
	}
	return cmd
}

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func TestNewQueryHandler(t *testing.T) {
	handler := NewQueryHandler(testLogger(), nil)
	if handler == nil {
		t.Fatal("NewQueryHandler should return non-nil handler")
	}
}

func TestQueryHandler_Merge(t *testing.T) {
	tests := []struct {
		name     string
		flags    []string
		args     []string
		expected string
		wantErr  bool
	}{
		{
			name:     "merges old params into new URL",
			args:     []string{"/path?b=2", "/old?a=1&b=9"},
			expected: "/path?a=1&b=2\n",
		},
		{
			name:     "forced renew drops old key",
			flags:    []string{"--renew", "a"},
			args:     []string{"/path", "/old?a=1"},
			expected: "/path\n",
		},
		{
			name:    "missing arguments",
			args:    []string{"/path"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := NewQueryHandler(testLogger(), &buf)
			cmd := newTestCommand(tt.flags...)

			err := handler.Merge(cmd, tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Merge returned error: %v", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("output = %q, expected %q", buf.String(), tt.expected)
			}
		})
	}
}

func TestQueryHandler_Merge_Fixture(t *testing.T) {
	var buf bytes.Buffer
	handler := NewQueryHandler(testLogger(), &buf)

	err := handler.Merge(newTestCommand(), []string{testutil.MergedQueryNew, testutil.MergedQueryOld})
	testutil.AssertNoError(t, err, "merge")
	testutil.AssertStringEqual(t, strings.TrimSpace(buf.String()), testutil.MergedQueryResult, "merged URL")
}

func TestQueryHandler_Decode_JSON(t *testing.T) {
	var buf bytes.Buffer
	handler := NewQueryHandler(testLogger(), &buf)
	cmd := newTestCommand("--json")

	if err := handler.Decode(cmd, []string{"/old?a=1&b=two"}); err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"a":"1"`) || !strings.Contains(out, `"b":"two"`) {
		t.Errorf("JSON output missing pairs: %s", out)
	}
}

func TestQueryHandler_Decode_Styled(t *testing.T) {
	var buf bytes.Buffer
	handler := NewQueryHandler(testLogger(), &buf)
	cmd := newTestCommand()

	if err := handler.Decode(cmd, []string{"a=1&b=two"}); err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "a") || !strings.Contains(out, "two") {
		t.Errorf("styled output missing pairs: %s", out)
	}
}

func TestQueryHandler_Decode_BadArgs(t *testing.T) {
	handler := NewQueryHandler(testLogger(), &bytes.Buffer{})
	if err := handler.Decode(newTestCommand(), nil); err == nil {
		t.Error("expected error for missing argument")
	}
}

func TestQueryHandler_Encode(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
		wantErr  bool
	}{
		{
			name:     "pairs sorted and values escaped",
			args:     []string{"y=two words", "x=1"},
			expected: "x=1&y=two+words\n",
		},
		{
			name:     "pair without value",
			args:     []string{"flag"},
			expected: "flag=\n",
		},
		{
			name:    "no pairs",
			args:    nil,
			wantErr: true,
		},
		{
			name:    "empty key",
			args:    []string{"=v"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := NewQueryHandler(testLogger(), &buf)

			err := handler.Encode(newTestCommand(), tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Encode returned error: %v", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("output = %q, expected %q", buf.String(), tt.expected)
			}
		})
	}
}
