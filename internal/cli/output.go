package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quoteboard/internal/rpc"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out io.Writer
	Err io.Writer
}

// AddOutputFlags registers --json and --quiet on cmd
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")
}

// NewFormatter reads the output flags of cmd and writes to its streams
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// JSONSuccess writes the success envelope with data under key
func (f *OutputFormatter) JSONSuccess(key string, data any) error {
	return json.NewEncoder(f.out()).Encode(map[string]any{
		"success": true,
		key:       data,
	})
}

// Printf writes human-readable output unless quiet
func (f *OutputFormatter) Printf(format string, args ...any) {
	if f.Quiet {
		return
	}
	fmt.Fprintf(f.out(), format, args...)
}

// Println writes a bare line, even in quiet mode
func (f *OutputFormatter) Println(s string) {
	fmt.Fprintln(f.out(), s)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(f.errOut(), "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err in the current output mode and returns it with its
// exit code attached
func (f *OutputFormatter) Fail(err error) error {
	suggestion := ""
	var dialErr *rpc.DialError
	if errors.As(err, &dialErr) {
		suggestion = dialErr.Hint
	}
	_ = f.ErrorWithSuggestion(ErrorCode(err), err.Error(), suggestion)
	return &CommandError{Code: ExitCode(err), Err: err, Reported: true}
}
