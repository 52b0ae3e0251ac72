package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out io.Writer
	Err io.Writer
}

// NewFormatter builds a formatter writing to the command's streams
func NewFormatter(cmd *cobra.Command, jsonOutput, quietMode bool) *OutputFormatter {
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

func (f *OutputFormatter) stdout() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) stderr() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Success outputs successful operation result. Human output is produced by
// the human callback so each command controls its own layout.
func (f *OutputFormatter) Success(data any, human func(w io.Writer) error) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			_, err := fmt.Fprintln(f.stdout(), idGetter.GetID())
			return err
		}
		if idsGetter, ok := data.(interface{ GetIDs() []string }); ok {
			for _, id := range idsGetter.GetIDs() {
				if _, err := fmt.Fprintln(f.stdout(), id); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(f.stdout()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	if human == nil {
		return f.prettyPrint(data)
	}
	return human(f.stdout())
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
		return json.NewEncoder(f.stdout()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.stderr(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.stderr(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports the error and returns an ExitStatus carrying code
func (f *OutputFormatter) Fail(exitCode int, code, message, suggestion string) error {
	if err := f.ErrorWithSuggestion(code, message, suggestion); err != nil {
		return err
	}
	return &ExitStatus{Code: exitCode, Reason: message}
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	_, err := fmt.Fprintf(f.stdout(), "%+v\n", data)
	return err
}
