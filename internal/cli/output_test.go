package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

type mockDataWithID struct {
	ID   string
	Name string
}

func (m mockDataWithID) GetID() string {
	return m.ID
}

type mockDataWithoutID struct {
	Name  string
	Value int
}

func newTestFormatter(jsonOutput, quietMode bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode, Out: &out, Err: &errOut}, &out, &errOut
}

func TestOutputFormatter_Success_JSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		validate func(t *testing.T, data any)
	}{
		{
			name: "map data",
			data: map[string]any{"test": "value"},
			validate: func(t *testing.T, data any) {
				if data.(map[string]any)["test"] != "value" {
					t.Errorf("Expected data.test to be 'value', got %v", data)
				}
			},
		},
		{
			name: "struct with ID",
			data: mockDataWithID{ID: "task-1", Name: "Test"},
			validate: func(t *testing.T, data any) {
				if data.(map[string]any)["ID"] != "task-1" {
					t.Errorf("Expected data.ID to be 'task-1', got %v", data)
				}
			},
		},
		{
			name: "string data",
			data: "simple string",
			validate: func(t *testing.T, data any) {
				if data != "simple string" {
					t.Errorf("Expected data to be 'simple string', got %v", data)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newTestFormatter(true, false)
			if err := f.Success(tt.data, nil); err != nil {
				t.Fatalf("Success returned error: %v", err)
			}

			var result map[string]any
			if err := json.Unmarshal(out.Bytes(), &result); err != nil {
				t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, out.String())
			}
			if result["success"] != true {
				t.Error("Expected success to be true")
			}
			tt.validate(t, result["data"])
		})
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	t.Run("with ID", func(t *testing.T) {
		f, out, _ := newTestFormatter(false, true)
		if err := f.Success(mockDataWithID{ID: "pr-dat-15"}, nil); err != nil {
			t.Fatalf("Success returned error: %v", err)
		}
		if out.String() != "pr-dat-15\n" {
			t.Errorf("Expected only the ID, got %q", out.String())
		}
	})

	t.Run("without ID prints nothing", func(t *testing.T) {
		f, out, _ := newTestFormatter(false, true)
		if err := f.Success(mockDataWithoutID{Name: "x"}, nil); err != nil {
			t.Fatalf("Success returned error: %v", err)
		}
		if out.Len() != 0 {
			t.Errorf("Expected no output, got %q", out.String())
		}
	})

	t.Run("quiet wins over json", func(t *testing.T) {
		f, out, _ := newTestFormatter(true, true)
		if err := f.Success(mockDataWithID{ID: "task-2"}, nil); err != nil {
			t.Fatalf("Success returned error: %v", err)
		}
		if strings.TrimSpace(out.String()) != "task-2" {
			t.Errorf("Expected only the ID, got %q", out.String())
		}
	})
}

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	t.Run("callback", func(t *testing.T) {
		f, out, _ := newTestFormatter(false, false)
		err := f.Success(mockDataWithID{ID: "task-1"}, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, "custom layout")
			return err
		})
		if err != nil {
			t.Fatalf("Success returned error: %v", err)
		}
		if out.String() != "custom layout\n" {
			t.Errorf("Expected callback output, got %q", out.String())
		}
	})

	t.Run("fallback pretty print", func(t *testing.T) {
		f, out, _ := newTestFormatter(false, false)
		if err := f.Success(mockDataWithoutID{Name: "Test", Value: 42}, nil); err != nil {
			t.Fatalf("Success returned error: %v", err)
		}
		if !strings.Contains(out.String(), "Name:Test") || !strings.Contains(out.String(), "Value:42") {
			t.Errorf("Expected %%+v output, got %q", out.String())
		}
	})

	t.Run("callback error propagates", func(t *testing.T) {
		f, _, _ := newTestFormatter(false, false)
		boom := errors.New("boom")
		if err := f.Success(nil, func(io.Writer) error { return boom }); !errors.Is(err, boom) {
			t.Errorf("Expected callback error, got %v", err)
		}
	})
}

func TestOutputFormatter_Error_JSON(t *testing.T) {
	f, out, errOut := newTestFormatter(true, false)
	if err := f.ErrorWithSuggestion("ITEM_NOT_FOUND", "item nope not found", "Run: mission board show"); err != nil {
		t.Fatalf("ErrorWithSuggestion returned error: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, out.String())
	}
	if result["success"] != false {
		t.Error("Expected success to be false")
	}
	errData := result["error"].(map[string]any)
	if errData["code"] != "ITEM_NOT_FOUND" {
		t.Errorf("Expected code ITEM_NOT_FOUND, got %v", errData["code"])
	}
	if errData["suggestion"] != "Run: mission board show" {
		t.Errorf("Expected suggestion, got %v", errData["suggestion"])
	}
	if errOut.Len() != 0 {
		t.Errorf("Expected nothing on stderr, got %q", errOut.String())
	}
}

func TestOutputFormatter_Error_JSONWithoutSuggestion(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)
	if err := f.Error("INTERNAL", "broken"); err != nil {
		t.Fatalf("Error returned error: %v", err)
	}
	if strings.Contains(out.String(), "suggestion") {
		t.Errorf("Expected no suggestion key, got %s", out.String())
	}
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	f, out, errOut := newTestFormatter(false, false)
	if err := f.ErrorWithSuggestion("X", "something failed", "try again"); err != nil {
		t.Fatalf("ErrorWithSuggestion returned error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected nothing on stdout, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "❌ Error: something failed") {
		t.Errorf("Expected error line, got %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "💡 Suggestion: try again") {
		t.Errorf("Expected suggestion line, got %q", errOut.String())
	}
}

func TestOutputFormatter_Fail(t *testing.T) {
	f, _, errOut := newTestFormatter(false, false)
	err := f.Fail(ExitNotFound, "ITEM_NOT_FOUND", "item x not found", "")
	if ExitCode(err) != ExitNotFound {
		t.Errorf("Expected exit code %d, got %d", ExitNotFound, ExitCode(err))
	}
	if !Reported(err) {
		t.Error("Expected Fail error to be reported")
	}
	if !strings.Contains(errOut.String(), "item x not found") {
		t.Errorf("Expected message on stderr, got %q", errOut.String())
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "plain error", err: errors.New("x"), want: ExitError},
		{name: "status", err: &ExitStatus{Code: ExitUsage}, want: ExitUsage},
		{name: "wrapped status", err: fmt.Errorf("ctx: %w", &ExitStatus{Code: ExitValidation}), want: ExitValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}
