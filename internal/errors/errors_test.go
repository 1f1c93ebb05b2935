package errors

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	base := errors.New("week 2026-W02 not found")

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error", err: nil, expected: ""},
		{name: "simple error", err: errors.New("something went wrong"), expected: "Error: something went wrong"},
		{name: "wrapped error", err: fmt.Errorf("opening week: %w", base), expected: "Error: opening week: week 2026-W02 not found"},
		{
			name:     "hinted error",
			err:      WithHint(base, "run 'weeklit week show' first"),
			expected: "Error: week 2026-W02 not found\nHint: run 'weeklit week show' first",
		},
		{
			name:     "wrapped hinted error",
			err:      fmt.Errorf("import: %w", WithHint(base, "check the file")),
			expected: "Error: import: week 2026-W02 not found\nHint: check the file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, got, tt.expected)
			}
		})
	}
}

func TestWithHint(t *testing.T) {
	if WithHint(nil, "ignored") != nil {
		t.Error("WithHint(nil) should return nil")
	}

	base := errors.New("boom")
	if !errors.Is(WithHint(base, "x"), base) {
		t.Error("hinted error should unwrap to its cause")
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("failed to load %s", "weeks")
	if got != "Error: failed to load weeks" {
		t.Errorf("Formatf() = %q", got)
	}
}

func TestFatal(t *testing.T) {
	var buf bytes.Buffer
	code := -1
	prevStderr, prevExit := stderr, exit
	stderr, exit = &buf, func(c int) { code = c }
	t.Cleanup(func() { stderr, exit = prevStderr, prevExit })

	Fatal(nil)
	if code != -1 || buf.Len() != 0 {
		t.Fatalf("Fatal(nil) should do nothing, got code %d output %q", code, buf.String())
	}

	Fatal(errors.New("test error"))
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if buf.String() != "Error: test error\n" {
		t.Errorf("stderr = %q", buf.String())
	}
}
