package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeConfigInvalid, "bad placement")

	if err.Code != ErrCodeConfigInvalid {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeConfigInvalid)
	}
	if err.Message != "bad placement" {
		t.Errorf("Message = %q, want 'bad placement'", err.Message)
	}
	if err.Underlying != nil {
		t.Error("Underlying should be nil for New error")
	}
	if len(err.Stack) == 0 {
		t.Error("Stack should be captured")
	}
}

func TestWrap(t *testing.T) {
	underlying := stderrors.New("open config.yaml: no such file")
	err := Wrap(underlying, ErrCodeConfigLoad, "loading config")

	if err.Underlying != underlying {
		t.Error("Underlying should be preserved")
	}
	if !strings.Contains(err.Error(), "no such file") {
		t.Errorf("Error() = %q, should include underlying error", err.Error())
	}
	if !stderrors.Is(err, underlying) {
		t.Error("errors.Is should reach the underlying error")
	}
}

func TestWrap_Nil(t *testing.T) {
	if err := Wrap(nil, ErrCodeInternal, "test"); err != nil {
		t.Error("Wrap of nil should return nil")
	}
}

func TestUnknownKey(t *testing.T) {
	err := UnknownKey("logs")

	if !stderrors.Is(err, ErrUnknownKey) {
		t.Error("UnknownKey should match ErrUnknownKey")
	}
	if stderrors.Is(err, ErrCannotFocus) {
		t.Error("UnknownKey should not match ErrCannotFocus")
	}
	if got := err.Error(); got != "[UNKNOWN_KEY] unknown tab key {key: logs}" {
		t.Errorf("Error() = %q", got)
	}
}

func TestCannotFocus_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("panel: %w", CannotFocus("container has no focusable view"))

	if !stderrors.Is(err, ErrCannotFocus) {
		t.Error("wrapped CannotFocus should still match ErrCannotFocus")
	}
	if GetCode(err) != ErrCodeCannotFocus {
		t.Errorf("GetCode() = %v, want %v", GetCode(err), ErrCodeCannotFocus)
	}
}

func TestGetCode(t *testing.T) {
	if GetCode(nil) != "" {
		t.Error("GetCode(nil) should be empty")
	}
	if GetCode(stderrors.New("plain")) != ErrCodeInternal {
		t.Error("plain errors should report INTERNAL")
	}
	if !IsCode(UnknownKey("x"), ErrCodeUnknownKey) {
		t.Error("IsCode should match UNKNOWN_KEY")
	}
}

func TestContextOrderIsStable(t *testing.T) {
	err := New(ErrCodeConfigInvalid, "duplicate tab").
		WithContext("key", "a").
		WithContext("index", 3)

	want := "[CONFIG_INVALID] duplicate tab {index: 3, key: a}"
	for i := 0; i < 5; i++ {
		if got := err.Error(); got != want {
			t.Fatalf("Error() = %q, want %q", got, want)
		}
	}
}

func TestStackTrace(t *testing.T) {
	trace := New(ErrCodeInternal, "boom").StackTrace()
	if !strings.HasPrefix(trace, "Stack trace:\n") {
		t.Errorf("StackTrace() = %q", trace)
	}
	if !strings.Contains(trace, "TestStackTrace") {
		t.Error("StackTrace should include the calling test")
	}
}
