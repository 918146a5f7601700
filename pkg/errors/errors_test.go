package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "WithoutCause",
			err:  New(ErrCodeUnknownLine, "line 3: unknown line: %q", "FOO 1 2"),
			want: `UNKNOWN_LINE: line 3: unknown line: "FOO 1 2"`,
		},
		{
			name: "WithCause",
			err:  Wrap(ErrCodeDetectFailed, stderrors.New("boom"), "input matches no known syntax"),
			want: "DETECT_FAILED: input matches no known syntax: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeFieldCount, "expect 6 fields but found 4")

	if !Is(err, ErrCodeFieldCount) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeUnknownLine) {
		t.Error("Is() should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeFieldCount) {
		t.Error("Is() should not match a non-structured error")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(ErrCodeUnterminatedBlock, "transistor block never closed")
	outer := fmt.Errorf("parse failed: %w", inner)

	if !Is(outer, ErrCodeUnterminatedBlock) {
		t.Error("Is() should unwrap fmt.Errorf chains")
	}
	if GetCode(outer) != ErrCodeUnterminatedBlock {
		t.Errorf("GetCode() = %q, want %q", GetCode(outer), ErrCodeUnterminatedBlock)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("original")
	err := Wrap(ErrCodeInternal, cause, "wrapped")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "invalid format: webp")
	if got := UserMessage(err); got != "invalid format: webp" {
		t.Errorf("UserMessage() = %q, want message without code prefix", got)
	}
	if strings.Contains(UserMessage(err), string(ErrCodeInvalidFormat)) {
		t.Error("UserMessage() should strip the code prefix")
	}

	plain := stderrors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage(plain) = %q, want %q", got, "plain error")
	}
}

func TestGetCodeNonStructured(t *testing.T) {
	if got := GetCode(stderrors.New("nope")); got != "" {
		t.Errorf("GetCode() = %q, want empty", got)
	}
}
