// File: api/errors_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import (
	"errors"
	"strings"
	"testing"
)

func TestStructuredErrorUnwrapsToSentinel(t *testing.T) {
	err := NewError(ErrCodeInvalidArgument, ErrInvalidCapacity).
		WithContext("capacity", 4000).
		WithContext("page_size", 4096)

	if !errors.Is(err, ErrInvalidCapacity) {
		t.Fatal("expected errors.Is to match the wrapped sentinel")
	}
	var structured *Error
	if !errors.As(err, &structured) {
		t.Fatal("expected errors.As to recover *Error")
	}
	if structured.Code != ErrCodeInvalidArgument {
		t.Fatalf("unexpected code: %v", structured.Code)
	}
	if structured.Context["capacity"] != 4000 {
		t.Fatalf("unexpected context: %+v", structured.Context)
	}
	if !strings.Contains(err.Error(), "capacity") {
		t.Fatalf("message should carry context, got %q", err.Error())
	}
}

func TestErrorWithoutContext(t *testing.T) {
	err := NewError(ErrCodeTimeout, ErrTimeout)
	if err.Error() != ErrTimeout.Error() {
		t.Fatalf("expected bare sentinel message, got %q", err.Error())
	}
}
