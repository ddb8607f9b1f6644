package core

import (
	"errors"
	"testing"
)

func TestCoreErrorUnwrapsToSentinels(t *testing.T) {
	cases := []struct {
		code string
		want error
	}{
		{ErrCodeRoomNotFound, ErrRoomNotFound},
		{ErrCodeRoomFull, ErrRoomFull},
		{ErrCodeInvalidInput, ErrInvalidInput},
	}
	for _, tc := range cases {
		err := coreError(tc.code, "boom")
		if !errors.Is(err, tc.want) {
			t.Fatalf("code %q does not unwrap to %v", tc.code, tc.want)
		}
	}

	if errors.Is(coreError(ErrCodeInternal, "boom"), ErrRoomNotFound) {
		t.Fatal("internal errors must not match a domain sentinel")
	}
}
