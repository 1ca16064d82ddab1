package testutil

import (
	"fmt"
	"testing"

	chesserrors "github.com/lgbarn/chessboard-go/internal/errors"
)

// Failing assertions cannot be observed without a fake *testing.T, so these
// cover the passing paths and the message formatter.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "e4", "e4")
	AssertEqual(t, []string{"e2e4", "e7e5"}, []string{"e2e4", "e7e5"})
	AssertEqual(t, nil, nil)
	AssertEqual(t, 42, 42, "turn should be %d", 42)
}

func TestAssertSameElements_Success(t *testing.T) {
	AssertSameElements(t, []string{"e3", "e4"}, []string{"e4", "e3"})
	AssertSameElements(t, nil, []string{})
}

func TestAssertErrors_Success(t *testing.T) {
	AssertNoError(t, nil, "move should succeed")
	wrapped := fmt.Errorf("e9: %w", chesserrors.ErrOutOfBounds)
	AssertError(t, wrapped)
	AssertErrorIs(t, wrapped, chesserrors.ErrOutOfBounds)
}

func TestAssertBooleans_Success(t *testing.T) {
	AssertTrue(t, len("e2e4") == 4)
	AssertFalse(t, len("O-O") == 5)
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "Invalid move: e2e5", "e2e5")
	AssertNotContains(t, "1. e2e4 *", "e7e5")
}

func TestAssertNil_Success(t *testing.T) {
	var p *int
	AssertNil(t, p)
	AssertNil(t, nil)

	x := 42
	AssertNotNil(t, &x)
	AssertNotNil(t, []int{1})
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"move %s", "e2e4"}, "move e2e4"},
		{"format multiple", []interface{}{"%s %d", "ply", 3}, "ply 3"},
		{"non-string first", []interface{}{7, "ignored"}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
