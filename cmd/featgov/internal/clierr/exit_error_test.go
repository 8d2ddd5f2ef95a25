package clierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil is success", err: nil, want: 0},
		{name: "plain error defaults to 1", err: errors.New("boom"), want: 1},
		{name: "explicit code", err: New(2, "bad flag"), want: 2},
		{name: "zero code coerced to 1", err: New(0, "oops"), want: 1},
		{name: "negative code coerced to 1", err: Newf(-3, "oops %d", 7), want: 1},
		{name: "code survives fmt wrapping", err: fmt.Errorf("outer: %w", New(2, "inner")), want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeOf(tt.err))
		})
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("disk on fire")
	err := Wrap(1, "snapshot failed", cause)

	require.ErrorIs(t, err, cause)
	assert.Equal(t, "snapshot failed: disk on fire", err.Error())

	var ee *ExitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 1, ee.Code())
	assert.Equal(t, "snapshot failed", ee.Message())
}

func TestWrapNilCauseActsLikeNew(t *testing.T) {
	err := Wrap(2, "usage", nil)
	assert.Equal(t, "usage", err.Error())
	assert.Equal(t, 2, ExitCodeOf(err))
}

func TestWrapfFormats(t *testing.T) {
	cause := errors.New("no such file")
	err := Wrapf(1, cause, "reading %q", "apps/web/features/login.feature")
	assert.Equal(t, `reading "apps/web/features/login.feature": no such file`, err.Error())
}
