//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"court-reservation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	sentinel := errs.NewKind(errs.KindConflictSlotTaken, "slot taken")

	testCases := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{name: "sentinel", err: sentinel, want: errs.KindConflictSlotTaken},
		{name: "wrapped", err: errs.Wrapf(sentinel, "court %s", "C1"), want: errs.KindConflictSlotTaken},
		{name: "fmt wrapped", err: fmt.Errorf("outer: %w", sentinel), want: errs.KindConflictSlotTaken},
		{name: "outermost wins", err: errs.WithKind(sentinel, errs.KindForbidden), want: errs.KindForbidden},
		{name: "plain error", err: errors.New("boom"), want: errs.KindUnknown},
		{name: "nil", err: nil, want: errs.KindUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errs.KindOf(tc.err))
		})
	}
}

func TestWithKind(t *testing.T) {
	base := errors.New("db down")
	tagged := errs.WithKind(base, errs.KindInvalidRequest)

	assert.ErrorIs(t, tagged, base)
	assert.Equal(t, "db down", tagged.Error())
	assert.Nil(t, errs.WithKind(nil, errs.KindForbidden))
}

func TestWrap_KeepsIdentity(t *testing.T) {
	sentinel := errs.NewKind(errs.KindNotFoundBooking, "booking not found")
	wrapped := errs.Wrap(sentinel, "load")

	assert.True(t, errs.Is(wrapped, sentinel))
	assert.Contains(t, wrapped.Error(), "booking not found")
	assert.Nil(t, errs.Wrap(nil, "noop"))
	assert.NotEmpty(t, errs.ExtractStackLines(wrapped, 5))
}
