//go:build unit

package queries

import (
	"encoding/base64"
	"testing"
	"time"

	"court-reservation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursorRoundTrip(t *testing.T) {
	at := time.Date(2026, 5, 10, 9, 30, 15, 123456000, time.UTC)
	id := uuid.New()

	gotAt, gotID, err := DecodeAfterCursor(EncodeAfterCursor(at, id))
	require.NoError(t, err)
	assert.True(t, at.Equal(gotAt))
	assert.Equal(t, id, gotID)
}

func TestDecodeAfterCursor_Rejects(t *testing.T) {
	cases := map[string]string{
		"not base64":      "%%%",
		"unknown version": base64.URLEncoding.EncodeToString([]byte("v0:1-" + uuid.NewString())),
		"missing id":      base64.URLEncoding.EncodeToString([]byte("v1:12345")),
		"bad timestamp":   base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString())),
		"bad id":          base64.URLEncoding.EncodeToString([]byte("v1:12345-nope")),
	}
	for name, cursor := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := DecodeAfterCursor(cursor)
			assert.ErrorIs(t, err, ErrInvalidCursor)
			assert.Equal(t, errs.KindInvalidRequest, errs.KindOf(err))
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, ValidateLimit(0))
	assert.Equal(t, DefaultListLimit, ValidateLimit(-5))
	assert.Equal(t, 7, ValidateLimit(7))
	assert.Equal(t, MaxListLimit, ValidateLimit(MaxListLimit+1))
}

func TestPage(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]*RatingView, 3)
	for i := range rows {
		rows[i] = &RatingView{ID: uuid.New(), CreatedAt: base.Add(-time.Duration(i) * time.Minute)}
	}
	key := func(v *RatingView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID }

	got, next := page(rows, 2, key)
	require.Len(t, got, 2)
	require.NotNil(t, next)
	at, id, err := DecodeAfterCursor(next.After)
	require.NoError(t, err)
	assert.Equal(t, rows[1].ID, id)
	assert.True(t, rows[1].CreatedAt.Equal(at))

	got, next = page(rows, 3, key)
	assert.Len(t, got, 3)
	assert.Nil(t, next)
}
