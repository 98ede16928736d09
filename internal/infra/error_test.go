//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"court-reservation/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505", ConstraintName: "bookings_active_slot_key"}, expectKind: infra.KindDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, expectKind: infra.KindForeignKeyViolated},
		{name: "check", err: &pgconn.PgError{Code: "23514"}, expectKind: infra.KindCheckViolated},
		{name: "serialization failure stays generic", err: &pgconn.PgError{Code: "40001"}, expectKind: infra.KindDBFailure},
		{name: "plain error", err: errors.New("connection reset"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("failed", tc.err)

			assert.True(t, infra.IsKind(err, tc.expectKind))
			assert.ErrorIs(t, err, tc.err)
		})
	}

	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, infra.WrapRepoErr("failed", nil))
	})

	t.Run("constraint name is kept", func(t *testing.T) {
		err := infra.WrapRepoErr("insert", &pgconn.PgError{Code: "23505", ConstraintName: "ratings_user_venue_key"})
		var repoErr infra.RepositoryError
		assert.True(t, errors.As(err, &repoErr))
		assert.Equal(t, "ratings_user_venue_key", repoErr.Constraint)
	})
}
