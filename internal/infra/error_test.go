//go:build unit

package infra_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"station-booking/internal/infra"
	"station-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name        string
		err         error
		kind        []infra.RepositoryErrorKind
		expected    infra.RepositoryErrorKind
		unavailable bool
	}{
		{name: "plain error", err: errors.New("boom"), expected: infra.KindDBFailure},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, expected: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, expected: infra.KindForeignKeyViolated},
		{name: "connection exception class", err: &pgconn.PgError{Code: "08006"}, expected: infra.KindUnavailable, unavailable: true},
		{name: "too many connections", err: &pgconn.PgError{Code: "53300"}, expected: infra.KindUnavailable, unavailable: true},
		{name: "deadline exceeded", err: fmt.Errorf("query: %w", context.DeadlineExceeded), expected: infra.KindUnavailable, unavailable: true},
		{name: "explicit kind wins", err: errors.New("no rows"), kind: []infra.RepositoryErrorKind{infra.KindNotFound}, expected: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("failed to list reservations", tc.err, tc.kind...)

			assert.True(t, infra.IsKind(err, tc.expected), "got %v", err)
			assert.Equal(t, tc.unavailable, errs.Is(err, errs.ErrStoreUnavailable))
			assert.Contains(t, err.Error(), "failed to list reservations")
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, infra.IsRetryable(&pgconn.PgError{Code: "40001"}))
	assert.True(t, infra.IsRetryable(&pgconn.PgError{Code: "40P01"}))
	assert.True(t, infra.IsRetryable(context.DeadlineExceeded))
	assert.True(t, infra.IsRetryable(infra.WrapRepoErr("read", context.DeadlineExceeded)))

	assert.False(t, infra.IsRetryable(context.Canceled))
	assert.False(t, infra.IsRetryable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, infra.IsRetryable(errors.New("boom")))
	assert.False(t, infra.IsTransportError(nil))
}
