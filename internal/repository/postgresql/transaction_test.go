package postgresql

import (
	"context"
	"errors"
	"testing"

	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTx satisfies pgx.Tx through the embedded interface; no method is
// ever invoked in these tests.
type stubTx struct {
	pgx.Tx
}

func TestGetQuerier_PrefersAmbientTransaction(t *testing.T) {
	db := &database.DB{Pool: &pgxpool.Pool{}}
	tx := &stubTx{}
	ctx := context.WithValue(context.Background(), txKey, pgx.Tx(tx))

	q := GetQuerier(ctx, db)
	assert.Same(t, tx, q)
}

func TestGetQuerier_FallsBackToPool(t *testing.T) {
	db := &database.DB{Pool: &pgxpool.Pool{}}

	q := GetQuerier(context.Background(), db)
	assert.Same(t, db.Pool, q)
}

func TestWithTransaction_JoinsAmbientTransaction(t *testing.T) {
	tx := &stubTx{}
	ctx := context.WithValue(context.Background(), txKey, pgx.Tx(tx))

	ran := false
	err := WithTransaction(ctx, nil, func(ctx context.Context) error {
		ran = true
		assert.Same(t, tx, GetQuerier(ctx, nil))
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestWithTransaction_JoinedErrorsPassThrough(t *testing.T) {
	tx := &stubTx{}
	ctx := context.WithValue(context.Background(), txKey, pgx.Tx(tx))

	sentinel := errors.New("refused")
	err := WithTransaction(ctx, nil, func(context.Context) error {
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
}
