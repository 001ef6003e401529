package composables

import (
	"context"
	"errors"
)

// Tx is the part of a store transaction InTx needs.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// InTx begins a transaction, runs fn and commits. Any error from fn rolls the
// whole transaction back.
func InTx[T Tx](ctx context.Context, begin func(context.Context) (T, error), fn func(context.Context, T) error) error {
	tx, err := begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(ctx, tx); err != nil {
		if rErr := tx.Rollback(ctx); rErr != nil {
			return errors.Join(err, rErr)
		}
		return err
	}
	return tx.Commit(ctx)
}
