package services

import (
	"context"
	"errors"

	"github.com/anonto42/nano-midea/relations/internal/repositories"
)

// ensurePair creates rec unless find already returns a record for the pair.
// The bool result reports whether rec was inserted. find and create are
// separate round trips, so two concurrent callers can both miss on find; the
// loser's insert hits the unique index and the winner's record is returned.
func ensurePair[T any](
	ctx context.Context,
	find func(context.Context) (*T, error),
	create func(context.Context, *T) error,
	rec *T,
) (*T, bool, error) {
	existing, err := find(ctx)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	err = create(ctx, rec)
	if errors.Is(err, repositories.ErrDuplicatePair) {
		existing, ferr := find(ctx)
		if ferr != nil {
			return nil, false, ferr
		}
		if existing != nil {
			return existing, false, nil
		}
	}
	if err != nil {
		return nil, false, err
	}
	return rec, true, nil
}
