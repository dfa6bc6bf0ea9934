package mirror

import (
	"context"
	"fmt"

	"github.com/heartmarshall/pinmoji/internal/domain"
)

// SetLikes overwrites the item's likes counter. The write is blind: no read
// happens first and concurrent writers race, last one wins. Nothing is
// recorded in State; callers that fire and forget may drop the error.
func (m *Mirror) SetLikes(ctx context.Context, id string, likes int) error {
	return m.setCounter(ctx, id, domain.CounterLikes, likes)
}

// SetDislikes overwrites the item's dislikes counter; see SetLikes.
func (m *Mirror) SetDislikes(ctx context.Context, id string, dislikes int) error {
	return m.setCounter(ctx, id, domain.CounterDislikes, dislikes)
}

// Vote increments the counter by one on the store side, so concurrent
// voters never lose updates.
func (m *Mirror) Vote(ctx context.Context, id string, counter domain.Counter) error {
	if err := validateCounter(id, counter); err != nil {
		return err
	}
	if err := m.docs.IncrementCounter(ctx, id, counter, 1); err != nil {
		return fmt.Errorf("increment %s on item %s: %w", counter, id, err)
	}
	return nil
}

func (m *Mirror) setCounter(ctx context.Context, id string, counter domain.Counter, value int) error {
	if err := validateCounter(id, counter); err != nil {
		return err
	}
	if value < 0 {
		return domain.NewValidationError(counter.String(), "must be non-negative")
	}
	if err := m.docs.SetCounter(ctx, id, counter, value); err != nil {
		return fmt.Errorf("set %s on item %s: %w", counter, id, err)
	}
	return nil
}

func validateCounter(id string, counter domain.Counter) error {
	var v domain.ValidationError
	if id == "" {
		v.Add("id", "required")
	}
	if !counter.IsValid() {
		v.Add("counter", "must be likes or dislikes")
	}
	return v.Err()
}
