package publisher

import (
	"context"

	"go.uber.org/multierr"

	"comicvault/internal/domain"
)

type Notifier interface {
	Notify(ctx context.Context, event domain.FavoriteEvent) error
}

// Multi delivers each event to every notifier, even when some of them fail.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, event domain.FavoriteEvent) error {
	var err error
	for _, n := range m {
		err = multierr.Append(err, n.Notify(ctx, event))
	}
	return err
}
