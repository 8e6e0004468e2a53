package sections

import (
	"admgate/internal/charts"
	"admgate/internal/models"
	"admgate/internal/providers"
	"admgate/internal/structures"
	"admgate/internal/upstream"
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Service owns the fetch → normalize → project cycle of every section.
type Service struct {
	conf   *structures.Config
	logger providers.Logger
	api    upstream.Client
	charts *charts.Registry

	// snapshot of the last loaded script list, for detail lookup by id
	scriptsMu   sync.RWMutex
	scriptsByID map[models.FlexID]models.Script
}

func NewService(conf *structures.Config, logger providers.Logger, api upstream.Client, registry *charts.Registry) *Service {
	return &Service{
		conf:        conf,
		logger:      logger,
		api:         api,
		charts:      registry,
		scriptsByID: make(map[models.FlexID]models.Script),
	}
}

// fanOutUsers runs fetch once per user with bounded concurrency. Per-user
// failures are logged and skipped; results keep the user-list order.
func fanOutUsers[T any](ctx context.Context, s *Service, fetch func(ctx context.Context, userID string) ([]T, error)) ([]T, error) {
	users, err := s.api.Users(ctx)
	if err != nil {
		return nil, err
	}

	buckets := make([][]T, len(users))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.conf.Upstream.FanOutLimit)

	for i, u := range users {
		g.Go(func() error {
			records, err := fetch(gctx, u.UserID)
			if err != nil {
				s.logger.Warnf(providers.TypeUpstream, "fan-out: skipping user %s: %s", u.UserID, err)
				return nil
			}
			buckets[i] = records
			return nil
		})
	}
	// Per-user failures are logged and skipped above, so Wait only
	// synchronizes the goroutines.
	g.Wait()

	var all []T
	for _, b := range buckets {
		all = append(all, b...)
	}
	return all, nil
}
