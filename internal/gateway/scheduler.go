package gateway

import (
	"admgate/internal/gateway/interfaces"
	"admgate/internal/providers"
	"admgate/internal/structures"
	"admgate/internal/upstream"
	"context"
	"sync"

	"github.com/roylee0704/gron"
)

// Scheduler keeps the overview data warm in the upstream cache so the
// landing section renders without waiting on the backend.
type Scheduler struct {
	config *structures.Config
	logger providers.Logger
	api    upstream.Client
	cron   *gron.Cron
	opsMu  sync.Mutex
}

func (s *Scheduler) Init() {
	if !s.config.Refresh.Enabled {
		s.logger.Infof(providers.TypeApp, "Cache warm disabled")
		return
	}

	s.cron = gron.New()
	s.cron.AddFunc(gron.Every(s.config.Refresh.Interval), func() {
		if err := s.Warm(); err != nil {
			s.logger.Errorf(providers.TypeApp, "Cache warm error: %s", err)
			return
		}
		s.logger.Debugf(providers.TypeApp, "Overview cache warmed")
	})
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Warm fetches the overview endpoints once, filling the response cache.
func (s *Scheduler) Warm() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Upstream.Timeout)
	defer cancel()

	if _, err := s.api.Statistics(ctx); err != nil {
		return err
	}
	if _, err := s.api.ModeStatistics(ctx); err != nil {
		return err
	}
	_, err := s.api.UserActivities(ctx)
	return err
}

func NewScheduler(config *structures.Config, logger providers.Logger, api upstream.Client) interfaces.SchedulerInterface {
	return &Scheduler{
		config: config,
		logger: logger,
		api:    api,
	}
}
