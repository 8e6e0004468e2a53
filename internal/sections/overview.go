package sections

import (
	"admgate/internal/charts"
	"admgate/internal/models"
	"admgate/internal/providers"
	"context"
)

type OverviewData struct {
	Stats models.Statistics

	// Activities and its failure flag render independently of the stat
	// cards, matching the per-block fallbacks of the section.
	Activities       []models.Activity
	ActivitiesFailed bool

	Charts map[string]*charts.Config
}

// LoadOverview builds the landing section: stat cards, the two overview
// charts and the recent-activity feed. The stat fetch is load-bearing;
// chart and activity failures degrade their own block only.
func (s *Service) LoadOverview(ctx context.Context) (*OverviewData, error) {
	stats, err := s.api.Statistics(ctx)
	if err != nil {
		return nil, err
	}

	data := &OverviewData{
		Stats:  stats,
		Charts: make(map[string]*charts.Config),
	}

	growth := s.charts.Replace(charts.SlotUserGrowth, charts.UserGrowth(stats))
	data.Charts[growth.Slot] = growth.Config

	modeResp, err := s.api.ModeStatistics(ctx)
	if err != nil {
		s.logger.Errorf(providers.TypeUpstream, "overview: mode statistics: %s", err)
	} else {
		dist := s.charts.Replace(charts.SlotModeDistribution, charts.ModeDistribution(modeResp.Normalize()))
		data.Charts[dist.Slot] = dist.Config
	}

	acts, err := s.api.UserActivities(ctx)
	if err != nil {
		s.logger.Errorf(providers.TypeUpstream, "overview: activities: %s", err)
		data.ActivitiesFailed = true
	} else {
		data.Activities = models.NormalizeActivities(acts)
	}

	return data, nil
}
