package sections

import (
	"admgate/internal/charts"
	"admgate/internal/models"
	"context"
)

type ModesData struct {
	Stats  models.ModeStats
	Charts map[string]*charts.Config
}

func (s *Service) LoadModes(ctx context.Context) (*ModesData, error) {
	resp, err := s.api.ModeStatistics(ctx)
	if err != nil {
		return nil, err
	}

	stats := resp.Normalize()
	h := s.charts.Replace(charts.SlotModeTime, charts.ModeTime(stats))

	return &ModesData{
		Stats:  stats,
		Charts: map[string]*charts.Config{h.Slot: h.Config},
	}, nil
}
