package sections

import (
	"admgate/internal/charts"
	"context"
)

type AnalyticsPageData struct {
	Charts map[string]*charts.Config
}

func (s *Service) LoadAnalytics(ctx context.Context) (*AnalyticsPageData, error) {
	data, err := s.api.AnalyticsData(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]*charts.Config, 4)
	for _, h := range []*charts.Handle{
		s.charts.Replace(charts.SlotPlatform, charts.Platform(data.Platform)),
		s.charts.Replace(charts.SlotTimeUsage, charts.TimeUsage(data.TimeUsage)),
		s.charts.Replace(charts.SlotActivity, charts.WeeklyActivity(data.Activity)),
		s.charts.Replace(charts.SlotContentType, charts.ContentType(data.ContentType)),
	} {
		out[h.Slot] = h.Config
	}

	return &AnalyticsPageData{Charts: out}, nil
}
