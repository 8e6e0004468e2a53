package charts

import "admgate/internal/models"

// Config is the chart.js configuration emitted into rendered pages. Only the
// fields the dashboard uses are modelled.
type Config struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label           string    `json:"label,omitempty"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor,omitempty"`
	BackgroundColor any       `json:"backgroundColor,omitempty"`
	Tension         float64   `json:"tension,omitempty"`
}

type Options struct {
	Responsive          bool           `json:"responsive"`
	MaintainAspectRatio bool           `json:"maintainAspectRatio"`
	AspectRatio         float64        `json:"aspectRatio"`
	Plugins             map[string]any `json:"plugins,omitempty"`
}

func defaultOptions() Options {
	return Options{Responsive: true, MaintainAspectRatio: true, AspectRatio: 2}
}

var shareColors = []string{"#3b82f6", "#8b5cf6", "#ec4899", "#f59e0b", "#10b981"}

func intsToFloats(vals []int) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = float64(v)
	}
	return out
}

// UserGrowth builds the weekly new-user trend. The backend only reports
// today's count, so earlier days are zero-filled.
func UserGrowth(stats models.Statistics) *Config {
	data := make([]float64, 7)
	data[6] = float64(stats.TodayUsers)
	return &Config{
		Type: "line",
		Data: Data{
			Labels: []string{"週一", "週二", "週三", "週四", "週五", "週六", "週日"},
			Datasets: []Dataset{{
				Label:           "新增用戶",
				Data:            data,
				BorderColor:     "#3b82f6",
				BackgroundColor: "rgba(59, 130, 246, 0.1)",
				Tension:         0.4,
			}},
		},
		Options: Options{
			Responsive:          true,
			MaintainAspectRatio: true,
			AspectRatio:         2,
			Plugins:             map[string]any{"legend": map[string]any{"display": false}},
		},
	}
}

// ModeDistribution builds the per-mode share doughnut.
func ModeDistribution(m models.ModeStats) *Config {
	return &Config{
		Type: "doughnut",
		Data: Data{
			Labels: []string{"一鍵生成", "AI顧問", "IP人設規劃"},
			Datasets: []Dataset{{
				Data:            []float64{float64(m.QuickGenerateCount), float64(m.AIConsultantCount), float64(m.IPPlanningCount)},
				BackgroundColor: []string{"#3b82f6", "#8b5cf6", "#f59e0b"},
			}},
		},
		Options: defaultOptions(),
	}
}

// ModeTime builds the time-of-day usage histogram over the four 6-hour buckets.
func ModeTime(m models.ModeStats) *Config {
	return &Config{
		Type: "bar",
		Data: Data{
			Labels: models.TimeBuckets[:],
			Datasets: []Dataset{{
				Label:           "一鍵生成",
				Data:            intsToFloats(m.TimeDistribution[:]),
				BackgroundColor: "#3b82f6",
			}},
		},
		Options: defaultOptions(),
	}
}

// Platform builds the platform share pie.
func Platform(s models.Series) *Config {
	s = s.OrNoData()
	return &Config{
		Type: "pie",
		Data: Data{
			Labels:   s.Labels,
			Datasets: []Dataset{{Data: s.Data, BackgroundColor: shareColors}},
		},
		Options: defaultOptions(),
	}
}

// TimeUsage builds the weekly usage bar chart.
func TimeUsage(s models.Series) *Config {
	s = s.OrDefault([]string{"週一", "週二", "週三", "週四", "週五", "週六", "週日"})
	return &Config{
		Type: "bar",
		Data: Data{
			Labels:   s.Labels,
			Datasets: []Dataset{{Label: "使用次數", Data: s.Data, BackgroundColor: "#10b981"}},
		},
		Options: defaultOptions(),
	}
}

// WeeklyActivity builds the active-user trend line.
func WeeklyActivity(s models.Series) *Config {
	s = s.OrDefault([]string{"第1週", "第2週", "第3週", "第4週"})
	return &Config{
		Type: "line",
		Data: Data{
			Labels: s.Labels,
			Datasets: []Dataset{{
				Label:           "活躍用戶數",
				Data:            s.Data,
				BorderColor:     "#f59e0b",
				BackgroundColor: "rgba(245, 158, 11, 0.1)",
				Tension:         0.4,
			}},
		},
		Options: defaultOptions(),
	}
}

// ContentType builds the content-type share doughnut.
func ContentType(s models.Series) *Config {
	s = s.OrNoData()
	return &Config{
		Type: "doughnut",
		Data: Data{
			Labels:   s.Labels,
			Datasets: []Dataset{{Data: s.Data, BackgroundColor: shareColors}},
		},
		Options: defaultOptions(),
	}
}
