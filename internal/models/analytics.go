package models

// Series is one labelled data vector of the /admin/analytics-data response.
type Series struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

type AnalyticsData struct {
	Platform    Series `json:"platform"`
	TimeUsage   Series `json:"time_usage"`
	Activity    Series `json:"activity"`
	ContentType Series `json:"content_type"`
}

// OrDefault substitutes fallback labels with zero-filled data when the
// backend served no series at all.
func (s Series) OrDefault(labels []string) Series {
	if len(s.Labels) > 0 {
		return s
	}
	return Series{Labels: labels, Data: make([]float64, len(labels))}
}

// OrNoData degrades an empty share series to a single "no data" bucket so
// pie/doughnut charts still render.
func (s Series) OrNoData() Series {
	if len(s.Labels) > 0 {
		return s
	}
	return Series{Labels: []string{"暫無數據"}, Data: []float64{1}}
}
