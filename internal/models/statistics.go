package models

// Statistics mirrors /admin/statistics. Missing fields decode to zero, which
// is also the displayed fallback.
type Statistics struct {
	TotalUsers         int `json:"total_users"`
	TotalConversations int `json:"total_conversations"`
	TotalScripts       int `json:"total_scripts"`
	TotalPositioning   int `json:"total_positioning"`
	TodayUsers         int `json:"today_users"`
}

type ActivityWire struct {
	Icon  string `json:"icon"`
	Type  string `json:"type"`
	Title string `json:"title"`
	Name  string `json:"name"`
	Time  string `json:"time"`
}

type ActivitiesResponse struct {
	Activities []ActivityWire `json:"activities"`
}

type Activity struct {
	Icon  string
	Type  string
	Title string
	Time  string
}

func (w ActivityWire) Normalize() Activity {
	a := Activity{Icon: w.Icon, Type: w.Type, Title: w.Title, Time: w.Time}
	if a.Title == "" {
		a.Title = w.Name
	}
	return a
}

func NormalizeActivities(wires []ActivityWire) []Activity {
	acts := make([]Activity, 0, len(wires))
	for _, w := range wires {
		acts = append(acts, w.Normalize())
	}
	return acts
}
