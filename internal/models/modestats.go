package models

// TimeBuckets are the four 6-hour histogram buckets of the
// /admin/mode-statistics time_distribution field.
var TimeBuckets = [4]string{"00:00-06:00", "06:00-12:00", "12:00-18:00", "18:00-24:00"}

type modeStatWire struct {
	Count             int     `json:"count"`
	SuccessRate       float64 `json:"success_rate"`
	AvgTurns          float64 `json:"avg_turns"`
	ProfilesGenerated int     `json:"profiles_generated"`
}

type ModeStatisticsResponse struct {
	ModeStats struct {
		QuickGenerate modeStatWire `json:"mode1_quick_generate"`
		AIConsultant  modeStatWire `json:"mode2_ai_consultant"`
		IPPlanning    modeStatWire `json:"mode3_ip_planning"`
	} `json:"mode_stats"`
	TimeDistribution map[string]int `json:"time_distribution"`
}

type ModeStats struct {
	QuickGenerateCount int
	SuccessRate        float64
	AIConsultantCount  int
	AvgTurns           float64
	IPPlanningCount    int
	ProfilesGenerated  int
	TimeDistribution   [4]int
}

// Normalize flattens the per-mode stats and zero-fills missing histogram
// buckets.
func (r ModeStatisticsResponse) Normalize() ModeStats {
	m := ModeStats{
		QuickGenerateCount: max(r.ModeStats.QuickGenerate.Count, 0),
		SuccessRate:        r.ModeStats.QuickGenerate.SuccessRate,
		AIConsultantCount:  max(r.ModeStats.AIConsultant.Count, 0),
		AvgTurns:           r.ModeStats.AIConsultant.AvgTurns,
		IPPlanningCount:    max(r.ModeStats.IPPlanning.Count, 0),
		ProfilesGenerated:  max(r.ModeStats.IPPlanning.ProfilesGenerated, 0),
	}
	for i, bucket := range TimeBuckets {
		m.TimeDistribution[i] = r.TimeDistribution[bucket]
	}
	return m
}
