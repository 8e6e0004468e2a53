package models

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexID_NumberToken(t *testing.T) {
	var s ScriptWire
	require.NoError(t, json.Unmarshal([]byte(`{"id": 42}`), &s))
	assert.Equal(t, FlexID("42"), s.ID)
}

func TestFlexID_StringToken(t *testing.T) {
	var s ScriptWire
	require.NoError(t, json.Unmarshal([]byte(`{"id": "abc-123"}`), &s))
	assert.Equal(t, FlexID("abc-123"), s.ID)
}

func TestFlexID_PreservesExactNumberText(t *testing.T) {
	// 64-bit ids must not round-trip through float64
	var s ScriptWire
	require.NoError(t, json.Unmarshal([]byte(`{"id": 9007199254740993}`), &s))
	assert.Equal(t, "9007199254740993", s.ID.String())
}

func TestFlexID_Null(t *testing.T) {
	var s ScriptWire
	require.NoError(t, json.Unmarshal([]byte(`{"id": null}`), &s))
	assert.Equal(t, FlexID(""), s.ID)
}

func TestUserNormalize_DefaultSubscribed(t *testing.T) {
	u := UserWire{UserID: "u1"}.Normalize()
	assert.True(t, u.Subscribed, "missing is_subscribed counts as subscribed")
}

func TestUserNormalize_ExplicitUnsubscribed(t *testing.T) {
	no := false
	u := UserWire{UserID: "u1", IsSubscribed: &no}.Normalize()
	assert.False(t, u.Subscribed)
}

func TestUserNormalize_ExplicitSubscribed(t *testing.T) {
	yes := true
	u := UserWire{UserID: "u1", IsSubscribed: &yes}.Normalize()
	assert.True(t, u.Subscribed)
}

func TestUserNormalize_NegativeCountsClamped(t *testing.T) {
	u := UserWire{UserID: "u1", ConversationCount: -3, ScriptCount: -1}.Normalize()
	assert.Equal(t, 0, u.ConversationCount)
	assert.Equal(t, 0, u.ScriptCount)
}

func TestConversationNormalize_ModeFallback(t *testing.T) {
	c := ConversationWire{ConversationType: "mode2_ai_consultant"}.Normalize("u1")
	assert.Equal(t, "mode2_ai_consultant", c.Mode)
	assert.Equal(t, "u1", c.UserID)
}

func TestConversationNormalize_ModeWins(t *testing.T) {
	c := ConversationWire{Mode: "mode1_quick_generate", ConversationType: "other"}.Normalize("")
	assert.Equal(t, "mode1_quick_generate", c.Mode)
}

func TestScriptNormalize_Fallbacks(t *testing.T) {
	s := ScriptWire{
		Name:         "腳本一",
		Topic:        "美食",
		CreatedAtAlt: "2024-01-15T10:00:00",
	}.Normalize("owner")
	assert.Equal(t, "腳本一", s.Title)
	assert.Equal(t, "美食", s.Category)
	assert.Equal(t, "2024-01-15T10:00:00", s.CreatedAt)
	assert.Equal(t, "owner", s.UserID)
}

func TestScriptNormalize_CanonicalFieldsWin(t *testing.T) {
	s := ScriptWire{
		UserID:    "u9",
		Title:     "canonical",
		Name:      "alias",
		Category:  "cat",
		Topic:     "topic",
		CreatedAt: "2024-01-01",
	}.Normalize("owner")
	assert.Equal(t, "canonical", s.Title)
	assert.Equal(t, "cat", s.Category)
	assert.Equal(t, "2024-01-01", s.CreatedAt)
	assert.Equal(t, "u9", s.UserID)
}

func TestActivityNormalize_NameFallback(t *testing.T) {
	a := ActivityWire{Name: "新用戶註冊"}.Normalize()
	assert.Equal(t, "新用戶註冊", a.Title)
}

func TestModeStatisticsNormalize(t *testing.T) {
	var r ModeStatisticsResponse
	body := `{
		"mode_stats": {
			"mode1_quick_generate": {"count": 10, "success_rate": 85.5},
			"mode2_ai_consultant": {"count": 5, "avg_turns": 6.2},
			"mode3_ip_planning": {"count": 2, "profiles_generated": 7}
		},
		"time_distribution": {"06:00-12:00": 4, "18:00-24:00": 9}
	}`
	require.NoError(t, json.Unmarshal([]byte(body), &r))

	m := r.Normalize()
	assert.Equal(t, 10, m.QuickGenerateCount)
	assert.Equal(t, 85.5, m.SuccessRate)
	assert.Equal(t, 5, m.AIConsultantCount)
	assert.Equal(t, 6.2, m.AvgTurns)
	assert.Equal(t, 2, m.IPPlanningCount)
	assert.Equal(t, 7, m.ProfilesGenerated)
	assert.Equal(t, [4]int{0, 4, 0, 9}, m.TimeDistribution)
}

func TestModeStatisticsNormalize_EmptyResponse(t *testing.T) {
	m := ModeStatisticsResponse{}.Normalize()
	assert.Equal(t, [4]int{0, 0, 0, 0}, m.TimeDistribution)
	assert.Equal(t, 0, m.QuickGenerateCount)
}

func TestSeriesOrDefault(t *testing.T) {
	fallback := []string{"一", "二", "三"}
	s := Series{}.OrDefault(fallback)
	assert.Equal(t, fallback, s.Labels)
	assert.Equal(t, []float64{0, 0, 0}, s.Data)

	filled := Series{Labels: []string{"a"}, Data: []float64{5}}
	assert.Equal(t, filled, filled.OrDefault(fallback))
}

func TestSeriesOrNoData(t *testing.T) {
	s := Series{}.OrNoData()
	assert.Equal(t, []string{"暫無數據"}, s.Labels)
	assert.Equal(t, []float64{1}, s.Data)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2024/01/15 10:30", FormatDate("2024-01-15T10:30:00"))
	assert.Equal(t, "2024/01/15 00:00", FormatDate("2024-01-15"))
	assert.Equal(t, "-", FormatDate(""))
	assert.Equal(t, "-", FormatDate("not-a-date"))
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "3 天前", TimeAgo("2024-01-12T11:00:00Z", now))
	assert.Equal(t, "5 小時前", TimeAgo("2024-01-15T07:00:00Z", now))
	assert.Equal(t, "30 分鐘前", TimeAgo("2024-01-15T11:30:00Z", now))
	assert.Equal(t, "剛剛", TimeAgo("2024-01-15T11:59:40Z", now))
	assert.Equal(t, "未知時間", TimeAgo("", now))
	assert.Equal(t, "未知時間", TimeAgo("garbage", now))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hel...", Truncate("hello", 3))
	assert.Equal(t, "這是一段...", Truncate("這是一段很長的摘要", 4))
}
