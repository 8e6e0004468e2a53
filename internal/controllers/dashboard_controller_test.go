package controllers

import (
	"admgate/internal/charts"
	"admgate/internal/models"
	"admgate/internal/render"
	"admgate/internal/sections"
	"admgate/internal/structures"
	"admgate/internal/testutil"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(api *testutil.MockUpstream) (*DashboardController, *sections.Service) {
	conf := &structures.Config{
		Upstream: structures.UpstreamConfig{Timeout: 5 * time.Second, FanOutLimit: 4},
	}
	logger := &testutil.MockLogger{}
	svc := sections.NewService(conf, logger, api, charts.NewRegistry())
	return NewDashboardController(logger, svc, render.NewRenderer()), svc
}

func TestRoot_RedirectsToOverview(t *testing.T) {
	dc, _ := newTestController(&testutil.MockUpstream{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	dc.Root(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/sections/overview", rr.Header().Get("Location"))
}

func TestRoot_UnknownPathIs404(t *testing.T) {
	dc, _ := newTestController(&testutil.MockUpstream{})

	req := httptest.NewRequest(http.MethodGet, "/favicon.ico", nil)
	rr := httptest.NewRecorder()
	dc.Root(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSection_UnknownSectionIs404(t *testing.T) {
	dc, _ := newTestController(&testutil.MockUpstream{})

	req := httptest.NewRequest(http.MethodGet, "/sections/nonexistent", nil)
	rr := httptest.NewRecorder()
	dc.Section(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSectionUsers_RendersSubscriptionStates(t *testing.T) {
	no := false
	yes := true
	api := &testutil.MockUpstream{
		UsersData: []models.UserWire{
			{UserID: "u1", Name: "王小明", IsSubscribed: &yes, ConversationCount: 3},
			{UserID: "u2", Email: "b@example.com", IsSubscribed: &no},
			{UserID: "u3"},
		},
	}
	dc, _ := newTestController(api)

	req := httptest.NewRequest(http.MethodGet, "/sections/users?w=1280", nil)
	rr := httptest.NewRecorder()
	dc.Section(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()

	assert.Contains(t, body, "王小明")
	assert.Contains(t, body, "未訂閱")
	assert.Contains(t, body, "❌ 取消訂閱", "subscribed users offer the unsubscribe action")
	// u1 subscribed, u2 unsubscribed, u3 defaults to subscribed
	assert.Equal(t, 2, strings.Count(body, "❌ 取消訂閱"))
	assert.Equal(t, 1, strings.Count(body, "✅ 啟用訂閱"))
}

func TestSectionUsers_EmptyState(t *testing.T) {
	dc, _ := newTestController(&testutil.MockUpstream{})

	req := httptest.NewRequest(http.MethodGet, "/sections/users", nil)
	rr := httptest.NewRecorder()
	dc.Section(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, strings.Count(rr.Body.String(), "暫無用戶記錄"))
}

func TestSectionUsers_LoadFailureRendersPlaceholder(t *testing.T) {
	api := &testutil.MockUpstream{UsersErr: errors.New("upstream down")}
	dc, _ := newTestController(api)

	req := httptest.NewRequest(http.MethodGet, "/sections/users", nil)
	rr := httptest.NewRecorder()
	dc.Section(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "載入失敗")
	assert.Contains(t, body, "載入用戶數據失敗", "error toast names the failed section")
}

func TestSectionOverview_EmbedsChartConfigs(t *testing.T) {
	api := &testutil.MockUpstream{
		StatisticsData: models.Statistics{TotalUsers: 10, TodayUsers: 2},
	}
	dc, _ := newTestController(api)

	req := httptest.NewRequest(http.MethodGet, "/sections/overview", nil)
	rr := httptest.NewRecorder()
	dc.Section(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "user-growth")
	assert.Contains(t, body, "mode-distribution")
}

func TestSection_MobileLayoutFromWidth(t *testing.T) {
	api := &testutil.MockUpstream{
		UsersData: []models.UserWire{{UserID: "u1"}},
	}
	dc, _ := newTestController(api)

	req := httptest.NewRequest(http.MethodGet, "/sections/users?w=375", nil)
	rr := httptest.NewRecorder()
	dc.Section(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "mobile-card")
	assert.Contains(t, body, "未命名用戶", "nameless users get the fallback label")
}

func TestSection_ToastFromQuery(t *testing.T) {
	dc, _ := newTestController(&testutil.MockUpstream{})

	req := httptest.NewRequest(http.MethodGet, "/sections/users?toast="+url.QueryEscape("已啟用訂閱")+"&toastType=success", nil)
	rr := httptest.NewRecorder()
	dc.Section(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "已啟用訂閱")
	assert.Contains(t, body, "toast-success")
}

func postForm(handler http.HandlerFunc, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestToggleSubscription_SuccessRedirect(t *testing.T) {
	api := &testutil.MockUpstream{}
	dc, _ := newTestController(api)

	rr := postForm(dc.ToggleSubscription, "/actions/subscription", url.Values{
		"user_id":   {"u1"},
		"subscribe": {"true"},
		"w":         {"1280"},
	})

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	loc, err := url.Parse(rr.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/sections/users", loc.Path)
	assert.Equal(t, "已啟用訂閱", loc.Query().Get("toast"))
	assert.Equal(t, "success", loc.Query().Get("toastType"))
	assert.Equal(t, "1280", loc.Query().Get("w"))

	require.Len(t, api.SubscriptionCalls, 1)
	assert.True(t, api.SubscriptionCalls[0].Subscribed)
}

func TestToggleSubscription_UnsubscribeToast(t *testing.T) {
	dc, _ := newTestController(&testutil.MockUpstream{})

	rr := postForm(dc.ToggleSubscription, "/actions/subscription", url.Values{
		"user_id":   {"u1"},
		"subscribe": {"false"},
	})

	loc, err := url.Parse(rr.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "已取消訂閱", loc.Query().Get("toast"))
}

func TestToggleSubscription_FailureSurfacesUpstreamMessage(t *testing.T) {
	api := &testutil.MockUpstream{SubscriptionErr: errors.New("boom")}
	dc, _ := newTestController(api)

	rr := postForm(dc.ToggleSubscription, "/actions/subscription", url.Values{
		"user_id":   {"u1"},
		"subscribe": {"true"},
	})

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	loc, err := url.Parse(rr.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "修改訂閱狀態失敗", loc.Query().Get("toast"))
	assert.Equal(t, "error", loc.Query().Get("toastType"))
}

func TestToggleSubscription_MissingUserIDIsBadRequest(t *testing.T) {
	dc, _ := newTestController(&testutil.MockUpstream{})

	rr := postForm(dc.ToggleSubscription, "/actions/subscription", url.Values{
		"subscribe": {"true"},
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteScript_SuccessRedirect(t *testing.T) {
	api := &testutil.MockUpstream{}
	dc, _ := newTestController(api)

	rr := postForm(dc.DeleteScript, "/actions/scripts/delete", url.Values{
		"id": {"17"},
	})

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	loc, err := url.Parse(rr.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/sections/scripts", loc.Path)
	assert.Equal(t, "腳本已刪除", loc.Query().Get("toast"))

	require.Len(t, api.DeleteScriptCalls, 1)
	assert.Equal(t, models.FlexID("17"), api.DeleteScriptCalls[0])
}

func TestDeleteScript_FailureToast(t *testing.T) {
	api := &testutil.MockUpstream{DeleteScriptErr: errors.New("gone")}
	dc, _ := newTestController(api)

	rr := postForm(dc.DeleteScript, "/actions/scripts/delete", url.Values{
		"id": {"17"},
	})

	loc, err := url.Parse(rr.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "刪除腳本失敗", loc.Query().Get("toast"))
	assert.Equal(t, "error", loc.Query().Get("toastType"))
}

func TestExport_StreamsCSVDownload(t *testing.T) {
	api := &testutil.MockUpstream{
		ExportData: []byte("id,title\n1,開箱腳本\n"),
		ExportType: "text/csv",
	}
	dc, _ := newTestController(api)

	req := httptest.NewRequest(http.MethodGet, "/export/scripts", nil)
	rr := httptest.NewRecorder()
	dc.Export(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `attachment; filename="scripts.csv"`, rr.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "開箱腳本")
}

func TestExport_InvalidTypeIs404(t *testing.T) {
	dc, _ := newTestController(&testutil.MockUpstream{})

	req := httptest.NewRequest(http.MethodGet, "/export/analytics", nil)
	rr := httptest.NewRecorder()
	dc.Export(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestExport_FailureProducesNoDownload(t *testing.T) {
	api := &testutil.MockUpstream{ExportErr: errors.New("export broken")}
	dc, _ := newTestController(api)

	req := httptest.NewRequest(http.MethodGet, "/export/users", nil)
	rr := httptest.NewRecorder()
	dc.Export(rr, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Disposition"))

	loc, err := url.Parse(rr.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "匯出 CSV 失敗", loc.Query().Get("toast"))
}

func TestConversationFragment_RendersTranscript(t *testing.T) {
	dc, _ := newTestController(&testutil.MockUpstream{})

	req := httptest.NewRequest(http.MethodGet, "/fragments/conversation?user_id=u1&mode=mode2_ai_consultant", nil)
	rr := httptest.NewRecorder()
	dc.ConversationFragment(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "我想要開始做短影音")
}

func TestScriptFragment_ResolvesFromSnapshot(t *testing.T) {
	api := &testutil.MockUpstream{
		ScriptsData: []models.ScriptWire{{ID: "7", Title: "開箱腳本", Content: "第一幕"}},
	}
	dc, svc := newTestController(api)

	_, err := svc.LoadScripts(t.Context())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/fragments/script?id=7", nil)
	rr := httptest.NewRecorder()
	dc.ScriptFragment(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "開箱腳本")
}

func TestScriptFragment_UnknownIDIs404(t *testing.T) {
	dc, _ := newTestController(&testutil.MockUpstream{})

	req := httptest.NewRequest(http.MethodGet, "/fragments/script?id=999", nil)
	rr := httptest.NewRecorder()
	dc.ScriptFragment(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "找不到腳本")
}
