package controllers

import (
	"admgate/internal/charts"
	"admgate/internal/structures"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_ReportsStatusAndUpstream(t *testing.T) {
	conf := &structures.Config{
		Upstream: structures.UpstreamConfig{BaseURL: "http://upstream:3000"},
	}
	registry := charts.NewRegistry()
	registry.Replace(charts.SlotUserGrowth, &charts.Config{Type: "line"})

	hc := NewHealthController(conf, registry)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp struct {
		Status     string `json:"status"`
		Upstream   string `json:"upstream"`
		ChartSlots int    `json:"chart_slots"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "http://upstream:3000", resp.Upstream)
	assert.Equal(t, 1, resp.ChartSlots)
}

func TestHealth_RejectsNonGet(t *testing.T) {
	hc := NewHealthController(&structures.Config{}, charts.NewRegistry())

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0h0m5s", formatDuration(5*time.Second))
	assert.Equal(t, "1h1m1s", formatDuration(time.Hour+time.Minute+time.Second))
	assert.Equal(t, "25h0m0s", formatDuration(25*time.Hour))
}
