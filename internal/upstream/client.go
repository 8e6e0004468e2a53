package upstream

import (
	"admgate/internal/models"
	"admgate/internal/providers"
	"admgate/internal/structures"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

const maxResponseBodySize = 16 << 20 // 16 MB

// Client is the typed surface over the admin REST API.
type Client interface {
	Statistics(ctx context.Context) (models.Statistics, error)
	ModeStatistics(ctx context.Context) (models.ModeStatisticsResponse, error)
	UserActivities(ctx context.Context) ([]models.ActivityWire, error)
	Users(ctx context.Context) ([]models.UserWire, error)
	SetSubscription(ctx context.Context, userID string, subscribed bool) error
	Conversations(ctx context.Context) ([]models.ConversationWire, error)
	UserConversations(ctx context.Context, userID string) ([]models.ConversationWire, error)
	Scripts(ctx context.Context) ([]models.ScriptWire, error)
	UserScripts(ctx context.Context, userID string) ([]models.ScriptWire, error)
	DeleteScript(ctx context.Context, id models.FlexID) error
	Generations(ctx context.Context) ([]models.GenerationWire, error)
	AnalyticsData(ctx context.Context) (models.AnalyticsData, error)
	Export(ctx context.Context, exportType string) ([]byte, string, error)
}

// StatusError reports a non-2xx upstream response, carrying the server's
// error message when the body was JSON.
type StatusError struct {
	Endpoint string
	Code     int
	Message  string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream %s: status %d: %s", e.Endpoint, e.Code, e.Message)
	}
	return fmt.Sprintf("upstream %s: status %d", e.Endpoint, e.Code)
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  providers.Logger
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
}

func NewClient(conf *structures.Config, logger providers.Logger, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) Client {
	return &HTTPClient{
		baseURL: strings.TrimRight(conf.Upstream.BaseURL, "/"),
		http:    &http.Client{Timeout: conf.Upstream.Timeout},
		logger:  logger,
		cache:   cache,
		metrics: metrics,
	}
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint string, body []byte) ([]byte, string, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, "", fmt.Errorf("upstream %s: %w", endpoint, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	label := metricLabel(endpoint)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.IncUpstreamRequests(label, 0)
		return nil, "", fmt.Errorf("upstream %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	c.metrics.IncUpstreamRequests(label, resp.StatusCode)
	c.metrics.ObserveUpstreamDuration(label, time.Since(start))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, "", fmt.Errorf("upstream %s: reading body: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Endpoint: endpoint, Code: resp.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &errBody) == nil {
			se.Message = errBody.Error
		}
		return nil, "", se
	}

	return raw, resp.Header.Get("Content-Type"), nil
}

// metricLabel collapses per-record endpoints so user and script ids never
// become metric label values.
func metricLabel(endpoint string) string {
	if i := strings.IndexByte(endpoint, '?'); i >= 0 {
		endpoint = endpoint[:i]
	}
	for _, prefix := range []string{"/admin/users/", "/admin/scripts/", "/admin/export/", "/user/conversations/"} {
		if strings.HasPrefix(endpoint, prefix) {
			return prefix + "*"
		}
	}
	return endpoint
}

// getJSON fetches endpoint into dest, serving and filling the response cache.
func (c *HTTPClient) getJSON(ctx context.Context, endpoint string, dest any) error {
	if raw, ok := c.cache.Get(endpoint); ok {
		if err := json.Unmarshal(raw, dest); err == nil {
			return nil
		}
		// A cached body that no longer decodes is dropped and refetched.
		c.cache.Del(endpoint)
	}

	raw, _, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("upstream %s: decoding response: %w", endpoint, err)
	}
	c.cache.Set(endpoint, raw)
	return nil
}

func (c *HTTPClient) Statistics(ctx context.Context) (models.Statistics, error) {
	var stats models.Statistics
	err := c.getJSON(ctx, "/admin/statistics", &stats)
	return stats, err
}

func (c *HTTPClient) ModeStatistics(ctx context.Context) (models.ModeStatisticsResponse, error) {
	var resp models.ModeStatisticsResponse
	err := c.getJSON(ctx, "/admin/mode-statistics", &resp)
	return resp, err
}

func (c *HTTPClient) UserActivities(ctx context.Context) ([]models.ActivityWire, error) {
	var resp models.ActivitiesResponse
	err := c.getJSON(ctx, "/admin/user-activities", &resp)
	return resp.Activities, err
}

func (c *HTTPClient) Users(ctx context.Context) ([]models.UserWire, error) {
	var resp models.UsersResponse
	err := c.getJSON(ctx, "/admin/users", &resp)
	return resp.Users, err
}

func (c *HTTPClient) SetSubscription(ctx context.Context, userID string, subscribed bool) error {
	body, err := json.Marshal(map[string]bool{"is_subscribed": subscribed})
	if err != nil {
		return err
	}
	endpoint := "/admin/users/" + url.PathEscape(userID) + "/subscription"
	if _, _, err := c.do(ctx, http.MethodPut, endpoint, body); err != nil {
		return err
	}
	c.cache.Del("/admin/users")
	return nil
}

func (c *HTTPClient) Conversations(ctx context.Context) ([]models.ConversationWire, error) {
	var resp models.ConversationsResponse
	err := c.getJSON(ctx, "/admin/conversations", &resp)
	return resp.Conversations, err
}

func (c *HTTPClient) UserConversations(ctx context.Context, userID string) ([]models.ConversationWire, error) {
	var resp models.ConversationsResponse
	err := c.getJSON(ctx, "/user/conversations/"+url.PathEscape(userID), &resp)
	return resp.Conversations, err
}

func (c *HTTPClient) Scripts(ctx context.Context) ([]models.ScriptWire, error) {
	var resp models.ScriptsResponse
	err := c.getJSON(ctx, "/admin/scripts", &resp)
	return resp.Scripts, err
}

func (c *HTTPClient) UserScripts(ctx context.Context, userID string) ([]models.ScriptWire, error) {
	var resp models.ScriptsResponse
	err := c.getJSON(ctx, "/scripts/my?user_id="+url.QueryEscape(userID), &resp)
	return resp.Scripts, err
}

func (c *HTTPClient) DeleteScript(ctx context.Context, id models.FlexID) error {
	endpoint := "/admin/scripts/" + url.PathEscape(id.String())
	if _, _, err := c.do(ctx, http.MethodDelete, endpoint, nil); err != nil {
		return err
	}
	c.cache.Del("/admin/scripts")
	return nil
}

func (c *HTTPClient) Generations(ctx context.Context) ([]models.GenerationWire, error) {
	var resp models.GenerationsResponse
	err := c.getJSON(ctx, "/admin/generations", &resp)
	return resp.Generations, err
}

func (c *HTTPClient) AnalyticsData(ctx context.Context) (models.AnalyticsData, error) {
	var data models.AnalyticsData
	err := c.getJSON(ctx, "/admin/analytics-data", &data)
	return data, err
}

// Export streams the CSV blob for the given export type. Never cached.
func (c *HTTPClient) Export(ctx context.Context, exportType string) ([]byte, string, error) {
	return c.do(ctx, http.MethodGet, "/admin/export/"+url.PathEscape(exportType), nil)
}
