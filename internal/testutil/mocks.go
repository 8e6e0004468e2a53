package testutil

import (
	"admgate/internal/models"
	"admgate/internal/providers"
	"context"
	"sync"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// CountByLevel reports how many entries were recorded at the given level.
func (m *MockLogger) CountByLevel(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
}

// MockUpstream implements upstream.Client with injectable data and errors.
type MockUpstream struct {
	mu sync.Mutex

	StatisticsData models.Statistics
	StatisticsErr  error

	ModeStatsData models.ModeStatisticsResponse
	ModeStatsErr  error

	ActivitiesData []models.ActivityWire
	ActivitiesErr  error

	UsersData []models.UserWire
	UsersErr  error

	SubscriptionErr   error
	SubscriptionCalls []SubscriptionCall

	ConversationsData    []models.ConversationWire
	ConversationsErr     error
	PerUserConversations map[string][]models.ConversationWire
	PerUserConvErrs      map[string]error

	ScriptsData    []models.ScriptWire
	ScriptsErr     error
	PerUserScripts map[string][]models.ScriptWire

	DeleteScriptErr   error
	DeleteScriptCalls []models.FlexID

	GenerationsData []models.GenerationWire
	GenerationsErr  error

	AnalyticsDataValue models.AnalyticsData
	AnalyticsErr       error

	ExportData []byte
	ExportType string
	ExportErr  error
}

type SubscriptionCall struct {
	UserID     string
	Subscribed bool
}

func (m *MockUpstream) Statistics(_ context.Context) (models.Statistics, error) {
	return m.StatisticsData, m.StatisticsErr
}

func (m *MockUpstream) ModeStatistics(_ context.Context) (models.ModeStatisticsResponse, error) {
	return m.ModeStatsData, m.ModeStatsErr
}

func (m *MockUpstream) UserActivities(_ context.Context) ([]models.ActivityWire, error) {
	return m.ActivitiesData, m.ActivitiesErr
}

func (m *MockUpstream) Users(_ context.Context) ([]models.UserWire, error) {
	return m.UsersData, m.UsersErr
}

func (m *MockUpstream) SetSubscription(_ context.Context, userID string, subscribed bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SubscriptionErr != nil {
		return m.SubscriptionErr
	}
	m.SubscriptionCalls = append(m.SubscriptionCalls, SubscriptionCall{UserID: userID, Subscribed: subscribed})
	return nil
}

func (m *MockUpstream) Conversations(_ context.Context) ([]models.ConversationWire, error) {
	return m.ConversationsData, m.ConversationsErr
}

func (m *MockUpstream) UserConversations(_ context.Context, userID string) ([]models.ConversationWire, error) {
	if err, ok := m.PerUserConvErrs[userID]; ok {
		return nil, err
	}
	return m.PerUserConversations[userID], nil
}

func (m *MockUpstream) Scripts(_ context.Context) ([]models.ScriptWire, error) {
	return m.ScriptsData, m.ScriptsErr
}

func (m *MockUpstream) UserScripts(_ context.Context, userID string) ([]models.ScriptWire, error) {
	return m.PerUserScripts[userID], nil
}

func (m *MockUpstream) DeleteScript(_ context.Context, id models.FlexID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteScriptErr != nil {
		return m.DeleteScriptErr
	}
	m.DeleteScriptCalls = append(m.DeleteScriptCalls, id)
	return nil
}

func (m *MockUpstream) Generations(_ context.Context) ([]models.GenerationWire, error) {
	return m.GenerationsData, m.GenerationsErr
}

func (m *MockUpstream) AnalyticsData(_ context.Context) (models.AnalyticsData, error) {
	return m.AnalyticsDataValue, m.AnalyticsErr
}

func (m *MockUpstream) Export(_ context.Context, exportType string) ([]byte, string, error) {
	if m.ExportErr != nil {
		return nil, "", m.ExportErr
	}
	return m.ExportData, m.ExportType, nil
}
