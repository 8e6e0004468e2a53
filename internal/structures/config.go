package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type UpstreamConfig struct {
	BaseURL     string        `yaml:"baseUrl" validate:"required|fullUrl"`
	Timeout     time.Duration `yaml:"timeout" validate:"required|min:1"`
	FanOut      bool          `yaml:"fanOut"`
	FanOutLimit int           `yaml:"fanOutLimit"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type RefreshConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server         `yaml:"webServer"`
	Upstream  UpstreamConfig `yaml:"upstream"`
	Logger    LoggerConfig   `yaml:"logger"`
	Cache     CacheConfig    `yaml:"cache"`
	Metrics   MetricsConfig  `yaml:"metrics"`
	Refresh   RefreshConfig  `yaml:"refresh"`
}
