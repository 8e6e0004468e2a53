package providers

import (
	"admgate/internal/structures"
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"strings"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("upstream.baseUrl", "ADMGATE_UPSTREAM_URL")
	viper.BindEnv("upstream.timeout", "ADMGATE_UPSTREAM_TIMEOUT")
	viper.BindEnv("upstream.fanOut", "ADMGATE_FANOUT")
	viper.BindEnv("logger.level", "ADMGATE_LOG_LEVEL")
	viper.BindEnv("cache.enabled", "ADMGATE_CACHE_ENABLED")
	viper.BindEnv("cache.size", "ADMGATE_CACHE_SIZE")
	viper.BindEnv("refresh.interval", "ADMGATE_REFRESH_INTERVAL")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	if conf.Upstream.FanOutLimit <= 0 {
		conf.Upstream.FanOutLimit = 8
	}

	conf.AppName = "AdminDashboardGateway"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
