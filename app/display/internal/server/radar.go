package server

import (
	"github.com/go-kratos/kratos/v2/log"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/place_radar/app/display/internal/conf"
	"github.com/iWorld-y/place_radar/app/place_radar/pkg/config"
	prLogger "github.com/iWorld-y/place_radar/app/place_radar/pkg/logger"
	"github.com/iWorld-y/place_radar/app/place_radar/pkg/submitter"
)

// NewRadarConfig 将 internal/conf.Radar 转换为 pkg/config.Config，并初始化 place_radar 日志
func NewRadarConfig(c *conf.Radar, logger log.Logger) *config.Config {
	cfg := &config.Config{Output: config.DefaultOutput}
	if c == nil {
		return cfg
	}

	if s := c.Search; s != nil {
		cfg.Search.Provider = s.Provider
		if s.Backend != nil {
			cfg.Search.Backend = config.BackendConfig{
				BaseURL: s.Backend.BaseUrl,
				Timeout: int(s.Backend.Timeout),
			}
		}
		if s.Fixture != nil {
			cfg.Search.Fixture.Path = s.Fixture.Path
		}
	}
	if c.Log != nil {
		cfg.Log = config.LogConfig{Level: c.Log.Level, File: c.Log.File}
	}
	if c.Concurrency != nil {
		cfg.Concurrency = config.ConcurrencyConfig{
			QPS: int(c.Concurrency.Qps),
			RPM: int(c.Concurrency.Rpm),
		}
	}

	// 初始化日志
	if err := prLogger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		log.NewHelper(logger).Errorf("Failed to init place_radar logger: %v", err)
		_ = prLogger.InitLogger("info", "") // 降级处理
	}

	return cfg
}

// NewLimiter 所有请求共用一个限流器，未配置 RPM 时返回 nil
func NewLimiter(cfg *config.Config) *rate.Limiter {
	return submitter.NewLimiter(cfg.Concurrency.QPS, cfg.Concurrency.RPM)
}
