package factory

import (
	"fmt"

	"github.com/iWorld-y/place_radar/app/place_radar/pkg/backend"
	"github.com/iWorld-y/place_radar/app/place_radar/pkg/config"
	"github.com/iWorld-y/place_radar/app/place_radar/pkg/fixture"
	"github.com/iWorld-y/place_radar/app/place_radar/pkg/search"
)

// NewSearcher 根据配置创建搜索实例
func NewSearcher(cfg *config.Config) (search.Searcher, error) {
	provider := cfg.Search.Provider
	if provider == "" {
		// 默认回退逻辑：配置了后端地址则使用 http
		if cfg.Search.Backend.BaseURL != "" {
			provider = "http"
		} else {
			return nil, fmt.Errorf("search provider not configured")
		}
	}

	switch provider {
	case "http":
		baseURL := cfg.Search.Backend.BaseURL
		if baseURL == "" {
			return nil, fmt.Errorf("backend base url is missing")
		}
		return backend.NewClient(baseURL, cfg.Search.Backend.Timeout), nil

	case "fixture":
		path := cfg.Search.Fixture.Path
		if path == "" {
			return nil, fmt.Errorf("fixture path is missing")
		}
		return fixture.NewClient(path), nil

	default:
		return nil, fmt.Errorf("unknown search provider: %s", provider)
	}
}
