package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultOutput 默认的 HTML 快照路径
const DefaultOutput = "output/index.html"

// Config 项目配置结构体
type Config struct {
	Search      SearchConfig      `yaml:"search"`
	Log         LogConfig         `yaml:"log"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      string            `yaml:"output"` // HTML 快照输出路径
}

// SearchConfig 搜索相关配置
type SearchConfig struct {
	Provider string        `yaml:"provider"` // http or fixture
	Backend  BackendConfig `yaml:"backend"`
	Fixture  FixtureConfig `yaml:"fixture"`
}

// BackendConfig 后端 /search 接口配置
type BackendConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"` // 秒
}

// FixtureConfig 离线回放配置
type FixtureConfig struct {
	Path string `yaml:"path"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ConcurrencyConfig 请求节流配置，RPM 为 0 时不限流
type ConcurrencyConfig struct {
	QPS int `yaml:"qps"`
	RPM int `yaml:"rpm"`
}

// LoadConfig 从指定路径加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}

	return &cfg, nil
}
