package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultPort 是未配置端口时的监听端口。
	DefaultPort = 3000
	// PortEnv 是覆盖监听端口的环境变量。
	PortEnv = "PORT"
	// PathEnv 指定配置文件路径的环境变量。
	PathEnv = "CONFIG_PATH"
	// DefaultPath 是默认的配置文件路径。
	DefaultPath = "config.yaml"
)

// AppInfo 对应 'app' 部分，包含应用程序的基本信息。
type AppInfo struct {
	Name        string `yaml:"name"`        // 应用程序名称
	Version     string `yaml:"version"`     // 应用程序版本
	Environment string `yaml:"environment"` // 运行环境 (例如: "development", "production")
}

// ServerConfig 定义了 HTTP 服务的监听与超时配置。
type ServerConfig struct {
	Port            int    `yaml:"port"`            // 监听端口
	ReadTimeout     string `yaml:"readTimeout"`     // 例如: "10s"
	WriteTimeout    string `yaml:"writeTimeout"`    // 例如: "10s"
	ShutdownTimeout string `yaml:"shutdownTimeout"` // 优雅关闭的最长等待时间
}

// Address 返回 http.Server 使用的监听地址。
func (s ServerConfig) Address() string {
	return ":" + strconv.Itoa(s.Port)
}

// LoggerConfig 定义了日志记录器的配置。
type LoggerConfig struct {
	Level string `yaml:"level"` // 日志级别 (例如: "info", "debug", "warn", "error")
}

// MiddlewareConfig 包含所有中间件的配置。
type MiddlewareConfig struct {
	RateLimiter    RateLimiterConfig    `yaml:"rateLimiter"`
	CircuitBreaker CircuitBreakerConfig `yaml:"circuitBreaker"`
}

// RateLimiterConfig 定义了限流器的配置。
type RateLimiterConfig struct {
	Enabled        bool                 `yaml:"enabled"`
	Algorithm      string               `yaml:"algorithm"` // 支持: "tokenBucket", "leakyBucket", "fixedWindow", "slidingLog", "slidingCounter"
	TokenBucket    TokenBucketConfig    `yaml:"tokenBucket"`
	LeakyBucket    LeakyBucketConfig    `yaml:"leakyBucket"`
	FixedWindow    FixedWindowConfig    `yaml:"fixedWindow"`
	SlidingLog     SlidingLogConfig     `yaml:"slidingLog"`
	SlidingCounter SlidingCounterConfig `yaml:"slidingCounter"`
}

// TokenBucketConfig 定义了令牌桶算法的配置。
type TokenBucketConfig struct {
	Rate     float64 `yaml:"rate"` // 每秒速率
	Capacity int     `yaml:"capacity"`
}

// LeakyBucketConfig 定义了漏桶算法的配置。
type LeakyBucketConfig struct {
	Rate     float64 `yaml:"rate"` // 每秒流出速率
	Capacity int     `yaml:"capacity"`
}

// FixedWindowConfig 定义了固定窗口计数器算法的配置。
type FixedWindowConfig struct {
	Limit  int    `yaml:"limit"`
	Window string `yaml:"window"` // 例如: "1m", "30s"
}

// SlidingLogConfig 定义了滑动窗口日志算法的配置。
type SlidingLogConfig struct {
	Limit  int    `yaml:"limit"`
	Window string `yaml:"window"`
}

// SlidingCounterConfig 定义了滑动窗口计数器算法的配置。
type SlidingCounterConfig struct {
	Limit      int    `yaml:"limit"`
	Window     string `yaml:"window"`
	NumBuckets int    `yaml:"numBuckets"`
}

// CircuitBreakerConfig 定义了熔断器的配置。
type CircuitBreakerConfig struct {
	Enabled          bool   `yaml:"enabled"`
	FailureThreshold uint32 `yaml:"failureThreshold"`
	SuccessThreshold uint32 `yaml:"successThreshold"`
	Timeout          string `yaml:"timeout"` // 例如: "30s"
}

// AppConfig 是整个 YAML 文件的根结构。
type AppConfig struct {
	App        AppInfo          `yaml:"app"`
	Server     ServerConfig     `yaml:"server"`
	Logger     LoggerConfig     `yaml:"logger"`
	Middleware MiddlewareConfig `yaml:"middleware"`
}

// Default 返回不依赖任何配置文件的默认配置。
func Default() *AppConfig {
	return &AppConfig{
		App: AppInfo{
			Name:        "devops-facts",
			Version:     "1.0.0",
			Environment: "development",
		},
		Server: ServerConfig{
			Port:            DefaultPort,
			ReadTimeout:     "10s",
			WriteTimeout:    "10s",
			ShutdownTimeout: "5s",
		},
		Logger: LoggerConfig{Level: "info"},
	}
}

// LoadConfig 从指定路径加载 YAML 配置文件，文件不存在时使用默认配置，
// 最后应用 PORT 环境变量。
//
// 参数:
//
//	path: YAML 配置文件的路径。
//
// 返回值:
//
//	*AppConfig: 解析后的配置。
//	error: 文件读取、解析或校验失败时返回错误。
func LoadConfig(path string) (*AppConfig, error) {
	cfg := Default()

	yamlFile, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// 没有配置文件时直接使用默认值。
	case err != nil:
		return nil, fmt.Errorf("无法读取 YAML 文件 '%s': %w", path, err)
	default:
		if err := yaml.Unmarshal(yamlFile, cfg); err != nil {
			return nil, fmt.Errorf("解析 YAML 文件失败: %w", err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path 返回配置文件路径，优先使用 CONFIG_PATH 环境变量。
func Path() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	return DefaultPath
}

// ApplyEnv 用环境变量覆盖配置。lookup 通常是 os.LookupEnv。
func (c *AppConfig) ApplyEnv(lookup func(string) (string, bool)) error {
	raw, ok := lookup(PortEnv)
	if !ok || raw == "" {
		return nil
	}
	port, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("环境变量 %s 不是有效端口 %q: %w", PortEnv, raw, err)
	}
	c.Server.Port = port
	return nil
}

// Validate 校验端口范围和所有时间间隔字段。
func (c *AppConfig) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("端口超出范围 (1-65535): %d", c.Server.Port)
	}
	durations := []struct{ field, value string }{
		{"server.readTimeout", c.Server.ReadTimeout},
		{"server.writeTimeout", c.Server.WriteTimeout},
		{"server.shutdownTimeout", c.Server.ShutdownTimeout},
		{"middleware.circuitBreaker.timeout", c.Middleware.CircuitBreaker.Timeout},
		{"middleware.rateLimiter.fixedWindow.window", c.Middleware.RateLimiter.FixedWindow.Window},
		{"middleware.rateLimiter.slidingLog.window", c.Middleware.RateLimiter.SlidingLog.Window},
		{"middleware.rateLimiter.slidingCounter.window", c.Middleware.RateLimiter.SlidingCounter.Window},
	}
	for _, d := range durations {
		if d.value == "" {
			continue
		}
		if _, err := time.ParseDuration(d.value); err != nil {
			return fmt.Errorf("无效的时间间隔 %s=%q: %w", d.field, d.value, err)
		}
	}
	return nil
}

// Duration 解析时间间隔字符串，空字符串返回 fallback。调用前应已通过 Validate。
func Duration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
