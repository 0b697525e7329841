package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Portfolio chatbot specifics
	LLM         LLMConfig
	Portfolio   PortfolioConfig
	History     HistoryConfig
	Persistence PersistenceConfig
	RateLimit   RateLimitConfig
	Debug       DebugConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// LLMConfig holds configuration for the hosted chat-completion API.
type LLMConfig struct {
	APIKey           string
	BaseURL          string
	SiteURL          string // sent as HTTP-Referer
	SiteName         string // sent as X-Title
	Models           []ModelConfig
	MaxTokens        int
	Temperature      float64
	PresencePenalty  float64
	FrequencyPenalty float64
	Timeout          time.Duration
	RetryAttempts    int
	RetryDelay       time.Duration
	MaxTotalTimeout  time.Duration // Global timeout for the entire fallback chain
	FallbackEnabled  bool
	RequestsPerSec   float64
	Burst            int
}

// ModelConfig is a single model the provider manager may call.
type ModelConfig struct {
	Name     string
	Enabled  bool
	Priority int
}

// Configured reports whether a credential is present.
func (c LLMConfig) Configured() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// PrimaryModel returns the enabled model with the lowest priority value.
func (c LLMConfig) PrimaryModel() string {
	best := ModelConfig{}
	for _, m := range c.Models {
		if !m.Enabled {
			continue
		}
		if best.Name == "" || m.Priority < best.Priority {
			best = m
		}
	}
	return best.Name
}

type PortfolioConfig struct {
	Path  string
	Watch bool
}

type HistoryConfig struct {
	MaxTurns int
	IdleTTL  time.Duration
}

type PersistenceConfig struct {
	Backend        string // "file", "redis" or "none"
	Path           string
	EveryNMessages int
	FlushInterval  time.Duration
	Redis          RedisConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
	TTL      time.Duration
}

type RateLimitConfig struct {
	Window      time.Duration
	MaxRequests int
	MaxClients  int
}

type DebugConfig struct {
	ExposeSessions bool
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied first if present.
// Config file name: config.yaml — searched in ./config, ., /etc/portfolio-chatbot/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/portfolio-chatbot/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	if port := v.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.CORSOrigins = v.GetStringSlice("http_server.cors_origins")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// LLM
	cfg.LLM.APIKey = strings.TrimSpace(v.GetString("llm.api_key"))
	if key := strings.TrimSpace(v.GetString("openrouter_api_key")); key != "" {
		cfg.LLM.APIKey = key
	}
	cfg.LLM.BaseURL = v.GetString("llm.base_url")
	cfg.LLM.SiteURL = v.GetString("llm.site_url")
	if siteURL := v.GetString("site_url"); siteURL != "" {
		cfg.LLM.SiteURL = siteURL
	}
	cfg.LLM.SiteName = v.GetString("llm.site_name")
	if siteName := v.GetString("site_name"); siteName != "" {
		cfg.LLM.SiteName = siteName
	}
	cfg.LLM.MaxTokens = v.GetInt("llm.max_tokens")
	cfg.LLM.Temperature = v.GetFloat64("llm.temperature")
	cfg.LLM.PresencePenalty = v.GetFloat64("llm.presence_penalty")
	cfg.LLM.FrequencyPenalty = v.GetFloat64("llm.frequency_penalty")
	cfg.LLM.Timeout = v.GetDuration("llm.timeout")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetDuration("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetDuration("llm.max_total_timeout")
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RequestsPerSec = v.GetFloat64("llm.requests_per_second")
	cfg.LLM.Burst = v.GetInt("llm.burst")
	cfg.LLM.Models = loadModels(v)

	// Portfolio
	cfg.Portfolio.Path = v.GetString("portfolio.path")
	if p := v.GetString("portfolio_path"); p != "" {
		cfg.Portfolio.Path = p
	}
	cfg.Portfolio.Watch = v.GetBool("portfolio.watch")

	// History
	cfg.History.MaxTurns = v.GetInt("history.max_turns")
	if n := v.GetInt("max_history"); n != 0 {
		cfg.History.MaxTurns = n
	}
	cfg.History.IdleTTL = v.GetDuration("history.idle_ttl")

	// Persistence
	cfg.Persistence.Backend = strings.ToLower(v.GetString("persistence.backend"))
	cfg.Persistence.Path = v.GetString("persistence.path")
	if p := v.GetString("sessions_path"); p != "" {
		cfg.Persistence.Path = p
	}
	cfg.Persistence.EveryNMessages = v.GetInt("persistence.every_n_messages")
	cfg.Persistence.FlushInterval = v.GetDuration("persistence.flush_interval")
	cfg.Persistence.Redis.Addr = v.GetString("persistence.redis.addr")
	cfg.Persistence.Redis.Password = v.GetString("persistence.redis.password")
	cfg.Persistence.Redis.DB = v.GetInt("persistence.redis.db")
	cfg.Persistence.Redis.Key = v.GetString("persistence.redis.key")
	cfg.Persistence.Redis.TTL = v.GetDuration("persistence.redis.ttl")

	// Rate limit
	cfg.RateLimit.Window = v.GetDuration("rate_limit.window")
	if w := v.GetString("rate_limit_window"); w != "" {
		d, err := parseWindow(w)
		if err != nil {
			return nil, err
		}
		cfg.RateLimit.Window = d
	}
	cfg.RateLimit.MaxRequests = v.GetInt("rate_limit.max_requests")
	if n := v.GetInt("rate_limit_max_requests"); n != 0 {
		cfg.RateLimit.MaxRequests = n
	}
	cfg.RateLimit.MaxClients = v.GetInt("rate_limit.max_clients")

	cfg.Debug.ExposeSessions = v.GetBool("debug.expose_sessions")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 5000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.cors_origins", []string{"*"})
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	// LLM defaults
	v.SetDefault("llm.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("llm.site_name", "Portfolio Chatbot")
	v.SetDefault("llm.model", "deepseek/deepseek-chat-v3.1:free")
	v.SetDefault("llm.max_tokens", 500)
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.presence_penalty", 0.1)
	v.SetDefault("llm.frequency_penalty", 0.1)
	v.SetDefault("llm.timeout", "30s")
	v.SetDefault("llm.retry_attempts", 2)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "45s")
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.requests_per_second", 2)
	v.SetDefault("llm.burst", 5)

	v.SetDefault("portfolio.path", "data/portfolio.json")
	v.SetDefault("portfolio.watch", false)

	v.SetDefault("history.max_turns", 16)
	v.SetDefault("history.idle_ttl", "24h")

	v.SetDefault("persistence.backend", "file")
	v.SetDefault("persistence.path", "data/sessions.json")
	v.SetDefault("persistence.every_n_messages", 10)
	v.SetDefault("persistence.flush_interval", "5m")
	v.SetDefault("persistence.redis.addr", "localhost:6379")
	v.SetDefault("persistence.redis.key", "portfolio-chatbot:sessions")
	v.SetDefault("persistence.redis.ttl", "0s")

	v.SetDefault("rate_limit.window", "60s")
	v.SetDefault("rate_limit.max_requests", 20)
	v.SetDefault("rate_limit.max_clients", 10000)

	v.SetDefault("debug.expose_sessions", false)
}

// loadModels reads llm.models as a list of {name, enabled, priority} maps.
// A single llm.model (or OPENROUTER_MODEL) is used when no list is configured.
func loadModels(v *viper.Viper) []ModelConfig {
	var models []ModelConfig
	if v.IsSet("llm.models") {
		if list, ok := v.Get("llm.models").([]interface{}); ok {
			for _, item := range list {
				m, ok := item.(map[string]interface{})
				if !ok {
					continue
				}
				models = append(models, ModelConfig{
					Name:     getStringFromMap(m, "name"),
					Enabled:  getBoolFromMap(m, "enabled", true),
					Priority: getIntFromMap(m, "priority"),
				})
			}
		}
	}

	if len(models) == 0 {
		name := v.GetString("llm.model")
		if override := v.GetString("openrouter_model"); override != "" {
			name = override
		}
		models = append(models, ModelConfig{Name: name, Enabled: true, Priority: 1})
	}
	return models
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	if cfg.History.MaxTurns <= 0 {
		return fmt.Errorf("history.max_turns must be positive")
	}
	if cfg.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.window must be positive")
	}
	if cfg.RateLimit.MaxRequests <= 0 {
		return fmt.Errorf("rate_limit.max_requests must be positive")
	}
	switch cfg.Persistence.Backend {
	case "file", "redis", "none":
	default:
		return fmt.Errorf("persistence.backend: unknown backend %q", cfg.Persistence.Backend)
	}
	if cfg.Persistence.Backend == "file" && cfg.Persistence.Path == "" {
		return fmt.Errorf("persistence.path is required for the file backend")
	}

	enabled := 0
	for i, m := range cfg.LLM.Models {
		if m.Name == "" {
			return fmt.Errorf("llm.models[%d]: name is required", i)
		}
		if m.Enabled {
			enabled++
		}
	}
	if enabled == 0 {
		return fmt.Errorf("no enabled LLM models")
	}
	return nil
}

// parseWindow accepts either a Go duration ("90s") or a bare number of seconds ("60").
func parseWindow(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if d, err := time.ParseDuration(raw); err == nil {
		return d, nil
	}
	var secs int
	if _, err := fmt.Sscanf(raw, "%d", &secs); err != nil || secs <= 0 {
		return 0, fmt.Errorf("invalid RATE_LIMIT_WINDOW value %q", raw)
	}
	return time.Duration(secs) * time.Second, nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string, def bool) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return def
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
