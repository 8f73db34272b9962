package config

import (
	"fmt"
	"os"
	"strings"

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

	// Session store
	Redis RedisConfig

	// Restaurant catalog
	Menu MenuConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Chat endpoint throttling
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// RedisConfig holds the session store connection. TTLSeconds applies to both session keys.
type RedisConfig struct {
	Host       string
	Port       int
	DB         int
	Password   string
	TTLSeconds int
}

// Addr returns host:port.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type MenuConfig struct {
	FilePath string
	CacheTTL string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name       string `yaml:"name"`
	Enabled    bool   `yaml:"enabled"`
	Priority   int    `yaml:"priority"`
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url,omitempty"`
	Model      string `yaml:"model"`
	Timeout    string `yaml:"timeout"`
	APIVersion string `yaml:"api_version,omitempty"` // azure only
}

type RateLimitConfig struct {
	Enabled bool
	PerMin  int
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.TTLSeconds = viper.GetInt("redis.ttl_seconds")

	if err := validateRedisConfig(&cfg.Redis); err != nil {
		return nil, err
	}

	// Menu
	cfg.Menu.FilePath = viper.GetString("menu.file_path")
	cfg.Menu.CacheTTL = viper.GetString("menu.cache_ttl")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, providerFromMap(providerMap))
				}
			}
		}
	}

	// Single Azure deployment configured purely through the environment.
	if len(cfg.LLM.Providers) == 0 {
		if p, ok := azureProviderFromEnv(); ok {
			cfg.LLM.Providers = append(cfg.LLM.Providers, p)
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	// Rate limit
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	return cfg, nil
}

// IsProduction reports whether the service runs in the production environment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment.Name, "production")
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.ttl_seconds", 3600)

	viper.SetDefault("menu.file_path", "data/menu_data.json")
	viper.SetDefault("menu.cache_ttl", "5m")

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.per_min", 60)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

func providerFromMap(m map[string]interface{}) ProviderConfig {
	return ProviderConfig{
		Name:       getStringFromMap(m, "name"),
		Enabled:    getBoolFromMap(m, "enabled"),
		Priority:   getIntFromMap(m, "priority"),
		APIKey:     expandEnvVar(getStringFromMap(m, "api_key")),
		BaseURL:    expandEnvVar(getStringFromMap(m, "base_url")),
		Model:      expandEnvVar(getStringFromMap(m, "model")),
		Timeout:    getStringFromMap(m, "timeout"),
		APIVersion: expandEnvVar(getStringFromMap(m, "api_version")),
	}
}

// azureProviderFromEnv reads MODEL, AZURE_API_KEY, AZURE_API_BASE and AZURE_API_VERSION.
func azureProviderFromEnv() (ProviderConfig, bool) {
	key := os.Getenv("AZURE_API_KEY")
	base := os.Getenv("AZURE_API_BASE")
	if key == "" || base == "" {
		return ProviderConfig{}, false
	}
	return ProviderConfig{
		Name:       "azure",
		Enabled:    true,
		Priority:   1,
		APIKey:     key,
		BaseURL:    base,
		Model:      os.Getenv("MODEL"),
		APIVersion: os.Getenv("AZURE_API_VERSION"),
	}, true
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateRedisConfig validates the session store configuration.
// Both session keys share one TTL, so it must be positive.
func validateRedisConfig(cfg *RedisConfig) error {
	if cfg.Host == "" {
		return fmt.Errorf("redis: host is required")
	}
	if cfg.Port <= 0 {
		return fmt.Errorf("redis: port must be positive")
	}
	if cfg.TTLSeconds <= 0 {
		return fmt.Errorf("redis: ttl_seconds must be positive, got %d", cfg.TTLSeconds)
	}
	return nil
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml or set AZURE_API_KEY/AZURE_API_BASE")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
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

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
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
