package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "MBACONNECT"

// Load reads .env (if any), configs/config.yaml (if any) and MBACONNECT_*
// environment overrides on top of the defaults.
func Load() (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}
	return decode(v)
}

// LoadFromFile loads configuration from a specific yaml file.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	normalize(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func loadEnvFile() {
	for _, path := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(path); err == nil {
			// 이미 설정된 환경 변수는 덮어쓰지 않음
			_ = godotenv.Load(path)
			return
		}
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("llm.provider", ProviderGemini)
	v.SetDefault("llm.model", "gemini-2.5-flash")
	v.SetDefault("llm.temperature", 0.2)
	v.SetDefault("llm.api_key_env", "API_KEY")
	v.SetDefault("llm.gateway_url", "http://localhost:8000")
	v.SetDefault("llm.request_timeout", 60*time.Second)

	v.SetDefault("session.cookie_name", "mbaconnect_session")
	v.SetDefault("session.secret_env", "SESSION_SECRET")
	v.SetDefault("session.idle_ttl", time.Duration(0))
	v.SetDefault("session.secure", false)

	v.SetDefault("ratelimit.submit_per_minute", 6)
	v.SetDefault("ratelimit.burst", 3)
}

func normalize(cfg *Config) {
	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	cfg.LLM.GatewayURL = strings.TrimRight(strings.TrimSpace(cfg.LLM.GatewayURL), "/")
}

func validateConfig(cfg *Config) error {
	if strings.TrimSpace(cfg.Server.Address) == "" {
		return fmt.Errorf("server.address is required")
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("server.allowed_origins must list at least one origin (or \"*\")")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}

	switch cfg.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", cfg.Logging.Format)
	}

	switch cfg.LLM.Provider {
	case ProviderGemini:
	case ProviderGateway:
		if cfg.LLM.GatewayURL == "" {
			return fmt.Errorf("llm.gateway_url is required for the gateway provider")
		}
	default:
		return fmt.Errorf("llm.provider must be %s or %s, got %q", ProviderGemini, ProviderGateway, cfg.LLM.Provider)
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if strings.TrimSpace(cfg.LLM.APIKeyEnv) == "" {
		return fmt.Errorf("llm.api_key_env is required")
	}
	if cfg.LLM.RequestTimeout < 0 {
		return fmt.Errorf("llm.request_timeout must not be negative")
	}

	if strings.TrimSpace(cfg.Session.CookieName) == "" {
		return fmt.Errorf("session.cookie_name is required")
	}
	if cfg.Session.IdleTTL < 0 {
		return fmt.Errorf("session.idle_ttl must not be negative")
	}

	if cfg.RateLimit.SubmitPerMinute < 0 || cfg.RateLimit.Burst < 0 {
		return fmt.Errorf("ratelimit values must not be negative")
	}
	if cfg.RateLimit.SubmitPerMinute > 0 && cfg.RateLimit.Burst == 0 {
		return fmt.Errorf("ratelimit.burst must be positive when the limit is enabled")
	}
	return nil
}
