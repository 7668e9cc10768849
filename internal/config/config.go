package config

import "time"

// Config is the application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Session   SessionConfig   `mapstructure:"session"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type LLMConfig struct {
	Provider    string  `mapstructure:"provider"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	// APIKeyEnv is the name of the variable holding the credential, not the credential.
	APIKeyEnv      string        `mapstructure:"api_key_env"`
	GatewayURL     string        `mapstructure:"gateway_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"` // 0 = no timeout
}

type SessionConfig struct {
	CookieName string        `mapstructure:"cookie_name"`
	SecretEnv  string        `mapstructure:"secret_env"`
	IdleTTL    time.Duration `mapstructure:"idle_ttl"` // 0 = never expire
	Secure     bool          `mapstructure:"secure"`
}

type RateLimitConfig struct {
	SubmitPerMinute int `mapstructure:"submit_per_minute"` // 0 = disabled
	Burst           int `mapstructure:"burst"`
}

const (
	ProviderGemini  = "gemini"
	ProviderGateway = "gateway"
)
