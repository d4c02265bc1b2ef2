package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
		// TrustedProxies is handed to gin; empty trusts no proxy.
		TrustedProxies []string `yaml:"trusted_proxies" env:"SERVER_TRUSTED_PROXIES"`
	} `yaml:"server"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Admin struct {
		Username string `yaml:"username" env:"ADMIN_USERNAME"`
		Password string `yaml:"password" env:"ADMIN_PASSWORD"`
	} `yaml:"admin"`

	Scholarship struct {
		DefaultPercentage int `yaml:"default_percentage" env:"SCHOLARSHIP_DEFAULT_PERCENTAGE"`
	} `yaml:"scholarship"`

	Voice struct {
		PublicKey     string  `yaml:"public_key" env:"VAPI_PUBLIC_KEY"`
		AssistantID   string  `yaml:"assistant_id" env:"VAPI_ASSISTANT_ID"`
		WebhookSecret string  `yaml:"webhook_secret" env:"VAPI_WEBHOOK_SECRET"`
		ServerURL     string  `yaml:"server_url" env:"VAPI_SERVER_URL"`
		ModelProvider string  `yaml:"model_provider" env:"VAPI_MODEL_PROVIDER"`
		Model         string  `yaml:"model" env:"VAPI_MODEL"`
		Temperature   float64 `yaml:"temperature" env:"VAPI_TEMPERATURE"`
		MaxTokens     int     `yaml:"max_tokens" env:"VAPI_MAX_TOKENS"`
		VoiceProvider string  `yaml:"voice_provider" env:"VAPI_VOICE_PROVIDER"`
		VoiceID       string  `yaml:"voice_id" env:"VAPI_VOICE_ID"`
	} `yaml:"voice"`

	RateLimit struct {
		WebhookRPS   float64 `yaml:"webhook_rps" env:"RATELIMIT_WEBHOOK_RPS"`
		WebhookBurst int     `yaml:"webhook_burst" env:"RATELIMIT_WEBHOOK_BURST"`
	} `yaml:"ratelimit"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The file is optional; defaults and env vars are enough to boot.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.JWT.AccessTokenExpiration = "1h"
	config.JWT.Issuer = "counselor.admissions"

	config.Admin.Username = "admin"

	config.Scholarship.DefaultPercentage = 20

	config.Voice.ModelProvider = "openai"
	config.Voice.Model = "gpt-4o"
	config.Voice.Temperature = 0.3
	config.Voice.MaxTokens = 300
	config.Voice.VoiceProvider = "11labs"
	config.Voice.VoiceID = "21m00Tcm4TlvDq8ikWAM"

	config.RateLimit.WebhookRPS = 20
	config.RateLimit.WebhookBurst = 40

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// placeholderJWTSecret is the secret shipped in configs/config.yaml.
const placeholderJWTSecret = "change-me-in-production"

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if config.IsProduction() && config.JWT.Secret == placeholderJWTSecret {
		return fmt.Errorf("JWT secret must be changed from the example value in production")
	}

	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}

	if p := config.Scholarship.DefaultPercentage; p < 0 || p > 100 {
		return fmt.Errorf("scholarship default percentage must be between 0 and 100, got %d", p)
	}

	if config.RateLimit.WebhookRPS <= 0 || config.RateLimit.WebhookBurst <= 0 {
		return fmt.Errorf("webhook rate limit must be positive")
	}

	switch strings.ToLower(config.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log format must be json or text, got %q", config.Logging.Format)
	}

	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.Server.Mode) == "production"
}
