package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/natserract/eleyo/pkg/eleyo"
	"github.com/natserract/eleyo/pkg/eleyo/account"
	"github.com/spf13/viper"
)

const (
	TransportHTTP  = "http"
	TransportResty = "resty"
)

type Config struct {
	Mode              string `mapstructure:"mode"`
	Hostname          string `mapstructure:"hostname"`
	BaseURI           string `mapstructure:"base_uri"`
	APIVersion        string `mapstructure:"api_version"`
	ClientID          string `mapstructure:"client_id"`
	ClientSecret      string `mapstructure:"client_secret"`
	AccessToken       string `mapstructure:"access_token"`
	Transport         string `mapstructure:"transport"`
	TimeoutSeconds    int64  `mapstructure:"timeout_seconds"`
	LogLevel          string `mapstructure:"log_level"`
	FormEncodedUpdate bool   `mapstructure:"form_encoded_update"`
}

// Load reads and validates the configuration.
func Load() (*Config, error) {
	cfg, err := Read()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Read reads configuration from a .env file (if any) and ELEYO_* environment
// variables without validating it, so callers can apply overrides first.
func Read() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("ELEYO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("mode", "production")
	v.SetDefault("hostname", "")
	v.SetDefault("base_uri", "")
	v.SetDefault("api_version", account.DefaultAPIVersion)
	v.SetDefault("client_id", "")
	v.SetDefault("client_secret", "")
	v.SetDefault("access_token", "")
	v.SetDefault("transport", TransportHTTP)
	v.SetDefault("timeout_seconds", 30)
	v.SetDefault("log_level", "info")
	v.SetDefault("form_encoded_update", false)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	mode, err := eleyo.ParseMode(c.Mode)
	if err != nil {
		return fmt.Errorf("ELEYO_MODE is invalid: %w", err)
	}
	if mode == eleyo.ModeDevelopment && c.Hostname == "" && c.BaseURI == "" {
		return fmt.Errorf("ELEYO_HOSTNAME is required in development mode")
	}
	if c.APIVersion == "" {
		return fmt.Errorf("ELEYO_API_VERSION is required")
	}
	if c.AccessToken == "" && c.ClientID == "" && c.ClientSecret == "" {
		return fmt.Errorf("ELEYO_ACCESS_TOKEN or ELEYO_CLIENT_ID and ELEYO_CLIENT_SECRET are required")
	}
	if c.AccessToken == "" && c.ClientID == "" {
		return fmt.Errorf("ELEYO_CLIENT_ID is required")
	}
	if c.AccessToken == "" && c.ClientSecret == "" {
		return fmt.Errorf("ELEYO_CLIENT_SECRET is required")
	}
	if c.Transport != TransportHTTP && c.Transport != TransportResty {
		return fmt.Errorf("ELEYO_TRANSPORT must be %q or %q", TransportHTTP, TransportResty)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("invalid ELEYO_TIMEOUT_SECONDS (must be positive seconds)")
	}
	return nil
}

// Timeout is the per-request transport timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Credential returns the access token when one is configured, else the client pair.
func (c *Config) Credential() eleyo.Credential {
	if c.AccessToken != "" {
		return eleyo.NewAccessToken(c.AccessToken)
	}
	return eleyo.NewAuth(c.ClientID, c.ClientSecret)
}

// AccountConfig builds the account client configuration.
func (c *Config) AccountConfig() (*account.Config, error) {
	mode, err := eleyo.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}

	env := eleyo.NewEnvironment(mode, c.Hostname)
	if c.BaseURI != "" {
		env = env.WithBaseURI(c.BaseURI)
	}

	return &account.Config{
		APIVersion:        c.APIVersion,
		Environment:       env,
		FormEncodedUpdate: c.FormEncodedUpdate,
	}, nil
}
