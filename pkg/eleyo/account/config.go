package account

import (
	"github.com/natserract/eleyo/pkg/eleyo"
)

// DefaultAPIVersion is used when Config.APIVersion is empty.
const DefaultAPIVersion = "1.2"

// Config holds the account client settings.
type Config struct {
	// APIVersion is the version segment of /api/v{version}.
	APIVersion string
	// Environment resolves the server host on every request.
	Environment *eleyo.Environment
	// FormEncodedUpdate sends Update params form encoded instead of as JSON.
	FormEncodedUpdate bool
}

// DefaultConfig targets the production server with the default API version.
func DefaultConfig() *Config {
	return &Config{
		APIVersion:  DefaultAPIVersion,
		Environment: eleyo.NewEnvironment(eleyo.ModeProduction, ""),
	}
}

// withDefaults returns a copy of c with empty fields filled in.
func (c *Config) withDefaults() *Config {
	cfg := DefaultConfig()
	if c == nil {
		return cfg
	}
	if c.APIVersion != "" {
		cfg.APIVersion = c.APIVersion
	}
	if c.Environment != nil {
		cfg.Environment = c.Environment
	}
	cfg.FormEncodedUpdate = c.FormEncodedUpdate
	return cfg
}
