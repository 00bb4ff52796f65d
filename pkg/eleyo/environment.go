// Package eleyo holds the values shared by the Eleyo API clients: the
// deployment environment that selects the server host, the credentials used
// to authenticate requests, the error kinds returned by the clients, and a
// generic JSON value for responses whose shape the client does not fix.
package eleyo

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Mode selects which deployment of the Eleyo API is targeted.
type Mode int32

const (
	ModeProduction Mode = iota
	ModeTest
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeTest:
		return "test"
	case ModeDevelopment:
		return "development"
	default:
		return fmt.Sprintf("Mode(%d)", int32(m))
	}
}

// ParseMode converts a configuration string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "production", "standard":
		return ModeProduction, nil
	case "test":
		return ModeTest, nil
	case "development", "dev":
		return ModeDevelopment, nil
	default:
		return ModeProduction, fmt.Errorf("unknown mode %q", s)
	}
}

// Environment resolves the account server host. The mode can be switched at
// runtime; clients read it on every request.
type Environment struct {
	mode     atomic.Int32
	hostname string
	baseURI  string
}

// NewEnvironment creates an Environment. hostname is only used in development
// mode, where the host is acc.<hostname>.
func NewEnvironment(mode Mode, hostname string) *Environment {
	env := &Environment{hostname: hostname}
	env.mode.Store(int32(mode))
	return env
}

// WithBaseURI returns an Environment that always resolves to uri regardless of mode.
func (e *Environment) WithBaseURI(uri string) *Environment {
	env := &Environment{
		hostname: e.hostname,
		baseURI:  strings.TrimRight(uri, "/"),
	}
	env.mode.Store(e.mode.Load())
	return env
}

// Mode returns the current mode.
func (e *Environment) Mode() Mode {
	return Mode(e.mode.Load())
}

// SetMode switches the mode for all subsequent requests.
func (e *Environment) SetMode(m Mode) {
	e.mode.Store(int32(m))
}

// ServerURI returns the account server root for the current mode.
func (e *Environment) ServerURI() string {
	if e.baseURI != "" {
		return e.baseURI
	}

	switch e.Mode() {
	case ModeTest:
		return "https://acc.reg.eleyo.green"
	case ModeDevelopment:
		return "https://acc." + e.hostname
	default:
		return "https://acc.reg.eleyo.com"
	}
}
