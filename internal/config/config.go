package config

import (
	"crypto/rand"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/jrsteele09/go-sso-relay/internal/errors"
)

// Config is the immutable application configuration. It is built once at
// startup and handed to every component that needs it.
type Config interface {
	EnvConfig
	ProviderConfig
	SessionConfig
	CorsConfig
	SecurityConfig
}

type mainConfig struct {
	EnvVars
	Provider
	Session
	Cors
	Security
}

var _ Config = mainConfig{}

// Load reads an optional .env file and then parses the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, "[config Load] failed to read .env")
	}
	return parse(env.Options{})
}

// LoadFrom parses the given environment instead of the process environment.
func LoadFrom(environment map[string]string) (Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (Config, error) {
	var c mainConfig
	if err := env.ParseWithOptions(&c, opts); err != nil {
		return nil, errors.Wrapf(err, "[config Load] failed to parse environment")
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	if c.Session.Secret == "" {
		secret := make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, errors.Wrapf(err, "[config Load] failed to generate session secret")
		}
		c.Session.secret = secret
		c.Session.secretGenerated = true
	} else {
		c.Session.secret = []byte(c.Session.Secret)
	}
	return c, nil
}

func (c mainConfig) validate() error {
	switch c.Session.Store {
	case StoreMemory, StoreRedis, StoreSQLite:
	default:
		return fmt.Errorf("SESSION_STORE %q must be one of memory, redis, sqlite: %w", c.Session.Store, errors.ErrInvalidConfig)
	}

	durations := map[string]time.Duration{
		"SESSION_MAX_AGE":  c.Session.MaxAge,
		"PROVIDER_TIMEOUT": c.Provider.Timeout,
		"STATE_TTL":        c.Security.StateTTL,
		"JANITOR_INTERVAL": c.Session.JanitorInterval,
	}
	for name, d := range durations {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s: %w", name, d, errors.ErrInvalidConfig)
		}
	}
	return nil
}
