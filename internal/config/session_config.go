package config

import "time"

// StoreKind selects the session store backend.
type StoreKind string

const (
	StoreMemory StoreKind = "memory"
	StoreRedis  StoreKind = "redis"
	StoreSQLite StoreKind = "sqlite"
)

type SessionConfig interface {
	GetSessionStore() StoreKind
	GetSessionSecret() []byte
	SessionSecretGenerated() bool
	GetSessionCookieName() string
	GetSessionMaxAge() time.Duration
	GetJanitorInterval() time.Duration
	GetRedisAddr() string
	GetRedisPassword() string
	GetRedisDB() int
	GetRedisKeyPrefix() string
	GetSQLitePath() string
}

type Session struct {
	Store           StoreKind     `env:"SESSION_STORE" envDefault:"memory"`
	Secret          string        `env:"SESSION_SECRET"`
	CookieName      string        `env:"SESSION_COOKIE" envDefault:"sso_session"`
	MaxAge          time.Duration `env:"SESSION_MAX_AGE" envDefault:"8h"`
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL" envDefault:"5m"`
	RedisAddr       string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	RedisKeyPrefix  string        `env:"REDIS_KEY_PREFIX" envDefault:"sso:session:"`
	SQLitePath      string        `env:"SQLITE_PATH" envDefault:"./data/sessions.db"`

	secret          []byte
	secretGenerated bool
}

var _ SessionConfig = Session{}

func (s Session) GetSessionStore() StoreKind { return s.Store }

// GetSessionSecret returns a copy of the master secret used to derive the
// state-signing and session-sealing keys.
func (s Session) GetSessionSecret() []byte {
	return append([]byte(nil), s.secret...)
}

// SessionSecretGenerated reports whether SESSION_SECRET was empty and a random
// secret was generated. Sessions then do not survive a restart.
func (s Session) SessionSecretGenerated() bool { return s.secretGenerated }

func (s Session) GetSessionCookieName() string      { return s.CookieName }
func (s Session) GetSessionMaxAge() time.Duration   { return s.MaxAge }
func (s Session) GetJanitorInterval() time.Duration { return s.JanitorInterval }
func (s Session) GetRedisAddr() string              { return s.RedisAddr }
func (s Session) GetRedisPassword() string          { return s.RedisPassword }
func (s Session) GetRedisDB() int                   { return s.RedisDB }
func (s Session) GetRedisKeyPrefix() string         { return s.RedisKeyPrefix }
func (s Session) GetSQLitePath() string             { return s.SQLitePath }
