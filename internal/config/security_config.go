package config

import "time"

type SecurityConfig interface {
	GetRequirePKCE() bool
	GetStateTTL() time.Duration
}

type Security struct {
	RequirePKCE bool          `env:"REQUIRE_PKCE" envDefault:"false"`
	StateTTL    time.Duration `env:"STATE_TTL" envDefault:"10m"`
}

var _ SecurityConfig = Security{}

// GetRequirePKCE reports whether code_challenge/code_verifier are sent to the
// provider. Off by default because not every provider accepts them.
func (s Security) GetRequirePKCE() bool {
	return s.RequirePKCE
}

// GetStateTTL bounds how long a login may sit at the provider before the
// callback's state is rejected.
func (s Security) GetStateTTL() time.Duration {
	return s.StateTTL
}
