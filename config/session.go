package config

import "time"

// SessionConfig contains session lifetime configuration.
type SessionConfig struct {
	// TimeoutSeconds is the sliding session lifetime in seconds. Every
	// authenticated request resets the clock.
	TimeoutSeconds int `env:"SESSION_TIMEOUT" envDefault:"1800"`
}

// Timeout returns the session lifetime as a duration.
func (s *SessionConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	// A non-positive timeout would make every session dead on arrival.
	const minTimeoutSeconds = 60
	if s.TimeoutSeconds < minTimeoutSeconds {
		s.TimeoutSeconds = minTimeoutSeconds
	}
}
