package feedbackkit

import (
	"errors"
	"strings"
	"time"
)

// DefaultTimeout is the request timeout applied when Config.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Environment is a preset deployment of the FeedbackKit backend.
type Environment string

const (
	// EnvironmentProduction is the production backend.
	EnvironmentProduction Environment = "production"

	// EnvironmentStaging is the staging backend.
	EnvironmentStaging Environment = "staging"

	// EnvironmentLocal is a locally running backend.
	EnvironmentLocal Environment = "local"
)

// BaseURL returns the base URL for the environment.
func (e Environment) BaseURL() string {
	switch e {
	case EnvironmentStaging:
		return "https://api.feedbackkit.testflight.swiftly-developed.com"
	case EnvironmentLocal:
		return "http://localhost:8080"
	default:
		return "https://feedbackkit.swiftly-workspace.com"
	}
}

// Config configures a Client. It is immutable once the client is built; the
// active user id inside a live client can change independently of the
// Config it was built from.
type Config struct {
	// APIKey authenticates every request. Required.
	APIKey string

	// BaseURL is the server base URL. Defaults to the production
	// environment when empty.
	BaseURL string

	// UserID is the initial active user id. Optional.
	UserID string

	// Timeout bounds each request. Defaults to DefaultTimeout when zero.
	Timeout time.Duration

	// Debug enables request/response logging.
	Debug bool

	// StoragePath is the SQLite file used to persist identity between
	// runs. Identity stays in memory only when empty.
	StoragePath string
}

// ErrAPIKeyRequired is returned when a Config has a blank API key.
var ErrAPIKeyRequired = errors.New("feedbackkit: API key is required")

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrAPIKeyRequired
	}
	return nil
}

// APIURL returns the full API URL with the /api/v1 suffix.
func (c Config) APIURL() string {
	base := c.BaseURL
	if base == "" {
		base = EnvironmentProduction.BaseURL()
	}
	return strings.TrimRight(base, "/") + "/api/v1"
}

// WithEnvironment returns a copy pointing at a preset environment.
func (c Config) WithEnvironment(env Environment) Config {
	c.BaseURL = env.BaseURL()
	return c
}

// WithUserID returns a copy with a different initial user id.
func (c Config) WithUserID(userID string) Config {
	c.UserID = userID
	return c
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = EnvironmentProduction.BaseURL()
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
