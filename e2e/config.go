package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

// Config points the suite at a running hub whose store was loaded with
// `admin seed`.
type Config struct {
	HubAddr   string `envconfig:"HUB_ADDR"`
	JWTSecret string `envconfig:"JWT_SECRET"`
	// Seeded identities used by the scenarios
	Organization string `envconfig:"E2E_ORGANIZATION" default:"org-1"`
	ProjectID    string `envconfig:"E2E_PROJECT" default:"P"`
	ClientID     string `envconfig:"E2E_CLIENT" default:"c1"`
	AdminID      string `envconfig:"E2E_ADMIN" default:"a1"`
	// E2E_DEBUG_JSON allows dumping full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
