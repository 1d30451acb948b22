package authorize

import "github.com/reportcare/reportcare_backend/config"

// Config holds configuration for the authorization system
type Config struct {
	// EnableAudit enables audit logging for all authorization decisions
	EnableAudit bool
}

// DefaultConfig returns sensible defaults for authorization configuration
func DefaultConfig() Config {
	return Config{
		EnableAudit: true,
	}
}

// FromCentralConfig converts central config.AuthorizationConfig to package Config
func FromCentralConfig(c config.AuthorizationConfig) Config {
	return Config{
		EnableAudit: c.EnableAudit,
	}
}
