package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if strings.TrimSpace(c.Auth.AdminRole) == "" {
		return fmt.Errorf("auth.admin_role must not be empty")
	}

	if err := c.Storage.validate(c.Database); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.CheckIn.QRSize < 64 || c.CheckIn.QRSize > 1024 {
		return fmt.Errorf("checkin.qr_size must be within [64, 1024] (got %d)", c.CheckIn.QRSize)
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("ratelimit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	if c.Redis.URL != "" && c.Redis.SummaryTTL <= 0 {
		return fmt.Errorf("redis.summary_ttl must be > 0 when redis is configured")
	}

	return nil
}

func (s *StorageConfig) validate(db DatabaseConfig) error {
	switch s.Driver {
	case DriverPostgres:
		if db.DSN == "" {
			return fmt.Errorf("database.dsn is required for the %s driver", DriverPostgres)
		}
	case DriverSQLite:
		if strings.TrimSpace(s.SQLitePath) == "" {
			return fmt.Errorf("sqlite_path is required for the %s driver", DriverSQLite)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown driver %q", s.Driver)
	}
	return nil
}
