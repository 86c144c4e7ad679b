// Package config handles configuration for the auth backend, layering
// defaults, an optional JSON file, environment variables and command-line
// flags (later sources win).
package config

import "time"

// Config holds runtime settings for the auth server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - UsersFile: path of the JSON user store (used when DatabaseDSN is empty).
//   - DatabaseDSN: PostgreSQL DSN (pgx); selects the Postgres store when set.
//   - SecretKey: HMAC secret for signing JWTs (HS256). The default is
//     insecure on purpose and must be overridden outside of demos.
//   - TokenValidityDuration: bearer token lifetime.
//   - CORSOrigin: allowed CORS origin for the browser frontend.
//   - BcryptCost: bcrypt cost factor for password hashing.
type Config struct {
	EndpointAddr          string        `env:"ADDRESS"`
	UsersFile             string        `env:"USERS_FILE"`
	DatabaseDSN           string        `env:"DATABASE_DSN"`
	SecretKey             string        `env:"JWT_SECRET"`
	TokenValidityDuration time.Duration `env:"TOKEN_VALIDITY"`
	CORSOrigin            string        `env:"CORS_ORIGIN"`
	BcryptCost            int           `env:"BCRYPT_COST"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey is insecure and should be overridden in any real deployment.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":3001"
	c.UsersFile = "users.json"
	c.DatabaseDSN = ""
	c.SecretKey = "weather-dashboard-secret-change-in-production"
	c.TokenValidityDuration = 7 * 24 * time.Hour
	c.CORSOrigin = "*"
	c.BcryptCost = 10
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
