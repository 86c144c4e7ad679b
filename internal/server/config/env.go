package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays configuration from environment variables (see the env
// tags on Config). Variables that are unset leave the current values alone.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
