package config

import "github.com/caarlos0/env/v11"

// envPrefix namespaces this client's variables: ACCOUNTKEEPER_SERVER_BASE_URL,
// ACCOUNTKEEPER_REQUEST_TIMEOUT, ACCOUNTKEEPER_DATABASE_PATH.
const envPrefix = "ACCOUNTKEEPER_"

// parseEnv overlays cfg with values from the environment. Variables that
// are unset leave the current value alone. A malformed value (e.g. an
// unparseable duration) panics, same as a broken JSON file.
func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		panic(err)
	}
}
