package config // package config loads application configuration from environment variables

import (
	"os" // os provides access to environment variables

	"github.com/joho/godotenv" // godotenv loads a local .env file during development
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The service is a deployment probe, so the whole
// surface is where to listen and which environment label to log.
type Config struct {
	Env  string // application environment (e.g. "dev", "prod")
	Host string // interface to bind; always 0.0.0.0 so platform probes can reach us
	Port string // HTTP port to listen on
}

// Load reads configuration values from environment variables and returns a
// Config.  A .env file is loaded first if one exists; missing variables fall
// back to defaults rather than aborting, because the platform's health
// checker must be answerable even on a bare environment.
func Load() Config {
	_ = godotenv.Load() // best effort; absence of .env is the normal case in a container

	return Config{
		Env:  getenv("APP_ENV", "dev"), // environment label, only used in log output
		Host: "0.0.0.0",                // bind all interfaces; probes arrive from outside the container
		Port: getenv("PORT", "8080"),   // port to bind the HTTP server, 8080 unless the platform says otherwise
	}
}

// getenv retrieves the value of an environment variable, returning the
// provided default when the variable is unset or empty.
func getenv(key, def string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	return v
}
