// Package config loads application configuration from environment
// variables, optionally seeded from a .env file. Every key has a
// default, so the binary runs with an empty environment.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable.
type Config struct {
	Env       string // application environment (APP_ENV, e.g. "dev", "prod")
	Prompt    string // REPL prompt string (CLI_PROMPT)
	AutoStart bool   // arm auto-start timers on registration (AUTO_START)
}

// Load reads configuration from the environment. When envFile is
// non-empty it is loaded first via godotenv; a missing file is fatal
// since the operator asked for it explicitly.
func Load(envFile string) Config {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			log.Fatalf("config: load %s: %v", envFile, err)
		}
	} else {
		// Best-effort: a .env in the working directory is optional.
		_ = godotenv.Load()
	}
	return Config{
		Env:       getenv("APP_ENV", "dev"),
		Prompt:    getenv("CLI_PROMPT", ">> "),
		AutoStart: getenvBool("AUTO_START", true),
	}
}

// getenv returns the variable's value or the default when unset or
// empty.
func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// getenvBool is like getenv for booleans. A value that does not parse
// as a boolean is fatal rather than silently defaulted.
func getenvBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Fatalf("config: invalid bool for %s: %q", key, v)
	}
	return b
}
