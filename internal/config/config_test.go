package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("CLI_PROMPT", "")
	t.Setenv("AUTO_START", "")

	cfg := Load("")
	if cfg.Env != "dev" || cfg.Prompt != ">> " || !cfg.AutoStart {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("CLI_PROMPT", "cinema> ")
	t.Setenv("AUTO_START", "false")

	cfg := Load("")
	if cfg.Env != "prod" || cfg.Prompt != "cinema> " || cfg.AutoStart {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadEnvFile(t *testing.T) {
	// godotenv never overrides variables that are already present, so
	// clear them for real; t.Setenv registers the restore.
	t.Setenv("APP_ENV", "")
	t.Setenv("AUTO_START", "")
	os.Unsetenv("APP_ENV")
	os.Unsetenv("AUTO_START")

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("APP_ENV=staging\nAUTO_START=false\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg := Load(path)
	if cfg.Env != "staging" || cfg.AutoStart {
		t.Errorf("cfg = %+v", cfg)
	}
}
