package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8090 {
		t.Errorf("expected default port 8090, got %d", cfg.Port)
	}
	if cfg.ChatEngine != EngineLocal {
		t.Errorf("expected default engine %q, got %q", EngineLocal, cfg.ChatEngine)
	}
	if cfg.Database != "portfolio.db" {
		t.Errorf("expected default database %q, got %q", "portfolio.db", cfg.Database)
	}
	if len(cfg.AllowedOrigins) == 0 {
		t.Error("expected default allowed origins")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.portfolio.yml")

	original := DefaultConfig()
	original.Port = 9000
	original.AdminEmail = "owner@example.com"
	original.AdminPassword = "hunter2hunter2"
	original.ChatEngine = EngineRemote
	original.ChatGatewayURL = "https://gateway.example.com/v1/chat/completions"
	original.ChatModel = "gpt-4o"
	original.AllowedOrigins = []string{"https://example.com"}

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.AdminEmail != original.AdminEmail {
		t.Errorf("admin_email: got %q, want %q", loaded.AdminEmail, original.AdminEmail)
	}
	if loaded.ChatEngine != original.ChatEngine {
		t.Errorf("chat_engine: got %q, want %q", loaded.ChatEngine, original.ChatEngine)
	}
	if loaded.ChatGatewayURL != original.ChatGatewayURL {
		t.Errorf("chat_gateway_url: got %q, want %q", loaded.ChatGatewayURL, original.ChatGatewayURL)
	}
	if len(loaded.AllowedOrigins) != 1 || loaded.AllowedOrigins[0] != "https://example.com" {
		t.Errorf("allowed_origins: got %v", loaded.AllowedOrigins)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8090 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	os.Setenv("PORTFOLIO_ADMIN_PASSWORD", "from-env")
	defer os.Unsetenv("PORTFOLIO_ADMIN_PASSWORD")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.AdminPassword != "from-env" {
		t.Errorf("env override failed: got %q", loaded.AdminPassword)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AdminPassword = "some-password"
	if err := cfg.Validate(); err != nil {
		t.Errorf("config should be valid, got: %v", err)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port out of range", func(c *Config) { c.Port = 0 }},
		{"empty database", func(c *Config) { c.Database = "" }},
		{"empty admin email", func(c *Config) { c.AdminEmail = "" }},
		{"empty admin password", func(c *Config) { c.AdminPassword = "" }},
		{"unknown engine", func(c *Config) { c.ChatEngine = "psychic" }},
		{"remote without gateway", func(c *Config) {
			c.ChatEngine = EngineRemote
			c.ChatGatewayURL = ""
		}},
		{"remote without model", func(c *Config) {
			c.ChatEngine = EngineRemote
			c.ChatGatewayURL = "https://gw.example.com"
			c.ChatModel = ""
		}},
		{"negative delay", func(c *Config) { c.ChatDelayMS = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.AdminPassword = "some-password"
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
