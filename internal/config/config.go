package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PORTFOLIO_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: PORTFOLIO_ADMIN_EMAIL -> admin_email,
	// etc.
	if err := k.Load(env.Provider("PORTFOLIO_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "PORTFOLIO_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validEngines is the set of recognized chat engine values.
var validEngines = map[EngineType]bool{
	EngineLocal:  true,
	EngineRemote: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}

	if c.Database == "" {
		return fmt.Errorf("database is required")
	}

	if c.AdminEmail == "" {
		return fmt.Errorf("admin_email is required")
	}
	if c.AdminPassword == "" {
		return fmt.Errorf("admin_password is required (set PORTFOLIO_ADMIN_PASSWORD)")
	}

	if !validEngines[c.ChatEngine] {
		return fmt.Errorf("invalid chat_engine %q: must be local or remote", c.ChatEngine)
	}
	if c.ChatEngine == EngineRemote {
		if c.ChatGatewayURL == "" {
			return fmt.Errorf("chat_gateway_url is required for the remote engine")
		}
		if c.ChatModel == "" {
			return fmt.Errorf("chat_model is required for the remote engine")
		}
	}

	if c.ChatDelayMS < 0 {
		return fmt.Errorf("chat_delay_ms must be non-negative")
	}

	return nil
}
