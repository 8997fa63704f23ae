package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .portfolio.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Let's set up your portfolio server.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Admin credentials.
	emailPrompt := promptui.Prompt{
		Label:   "Admin email",
		Default: defaults.AdminEmail,
		Validate: func(s string) error {
			if !strings.Contains(s, "@") {
				return fmt.Errorf("not an email address")
			}
			return nil
		},
	}
	adminEmail, err := emailPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("admin email: %w", err)
	}

	passwordPrompt := promptui.Prompt{
		Label: "Admin password",
		Mask:  '*',
		Validate: func(s string) error {
			if len(s) < 8 {
				return fmt.Errorf("at least 8 characters")
			}
			return nil
		},
	}
	adminPassword, err := passwordPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("admin password: %w", err)
	}

	// 2. Listen port.
	portPrompt := promptui.Prompt{
		Label:   "Listen port",
		Default: strconv.Itoa(defaults.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("not a valid port")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	// 3. Database path.
	dbPrompt := promptui.Prompt{
		Label:   "SQLite database path",
		Default: defaults.Database,
	}
	database, err := dbPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("database path: %w", err)
	}

	// 4. Chat engine.
	enginePrompt := promptui.Select{
		Label: "Chat assistant engine",
		Items: []string{
			"local  — built-in keyword answers, no credentials needed",
			"remote — OpenAI-compatible gateway, streamed replies",
		},
	}
	engineIdx, _, err := enginePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("engine selection: %w", err)
	}
	engines := []EngineType{EngineLocal, EngineRemote}
	engine := engines[engineIdx]

	cfg := &Config{
		Port:           port,
		Database:       database,
		AdminEmail:     adminEmail,
		AdminPassword:  adminPassword,
		ChatEngine:     engine,
		ChatModel:      defaults.ChatModel,
		ChatDelayMS:    defaults.ChatDelayMS,
		AllowedOrigins: defaults.AllowedOrigins,
	}

	if engine == EngineRemote {
		urlPrompt := promptui.Prompt{
			Label: "Chat gateway URL",
			Validate: func(s string) error {
				if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
					return fmt.Errorf("must be an http(s) URL")
				}
				return nil
			},
		}
		if cfg.ChatGatewayURL, err = urlPrompt.Run(); err != nil {
			return nil, fmt.Errorf("gateway url: %w", err)
		}

		modelPrompt := promptui.Prompt{
			Label:   "Chat model",
			Default: defaults.ChatModel,
		}
		if cfg.ChatModel, err = modelPrompt.Run(); err != nil {
			return nil, fmt.Errorf("chat model: %w", err)
		}

		fmt.Println("\nNote: set PORTFOLIO_CHAT_API_KEY in the environment before starting the server.")
	}

	configPath := ".portfolio.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}
