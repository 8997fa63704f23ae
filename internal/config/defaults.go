package config

// DefaultConfig returns a Config with sensible defaults. The local chat
// engine is the default so a fresh checkout works with no credentials.
func DefaultConfig() *Config {
	return &Config{
		Port:        8090,
		Database:    "portfolio.db",
		AdminEmail:  "sairishikumar.2005@gmail.com",
		ChatEngine:  EngineLocal,
		ChatModel:   "gpt-4o-mini",
		ChatDelayMS: 800,
		AllowedOrigins: []string{
			"http://localhost:5173",
			"http://localhost:3000",
		},
	}
}
