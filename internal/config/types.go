package config

// EngineType identifies which chat engine answers visitor questions.
type EngineType string

const (
	// EngineLocal answers from the built-in knowledge base without any
	// network dependency.
	EngineLocal EngineType = "local"
	// EngineRemote proxies questions to an OpenAI-compatible gateway.
	EngineRemote EngineType = "remote"
)

// Config is the top-level server configuration, corresponding to
// .portfolio.yml.
type Config struct {
	Port     int    `yaml:"port" koanf:"port"`
	Database string `yaml:"database" koanf:"database"`

	AdminEmail    string `yaml:"admin_email" koanf:"admin_email"`
	AdminPassword string `yaml:"admin_password" koanf:"admin_password"`

	ChatEngine     EngineType `yaml:"chat_engine" koanf:"chat_engine"`
	ChatGatewayURL string     `yaml:"chat_gateway_url" koanf:"chat_gateway_url"`
	ChatAPIKey     string     `yaml:"chat_api_key" koanf:"chat_api_key"`
	ChatModel      string     `yaml:"chat_model" koanf:"chat_model"`
	ChatDelayMS    int        `yaml:"chat_delay_ms" koanf:"chat_delay_ms"`

	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
}
