package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth"   validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Store  StoreConfig  `mapstructure:"store"  validate:"required"`
	Events EventsConfig `mapstructure:"events" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"required,gt=0"`
}

// AuthConfig contains identity resolution settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`

	// AllowAnonymousAsDemo lets requests without an Authorization header act
	// as DemoUserID instead of being rejected with 401.
	AllowAnonymousAsDemo bool   `mapstructure:"allow_anonymous_as_demo"`
	DemoUserID           string `mapstructure:"demo_user_id"           validate:"required"`
}

// LLMConfig contains task suggestion generator settings.
type LLMConfig struct {
	Provider          string `mapstructure:"provider"            validate:"required,oneof=stub gemini"`
	StubDelayMillis   int    `mapstructure:"stub_delay_millis"   validate:"gte=0"`
	GeminiAPIKey      string `mapstructure:"gemini_api_key"      validate:"required_if=Provider gemini"`
	ModelName         string `mapstructure:"model_name"          validate:"required"`
	MaxRetries        int    `mapstructure:"max_retries"         validate:"gte=0,lte=10"`
	RetryDelaySeconds int    `mapstructure:"retry_delay_seconds" validate:"gte=1,lte=60"`
}

// StoreConfig contains task store settings.
type StoreConfig struct {
	SeedDemoData bool   `mapstructure:"seed_demo_data"`
	IDStrategy   string `mapstructure:"id_strategy"    validate:"required,oneof=uuid sequence"`
}

// EventsConfig sizes the background worker pool that delivers task events
// to the audit log.
type EventsConfig struct {
	Workers   int `mapstructure:"workers"    validate:"gte=1,lte=64"`
	QueueSize int `mapstructure:"queue_size" validate:"gte=1"`
}
