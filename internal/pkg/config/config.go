package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port            string `env:"PORT,              default=8080"`
	Env             string `env:"ENV,               default=development"`
	JWTSecret       string `env:"JWT_SECRET"`
	TokenTTLMinutes int    `env:"TOKEN_TTL_MINUTES, default=30"`
	LogLevel        string `env:"LOG_LEVEL,         default=info"`
	AuditWorkers    int    `env:"AUDIT_WORKERS,     default=4"`

	Mongo  MongoConfig
	Redis  RedisConfig
	OpenAI OpenAIConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=edu_platform"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type OpenAIConfig struct {
	APIKey  string `env:"OPENAI_API_KEY"`
	Model   string `env:"OPENAI_MODEL,    default=gpt-3.5-turbo"`
	BaseURL string `env:"OPENAI_BASE_URL, default=https://api.openai.com"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
