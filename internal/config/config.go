package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// insecureSessionSecret is the SESSION_SECRET default. It is accepted
// outside release mode only.
const insecureSessionSecret = "default-secret-key-change-me"

type Config struct {
	DBDriver       string        `env:"DB_DRIVER" envDefault:"postgres"`
	DBHost         string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort         string        `env:"DB_PORT" envDefault:"5432"`
	DBUser         string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword     string        `env:"DB_PASSWORD" envDefault:"admin"`
	DBName         string        `env:"DB_NAME" envDefault:"piyuclean"`
	DBPath         string        `env:"DB_PATH" envDefault:"data/piyuclean.db"`
	SessionStore   string        `env:"SESSION_STORE" envDefault:"redis"`
	RedisHost      string        `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort      string        `env:"REDIS_PORT" envDefault:"6379"`
	SessionSecret  string        `env:"SESSION_SECRET" envDefault:"default-secret-key-change-me"`
	GinMode        string        `env:"GIN_MODE" envDefault:"debug"`
	Port           string        `env:"PORT" envDefault:"8080"`
	OpenAIAPIKey   string        `env:"OPENAI_API_KEY"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
}

// Load reads the configuration from the environment. A .env file in the
// working directory (or the file named by ENV_FILE) is applied first when present.
func Load() (*Config, error) {
	dotEnvPath := os.Getenv("ENV_FILE")
	if dotEnvPath == "" {
		dotEnvPath = ".env"
	}
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, fmt.Errorf("load %s: %w", dotEnvPath, err)
		}
		log.Printf("Loaded environment from %s", dotEnvPath)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat %s: %w", dotEnvPath, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that env tags cannot express.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want mysql, postgres or sqlite)", c.DBDriver)
	}
	switch c.SessionStore {
	case "redis", "cookie":
	default:
		return fmt.Errorf("unsupported SESSION_STORE %q (want redis or cookie)", c.SessionStore)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET must not be empty")
	}
	if c.IsProduction() && c.SessionSecret == insecureSessionSecret {
		return fmt.Errorf("SESSION_SECRET must be changed from its default when GIN_MODE=release")
	}
	return nil
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}
