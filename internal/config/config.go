package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `env:"ENV" env-default:"dev"`
	ServerPort string `env:"SERVER_PORT" env-default:"8080"`

	DBHost    string `env:"DB_HOST" env-default:"postgres"`
	DBPort    string `env:"DB_PORT" env-default:"5432"`
	DBUser    string `env:"DB_USER" env-default:"postgres"`
	DBPass    string `env:"DB_PASSWORD" env-default:"password"`
	DBName    string `env:"DB_NAME" env-default:"faden_boards"`
	DBSSLMode string `env:"DB_SSLMODE" env-default:"disable"`

	// Empty RedisURL keeps events inside the process.
	RedisURL      string `env:"REDIS_URL" env-default:""`
	EventsChannel string `env:"EVENTS_CHANNEL" env-default:"faden:events"`

	StoreTimeout    time.Duration `env:"STORE_TIMEOUT" env-default:"5s"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" env-default:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`

	FrontendURL string `env:"FRONTEND_URL" env-default:""`
	SeedBoards  bool   `env:"SEED_BOARDS" env-default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("cleanenv.ReadEnv: %w", err)
	}
	return cfg, nil
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPass, c.DBName, c.DBPort, c.DBSSLMode,
	)
}

func (c *Config) IsProduction() bool {
	return c.Env == "prod" || c.Env == "production"
}
