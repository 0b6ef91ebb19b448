package app

import (
	"github.com/joefazee/surebook/app/database"
	"github.com/joefazee/surebook/internal/nexus"
)

type Config struct {
	DB database.Config

	AppHost  string `env:"APP_HOST" default:"localhost"`
	AppPort  string `env:"APP_PORT" default:"8080"`
	Env      string `env:"APP_ENV" default:"development"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	CacheBackend  string `env:"CACHE_BACKEND" default:"memory"`
	RedisAddr     string `env:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" default:"0"`
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig() (*Config, error) {
	c := &Config{}
	err := nexus.NewLoader().Load(c)
	return c, err
}
