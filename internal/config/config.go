package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel    string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort    string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort  string  `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	FirstPlayer string  `yaml:"first-player" env:"FIRST_PLAYER" env-default:"random"`
	Session     Session `yaml:"session"`
	Redis       Redis   `yaml:"redis"`
}

type Session struct {
	Storage string        `yaml:"storage" env:"SESSION_STORAGE" env-default:"memory"`
	TTL     time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"2h"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file, environment variables take precedence.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %q", that.LogLevel)
	}

	switch that.Session.Storage {
	case StorageMemory, StorageRedis:
		return nil
	default:
		return fmt.Errorf("unknown session storage: %q", that.Session.Storage)
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
