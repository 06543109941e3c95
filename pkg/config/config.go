package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the runtime configuration of the lrucache binary.
type Config struct {
	Name     string   `toml:"name"`
	Capacity int      `toml:"capacity"`
	Redis    Redis    `toml:"redis"`
	RabbitMQ RabbitMQ `toml:"rabbitmq"`
	Warm     Warm     `toml:"warm"`
}

type Redis struct {
	Addr      string `toml:"addr"`
	KeyPrefix string `toml:"key_prefix"`
}

// RabbitMQ configures eviction events; an empty URL disables them.
type RabbitMQ struct {
	URL string `toml:"url"`
}

type Warm struct {
	IDs         []string `toml:"ids"`
	Concurrency int      `toml:"concurrency"`
}

var (
	ErrInvalidCapacity    = errors.New("capacity must be positive")
	ErrInvalidConcurrency = errors.New("warm concurrency must be positive")
)

func Default() Config {
	return Config{
		Name:     "products",
		Capacity: 1000,
		Redis: Redis{
			Addr:      "localhost:6379",
			KeyPrefix: "product:",
		},
		Warm: Warm{Concurrency: 4},
	}
}

// Load reads path over the defaults, then applies REDIS_ADDR and AMQP_URL
// from the environment. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("could not read config: %w", err)
		}
		if err := Decode(string(content), &cfg); err != nil {
			return Config{}, err
		}
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if url := os.Getenv("AMQP_URL"); url != "" {
		cfg.RabbitMQ.URL = url
	}

	return cfg, cfg.Validate()
}

// Decode parses TOML data into cfg, keeping fields the data does not set.
func Decode(data string, cfg *Config) error {
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return fmt.Errorf("could not parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return nil
}

func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	if c.Warm.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	return nil
}
