package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDecodeOverridesDefaults(t *testing.T) {
	cfg := Default()
	data := `
capacity = 2

[redis]
addr = "redis:6379"

[warm]
ids = ["sku-1", "sku-2"]
`
	if err := Decode(data, &cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Capacity != 2 {
		t.Errorf("expected capacity 2, got %d", cfg.Capacity)
	}
	if cfg.Redis.Addr != "redis:6379" {
		t.Errorf("expected redis:6379, got %s", cfg.Redis.Addr)
	}
	if cfg.Redis.KeyPrefix != "product:" {
		t.Errorf("expected default key prefix, got %s", cfg.Redis.KeyPrefix)
	}
	if cfg.Name != "products" || cfg.Warm.Concurrency != 4 {
		t.Errorf("expected defaults to survive, got %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Warm.IDs, []string{"sku-1", "sku-2"}) {
		t.Errorf("unexpected warm ids: %v", cfg.Warm.IDs)
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	cfg := Default()
	if err := Decode(`capacty = 2`, &cfg); err == nil {
		t.Fatal("expected error for unknown key")
	}
	if err := Decode(`capacity = "two"`, &cfg); err == nil {
		t.Fatal("expected error for wrong type")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lrucache.toml")
	data := "name = \"sessions\"\ncapacity = 50\n\n[rabbitmq]\nurl = \"amqp://file\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("REDIS_ADDR", "env:6379")
	t.Setenv("AMQP_URL", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Name != "sessions" || cfg.Capacity != 50 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Redis.Addr != "env:6379" {
		t.Errorf("expected REDIS_ADDR override, got %s", cfg.Redis.Addr)
	}
	if cfg.RabbitMQ.URL != "amqp://file" {
		t.Errorf("expected file amqp url, got %s", cfg.RabbitMQ.URL)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("AMQP_URL", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Capacity = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidCapacity) {
		t.Errorf("expected %v, got %v", ErrInvalidCapacity, err)
	}

	cfg = Default()
	cfg.Warm.Concurrency = -1
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConcurrency) {
		t.Errorf("expected %v, got %v", ErrInvalidConcurrency, err)
	}
}
