package config

import (
	"testing"
	"time"
)

func TestDefaultVerifies(t *testing.T) {
	if err := Verify(Default()); err != nil {
		t.Errorf("Verify(Default()) error: %v", err)
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"priority mode", func(c *Config) { c.Soak.Mode = ModePriority }, false},
		{"bounded", func(c *Config) { c.Soak.Capacity = 32 }, false},
		{"rated", func(c *Config) { c.Soak.Rate = 100; c.Soak.Burst = 10 }, false},
		{"zero duration", func(c *Config) { c.Soak.Duration = 0 }, true},
		{"negative duration", func(c *Config) { c.Soak.Duration = -time.Second }, true},
		{"no producers", func(c *Config) { c.Soak.Producers = 0 }, true},
		{"no consumers", func(c *Config) { c.Soak.Consumers = 0 }, true},
		{"bad mode", func(c *Config) { c.Soak.Mode = "lifo" }, true},
		{"negative capacity", func(c *Config) { c.Soak.Capacity = -1 }, true},
		{"negative rate", func(c *Config) { c.Soak.Rate = -1 }, true},
		{"rate without burst", func(c *Config) { c.Soak.Rate = 100; c.Soak.Burst = 0 }, true},
		{"no shards", func(c *Config) { c.Soak.Shards = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Verify(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Verify() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
