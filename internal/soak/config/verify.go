package config

import (
	"errors"
	"fmt"
)

// Verify validates the configuration.
func Verify(cfg *Config) error {
	s := &cfg.Soak

	if s.Duration <= 0 {
		return errors.New("soak.duration must be positive")
	}
	if s.Producers < 1 {
		return errors.New("soak.producers must be at least 1")
	}
	if s.Consumers < 1 {
		return errors.New("soak.consumers must be at least 1")
	}
	if s.Mode != ModeFIFO && s.Mode != ModePriority {
		return fmt.Errorf("soak.mode must be %q or %q, got %q", ModeFIFO, ModePriority, s.Mode)
	}
	if s.Capacity < 0 {
		return errors.New("soak.capacity must not be negative")
	}
	if s.Rate < 0 {
		return errors.New("soak.rate must not be negative")
	}
	if s.Rate > 0 && s.Burst < 1 {
		return errors.New("soak.burst must be at least 1 when a rate is set")
	}
	if s.Shards < 1 {
		return errors.New("soak.shards must be at least 1")
	}
	return nil
}
