// Package config defines the ckit-soak configuration structure.
package config

import "time"

// Config is the root configuration for ckit-soak.
type Config struct {
	Soak    SoakSection    `koanf:"soak"`
	Metrics MetricsSection `koanf:"metrics"`
	Log     LogSection     `koanf:"log"`
}

// SoakSection configures the producer/consumer run.
type SoakSection struct {
	// Duration is how long producers keep pushing.
	Duration time.Duration `koanf:"duration"`

	// Producers is the number of producer goroutines.
	Producers int `koanf:"producers"`

	// Consumers is the number of consumer goroutines.
	Consumers int `koanf:"consumers"`

	// Mode selects the queue under test: "fifo" or "priority".
	Mode string `koanf:"mode"`

	// Capacity bounds the queue; 0 selects the unbounded variant.
	Capacity int `koanf:"capacity"`

	// Rate limits each producer to this many items per second;
	// 0 means unlimited.
	Rate float64 `koanf:"rate"`

	// Burst is the rate limiter burst size.
	Burst int `koanf:"burst"`

	// Shards is the shard count of the verification map.
	Shards int `koanf:"shards"`
}

// MetricsSection configures the Prometheus endpoint.
type MetricsSection struct {
	// Addr is the listen address for /metrics; empty disables it.
	Addr string `koanf:"addr"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Queue modes.
const (
	ModeFIFO     = "fifo"
	ModePriority = "priority"
)
