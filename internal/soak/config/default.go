package config

import "time"

// Default configuration values.
const (
	DefaultDuration  = 10 * time.Second
	DefaultProducers = 4
	DefaultConsumers = 4
	DefaultMode      = ModeFIFO
	DefaultCapacity  = 0
	DefaultBurst     = 1
	DefaultShards    = 16

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default soak configuration.
func Default() *Config {
	return &Config{
		Soak: SoakSection{
			Duration:  DefaultDuration,
			Producers: DefaultProducers,
			Consumers: DefaultConsumers,
			Mode:      DefaultMode,
			Capacity:  DefaultCapacity,
			Burst:     DefaultBurst,
			Shards:    DefaultShards,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
