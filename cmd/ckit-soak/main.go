// Package main provides the entry point for ckit-soak.
//
// ckit-soak drives sustained concurrent load through the CKit queue and
// map types, verifying item conservation and per-producer ordering while
// exporting Prometheus metrics.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/ckit-go/internal/infra/buildinfo"
	"github.com/yndnr/ckit-go/internal/infra/confloader"
	"github.com/yndnr/ckit-go/internal/infra/shutdown"
	"github.com/yndnr/ckit-go/internal/soak"
	"github.com/yndnr/ckit-go/internal/soak/config"
	"github.com/yndnr/ckit-go/internal/telemetry/logger"
	"github.com/yndnr/ckit-go/internal/telemetry/metric"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "ckit-soak",
		Usage:   "soak-test the CKit concurrent queues and maps",
		Version: buildinfo.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to YAML configuration file"},
			&cli.DurationFlag{Name: "duration", Usage: "how long producers keep pushing"},
			&cli.IntFlag{Name: "producers", Usage: "number of producer goroutines"},
			&cli.IntFlag{Name: "consumers", Usage: "number of consumer goroutines"},
			&cli.StringFlag{Name: "mode", Usage: "queue under test: fifo or priority"},
			&cli.IntFlag{Name: "capacity", Usage: "queue capacity, 0 for unbounded"},
			&cli.Float64Flag{Name: "rate", Usage: "per-producer items per second, 0 for unlimited"},
			&cli.IntFlag{Name: "burst", Usage: "rate limiter burst size"},
			&cli.IntFlag{Name: "shards", Usage: "shard count of the verification map"},
			&cli.StringFlag{Name: "metrics-addr", Usage: "listen address for /metrics, empty disables"},
			&cli.StringFlag{Name: "log-level", Usage: "log level: debug, info, warn, error"},
			&cli.StringFlag{Name: "log-format", Usage: "log format: json or text"},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})
	logger.SetDefault(log)

	log.Info("ckit-soak starting", "version", buildinfo.Get().Version)

	metrics := metric.NewRegistry()
	runner, err := soak.NewRunner(cfg.Soak, log, metrics)
	if err != nil {
		return err
	}

	sd := shutdown.NewHandler(10 * time.Second)

	if cfg.Metrics.Addr != "" {
		srv := startMetricsServer(cfg.Metrics.Addr, metrics, log)
		sd.OnShutdown(func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		})
	}

	if path := c.String("config"); path != "" {
		watcher, err := watchConfig(path, runner, log)
		if err != nil {
			// A dead watcher only loses live retuning; the run proceeds.
			log.Warn("config watcher disabled", "error", err)
		} else {
			sd.OnShutdown(func(context.Context) error {
				return watcher.Stop()
			})
		}
	}

	// Registered last so it runs first: a signal stops the producers,
	// which lets Run return in the main goroutine below.
	runCtx, cancelRun := context.WithCancel(context.Background())
	sd.OnShutdown(func(context.Context) error {
		cancelRun()
		return nil
	})

	go func() {
		if err := sd.Wait(); err != nil {
			log.Error("shutdown error", "error", err)
		}
	}()

	_, runErr := runner.Run(runCtx)
	sd.Trigger()
	// Hooks are still draining the metrics server and watcher; exit only
	// once they have all run.
	<-sd.Done()
	return runErr
}

// loadConfig layers defaults, an optional YAML file, CKIT_* environment
// variables, and finally any flags the user set.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()

	opts := []confloader.Option{}
	if path := c.String("config"); path != "" {
		opts = append(opts, confloader.WithConfigFile(path))
	}
	loader := confloader.NewLoader(opts...)

	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	if overrides := flagOverrides(c); len(overrides) > 0 {
		if err := loader.LoadMap(overrides); err != nil {
			return nil, err
		}
		if err := loader.Unmarshal(cfg); err != nil {
			return nil, err
		}
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// flagOverrides collects only the flags the user actually passed, so
// unset flags never clobber file or environment values.
func flagOverrides(c *cli.Context) map[string]any {
	overrides := map[string]any{}
	if c.IsSet("duration") {
		overrides["soak.duration"] = c.Duration("duration")
	}
	if c.IsSet("producers") {
		overrides["soak.producers"] = c.Int("producers")
	}
	if c.IsSet("consumers") {
		overrides["soak.consumers"] = c.Int("consumers")
	}
	if c.IsSet("mode") {
		overrides["soak.mode"] = c.String("mode")
	}
	if c.IsSet("capacity") {
		overrides["soak.capacity"] = c.Int("capacity")
	}
	if c.IsSet("rate") {
		overrides["soak.rate"] = c.Float64("rate")
	}
	if c.IsSet("burst") {
		overrides["soak.burst"] = c.Int("burst")
	}
	if c.IsSet("shards") {
		overrides["soak.shards"] = c.Int("shards")
	}
	if c.IsSet("metrics-addr") {
		overrides["metrics.addr"] = c.String("metrics-addr")
	}
	if c.IsSet("log-level") {
		overrides["log.level"] = c.String("log-level")
	}
	if c.IsSet("log-format") {
		overrides["log.format"] = c.String("log-format")
	}
	return overrides
}

func startMetricsServer(addr string, metrics *metric.Registry, log logger.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("metrics server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("metrics server error", "error", err)
		}
	}()

	return srv
}

// watchConfig reloads the configuration file on change and applies the
// settings that are safe to retune mid-run: the producer rate and the
// log level.
func watchConfig(path string, runner *soak.Runner, log logger.Logger) (*confloader.Watcher, error) {
	watcher, err := confloader.NewWatcher(log)
	if err != nil {
		return nil, err
	}
	if err := watcher.Watch(path); err != nil {
		watcher.Stop()
		return nil, err
	}

	watcher.OnChange(func(changed string) {
		loader := confloader.NewLoader(confloader.WithConfigFile(path))
		cfg := config.Default()
		if err := loader.Load(cfg); err != nil {
			log.Warn("config reload failed", "path", changed, "error", err)
			return
		}
		if err := config.Verify(cfg); err != nil {
			log.Warn("config reload rejected", "path", changed, "error", err)
			return
		}

		logger.SetLevel(cfg.Log.Level)
		runner.SetRate(cfg.Soak.Rate)
		log.Info("configuration reloaded", "path", changed)
	})

	watcher.StartAsync()
	return watcher, nil
}
