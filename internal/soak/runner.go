package soak

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/yndnr/ckit-go/internal/soak/config"
	"github.com/yndnr/ckit-go/internal/telemetry/logger"
	"github.com/yndnr/ckit-go/internal/telemetry/metric"
	"github.com/yndnr/ckit-go/pkg/cmap"
	"github.com/yndnr/ckit-go/pkg/queue"
)

// testQueue is the slice of the queue API the runner needs; all four
// types in pkg/queue satisfy it for int64 items.
type testQueue interface {
	Push(item int64)
	Pop() int64
	Len() int
}

// Result summarizes a completed run.
type Result struct {
	RunID      string
	Elapsed    time.Duration
	Pushed     int64
	Popped     int64
	Violations int64
}

// Runner owns one soak run: the queue under test, the verification map,
// and the producer rate limiters.
type Runner struct {
	cfg     config.SoakSection
	log     logger.Logger
	metrics *metric.Registry

	runID    string
	queue    testQueue
	lastSeen cmap.ShardMap[int64]
	limiters []*rate.Limiter

	pushed     atomic.Int64
	popped     atomic.Int64
	violations atomic.Int64
}

// NewRunner builds a Runner from the given configuration. The caller is
// expected to have run config.Verify first; NewRunner only rejects what
// would make the run itself meaningless.
func NewRunner(cfg config.SoakSection, log logger.Logger, metrics *metric.Registry) (*Runner, error) {
	if cfg.Producers >= maxProducers {
		return nil, fmt.Errorf("soak: at most %d producers are encodable", maxProducers-1)
	}

	r := &Runner{
		cfg:     cfg,
		log:     log,
		metrics: metrics,
		runID:   ulid.Make().String(),
	}

	switch {
	case cfg.Mode == config.ModePriority && cfg.Capacity > 0:
		r.queue = queue.NewBoundedPriority[int64](cfg.Capacity)
	case cfg.Mode == config.ModePriority:
		r.queue = queue.NewPriority[int64]()
	case cfg.Capacity > 0:
		r.queue = queue.NewBounded[int64](cfg.Capacity)
	default:
		r.queue = queue.New[int64]()
	}

	k0, err := randomSeed()
	if err != nil {
		return nil, fmt.Errorf("soak: generate hash seed: %w", err)
	}
	k1, err := randomSeed()
	if err != nil {
		return nil, fmt.Errorf("soak: generate hash seed: %w", err)
	}
	r.lastSeen = cmap.NewSharded[int64](cfg.Shards, k0, k1, cfg.Producers)

	if cfg.Rate > 0 {
		r.limiters = make([]*rate.Limiter, cfg.Producers)
		for i := range r.limiters {
			r.limiters[i] = rate.NewLimiter(rate.Limit(cfg.Rate), cfg.Burst)
		}
	}

	metrics.ObserveQueueDepth(func() float64 { return float64(r.queue.Len()) })
	metrics.ObserveMapSize(func() float64 { return float64(r.lastSeen.Len()) })

	return r, nil
}

// RunID returns the ULID identifying this run.
func (r *Runner) RunID() string {
	return r.runID
}

// SetRate retunes every producer's rate limit mid-run. It is a no-op for
// runs started without a rate.
func (r *Runner) SetRate(itemsPerSecond float64) {
	if itemsPerSecond <= 0 {
		return
	}
	for _, l := range r.limiters {
		l.SetLimit(rate.Limit(itemsPerSecond))
	}
	r.log.Info("producer rate retuned", "run_id", r.runID, "rate", itemsPerSecond)
}

// Run executes the soak: producers push for the configured duration (or
// until ctx is canceled), then one stop sentinel per consumer flushes the
// consumers out. It returns an error if the run observed an ordering
// violation or lost items.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	ctx = logger.WithRunID(logger.WithLogger(ctx, r.log), r.runID)
	log := logger.L(ctx)
	log.Info("soak run starting",
		"mode", r.cfg.Mode,
		"capacity", r.cfg.Capacity,
		"producers", r.cfg.Producers,
		"consumers", r.cfg.Consumers,
		"duration", r.cfg.Duration.String())

	produceCtx, cancel := context.WithTimeout(ctx, r.cfg.Duration)
	defer cancel()

	var producers errgroup.Group
	for p := 0; p < r.cfg.Producers; p++ {
		p := p
		producers.Go(func() error {
			return r.produce(produceCtx, p)
		})
	}

	var consumers errgroup.Group
	// Sequence checking only makes sense when removal order is insertion
	// order: a priority queue legitimately hands back a producer's burst
	// in descending sequence order.
	strictOrder := r.cfg.Mode == config.ModeFIFO && r.cfg.Consumers == 1
	for c := 0; c < r.cfg.Consumers; c++ {
		consumers.Go(func() error {
			r.consume(strictOrder)
			return nil
		})
	}

	if err := producers.Wait(); err != nil {
		return Result{}, fmt.Errorf("soak: producers: %w", err)
	}

	// Producers are done; sentinels now flush the consumers once the
	// queue drains.
	for c := 0; c < r.cfg.Consumers; c++ {
		r.queue.Push(stopItem)
	}
	_ = consumers.Wait()

	res := Result{
		RunID:      r.runID,
		Elapsed:    time.Since(start),
		Pushed:     r.pushed.Load(),
		Popped:     r.popped.Load(),
		Violations: r.violations.Load(),
	}
	r.report(log, res)

	if res.Violations > 0 {
		return res, fmt.Errorf("soak: %d ordering violations", res.Violations)
	}
	if res.Pushed != res.Popped {
		return res, fmt.Errorf("soak: pushed %d items but popped %d", res.Pushed, res.Popped)
	}
	return res, nil
}

func (r *Runner) produce(ctx context.Context, producer int) error {
	var limiter *rate.Limiter
	if r.limiters != nil {
		limiter = r.limiters[producer]
	}

	for seq := int64(0); ; seq++ {
		if limiter != nil {
			// Wait returns once a token is available or the run is over.
			if err := limiter.Wait(ctx); err != nil {
				return nil
			}
		} else {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
		}

		r.queue.Push(encode(producer, seq))
		r.pushed.Add(1)
		r.metrics.ItemsPushed.Inc()
	}
}

func (r *Runner) consume(strictOrder bool) {
	for {
		item := r.queue.Pop()
		if item == stopItem {
			return
		}

		producer, seq := decode(item)
		prev, seen := r.lastSeen.Swap(producerKey(producer), seq)
		r.metrics.MapOps.WithLabelValues("swap").Inc()

		// Only set for a single consumer draining a FIFO queue: with
		// several consumers the pop-to-swap window makes sequence
		// comparisons racy, and priority removal reorders by value.
		if strictOrder && seen && seq <= prev {
			r.violations.Add(1)
			r.metrics.OrderViolations.Inc()
		}

		r.popped.Add(1)
		r.metrics.ItemsPopped.Inc()
	}
}

// report logs the final per-producer sequence numbers and clears the
// verification map.
func (r *Runner) report(log logger.Logger, res Result) {
	for p := 0; p < r.cfg.Producers; p++ {
		key := producerKey(p)
		last, ok := r.lastSeen.Find(key)
		r.metrics.MapOps.WithLabelValues("find").Inc()
		if !ok {
			continue
		}
		log.Debug("producer finished", "producer", p, "last_seq", last)

		r.lastSeen.Pop(key)
		r.metrics.MapOps.WithLabelValues("pop").Inc()
	}

	log.Info("soak run finished",
		"elapsed", res.Elapsed.String(),
		"pushed", res.Pushed,
		"popped", res.Popped,
		"violations", res.Violations)
}

func producerKey(producer int) string {
	return "producer-" + strconv.Itoa(producer)
}

func randomSeed() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}
