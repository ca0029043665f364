package trace

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// TracerConfig contains configuration for ray generation and propagation
type TracerConfig struct {
	NumWorkers    int           // Parallel sources (0 = CPU count, 1 = sequential)
	QueueSize     int           // Pending generation tasks before SubmitTask blocks
	IdleTimeout   time.Duration // Idle worker lifetime in the pool
	IntensityMode bool          // Use GenerateRaysIntensity instead of GenerateRaysSimple
}

// DefaultTracerConfig returns sequential generation, matching the
// single-threaded sampling core
func DefaultTracerConfig() TracerConfig {
	return TracerConfig{
		NumWorkers:  1,
		QueueSize:   64,
		IdleTimeout: time.Second,
	}
}

// TraceStats summarizes one trace
type TraceStats struct {
	Sources     int
	Targets     int
	Generated   int
	Intercepted int
	Stopped     int
	Lost        int
	Duration    time.Duration
}

// Tracer generates rays from every source in a system and hands them to a
// Propagator
type Tracer struct {
	system     *scene.System
	params     *Params
	result     *Result
	config     TracerConfig
	propagator Propagator
	logger     core.Logger
	entrance   []scene.Element

	pool worker.DynamicWorkerPool
}

// NewTracer creates a tracer over sys
func NewTracer(sys *scene.System, config TracerConfig, logger core.Logger) *Tracer {
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultTracerConfig().QueueSize
	}
	if config.IdleTimeout <= 0 {
		config.IdleTimeout = DefaultTracerConfig().IdleTimeout
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	params := NewParams()
	t := &Tracer{
		system:     sys,
		params:     params,
		result:     NewResult(params),
		config:     config,
		propagator: StraightPropagator{},
		logger:     logger,
	}
	if config.NumWorkers > 1 {
		t.pool = worker.NewDynamicWorkerPool(config.NumWorkers, config.QueueSize, config.IdleTimeout)
	}
	return t
}

// Params returns the trace parameters
func (t *Tracer) Params() *Params {
	return t.params
}

// Result returns the ray buffer. It is not cleared between traces.
func (t *Tracer) Result() *Result {
	return t.result
}

// SetPropagator replaces the propagation stage
func (t *Tracer) SetPropagator(p Propagator) {
	t.propagator = p
}

// SetEntrance sets the elements sources aim at. With no entrance set,
// sources aim at the first surface along the global z axis.
func (t *Tracer) SetEntrance(elements ...scene.Element) {
	t.entrance = elements
}

// Trace generates rays from every source toward the entrance elements and
// propagates them through every non-source element
func (t *Tracer) Trace(ctx context.Context) (TraceStats, error) {
	start := time.Now()
	sources, targets := t.partition()
	entrance := t.entranceTargets(targets)
	first := t.result.Len()

	skipped := 0
	for _, target := range targets {
		if _, ok := target.(scene.Surface); !ok {
			skipped++
		}
	}
	if skipped > 0 {
		t.logger.Printf("Skipping %d non-surface targets\n", skipped)
	}

	var err error
	if t.pool == nil || len(sources) < 2 {
		err = t.generateSequential(ctx, sources, entrance)
	} else {
		err = t.generateParallel(ctx, sources, entrance)
	}
	if err != nil {
		return TraceStats{}, err
	}

	if t.propagator != nil {
		if err := t.propagator.Propagate(t.system, t.result, first, targets); err != nil {
			return TraceStats{}, fmt.Errorf("propagation failed: %w", err)
		}
	}

	stats := TraceStats{
		Sources:   len(sources),
		Targets:   len(targets),
		Generated: t.result.Len() - first,
		Duration:  time.Since(start),
	}
	for i := first; i < t.result.Len(); i++ {
		switch t.result.Ray(i).Status {
		case RayIntercepted:
			stats.Intercepted++
		case RayStopped:
			stats.Stopped++
		case RayLost:
			stats.Lost++
		}
	}

	t.logger.Printf("Traced %d rays from %d sources onto %d targets in %v (intercepted %d, stopped %d, lost %d)\n",
		stats.Generated, stats.Sources, stats.Targets, stats.Duration, stats.Intercepted, stats.Stopped, stats.Lost)
	return stats, nil
}

// partition splits the system into sources and targets. Targets are
// ordered along the global z axis, which is the sequence rays follow.
func (t *Tracer) partition() ([]Source, []scene.Element) {
	var sources []Source
	var targets []scene.Element
	for _, e := range t.system.Elements() {
		if src, ok := e.(Source); ok {
			sources = append(sources, src)
			continue
		}
		targets = append(targets, e)
	}
	slices.SortStableFunc(targets, func(a, b scene.Element) int {
		za, zb := a.Frame().Translation.Z, b.Frame().Translation.Z
		switch {
		case za < zb:
			return -1
		case za > zb:
			return 1
		}
		return 0
	})
	return sources, targets
}

// entranceTargets returns the configured entrance, or the first surface of
// the sequence
func (t *Tracer) entranceTargets(targets []scene.Element) []scene.Element {
	if len(t.entrance) > 0 {
		return t.entrance
	}
	for _, e := range targets {
		if _, ok := e.(scene.Surface); ok {
			return []scene.Element{e}
		}
	}
	return nil
}

func (t *Tracer) generate(src Source, result *Result, targets []scene.Element) error {
	var err error
	if t.config.IntensityMode {
		err = src.GenerateRaysIntensity(result, targets)
	} else {
		err = src.GenerateRaysSimple(result, targets)
	}
	if err != nil {
		return fmt.Errorf("source %d: %w", src.ID(), err)
	}
	return nil
}

func (t *Tracer) generateSequential(ctx context.Context, sources []Source, targets []scene.Element) error {
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := t.generate(src, t.result, targets); err != nil {
			return err
		}
	}
	return nil
}

// generateParallel gives every source a private Result on the worker pool
// and concatenates them in source order once all tasks are done, so the
// shared buffer is only appended to from this goroutine.
func (t *Tracer) generateParallel(ctx context.Context, sources []Source, targets []scene.Element) error {
	partials := make([]*Result, len(sources))
	errs := make([]error, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return err
		}
		wg.Add(1)
		t.pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				partial := NewResult(t.params)
				errs[i] = t.generate(src, partial, targets)
				partials[i] = partial
				return nil, errs[i]
			},
		})
	}
	wg.Wait()

	for i, partial := range partials {
		if errs[i] != nil {
			return errs[i]
		}
		t.result.Append(partial)
	}
	return nil
}
