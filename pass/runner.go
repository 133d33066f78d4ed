package pass

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dexopt/dex"
	"github.com/dexopt/middleware/log"
	"github.com/dexopt/utils"
	"github.com/dexopt/utils/hardware"
	"github.com/dexopt/utils/paramtable"
	"github.com/dexopt/utils/timerecord"
	"go.opentelemetry.io/otel"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Runner drives a fixed set of passes over a stream of classes. Classes
// are deduplicated by descriptor, so re-enqueueing a class already seen in
// this run is a no-op.
type Runner struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	queue   *classQueue
	passes  []Pass
	workers int

	seen    *utils.ConcurrentSet[string]
	visited *atomic.Int64
	matched *atomic.Int64

	checker *timerecord.GroupChecker
}

// maxprocsOnce pins GOMAXPROCS to the container quota once per process,
// before the first runner sizes its worker pool.
var maxprocsOnce sync.Once

func NewRunner(ctx context.Context, cfg *paramtable.RunnerConfig, passes ...Pass) *Runner {
	maxprocsOnce.Do(func() { hardware.InitMaxprocs(true) })
	workers := cfg.Workers.GetAsInt()
	if workers <= 0 {
		workers = hardware.GetCPUNum()
	}
	capacity := cfg.QueueCapacity.GetAsInt()
	if capacity <= 0 {
		capacity = 1
	}

	ctx1, cancel := context.WithCancel(ctx)
	r := &Runner{
		ctx:     ctx1,
		cancel:  cancel,
		queue:   newClassQueue(capacity),
		passes:  passes,
		workers: workers,
		seen:    utils.NewConcurrentSet[string](),
		visited: atomic.NewInt64(0),
		matched: atomic.NewInt64(0),
	}
	r.checker = timerecord.GetGroupChecker("pass-runner",
		cfg.CheckInterval.GetAsDuration(time.Second),
		func(stalled []string) {
			log.Warn("pass workers not reporting progress", zap.Strings("workers", stalled))
		})
	return r
}

func (r *Runner) Start() {
	log.Info("starting pass runner",
		zap.Int("workers", r.workers),
		zap.Int("passes", len(r.passes)),
		zap.Uint64("memory", hardware.GetMemoryCount()),
		zap.Float64("cpuUsage", hardware.GetCPUUsage()))
	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.workLoop(fmt.Sprintf("worker-%d", i))
	}
}

// Enqueue submits cls. Classes already seen in this run are skipped.
func (r *Runner) Enqueue(cls dex.Class) error {
	if !r.seen.Insert(cls.Name()) {
		log.Debug("class already enqueued", zap.String("class", cls.Name()))
		return nil
	}
	return r.queue.enqueue(cls)
}

// Stats returns how many classes the workers consumed and how many
// pass selectors matched so far.
func (r *Runner) Stats() (visited, matched int64) {
	return r.visited.Load(), r.matched.Load()
}

func (r *Runner) Close() {
	r.cancel()
	r.wg.Wait()
	r.checker.Stop()
}

func (r *Runner) workLoop(name string) {
	defer r.wg.Done()
	defer r.checker.Remove(name)
	for {
		r.checker.Check(name)
		select {
		case <-r.ctx.Done():
			return
		case <-r.queue.chanRef():
			if cls := r.queue.pop(); cls != nil {
				r.process(cls)
			}
		}
	}
}

func (r *Runner) process(cls dex.Class) {
	r.visited.Inc()
	for _, p := range r.passes {
		if !p.Selector().Matches(cls) {
			continue
		}
		r.matched.Inc()

		tr := timerecord.NewTimeRecorder("pass " + p.Name())
		ctx, span := otel.Tracer("pass-runner").Start(r.ctx, p.Name())
		span.AddEvent("pass run " + cls.Name())
		if err := p.Run(ctx, cls); err != nil {
			span.RecordError(err)
			log.Ctx(ctx).Warn("pass failed on class",
				zap.String("pass", p.Name()),
				zap.String("class", cls.Name()),
				zap.Error(err))
		}
		span.End()
		tr.Elapse(cls.Name())
	}
}
