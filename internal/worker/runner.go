package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/logger"
	"golang.org/x/sync/errgroup"
)

type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Runner drives a fixed set of jobs, each on its own ticker.
type Runner struct {
	jobs []Job
}

func NewRunner(jobs ...Job) *Runner {
	return &Runner{jobs: jobs}
}

// Run starts every job immediately and then once per interval until ctx is
// cancelled. A failing run is logged; the job keeps its schedule.
func (r *Runner) Run(ctx context.Context) error {
	for _, job := range r.jobs {
		if job.Interval <= 0 {
			return fmt.Errorf("job %s: interval must be positive", job.Name)
		}
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, job := range r.jobs {
		g.Go(func() error {
			loop(ctx, job)
			return nil
		})
	}
	return g.Wait()
}

func loop(ctx context.Context, job Job) {
	log := logger.FromContext(ctx).With(slog.String("job", job.Name))
	ctx = logger.WithContext(ctx, log)
	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	log.Info("worker started", slog.Duration("interval", job.Interval))
	runOnce(ctx, log, job)
	for {
		select {
		case <-ctx.Done():
			log.Info("worker stopped")
			return
		case <-ticker.C:
			runOnce(ctx, log, job)
		}
	}
}

func runOnce(ctx context.Context, log *slog.Logger, job Job) {
	defer func() {
		if p := recover(); p != nil {
			log.Error("worker run panicked", slog.Any("panic", p))
		}
	}()
	start := time.Now()
	if err := job.Run(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		log.Error("worker run failed", slog.String("error", err.Error()))
		return
	}
	log.Debug("worker run finished", slog.Duration("took", time.Since(start)))
}
