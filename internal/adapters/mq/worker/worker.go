// Package worker processes rating jobs asynchronously: each job re-rates one
// player across their roles and appends changed ratings to history.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/model"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/internal/domain/rating"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/pkg/logger"
	"github.com/ElectroHugin/FM24-Player-Analyzer-sub000/pkg/metrics"
)

const (
	defaultWorkerMultiplier = 2 // multiplier for runtime.NumCPU()
	poolShutdownTimeout     = 30 * time.Second
)

// Job is what workers read off the queue.
type Job = model.RatingJob

// Rater computes a rating for a player in a role.
type Rater interface {
	Rate(p model.Player, role string) rating.Rating
}

// PlayerSource resolves players by id.
type PlayerSource interface {
	Player(ctx context.Context, id string) (model.Player, error)
}

// HistoryWriter appends rating records, suppressing insignificant changes.
type HistoryWriter interface {
	AppendIfChanged(ctx context.Context, rec model.RatingRecord) (bool, error)
}

// Releaser clears the in-flight mark of a player once their job finished.
type Releaser interface {
	Unrecord(ctx context.Context, key string)
}

// Queue defines how workers receive jobs.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Job
}

// Worker processes rating jobs until stopped.
type Worker interface {
	Run(ctx context.Context)
	Shutdown(ctx context.Context) error
}

// RatingWorker implements Worker.
type RatingWorker struct {
	queue    Queue
	rater    Rater
	players  PlayerSource
	history  HistoryWriter
	releaser Releaser
	name     string

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewRatingWorker creates a worker with configuration options.
func NewRatingWorker(q Queue, rater Rater, players PlayerSource, history HistoryWriter, releaser Releaser, opts ...Option) *RatingWorker {
	w := &RatingWorker{
		queue:    q,
		rater:    rater,
		players:  players,
		history:  history,
		releaser: releaser,
		name:     "worker",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.Get().Named("worker"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run starts the worker loop.
func (w *RatingWorker) Run(ctx context.Context) {
	defer close(w.done)

	jobs := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case job, ok := <-jobs:
			if !ok {
				return
			}
			if err := w.processJob(ctx, job); err != nil {
				w.logger.Error(ctx, "rating job failed",
					logger.String("player_id", job.PlayerID),
					logger.Error(err),
				)
			}
		}
	}
}

// Shutdown gracefully stops the worker.
func (w *RatingWorker) Shutdown(ctx context.Context) error {
	close(w.shutdown)
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

func (w *RatingWorker) processJob(ctx context.Context, job Job) error {
	// Whatever happens, the player must become re-enqueueable again.
	defer w.releaser.Unrecord(ctx, job.PlayerID)

	start := time.Now()
	defer func() {
		metrics.RecordRatingLatency(float64(time.Since(start).Milliseconds()))
	}()

	player, err := w.players.Player(ctx, job.PlayerID)
	if err != nil {
		metrics.RecordRatingError()
		metrics.RecordWorkerError()
		return fmt.Errorf("load player %s: %w", job.PlayerID, err)
	}

	roles := job.Roles
	if len(roles) == 0 {
		roles = player.AssignedRoles
	}

	now := time.Now().UTC()
	for _, role := range roles {
		r := w.rater.Rate(player, role)
		written, err := w.history.AppendIfChanged(ctx, model.RatingRecord{
			PlayerID:   player.ID,
			Role:       role,
			Absolute:   r.Absolute,
			Normalized: r.Normalized,
			TS:         now,
		})
		if err != nil {
			metrics.RecordRatingError()
			metrics.RecordWorkerError()
			return fmt.Errorf("append rating for %s/%s: %w", player.ID, role, err)
		}
		if written {
			metrics.RecordRatingComputed()
		} else {
			metrics.RecordRatingSuppressed()
		}
	}
	return nil
}

// Pool manages multiple workers over one queue.
type Pool struct {
	workers []*RatingWorker
	queue   Queue

	shutdown chan struct{}

	logger logger.Logger
}

// NewPool creates a pool of workerCount workers. A non-positive count sizes
// the pool from the CPU count.
func NewPool(workerCount int, q Queue, rater Rater, players PlayerSource, history HistoryWriter, releaser Releaser) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU() * defaultWorkerMultiplier
	}

	pool := &Pool{
		workers:  make([]*RatingWorker, workerCount),
		queue:    q,
		shutdown: make(chan struct{}),
		logger:   logger.Get().Named("worker-pool"),
	}
	for i := range pool.workers {
		pool.workers[i] = NewRatingWorker(
			q, rater, players, history, releaser,
			WithName("worker-"+strconv.Itoa(i)),
		)
	}

	metrics.UpdateWorkerCount(workerCount)
	return pool
}

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Shutdown closes the queue and waits for the workers to drain.
func (p *Pool) Shutdown(ctx context.Context) error {
	if closer, ok := p.queue.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			p.logger.Error(ctx, "error closing queue", logger.Error(err))
		}
	}
	close(p.shutdown)

	shutdownCtx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer cancel()

	for i, w := range p.workers {
		select {
		case <-w.done:
		case <-shutdownCtx.Done():
			p.logger.Warn(ctx, "worker shutdown timed out", logger.Int("worker_id", i))
		}
	}
	metrics.UpdateWorkerCount(0)
	return nil
}
