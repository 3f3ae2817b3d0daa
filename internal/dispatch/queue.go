package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"
)

// ErrStopped settles submissions arriving after the queue's lifecycle
// context has ended.
var ErrStopped = errors.New("dispatch queue stopped")

// Op is one unit of remote work. Ops signal retryable failure by returning
// an error exposing Temporary() bool; everything else settles the op.
type Op func(ctx context.Context) error

type Config struct {
	// BaseDelay is the backoff unit: a retry waits BaseDelay << depth,
	// where depth is the queue length at the moment of re-queueing.
	BaseDelay time.Duration
	// MaxDelay caps the backoff.
	MaxDelay time.Duration
	// PacingMin/PacingMax bound the uniformly random delay slept after
	// every op, successful or not.
	PacingMin time.Duration
	PacingMax time.Duration
	Logger    *slog.Logger
}

func (c *Config) applyDefaults() {
	if c.BaseDelay <= 0 {
		c.BaseDelay = time.Second
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = 5 * time.Minute
	}
	if c.PacingMin <= 0 {
		c.PacingMin = 1500 * time.Millisecond
	}
	if c.PacingMax < c.PacingMin {
		c.PacingMax = c.PacingMin + 2*time.Second
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

type pendingOp struct {
	op   Op
	done chan error
}

// Queue serializes every remote call: one op at a time, FIFO for new
// submissions, transiently failed ops re-queued at the head.
type Queue struct {
	cfg Config

	mu      sync.Mutex
	pending []*pendingOp
	stopped bool
	wake    chan struct{}

	started  atomic.Bool
	executed atomic.Uint64
	retried  atomic.Uint64
	failed   atomic.Uint64
}

type Stats struct {
	Depth    int
	Executed uint64
	Retried  uint64
	Failed   uint64
}

func New(cfg Config) *Queue {
	cfg.applyDefaults()

	return &Queue{
		cfg:  cfg,
		wake: make(chan struct{}, 1),
	}
}

// Start launches the worker. The context bounds the queue's whole lifetime:
// when it ends, every pending op settles with the context error and further
// submissions fail with ErrStopped. Start is idempotent.
func (q *Queue) Start(ctx context.Context) {
	if !q.started.CompareAndSwap(false, true) {
		return
	}

	go q.work(ctx)
}

// Submit appends op to the tail and blocks until the op settles. The caller
// context only bounds the wait: an abandoned op still executes in its queue
// slot. There is no way to cancel a submitted op.
func (q *Queue) Submit(ctx context.Context, op Op) error {
	if op == nil {
		return errors.New("submit nil op")
	}

	p := &pendingOp{op: op, done: make(chan error, 1)}

	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return ErrStopped
	}
	q.pending = append(q.pending, p)
	q.mu.Unlock()
	q.nudge()

	select {
	case err := <-p.done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("abandon queued op: %w", ctx.Err())
	}
}

// Call submits a value-returning op and hands the result back to the caller.
func Call[T any](ctx context.Context, q *Queue, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T

	err := q.Submit(ctx, func(opCtx context.Context) error {
		value, err := fn(opCtx)
		if err != nil {
			return err
		}
		result = value
		return nil
	})

	return result, err
}

func (q *Queue) Stats() Stats {
	q.mu.Lock()
	depth := len(q.pending)
	q.mu.Unlock()

	return Stats{
		Depth:    depth,
		Executed: q.executed.Load(),
		Retried:  q.retried.Load(),
		Failed:   q.failed.Load(),
	}
}

func (q *Queue) work(ctx context.Context) {
	defer q.drain(ctx)

	for {
		p, ok := q.next(ctx)
		if !ok {
			return
		}

		err := p.op(ctx)
		if err != nil && IsTemporary(err) && ctx.Err() == nil {
			depth := q.requeueFront(p)
			q.retried.Add(1)
			q.cfg.Logger.Warn("op failed transiently, re-queued at head",
				"depth", depth,
				"error", err,
			)
			q.sleep(ctx, q.backoffDelay(depth))
		} else {
			q.executed.Add(1)
			if err != nil {
				q.failed.Add(1)
			}
			p.done <- err
		}

		q.sleep(ctx, q.pacingDelay())
	}
}

func (q *Queue) next(ctx context.Context) (*pendingOp, bool) {
	for {
		if ctx.Err() != nil {
			return nil, false
		}

		q.mu.Lock()
		if len(q.pending) > 0 {
			p := q.pending[0]
			q.pending = q.pending[1:]
			q.mu.Unlock()
			return p, true
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, false
		case <-q.wake:
		}
	}
}

func (q *Queue) drain(ctx context.Context) {
	q.mu.Lock()
	q.stopped = true
	pending := q.pending
	q.pending = nil
	q.mu.Unlock()

	err := ctx.Err()
	if err == nil {
		err = ErrStopped
	}
	for _, p := range pending {
		p.done <- err
	}
}

func (q *Queue) requeueFront(p *pendingOp) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pending = append([]*pendingOp{p}, q.pending...)
	return len(q.pending)
}

func (q *Queue) nudge() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *Queue) backoffDelay(depth int) time.Duration {
	delay := q.cfg.BaseDelay
	for i := 0; i < depth; i++ {
		if delay >= q.cfg.MaxDelay {
			return q.cfg.MaxDelay
		}
		delay *= 2
	}
	if delay > q.cfg.MaxDelay {
		delay = q.cfg.MaxDelay
	}

	return delay
}

func (q *Queue) pacingDelay() time.Duration {
	window := q.cfg.PacingMax - q.cfg.PacingMin
	if window <= 0 {
		return q.cfg.PacingMin
	}

	return q.cfg.PacingMin + rand.N(window)
}

func (q *Queue) sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
