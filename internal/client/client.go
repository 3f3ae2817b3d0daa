// Package client wires the feed adapter, dispatch queue, item cache, session
// manager and reconciler into the one facade the CLI talks to.
package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/bnema/feedkeeper/internal/cache"
	"github.com/bnema/feedkeeper/internal/dispatch"
	"github.com/bnema/feedkeeper/internal/domain"
	"github.com/bnema/feedkeeper/internal/ingest"
	"github.com/bnema/feedkeeper/internal/ports"
	"github.com/bnema/feedkeeper/internal/session"
)

// ErrSessionNotReady is returned by operations that need an authenticated
// session before Bootstrap has succeeded.
var ErrSessionNotReady = errors.New("session is not ready")

const (
	defaultFetchTimeout = 15 * time.Second
	defaultSearchLimit  = 20
)

type Config struct {
	// Profile identifies the account this client runs as.
	Profile domain.Profile

	Feed      ports.Feed
	Queue     *dispatch.Queue
	Cache     *cache.Store
	Records   ports.RecordStore
	Session   *session.Manager
	Snapshots ingest.SnapshotStore
	Marker    ingest.MarkerStore

	// Source labels records written during reconciliation.
	Source string
	// SearchLimit and TimelineDepth tune reconciliation fetches; zero
	// values use the reconciler's defaults.
	SearchLimit   int
	TimelineDepth int

	// FetchTimeout bounds a single remote fetch, applied inside the
	// queued op.
	FetchTimeout time.Duration

	Clock  ports.Clock
	Logger *slog.Logger
}

func (c *Config) applyDefaults() {
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = defaultFetchTimeout
	}
	if c.Clock == nil {
		c.Clock = ports.SystemClock{}
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Client is the high-level entry point for a single profile. All remote
// reads funnel through the dispatch queue; local state is served directly.
type Client struct {
	cfg Config

	// The reconciler needs the account id the session machine resolves
	// during Bootstrap, so it is built on first use rather than up front.
	mu         sync.Mutex
	reconciler *ingest.Reconciler
}

func New(cfg Config) (*Client, error) {
	if cfg.Feed == nil {
		return nil, errors.New("feed is required")
	}
	if cfg.Queue == nil {
		return nil, errors.New("dispatch queue is required")
	}
	if cfg.Cache == nil {
		return nil, errors.New("item cache is required")
	}
	if cfg.Records == nil {
		return nil, errors.New("record store is required")
	}
	if cfg.Session == nil {
		return nil, errors.New("session manager is required")
	}
	if cfg.Snapshots == nil {
		return nil, errors.New("snapshot store is required")
	}
	if cfg.Marker == nil {
		return nil, errors.New("marker store is required")
	}
	cfg.applyDefaults()

	return &Client{cfg: cfg}, nil
}

// Bootstrap starts the dispatch worker and drives the session machine until
// the profile is authenticated and its account id is resolved. The context
// bounds the queue's whole lifetime, so callers pass their run context, not
// a short-lived one.
func (c *Client) Bootstrap(ctx context.Context) error {
	c.cfg.Queue.Start(ctx)

	if err := c.cfg.Session.Bootstrap(ctx); err != nil {
		return fmt.Errorf("bootstrap session: %w", err)
	}

	return nil
}

// Sync runs one reconciliation pass. The session must be ready.
func (c *Client) Sync(ctx context.Context) (ingest.Result, error) {
	if !c.cfg.Session.Ready() {
		return ingest.Result{}, ErrSessionNotReady
	}

	reconciler, err := c.reconcilerFor(c.cfg.Session.UserID())
	if err != nil {
		return ingest.Result{}, err
	}

	result, err := reconciler.Reconcile(ctx)
	if err != nil {
		return result, fmt.Errorf("reconcile feed: %w", err)
	}

	return result, nil
}

func (c *Client) reconcilerFor(owner domain.UserID) (*ingest.Reconciler, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.reconciler != nil {
		return c.reconciler, nil
	}

	reconciler, err := ingest.NewReconciler(ingest.Config{
		Feed:          c.cfg.Feed,
		Queue:         c.cfg.Queue,
		Cache:         c.cfg.Cache,
		Records:       c.cfg.Records,
		Snapshots:     c.cfg.Snapshots,
		Marker:        c.cfg.Marker,
		Owner:         owner,
		Handle:        c.cfg.Profile.Handle,
		OwnerName:     c.cfg.Profile.Name,
		Source:        c.cfg.Source,
		SearchLimit:   c.cfg.SearchLimit,
		TimelineDepth: c.cfg.TimelineDepth,
		FetchTimeout:  c.cfg.FetchTimeout,
		Logger:        c.cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build reconciler: %w", err)
	}
	c.reconciler = reconciler

	return reconciler, nil
}

// FetchItem returns a single item, serving from the cache when possible and
// fetching through the queue on a miss. Cache hits need no session; a miss
// returns ErrSessionNotReady unless Bootstrap has succeeded. Fetched items
// are written back to the cache; a failed write-back fails the fetch.
func (c *Client) FetchItem(ctx context.Context, id domain.ItemID) (domain.Item, error) {
	if strings.TrimSpace(string(id)) == "" {
		return domain.Item{}, errors.New("item id is empty")
	}

	item, err := c.cfg.Cache.Get(ctx, id)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, domain.ErrItemNotCached) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.Item{}, ctxErr
		}
		c.cfg.Logger.Warn("cache lookup failed, fetching from feed", "item", id, "error", err)
	}
	if !c.cfg.Session.Ready() {
		return domain.Item{}, ErrSessionNotReady
	}

	item, err = dispatch.Call(ctx, c.cfg.Queue, func(opCtx context.Context) (domain.Item, error) {
		opCtx, cancel := context.WithTimeout(opCtx, c.cfg.FetchTimeout)
		defer cancel()

		return c.cfg.Feed.Item(opCtx, id)
	})
	if err != nil {
		return domain.Item{}, fmt.Errorf("fetch item %s: %w", id, err)
	}

	if err := c.cfg.Cache.Put(ctx, item); err != nil {
		return domain.Item{}, fmt.Errorf("cache fetched item %s: %w", item.ID, err)
	}

	return item, nil
}

// Search runs a feed search through the queue. The session must be ready.
// A non-positive limit falls back to the default page size and an empty
// mode searches latest-first.
func (c *Client) Search(ctx context.Context, query string, limit int, mode ports.SearchMode, cursor string) (ports.SearchPage, error) {
	if strings.TrimSpace(query) == "" {
		return ports.SearchPage{}, errors.New("search query is empty")
	}
	if !c.cfg.Session.Ready() {
		return ports.SearchPage{}, ErrSessionNotReady
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if mode == "" {
		mode = ports.SearchLatest
	}

	page, err := dispatch.Call(ctx, c.cfg.Queue, func(opCtx context.Context) (ports.SearchPage, error) {
		opCtx, cancel := context.WithTimeout(opCtx, c.cfg.FetchTimeout)
		defer cancel()

		return c.cfg.Feed.Search(opCtx, query, limit, mode, cursor)
	})
	if err != nil {
		return ports.SearchPage{}, fmt.Errorf("search %q: %w", query, err)
	}

	return page, nil
}
