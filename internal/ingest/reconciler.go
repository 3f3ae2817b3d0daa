// Package ingest reconciles the remote feed against the durable record
// store. A pass gathers candidate items (from the last run's snapshot or a
// fresh fetch), partitions them against already-ingested records and writes
// the novel ones, so repeated runs over the same remote state converge on
// the same persisted set.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bnema/feedkeeper/internal/dispatch"
	"github.com/bnema/feedkeeper/internal/domain"
	"github.com/bnema/feedkeeper/internal/ports"
)

const (
	defaultSearchLimit   = 20
	defaultTimelineDepth = 50
	defaultFetchTimeout  = 15 * time.Second
	defaultSource        = "feed"
)

// ItemCache is the slice of the content cache the reconciler writes through.
type ItemCache interface {
	Put(ctx context.Context, item domain.Item) error
}

type Config struct {
	Feed      ports.Feed
	Queue     *dispatch.Queue
	Cache     ItemCache
	Records   ports.RecordStore
	Snapshots SnapshotStore
	Marker    MarkerStore

	// Owner is the authenticated account id every derived key is bound to.
	Owner     domain.UserID
	Handle    string
	OwnerName string
	// Source tags every created record with its origin.
	Source string

	SearchLimit   int
	TimelineDepth int
	// FetchTimeout bounds each remote fetch attempt from inside the queued
	// op, since the queue itself has no cancellation primitive.
	FetchTimeout time.Duration
	Logger       *slog.Logger
}

func (c *Config) applyDefaults() {
	if c.OwnerName == "" {
		c.OwnerName = c.Handle
	}
	if c.Source == "" {
		c.Source = defaultSource
	}
	if c.SearchLimit <= 0 {
		c.SearchLimit = defaultSearchLimit
	}
	if c.TimelineDepth <= 0 {
		c.TimelineDepth = defaultTimelineDepth
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = defaultFetchTimeout
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Result summarizes one reconciliation pass.
type Result struct {
	Candidates int
	Created    int
	Skipped    int
	// Resumed marks a pass that picked up a snapshot with work already
	// partially ingested.
	Resumed bool
	// Fetched marks a pass that hit the remote feed for its candidates.
	Fetched bool
}

type Reconciler struct {
	cfg Config
}

func NewReconciler(cfg Config) (*Reconciler, error) {
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
	if cfg.Snapshots == nil {
		return nil, errors.New("snapshot store is required")
	}
	if cfg.Marker == nil {
		return nil, errors.New("marker store is required")
	}
	if cfg.Owner == "" {
		return nil, errors.New("owner account id is required")
	}
	if strings.TrimSpace(cfg.Handle) == "" {
		return nil, errors.New("profile handle is required")
	}
	cfg.applyDefaults()

	return &Reconciler{cfg: cfg}, nil
}

// Reconcile runs one pass. A snapshot holding unfinished work is resumed
// without fetching; a snapshot whose items are all already recorded means
// the previous pass completed, so a fresh fetch begins a new one. Fetch
// failures degrade to an empty candidate set; record-store failures
// surface, leaving the snapshot untouched so the next pass resumes where
// this one stopped.
func (r *Reconciler) Reconcile(ctx context.Context) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	snapshot, err := r.cfg.Snapshots.Load(ctx)
	if err != nil {
		r.cfg.Logger.Warn("snapshot unreadable, falling back to a fresh fetch", "error", err)
	}
	if len(snapshot) > 0 {
		ingested, err := r.ingestedKeys(ctx, snapshot)
		if err != nil {
			return Result{}, err
		}
		novel, skipped := r.partition(snapshot, ingested)
		if len(novel) > 0 {
			r.cfg.Logger.Info("resuming from snapshot", "candidates", len(snapshot), "novel", len(novel))
			result := Result{Candidates: len(snapshot), Skipped: skipped, Resumed: skipped > 0}
			return r.finishPass(ctx, result, snapshot, novel)
		}
		r.cfg.Logger.Info("snapshot fully ingested, starting a fresh pass", "candidates", len(snapshot))
	}

	candidates, err := r.fetchCandidates(ctx)
	if err != nil {
		return Result{}, err
	}

	result := Result{Candidates: len(candidates), Fetched: true}
	if len(candidates) == 0 {
		r.cfg.Logger.Info("nothing to reconcile")
		return result, nil
	}

	ingested, err := r.ingestedKeys(ctx, candidates)
	if err != nil {
		return result, err
	}
	novel, skipped := r.partition(candidates, ingested)
	result.Skipped = skipped

	return r.finishPass(ctx, result, candidates, novel)
}

// finishPass writes the novel records, then persists the full candidate
// list as the next run's snapshot and the newest item id as the marker.
func (r *Reconciler) finishPass(ctx context.Context, result Result, candidates, novel []domain.Item) (Result, error) {
	for _, item := range novel {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := r.createRecord(ctx, item); err != nil {
			return result, err
		}
		result.Created++
	}

	if err := r.cfg.Snapshots.Save(ctx, candidates); err != nil {
		return result, fmt.Errorf("persist snapshot: %w", err)
	}
	if newest, ok := newestItem(candidates); ok {
		if err := r.cfg.Marker.Save(ctx, newest.ID); err != nil {
			return result, fmt.Errorf("persist latest-seen marker: %w", err)
		}
	}

	r.cfg.Logger.Info("reconciliation finished",
		"candidates", result.Candidates,
		"created", result.Created,
		"skipped", result.Skipped,
		"resumed", result.Resumed,
	)

	return result, nil
}

func (r *Reconciler) partition(candidates []domain.Item, ingested map[domain.RecordID]struct{}) (novel []domain.Item, skipped int) {
	novel = make([]domain.Item, 0, len(candidates))
	for _, item := range candidates {
		if _, ok := ingested[domain.DeriveRecordID(item.ID, r.cfg.Owner)]; ok {
			skipped++
			continue
		}
		novel = append(novel, item)
	}

	return novel, skipped
}

// fetchCandidates pulls recent mentions, plus the home timeline on the
// very first historical bootstrap, and caches everything it saw.
func (r *Reconciler) fetchCandidates(ctx context.Context) ([]domain.Item, error) {
	marker, err := r.cfg.Marker.Load(ctx)
	if err != nil {
		r.cfg.Logger.Warn("marker unreadable, treating run as first bootstrap", "error", err)
	}

	lists := [][]domain.Item{r.fetchMentions(ctx)}
	if marker == "" {
		lists = append(lists, r.fetchTimeline(ctx))
	}
	candidates := mergeByID(lists...)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.cacheFetched(ctx, candidates)

	return candidates, nil
}

func (r *Reconciler) fetchMentions(ctx context.Context) []domain.Item {
	query := "@" + r.cfg.Handle
	page, err := dispatch.Call(ctx, r.cfg.Queue, func(opCtx context.Context) (ports.SearchPage, error) {
		opCtx, cancel := context.WithTimeout(opCtx, r.cfg.FetchTimeout)
		defer cancel()

		return r.cfg.Feed.Search(opCtx, query, r.cfg.SearchLimit, ports.SearchLatest, "")
	})
	if err != nil {
		r.cfg.Logger.Warn("mention search failed, continuing with empty set", "query", query, "error", err)
		return nil
	}

	return page.Items
}

func (r *Reconciler) fetchTimeline(ctx context.Context) []domain.Item {
	items, err := dispatch.Call(ctx, r.cfg.Queue, func(opCtx context.Context) ([]domain.Item, error) {
		opCtx, cancel := context.WithTimeout(opCtx, r.cfg.FetchTimeout)
		defer cancel()

		return r.cfg.Feed.Timeline(opCtx, r.cfg.TimelineDepth, nil)
	})
	if err != nil {
		r.cfg.Logger.Warn("home timeline fetch failed, continuing with empty set", "error", err)
		return nil
	}

	return items
}

func (r *Reconciler) cacheFetched(ctx context.Context, items []domain.Item) {
	for _, item := range items {
		if err := r.cfg.Cache.Put(ctx, item); err != nil {
			r.cfg.Logger.Warn("caching fetched item failed", "item_id", item.ID, "error", err)
		}
	}
}

func (r *Reconciler) ingestedKeys(ctx context.Context, candidates []domain.Item) (map[domain.RecordID]struct{}, error) {
	seen := make(map[domain.RoomID]struct{}, len(candidates))
	rooms := make([]domain.RoomID, 0, len(candidates))
	for _, item := range candidates {
		room := domain.DeriveRoomID(item.ThreadID, r.cfg.Owner)
		if _, ok := seen[room]; ok {
			continue
		}
		seen[room] = struct{}{}
		rooms = append(rooms, room)
	}

	records, err := r.cfg.Records.RecordsByRooms(ctx, rooms)
	if err != nil {
		return nil, fmt.Errorf("load existing records: %w", err)
	}

	ingested := make(map[domain.RecordID]struct{}, len(records))
	for _, record := range records {
		ingested[record.ID] = struct{}{}
	}

	return ingested, nil
}

// createRecord joins both participants to the item's room and writes the
// record, stamped with the item's original creation time.
func (r *Reconciler) createRecord(ctx context.Context, item domain.Item) error {
	room := domain.DeriveRoomID(item.ThreadID, r.cfg.Owner)

	if item.AuthorID != "" {
		if err := r.cfg.Records.EnsureConnection(ctx, item.AuthorID, room, item.Author, item.Handle, r.cfg.Source); err != nil {
			return fmt.Errorf("ensure author connection: %w", err)
		}
	}
	if err := r.cfg.Records.EnsureConnection(ctx, r.cfg.Owner, room, r.cfg.OwnerName, r.cfg.Handle, r.cfg.Source); err != nil {
		return fmt.Errorf("ensure agent connection: %w", err)
	}

	record := domain.Record{
		ID:        domain.DeriveRecordID(item.ID, r.cfg.Owner),
		AgentID:   r.cfg.Owner,
		RoomID:    room,
		UserID:    item.AuthorID,
		Source:    r.cfg.Source,
		URL:       item.Permalink,
		Text:      item.Text,
		CreatedAt: item.CreatedAt,
	}
	if item.IsReply() {
		record.ReplyToID = domain.DeriveRecordID(item.ReplyToID, r.cfg.Owner)
	}

	if err := r.cfg.Records.CreateRecord(ctx, record); err != nil {
		return fmt.Errorf("create record for item %s: %w", item.ID, err)
	}

	return nil
}

func mergeByID(lists ...[]domain.Item) []domain.Item {
	seen := make(map[domain.ItemID]struct{})
	var merged []domain.Item
	for _, list := range lists {
		for _, item := range list {
			if _, ok := seen[item.ID]; ok {
				continue
			}
			seen[item.ID] = struct{}{}
			merged = append(merged, item)
		}
	}

	return merged
}

func newestItem(items []domain.Item) (domain.Item, bool) {
	if len(items) == 0 {
		return domain.Item{}, false
	}

	newest := items[0]
	for _, item := range items[1:] {
		if item.CreatedAt.After(newest.CreatedAt) {
			newest = item
		}
	}

	return newest, true
}
