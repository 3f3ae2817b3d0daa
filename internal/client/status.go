package client

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/feedkeeper/internal/dispatch"
	"github.com/bnema/feedkeeper/internal/domain"
	"github.com/bnema/feedkeeper/internal/session"
)

type SessionInfo struct {
	State  session.State
	UserID domain.UserID
}

type CacheInfo struct {
	MemoryItems  int
	DurableItems int
	Root         string
}

type IngestInfo struct {
	Records       int
	SnapshotItems int
	LatestSeen    domain.ItemID
}

// Status is a point-in-time report over the profile's durable state plus
// whatever the session machine and queue currently hold.
type Status struct {
	Profile   domain.Profile
	Session   SessionInfo
	Queue     dispatch.Stats
	Cache     CacheInfo
	Ingest    IngestInfo
	CheckedAt time.Time
}

// Status assembles the report from local state only. It never touches the
// network, so it works before Bootstrap and while logged out.
func (c *Client) Status(ctx context.Context) (Status, error) {
	if err := ctx.Err(); err != nil {
		return Status{}, err
	}

	status := Status{
		Profile:   c.cfg.Profile,
		Queue:     c.cfg.Queue.Stats(),
		CheckedAt: c.cfg.Clock.Now(),
		Session: SessionInfo{
			State:  c.cfg.Session.State(),
			UserID: c.cfg.Session.UserID(),
		},
	}

	durable, err := c.cfg.Cache.DurableItems()
	if err != nil {
		return Status{}, fmt.Errorf("count cached items: %w", err)
	}
	status.Cache = CacheInfo{
		MemoryItems:  c.cfg.Cache.Stats().MemoryItems,
		DurableItems: durable,
		Root:         c.cfg.Cache.Root(),
	}

	records, err := c.cfg.Records.RecordCount(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("count records: %w", err)
	}
	snapshot, err := c.cfg.Snapshots.Load(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("load snapshot: %w", err)
	}
	marker, err := c.cfg.Marker.Load(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("load latest-seen marker: %w", err)
	}
	status.Ingest = IngestInfo{
		Records:       records,
		SnapshotItems: len(snapshot),
		LatestSeen:    marker,
	}

	return status, nil
}
