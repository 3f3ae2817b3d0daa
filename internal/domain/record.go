package domain

import "time"

type RecordID string

type RoomID string

// Record is the durable, locally-owned trace of one ingested feed item.
// CreatedAt carries the item's original timestamp, not the ingestion time.
type Record struct {
	ID        RecordID
	AgentID   UserID
	RoomID    RoomID
	UserID    UserID
	Source    string
	URL       string
	Text      string
	ReplyToID RecordID
	CreatedAt time.Time
}
