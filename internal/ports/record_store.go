package ports

import (
	"context"

	"github.com/bnema/feedkeeper/internal/domain"
)

// RecordStore persists ingested records. CreateRecord is idempotent: writing
// a record whose id already exists succeeds without changing the stored row.
type RecordStore interface {
	CreateRecord(ctx context.Context, record domain.Record) error
	RecordByID(ctx context.Context, id domain.RecordID) (domain.Record, error)
	RecordCount(ctx context.Context) (int, error)
	RecordsByRooms(ctx context.Context, roomIDs []domain.RoomID) ([]domain.Record, error)
	EnsureUser(ctx context.Context, user domain.UserID, name, handle, source string) error
	EnsureConnection(ctx context.Context, user domain.UserID, room domain.RoomID, name, handle, source string) error
}
