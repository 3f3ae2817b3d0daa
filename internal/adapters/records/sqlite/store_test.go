package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/feedkeeper/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func sampleRecord(id domain.RecordID, room domain.RoomID, createdAt time.Time) domain.Record {
	return domain.Record{
		ID:        id,
		AgentID:   "agent-1",
		RoomID:    room,
		UserID:    "user-7",
		Source:    "feed",
		URL:       "https://feed.example.com/u/status/" + string(id),
		Text:      "body of " + string(id),
		CreatedAt: createdAt,
	}
}

func TestNewRejectsEmptyPath(t *testing.T) {
	t.Parallel()

	_, err := New("  ")
	require.Error(t, err)
}

func TestCreateRecordRoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	created := time.Date(2026, time.January, 10, 8, 0, 0, 0, time.UTC)
	record := sampleRecord("rec-1", "room-a", created)
	record.ReplyToID = "rec-0"
	require.NoError(t, store.CreateRecord(ctx, record))

	stored, err := store.RecordByID(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, record.ID, stored.ID)
	assert.Equal(t, record.AgentID, stored.AgentID)
	assert.Equal(t, record.RoomID, stored.RoomID)
	assert.Equal(t, record.UserID, stored.UserID)
	assert.Equal(t, record.Source, stored.Source)
	assert.Equal(t, record.URL, stored.URL)
	assert.Equal(t, record.Text, stored.Text)
	assert.Equal(t, record.ReplyToID, stored.ReplyToID)
	assert.Equal(t, created.Unix(), stored.CreatedAt.Unix())
}

func TestCreateRecordIsIdempotent(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	record := sampleRecord("rec-1", "room-a", time.Now().UTC())
	require.NoError(t, store.CreateRecord(ctx, record))

	mutated := record
	mutated.Text = "rewritten body"
	require.NoError(t, store.CreateRecord(ctx, mutated))

	stored, err := store.RecordByID(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, "body of rec-1", stored.Text)
}

func TestCreateRecordRequiresID(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	err := store.CreateRecord(context.Background(), domain.Record{})
	require.Error(t, err)
}

func TestRecordByIDMissing(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	_, err := store.RecordByID(context.Background(), "ghost")
	require.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestRecordsByRoomsFiltersAndOrders(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.CreateRecord(ctx, sampleRecord("rec-new", "room-a", base.Add(2*time.Hour))))
	require.NoError(t, store.CreateRecord(ctx, sampleRecord("rec-old", "room-a", base)))
	require.NoError(t, store.CreateRecord(ctx, sampleRecord("rec-other", "room-b", base.Add(time.Hour))))

	records, err := store.RecordsByRooms(ctx, []domain.RoomID{"room-a"})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.RecordID("rec-old"), records[0].ID)
	assert.Equal(t, domain.RecordID("rec-new"), records[1].ID)

	both, err := store.RecordsByRooms(ctx, []domain.RoomID{"room-a", "room-b"})
	require.NoError(t, err)
	assert.Len(t, both, 3)

	none, err := store.RecordsByRooms(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEnsureConnectionIsIdempotentAndRefreshesUser(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.EnsureConnection(ctx, "user-7", "room-a", "Ada", "ada", "feed"))
	require.NoError(t, store.EnsureConnection(ctx, "user-7", "room-a", "Ada Lovelace", "ada", "feed"))

	var name string
	require.NoError(t, store.db.QueryRow(`SELECT name FROM users WHERE id = ?`, "user-7").Scan(&name))
	assert.Equal(t, "Ada Lovelace", name)

	var joins int
	require.NoError(t, store.db.QueryRow(`SELECT COUNT(*) FROM connections WHERE room_id = ? AND user_id = ?`, "room-a", "user-7").Scan(&joins))
	assert.Equal(t, 1, joins)
}

func TestRecordCount(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	count, err := store.RecordCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, store.CreateRecord(ctx, sampleRecord("rec-1", "room-a", time.Now().UTC())))
	require.NoError(t, store.CreateRecord(ctx, sampleRecord("rec-2", "room-a", time.Now().UTC())))

	count, err = store.RecordCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestStateRoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	value, err := store.GetState(ctx, "cursor")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, store.SetState(ctx, "cursor", "item-100"))
	require.NoError(t, store.SetState(ctx, "cursor", "item-200"))

	value, err = store.GetState(ctx, "cursor")
	require.NoError(t, err)
	assert.Equal(t, "item-200", value)

	require.NoError(t, store.DeleteState(ctx, "cursor"))
	require.NoError(t, store.DeleteState(ctx, "cursor"))

	value, err = store.GetState(ctx, "cursor")
	require.NoError(t, err)
	assert.Empty(t, value)
}
