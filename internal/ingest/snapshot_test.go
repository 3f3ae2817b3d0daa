package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/feedkeeper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSnapshotStoreRequiresPath(t *testing.T) {
	t.Parallel()

	_, err := NewFileSnapshotStore("  ")
	require.Error(t, err)
	assert.ErrorContains(t, err, "snapshot path is empty")
}

func TestFileSnapshotStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store, err := NewFileSnapshotStore(filepath.Join(t.TempDir(), "ingest", "snapshot.json"))
	require.NoError(t, err)

	items := []domain.Item{
		{
			ID:        "1001",
			ThreadID:  "900",
			AuthorID:  "42",
			Author:    "Ada",
			Handle:    "ada",
			Text:      "hello @keeper",
			ReplyToID: "999",
			CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
			Hashtags:  []string{"intro"},
			Mentions:  []string{"keeper"},
			Media: []domain.Attachment{
				{ID: "m-1", Kind: domain.AttachmentVideo, URL: "https://cdn.example.com/m-1.mp4", Alt: "clip"},
			},
			Permalink: "https://feed.example.com/ada/1001",
		},
		{ID: "1002", ThreadID: "1002", Text: "bare"},
	}

	require.NoError(t, store.Save(context.Background(), items))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestFileSnapshotStoreMissingFileLoadsEmpty(t *testing.T) {
	t.Parallel()

	store, err := NewFileSnapshotStore(filepath.Join(t.TempDir(), "snapshot.json"))
	require.NoError(t, err)

	items, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFileSnapshotStoreSaveReplacesPreviousSnapshot(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "snapshot.json")
	store, err := NewFileSnapshotStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), []domain.Item{{ID: "1", ThreadID: "1"}, {ID: "2", ThreadID: "2"}}))
	require.NoError(t, store.Save(context.Background(), []domain.Item{{ID: "3", ThreadID: "3"}}))

	items, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.ItemID("3"), items[0].ID)

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".snapshot-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestFileSnapshotStoreRejectsFutureVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 99, "items": []}`), 0o644))

	store, err := NewFileSnapshotStore(path)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported snapshot version 99")
}

func TestFileSnapshotStoreRejectsCorruptPayload(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store, err := NewFileSnapshotStore(path)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode snapshot")
}
