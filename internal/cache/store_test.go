package cache

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bnema/feedkeeper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return store
}

func sampleItem() domain.Item {
	return domain.Item{
		ID:        "1858283011243",
		ThreadID:  "1858283011000",
		AuthorID:  "usr-9",
		Author:    "Mara",
		Handle:    "mara_dev",
		Text:      "shipping the reconciler today",
		CreatedAt: time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
		Hashtags:  []string{"golang"},
		Permalink: "https://feed.example/mara_dev/status/1858283011243",
	}
}

func TestPutThenGetFromMemoryTier(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	item := sampleItem()

	require.NoError(t, store.Put(context.Background(), item))

	got, err := store.Get(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, item, got)
	assert.Equal(t, 1, store.Stats().MemoryItems)
}

func TestPutLaysOutThreadShardedFiles(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	item := sampleItem()

	require.NoError(t, store.Put(context.Background(), item))

	path := filepath.Join(store.Root(), string(item.ThreadID), string(item.ID)+".json")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(itemFileMode), info.Mode().Perm())
}

func TestGetScansDurableTierByIDAlone(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	first, err := NewStore(root, logger)
	require.NoError(t, err)
	item := sampleItem()
	require.NoError(t, first.Put(context.Background(), item))

	// A fresh store has an empty memory tier; the lookup must find the item
	// without knowing its thread.
	second, err := NewStore(root, logger)
	require.NoError(t, err)
	require.Equal(t, 0, second.Stats().MemoryItems)

	got, err := second.Get(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, item, got)
	assert.Equal(t, 1, second.Stats().MemoryItems)
}

func TestGetMissReturnsErrItemNotCached(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	_, err := store.Get(context.Background(), "9999999")
	require.ErrorIs(t, err, domain.ErrItemNotCached)
}

func TestPutIsWriteOnce(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := NewStore(root, logger)
	require.NoError(t, err)

	item := sampleItem()
	require.NoError(t, store.Put(context.Background(), item))

	mutated := item
	mutated.Text = "rewritten text must never land"
	require.NoError(t, store.Put(context.Background(), mutated))

	got, err := store.Get(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.Text, got.Text)

	fresh, err := NewStore(root, logger)
	require.NoError(t, err)
	durable, err := fresh.Get(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.Text, durable.Text)
}

func TestPutSkipsDiskWhenFileAlreadyExists(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	first, err := NewStore(root, logger)
	require.NoError(t, err)
	item := sampleItem()
	require.NoError(t, first.Put(context.Background(), item))

	path := filepath.Join(root, string(item.ThreadID), string(item.ID)+".json")
	before, err := os.Stat(path)
	require.NoError(t, err)

	second, err := NewStore(root, logger)
	require.NoError(t, err)
	mutated := item
	mutated.Text = "different"
	require.NoError(t, second.Put(context.Background(), mutated))

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
	assert.Equal(t, before.Size(), after.Size())
}

func TestPutRejectsUnsafePathComponents(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	tests := []struct {
		name string
		item domain.Item
	}{
		{name: "empty id", item: domain.Item{ID: "", ThreadID: "t1"}},
		{name: "traversal id", item: domain.Item{ID: "..", ThreadID: "t1"}},
		{name: "separator in id", item: domain.Item{ID: "a/b", ThreadID: "t1"}},
		{name: "separator in thread", item: domain.Item{ID: "1", ThreadID: "../escape"}},
		{name: "backslash in thread", item: domain.Item{ID: "1", ThreadID: `a\b`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.Put(context.Background(), tt.item)
			require.Error(t, err)
		})
	}
}

func TestGetRejectsUnsafeID(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	_, err := store.Get(context.Background(), "../../etc/passwd")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrItemNotCached)
}

func TestGetSurfacesCorruptDurableEntry(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store, err := NewStore(root, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	threadDir := filepath.Join(root, "thread-1")
	require.NoError(t, os.MkdirAll(threadDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(threadDir, "42.json"), []byte("{not json"), 0o644))

	_, err = store.Get(context.Background(), "42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode cached item")
}

func TestGetRejectsNewerSchemaVersion(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store, err := NewStore(root, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	threadDir := filepath.Join(root, "thread-1")
	require.NoError(t, os.MkdirAll(threadDir, 0o755))
	payload := fmt.Sprintf(`{"version":%d,"id":"42","thread_id":"thread-1","text":"hi"}`, currentItemSchemaVersion+1)
	require.NoError(t, os.WriteFile(filepath.Join(threadDir, "42.json"), []byte(payload), 0o644))

	_, err = store.Get(context.Background(), "42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported cached item schema version")
}

func TestPutHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Put(ctx, sampleItem())
	require.ErrorIs(t, err, context.Canceled)
}

func TestConcurrentPutsAndGets(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			item := domain.Item{
				ID:        domain.ItemID(fmt.Sprintf("item-%d", i%4)),
				ThreadID:  domain.ThreadID(fmt.Sprintf("thread-%d", i%2)),
				Text:      "concurrent write",
				CreatedAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
			}
			assert.NoError(t, store.Put(context.Background(), item))

			_, err := store.Get(context.Background(), item.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 4, store.Stats().MemoryItems)
}
