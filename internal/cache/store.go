package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/feedkeeper/internal/domain"
)

const (
	itemFileMode    = 0o644
	threadDirMode   = 0o755
	tempFilePattern = ".item-*.json.tmp"
)

// Store is the two-tier item cache: a process-local memory map in front of
// a thread-sharded filesystem layout, {root}/{threadID}/{itemID}.json.
type Store struct {
	root   string
	logger *slog.Logger

	mu    sync.RWMutex
	items map[domain.ItemID]domain.Item
}

type Stats struct {
	MemoryItems int
}

func NewStore(root string, logger *slog.Logger) (*Store, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("cache root is empty")
	}
	if logger == nil {
		logger = slog.Default()
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve cache root: %w", err)
	}
	if err := os.MkdirAll(absRoot, threadDirMode); err != nil {
		return nil, fmt.Errorf("create cache root: %w", err)
	}

	return &Store{
		root:   filepath.Clean(absRoot),
		logger: logger,
		items:  make(map[domain.ItemID]domain.Item),
	}, nil
}

// Put stores item in both tiers. Items are write-once: an id already cached
// in either tier is left untouched and Put succeeds without writing.
func (s *Store) Put(ctx context.Context, item domain.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validatePathComponent(string(item.ID)); err != nil {
		return fmt.Errorf("invalid item id %q: %w", item.ID, err)
	}
	if err := validatePathComponent(string(item.ThreadID)); err != nil {
		return fmt.Errorf("invalid thread id %q: %w", item.ThreadID, err)
	}

	s.mu.RLock()
	_, cached := s.items[item.ID]
	s.mu.RUnlock()
	if cached {
		return nil
	}

	path := s.itemPath(item.ThreadID, item.ID)
	if _, err := os.Stat(path); err == nil {
		s.remember(item)
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat cached item: %w", err)
	}

	if err := s.writeItem(path, item); err != nil {
		return err
	}
	s.remember(item)

	return nil
}

// Get looks an item up by id alone: memory first, then a wildcard scan
// across all thread directories (the thread is unknown at lookup time).
// The first durable match is promoted to the memory tier.
func (s *Store) Get(ctx context.Context, id domain.ItemID) (domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return domain.Item{}, err
	}
	if err := validatePathComponent(string(id)); err != nil {
		return domain.Item{}, fmt.Errorf("invalid item id %q: %w", id, err)
	}

	s.mu.RLock()
	item, ok := s.items[id]
	s.mu.RUnlock()
	if ok {
		return item, nil
	}

	matches, err := filepath.Glob(filepath.Join(s.root, "*", string(id)+".json"))
	if err != nil {
		return domain.Item{}, fmt.Errorf("scan cache for item: %w", err)
	}
	if len(matches) == 0 {
		return domain.Item{}, domain.ErrItemNotCached
	}

	item, err = s.readItem(matches[0])
	if err != nil {
		return domain.Item{}, err
	}
	s.remember(item)

	return item, nil
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{MemoryItems: len(s.items)}
}

// DurableItems counts the item files below the cache root.
func (s *Store) DurableItems() (int, error) {
	matches, err := filepath.Glob(filepath.Join(s.root, "*", "*.json"))
	if err != nil {
		return 0, fmt.Errorf("scan cache root: %w", err)
	}

	return len(matches), nil
}

func (s *Store) Root() string {
	return s.root
}

func (s *Store) remember(item domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[item.ID]; !ok {
		s.items[item.ID] = item
	}
}

func (s *Store) itemPath(thread domain.ThreadID, id domain.ItemID) string {
	return filepath.Join(s.root, string(thread), string(id)+".json")
}

func (s *Store) readItem(path string) (domain.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Item{}, fmt.Errorf("read cached item: %w", err)
	}

	var record itemRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return domain.Item{}, fmt.Errorf("decode cached item %s: %w", filepath.Base(path), err)
	}
	if err := record.validateVersion(); err != nil {
		return domain.Item{}, err
	}
	record.applyDefaults()

	return fromRecord(record), nil
}

func (s *Store) writeItem(path string, item domain.Item) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, threadDirMode); err != nil {
		return fmt.Errorf("create thread directory: %w", err)
	}

	data, err := json.Marshal(toRecord(item))
	if err != nil {
		return fmt.Errorf("encode cached item: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp item file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp item file: %w", err)
	}

	if err := tempFile.Chmod(itemFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp item file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp item file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("store cached item: %w", err)
	}

	cleanup = false

	return nil
}

func validatePathComponent(component string) error {
	if strings.TrimSpace(component) == "" {
		return errors.New("empty path component")
	}
	if component == "." || component == ".." || strings.ContainsAny(component, `/\`) {
		return errors.New("path separators are not allowed")
	}

	return nil
}
