package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/feedkeeper/internal/domain"
)

const (
	currentSnapshotVersion = 1
	snapshotFileMode       = 0o644
	snapshotDirMode        = 0o755
	snapshotTempPattern    = ".snapshot-*.json.tmp"
)

// SnapshotStore persists the full candidate list between reconciliation
// passes so an interrupted pass can resume instead of re-fetching. Load
// returns an empty list when nothing has been written yet.
type SnapshotStore interface {
	Load(ctx context.Context) ([]domain.Item, error)
	Save(ctx context.Context, items []domain.Item) error
}

type snapshotFile struct {
	Version int            `json:"version"`
	Items   []snapshotItem `json:"items"`
}

type snapshotItem struct {
	ID        string          `json:"id"`
	ThreadID  string          `json:"thread_id"`
	AuthorID  string          `json:"author_id"`
	Author    string          `json:"author_name,omitempty"`
	Handle    string          `json:"author_handle,omitempty"`
	Text      string          `json:"text"`
	ReplyToID string          `json:"reply_to_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	Hashtags  []string        `json:"hashtags,omitempty"`
	Mentions  []string        `json:"mentions,omitempty"`
	Media     []snapshotMedia `json:"media,omitempty"`
	Permalink string          `json:"permalink,omitempty"`
}

type snapshotMedia struct {
	ID   string `json:"id,omitempty"`
	Kind string `json:"kind"`
	URL  string `json:"url"`
	Alt  string `json:"alt,omitempty"`
}

// FileSnapshotStore keeps the snapshot in one JSON file, replaced
// atomically on every save.
type FileSnapshotStore struct {
	path string
}

var _ SnapshotStore = (*FileSnapshotStore)(nil)

func NewFileSnapshotStore(path string) (*FileSnapshotStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("snapshot path is empty")
	}

	return &FileSnapshotStore{path: path}, nil
}

func (s *FileSnapshotStore) Load(ctx context.Context) ([]domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if file.Version > currentSnapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d (current %d)", file.Version, currentSnapshotVersion)
	}

	items := make([]domain.Item, 0, len(file.Items))
	for _, entry := range file.Items {
		items = append(items, entry.toDomain())
	}

	return items, nil
}

func (s *FileSnapshotStore) Save(ctx context.Context, items []domain.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	encoded := make([]snapshotItem, 0, len(items))
	for _, item := range items {
		encoded = append(encoded, toSnapshotItem(item))
	}

	data, err := json.Marshal(snapshotFile{Version: currentSnapshotVersion, Items: encoded})
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, snapshotDirMode); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, snapshotTempPattern)
	if err != nil {
		return fmt.Errorf("create temp snapshot file: %w", err)
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
		return fmt.Errorf("write temp snapshot file: %w", err)
	}

	if err := tempFile.Chmod(snapshotFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp snapshot file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp snapshot file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace snapshot file: %w", err)
	}

	cleanup = false

	return nil
}

func toSnapshotItem(item domain.Item) snapshotItem {
	media := make([]snapshotMedia, 0, len(item.Media))
	for _, attachment := range item.Media {
		media = append(media, snapshotMedia{
			ID:   attachment.ID,
			Kind: string(attachment.Kind),
			URL:  attachment.URL,
			Alt:  attachment.Alt,
		})
	}
	if len(media) == 0 {
		media = nil
	}

	return snapshotItem{
		ID:        string(item.ID),
		ThreadID:  string(item.ThreadID),
		AuthorID:  string(item.AuthorID),
		Author:    item.Author,
		Handle:    item.Handle,
		Text:      item.Text,
		ReplyToID: string(item.ReplyToID),
		CreatedAt: item.CreatedAt,
		Hashtags:  item.Hashtags,
		Mentions:  item.Mentions,
		Media:     media,
		Permalink: item.Permalink,
	}
}

func (i snapshotItem) toDomain() domain.Item {
	media := make([]domain.Attachment, 0, len(i.Media))
	for _, attachment := range i.Media {
		media = append(media, domain.Attachment{
			ID:   attachment.ID,
			Kind: domain.AttachmentKind(attachment.Kind),
			URL:  attachment.URL,
			Alt:  attachment.Alt,
		})
	}
	if len(media) == 0 {
		media = nil
	}

	return domain.Item{
		ID:        domain.ItemID(i.ID),
		ThreadID:  domain.ThreadID(i.ThreadID),
		AuthorID:  domain.UserID(i.AuthorID),
		Author:    i.Author,
		Handle:    i.Handle,
		Text:      i.Text,
		ReplyToID: domain.ItemID(i.ReplyToID),
		CreatedAt: i.CreatedAt,
		Hashtags:  i.Hashtags,
		Mentions:  i.Mentions,
		Media:     media,
		Permalink: i.Permalink,
	}
}
