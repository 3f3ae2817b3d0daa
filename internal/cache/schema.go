package cache

import (
	"fmt"
	"time"

	"github.com/bnema/feedkeeper/internal/domain"
)

const currentItemSchemaVersion = 1

type itemRecord struct {
	Version   int                `json:"version"`
	ID        string             `json:"id"`
	ThreadID  string             `json:"thread_id"`
	AuthorID  string             `json:"author_id"`
	Author    string             `json:"author_name,omitempty"`
	Handle    string             `json:"author_handle,omitempty"`
	Text      string             `json:"text"`
	ReplyToID string             `json:"reply_to_id,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	Hashtags  []string           `json:"hashtags,omitempty"`
	Mentions  []string           `json:"mentions,omitempty"`
	Media     []attachmentRecord `json:"media,omitempty"`
	Permalink string             `json:"permalink,omitempty"`
}

type attachmentRecord struct {
	ID   string `json:"id,omitempty"`
	Kind string `json:"kind"`
	URL  string `json:"url"`
	Alt  string `json:"alt,omitempty"`
}

func (r *itemRecord) applyDefaults() {
	if r.Version == 0 {
		r.Version = currentItemSchemaVersion
	}
}

func (r itemRecord) validateVersion() error {
	if r.Version > currentItemSchemaVersion {
		return fmt.Errorf("unsupported cached item schema version %d (current %d)", r.Version, currentItemSchemaVersion)
	}

	return nil
}

func toRecord(item domain.Item) itemRecord {
	media := make([]attachmentRecord, 0, len(item.Media))
	for _, attachment := range item.Media {
		media = append(media, attachmentRecord{
			ID:   attachment.ID,
			Kind: string(attachment.Kind),
			URL:  attachment.URL,
			Alt:  attachment.Alt,
		})
	}
	if len(media) == 0 {
		media = nil
	}

	return itemRecord{
		Version:   currentItemSchemaVersion,
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

func fromRecord(record itemRecord) domain.Item {
	media := make([]domain.Attachment, 0, len(record.Media))
	for _, attachment := range record.Media {
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
		ID:        domain.ItemID(record.ID),
		ThreadID:  domain.ThreadID(record.ThreadID),
		AuthorID:  domain.UserID(record.AuthorID),
		Author:    record.Author,
		Handle:    record.Handle,
		Text:      record.Text,
		ReplyToID: domain.ItemID(record.ReplyToID),
		CreatedAt: record.CreatedAt,
		Hashtags:  record.Hashtags,
		Mentions:  record.Mentions,
		Media:     media,
		Permalink: record.Permalink,
	}
}
