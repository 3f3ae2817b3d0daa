package domain

import "time"

type ItemID string

type ThreadID string

type UserID string

// Item is one normalized feed entry, independent of which wire shape it
// arrived in.
type Item struct {
	ID        ItemID
	ThreadID  ThreadID
	AuthorID  UserID
	Author    string
	Handle    string
	Text      string
	ReplyToID ItemID
	CreatedAt time.Time
	Hashtags  []string
	Mentions  []string
	Media     []Attachment
	Permalink string
}

func (i Item) IsReply() bool {
	return i.ReplyToID != ""
}

type AttachmentKind string

const (
	AttachmentPhoto AttachmentKind = "photo"
	AttachmentVideo AttachmentKind = "video"
)

type Attachment struct {
	ID   string
	Kind AttachmentKind
	URL  string
	Alt  string
}
