package feedhttp

import (
	"errors"
	"log/slog"
	"time"

	"github.com/bnema/feedkeeper/internal/domain"
)

// The feed API answers in two shapes depending on endpoint generation:
// flattened items carry everything top-level, older endpoints nest the
// interesting fields under "legacy". Normalization reads field by field,
// preferring the flattened value and falling back to the legacy one.

const legacyTimeLayout = "Mon Jan 02 15:04:05 -0700 2006"

type itemPayload struct {
	ID        string         `json:"id"`
	ThreadID  string         `json:"thread_id"`
	AuthorID  string         `json:"author_id"`
	Author    string         `json:"author_name"`
	Handle    string         `json:"author_handle"`
	Text      string         `json:"text"`
	ReplyToID string         `json:"reply_to_id"`
	CreatedAt string         `json:"created_at"`
	Hashtags  []string       `json:"hashtags"`
	Mentions  []string       `json:"mentions"`
	Media     []mediaPayload `json:"media"`
	Permalink string         `json:"permalink"`
	Legacy    *legacyItem    `json:"legacy"`
}

type mediaPayload struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	URL  string `json:"url"`
	Alt  string `json:"alt"`
}

type legacyItem struct {
	IDStr             string          `json:"id_str"`
	ConversationIDStr string          `json:"conversation_id_str"`
	FullText          string          `json:"full_text"`
	InReplyToStatusID string          `json:"in_reply_to_status_id_str"`
	CreatedAt         string          `json:"created_at"`
	User              *legacyUser     `json:"user"`
	Entities          *legacyEntities `json:"entities"`
}

type legacyUser struct {
	IDStr      string `json:"id_str"`
	Name       string `json:"name"`
	ScreenName string `json:"screen_name"`
}

type legacyEntities struct {
	Hashtags     []legacyTag     `json:"hashtags"`
	UserMentions []legacyMention `json:"user_mentions"`
	Media        []legacyMedia   `json:"media"`
}

type legacyTag struct {
	Text string `json:"text"`
}

type legacyMention struct {
	ScreenName string `json:"screen_name"`
}

type legacyMedia struct {
	IDStr    string `json:"id_str"`
	Type     string `json:"type"`
	MediaURL string `json:"media_url_https"`
	AltText  string `json:"ext_alt_text"`
}

type timelinePayload struct {
	Items []itemPayload `json:"items"`
}

type searchPayload struct {
	Items      []itemPayload `json:"items"`
	NextCursor string        `json:"next_cursor"`
}

func (p itemPayload) normalize() (domain.Item, error) {
	legacy := p.Legacy

	id := p.ID
	if id == "" && legacy != nil {
		id = legacy.IDStr
	}
	if id == "" {
		return domain.Item{}, errors.New("item id missing in both wire shapes")
	}

	thread := p.ThreadID
	if thread == "" && legacy != nil {
		thread = legacy.ConversationIDStr
	}
	if thread == "" {
		// An item outside any conversation roots its own thread.
		thread = id
	}

	authorID := p.AuthorID
	author := p.Author
	handle := p.Handle
	if legacy != nil && legacy.User != nil {
		if authorID == "" {
			authorID = legacy.User.IDStr
		}
		if author == "" {
			author = legacy.User.Name
		}
		if handle == "" {
			handle = legacy.User.ScreenName
		}
	}

	text := p.Text
	if text == "" && legacy != nil {
		text = legacy.FullText
	}

	replyTo := p.ReplyToID
	if replyTo == "" && legacy != nil {
		replyTo = legacy.InReplyToStatusID
	}

	createdAt := parseWireTime(p.CreatedAt, time.RFC3339)
	if createdAt.IsZero() && legacy != nil {
		createdAt = parseWireTime(legacy.CreatedAt, legacyTimeLayout)
	}

	hashtags := p.Hashtags
	mentions := p.Mentions
	media := flattenedAttachments(p.Media)
	if legacy != nil && legacy.Entities != nil {
		if len(hashtags) == 0 {
			for _, tag := range legacy.Entities.Hashtags {
				if tag.Text != "" {
					hashtags = append(hashtags, tag.Text)
				}
			}
		}
		if len(mentions) == 0 {
			for _, mention := range legacy.Entities.UserMentions {
				if mention.ScreenName != "" {
					mentions = append(mentions, mention.ScreenName)
				}
			}
		}
		if len(media) == 0 {
			media = legacyAttachments(legacy.Entities.Media)
		}
	}

	return domain.Item{
		ID:        domain.ItemID(id),
		ThreadID:  domain.ThreadID(thread),
		AuthorID:  domain.UserID(authorID),
		Author:    author,
		Handle:    handle,
		Text:      text,
		ReplyToID: domain.ItemID(replyTo),
		CreatedAt: createdAt,
		Hashtags:  hashtags,
		Mentions:  mentions,
		Media:     media,
		Permalink: p.Permalink,
	}, nil
}

// normalizeItems converts a wire list, dropping entries that carry no
// usable identifier in either shape.
func normalizeItems(payloads []itemPayload, logger *slog.Logger) []domain.Item {
	items := make([]domain.Item, 0, len(payloads))
	for _, payload := range payloads {
		item, err := payload.normalize()
		if err != nil {
			logger.Warn("dropping malformed feed item", "error", err)

			continue
		}

		items = append(items, item)
	}

	return items
}

func flattenedAttachments(payloads []mediaPayload) []domain.Attachment {
	if len(payloads) == 0 {
		return nil
	}

	attachments := make([]domain.Attachment, 0, len(payloads))
	for _, payload := range payloads {
		attachments = append(attachments, domain.Attachment{
			ID:   payload.ID,
			Kind: attachmentKind(payload.Kind),
			URL:  payload.URL,
			Alt:  payload.Alt,
		})
	}

	return attachments
}

func legacyAttachments(payloads []legacyMedia) []domain.Attachment {
	if len(payloads) == 0 {
		return nil
	}

	attachments := make([]domain.Attachment, 0, len(payloads))
	for _, payload := range payloads {
		attachments = append(attachments, domain.Attachment{
			ID:   payload.IDStr,
			Kind: attachmentKind(payload.Type),
			URL:  payload.MediaURL,
			Alt:  payload.AltText,
		})
	}

	return attachments
}

func attachmentKind(raw string) domain.AttachmentKind {
	if raw == string(domain.AttachmentVideo) {
		return domain.AttachmentVideo
	}

	return domain.AttachmentPhoto
}

func parseWireTime(raw, layout string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(layout, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}
