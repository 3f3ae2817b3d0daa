package feedhttp

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/feedkeeper/internal/domain"
)

func TestNormalizeFlattenedItem(t *testing.T) {
	t.Parallel()

	payload := itemPayload{
		ID:        "1001",
		ThreadID:  "900",
		AuthorID:  "42",
		Author:    "Ada Lovelace",
		Handle:    "ada",
		Text:      "engines all the way down",
		ReplyToID: "999",
		CreatedAt: "2026-01-15T10:30:00Z",
		Hashtags:  []string{"computing"},
		Mentions:  []string{"babbage"},
		Media: []mediaPayload{
			{ID: "m1", Kind: "video", URL: "https://cdn.example.com/m1.mp4", Alt: "demo"},
		},
		Permalink: "https://feed.example.com/ada/status/1001",
	}

	item, err := payload.normalize()
	require.NoError(t, err)

	assert.Equal(t, domain.ItemID("1001"), item.ID)
	assert.Equal(t, domain.ThreadID("900"), item.ThreadID)
	assert.Equal(t, domain.UserID("42"), item.AuthorID)
	assert.Equal(t, "Ada Lovelace", item.Author)
	assert.Equal(t, "ada", item.Handle)
	assert.Equal(t, domain.ItemID("999"), item.ReplyToID)
	assert.Equal(t, time.Date(2026, time.January, 15, 10, 30, 0, 0, time.UTC), item.CreatedAt)
	assert.Equal(t, []string{"computing"}, item.Hashtags)
	assert.Equal(t, []string{"babbage"}, item.Mentions)
	require.Len(t, item.Media, 1)
	assert.Equal(t, domain.AttachmentVideo, item.Media[0].Kind)
	assert.Equal(t, "https://feed.example.com/ada/status/1001", item.Permalink)
}

func TestNormalizeLegacyOnlyItem(t *testing.T) {
	t.Parallel()

	payload := itemPayload{
		Legacy: &legacyItem{
			IDStr:             "2002",
			ConversationIDStr: "800",
			FullText:          "difference engine update",
			InReplyToStatusID: "777",
			CreatedAt:         "Thu Jan 15 10:30:00 +0000 2026",
			User: &legacyUser{
				IDStr:      "42",
				Name:       "Ada Lovelace",
				ScreenName: "ada",
			},
			Entities: &legacyEntities{
				Hashtags:     []legacyTag{{Text: "computing"}},
				UserMentions: []legacyMention{{ScreenName: "babbage"}},
				Media: []legacyMedia{
					{IDStr: "m2", Type: "photo", MediaURL: "https://cdn.example.com/m2.jpg", AltText: "plans"},
				},
			},
		},
	}

	item, err := payload.normalize()
	require.NoError(t, err)

	assert.Equal(t, domain.ItemID("2002"), item.ID)
	assert.Equal(t, domain.ThreadID("800"), item.ThreadID)
	assert.Equal(t, domain.UserID("42"), item.AuthorID)
	assert.Equal(t, "Ada Lovelace", item.Author)
	assert.Equal(t, "ada", item.Handle)
	assert.Equal(t, "difference engine update", item.Text)
	assert.Equal(t, domain.ItemID("777"), item.ReplyToID)
	assert.Equal(t, time.Date(2026, time.January, 15, 10, 30, 0, 0, time.UTC).Unix(), item.CreatedAt.Unix())
	assert.Equal(t, []string{"computing"}, item.Hashtags)
	assert.Equal(t, []string{"babbage"}, item.Mentions)
	require.Len(t, item.Media, 1)
	assert.Equal(t, domain.AttachmentPhoto, item.Media[0].Kind)
	assert.Equal(t, "https://cdn.example.com/m2.jpg", item.Media[0].URL)
}

func TestNormalizePrefersFlattenedOverLegacy(t *testing.T) {
	t.Parallel()

	payload := itemPayload{
		ID:        "3003",
		Text:      "flattened text",
		CreatedAt: "2026-02-01T00:00:00Z",
		Legacy: &legacyItem{
			IDStr:     "ignored",
			FullText:  "legacy text",
			CreatedAt: "Mon Feb 02 00:00:00 +0000 2026",
			User:      &legacyUser{IDStr: "42", ScreenName: "ada"},
		},
	}

	item, err := payload.normalize()
	require.NoError(t, err)

	assert.Equal(t, domain.ItemID("3003"), item.ID)
	assert.Equal(t, "flattened text", item.Text)
	assert.Equal(t, 2026, item.CreatedAt.Year())
	assert.Equal(t, time.February, item.CreatedAt.Month())
	assert.Equal(t, 1, item.CreatedAt.Day())
	// Fields absent from the flattened shape still fall back.
	assert.Equal(t, "ada", item.Handle)
}

func TestNormalizeThreadDefaultsToItemID(t *testing.T) {
	t.Parallel()

	payload := itemPayload{ID: "4004", Text: "standalone"}

	item, err := payload.normalize()
	require.NoError(t, err)
	assert.Equal(t, domain.ThreadID("4004"), item.ThreadID)
}

func TestNormalizeRejectsItemWithoutID(t *testing.T) {
	t.Parallel()

	_, err := itemPayload{Text: "who am i"}.normalize()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item id missing")
}

func TestNormalizeItemsDropsMalformedEntries(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	items := normalizeItems([]itemPayload{
		{ID: "1", Text: "keep"},
		{Text: "no id, dropped"},
		{Legacy: &legacyItem{IDStr: "2", FullText: "legacy keep"}},
	}, logger)

	require.Len(t, items, 2)
	assert.Equal(t, domain.ItemID("1"), items[0].ID)
	assert.Equal(t, domain.ItemID("2"), items[1].ID)
}

func TestParseWireTimeToleratesGarbage(t *testing.T) {
	t.Parallel()

	assert.True(t, parseWireTime("", time.RFC3339).IsZero())
	assert.True(t, parseWireTime("not a timestamp", time.RFC3339).IsZero())
	assert.False(t, parseWireTime("2026-01-15T10:30:00Z", time.RFC3339).IsZero())
}

func TestAttachmentKindDefaultsToPhoto(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.AttachmentVideo, attachmentKind("video"))
	assert.Equal(t, domain.AttachmentPhoto, attachmentKind("photo"))
	assert.Equal(t, domain.AttachmentPhoto, attachmentKind("animated_gif"))
}
