package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveRecordIDIsDeterministic(t *testing.T) {
	first := DeriveRecordID("1858283011243({0}", "agent-1")
	second := DeriveRecordID("1858283011243({0}", "agent-1")

	require.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestDeriveRecordIDSeparatesAgents(t *testing.T) {
	one := DeriveRecordID("1858283011243", "agent-1")
	two := DeriveRecordID("1858283011243", "agent-2")

	assert.NotEqual(t, one, two)
}

func TestDeriveRecordIDSeparatesItems(t *testing.T) {
	one := DeriveRecordID("1858283011243", "agent-1")
	two := DeriveRecordID("1858283011244", "agent-1")

	assert.NotEqual(t, one, two)
}

func TestDeriveRoomIDMatchesAcrossItemsOfOneThread(t *testing.T) {
	one := DeriveRoomID("thread-77", "agent-1")
	two := DeriveRoomID("thread-77", "agent-1")

	require.Equal(t, one, two)
	assert.NotEqual(t, one, DeriveRoomID("thread-77", "agent-2"))
}

func TestDeriveKeyIsAUUID(t *testing.T) {
	id := DeriveRecordID("42", "agent")

	assert.Len(t, string(id), 36)
	assert.Contains(t, string(id), "-")
}

func TestCookieExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		cookie Cookie
		want   bool
	}{
		{name: "no expiry never expires", cookie: Cookie{Name: "auth_token"}, want: false},
		{name: "future expiry", cookie: Cookie{Name: "auth_token", Expires: now.Add(time.Hour)}, want: false},
		{name: "past expiry", cookie: Cookie{Name: "auth_token", Expires: now.Add(-time.Hour)}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cookie.Expired(now))
		})
	}
}

func TestItemIsReply(t *testing.T) {
	assert.False(t, Item{ID: "1"}.IsReply())
	assert.True(t, Item{ID: "1", ReplyToID: "2"}.IsReply())
}
