package feedhttp

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/feedkeeper/internal/domain"
)

func mustParseURL(t *testing.T, raw string) *url.URL {
	t.Helper()

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	return parsed
}

func TestJarFillsDefaultsFromRequestURL(t *testing.T) {
	t.Parallel()

	jar := newCookieJar()
	jar.SetCookies(mustParseURL(t, "https://feed.example.com/api/v1/session"), []*http.Cookie{
		{Name: "sid", Value: "abc"},
	})

	snapshot := jar.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "feed.example.com", snapshot[0].Domain)
	assert.Equal(t, "/", snapshot[0].Path)
}

func TestJarMatchesDomainAndPath(t *testing.T) {
	t.Parallel()

	jar := newCookieJar()
	origin := mustParseURL(t, "https://feed.example.com/")
	jar.SetCookies(origin, []*http.Cookie{
		{Name: "sid", Value: "abc", Domain: ".example.com"},
		{Name: "scoped", Value: "x", Path: "/api"},
		{Name: "other", Value: "y", Domain: "unrelated.net"},
	})

	sent := jar.Cookies(mustParseURL(t, "https://feed.example.com/api/v1/items/1"))
	require.Len(t, sent, 2)
	assert.Equal(t, "scoped", sent[0].Name)
	assert.Equal(t, "sid", sent[1].Name)

	rootOnly := jar.Cookies(mustParseURL(t, "https://feed.example.com/"))
	require.Len(t, rootOnly, 1)
	assert.Equal(t, "sid", rootOnly[0].Name)
}

func TestJarDropsExpiredCookies(t *testing.T) {
	t.Parallel()

	jar := newCookieJar()
	origin := mustParseURL(t, "https://feed.example.com/")
	jar.SetCookies(origin, []*http.Cookie{{Name: "sid", Value: "abc"}})
	jar.SetCookies(origin, []*http.Cookie{{Name: "sid", Value: "", Expires: time.Now().Add(-time.Hour)}})

	assert.Empty(t, jar.Snapshot())
}

func TestJarMaxAgeDeleteRemovesCookie(t *testing.T) {
	t.Parallel()

	jar := newCookieJar()
	origin := mustParseURL(t, "https://feed.example.com/")
	jar.SetCookies(origin, []*http.Cookie{{Name: "sid", Value: "abc"}})
	jar.SetCookies(origin, []*http.Cookie{{Name: "sid", Value: "", MaxAge: -1}})

	assert.Empty(t, jar.Cookies(origin))
}

func TestJarSnapshotRestoreRoundTrip(t *testing.T) {
	t.Parallel()

	expires := time.Date(2027, time.March, 9, 12, 0, 0, 0, time.UTC)
	jar := newCookieJar()
	jar.SetCookies(mustParseURL(t, "https://feed.example.com/"), []*http.Cookie{
		{
			Name:     "sid",
			Value:    "abc",
			Domain:   ".example.com",
			Path:     "/",
			Expires:  expires,
			Secure:   true,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
	})

	snapshot := jar.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, domain.Cookie{
		Name:     "sid",
		Value:    "abc",
		Domain:   ".example.com",
		Path:     "/",
		Expires:  expires,
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	}, snapshot[0])

	restored := newCookieJar()
	restored.Restore("feed.example.com", snapshot)
	assert.Equal(t, snapshot, restored.Snapshot())
}

func TestJarRestoreReplacesPreviousContents(t *testing.T) {
	t.Parallel()

	jar := newCookieJar()
	jar.SetCookies(mustParseURL(t, "https://feed.example.com/"), []*http.Cookie{{Name: "old", Value: "1"}})

	jar.Restore("feed.example.com", []domain.Cookie{{Name: "fresh", Value: "2"}})

	snapshot := jar.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "fresh", snapshot[0].Name)
	assert.Equal(t, "feed.example.com", snapshot[0].Domain)
}
