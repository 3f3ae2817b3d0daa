package feedhttp

import (
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bnema/feedkeeper/internal/domain"
)

// cookieJar keeps every attribute the server sets. net/http/cookiejar
// narrows stored cookies to name/value pairs, which is not enough here:
// session cookies round-trip through persistence and a restored session
// must replay domain, path and flags exactly as received.
type cookieJar struct {
	mu      sync.Mutex
	cookies map[string]http.Cookie
}

var _ http.CookieJar = (*cookieJar)(nil)

func newCookieJar() *cookieJar {
	return &cookieJar{cookies: make(map[string]http.Cookie)}
}

func (j *cookieJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, cookie := range cookies {
		if cookie == nil || cookie.Name == "" {
			continue
		}

		stored := *cookie
		if stored.Domain == "" {
			stored.Domain = u.Hostname()
		}
		if stored.Path == "" {
			stored.Path = "/"
		}

		key := cookieKey(stored.Domain, stored.Path, stored.Name)
		if stored.MaxAge < 0 || (!stored.Expires.IsZero() && stored.Expires.Before(time.Now())) {
			delete(j.cookies, key)

			continue
		}

		j.cookies[key] = stored
	}
}

// Cookies returns the cookies to send with a request to u. The jar serves
// a single API origin, so scheme is not consulted: cookies captured over
// https still replay against an http test server.
func (j *cookieJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()

	host := u.Hostname()
	path := u.Path
	if path == "" {
		path = "/"
	}

	matched := make([]*http.Cookie, 0, len(j.cookies))
	for _, cookie := range j.cookies {
		if !domainMatches(host, cookie.Domain) || !pathMatches(path, cookie.Path) {
			continue
		}

		matched = append(matched, &http.Cookie{Name: cookie.Name, Value: cookie.Value})
	}

	sort.Slice(matched, func(i, k int) bool { return matched[i].Name < matched[k].Name })

	return matched
}

// Snapshot copies the jar contents in a stable order.
func (j *cookieJar) Snapshot() []domain.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()

	keys := make([]string, 0, len(j.cookies))
	for key := range j.cookies {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	snapshot := make([]domain.Cookie, 0, len(keys))
	for _, key := range keys {
		cookie := j.cookies[key]
		snapshot = append(snapshot, domain.Cookie{
			Name:     cookie.Name,
			Value:    cookie.Value,
			Domain:   cookie.Domain,
			Path:     cookie.Path,
			Expires:  cookie.Expires,
			Secure:   cookie.Secure,
			HTTPOnly: cookie.HttpOnly,
			SameSite: sameSiteLabel(cookie.SameSite),
		})
	}

	return snapshot
}

// Restore replaces the jar contents with the given cookies.
func (j *cookieJar) Restore(host string, cookies []domain.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.cookies = make(map[string]http.Cookie, len(cookies))
	for _, cookie := range cookies {
		if cookie.Name == "" {
			continue
		}

		restored := http.Cookie{
			Name:     cookie.Name,
			Value:    cookie.Value,
			Domain:   cookie.Domain,
			Path:     cookie.Path,
			Expires:  cookie.Expires,
			Secure:   cookie.Secure,
			HttpOnly: cookie.HTTPOnly,
			SameSite: sameSiteMode(cookie.SameSite),
		}
		if restored.Domain == "" {
			restored.Domain = host
		}
		if restored.Path == "" {
			restored.Path = "/"
		}

		j.cookies[cookieKey(restored.Domain, restored.Path, restored.Name)] = restored
	}
}

func cookieKey(cookieDomain, cookiePath, name string) string {
	return strings.TrimPrefix(cookieDomain, ".") + "|" + cookiePath + "|" + name
}

func domainMatches(host, cookieDomain string) bool {
	cookieDomain = strings.TrimPrefix(cookieDomain, ".")
	if cookieDomain == "" {
		return false
	}

	return host == cookieDomain || strings.HasSuffix(host, "."+cookieDomain)
}

func pathMatches(requestPath, cookiePath string) bool {
	if cookiePath == "" || cookiePath == "/" {
		return true
	}
	if !strings.HasPrefix(requestPath, cookiePath) {
		return false
	}

	return len(requestPath) == len(cookiePath) ||
		strings.HasSuffix(cookiePath, "/") ||
		requestPath[len(cookiePath)] == '/'
}

func sameSiteLabel(mode http.SameSite) string {
	switch mode {
	case http.SameSiteLaxMode:
		return "Lax"
	case http.SameSiteStrictMode:
		return "Strict"
	case http.SameSiteNoneMode:
		return "None"
	default:
		return ""
	}
}

func sameSiteMode(label string) http.SameSite {
	switch strings.ToLower(label) {
	case "lax":
		return http.SameSiteLaxMode
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteDefaultMode
	}
}
