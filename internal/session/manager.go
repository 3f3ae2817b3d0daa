package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/bnema/feedkeeper/internal/dispatch"
	"github.com/bnema/feedkeeper/internal/domain"
	"github.com/bnema/feedkeeper/internal/ports"
)

type State int

const (
	StateUninitialized State = iota
	StateAuthenticating
	StateAuthenticated
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Credentials is the material the manager may use to authenticate. Cookies,
// when present, install an externally captured session and skip the login
// call entirely.
type Credentials struct {
	Handle   string
	Password string
	Contact  string
	Cookies  []domain.Cookie
}

type Config struct {
	Credentials     Credentials
	Feed            ports.Feed
	Queue           *dispatch.Queue
	CredentialStore ports.CookieStore
	Clock           ports.Clock
	Logger          *slog.Logger
	// PollInterval is the fixed sleep between session verification polls.
	PollInterval time.Duration
	// PollsPerLogin is how many failed polls force a fresh login.
	PollsPerLogin int
	// IdentityDelay is slept after verification before the account id lookup.
	IdentityDelay time.Duration
}

const (
	defaultPollInterval  = 2 * time.Second
	defaultPollsPerLogin = 10
	defaultIdentityDelay = 5 * time.Second
)

func (c *Config) applyDefaults() {
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}
	if c.PollsPerLogin <= 0 {
		c.PollsPerLogin = defaultPollsPerLogin
	}
	if c.IdentityDelay <= 0 {
		c.IdentityDelay = defaultIdentityDelay
	}
	if c.Clock == nil {
		c.Clock = ports.SystemClock{}
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Manager owns the feed session: it installs credentials, verifies the
// session against the remote end and resolves the account id. State moves
// Uninitialized -> Authenticating -> Authenticated, or to Failed on a
// terminal error.
type Manager struct {
	cfg Config

	mu     sync.RWMutex
	state  State
	userID domain.UserID
}

func NewManager(cfg Config) (*Manager, error) {
	if cfg.Feed == nil {
		return nil, errors.New("feed is required")
	}
	if cfg.Queue == nil {
		return nil, errors.New("dispatch queue is required")
	}
	if cfg.CredentialStore == nil {
		return nil, errors.New("credential store is required")
	}
	if strings.TrimSpace(cfg.Credentials.Handle) == "" {
		return nil, errors.New("profile handle is required")
	}
	cfg.applyDefaults()

	return &Manager{cfg: cfg}, nil
}

// Bootstrap runs the authentication sequence once: install credentials,
// verify the session, resolve the account id. It blocks until the session
// is ready, the context ends, or a terminal error moves the manager to
// Failed. The verification loop is unbounded in wall-clock time; only a
// login error, an id-resolution error or context end exits it.
func (m *Manager) Bootstrap(ctx context.Context) error {
	m.setState(StateAuthenticating)

	if err := m.installCredentials(ctx); err != nil {
		m.fail(err)
		return err
	}

	if err := m.awaitActiveSession(ctx); err != nil {
		m.fail(err)
		return err
	}

	userID, err := m.resolveIdentity(ctx)
	if err != nil {
		m.fail(err)
		return err
	}

	m.mu.Lock()
	m.userID = userID
	m.state = StateAuthenticated
	m.mu.Unlock()

	m.cfg.Logger.Info("session ready", "handle", m.cfg.Credentials.Handle, "user_id", userID)
	return nil
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state
}

func (m *Manager) Ready() bool {
	return m.State() == StateAuthenticated
}

// UserID is empty until the manager reaches Authenticated.
func (m *Manager) UserID() domain.UserID {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.userID
}

func (m *Manager) installCredentials(ctx context.Context) error {
	if cookies := m.freshInlineCookies(); len(cookies) > 0 {
		if err := m.cfg.Feed.SetCookies(ctx, cookies); err != nil {
			return fmt.Errorf("install inline cookies: %w", err)
		}
		if err := m.cfg.CredentialStore.Save(ctx, cookies); err != nil {
			return fmt.Errorf("persist inline cookies: %w", err)
		}

		m.cfg.Logger.Info("installed inline cookies", "count", len(cookies))
		return nil
	}

	stored, err := m.cfg.CredentialStore.Load(ctx)
	if err != nil && !errors.Is(err, domain.ErrNoStoredCookies) {
		return fmt.Errorf("load stored cookies: %w", err)
	}
	if err == nil && len(stored) > 0 {
		if err := m.cfg.Feed.SetCookies(ctx, stored); err != nil {
			return fmt.Errorf("install stored cookies: %w", err)
		}

		m.cfg.Logger.Info("restored stored cookies", "count", len(stored))
		return nil
	}

	return m.login(ctx)
}

// login performs the interactive login through the queue and persists the
// resulting cookies. Any error here is terminal for the bootstrap attempt.
func (m *Manager) login(ctx context.Context) error {
	creds := m.cfg.Credentials
	if creds.Password == "" {
		return errors.New("password required for interactive login")
	}

	err := m.cfg.Queue.Submit(ctx, func(opCtx context.Context) error {
		return m.cfg.Feed.Login(opCtx, creds.Handle, creds.Password, creds.Contact)
	})
	if err != nil {
		return fmt.Errorf("interactive login: %w", err)
	}

	cookies, err := m.cfg.Feed.Cookies(ctx)
	if err != nil {
		return fmt.Errorf("read session cookies: %w", err)
	}
	if err := m.cfg.CredentialStore.Save(ctx, cookies); err != nil {
		return fmt.Errorf("persist session cookies: %w", err)
	}

	m.cfg.Logger.Info("logged in", "handle", creds.Handle)
	return nil
}

// awaitActiveSession polls the remote verification endpoint once per
// PollInterval. Every PollsPerLogin consecutive failures it forces a fresh
// login and resets the counter, so stale installed cookies eventually give
// way to a real login.
func (m *Manager) awaitActiveSession(ctx context.Context) error {
	failures := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		active, err := m.cfg.Feed.SessionActive(ctx)
		if err == nil && active {
			m.cfg.Logger.Info("session verified")
			return nil
		}
		if err != nil {
			m.cfg.Logger.Warn("session verification failed", "error", err)
		}

		failures++
		if failures >= m.cfg.PollsPerLogin {
			m.cfg.Logger.Warn("session still inactive, forcing fresh login", "failed_polls", failures)
			if err := m.login(ctx); err != nil {
				return err
			}
			failures = 0
		}

		if err := m.sleep(ctx, m.cfg.PollInterval); err != nil {
			return err
		}
	}
}

func (m *Manager) resolveIdentity(ctx context.Context) (domain.UserID, error) {
	if err := m.sleep(ctx, m.cfg.IdentityDelay); err != nil {
		return "", err
	}

	handle := m.cfg.Credentials.Handle
	userID, err := dispatch.Call(ctx, m.cfg.Queue, func(opCtx context.Context) (domain.UserID, error) {
		return m.cfg.Feed.ResolveUserID(opCtx, handle)
	})
	if err != nil {
		return "", fmt.Errorf("resolve account id for %s: %w", handle, err)
	}

	return userID, nil
}

// freshInlineCookies filters the externally supplied cookies down to the
// ones still valid at the current clock reading.
func (m *Manager) freshInlineCookies() []domain.Cookie {
	supplied := m.cfg.Credentials.Cookies
	if len(supplied) == 0 {
		return nil
	}

	now := m.cfg.Clock.Now()
	fresh := make([]domain.Cookie, 0, len(supplied))
	for _, cookie := range supplied {
		if cookie.Expired(now) {
			continue
		}
		fresh = append(fresh, cookie)
	}

	if dropped := len(supplied) - len(fresh); dropped > 0 {
		m.cfg.Logger.Warn("dropping expired inline cookies", "dropped", dropped)
	}

	return fresh
}

func (m *Manager) setState(state State) {
	m.mu.Lock()
	m.state = state
	m.mu.Unlock()
}

func (m *Manager) fail(err error) {
	m.setState(StateFailed)
	m.cfg.Logger.Error("session bootstrap failed", "error", err)
}

func (m *Manager) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
