package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/feedkeeper/internal/adapters/cookies"
	chaincookies "github.com/bnema/feedkeeper/internal/adapters/cookies/chain"
	filecookies "github.com/bnema/feedkeeper/internal/adapters/cookies/file"
	statecookies "github.com/bnema/feedkeeper/internal/adapters/cookies/state"
	"github.com/bnema/feedkeeper/internal/adapters/feedhttp"
	"github.com/bnema/feedkeeper/internal/adapters/records/memory"
	"github.com/bnema/feedkeeper/internal/adapters/records/sqlite"
	statusadapter "github.com/bnema/feedkeeper/internal/adapters/render/status"
	tomlrepo "github.com/bnema/feedkeeper/internal/adapters/repo/toml"
	chainsecrets "github.com/bnema/feedkeeper/internal/adapters/secrets/chain"
	"github.com/bnema/feedkeeper/internal/cache"
	"github.com/bnema/feedkeeper/internal/client"
	"github.com/bnema/feedkeeper/internal/dispatch"
	"github.com/bnema/feedkeeper/internal/domain"
	"github.com/bnema/feedkeeper/internal/ingest"
	"github.com/bnema/feedkeeper/internal/ports"
	"github.com/bnema/feedkeeper/internal/session"
	"github.com/spf13/viper"
)

const (
	configDirName   = ".feedkeeper"
	secretNamespace = "feedkeeper"

	// recordSource labels every record written during reconciliation.
	recordSource = "feedkeeper"
)

type app struct {
	profiles       ports.ProfileRepository
	secrets        ports.SecretStore
	statusRenderer func(client.Status, statusadapter.RenderOptions) (string, error)
	settings       settings
	httpClient     *http.Client
	now            func() time.Time
}

type settings struct {
	BaseURL        string
	UserAgent      string
	DataDir        string
	RecordsBackend string
	DefaultProfile string
	PacingMin      time.Duration
	PacingMax      time.Duration
	SearchLimit    int
	TimelineDepth  int
	PollInterval   time.Duration
	IdentityDelay  time.Duration
	FetchTimeout   time.Duration
}

func wireApp() (*app, error) {
	repo, err := tomlrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire profile repository: %w", err)
	}

	cfg, err := loadSettings(viper.New())
	if err != nil {
		return nil, err
	}

	secretStore, err := chainsecrets.NewPassFirstWithFileFallback(filepath.Join(cfg.DataDir, "secrets"), secretNamespace)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	return &app{
		profiles:       repo,
		secrets:        secretStore,
		statusRenderer: statusadapter.Render,
		settings:       cfg,
		httpClient:     http.DefaultClient,
		now:            time.Now,
	}, nil
}

func loadSettings(cfg *viper.Viper) (settings, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return settings{}, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName))
	cfg.SetDefault("api.base_url", "https://api.feedkeeper.dev")
	cfg.SetDefault("api.user_agent", "")
	cfg.SetDefault("data.dir", filepath.Join(homeDir, configDirName))
	cfg.SetDefault("records.backend", "sqlite")
	cfg.SetDefault("profile.default", "")
	cfg.SetDefault("dispatch.pacing_min", 1500*time.Millisecond)
	cfg.SetDefault("dispatch.pacing_max", 3500*time.Millisecond)
	cfg.SetDefault("ingest.search_limit", 40)
	cfg.SetDefault("ingest.timeline_depth", 20)
	cfg.SetDefault("session.poll_interval", 2*time.Second)
	cfg.SetDefault("session.identity_delay", 5*time.Second)
	cfg.SetDefault("fetch.timeout", 15*time.Second)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return settings{}, fmt.Errorf("read config file: %w", err)
		}
	}

	return settings{
		BaseURL:        envOrDefault("FK_API_BASE_URL", cfg.GetString("api.base_url")),
		UserAgent:      envOrDefault("FK_USER_AGENT", cfg.GetString("api.user_agent")),
		DataDir:        envOrDefault("FK_DATA_DIR", cfg.GetString("data.dir")),
		RecordsBackend: envOrDefault("FK_RECORDS_BACKEND", cfg.GetString("records.backend")),
		DefaultProfile: envOrDefault("FK_PROFILE", cfg.GetString("profile.default")),
		PacingMin:      cfg.GetDuration("dispatch.pacing_min"),
		PacingMax:      cfg.GetDuration("dispatch.pacing_max"),
		SearchLimit:    cfg.GetInt("ingest.search_limit"),
		TimelineDepth:  cfg.GetInt("ingest.timeline_depth"),
		PollInterval:   cfg.GetDuration("session.poll_interval"),
		IdentityDelay:  cfg.GetDuration("session.identity_delay"),
		FetchTimeout:   cfg.GetDuration("fetch.timeout"),
	}, nil
}

type wireOptions struct {
	// credentials resolves the profile's stored secret into login
	// credentials; commands that never authenticate leave it off.
	credentials bool
	logger      *slog.Logger
}

// wireProfileClient assembles the full per-profile client: feed adapter,
// dispatch queue, cache, record store, cookie chain and session manager.
// The returned closer releases the record database.
func wireProfileClient(ctx context.Context, app *app, profileID string, opts wireOptions) (*client.Client, func(), error) {
	profile, err := resolveProfile(ctx, app, profileID)
	if err != nil {
		return nil, nil, err
	}

	logger := opts.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	profileDir := filepath.Join(app.settings.DataDir, string(profile.ID))

	itemCache, err := cache.NewStore(filepath.Join(profileDir, "cache"), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("wire item cache: %w", err)
	}

	records, states, closeRecords, err := wireRecordStores(app.settings.RecordsBackend, profileDir)
	if err != nil {
		return nil, nil, err
	}

	stateStore, err := statecookies.NewStore(states, profile.ID)
	if err != nil {
		closeRecords()
		return nil, nil, fmt.Errorf("wire cookie store: %w", err)
	}
	cookieStore, err := chaincookies.NewStore(stateStore, filecookies.NewStore(filepath.Join(profileDir, "cookies"), profile.ID))
	if err != nil {
		closeRecords()
		return nil, nil, fmt.Errorf("wire cookie store chain: %w", err)
	}

	snapshots, err := ingest.NewFileSnapshotStore(filepath.Join(profileDir, "snapshot.json"))
	if err != nil {
		closeRecords()
		return nil, nil, fmt.Errorf("wire snapshot store: %w", err)
	}
	marker, err := ingest.NewFileMarkerStore(filepath.Join(profileDir, "latest_item"))
	if err != nil {
		closeRecords()
		return nil, nil, fmt.Errorf("wire marker store: %w", err)
	}

	feed, err := feedhttp.NewClient(feedhttp.Config{
		BaseURL:    app.settings.BaseURL,
		HTTPClient: app.httpClient,
		UserAgent:  app.settings.UserAgent,
		Logger:     logger,
	})
	if err != nil {
		closeRecords()
		return nil, nil, fmt.Errorf("wire feed client: %w", err)
	}

	queue := dispatch.New(dispatch.Config{
		PacingMin: app.settings.PacingMin,
		PacingMax: app.settings.PacingMax,
		Logger:    logger,
	})

	creds := session.Credentials{Handle: profile.Handle, Contact: profile.Contact}
	if opts.credentials {
		creds, err = resolveCredentials(ctx, app, profile)
		if err != nil {
			closeRecords()
			return nil, nil, err
		}
	}

	sessionManager, err := session.NewManager(session.Config{
		Credentials:     creds,
		Feed:            feed,
		Queue:           queue,
		CredentialStore: cookieStore,
		Logger:          logger,
		PollInterval:    app.settings.PollInterval,
		IdentityDelay:   app.settings.IdentityDelay,
	})
	if err != nil {
		closeRecords()
		return nil, nil, fmt.Errorf("wire session manager: %w", err)
	}

	feedClient, err := client.New(client.Config{
		Profile:       profile,
		Feed:          feed,
		Queue:         queue,
		Cache:         itemCache,
		Records:       records,
		Session:       sessionManager,
		Snapshots:     snapshots,
		Marker:        marker,
		Source:        recordSource,
		SearchLimit:   app.settings.SearchLimit,
		TimelineDepth: app.settings.TimelineDepth,
		FetchTimeout:  app.settings.FetchTimeout,
		Logger:        logger,
	})
	if err != nil {
		closeRecords()
		return nil, nil, fmt.Errorf("wire profile client: %w", err)
	}

	return feedClient, closeRecords, nil
}

func wireRecordStores(backend, profileDir string) (ports.RecordStore, ports.StateStore, func(), error) {
	switch backend {
	case "sqlite":
		store, err := sqlite.New(filepath.Join(profileDir, "records.db"))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open record store: %w", err)
		}
		return store, store, func() { _ = store.Close() }, nil
	case "memory":
		store := memory.New()
		return store, store, func() {}, nil
	default:
		return nil, nil, nil, fmt.Errorf("unsupported records backend %q", backend)
	}
}

// resolveProfile picks the profile a command runs as: the explicit flag
// first, then the configured default, then the only profile there is.
func resolveProfile(ctx context.Context, app *app, profileID string) (domain.Profile, error) {
	if profileID == "" {
		profileID = app.settings.DefaultProfile
	}
	if profileID != "" {
		profile, err := app.profiles.GetByID(ctx, domain.ProfileID(profileID))
		if err != nil {
			return domain.Profile{}, fmt.Errorf("load profile %q: %w", profileID, err)
		}
		return profile, nil
	}

	profiles, err := app.profiles.List(ctx)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("list profiles: %w", err)
	}

	switch len(profiles) {
	case 0:
		return domain.Profile{}, errors.New("no profiles configured, add one with 'fk profile add'")
	case 1:
		return profiles[0], nil
	default:
		ids := make([]string, 0, len(profiles))
		for _, profile := range profiles {
			ids = append(ids, string(profile.ID))
		}
		return domain.Profile{}, fmt.Errorf("multiple profiles configured (%s), pass --profile", strings.Join(ids, ", "))
	}
}

// resolveCredentials turns the profile's stored auth reference into the
// credentials the session manager boots with.
func resolveCredentials(ctx context.Context, app *app, profile domain.Profile) (session.Credentials, error) {
	creds := session.Credentials{
		Handle:  profile.Handle,
		Contact: profile.Contact,
	}

	switch profile.Auth.Method {
	case domain.AuthMethodPassword:
		password, err := app.secrets.Get(ctx, profile.Auth.SecretRef)
		if err != nil {
			return session.Credentials{}, fmt.Errorf("load password secret %q: %w", profile.Auth.SecretRef, err)
		}
		creds.Password = password
	case domain.AuthMethodCookies:
		payload, err := app.secrets.Get(ctx, profile.Auth.SecretRef)
		if err != nil {
			return session.Credentials{}, fmt.Errorf("load cookie secret %q: %w", profile.Auth.SecretRef, err)
		}
		decoded, err := cookies.Decode([]byte(payload))
		if err != nil {
			return session.Credentials{}, fmt.Errorf("decode cookie secret %q: %w", profile.Auth.SecretRef, err)
		}
		creds.Cookies = decoded
	case "":
		// No stored auth. The session can still come up from previously
		// persisted cookies.
	default:
		return session.Credentials{}, fmt.Errorf("unsupported auth method %q", profile.Auth.Method)
	}

	return creds, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
