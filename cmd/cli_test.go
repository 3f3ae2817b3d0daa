package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileListShowsConfiguredProfiles(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home))

	stdout, _, err := executeCLI(t, home, "profile", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "main")
	assert.Contains(t, stdout, "@keeper")
	assert.Contains(t, stdout, "Feed Keeper")
}

func TestProfileAddThenList(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home))

	_, _, err := executeCLI(t, home, "profile", "add", "--id", "alt", "--handle", "nightowl")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "profile", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "alt")
	assert.Contains(t, stdout, "@nightowl")
}

func TestAuthSetRequiresSecretValueFlag(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home))

	_, _, err := executeCLI(t, home,
		"auth", "set",
		"--profile", "main",
		"--method", "password",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"secret-value\" not set")
}

func TestAuthSetRejectsUnknownMethod(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home))

	_, _, err := executeCLI(t, home,
		"auth", "set",
		"--profile", "main",
		"--method", "oauth",
		"--secret-value", "token",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported auth method \"oauth\"")
}

func TestAuthSetStoresSecretReference(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home))

	_, _, err := executeCLI(t, home,
		"auth", "set",
		"--profile", "main",
		"--method", "password",
		"--secret-value", "hunter2",
	)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(home, ".feedkeeper", "profiles.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "method = \"password\"")
	assert.Contains(t, string(data), "secret_ref = \"main/password\"")
}

func TestAuthRemoveClearsSecretReference(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home))
	storePassword(t, home)

	_, _, err := executeCLI(t, home, "auth", "remove", "--profile", "main")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(home, ".feedkeeper", "profiles.toml"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "main/password")
}

func TestStatusShowsDurableStateOffline(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home))

	stdout, _, err := executeCLI(t, home, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Feedkeeper Status")
	assert.Contains(t, stdout, "profile: main (@keeper)")
	assert.Contains(t, stdout, "state: uninitialized")
	assert.Contains(t, stdout, "records: 0")
	assert.Contains(t, stdout, "last seen: never")
	assert.Contains(t, stdout, "0 pending")
}

func TestStatusJSONOutput(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home))

	stdout, _, err := executeCLI(t, home, "status", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"Profile\"")
	assert.Contains(t, stdout, "\"Session\"")
}

func TestStatusRequiresProfileFlagWithMultipleProfiles(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home))

	_, _, err := executeCLI(t, home, "profile", "add", "--id", "alt", "--handle", "nightowl")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "status")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pass --profile")

	stdout, _, err := executeCLI(t, home, "status", "--profile", "alt")
	require.NoError(t, err)
	assert.Contains(t, stdout, "profile: alt (@nightowl)")
}

func TestFetchServesFromCacheWithoutNetwork(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home))
	require.NoError(t, writeCachedItemFixture(home))

	stdout, _, err := executeCLI(t, home, "fetch", "1001")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Ada (@ada)")
	assert.Contains(t, stdout, "cached while offline")
}

func TestFetchMissWithoutStoredAuthFails(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home))

	_, _, err := executeCLI(t, home, "fetch", "4040")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password required for interactive login")
}

func TestLoginHappyPath(t *testing.T) {
	server := newFeedStub()
	defer server.Close()

	t.Setenv("FK_API_BASE_URL", server.URL)

	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home))
	storePassword(t, home)

	stdout, stderr, err := executeCLI(t, home, "login")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Logged in as @keeper (account 9001)")
	assert.Contains(t, stderr, "Authenticating")
}

func TestSearchPrintsResults(t *testing.T) {
	server := newFeedStub()
	defer server.Close()

	t.Setenv("FK_API_BASE_URL", server.URL)

	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home))
	storePassword(t, home)

	stdout, _, err := executeCLI(t, home, "search", "golang generics")
	require.NoError(t, err)
	assert.Contains(t, stdout, "2001")
	assert.Contains(t, stdout, "@gopher")
	assert.Contains(t, stdout, "golang generics explained")
}

func TestSearchRejectsUnknownMode(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home))

	_, _, err := executeCLI(t, home, "search", "golang", "--mode", "spicy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported search mode \"spicy\"")
}

func TestRunOncePersistsRecords(t *testing.T) {
	server := newFeedStub()
	defer server.Close()

	t.Setenv("FK_API_BASE_URL", server.URL)

	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home))
	storePassword(t, home)

	_, stderr, err := executeCLI(t, home, "run")
	require.NoError(t, err)
	assert.Contains(t, stderr, "reconcile pass finished")
	assert.Contains(t, stderr, "\"created\":1")

	stdout, _, err := executeCLI(t, home, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "records: 1")
	assert.Contains(t, stdout, "last seen: 2001")
}

func TestVersionPrintsVersion(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func TestUnknownCommandFails(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "usage")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command \"usage\"")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func storePassword(t *testing.T, home string) {
	t.Helper()

	_, _, err := executeCLI(t, home,
		"auth", "set",
		"--profile", "main",
		"--method", "password",
		"--secret-value", "hunter2",
	)
	require.NoError(t, err)
}

// newFeedStub answers the whole bootstrap-and-reconcile surface: login,
// verification, id lookup, search and timeline.
func newFeedStub() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/session":
			time.Sleep(50 * time.Millisecond)
			http.SetCookie(w, &http.Cookie{Name: "sid", Value: "stub-session", Path: "/"})
		case "/api/v1/session/verify":
			_, _ = fmt.Fprint(w, `{"active":true}`)
		case "/api/v1/users/lookup":
			_, _ = fmt.Fprint(w, `{"user_id":"9001"}`)
		case "/api/v1/search":
			_, _ = fmt.Fprint(w, `{"items":[{"id":"2001","thread_id":"2001","author_id":"77","author_name":"Gopher","author_handle":"gopher","text":"golang generics explained","created_at":"2026-02-26T10:00:00Z"}],"next_cursor":""}`)
		case "/api/v1/timeline/home":
			_, _ = fmt.Fprint(w, `{"items":[]}`)
		default:
			http.NotFound(w, r)
		}
	}))
}

func writeProfilesFixture(home string) error {
	configDir := filepath.Join(home, ".feedkeeper")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	profiles := `version = 1

[[profiles]]
id = "main"
handle = "keeper"
name = "Feed Keeper"
contact = "keeper@example.com"

[profiles.auth]
method = ""
secret_ref = ""
`
	if err := os.WriteFile(filepath.Join(configDir, "profiles.toml"), []byte(profiles), 0o644); err != nil {
		return err
	}

	config := `[dispatch]
pacing_min = "1ms"
pacing_max = "2ms"

[session]
poll_interval = "5ms"
identity_delay = "1ms"

[ingest]
search_limit = 10
timeline_depth = 5
`

	return os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(config), 0o644)
}

func writeCachedItemFixture(home string) error {
	dir := filepath.Join(home, ".feedkeeper", "main", "cache", "900")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	item := `{"version":1,"id":"1001","thread_id":"900","author_id":"42","author_name":"Ada","author_handle":"ada","text":"cached while offline","created_at":"2026-02-26T10:00:00Z"}`

	return os.WriteFile(filepath.Join(dir, "1001.json"), []byte(item), 0o644)
}
