// Package sqlite provides SQLite-backed persistence for ingested records
// and small durable client state.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/bnema/feedkeeper/internal/domain"
	"github.com/bnema/feedkeeper/internal/ports"
)

// Store provides access to the record database.
type Store struct {
	db *sql.DB
}

var (
	_ ports.RecordStore = (*Store)(nil)
	_ ports.StateStore  = (*Store)(nil)
)

// New opens (or creates) the database at dbPath and runs migrations.
func New(dbPath string) (*Store, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, errors.New("record database path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	// WAL keeps reads cheap while the ingest loop writes.
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite only supports one writer at a time
	db.SetMaxIdleConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()

		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// migrate runs idempotent schema migrations.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		id TEXT PRIMARY KEY,
		agent_id TEXT NOT NULL,
		room_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		source TEXT NOT NULL,
		url TEXT,
		reply_to_id TEXT,
		body TEXT,
		created_at DATETIME NOT NULL,
		ingested_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT,
		handle TEXT,
		source TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS connections (
		room_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		PRIMARY KEY (room_id, user_id)
	);

	CREATE TABLE IF NOT EXISTS state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_records_room_id ON records(room_id);
	CREATE INDEX IF NOT EXISTS idx_records_agent_id ON records(agent_id);
	`

	_, err := s.db.Exec(schema)

	return err
}

// CreateRecord inserts a record. Re-inserting an existing id is a no-op,
// the stored row wins.
func (s *Store) CreateRecord(ctx context.Context, record domain.Record) error {
	if record.ID == "" {
		return errors.New("record id is empty")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO records (id, agent_id, room_id, user_id, source, url, reply_to_id, body, created_at, ingested_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`,
		string(record.ID), string(record.AgentID), string(record.RoomID), string(record.UserID),
		record.Source, record.URL, string(record.ReplyToID), record.Text,
		record.CreatedAt.UTC(), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}

	return nil
}

// RecordByID retrieves a record, or domain.ErrRecordNotFound.
func (s *Store) RecordByID(ctx context.Context, id domain.RecordID) (domain.Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, agent_id, room_id, user_id, source, url, reply_to_id, body, created_at
		 FROM records WHERE id = ?`,
		string(id),
	)

	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Record{}, domain.ErrRecordNotFound
	}
	if err != nil {
		return domain.Record{}, fmt.Errorf("query record: %w", err)
	}

	return record, nil
}

// RecordsByRooms returns every record belonging to the given rooms, oldest
// first. An empty room list yields an empty result.
func (s *Store) RecordsByRooms(ctx context.Context, roomIDs []domain.RoomID) ([]domain.Record, error) {
	if len(roomIDs) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(roomIDs))
	args := make([]any, len(roomIDs))
	for i, roomID := range roomIDs {
		placeholders[i] = "?"
		args[i] = string(roomID)
	}

	query := `SELECT id, agent_id, room_id, user_id, source, url, reply_to_id, body, created_at
		 FROM records WHERE room_id IN (` + strings.Join(placeholders, ", ") + `) ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// EnsureUser upserts a user row, refreshing the profile fields.
func (s *Store) EnsureUser(ctx context.Context, user domain.UserID, name, handle, source string) error {
	if user == "" {
		return errors.New("user id is empty")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, name, handle, source) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, handle = excluded.handle, source = excluded.source`,
		string(user), name, handle, source,
	)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}

	return nil
}

// EnsureConnection makes sure the user exists and is joined to the room.
func (s *Store) EnsureConnection(ctx context.Context, user domain.UserID, room domain.RoomID, name, handle, source string) error {
	if room == "" {
		return errors.New("room id is empty")
	}

	if err := s.EnsureUser(ctx, user, name, handle, source); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO connections (room_id, user_id) VALUES (?, ?)
		 ON CONFLICT(room_id, user_id) DO NOTHING`,
		string(room), string(user),
	)
	if err != nil {
		return fmt.Errorf("insert connection: %w", err)
	}

	return nil
}

// RecordCount reports the number of stored records.
func (s *Store) RecordCount(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}

	return count, nil
}

// GetState reads a state value. A missing key reads as an empty string.
func (s *Store) GetState(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query state %s: %w", key, err)
	}

	return value, nil
}

// SetState writes a state value, replacing any previous one.
func (s *Store) SetState(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.New("state key is empty")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO state (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set state %s: %w", key, err)
	}

	return nil
}

// DeleteState removes a state key. Deleting a missing key is a no-op.
func (s *Store) DeleteState(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM state WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete state %s: %w", key, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (domain.Record, error) {
	var id, agentID, roomID, userID, source, link, replyTo, body string
	var createdAt time.Time

	if err := row.Scan(&id, &agentID, &roomID, &userID, &source, &link, &replyTo, &body, &createdAt); err != nil {
		return domain.Record{}, err
	}

	return domain.Record{
		ID:        domain.RecordID(id),
		AgentID:   domain.UserID(agentID),
		RoomID:    domain.RoomID(roomID),
		UserID:    domain.UserID(userID),
		Source:    source,
		URL:       link,
		ReplyToID: domain.RecordID(replyTo),
		Text:      body,
		CreatedAt: createdAt,
	}, nil
}
