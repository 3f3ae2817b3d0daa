// Package memory provides an in-memory record store for tests and
// ephemeral runs where nothing should touch disk.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/bnema/feedkeeper/internal/domain"
	"github.com/bnema/feedkeeper/internal/ports"
)

type userRow struct {
	name   string
	handle string
	source string
}

type connectionKey struct {
	room domain.RoomID
	user domain.UserID
}

// Store keeps records, users, connections and state in process memory.
type Store struct {
	mu          sync.RWMutex
	records     map[domain.RecordID]domain.Record
	users       map[domain.UserID]userRow
	connections map[connectionKey]struct{}
	state       map[string]string
}

var (
	_ ports.RecordStore = (*Store)(nil)
	_ ports.StateStore  = (*Store)(nil)
)

func New() *Store {
	return &Store{
		records:     make(map[domain.RecordID]domain.Record),
		users:       make(map[domain.UserID]userRow),
		connections: make(map[connectionKey]struct{}),
		state:       make(map[string]string),
	}
}

func (s *Store) CreateRecord(ctx context.Context, record domain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if record.ID == "" {
		return errors.New("record id is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[record.ID]; exists {
		return nil
	}
	s.records[record.ID] = record

	return nil
}

func (s *Store) RecordByID(ctx context.Context, id domain.RecordID) (domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return domain.Record{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return domain.Record{}, domain.ErrRecordNotFound
	}

	return record, nil
}

func (s *Store) RecordsByRooms(ctx context.Context, roomIDs []domain.RoomID) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(roomIDs) == 0 {
		return nil, nil
	}

	wanted := make(map[domain.RoomID]struct{}, len(roomIDs))
	for _, roomID := range roomIDs {
		wanted[roomID] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []domain.Record
	for _, record := range s.records {
		if _, ok := wanted[record.RoomID]; ok {
			records = append(records, record)
		}
	}

	sort.Slice(records, func(i, k int) bool {
		if !records[i].CreatedAt.Equal(records[k].CreatedAt) {
			return records[i].CreatedAt.Before(records[k].CreatedAt)
		}

		return records[i].ID < records[k].ID
	})

	return records, nil
}

func (s *Store) EnsureUser(ctx context.Context, user domain.UserID, name, handle, source string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if user == "" {
		return errors.New("user id is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[user] = userRow{name: name, handle: handle, source: source}

	return nil
}

func (s *Store) EnsureConnection(ctx context.Context, user domain.UserID, room domain.RoomID, name, handle, source string) error {
	if room == "" {
		return errors.New("room id is empty")
	}

	if err := s.EnsureUser(ctx, user, name, handle, source); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.connections[connectionKey{room: room, user: user}] = struct{}{}

	return nil
}

// Joined reports whether the user has a connection to the room.
func (s *Store) Joined(user domain.UserID, room domain.RoomID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.connections[connectionKey{room: room, user: user}]

	return ok
}

// RecordCount reports the number of stored records.
func (s *Store) RecordCount(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records), nil
}

func (s *Store) GetState(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state[key], nil
}

func (s *Store) SetState(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return errors.New("state key is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state[key] = value

	return nil
}

func (s *Store) DeleteState(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.state, key)

	return nil
}
