package repository

import (
	"context"
	"sort"
	"sync"

	"fsanano/train-booking/internal/model"
)

// memoryTable is a mutex guarded map keyed by id. Ids are assigned
// sequentially on insert; explicit ids move the sequence forward.
type memoryTable[T any] struct {
	mu     sync.RWMutex
	lastID int64
	rows   map[int64]T

	id    func(T) int64
	setID func(*T, int64)
	clone func(T) T
}

func newMemoryTable[T any](id func(T) int64, setID func(*T, int64), clone func(T) T) *memoryTable[T] {
	return &memoryTable[T]{
		rows:  make(map[int64]T),
		id:    id,
		setID: setID,
		clone: clone,
	}
}

func (m *memoryTable[T]) all() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]int64, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.clone(m.rows[id]))
	}
	return out
}

func (m *memoryTable[T]) get(id int64) *T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	row, ok := m.rows[id]
	if !ok {
		return nil
	}
	row = m.clone(row)
	return &row
}

func (m *memoryTable[T]) save(row T) *T {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.id(row)
	if id == 0 {
		m.lastID++
		id = m.lastID
		m.setID(&row, id)
	} else if id > m.lastID {
		m.lastID = id
	}

	m.rows[id] = m.clone(row)
	out := m.clone(row)
	return &out
}

func (m *memoryTable[T]) delete(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
}

func same[T any](v T) T { return v }

// MemoryUserStore keeps users in process memory.
type MemoryUserStore struct {
	table *memoryTable[model.User]
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{table: newMemoryTable(
		func(u model.User) int64 { return u.ID },
		func(u *model.User, id int64) { u.ID = id },
		same[model.User],
	)}
}

func (s *MemoryUserStore) FindAll(ctx context.Context) ([]model.User, error) {
	return s.table.all(), nil
}

func (s *MemoryUserStore) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return s.table.get(id), nil
}

func (s *MemoryUserStore) Save(ctx context.Context, u model.User) (*model.User, error) {
	return s.table.save(u), nil
}

func (s *MemoryUserStore) DeleteByID(ctx context.Context, id int64) error {
	s.table.delete(id)
	return nil
}

// MemoryTrainStore keeps trains in process memory.
type MemoryTrainStore struct {
	table *memoryTable[model.Train]
}

func NewMemoryTrainStore() *MemoryTrainStore {
	return &MemoryTrainStore{table: newMemoryTable(
		func(t model.Train) int64 { return t.ID },
		func(t *model.Train, id int64) { t.ID = id },
		same[model.Train],
	)}
}

func (s *MemoryTrainStore) FindAll(ctx context.Context) ([]model.Train, error) {
	return s.table.all(), nil
}

func (s *MemoryTrainStore) FindByID(ctx context.Context, id int64) (*model.Train, error) {
	return s.table.get(id), nil
}

func (s *MemoryTrainStore) Save(ctx context.Context, t model.Train) (*model.Train, error) {
	return s.table.save(t), nil
}

func (s *MemoryTrainStore) DeleteByID(ctx context.Context, id int64) error {
	s.table.delete(id)
	return nil
}

// MemoryTicketStore keeps tickets in process memory. Stored tickets hold
// copies of their user and train.
type MemoryTicketStore struct {
	table *memoryTable[model.Ticket]
}

func NewMemoryTicketStore() *MemoryTicketStore {
	return &MemoryTicketStore{table: newMemoryTable(
		func(t model.Ticket) int64 { return t.ID },
		func(t *model.Ticket, id int64) { t.ID = id },
		cloneTicket,
	)}
}

func cloneTicket(t model.Ticket) model.Ticket {
	if t.User != nil {
		u := *t.User
		t.User = &u
	}
	if t.Train != nil {
		tr := *t.Train
		t.Train = &tr
	}
	return t
}

func (s *MemoryTicketStore) FindAll(ctx context.Context) ([]model.Ticket, error) {
	return s.table.all(), nil
}

func (s *MemoryTicketStore) FindByID(ctx context.Context, id int64) (*model.Ticket, error) {
	return s.table.get(id), nil
}

func (s *MemoryTicketStore) Save(ctx context.Context, t model.Ticket) (*model.Ticket, error) {
	return s.table.save(t), nil
}

func (s *MemoryTicketStore) DeleteByID(ctx context.Context, id int64) error {
	s.table.delete(id)
	return nil
}
