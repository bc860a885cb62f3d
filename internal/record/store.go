package record

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Store is the record tree behind the CLI and the HTTP API.
type Store interface {
	PutSubject(ctx context.Context, s Subject) error
	GetSubject(ctx context.Context, name string) (Subject, error)
	DeleteSubject(ctx context.Context, name string) error
	ListSubjects(ctx context.Context) ([]Subject, error)

	PutTest(ctx context.Context, season string, t Test) error
	GetTest(ctx context.Context, season, name string) (Test, error)
	DeleteTest(ctx context.Context, season, name string) error
	DeleteSeason(ctx context.Context, season string) error

	Snapshot(ctx context.Context) (Snapshot, error)
}

type memoryStore struct {
	mu       sync.RWMutex
	subjects map[string]Subject
	seasons  map[string]map[string]Test
}

// NewInMemoryStore returns a Store backed by process memory, used by tests
// and throwaway sessions.
func NewInMemoryStore() Store {
	return &memoryStore{
		subjects: map[string]Subject{},
		seasons:  map[string]map[string]Test{},
	}
}

func (m *memoryStore) PutSubject(_ context.Context, s Subject) error {
	if s.Name == "" {
		return fmt.Errorf("subject needs a name")
	}
	s.Type = NormalizeType(s.Type)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subjects[s.Name] = s
	return nil
}

func (m *memoryStore) GetSubject(_ context.Context, name string) (Subject, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.subjects[name]
	if !ok {
		return Subject{}, fmt.Errorf("%w: subject %q", ErrNotFound, name)
	}
	return s, nil
}

func (m *memoryStore) DeleteSubject(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.subjects[name]; !ok {
		return fmt.Errorf("%w: subject %q", ErrNotFound, name)
	}
	delete(m.subjects, name)
	// Cascade: drop the subject's tests the way the SQL store's foreign key does.
	for season, tests := range m.seasons {
		for testName, t := range tests {
			if t.Subject == name {
				delete(tests, testName)
			}
		}
		if len(tests) == 0 {
			delete(m.seasons, season)
		}
	}
	return nil
}

func (m *memoryStore) ListSubjects(_ context.Context) ([]Subject, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Subject, 0, len(m.subjects))
	for _, s := range m.subjects {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memoryStore) PutTest(_ context.Context, season string, t Test) error {
	if season == "" || t.Name == "" {
		return fmt.Errorf("test needs a season and a name")
	}
	if err := t.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.subjects[t.Subject]; !ok {
		return fmt.Errorf("%w: subject %q", ErrNotFound, t.Subject)
	}
	if m.seasons[season] == nil {
		m.seasons[season] = map[string]Test{}
	}
	m.seasons[season][t.Name] = t
	return nil
}

func (m *memoryStore) GetTest(_ context.Context, season, name string) (Test, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.seasons[season][name]
	if !ok {
		return Test{}, fmt.Errorf("%w: test %s/%s", ErrNotFound, season, name)
	}
	return t, nil
}

func (m *memoryStore) DeleteTest(_ context.Context, season, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.seasons[season][name]; !ok {
		return fmt.Errorf("%w: test %s/%s", ErrNotFound, season, name)
	}
	delete(m.seasons[season], name)
	if len(m.seasons[season]) == 0 {
		delete(m.seasons, season)
	}
	return nil
}

func (m *memoryStore) DeleteSeason(_ context.Context, season string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.seasons[season]; !ok {
		return fmt.Errorf("%w: season %q", ErrNotFound, season)
	}
	delete(m.seasons, season)
	return nil
}

func (m *memoryStore) Snapshot(_ context.Context) (Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap := Snapshot{
		Subjects: make(map[string]Subject, len(m.subjects)),
		Seasons:  make(map[string]map[string]Test, len(m.seasons)),
	}
	for name, s := range m.subjects {
		snap.Subjects[name] = s
	}
	for season, tests := range m.seasons {
		cp := make(map[string]Test, len(tests))
		for name, t := range tests {
			cp[name] = t
		}
		snap.Seasons[season] = cp
	}
	return snap, nil
}
