package widget

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MemoryStore is a Store backed by a map.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore(values map[string]string) *MemoryStore {
	s := &MemoryStore{values: make(map[string]string, len(values))}
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

func (s *MemoryStore) GetString(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// ParseAssignments reads key=value pairs. The value may itself contain '='.
func ParseAssignments(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid assignment %q, want key=value", pair)
		}
		values[key] = value
	}
	return values, nil
}

// RecordingManager keeps the last views rendered for each widget id.
type RecordingManager struct {
	mu    sync.Mutex
	views map[int]*RemoteViews
}

func NewRecordingManager() *RecordingManager {
	return &RecordingManager{views: make(map[int]*RemoteViews)}
}

func (m *RecordingManager) UpdateWidget(id int, views *RemoteViews) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.views[id] = views
}

func (m *RecordingManager) Views(id int) (*RemoteViews, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.views[id]
	return v, ok
}

// IDs returns the rendered widget ids in ascending order.
func (m *RecordingManager) IDs() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]int, 0, len(m.views))
	for id := range m.views {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
