package persistence

import (
	"context"
	"sync"
	"time"

	"satsang/internal/ports"
)

// InMemoryStorage implementa StorageProvider usando memória RAM.
// Os dados se perdem ao reiniciar o processo.
type InMemoryStorage struct {
	values sync.Map // Map[scopedKey]memoryEntry
	now    func() time.Time
}

type memoryEntry struct {
	value     string
	updatedAt time.Time
}

func NewInMemoryStorage() *InMemoryStorage {
	return &InMemoryStorage{now: time.Now}
}

// WithClock troca o relógio usado para marcar as escritas.
func (s *InMemoryStorage) WithClock(now func() time.Time) *InMemoryStorage {
	s.now = now
	return s
}

func (s *InMemoryStorage) Scope(scopeID string) ports.ScopedStorage {
	if scopeID == "" {
		return nil
	}
	return &memoryScope{parent: s, scopeID: scopeID}
}

// PurgeOlderThan remove as chaves sem escrita desde cutoff.
func (s *InMemoryStorage) PurgeOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	removed := 0
	s.values.Range(func(k, v any) bool {
		if v.(memoryEntry).updatedAt.Before(cutoff) {
			s.values.Delete(k)
			removed++
		}
		return true
	})
	return removed, nil
}

// Len retorna quantas chaves estão guardadas.
func (s *InMemoryStorage) Len() int {
	n := 0
	s.values.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

type memoryScope struct {
	parent  *InMemoryStorage
	scopeID string
}

func (m *memoryScope) Get(_ context.Context, key string) (string, bool, error) {
	val, ok := m.parent.values.Load(scopedKey(m.scopeID, key))
	if !ok {
		return "", false, nil // Não encontrado (sem erro)
	}
	return val.(memoryEntry).value, true, nil
}

func (m *memoryScope) Set(_ context.Context, key, value string) error {
	m.parent.values.Store(scopedKey(m.scopeID, key), memoryEntry{value: value, updatedAt: m.parent.now()})
	return nil
}

func (m *memoryScope) Remove(_ context.Context, key string) error {
	m.parent.values.Delete(scopedKey(m.scopeID, key))
	return nil
}

// scopedKey isola as chaves de cada participante.
func scopedKey(scopeID, key string) string {
	return "scope:" + scopeID + ":" + key
}
