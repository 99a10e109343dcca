package assessmentstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/linangms/DigiApp/internal/domain/models"
)

// Memory is an in-memory Store with the same semantics as Mongo. It backs
// tests and local development without a database. The usage pattern is
// single-writer, but the mutex keeps concurrent readers safe.
type Memory struct {
	mu      sync.RWMutex
	records map[string]models.Assessment
	seq     map[string]int // insertion order, tie-break for equal CreatedAt
	next    int
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		records: make(map[string]models.Assessment),
		seq:     make(map[string]int),
	}
}

func (s *Memory) List(ctx context.Context) ([]models.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Assessment, 0, len(s.records))
	for _, a := range s.records {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return s.seq[out[i].ID] > s.seq[out[j].ID]
	})
	return out, nil
}

func (s *Memory) Create(ctx context.Context, a models.Assessment) (models.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if _, exists := s.records[a.ID]; exists {
		return models.Assessment{}, ErrDuplicateID
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	a.QuestionTypes = append([]string(nil), a.QuestionTypes...)

	s.records[a.ID] = a
	s.seq[a.ID] = s.next
	s.next++
	return a, nil
}

func (s *Memory) Update(ctx context.Context, id string, p Patch) (models.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[id]
	if !ok {
		return models.Assessment{}, ErrNotFound
	}
	updated := p.applyTo(current)
	s.records[id] = updated
	return updated, nil
}

func (s *Memory) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	delete(s.records, id)
	return nil
}
