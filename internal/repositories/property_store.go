package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/poofware/onboarding-service/internal/models"
	"github.com/poofware/onboarding-service/internal/utils"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

// PropertyRepository is the persistence boundary of the onboarding service.
// The only implementation today is in-memory; the interface keeps the service
// layer ready for a real database swap.
//
// Reads always return deep copies. A caller that mutates a returned property
// changes nothing until it re-submits through Update.
type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)

	List(ctx context.Context) ([]*models.Property, error)
	ListByType(ctx context.Context, t models.PropertyType) ([]*models.Property, error)
	ListByStatus(ctx context.Context, s models.PropertyStatus) ([]*models.Property, error)

	Update(ctx context.Context, p *models.Property) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)

	// WithTransaction snapshots the collection, runs fn and restores the
	// snapshot if fn returns an error. Best-effort rollback only: concurrent
	// transactions are not isolated from each other.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

/* ------------------------------------------------------------------
   In-memory implementation
------------------------------------------------------------------ */

type memoryPropertyStore struct {
	mu         sync.RWMutex
	properties map[uuid.UUID]models.Property
}

func NewMemoryPropertyStore() PropertyRepository {
	return &memoryPropertyStore{
		properties: make(map[uuid.UUID]models.Property),
	}
}

func (s *memoryPropertyStore) Create(ctx context.Context, p *models.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.properties[p.ID] = p.Clone()
	return nil
}

// GetByID follows the repo convention of (nil, nil) for a missing row; the
// service layer translates that into ErrPropertyNotFound.
func (s *memoryPropertyStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.properties[id]
	if !ok {
		return nil, nil
	}
	out := p.Clone()
	return &out, nil
}

func (s *memoryPropertyStore) List(ctx context.Context) ([]*models.Property, error) {
	return s.listWhere(func(models.Property) bool { return true })
}

func (s *memoryPropertyStore) ListByType(ctx context.Context, t models.PropertyType) ([]*models.Property, error) {
	return s.listWhere(func(p models.Property) bool { return p.Type == t })
}

func (s *memoryPropertyStore) ListByStatus(ctx context.Context, st models.PropertyStatus) ([]*models.Property, error) {
	return s.listWhere(func(p models.Property) bool { return p.Status == st })
}

func (s *memoryPropertyStore) listWhere(keep func(models.Property) bool) ([]*models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Property, 0, len(s.properties))
	for _, p := range s.properties {
		if !keep(p) {
			continue
		}
		c := p.Clone()
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *memoryPropertyStore) Update(ctx context.Context, p *models.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.properties[p.ID]; !ok {
		return utils.ErrPropertyNotFound
	}
	s.properties[p.ID] = p.Clone()
	return nil
}

func (s *memoryPropertyStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.properties[id]; !ok {
		return utils.ErrPropertyNotFound
	}
	delete(s.properties, id)
	return nil
}

func (s *memoryPropertyStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.properties), nil
}

func (s *memoryPropertyStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	snapshot := s.snapshot()
	if err := fn(ctx); err != nil {
		s.restore(snapshot)
		return err
	}
	return nil
}

func (s *memoryPropertyStore) snapshot() map[uuid.UUID]models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := make(map[uuid.UUID]models.Property, len(s.properties))
	for id, p := range s.properties {
		snap[id] = p.Clone()
	}
	return snap
}

func (s *memoryPropertyStore) restore(snap map[uuid.UUID]models.Property) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties = snap
}
