package repositories

import (
	"sort"
	"sync"
	"time"

	"buslink/internal/domain"
	"buslink/internal/domain/models"
)

// RouteStore is the capability set consumers depend on; it is backed
// either by the in-memory store below or by the MySQL RouteRepository.
type RouteStore interface {
	Create(route models.Route) (models.Route, error)
	FindAll() ([]models.Route, error)
	FindOne(id int64) (models.Route, error)
	Update(id int64, patch models.RoutePatch) (models.Route, error)
	Remove(id int64) (models.Route, error)
	BookSeat(id int64, seat int) (models.Route, error)
	UnbookSeat(id int64, seat int) (models.Route, error)
}

// MemoryRouteStore keeps routes in process memory with sequential
// identifiers. A single mutex serializes every mutation, so the
// book/unbook read-modify-write is atomic with respect to concurrent
// callers.
type MemoryRouteStore struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*models.Route

	// Now is swappable in tests; defaults to time.Now.
	Now func() time.Time
}

func NewMemoryRouteStore() *MemoryRouteStore {
	return &MemoryRouteStore{byID: map[int64]*models.Route{}}
}

func (s *MemoryRouteStore) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *MemoryRouteStore) Create(route models.Route) (models.Route, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	route.ID = s.nextID
	route.BookedSeats = []int{}
	now := s.now()
	route.CreatedAt = now
	route.UpdatedAt = now
	if route.Status == "" {
		route.Status = models.RouteStatusActive
	}

	stored := route
	s.byID[route.ID] = &stored
	return copyRoute(stored), nil
}

func (s *MemoryRouteStore) FindAll() ([]models.Route, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(s.byID))
	for id := range s.byID {
		ids = append(ids, id)
	}
	// sequential ids make id order the insertion order
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]models.Route, 0, len(ids))
	for _, id := range ids {
		out = append(out, copyRoute(*s.byID[id]))
	}
	return out, nil
}

func (s *MemoryRouteStore) FindOne(id int64) (models.Route, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.byID[id]
	if !ok {
		return models.Route{}, domain.NotFoundError{Resource: "route"}
	}
	return copyRoute(*r), nil
}

func (s *MemoryRouteStore) Update(id int64, patch models.RoutePatch) (models.Route, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.byID[id]
	if !ok {
		return models.Route{}, domain.NotFoundError{Resource: "route"}
	}
	patch.Apply(r)
	r.ID = id
	s.touch(r)
	return copyRoute(*r), nil
}

func (s *MemoryRouteStore) Remove(id int64) (models.Route, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.byID[id]
	if !ok {
		return models.Route{}, domain.NotFoundError{Resource: "route"}
	}
	delete(s.byID, id)
	return copyRoute(*r), nil
}

func (s *MemoryRouteStore) BookSeat(id int64, seat int) (models.Route, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.byID[id]
	if !ok {
		return models.Route{}, domain.NotFoundError{Resource: "route"}
	}
	if err := domain.BookSeat(r, seat); err != nil {
		return models.Route{}, err
	}
	s.touch(r)
	return copyRoute(*r), nil
}

func (s *MemoryRouteStore) UnbookSeat(id int64, seat int) (models.Route, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.byID[id]
	if !ok {
		return models.Route{}, domain.NotFoundError{Resource: "route"}
	}
	if err := domain.UnbookSeat(r, seat); err != nil {
		return models.Route{}, err
	}
	s.touch(r)
	return copyRoute(*r), nil
}

// touch refreshes updated_at without ever moving it backwards.
func (s *MemoryRouteStore) touch(r *models.Route) {
	now := s.now()
	if now.After(r.UpdatedAt) {
		r.UpdatedAt = now
	}
}

func copyRoute(r models.Route) models.Route {
	out := r
	out.BookedSeats = append([]int{}, r.BookedSeats...)
	out.DaysOfWeek = append([]string{}, r.DaysOfWeek...)
	out.Stops = append([]string{}, r.Stops...)
	return out
}
