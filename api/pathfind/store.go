package pathfindapi

import (
	"sync"

	"github.com/google/uuid"

	"github.com/thalath/gridpath/grid"
)

// record is one stored search: the response and the fully replayed grid.
type record struct {
	response *SearchResponse
	grid     *grid.Grid
}

// resultStore keeps the most recent records by ID, evicting the oldest
// once capacity is reached.
type resultStore struct {
	mu    sync.Mutex
	cap   int
	order []uuid.UUID
	byID  map[uuid.UUID]record
}

func newResultStore(capacity int) *resultStore {
	return &resultStore{
		cap:  capacity,
		byID: make(map[uuid.UUID]record, capacity),
	}
}

func (s *resultStore) put(r record) {
	if s.cap <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.order) == s.cap {
		delete(s.byID, s.order[0])
		s.order = s.order[1:]
	}
	s.order = append(s.order, r.response.ID)
	s.byID[r.response.ID] = r
}

func (s *resultStore) get(id uuid.UUID) (record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.byID[id]
	return r, ok
}
