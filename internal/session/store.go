package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Store keeps sessions in memory only. Nothing is persisted.
type Store struct {
	cache   *cache.Cache
	idleTTL time.Duration
}

// NewStore creates a store. idleTTL <= 0 keeps sessions until the process exits.
// Otherwise a session expires after idleTTL without access, except while it is
// awaiting a match response.
func NewStore(idleTTL time.Duration) *Store {
	if idleTTL <= 0 {
		return &Store{cache: cache.New(cache.NoExpiration, 0)}
	}
	return &Store{
		cache:   cache.New(idleTTL, idleTTL/2),
		idleTTL: idleTTL,
	}
}

// Create registers a fresh session in Intake under a new random ID.
func (st *Store) Create() *Session {
	s := New(uuid.NewString())
	if st.idleTTL > 0 {
		s.onChange = func() { st.keepLocked(s) }
	}
	st.cache.SetDefault(s.ID(), s)
	return s
}

// Get returns the session and refreshes its idle timer.
func (st *Store) Get(id string) (*Session, bool) {
	v, ok := st.cache.Get(id)
	if !ok {
		return nil, false
	}
	s := v.(*Session)
	if st.idleTTL > 0 {
		s.mu.Lock()
		st.keepLocked(s)
		s.mu.Unlock()
	}
	return s, true
}

// keepLocked restarts the idle timer, or pins the session while a match
// request is pending so the result is never resolved into an evicted session.
// Deleted sessions are not re-added. Callers hold s.mu.
func (st *Store) keepLocked(s *Session) {
	d := cache.DefaultExpiration
	if s.state.Phase() == PhaseAwaitingResponse {
		d = cache.NoExpiration
	}
	_ = st.cache.Replace(s.id, s, d)
}

// GetOrCreate returns the session for id, or a new one when id is unknown.
func (st *Store) GetOrCreate(id string) (s *Session, created bool) {
	if id != "" {
		if s, ok := st.Get(id); ok {
			return s, false
		}
	}
	return st.Create(), true
}

func (st *Store) Delete(id string) {
	st.cache.Delete(id)
}

func (st *Store) Len() int {
	return st.cache.ItemCount()
}
