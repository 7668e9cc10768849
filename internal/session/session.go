/**
* Name:        session.go
* Description: 브라우저 하나에 대응하는 매칭 세션 상태 머신
* Workflow:    Intake -> (Begin) -> AwaitingResponse -> (Resolve) -> ShowingResults -> (Reset) -> Intake
*              AwaitingResponse -> (Fail) -> Intake(LastError)
 */

package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"MBAConnect_SeniorMatching/internal/models"
)

var ErrInvalidTransition = errors.New("invalid session transition")

// Snapshot is a consistent copy of a session at one version.
type Snapshot struct {
	ID        string
	Version   uint64
	State     State
	UpdatedAt time.Time
}

type Session struct {
	id string

	mu        sync.Mutex
	state     State
	version   uint64
	updatedAt time.Time
	subs      map[int]chan Snapshot
	nextSub   int

	// called with mu held after every transition
	onChange func()
}

func New(id string) *Session {
	return &Session{
		id:        id,
		state:     Intake{},
		updatedAt: time.Now(),
		subs:      make(map[int]chan Snapshot),
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Phase()
}

// Begin accepts a submission. Only allowed from Intake, so a second submit
// while a request is pending fails with ErrInvalidTransition.
func (s *Session) Begin() error {
	return s.transition(PhaseIntake, AwaitingResponse{})
}

// Resolve stores the results of the pending request.
func (s *Session) Resolve(results []models.MatchResult) error {
	out := make([]models.MatchResult, len(results))
	copy(out, results)
	return s.transition(PhaseAwaitingResponse, ShowingResults{Results: out})
}

// Fail returns the session to Intake with a user-facing message. The draft,
// if given, lets the form be shown again with the submitted values.
func (s *Session) Fail(message string, draft *models.StudentProfile) error {
	if message == "" {
		return fmt.Errorf("%w: failure message must not be empty", ErrInvalidTransition)
	}
	var kept *models.StudentProfile
	if draft != nil {
		d := *draft
		kept = &d
	}
	return s.transition(PhaseAwaitingResponse, Intake{LastError: message, Draft: kept})
}

// Reset clears results and returns to an empty Intake. From Intake it only
// clears a stale error. A pending request cannot be reset.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase() == PhaseAwaitingResponse {
		return fmt.Errorf("%w: cannot reset while a match request is pending", ErrInvalidTransition)
	}
	s.setLocked(Intake{})
	return nil
}

func (s *Session) transition(from Phase, to State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cur := s.state.Phase(); cur != from {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, cur, to.Phase())
	}
	s.setLocked(to)
	return nil
}

func (s *Session) setLocked(to State) {
	s.state = to
	s.version++
	s.updatedAt = time.Now()

	if s.onChange != nil {
		s.onChange()
	}

	snap := s.snapshotLocked()
	for _, ch := range s.subs {
		// 느린 구독자는 최신 스냅샷만 받는다
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		ID:        s.id,
		Version:   s.version,
		State:     s.state,
		UpdatedAt: s.updatedAt,
	}
}

// Subscribe returns a channel that first yields the current snapshot and then
// every later one. A slow reader only sees the newest snapshot. cancel closes
// the channel.
func (s *Session) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Snapshot, 1)
	ch <- s.snapshotLocked()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}
