package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mkartas/hostel-hub/store-service/internal/core/domain"
	"github.com/mkartas/hostel-hub/store-service/internal/core/ports"
)

// Store owns the hostel aggregate and is its only sanctioned mutation
// surface. Every operation is a single read-modify-write under one writer
// lock, so no caller ever observes a partially applied transition. After
// each mutation the whole aggregate is written through to the repository;
// a failed write is logged and never rolls back or surfaces.
type Store struct {
	mu       sync.Mutex
	state    *domain.State
	repo     ports.StateRepository
	notifier ports.Notifier

	now   func() time.Time
	newID func() string
}

// NewStore restores the aggregate from the repository. A missing document
// seeds the first-run state (one admin account); an unreadable document is
// logged and treated the same way, so construction never fails.
func NewStore(ctx context.Context, repo ports.StateRepository, notifier ports.Notifier) *Store {
	s := &Store{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
		newID:    uuid.NewString,
	}

	state, err := repo.Load(ctx)
	switch {
	case err == nil:
		s.state = state
	case errors.Is(err, ports.ErrNoState):
		s.state = domain.Seed()
		s.persist(ctx)
	default:
		log.Printf("store: restore failed, starting from seed: %v", err)
		s.state = domain.Seed()
	}

	return s
}

// persist writes the aggregate through to the repository. The caller must
// hold the lock. Durability failures are logged only.
func (s *Store) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.state); err != nil {
		log.Printf("store: state write failed: %v", err)
	}
}

// ToggleTheme flips the UI preference between light and dark and returns the
// new value.
func (s *Store) ToggleTheme(ctx context.Context) domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Theme == domain.ThemeLight {
		s.state.Theme = domain.ThemeDark
	} else {
		s.state.Theme = domain.ThemeLight
	}
	s.persist(ctx)
	return s.state.Theme
}

func (s *Store) Theme() domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Theme
}

// CurrentUser returns a copy of the logged-in user, or nil when no session
// is active.
func (s *Store) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentUser == nil {
		return nil
	}
	u := *s.state.CurrentUser
	return &u
}

func (s *Store) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.User(nil), s.state.Users...)
}

func (s *Store) Rooms() []domain.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Room(nil), s.state.Rooms...)
}

func (s *Store) RoomRequests() []domain.RoomRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.RoomRequest(nil), s.state.RoomRequests...)
}

func (s *Store) Complaints() []domain.Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Complaint(nil), s.state.Complaints...)
}

func (s *Store) Payments() []domain.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Payment(nil), s.state.Payments...)
}

func (s *Store) Notices() []domain.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Notice(nil), s.state.Notices...)
}

// PendingRequests returns the requests still awaiting a decision, in
// submission order.
func (s *Store) PendingRequests() []domain.RoomRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pending []domain.RoomRequest
	for _, r := range s.state.RoomRequests {
		if r.Status == domain.RequestPending {
			pending = append(pending, r)
		}
	}
	return pending
}

func (s *Store) RequestsByStudent(studentID string) []domain.RoomRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.RoomRequest
	for _, r := range s.state.RoomRequests {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) ComplaintsByStudent(studentID string) []domain.Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Complaint
	for _, c := range s.state.Complaints {
		if c.StudentID == studentID {
			out = append(out, c)
		}
	}
	return out
}

func (s *Store) PaymentsByStudent(studentID string) []domain.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Payment
	for _, p := range s.state.Payments {
		if p.StudentID == studentID {
			out = append(out, p)
		}
	}
	return out
}

// LatestPayment returns the most recent ledger entry for a student. The
// ledger is append-only, so recency is collection order, not a pointer.
func (s *Store) LatestPayment(studentID string) (domain.Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.state.Payments) - 1; i >= 0; i-- {
		if s.state.Payments[i].StudentID == studentID {
			return s.state.Payments[i], true
		}
	}
	return domain.Payment{}, false
}
