package services

import (
	"context"

	"github.com/mkartas/hostel-hub/store-service/internal/core/domain"
)

// AddStudent creates a student account on behalf of an admin. Construction
// is identical to self-registration; only the notification differs.
func (s *Store) AddStudent(ctx context.Context, profile domain.StudentProfile) (domain.User, error) {
	user, err := s.createStudent(ctx, profile)
	if err != nil {
		return domain.User{}, err
	}
	s.notifier.Success("Student added successfully")
	return user, nil
}

// UpdateStudent merges the supplied fields into the matching user.
func (s *Store) UpdateStudent(ctx context.Context, id string, upd domain.StudentUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Users {
		if s.state.Users[i].ID != id {
			continue
		}
		u := &s.state.Users[i]
		if upd.Username != nil {
			u.Username = *upd.Username
		}
		if upd.Password != nil {
			u.Password = *upd.Password
		}
		if upd.Email != nil {
			u.Email = *upd.Email
		}
		if upd.FullName != nil {
			u.FullName = *upd.FullName
		}
		if upd.Phone != nil {
			u.Phone = *upd.Phone
		}
		if upd.Address != nil {
			u.Address = *upd.Address
		}
		s.persist(ctx)
		s.notifier.Success("Student updated successfully")
		return nil
	}
	return domain.ErrNotFound
}

// DeleteStudent removes the user. Requests, complaints and payments that
// reference the student keep their ids; readers treat the dangling
// reference as an unknown student.
func (s *Store) DeleteStudent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Users {
		if s.state.Users[i].ID != id {
			continue
		}
		s.state.Users = append(s.state.Users[:i], s.state.Users[i+1:]...)
		s.persist(ctx)
		s.notifier.Success("Student deleted successfully")
		return nil
	}
	return domain.ErrNotFound
}
